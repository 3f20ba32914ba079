package ports

import (
	"context"

	"careerpath/internal/domain"
)

// ProjectBackend is the remote service that owns projects and domains
type ProjectBackend interface {
	// GetProject fetches a single project by its full id
	GetProject(ctx context.Context, id string) (*domain.Project, error)

	// ListDomainProjects lists the projects of a domain, generating them
	// server-side when generate is true and none exist yet
	ListDomainProjects(ctx context.Context, domainID string, generate bool) ([]domain.Project, error)

	// GenerateDomains asks the backend for domains matching an ikigai summary
	GenerateDomains(ctx context.Context, ikigaiSummary string) ([]domain.Domain, error)
}
