package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"careerpath/internal/application"
	"careerpath/internal/domain"
	"careerpath/internal/ports"
)

// DomainSession is the cached outcome of domain generation
type DomainSession struct {
	Domains       []domain.Domain
	IkigaiSummary string
}

// DomainCache keeps generated domains and their ikigai summary in session storage
type DomainCache struct {
	backend ports.ProjectBackend
	session *application.Cache
	log     *zap.Logger
}

// NewDomainCache creates a DomainCache. A nil backend disables Generate.
func NewDomainCache(backend ports.ProjectBackend, session *application.Cache, log *zap.Logger) *DomainCache {
	if log == nil {
		log = zap.NewNop()
	}
	return &DomainCache{
		backend: backend,
		session: session,
		log:     log,
	}
}

// Save stores domains and the summary they were generated from
func (c *DomainCache) Save(ctx context.Context, domains []domain.Domain, summary string) error {
	if domains == nil {
		domains = []domain.Domain{}
	}
	if err := c.session.PutJSON(ctx, application.KeyGeneratedDomains, domains); err != nil {
		return err
	}
	return c.session.PutJSON(ctx, application.KeyIkigaiSummary, summary)
}

// Load returns the cached session. ok is false when the domains are
// absent or unreadable, which callers treat as "regenerate".
func (c *DomainCache) Load(ctx context.Context) (DomainSession, bool) {
	var s DomainSession
	if !c.session.GetJSON(ctx, application.KeyGeneratedDomains, &s.Domains) || s.Domains == nil {
		return DomainSession{}, false
	}
	c.session.GetJSON(ctx, application.KeyIkigaiSummary, &s.IkigaiSummary)
	return s, true
}

// Clear drops the cached domains, the summary and the selected project
func (c *DomainCache) Clear(ctx context.Context) error {
	var errs []error
	for _, key := range []string{
		application.KeyGeneratedDomains,
		application.KeyIkigaiSummary,
		application.KeySelectedProject,
	} {
		if err := c.session.Delete(ctx, key); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Generate returns domains for summary, asking the backend only when the
// session holds none for the same summary
func (c *DomainCache) Generate(ctx context.Context, summary string) (DomainSession, bool, error) {
	if err := application.ValidateRequired("ikigaiSummary", summary); err != nil {
		return DomainSession{}, false, err
	}
	summary = strings.TrimSpace(summary)

	if cached, ok := c.Load(ctx); ok && cached.IkigaiSummary == summary && len(cached.Domains) > 0 {
		c.log.Debug("domains served from session cache", zap.Int("count", len(cached.Domains)))
		return cached, true, nil
	}

	if c.backend == nil {
		return DomainSession{}, false, fmt.Errorf("generate domains: %w", application.ErrBackendUnavailable)
	}

	domains, err := c.backend.GenerateDomains(ctx, summary)
	if err != nil {
		return DomainSession{}, false, fmt.Errorf("generate domains: %w", err)
	}

	if err := c.Save(ctx, domains, summary); err != nil {
		c.log.Warn("failed to cache generated domains", zap.Error(err))
	}
	return DomainSession{Domains: domains, IkigaiSummary: summary}, false, nil
}
