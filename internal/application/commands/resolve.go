package commands

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"careerpath/internal/application"
	"careerpath/internal/domain"
	"careerpath/internal/ports"
)

// Outcome tells a caller how trustworthy a resolved project is
type Outcome int

const (
	// OutcomeFound means the project is exactly the one asked for
	OutcomeFound Outcome = iota
	// OutcomeFallback means the domain had projects but none matched, so the first was used
	OutcomeFallback
	// OutcomeSynthesized means nothing was found and a placeholder was built
	OutcomeSynthesized
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeFallback:
		return "fallback"
	case OutcomeSynthesized:
		return "synthesized"
	default:
		return "unknown"
	}
}

// Source names the resolution step that produced the project
type Source string

const (
	SourceCache       Source = "cache"
	SourceBackend     Source = "backend"
	SourceDomain      Source = "domain"
	SourceSynthesized Source = "synthesized"
)

// Resolution is the tagged result of resolving a project id
type Resolution struct {
	// ID is the id that was asked for; progress is keyed by it
	ID      string
	Project domain.Project
	Outcome Outcome
	Source  Source

	// BackendErr holds the last backend failure seen while resolving.
	// A synthesized project with a BackendErr means the backend was
	// unreachable rather than the id being unknown.
	BackendErr error
}

// Unavailable reports whether the placeholder stands in for a backend outage
func (r Resolution) Unavailable() bool {
	return r.Outcome == OutcomeSynthesized && r.BackendErr != nil &&
		!errors.Is(r.BackendErr, application.ErrNotFound)
}

// cachedResolution is the session cache entry for a resolved id.
// The tags travel with the project so a cached placeholder stays a placeholder.
type cachedResolution struct {
	Project     domain.Project `json:"project"`
	Outcome     Outcome        `json:"outcome"`
	Unavailable bool           `json:"unavailable,omitempty"`
	BackendErr  string         `json:"backend_error,omitempty"`
}

func newCachedResolution(res Resolution) cachedResolution {
	entry := cachedResolution{
		Project:     res.Project,
		Outcome:     res.Outcome,
		Unavailable: res.Unavailable(),
	}
	if res.BackendErr != nil {
		entry.BackendErr = res.BackendErr.Error()
	}
	return entry
}

// resolution rebuilds the tagged result, restoring the backend error's kind
func (c cachedResolution) resolution(fullID string) Resolution {
	res := Resolution{ID: fullID, Project: c.Project, Outcome: c.Outcome, Source: SourceCache}
	switch {
	case c.Unavailable:
		res.BackendErr = fmt.Errorf("%w: %s", application.ErrBackendUnavailable, c.BackendErr)
	case c.BackendErr != "":
		res.BackendErr = fmt.Errorf("%w: %s", application.ErrNotFound, c.BackendErr)
	}
	return res
}

// Resolver turns a project id into a usable project.
// It tries the session cache, then the backend, then the id's domain
// listing, and finally synthesizes a placeholder. It never fails.
type Resolver struct {
	backend ports.ProjectBackend
	session *application.Cache
	log     *zap.Logger
	group   singleflight.Group
}

// NewResolver creates a Resolver. A nil backend resolves offline.
func NewResolver(backend ports.ProjectBackend, session *application.Cache, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{
		backend: backend,
		session: session,
		log:     log,
	}
}

// Resolve returns the project for fullID.
// Concurrent calls for the same id share one lookup.
func (r *Resolver) Resolve(ctx context.Context, fullID string) Resolution {
	fullID = strings.TrimSpace(fullID)

	v, _, _ := r.group.Do(fullID, func() (any, error) {
		return r.resolve(ctx, fullID), nil
	})
	return v.(Resolution)
}

func (r *Resolver) resolve(ctx context.Context, fullID string) Resolution {
	log := r.log.With(zap.String("project_id", fullID))

	var cached cachedResolution
	if r.session.GetJSON(ctx, application.ProjectKey(fullID), &cached) && cached.Project.ID != "" {
		log.Debug("project served from session cache", zap.Stringer("outcome", cached.Outcome))
		return cached.resolution(fullID)
	}

	res := r.lookup(ctx, fullID, log)
	res.ID = fullID
	res.Project = res.Project.Normalize(fullID)

	if err := r.session.PutJSON(ctx, application.ProjectKey(fullID), newCachedResolution(res)); err != nil {
		log.Warn("failed to cache resolved project", zap.Error(err))
	}
	return res
}

func (r *Resolver) lookup(ctx context.Context, fullID string, log *zap.Logger) Resolution {
	var backendErr error

	if r.backend != nil && fullID != "" {
		p, err := r.backend.GetProject(ctx, fullID)
		switch {
		case err != nil:
			backendErr = err
			log.Debug("direct fetch failed", zap.Error(err))
		case p != nil && p.ID != "":
			return Resolution{Project: *p, Outcome: OutcomeFound, Source: SourceBackend}
		}

		ref := domain.ParseProjectID(fullID)
		if ref.HasDomain && ref.DomainID != "" {
			res, err := r.lookupInDomain(ctx, fullID, ref)
			if err == nil {
				return res
			}
			backendErr = err
		}
	}

	if backendErr != nil && !errors.Is(backendErr, application.ErrNotFound) {
		log.Warn("backend unavailable, using placeholder project", zap.Error(backendErr))
	} else {
		log.Debug("no project found, using placeholder")
	}

	return Resolution{
		Project:    domain.PlaceholderProject(fullID),
		Outcome:    OutcomeSynthesized,
		Source:     SourceSynthesized,
		BackendErr: backendErr,
	}
}

// lookupInDomain searches the domain listing for fullID.
// It returns ErrNotFound when the listing is empty.
func (r *Resolver) lookupInDomain(ctx context.Context, fullID string, ref domain.ProjectRef) (Resolution, error) {
	projects, err := r.backend.ListDomainProjects(ctx, ref.DomainID, true)
	if err != nil {
		r.log.Debug("domain listing failed",
			zap.String("domain", ref.DomainID),
			zap.Error(err))
		return Resolution{}, err
	}
	if len(projects) == 0 {
		return Resolution{}, application.ErrNotFound
	}

	candidates := ref.Candidates(fullID)
	for _, p := range projects {
		if slices.Contains(candidates, p.ID) {
			return Resolution{Project: withDomain(p, ref), Outcome: OutcomeFound, Source: SourceDomain}, nil
		}
	}

	r.log.Debug("no exact match in domain listing, using first project",
		zap.String("domain", ref.DomainID),
		zap.String("first_id", projects[0].ID))
	return Resolution{Project: withDomain(projects[0], ref), Outcome: OutcomeFallback, Source: SourceDomain}, nil
}

// withDomain fills in the domain for listing entries that only carry a short id
func withDomain(p domain.Project, ref domain.ProjectRef) domain.Project {
	if p.Domain == "" {
		p.Domain = ref.DomainID
	}
	return p
}

// Forget drops the cached resolution of fullID
func (r *Resolver) Forget(ctx context.Context, fullID string) error {
	return r.session.Delete(ctx, application.ProjectKey(fullID))
}

// SelectProject remembers id as the current project for this session
func (r *Resolver) SelectProject(ctx context.Context, id string) error {
	if err := application.ValidateRequired("projectID", id); err != nil {
		return err
	}
	return r.session.PutJSON(ctx, application.KeySelectedProject, strings.TrimSpace(id))
}

// SelectedProject returns the id remembered by SelectProject
func (r *Resolver) SelectedProject(ctx context.Context) (string, bool) {
	var id string
	if !r.session.GetJSON(ctx, application.KeySelectedProject, &id) || id == "" {
		return "", false
	}
	return id, true
}

// ResolveSelected resolves id, or the selected project when id is empty
func (r *Resolver) ResolveSelected(ctx context.Context, id string) (Resolution, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		selected, ok := r.SelectedProject(ctx)
		if !ok {
			return Resolution{}, application.ErrNoProjectSelected
		}
		id = selected
	}
	return r.Resolve(ctx, id), nil
}
