package commands

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"go.uber.org/goleak"

	"careerpath/internal/adapters/memory"
	"careerpath/internal/application"
	"careerpath/internal/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeBackend is a scriptable ProjectBackend that counts its calls
type fakeBackend struct {
	mu sync.Mutex

	projects    map[string]domain.Project
	getErr      error
	listings    map[string][]domain.Project
	listErr     error
	domains     []domain.Domain
	generateErr error

	// block, when set, holds GetProject until closed
	block chan struct{}

	getCalls      atomic.Int32
	listCalls     atomic.Int32
	generateCalls atomic.Int32
	lastGenerate  bool
}

func (f *fakeBackend) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	f.getCalls.Add(1)
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.getErr != nil {
		return nil, f.getErr
	}
	if p, ok := f.projects[id]; ok {
		return &p, nil
	}
	return nil, &application.BackendError{Op: "get project", Status: 404}
}

func (f *fakeBackend) ListDomainProjects(_ context.Context, domainID string, generate bool) ([]domain.Project, error) {
	f.listCalls.Add(1)
	f.mu.Lock()
	f.lastGenerate = generate
	f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listings[domainID], nil
}

func (f *fakeBackend) GenerateDomains(_ context.Context, _ string) ([]domain.Domain, error) {
	f.generateCalls.Add(1)
	if f.generateErr != nil {
		return nil, f.generateErr
	}
	return f.domains, nil
}

func (f *fakeBackend) networkCalls() int32 {
	return f.getCalls.Load() + f.listCalls.Load() + f.generateCalls.Load()
}

// newTestCaches returns a session and a durable cache backed by separate memory stores
func newTestCaches() (session, durable *application.Cache) {
	return application.NewCache(memory.NewStore(), 0, nil),
		application.NewCache(memory.NewStore(), 0, nil)
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
