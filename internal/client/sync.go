package client

import (
	"context"
	"sync"

	"github.com/discoverguadeloupe/backend/internal/domain/entities"
	"github.com/discoverguadeloupe/backend/internal/domain/repositories"
)

// SiteSync keeps a locally cached copy of the server's site collection.
// Mutations call the API and then invalidate by refetching, so snapshots
// always reflect server state one round trip after a change; there is no
// optimistic patching. Concurrent mutations are not coordinated: the
// last refetch to resolve wins.
type SiteSync struct {
	api *Client

	mu      sync.Mutex
	sites   []entities.Site
	loading bool
	err     error
}

// NewSiteSync creates a sync store in the loading state. Call Refresh
// (typically in a goroutine at app start) to populate it.
func NewSiteSync(api *Client) *SiteSync {
	return &SiteSync{
		api:     api,
		loading: true,
	}
}

// Refresh fetches the collection from the server. On failure the error
// becomes visible through Snapshot and the previously cached sites are
// kept on display.
func (s *SiteSync) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	sites, err := s.api.ListSites(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = err
		return err
	}
	s.sites = sites
	s.err = nil
	return nil
}

// Snapshot returns the cached collection together with the loading and
// error state. The returned slice is a copy.
func (s *SiteSync) Snapshot() ([]entities.Site, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sites := make([]entities.Site, len(s.sites))
	copy(sites, s.sites)
	return sites, s.loading, s.err
}

// Create adds a site and refetches the collection
func (s *SiteSync) Create(ctx context.Context, site entities.Site) (*entities.Site, error) {
	created, err := s.api.CreateSite(ctx, site)
	if err != nil {
		return nil, err
	}
	// Invalidate: the next snapshot reflects server state
	_ = s.Refresh(ctx)
	return created, nil
}

// Update applies a partial update and refetches the collection
func (s *SiteSync) Update(ctx context.Context, id string, changes repositories.SiteChangeset) (*entities.Site, error) {
	updated, err := s.api.UpdateSite(ctx, id, changes)
	if err != nil {
		return nil, err
	}
	_ = s.Refresh(ctx)
	return updated, nil
}

// Delete removes a site and refetches the collection
func (s *SiteSync) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteSite(ctx, id); err != nil {
		return err
	}
	_ = s.Refresh(ctx)
	return nil
}
