package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/discoverguadeloupe/backend/internal/domain/entities"
	"github.com/discoverguadeloupe/backend/internal/domain/providers"
	"github.com/discoverguadeloupe/backend/internal/domain/repositories"
)

// Cache TTLs (in seconds)
const (
	siteByIDTTL  = 300 // 5 minutes for a single site
	siteListTTL  = 180 // 3 minutes for the full collection
	siteListKey  = "sites:all"
	siteKeyStamp = "site:%s"
)

func siteCacheKey(id string) string {
	return fmt.Sprintf(siteKeyStamp, id)
}

// CachedSiteAdapter wraps a SiteRepository with read-through caching.
// Every mutation invalidates the collection key and the touched site key
// so subsequent reads reflect the relational store.
type CachedSiteAdapter struct {
	adapter repositories.SiteRepository
	cache   providers.CacheProvider
}

// NewCachedSiteAdapter creates a new cached site adapter
func NewCachedSiteAdapter(adapter repositories.SiteRepository, cache providers.CacheProvider) repositories.SiteRepository {
	return &CachedSiteAdapter{
		adapter: adapter,
		cache:   cache,
	}
}

// GetAll retrieves the full collection with caching
func (a *CachedSiteAdapter) GetAll(ctx context.Context) ([]*entities.Site, error) {
	if cached, err := a.cache.Get(ctx, siteListKey); err == nil {
		var sites []*entities.Site
		if err = json.Unmarshal(cached, &sites); err == nil {
			return sites, nil
		}
		log.Warn().Err(err).Msg("failed to unmarshal cached site list")
	}

	sites, err := a.adapter.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	// Update cache asynchronously to avoid blocking the response
	go func() {
		bgCtx := context.Background()
		if data, err := json.Marshal(sites); err == nil {
			if err := a.cache.Set(bgCtx, siteListKey, data, siteListTTL); err != nil {
				log.Warn().Err(err).Msg("failed to cache site list")
			}
		}
	}()

	return sites, nil
}

// GetByID retrieves a site by ID with caching
func (a *CachedSiteAdapter) GetByID(ctx context.Context, id string) (*entities.Site, error) {
	cacheKey := siteCacheKey(id)

	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var site entities.Site
		if err = json.Unmarshal(cached, &site); err == nil {
			return &site, nil
		}
		log.Warn().Err(err).Str("site_id", id).Msg("failed to unmarshal cached site")
	}

	site, err := a.adapter.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	go func() {
		bgCtx := context.Background()
		if data, err := json.Marshal(site); err == nil {
			if err := a.cache.Set(bgCtx, cacheKey, data, siteByIDTTL); err != nil {
				log.Warn().Err(err).Str("site_id", id).Msg("failed to cache site")
			}
		}
	}()

	return site, nil
}

// Create inserts a site and invalidates the collection cache
func (a *CachedSiteAdapter) Create(ctx context.Context, site *entities.Site) error {
	if err := a.adapter.Create(ctx, site); err != nil {
		return err
	}
	a.invalidate(ctx, site.ID)
	return nil
}

// Update applies a changeset and invalidates the affected keys
func (a *CachedSiteAdapter) Update(ctx context.Context, id string, changes repositories.SiteChangeset) (*entities.Site, error) {
	site, err := a.adapter.Update(ctx, id, changes)
	if err != nil {
		return nil, err
	}
	a.invalidate(ctx, id)
	return site, nil
}

// Delete removes a site and invalidates the affected keys
func (a *CachedSiteAdapter) Delete(ctx context.Context, id string) (bool, error) {
	existed, err := a.adapter.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if existed {
		a.invalidate(ctx, id)
	}
	return existed, nil
}

// ResetAll replaces the collection and drops the list cache
func (a *CachedSiteAdapter) ResetAll(ctx context.Context, sites []*entities.Site) error {
	if err := a.adapter.ResetAll(ctx, sites); err != nil {
		return err
	}
	if err := a.cache.Delete(ctx, siteListKey); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate site list cache")
	}
	for _, site := range sites {
		if err := a.cache.Delete(ctx, siteCacheKey(site.ID)); err != nil {
			log.Warn().Err(err).Str("site_id", site.ID).Msg("failed to invalidate site cache")
		}
	}
	return nil
}

func (a *CachedSiteAdapter) invalidate(ctx context.Context, id string) {
	if err := a.cache.Delete(ctx, siteListKey); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate site list cache")
	}
	if err := a.cache.Delete(ctx, siteCacheKey(id)); err != nil {
		log.Warn().Err(err).Str("site_id", id).Msg("failed to invalidate site cache")
	}
}
