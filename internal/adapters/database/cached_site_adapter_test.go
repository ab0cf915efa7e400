package database_test

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/discoverguadeloupe/backend/internal/adapters/database"
	"github.com/discoverguadeloupe/backend/internal/domain/entities"
	"github.com/discoverguadeloupe/backend/internal/domain/repositories"
	apperrors "github.com/discoverguadeloupe/backend/pkg/errors"
)

type fakeCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func (c *fakeCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.data[key]; ok {
		return v, nil
	}
	return nil, errors.New("key not found")
}

func (c *fakeCache) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *fakeCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	return ok
}

type countingRepo struct {
	mu       sync.Mutex
	getAlls  int
	getByIDs int
	sites    map[string]*entities.Site
}

func newCountingRepo(sites ...*entities.Site) *countingRepo {
	r := &countingRepo{sites: map[string]*entities.Site{}}
	for _, s := range sites {
		r.sites[s.ID] = s
	}
	return r
}

func (r *countingRepo) GetAll(ctx context.Context) ([]*entities.Site, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.getAlls++
	out := []*entities.Site{}
	for _, s := range r.sites {
		out = append(out, s)
	}
	return out, nil
}

func (r *countingRepo) GetByID(ctx context.Context, id string) (*entities.Site, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.getByIDs++
	if s, ok := r.sites[id]; ok {
		return s, nil
	}
	return nil, apperrors.NewNotFoundError("site not found")
}

func (r *countingRepo) Create(ctx context.Context, site *entities.Site) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sites[site.ID] = site
	return nil
}

func (r *countingRepo) Update(ctx context.Context, id string, changes repositories.SiteChangeset) (*entities.Site, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sites[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("site not found")
	}
	if changes.Name != nil {
		s.Name = *changes.Name
	}
	return s, nil
}

func (r *countingRepo) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.sites[id]
	delete(r.sites, id)
	return ok, nil
}

func (r *countingRepo) ResetAll(ctx context.Context, sites []*entities.Site) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sites = map[string]*entities.Site{}
	for _, s := range sites {
		r.sites[s.ID] = s
	}
	return nil
}

func waitForKey(t *testing.T, cache *fakeCache, key string) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cache.has(key) {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("cache key %q never populated", key)
}

func TestCachedSiteAdapter_ReadThrough(t *testing.T) {
	repo := newCountingRepo(&entities.Site{ID: "a", Name: "A"})
	cache := newFakeCache()
	cached := database.NewCachedSiteAdapter(repo, cache)

	_, err := cached.GetAll(context.Background())
	require.NoError(t, err)
	waitForKey(t, cache, "sites:all")

	_, err = cached.GetAll(context.Background())
	require.NoError(t, err)

	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.Equal(t, 1, repo.getAlls, "second read should be served from cache")
}

func TestCachedSiteAdapter_MutationInvalidatesList(t *testing.T) {
	repo := newCountingRepo(&entities.Site{ID: "a", Name: "A"})
	cache := newFakeCache()
	cached := database.NewCachedSiteAdapter(repo, cache)

	_, err := cached.GetAll(context.Background())
	require.NoError(t, err)
	waitForKey(t, cache, "sites:all")

	require.NoError(t, cached.Create(context.Background(), &entities.Site{ID: "b", Name: "B"}))
	assert.False(t, cache.has("sites:all"), "create should drop the collection cache")
}

func TestCachedSiteAdapter_DeleteInvalidatesSite(t *testing.T) {
	repo := newCountingRepo(&entities.Site{ID: "a", Name: "A"})
	cache := newFakeCache()
	cached := database.NewCachedSiteAdapter(repo, cache)

	_, err := cached.GetByID(context.Background(), "a")
	require.NoError(t, err)
	waitForKey(t, cache, "site:a")

	existed, err := cached.Delete(context.Background(), "a")
	require.NoError(t, err)
	assert.True(t, existed)
	assert.False(t, cache.has("site:a"))
}

func TestCachedSiteAdapter_CorruptListEntryFallsThrough(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = prev }()

	repo := newCountingRepo(&entities.Site{ID: "a", Name: "A"})
	cache := newFakeCache()
	cached := database.NewCachedSiteAdapter(repo, cache)

	require.NoError(t, cache.Set(context.Background(), "sites:all", []byte("{not json"), 60))

	sites, err := cached.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, sites, 1)

	repo.mu.Lock()
	getAlls := repo.getAlls
	repo.mu.Unlock()
	assert.Equal(t, 1, getAlls, "corrupt entry should be bypassed in favor of the store")

	logged := buf.String()
	assert.Contains(t, logged, "failed to unmarshal cached site list")
	assert.Contains(t, logged, "invalid character", "log line should carry the decode error")
}

func TestCachedSiteAdapter_CorruptSiteEntryFallsThrough(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = prev }()

	repo := newCountingRepo(&entities.Site{ID: "a", Name: "A"})
	cache := newFakeCache()
	cached := database.NewCachedSiteAdapter(repo, cache)

	require.NoError(t, cache.Set(context.Background(), "site:a", []byte("]["), 60))

	site, err := cached.GetByID(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "A", site.Name)

	logged := buf.String()
	assert.Contains(t, logged, "failed to unmarshal cached site")
	assert.Contains(t, logged, "invalid character", "log line should carry the decode error")
}

func TestCachedSiteAdapter_NotFoundPassesThrough(t *testing.T) {
	repo := newCountingRepo()
	cached := database.NewCachedSiteAdapter(repo, newFakeCache())

	_, err := cached.GetByID(context.Background(), "ghost")
	assert.True(t, apperrors.IsNotFound(err))
}
