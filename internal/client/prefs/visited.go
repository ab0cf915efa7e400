package prefs

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"
)

const visitedKey = "visited_sites"

// VisitedStore tracks which sites the user has marked visited. One
// instance lives for the app session and is injected into the UI layer.
type VisitedStore struct {
	mu      sync.Mutex
	storage Storage
	visited map[string]struct{}
	loaded  bool
}

// NewVisitedStore creates an empty store. Call Load (typically in a
// goroutine at startup) before mutations are expected to persist.
func NewVisitedStore(storage Storage) *VisitedStore {
	return &VisitedStore{
		storage: storage,
		visited: map[string]struct{}{},
	}
}

// Load reads the persisted set. A missing key, unreadable storage or a
// corrupt blob all degrade to the empty set.
func (s *VisitedStore) Load(ctx context.Context) {
	data, err := s.storage.Get(ctx, visitedKey)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = true

	if err != nil {
		if err != ErrNotFound {
			log.Warn().Err(err).Msg("failed to load visited sites")
		}
		return
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		log.Warn().Err(err).Msg("corrupt visited sites blob, starting empty")
		return
	}
	for _, id := range ids {
		s.visited[id] = struct{}{}
	}
}

// Toggle flips the visited flag for a site and persists the whole set
func (s *VisitedStore) Toggle(ctx context.Context, siteID string) {
	s.mu.Lock()
	if _, ok := s.visited[siteID]; ok {
		delete(s.visited, siteID)
	} else {
		s.visited[siteID] = struct{}{}
	}
	s.persistLocked(ctx)
	s.mu.Unlock()
}

// IsVisited reports whether a site is marked visited
func (s *VisitedStore) IsVisited(siteID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.visited[siteID]
	return ok
}

// Visited returns the visited site ids, sorted
func (s *VisitedStore) Visited() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.idsLocked()
}

func (s *VisitedStore) idsLocked() []string {
	ids := make([]string, 0, len(s.visited))
	for id := range s.visited {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// persistLocked writes the full serialized set. Writes are suppressed
// until Load has run so defaults never clobber not-yet-read state.
func (s *VisitedStore) persistLocked(ctx context.Context) {
	if !s.loaded {
		return
	}
	data, err := json.Marshal(s.idsLocked())
	if err != nil {
		log.Warn().Err(err).Msg("failed to encode visited sites")
		return
	}
	if err := s.storage.Set(ctx, visitedKey, data); err != nil {
		log.Warn().Err(err).Msg("failed to save visited sites")
	}
}
