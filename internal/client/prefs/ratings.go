package prefs

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/discoverguadeloupe/backend/internal/domain/entities"
)

const ratingsKey = "site_ratings"

// RatingStore holds the user's local per-site ratings, one entry per
// site id.
type RatingStore struct {
	mu      sync.Mutex
	storage Storage
	ratings map[string]float64
	loaded  bool
}

// NewRatingStore creates an empty store
func NewRatingStore(storage Storage) *RatingStore {
	return &RatingStore{
		storage: storage,
		ratings: map[string]float64{},
	}
}

// Load reads the persisted ratings, degrading to empty on any failure
func (s *RatingStore) Load(ctx context.Context) {
	data, err := s.storage.Get(ctx, ratingsKey)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = true

	if err != nil {
		if err != ErrNotFound {
			log.Warn().Err(err).Msg("failed to load site ratings")
		}
		return
	}

	var entries []entities.SiteRating
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Warn().Err(err).Msg("corrupt site ratings blob, starting empty")
		return
	}
	for _, e := range entries {
		s.ratings[e.SiteID] = e.Rating
	}
}

// Set records a rating for a site, overwriting any existing entry.
// Values outside [0,5] are rejected.
func (s *RatingStore) Set(ctx context.Context, siteID string, rating float64) error {
	if err := entities.ValidateRating(rating); err != nil {
		return err
	}

	s.mu.Lock()
	s.ratings[siteID] = rating
	s.persistLocked(ctx)
	s.mu.Unlock()
	return nil
}

// Get returns the rating for a site and whether one exists
func (s *RatingStore) Get(siteID string) (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rating, ok := s.ratings[siteID]
	return rating, ok
}

// Clear removes the rating for a site
func (s *RatingStore) Clear(ctx context.Context, siteID string) {
	s.mu.Lock()
	delete(s.ratings, siteID)
	s.persistLocked(ctx)
	s.mu.Unlock()
}

// All returns every rating entry, sorted by site id
func (s *RatingStore) All() []entities.SiteRating {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entriesLocked()
}

func (s *RatingStore) entriesLocked() []entities.SiteRating {
	entries := make([]entities.SiteRating, 0, len(s.ratings))
	for id, rating := range s.ratings {
		entries = append(entries, entities.SiteRating{SiteID: id, Rating: rating})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].SiteID < entries[j].SiteID })
	return entries
}

func (s *RatingStore) persistLocked(ctx context.Context) {
	if !s.loaded {
		return
	}
	data, err := json.Marshal(s.entriesLocked())
	if err != nil {
		log.Warn().Err(err).Msg("failed to encode site ratings")
		return
	}
	if err := s.storage.Set(ctx, ratingsKey, data); err != nil {
		log.Warn().Err(err).Msg("failed to save site ratings")
	}
}
