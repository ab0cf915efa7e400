package entities

import (
	"fmt"

	apperrors "github.com/discoverguadeloupe/backend/pkg/errors"
)

// CrowdLevel is the expected visitor density at a site.
type CrowdLevel string

const (
	CrowdLevelLow    CrowdLevel = "low"
	CrowdLevelMedium CrowdLevel = "medium"
	CrowdLevelHigh   CrowdLevel = "high"
)

// Valid reports whether the crowd level is one of the known values.
func (c CrowdLevel) Valid() bool {
	switch c {
	case CrowdLevelLow, CrowdLevelMedium, CrowdLevelHigh:
		return true
	}
	return false
}

// Popularity is the editorial classification of a site.
type Popularity string

const (
	PopularityMustSee   Popularity = "must-see"
	PopularityPopular   Popularity = "popular"
	PopularityHiddenGem Popularity = "hidden-gem"
)

// Valid reports whether the popularity is one of the known values.
func (p Popularity) Valid() bool {
	switch p {
	case PopularityMustSee, PopularityPopular, PopularityHiddenGem:
		return true
	}
	return false
}

// Coordinates is a geographic position
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Validate checks that the coordinates are within valid ranges
func (c Coordinates) Validate() error {
	if c.Lat < -90 || c.Lat > 90 {
		return apperrors.NewValidationError(fmt.Sprintf("latitude %v out of range [-90,90]", c.Lat))
	}
	if c.Lng < -180 || c.Lng > 180 {
		return apperrors.NewValidationError(fmt.Sprintf("longitude %v out of range [-180,180]", c.Lng))
	}
	return nil
}

// Site is a point of interest with descriptive and geographic metadata.
// ID is a stable slug-like identifier; the server assigns a UUID on create
// when the payload omits it.
type Site struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	Duration    string      `json:"duration"`
	CrowdLevel  CrowdLevel  `json:"crowdLevel"`
	Rating      float64     `json:"rating"`
	Popularity  Popularity  `json:"popularity"`
	Category    string      `json:"category"`
	Coordinates Coordinates `json:"coordinates"`
}

// ValidateRating checks that a rating is within the [0,5] domain
func ValidateRating(rating float64) error {
	if rating < 0 || rating > 5 {
		return apperrors.NewValidationError(fmt.Sprintf("rating %v out of range [0,5]", rating))
	}
	return nil
}

// Validate checks all invariants on a site before it reaches storage
func (s *Site) Validate() error {
	if s.Name == "" {
		return apperrors.NewValidationError(`field "name" is required`)
	}
	if !s.CrowdLevel.Valid() {
		return apperrors.NewValidationError(fmt.Sprintf("invalid crowdLevel %q", s.CrowdLevel))
	}
	if !s.Popularity.Valid() {
		return apperrors.NewValidationError(fmt.Sprintf("invalid popularity %q", s.Popularity))
	}
	if err := ValidateRating(s.Rating); err != nil {
		return err
	}
	return s.Coordinates.Validate()
}

// SiteRating is a user's local rating of a site, unique per SiteID.
// It is never persisted server-side.
type SiteRating struct {
	SiteID string  `json:"siteId"`
	Rating float64 `json:"rating"`
}
