package repositories

import (
	"context"
	"fmt"

	"github.com/discoverguadeloupe/backend/internal/domain/entities"
	apperrors "github.com/discoverguadeloupe/backend/pkg/errors"
)

// SiteChangeset is a partial update to a site. Each nil field is left
// untouched; the field set is closed at compile time so no dynamic key
// iteration ever reaches the SQL layer. The JSON shape doubles as the
// PATCH request body.
type SiteChangeset struct {
	Name        *string               `json:"name,omitempty"`
	Description *string               `json:"description,omitempty"`
	Image       *string               `json:"image,omitempty"`
	Duration    *string               `json:"duration,omitempty"`
	CrowdLevel  *entities.CrowdLevel  `json:"crowdLevel,omitempty"`
	Rating      *float64              `json:"rating,omitempty"`
	Popularity  *entities.Popularity  `json:"popularity,omitempty"`
	Category    *string               `json:"category,omitempty"`
	Coordinates *entities.Coordinates `json:"coordinates,omitempty"`
}

// IsEmpty reports whether no field is set
func (c SiteChangeset) IsEmpty() bool {
	return c.Name == nil &&
		c.Description == nil &&
		c.Image == nil &&
		c.Duration == nil &&
		c.CrowdLevel == nil &&
		c.Rating == nil &&
		c.Popularity == nil &&
		c.Category == nil &&
		c.Coordinates == nil
}

// Validate checks every set field against the site invariants
func (c SiteChangeset) Validate() error {
	if c.Name != nil && *c.Name == "" {
		return apperrors.NewValidationError(`field "name" must not be empty`)
	}
	if c.CrowdLevel != nil && !c.CrowdLevel.Valid() {
		return apperrors.NewValidationError(fmt.Sprintf("invalid crowdLevel %q", *c.CrowdLevel))
	}
	if c.Popularity != nil && !c.Popularity.Valid() {
		return apperrors.NewValidationError(fmt.Sprintf("invalid popularity %q", *c.Popularity))
	}
	if c.Rating != nil {
		if err := entities.ValidateRating(*c.Rating); err != nil {
			return err
		}
	}
	if c.Coordinates != nil {
		if err := c.Coordinates.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// SiteRepository is the sole access path to the canonical site collection
type SiteRepository interface {
	// GetAll returns every site ordered by name ascending
	GetAll(ctx context.Context) ([]*entities.Site, error)

	// GetByID returns the site or a NotFound error when no row matches
	GetByID(ctx context.Context, id string) (*entities.Site, error)

	// Create inserts the site, assigning a UUID when site.ID is empty.
	// A duplicate id yields a Conflict error.
	Create(ctx context.Context, site *entities.Site) error

	// Update applies the set fields of the changeset and returns the
	// updated site, or a NotFound error when the id is absent. An empty
	// changeset is rejected with a Validation error.
	Update(ctx context.Context, id string, changes SiteChangeset) (*entities.Site, error)

	// Delete removes the row and reports whether it existed
	Delete(ctx context.Context, id string) (bool, error)

	// ResetAll replaces the whole collection with the given sites in a
	// single transaction
	ResetAll(ctx context.Context, sites []*entities.Site) error
}
