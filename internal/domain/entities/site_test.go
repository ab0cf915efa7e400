package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/discoverguadeloupe/backend/internal/domain/entities"
	apperrors "github.com/discoverguadeloupe/backend/pkg/errors"
)

func validSite() *entities.Site {
	return &entities.Site{
		ID:          "la-soufriere",
		Name:        "La Soufrière Volcano",
		Description: "Active volcano and highest peak in the Lesser Antilles.",
		Image:       "https://example.com/soufriere.jpg",
		Duration:    "4-6 hours",
		CrowdLevel:  entities.CrowdLevelMedium,
		Rating:      4.9,
		Popularity:  entities.PopularityMustSee,
		Category:    "Nature",
		Coordinates: entities.Coordinates{Lat: 16.0447, Lng: -61.6647},
	}
}

func TestSite_Validate(t *testing.T) {
	assert.NoError(t, validSite().Validate())
}

func TestSite_Validate_RequiresName(t *testing.T) {
	site := validSite()
	site.Name = ""

	err := site.Validate()
	assert.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestSite_Validate_RatingRange(t *testing.T) {
	for _, rating := range []float64{-0.1, 5.1, 100} {
		site := validSite()
		site.Rating = rating

		err := site.Validate()
		assert.Error(t, err, "rating %v should be rejected", rating)
		assert.True(t, apperrors.IsValidation(err))
	}

	for _, rating := range []float64{0, 2.5, 5} {
		site := validSite()
		site.Rating = rating
		assert.NoError(t, site.Validate(), "rating %v should be accepted", rating)
	}
}

func TestSite_Validate_CoordinateRanges(t *testing.T) {
	cases := []entities.Coordinates{
		{Lat: 90.5, Lng: 0},
		{Lat: -91, Lng: 0},
		{Lat: 0, Lng: 180.5},
		{Lat: 0, Lng: -181},
	}
	for _, coords := range cases {
		site := validSite()
		site.Coordinates = coords

		err := site.Validate()
		assert.Error(t, err, "coordinates %+v should be rejected", coords)
		assert.True(t, apperrors.IsValidation(err))
	}
}

func TestSite_Validate_Enums(t *testing.T) {
	site := validSite()
	site.CrowdLevel = "packed"
	assert.True(t, apperrors.IsValidation(site.Validate()))

	site = validSite()
	site.Popularity = "legendary"
	assert.True(t, apperrors.IsValidation(site.Validate()))
}
