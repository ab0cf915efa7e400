package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/discoverguadeloupe/backend/internal/domain/entities"
	"github.com/discoverguadeloupe/backend/internal/domain/repositories"
	"github.com/discoverguadeloupe/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/discoverguadeloupe/backend/pkg/errors"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint hit
const uniqueViolation = "23505"

var siteColumns = []interface{}{
	"id", "name", "description", "image", "duration",
	"crowd_level", "rating", "popularity", "category", "lat", "lng",
}

// SiteAdapter implements the SiteRepository interface against PostgreSQL.
// It is the sole point of translation between the Site entity and its row
// encoding.
type SiteAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewSiteAdapter creates a new site adapter
func NewSiteAdapter(client *postgres.Client) *SiteAdapter {
	return &SiteAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// siteRecord builds the insert record for a site
func siteRecord(site *entities.Site) goqu.Record {
	return goqu.Record{
		"id":          site.ID,
		"name":        site.Name,
		"description": site.Description,
		"image":       site.Image,
		"duration":    site.Duration,
		"crowd_level": string(site.CrowdLevel),
		"rating":      site.Rating,
		"popularity":  string(site.Popularity),
		"category":    site.Category,
		"lat":         site.Coordinates.Lat,
		"lng":         site.Coordinates.Lng,
	}
}

// scanSite reads one row into a Site. rating, lat and lng are NUMERIC
// columns; the driver hands them back as text, so they are parsed to
// float64 here.
func scanSite(scan func(dest ...interface{}) error) (*entities.Site, error) {
	site := &entities.Site{}
	var rating, lat, lng string

	err := scan(
		&site.ID,
		&site.Name,
		&site.Description,
		&site.Image,
		&site.Duration,
		&site.CrowdLevel,
		&rating,
		&site.Popularity,
		&site.Category,
		&lat,
		&lng,
	)
	if err != nil {
		return nil, err
	}

	if site.Rating, err = strconv.ParseFloat(rating, 64); err != nil {
		return nil, fmt.Errorf("parse rating %q: %w", rating, err)
	}
	if site.Coordinates.Lat, err = strconv.ParseFloat(lat, 64); err != nil {
		return nil, fmt.Errorf("parse lat %q: %w", lat, err)
	}
	if site.Coordinates.Lng, err = strconv.ParseFloat(lng, 64); err != nil {
		return nil, fmt.Errorf("parse lng %q: %w", lng, err)
	}

	return site, nil
}

// GetAll retrieves every site ordered by name ascending
func (a *SiteAdapter) GetAll(ctx context.Context) ([]*entities.Site, error) {
	query, args, err := a.db.Select(siteColumns...).
		From("sites").
		Order(goqu.I("name").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list sites", err)
	}
	defer rows.Close()

	sites := []*entities.Site{}
	for rows.Next() {
		site, err := scanSite(rows.Scan)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan site", err)
		}
		sites = append(sites, site)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating sites", err)
	}

	return sites, nil
}

// GetByID retrieves a site by ID
func (a *SiteAdapter) GetByID(ctx context.Context, id string) (*entities.Site, error) {
	query, args, err := a.db.Select(siteColumns...).
		From("sites").
		Where(goqu.Ex{"id": id}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	site, err := scanSite(a.client.DB().QueryRowContext(ctx, query, args...).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("site with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get site", err)
	}

	return site, nil
}

// Create inserts a new site. When site.ID is empty a UUID is generated
// and written back to the entity. A duplicate id maps to a Conflict error.
func (a *SiteAdapter) Create(ctx context.Context, site *entities.Site) error {
	if site.ID == "" {
		site.ID = uuid.New().String()
	}

	query, args, err := a.db.Insert("sites").Prepared(true).Rows(siteRecord(site)).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	_, err = a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return apperrors.NewConflictError(fmt.Sprintf("site with id %s already exists", site.ID))
		}
		return apperrors.NewInternalError("failed to create site", err)
	}

	return nil
}

// Update applies the set fields of the changeset and returns the updated
// site. The id column is immutable; coordinates expand to the lat and lng
// columns.
func (a *SiteAdapter) Update(ctx context.Context, id string, changes repositories.SiteChangeset) (*entities.Site, error) {
	if changes.IsEmpty() {
		return nil, apperrors.NewValidationError("changeset contains no fields to update")
	}

	record := goqu.Record{}
	if changes.Name != nil {
		record["name"] = *changes.Name
	}
	if changes.Description != nil {
		record["description"] = *changes.Description
	}
	if changes.Image != nil {
		record["image"] = *changes.Image
	}
	if changes.Duration != nil {
		record["duration"] = *changes.Duration
	}
	if changes.CrowdLevel != nil {
		record["crowd_level"] = string(*changes.CrowdLevel)
	}
	if changes.Rating != nil {
		record["rating"] = *changes.Rating
	}
	if changes.Popularity != nil {
		record["popularity"] = string(*changes.Popularity)
	}
	if changes.Category != nil {
		record["category"] = *changes.Category
	}
	if changes.Coordinates != nil {
		record["lat"] = changes.Coordinates.Lat
		record["lng"] = changes.Coordinates.Lng
	}

	query, args, err := a.db.Update("sites").
		Set(record).
		Where(goqu.Ex{"id": id}).
		Returning(siteColumns...).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build update query", err)
	}

	site, err := scanSite(a.client.DB().QueryRowContext(ctx, query, args...).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("site with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to update site", err)
	}

	return site, nil
}

// Delete removes a site and reports whether a row existed
func (a *SiteAdapter) Delete(ctx context.Context, id string) (bool, error) {
	query, args, err := a.db.Delete("sites").
		Where(goqu.Ex{"id": id}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return false, apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return false, apperrors.NewInternalError("failed to delete site", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, apperrors.NewInternalError("failed to get rows affected", err)
	}

	return rowsAffected > 0, nil
}

// ResetAll replaces the whole collection with the given sites in one
// transaction
func (a *SiteAdapter) ResetAll(ctx context.Context, sites []*entities.Site) error {
	tx, err := a.client.BeginTx(ctx)
	if err != nil {
		return apperrors.NewInternalError("failed to begin transaction", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "TRUNCATE TABLE sites"); err != nil {
		return apperrors.NewInternalError("failed to truncate sites", err)
	}

	for _, site := range sites {
		query, args, err := a.db.Insert("sites").Prepared(true).Rows(siteRecord(site)).ToSQL()
		if err != nil {
			return apperrors.NewInternalError("failed to build insert query", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return apperrors.NewInternalError(fmt.Sprintf("failed to insert site %s", site.ID), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewInternalError("failed to commit reset", err)
	}

	return nil
}

var _ repositories.SiteRepository = (*SiteAdapter)(nil)
