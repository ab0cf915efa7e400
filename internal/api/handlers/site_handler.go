package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/discoverguadeloupe/backend/internal/domain/entities"
	"github.com/discoverguadeloupe/backend/internal/domain/repositories"
	apperrors "github.com/discoverguadeloupe/backend/pkg/errors"
)

// SiteHandler handles site-related HTTP requests
type SiteHandler struct {
	siteRepo repositories.SiteRepository
}

// NewSiteHandler creates a new site handler
func NewSiteHandler(siteRepo repositories.SiteRepository) *SiteHandler {
	return &SiteHandler{
		siteRepo: siteRepo,
	}
}

// ListSites handles GET /sites
func (h *SiteHandler) ListSites(w http.ResponseWriter, r *http.Request) {
	sites, err := h.siteRepo.GetAll(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list sites")
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, sites)
}

// GetSite handles GET /sites/{id}
func (h *SiteHandler) GetSite(w http.ResponseWriter, r *http.Request) {
	siteID := r.PathValue("id")

	site, err := h.siteRepo.GetByID(r.Context(), siteID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			respondWithError(w, http.StatusNotFound, "Site not found")
			return
		}
		log.Error().Err(err).Str("site_id", siteID).Msg("failed to get site")
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, site)
}

// CreateSite handles POST /sites. The id is optional; the repository
// assigns one when it is missing.
func (h *SiteHandler) CreateSite(w http.ResponseWriter, r *http.Request) {
	var site entities.Site
	if err := decodeJSONBody(r, &site); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if site.Name == "" {
		respondWithError(w, http.StatusBadRequest, `Field "name" is required`)
		return
	}
	if err := site.Validate(); err != nil {
		respondWithError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	if err := h.siteRepo.Create(r.Context(), &site); err != nil {
		if apperrors.IsConflict(err) {
			respondWithError(w, http.StatusConflict, "A site with that id already exists")
			return
		}
		log.Error().Err(err).Msg("failed to create site")
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusCreated, &site)
}

// UpdateSite handles PUT and PATCH /sites/{id}
func (h *SiteHandler) UpdateSite(w http.ResponseWriter, r *http.Request) {
	siteID := r.PathValue("id")

	var changes repositories.SiteChangeset
	if err := decodeJSONBody(r, &changes); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if changes.IsEmpty() {
		respondWithError(w, http.StatusBadRequest, "Request body must contain at least one field to update")
		return
	}
	if err := changes.Validate(); err != nil {
		respondWithError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	site, err := h.siteRepo.Update(r.Context(), siteID, changes)
	if err != nil {
		switch apperrors.TypeOf(err) {
		case apperrors.ErrorTypeNotFound:
			respondWithError(w, http.StatusNotFound, "Site not found")
		case apperrors.ErrorTypeValidation:
			respondWithError(w, http.StatusBadRequest, validationMessage(err))
		default:
			log.Error().Err(err).Str("site_id", siteID).Msg("failed to update site")
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, site)
}

// DeleteSite handles DELETE /sites/{id}
func (h *SiteHandler) DeleteSite(w http.ResponseWriter, r *http.Request) {
	siteID := r.PathValue("id")

	existed, err := h.siteRepo.Delete(r.Context(), siteID)
	if err != nil {
		log.Error().Err(err).Str("site_id", siteID).Msg("failed to delete site")
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !existed {
		respondWithError(w, http.StatusNotFound, "Site not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func decodeJSONBody(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			// An absent body behaves like an empty object
			return nil
		}
		return err
	}
	return nil
}

// validationMessage extracts the user-facing message from a validation
// error without leaking internals of other error types.
func validationMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Type == apperrors.ErrorTypeValidation {
		return appErr.Message
	}
	return "Invalid request"
}

// Helper functions
func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}
