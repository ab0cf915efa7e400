package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/discoverguadeloupe/backend/internal/api/handlers"
	"github.com/discoverguadeloupe/backend/internal/api/routes"
	"github.com/discoverguadeloupe/backend/internal/domain/entities"
	"github.com/discoverguadeloupe/backend/internal/domain/repositories"
	apperrors "github.com/discoverguadeloupe/backend/pkg/errors"
)

// stubSiteRepo is an in-memory SiteRepository for handler tests
type stubSiteRepo struct {
	sites map[string]*entities.Site
	fail  error
}

func newStubSiteRepo(sites ...*entities.Site) *stubSiteRepo {
	r := &stubSiteRepo{sites: map[string]*entities.Site{}}
	for _, s := range sites {
		r.sites[s.ID] = s
	}
	return r
}

func (r *stubSiteRepo) GetAll(ctx context.Context) ([]*entities.Site, error) {
	if r.fail != nil {
		return nil, r.fail
	}
	out := []*entities.Site{}
	for _, s := range r.sites {
		out = append(out, s)
	}
	return out, nil
}

func (r *stubSiteRepo) GetByID(ctx context.Context, id string) (*entities.Site, error) {
	if r.fail != nil {
		return nil, r.fail
	}
	if s, ok := r.sites[id]; ok {
		return s, nil
	}
	return nil, apperrors.NewNotFoundError("site with id " + id + " not found")
}

func (r *stubSiteRepo) Create(ctx context.Context, site *entities.Site) error {
	if r.fail != nil {
		return r.fail
	}
	if site.ID == "" {
		site.ID = "generated-id"
	}
	if _, exists := r.sites[site.ID]; exists {
		return apperrors.NewConflictError("site with id " + site.ID + " already exists")
	}
	r.sites[site.ID] = site
	return nil
}

func (r *stubSiteRepo) Update(ctx context.Context, id string, changes repositories.SiteChangeset) (*entities.Site, error) {
	if r.fail != nil {
		return nil, r.fail
	}
	s, ok := r.sites[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("site with id " + id + " not found")
	}
	if changes.Name != nil {
		s.Name = *changes.Name
	}
	if changes.Rating != nil {
		s.Rating = *changes.Rating
	}
	if changes.Coordinates != nil {
		s.Coordinates = *changes.Coordinates
	}
	return s, nil
}

func (r *stubSiteRepo) Delete(ctx context.Context, id string) (bool, error) {
	if r.fail != nil {
		return false, r.fail
	}
	_, ok := r.sites[id]
	delete(r.sites, id)
	return ok, nil
}

func (r *stubSiteRepo) ResetAll(ctx context.Context, sites []*entities.Site) error {
	r.sites = map[string]*entities.Site{}
	for _, s := range sites {
		r.sites[s.ID] = s
	}
	return nil
}

func newTestServer(repo repositories.SiteRepository) http.Handler {
	router := routes.NewRouter(handlers.NewSiteHandler(repo), []string{"*"})
	return router.SetupRoutes()
}

func seededSite() *entities.Site {
	return &entities.Site{
		ID:          "la-soufriere",
		Name:        "La Soufrière Volcano",
		Description: "Active volcano.",
		Image:       "http://e/volcano.jpg",
		Duration:    "4-6 hours",
		CrowdLevel:  entities.CrowdLevelMedium,
		Rating:      4.9,
		Popularity:  entities.PopularityMustSee,
		Category:    "Nature",
		Coordinates: entities.Coordinates{Lat: 16.0447, Lng: -61.6647},
	}
}

func TestListSites(t *testing.T) {
	srv := newTestServer(newStubSiteRepo(seededSite()))

	req := httptest.NewRequest("GET", "/sites", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var sites []entities.Site
	require.NoError(t, json.NewDecoder(w.Body).Decode(&sites))
	require.Len(t, sites, 1)
	assert.Equal(t, "la-soufriere", sites[0].ID)
}

func TestListSites_EmptyCollectionIsArray(t *testing.T) {
	srv := newTestServer(newStubSiteRepo())

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest("GET", "/sites", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestListSites_StorageFailure(t *testing.T) {
	repo := newStubSiteRepo()
	repo.fail = apperrors.NewInternalError("boom", nil)
	srv := newTestServer(repo)

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest("GET", "/sites", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "Internal server error", body["error"])
	assert.NotContains(t, body["error"], "boom")
}

func TestGetSite_NotFound(t *testing.T) {
	srv := newTestServer(newStubSiteRepo())

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest("GET", "/sites/does-not-exist", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "Site not found", body["error"])
}

func TestCreateSite_EchoesAllFields(t *testing.T) {
	srv := newTestServer(newStubSiteRepo())

	payload := `{"name":"Test Site","description":"x","image":"http://e/i.png",` +
		`"duration":"1 hour","crowdLevel":"low","rating":4.5,"popularity":"popular",` +
		`"category":"Test","coordinates":{"lat":16.0,"lng":-61.5}}`
	req := httptest.NewRequest("POST", "/sites", strings.NewReader(payload))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var site entities.Site
	require.NoError(t, json.NewDecoder(w.Body).Decode(&site))
	assert.NotEmpty(t, site.ID)
	assert.Equal(t, "Test Site", site.Name)
	assert.Equal(t, "x", site.Description)
	assert.Equal(t, "http://e/i.png", site.Image)
	assert.Equal(t, "1 hour", site.Duration)
	assert.Equal(t, entities.CrowdLevelLow, site.CrowdLevel)
	assert.Equal(t, 4.5, site.Rating)
	assert.Equal(t, entities.PopularityPopular, site.Popularity)
	assert.Equal(t, "Test", site.Category)
	assert.Equal(t, entities.Coordinates{Lat: 16.0, Lng: -61.5}, site.Coordinates)
}

func TestCreateSite_MissingName(t *testing.T) {
	srv := newTestServer(newStubSiteRepo())

	req := httptest.NewRequest("POST", "/sites", strings.NewReader(`{"description":"nameless"}`))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateSite_Conflict(t *testing.T) {
	srv := newTestServer(newStubSiteRepo(seededSite()))

	payload := `{"id":"la-soufriere","name":"Duplicate","crowdLevel":"low",` +
		`"popularity":"popular","rating":1,"coordinates":{"lat":0,"lng":0}}`
	req := httptest.NewRequest("POST", "/sites", strings.NewReader(payload))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "A site with that id already exists", body["error"])
}

func TestCreateSite_RejectsOutOfRangeRating(t *testing.T) {
	srv := newTestServer(newStubSiteRepo())

	payload := `{"name":"Bad Rating","crowdLevel":"low","popularity":"popular",` +
		`"rating":5.5,"coordinates":{"lat":0,"lng":0}}`
	req := httptest.NewRequest("POST", "/sites", strings.NewReader(payload))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateSite_RejectsOutOfRangeCoordinates(t *testing.T) {
	srv := newTestServer(newStubSiteRepo())

	payload := `{"name":"Bad Coords","crowdLevel":"low","popularity":"popular",` +
		`"rating":4,"coordinates":{"lat":95.0,"lng":-61.5}}`
	req := httptest.NewRequest("POST", "/sites", strings.NewReader(payload))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateSite_EmptyBody(t *testing.T) {
	srv := newTestServer(newStubSiteRepo(seededSite()))

	req := httptest.NewRequest("PATCH", "/sites/la-soufriere", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateSite_PartialUpdate(t *testing.T) {
	srv := newTestServer(newStubSiteRepo(seededSite()))

	req := httptest.NewRequest("PATCH", "/sites/la-soufriere", strings.NewReader(`{"rating":3.0}`))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var site entities.Site
	require.NoError(t, json.NewDecoder(w.Body).Decode(&site))
	assert.Equal(t, 3.0, site.Rating)
	// Untouched fields retain their prior values
	assert.Equal(t, "La Soufrière Volcano", site.Name)
	assert.Equal(t, entities.PopularityMustSee, site.Popularity)
}

func TestUpdateSite_PutAlsoAccepted(t *testing.T) {
	srv := newTestServer(newStubSiteRepo(seededSite()))

	req := httptest.NewRequest("PUT", "/sites/la-soufriere", strings.NewReader(`{"name":"Renamed"}`))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateSite_NotFound(t *testing.T) {
	srv := newTestServer(newStubSiteRepo())

	req := httptest.NewRequest("PATCH", "/sites/ghost", strings.NewReader(`{"name":"x"}`))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateSite_RejectsOutOfRangeRating(t *testing.T) {
	srv := newTestServer(newStubSiteRepo(seededSite()))

	req := httptest.NewRequest("PATCH", "/sites/la-soufriere", strings.NewReader(`{"rating":-1}`))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteSite_TwiceInARow(t *testing.T) {
	srv := newTestServer(newStubSiteRepo(seededSite()))

	req := httptest.NewRequest("DELETE", "/sites/la-soufriere", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	req2 := httptest.NewRequest("DELETE", "/sites/la-soufriere", nil)
	w2 := httptest.NewRecorder()
	srv.ServeHTTP(w2, req2)
	assert.Equal(t, http.StatusNotFound, w2.Code)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(newStubSiteRepo())

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestCORSHeadersPresent(t *testing.T) {
	srv := newTestServer(newStubSiteRepo())

	req := httptest.NewRequest("GET", "/sites", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
