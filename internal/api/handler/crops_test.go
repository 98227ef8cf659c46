package handler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmstack/cropreqs/internal/api/handler"
	"github.com/farmstack/cropreqs/internal/api/models"
	"github.com/farmstack/cropreqs/internal/crops"
)

func newCropService(t *testing.T) *crops.Service {
	t.Helper()
	resolver, err := crops.DefaultResolver()
	require.NoError(t, err)

	svc, err := crops.NewService(crops.ServiceConfig{
		Resolver: resolver,
		Logger:   zerolog.New(io.Discard),
	})
	require.NoError(t, err)
	return svc
}

func newCropsRouter(t *testing.T) http.Handler {
	t.Helper()
	h := handler.NewCropsHandler(newCropService(t))

	r := chi.NewRouter()
	r.Get("/crops", h.List)
	r.Get("/crops/types", h.Types)
	r.Get("/crops/search", h.Search)
	r.Get("/crops/{name}", h.Resolve)
	return r
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, http.NoBody)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestCropsHandler_Resolve(t *testing.T) {
	router := newCropsRouter(t)

	tests := []struct {
		target        string
		wantKey       string
		wantMatchedBy string
	}{
		{"/crops/maize", "maize", "direct"},
		{"/crops/Mealies", "maize", "alternative"},
		{"/crops/tomatoes", "tomato", "depluralize_es"},
		{"/crops/carrots", "carrot", "depluralize_s"},
		{"/crops/sweet%20potato", "sweet_potato", "alternative"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			w := get(t, router, tt.target)
			require.Equal(t, http.StatusOK, w.Code)

			var match models.CropMatch
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &match))
			assert.Equal(t, tt.wantKey, match.Key)
			assert.Equal(t, tt.wantMatchedBy, match.MatchedBy)
			assert.Equal(t, tt.wantKey, match.Crop.Key)
			assert.NotEmpty(t, match.Crop.ScientificName)
		})
	}
}

func TestCropsHandler_Resolve_NotFound(t *testing.T) {
	w := get(t, newCropsRouter(t), "/crops/xyz123")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))

	var problem models.Problem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problem))
	assert.Equal(t, models.ProblemTypeCropNotFound, problem.Type)
	assert.Equal(t, `no crop matches "xyz123"`, problem.Detail)
	assert.Equal(t, "/crops/xyz123", problem.Instance)
}

func TestCropsHandler_List(t *testing.T) {
	w := get(t, newCropsRouter(t), "/crops")
	require.Equal(t, http.StatusOK, w.Code)

	var list models.CropList
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 35, list.Count)
	require.Len(t, list.Items, 35)
	assert.Equal(t, "maize", list.Items[0].Key)
}

func TestCropsHandler_List_ByType(t *testing.T) {
	w := get(t, newCropsRouter(t), "/crops?type=cucurbit")
	require.Equal(t, http.StatusOK, w.Code)

	var list models.CropList
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 3, list.Count)
	for _, c := range list.Items {
		assert.Equal(t, "Cucurbit", c.Type)
		assert.Empty(t, c.Key)
	}
}

func TestCropsHandler_List_BySeason(t *testing.T) {
	w := get(t, newCropsRouter(t), "/crops?season=Winter")
	require.Equal(t, http.StatusOK, w.Code)

	var list models.CropList
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.NotZero(t, list.Count)
	for _, c := range list.Items {
		assert.Contains(t, c.PlantingSeason, "Winter")
	}
}

func TestCropsHandler_List_NoMatchIsEmptyArray(t *testing.T) {
	w := get(t, newCropsRouter(t), "/crops?type=Mushroom")
	require.Equal(t, http.StatusOK, w.Code)

	assert.JSONEq(t, `{"items":[],"count":0}`, w.Body.String())
}

func TestCropsHandler_List_ConflictingFilters(t *testing.T) {
	w := get(t, newCropsRouter(t), "/crops?type=Cereal&season=Winter")

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var problem models.Problem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problem))
	assert.Equal(t, models.ProblemTypeValidation, problem.Type)
	require.Len(t, problem.Errors, 1)
	assert.Equal(t, "CONFLICTING_FILTER", problem.Errors[0].Code)
}

func TestCropsHandler_Types(t *testing.T) {
	w := get(t, newCropsRouter(t), "/crops/types")
	require.Equal(t, http.StatusOK, w.Code)

	var types models.CropTypes
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &types))
	assert.IsIncreasing(t, types.Items)
	assert.Contains(t, types.Items, "Cereal")
	assert.Contains(t, types.Items, "Legume")
}

func TestCropsHandler_Search(t *testing.T) {
	router := newCropsRouter(t)

	w := get(t, router, "/crops/search?q=POT")
	require.Equal(t, http.StatusOK, w.Code)

	var search models.CropNameSearch
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &search))
	assert.Equal(t, "POT", search.Query)
	assert.Equal(t, []string{"potato", "sweet_potato"}, search.Items)

	w = get(t, router, "/crops/search?q=")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"query":"","items":[]}`, w.Body.String())
}
