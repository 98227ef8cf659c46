package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/farmstack/cropreqs/internal/api/models"
	"github.com/farmstack/cropreqs/internal/api/response"
	"github.com/farmstack/cropreqs/internal/crops"
)

// CropsHandler handles crop requirement endpoints.
type CropsHandler struct {
	service *crops.Service
}

// NewCropsHandler creates a new CropsHandler.
func NewCropsHandler(service *crops.Service) *CropsHandler {
	return &CropsHandler{service: service}
}

// List handles GET /v1/crops - all crops, or those matching ?type= or ?season=.
func (h *CropsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()
	cropType := query.Get("type")
	season := query.Get("season")

	if cropType != "" && season != "" {
		response.BadRequest(w, r, "type and season filters cannot be combined", []models.FieldError{
			{Field: "season", Message: "cannot be combined with type", Code: "CONFLICTING_FILTER"},
		})
		return
	}

	var items []models.Crop
	switch {
	case cropType != "":
		items = toCrops(h.service.ListByType(ctx, cropType))
	case season != "":
		items = toCrops(h.service.ListBySeason(ctx, season))
	default:
		entries := h.service.All(ctx)
		items = make([]models.Crop, 0, len(entries))
		for _, e := range entries {
			items = append(items, toCrop(e.Key, e.Requirements))
		}
	}

	response.JSON(w, r, http.StatusOK, models.CropList{Items: items, Count: len(items)})
}

// Types handles GET /v1/crops/types - distinct crop types.
func (h *CropsHandler) Types(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, models.CropTypes{Items: h.service.ListAllTypes(r.Context())})
}

// Search handles GET /v1/crops/search?q= - canonical keys containing q.
func (h *CropsHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	response.JSON(w, r, http.StatusOK, models.CropNameSearch{
		Query: q,
		Items: h.service.SearchNames(r.Context(), q),
	})
}

// Resolve handles GET /v1/crops/{name} - resolve a free-text crop name.
func (h *CropsHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	m, err := h.service.Resolve(r.Context(), name)
	if err != nil {
		if errors.Is(err, crops.ErrCropNotFound) {
			response.CropNotFound(w, r, name)
			return
		}
		response.InternalError(w, r, "failed to resolve crop")
		return
	}

	response.JSON(w, r, http.StatusOK, models.CropMatch{
		Query:     name,
		Key:       m.Key,
		MatchedBy: string(m.Strategy),
		Crop:      toCrop(m.Key, m.Requirements),
	})
}

func toCrops(reqs []crops.Requirements) []models.Crop {
	out := make([]models.Crop, 0, len(reqs))
	for _, req := range reqs {
		out = append(out, toCrop("", req))
	}
	return out
}

func toCrop(key string, req crops.Requirements) models.Crop {
	return models.Crop{
		Key:                       key,
		ScientificName:            req.ScientificName,
		Type:                      req.Type,
		PlantingSeason:            req.PlantingSeason,
		GrowthDurationDays:        req.GrowthDurationDays,
		ExpectedYieldKgPerHectare: req.ExpectedYieldKgPerHectare,
		PreferredSoil:             req.PreferredSoil,
		MinTemperature:            req.MinTemperature,
		CommonPestsDiseases:       req.CommonPestsDiseases,
		Notes:                     req.Notes,
		Source:                    req.Source,
	}
}
