package recs

import (
	"errors"
	"net/http"
	"strconv"

	"movieapi/internal/httpx"
	"movieapi/internal/title"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

func parseBool(v string) bool {
	b, _ := strconv.ParseBool(v)
	return b
}

// ForUser handles GET /users/{userId}/recommendations
// @Summary Per-user recommendations
// @Description Three independent lists assembled from the precomputed tables
// @Tags recommendations
// @Produce json
// @Param userId path string true "External user id"
// @Param kidsMode query bool false "Exclude age-restricted titles"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /users/{userId}/recommendations [get]
func (h *HTTPHandler) ForUser(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if userID == "" {
		http.NotFound(w, r)
		return
	}

	recs, err := h.service.ForUser(r.Context(), userID, parseBool(r.URL.Query().Get("kidsMode")))
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, recs, nil)
}

// Neighbors handles GET /movies/{id}/recommendations
// @Summary Similar titles
// @Description Up to five titles similar to the seed title
// @Tags recommendations
// @Produce json
// @Param id path string true "Show id"
// @Param kidsMode query bool false "Exclude age-restricted titles"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /movies/{id}/recommendations [get]
func (h *HTTPHandler) Neighbors(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		http.NotFound(w, r)
		return
	}

	items, err := h.service.Neighbors(r.Context(), id, parseBool(r.URL.Query().Get("kidsMode")))
	if err != nil {
		if errors.Is(err, title.ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Title not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, items, nil)
}
