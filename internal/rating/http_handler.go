package rating

import (
	"encoding/json"
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

type upsertRatingReq struct {
	ShowID string `json:"showId" validate:"required"`
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Review string `json:"review" validate:"max=2000"`
}

// Upsert handles POST /ratings
// @Summary Rate a title
// @Description Create or replace the caller's rating and review for a title
// @Tags ratings
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body upsertRatingReq true "Rating request"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /ratings [post]
func (h *HTTPHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	var req upsertRatingReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	rt, err := h.service.Upsert(r.Context(), userID, req.ShowID, req.Rating, req.Review)
	if err != nil {
		if errors.Is(err, title.ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Title not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccessCreated(w, r, rt)
}

// ListByShow handles GET /movies/{id}/ratings
// @Summary Ratings for a title
// @Description All ratings and reviews for a title, newest first
// @Tags ratings
// @Produce json
// @Param id path string true "Show id"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /movies/{id}/ratings [get]
func (h *HTTPHandler) ListByShow(w http.ResponseWriter, r *http.Request) {
	showID := r.PathValue("id")
	if showID == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid show id", nil)
		return
	}

	ratings, err := h.service.ListByShow(r.Context(), showID)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	average, count, err := h.service.Summary(r.Context(), showID)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, map[string]any{
		"ratings":       ratings,
		"averageRating": average,
		"ratingsCount":  count,
	}, nil)
}

// ListMine handles GET /ratings/mine
// @Summary The caller's ratings
// @Tags ratings
// @Produce json
// @Security Bearer
// @Success 200 {object} httpx.SuccessResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /ratings/mine [get]
func (h *HTTPHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	ratings, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, ratings, nil)
}

// Delete handles DELETE /ratings/{id}
// @Summary Delete a rating
// @Description Users delete their own ratings; admins may delete any
// @Tags ratings
// @Security Bearer
// @Param id path int true "Rating id"
// @Success 204 "No Content"
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /ratings/{id} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid rating id", nil)
		return
	}

	isAdmin := httpx.RoleFrom(r) == "ADMIN"
	if err := h.service.Delete(r.Context(), id, userID, isAdmin); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Rating not found", nil)
		case errors.Is(err, ErrForbidden):
			httpx.JSONError(w, r, http.StatusForbidden, "FORBIDDEN", "Not allowed to delete this rating", nil)
		default:
			httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}

	httpx.JSONSuccessNoContent(w)
}
