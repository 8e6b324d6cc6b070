package title

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"movieapi/internal/genre"
	"movieapi/internal/httpx"
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

// List handles GET /movies
// @Summary List catalog titles
// @Description Search, filter and paginate the title catalog
// @Tags movies
// @Produce json
// @Param search query string false "Case-insensitive title substring"
// @Param genre query string false "Genre label filter"
// @Param page query int false "Page number (1-based)" default(1)
// @Param pageSize query int false "Titles per page" default(10)
// @Param kidsMode query bool false "Exclude age-restricted titles"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /movies [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(query.Get("pageSize"))
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 10
	}

	q := Query{
		Search:   query.Get("search"),
		Genre:    query.Get("genre"),
		Page:     page,
		PageSize: pageSize,
		KidsMode: parseBool(query.Get("kidsMode")),
	}

	result, err := h.service.Query(r.Context(), q)
	if err != nil {
		if errors.Is(err, genre.ErrUnrecognized) {
			httpx.JSONError(w, r, http.StatusBadRequest, "UNRECOGNIZED_GENRE", "Unknown genre: "+q.Genre, nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, result.Items, map[string]any{
		"totalCount":  result.TotalCount,
		"totalPages":  result.TotalPages,
		"currentPage": result.Page,
		"pageSize":    result.PageSize,
	})
}

// Genres handles GET /movies/genres
// @Summary List genres in use
// @Tags movies
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Router /movies/genres [get]
func (h *HTTPHandler) Genres(w http.ResponseWriter, r *http.Request) {
	labels, err := h.service.Genres(r.Context())
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, labels, nil)
}

// GetByID handles GET /movies/{id}
// @Summary Get a single title
// @Tags movies
// @Produce json
// @Param id path string true "Show id"
// @Param kidsMode query bool false "Exclude age-restricted titles"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /movies/{id} [get]
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		http.NotFound(w, r)
		return
	}

	item, err := h.service.GetByID(r.Context(), id, parseBool(r.URL.Query().Get("kidsMode")))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Title not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, item, nil)
}

type titleReq struct {
	ShowID      string   `json:"showId" validate:"required"`
	Type        string   `json:"type"`
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	ReleaseYear int      `json:"releaseYear"`
	Director    string   `json:"director"`
	Cast        string   `json:"cast"`
	Duration    string   `json:"duration"`
	Country     string   `json:"country"`
	Rating      string   `json:"rating"`
	Genres      []string `json:"genres"`
}

func (req *titleReq) toTitle() (*Title, []httpx.ErrorDetail) {
	flags := genre.NewFlags()
	var details []httpx.ErrorDetail
	for _, label := range req.Genres {
		idx, err := genre.Index(label)
		if err != nil {
			details = append(details, httpx.ErrorDetail{Field: "genres", Message: "unknown genre: " + label})
			continue
		}
		flags.Set(idx)
	}
	if details != nil {
		return nil, details
	}
	return &Title{
		ShowID:      req.ShowID,
		Type:        req.Type,
		Name:        req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		ReleaseYear: req.ReleaseYear,
		Director:    req.Director,
		Cast:        req.Cast,
		Duration:    req.Duration,
		Country:     req.Country,
		Rating:      req.Rating,
		Genres:      flags,
	}, nil
}

func requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if httpx.RoleFrom(r) != "ADMIN" {
		httpx.JSONError(w, r, http.StatusForbidden, "FORBIDDEN", "Admin role required", nil)
		return false
	}
	return true
}

// Create handles POST /movies (admin)
// @Summary Create a title
// @Tags movies
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body titleReq true "Title"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /movies [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	var req titleReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	t, details := req.toTitle()
	if details != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "UNRECOGNIZED_GENRE", "Invalid genre labels", details)
		return
	}

	if err := h.service.Create(r.Context(), t); err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			httpx.JSONError(w, r, http.StatusConflict, "ALREADY_EXISTS", "Show id already exists", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessCreated(w, r, map[string]string{"showId": t.ShowID})
}

// Update handles PUT /movies/{id} (admin)
// @Summary Update a title
// @Tags movies
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Show id"
// @Param request body titleReq true "Title"
// @Success 204 "No Content"
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /movies/{id} [put]
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	id := r.PathValue("id")

	var req titleReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if req.ShowID != "" && req.ShowID != id {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Show id mismatch", nil)
		return
	}
	req.ShowID = id
	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	t, details := req.toTitle()
	if details != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "UNRECOGNIZED_GENRE", "Invalid genre labels", details)
		return
	}

	if err := h.service.Update(r.Context(), t); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Title not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessNoContent(w)
}

// Delete handles DELETE /movies/{id} (admin)
// @Summary Delete a title
// @Tags movies
// @Security Bearer
// @Param id path string true "Show id"
// @Success 204 "No Content"
// @Failure 404 {object} httpx.ErrorResponse
// @Router /movies/{id} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	id := r.PathValue("id")
	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Title not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessNoContent(w)
}
