package title

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"movieapi/internal/httpx"
)

func TestHTTPHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)
	handler := NewHTTPHandler(service)

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]Title{}, 0, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/movies?search=test", nil)

		handler.List(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unrecognized genre", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/movies?genre=Westerns", nil)

		handler.List(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "UNRECOGNIZED_GENRE")
	})

	t.Run("repo error", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, 0, errors.New("db error"))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/movies", nil)

		handler.List(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHTTPHandler_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)
	handler := NewHTTPHandler(service)

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), "s1").Return(Title{ShowID: "s1", Name: "Test"}, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/movies/s1", nil)
		r.SetPathValue("id", "s1")

		handler.GetByID(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), "s1").Return(Title{}, ErrNotFound)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/movies/s1", nil)
		r.SetPathValue("id", "s1")

		handler.GetByID(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("kids mode hides restricted", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), "s1").Return(Title{ShowID: "s1", Rating: "TV-MA"}, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/movies/s1?kidsMode=true", nil)
		r.SetPathValue("id", "s1")

		handler.GetByID(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func adminRequest(method, path, body string) *http.Request {
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r.WithContext(httpx.ContextWithUser(r.Context(), "admin-id", "ADMIN"))
}

func TestHTTPHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)
	handler := NewHTTPHandler(service)

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		w := httptest.NewRecorder()
		r := adminRequest(http.MethodPost, "/movies", `{"showId":"s1","title":"Test","genres":["Drama"]}`)

		handler.Create(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("forbidden without admin role", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/movies", strings.NewReader(`{"showId":"s1","title":"Test"}`))

		handler.Create(w, r)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("unknown genre label", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := adminRequest(http.MethodPost, "/movies", `{"showId":"s1","title":"Test","genres":["Westerns"]}`)

		handler.Create(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "UNRECOGNIZED_GENRE")
	})

	t.Run("duplicate show id", func(t *testing.T) {
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(ErrAlreadyExists)

		w := httptest.NewRecorder()
		r := adminRequest(http.MethodPost, "/movies", `{"showId":"s1","title":"Test"}`)

		handler.Create(w, r)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestHTTPHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)
	handler := NewHTTPHandler(service)

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().Delete(gomock.Any(), "s1").Return(nil)

		w := httptest.NewRecorder()
		r := adminRequest(http.MethodDelete, "/movies/s1", "")
		r.SetPathValue("id", "s1")

		handler.Delete(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().Delete(gomock.Any(), "s1").Return(ErrNotFound)

		w := httptest.NewRecorder()
		r := adminRequest(http.MethodDelete, "/movies/s1", "")
		r.SetPathValue("id", "s1")

		handler.Delete(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
