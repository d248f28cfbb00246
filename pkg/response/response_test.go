package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	router := gin.New()
	router.GET("/", handler)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

func TestSuccess(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		Success(c, gin.H{"value": 1})
	})

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, expected %d", w.Code, http.StatusOK)
	}

	resp := decode(t, w)
	if resp.Code != 0 {
		t.Errorf("Code = %d, expected 0", resp.Code)
	}
	if resp.Message != "ok" {
		t.Errorf("Message = %q, expected %q", resp.Message, "ok")
	}
	if resp.Data == nil {
		t.Error("Data should not be nil")
	}
}

func TestCreated(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		Created(c, gin.H{"id": 7})
	})

	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, expected %d", w.Code, http.StatusCreated)
	}

	resp := decode(t, w)
	if resp.Message != "created" {
		t.Errorf("Message = %q, expected %q", resp.Message, "created")
	}
}

func TestError_AppError(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		Error(c, NewNotFound("institution not found"))
	})

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, expected %d", w.Code, http.StatusNotFound)
	}

	resp := decode(t, w)
	if resp.Code != 404 {
		t.Errorf("Code = %d, expected 404", resp.Code)
	}
	if resp.Message != "institution not found" {
		t.Errorf("Message = %q, expected %q", resp.Message, "institution not found")
	}
}

func TestError_WrappedAppError(t *testing.T) {
	wrapped := errors.Join(NewBadRequest("bad scope"))

	w := performRequest(func(c *gin.Context) {
		Error(c, wrapped)
	})

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, expected %d", w.Code, http.StatusBadRequest)
	}
}

func TestError_GenericError(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		Error(c, errors.New("boom"))
	})

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, expected %d", w.Code, http.StatusInternalServerError)
	}

	resp := decode(t, w)
	if resp.Code != 500 {
		t.Errorf("Code = %d, expected 500", resp.Code)
	}
	if resp.Message != "boom" {
		t.Errorf("Message = %q, expected %q", resp.Message, "boom")
	}
}

func TestAppError_Error(t *testing.T) {
	err := NewConflict("already exists")
	if err.Error() != "already exists" {
		t.Errorf("Error() = %q, expected %q", err.Error(), "already exists")
	}
	if err.HTTPStatus != http.StatusConflict {
		t.Errorf("HTTPStatus = %d, expected %d", err.HTTPStatus, http.StatusConflict)
	}
}

func TestConstructors(t *testing.T) {
	cases := []struct {
		err    *AppError
		status int
	}{
		{NewBadRequest("x"), http.StatusBadRequest},
		{NewUnauthorized("x"), http.StatusUnauthorized},
		{NewNotFound("x"), http.StatusNotFound},
		{NewConflict("x"), http.StatusConflict},
		{NewServerError("x"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if tc.err.HTTPStatus != tc.status {
			t.Errorf("HTTPStatus = %d, expected %d", tc.err.HTTPStatus, tc.status)
		}
		if tc.err.Code != tc.status {
			t.Errorf("Code = %d, expected %d", tc.err.Code, tc.status)
		}
	}
}
