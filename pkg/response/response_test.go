package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performHandler(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	router := gin.New()
	router.GET("/test", handler)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return resp
}

func TestSuccess(t *testing.T) {
	w := performHandler(func(c *gin.Context) {
		Success(c, gin.H{"id": 1})
	})

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, expected %d", w.Code, http.StatusOK)
	}
	resp := decodeBody(t, w)
	if resp.Code != 0 || resp.Message != "ok" {
		t.Errorf("unexpected envelope: %+v", resp)
	}
	if resp.Data == nil {
		t.Error("expected data to be set")
	}
}

func TestCreated(t *testing.T) {
	w := performHandler(func(c *gin.Context) {
		Created(c, gin.H{"id": 1})
	})

	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, expected %d", w.Code, http.StatusCreated)
	}
	if resp := decodeBody(t, w); resp.Message != "created" {
		t.Errorf("message = %q, expected %q", resp.Message, "created")
	}
}

func TestError_AppError(t *testing.T) {
	cases := []struct {
		err    *AppError
		status int
	}{
		{NewBadRequest("bad input"), http.StatusBadRequest},
		{NewUnauthorized("no token"), http.StatusUnauthorized},
		{NewForbidden("not yours"), http.StatusForbidden},
		{NewNotFound("missing"), http.StatusNotFound},
		{NewConflict("already there"), http.StatusConflict},
		{NewServerError("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		w := performHandler(func(c *gin.Context) {
			Error(c, tc.err)
		})

		if w.Code != tc.status {
			t.Errorf("%q: status = %d, expected %d", tc.err.Message, w.Code, tc.status)
		}
		resp := decodeBody(t, w)
		if resp.Message != tc.err.Message {
			t.Errorf("message = %q, expected %q", resp.Message, tc.err.Message)
		}
		if resp.Code != tc.err.Code {
			t.Errorf("code = %d, expected %d", resp.Code, tc.err.Code)
		}
	}
}

func TestError_WrappedAppError(t *testing.T) {
	wrapped := fmt.Errorf("decide: %w", NewConflict("already decided"))

	w := performHandler(func(c *gin.Context) {
		Error(c, wrapped)
	})

	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, expected %d", w.Code, http.StatusConflict)
	}
	if resp := decodeBody(t, w); resp.Message != "already decided" {
		t.Errorf("message = %q, expected %q", resp.Message, "already decided")
	}
}

func TestError_GenericErrorDoesNotLeak(t *testing.T) {
	w := performHandler(func(c *gin.Context) {
		Error(c, errors.New("dsn=user:secret@tcp(db)/prod"))
	})

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, expected %d", w.Code, http.StatusInternalServerError)
	}
	resp := decodeBody(t, w)
	if resp.Message != "internal server error" {
		t.Errorf("message = %q, expected generic text", resp.Message)
	}
}
