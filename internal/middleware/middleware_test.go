package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleAPIError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{
			name: "validation",
			err: &apperrors.ValidationError{Fields: []apperrors.FieldError{
				{Field: "email", Rule: "email", Message: "email must be a valid email address"},
			}},
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeValidationFailed,
		},
		{
			name:       "not found",
			err:        apperrors.NewResourceNotFoundError("course x not found"),
			wantStatus: http.StatusNotFound,
			wantCode:   dto.ErrorCodeResourceNotFound,
		},
		{
			name:       "bad request",
			err:        apperrors.NewBadRequestError("Material ID mismatch"),
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeBadRequest,
		},
		{
			name:       "connection",
			err:        &apperrors.ConnectionError{Err: errors.New("dial tcp: refused")},
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   dto.ErrorCodeDatabaseError,
		},
		{
			name:       "storage",
			err:        &apperrors.StorageError{Op: "enrollments.create", Err: errors.New("UNIQUE constraint failed")},
			wantStatus: http.StatusInternalServerError,
			wantCode:   dto.ErrorCodeInternalServer,
		},
		{
			name:       "unknown",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   dto.ErrorCodeInternalServer,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tc.err)

			if w.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, w.Code)
			}
			var resp dto.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if resp.Success || resp.Error == nil || resp.Error.Code != tc.wantCode {
				t.Fatalf("unexpected body %s", w.Body.String())
			}
		})
	}
}

func TestHandleAPIErrorKeepsMessages(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, apperrors.NewBadRequestError("Material ID mismatch"))

	if !strings.Contains(w.Body.String(), "Material ID mismatch") {
		t.Fatalf("expected message in body, got %s", w.Body.String())
	}
}

func TestParseUUIDParamRejectsGarbage(t *testing.T) {
	router := gin.New()
	router.GET("/courses/:courseId", func(c *gin.Context) {
		if _, ok := ParseUUIDParam(c, "courseId"); !ok {
			return
		}
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/courses/42", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/courses/6f1c2a57-1f1b-4c1e-9a57-3d2f8b0c9e11", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestBindJSONRejectsMalformedBody(t *testing.T) {
	router := gin.New()
	router.POST("/users", func(c *gin.Context) {
		var req dto.CreateUserRequest
		if !BindJSON(c, &req) {
			return
		}
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), string(dto.ErrorCodeBadRequest)) {
		t.Fatalf("expected 400 BAD_REQUEST, got %d %s", w.Code, w.Body.String())
	}
}

func TestRequestLoggerWritesOneEvent(t *testing.T) {
	var buf bytes.Buffer
	router := gin.New()
	router.Use(RequestLogger(zerolog.New(&buf)), Metrics())
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected one json event, got %q: %v", buf.String(), err)
	}
	if entry["path"] != "/health" || entry["status"] != float64(200) {
		t.Fatalf("unexpected log entry %v", entry)
	}
}

func TestMetricsLabelsByRouteTemplate(t *testing.T) {
	router := gin.New()
	router.Use(Metrics())
	router.GET("/courses/:courseId", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/courses/42", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	w := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := w.Body.String()
	for _, want := range []string{
		`coursehub_http_requests_total{method="GET",route="/courses/:courseId",status="204"}`,
		`coursehub_http_requests_total{method="GET",route="unmatched",status="404"}`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("missing series %s in:\n%s", want, body)
		}
	}
}
