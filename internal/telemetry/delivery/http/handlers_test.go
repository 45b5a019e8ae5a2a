package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	recordMemory "carbontrack-api/internal/record/repository/memory"
	recordUC "carbontrack-api/internal/record/usecase"
	telemetryUC "carbontrack-api/internal/telemetry/usecase"
	pkgLog "carbontrack-api/pkg/log"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := pkgLog.Init(pkgLog.ZapConfig{Level: "fatal", Mode: "production", Encoding: "json"})
	uc := telemetryUC.New(l, recordUC.New(l, recordMemory.New()), nil, nil)

	r := gin.New()
	MapRoutes(r.Group("/api/v1"), New(l, uc))
	return r
}

func post(r *gin.Engine, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/emission/widget", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWidget(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		name       string
		body       map[string]any
		wantStatus int
	}{
		{
			name:       "valid sample",
			body:       map[string]any{"userId": "u1", "co2Emission": 0.002, "cpuLoad": 40.0},
			wantStatus: http.StatusOK,
		},
		{
			name:       "zero emission is still present",
			body:       map[string]any{"userId": "u1", "co2Emission": 0.0},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing userId",
			body:       map[string]any{"co2Emission": 0.002},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing co2Emission",
			body:       map[string]any{"userId": "u1"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := post(r, tc.body)
			require.Equal(t, tc.wantStatus, w.Code, w.Body.String())
		})
	}
}
