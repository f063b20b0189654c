package health

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testHealthCheckHelper struct {
	router *echo.Echo
}

func toolTestHealthCheckHelper(t *testing.T) testHealthCheckHelper {
	t.Helper()
	t.Parallel()

	app := echo.New()
	apiGroup := app.Group("/api")
	New(apiGroup)

	return testHealthCheckHelper{
		router: app,
	}
}

func TestMain(m *testing.M) {
	zap.ReplaceGlobals(zap.NewNop())
	os.Exit(m.Run())
}

func Test_Handler_healthCheck(t *testing.T) {
	testHelper := toolTestHealthCheckHelper(t)

	type mockData struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name      string
		urlCalled string
		mockData  mockData
	}{
		{
			name:      "success",
			urlCalled: "/api/health",
			mockData: mockData{
				wantRes:  `{"kind":"health","status":"server is up and running"}`,
				wantCode: 200,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.urlCalled, nil)
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tt.mockData.wantCode, resp.StatusCode)
			require.Equal(t, tt.mockData.wantRes, strings.TrimSuffix(string(body), "\n"))
		})
	}
}
