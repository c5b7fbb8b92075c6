package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"veritas-core/internal/domain/entity"
	"veritas-core/internal/logging"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorMasksInternalFailures(t *testing.T) {
	h := &Handler{log: logging.Discard()}
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"store failure", errors.New("redis: connection pool timeout"), http.StatusInternalServerError, entity.ErrInternalServer.Error()},
		{"analysis failure", fmt.Errorf("%w: engine gpt4: %w", entity.ErrAnalysisFailed, errors.New("boom")), http.StatusInternalServerError, entity.AnalysisFailedMessage},
		{"validation", entity.ErrEmptyText, http.StatusBadRequest, entity.ErrEmptyText.Error()},
		{"premium", entity.ErrPremiumFeature, http.StatusForbidden, entity.ErrPremiumFeature.Error()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return h.writeError(c, tt.err) })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, resp.StatusCode)
			body := decode[map[string]string](t, resp)
			assert.Equal(t, tt.wantMsg, body["error"])
		})
	}
}
