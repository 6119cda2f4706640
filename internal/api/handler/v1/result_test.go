package v1

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/zonefest/zonefest-api/internal/service"
)

func TestRenderResultErr_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"duplicate result", fmt.Errorf("s.repo.Create -> %w", service.ErrResultExists), http.StatusConflict},
		{"missing result", fmt.Errorf("s.repo.FindByID -> %w", service.ErrResultNotFound), http.StatusNotFound},
		{"missing event", fmt.Errorf("s.repo.Create -> %w", service.ErrEventNotFound), http.StatusNotFound},
		{"missing event type", fmt.Errorf("s.repo.Create -> %w", service.ErrEventTypeNotFound), http.StatusNotFound},
		{"missing registration", fmt.Errorf("s.repo.Create -> %w", service.ErrRegistrationNotFound), http.StatusNotFound},
		{"invalid position", fmt.Errorf("s.repo.Create -> %w", service.ErrInvalidPosition), http.StatusBadRequest},
		{"store failure", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(recorder)

			renderResultErr(ctx, tc.err, 7)

			assert.Equal(t, tc.status, recorder.Code)
		})
	}
}
