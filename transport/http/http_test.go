package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthDuringShutdown(t *testing.T) {
	tests := []struct {
		name     string
		state    ServerState
		wantBody string
	}{
		{name: "grace period", state: ServerStateInGracePeriod, wantBody: `{"message":"SERVER PREPARING TO SHUT DOWN"}`},
		{name: "cleanup period", state: ServerStateInCleanupPeriod, wantBody: `{"message":"SERVER UNHEALTHY"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &HTTP{}
			h.setState(tt.state)

			recorder := httptest.NewRecorder()
			h.health(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
			assert.JSONEq(t, tt.wantBody, recorder.Body.String())
		})
	}
}
