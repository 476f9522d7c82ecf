package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	w := httptest.NewRecorder()

	RespondWithJSON(w, http.StatusCreated, map[string]int{"clicks": 3})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"clicks":3}`, w.Body.String())
}

func TestRespondWithError(t *testing.T) {
	tests := []struct {
		name    string
		code    int
		message string
		respond func(w http.ResponseWriter, code int, message string)
		status  string
	}{
		{
			name:    "Error body",
			code:    http.StatusServiceUnavailable,
			message: "price unavailable",
			respond: RespondWithError,
			status:  "error",
		},
		{
			name:    "Success message body",
			code:    http.StatusOK,
			message: "partition 2 reset",
			respond: RespondWithMessage,
			status:  "success",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			tt.respond(w, tt.code, tt.message)

			assert.Equal(t, tt.code, w.Code)
			var body Response
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, Response{Status: tt.status, Message: tt.message}, body)
		})
	}
}
