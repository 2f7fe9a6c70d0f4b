package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodbrew/moodbrew-backend/internal/api/handlers"
	"github.com/moodbrew/moodbrew-backend/internal/application/services"
)

func TestChatHandler_Analyze_FirstMessage(t *testing.T) {
	handler := handlers.NewChatHandler(services.NewMoodService(nil))

	body := `{"text":"I feel happy today","history":[],"language":"en"}`
	req := httptest.NewRequest("POST", "/api/chat", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Analyze(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.NotEmpty(t, response["text"])
	// First message never carries an emotion or recommendation.
	assert.NotContains(t, response, "emotion")
	assert.NotContains(t, response, "recommendation")
}

func TestChatHandler_Analyze_FollowUpRecommends(t *testing.T) {
	handler := handlers.NewChatHandler(services.NewMoodService(nil))

	body := `{
		"text":"so tired after this long week",
		"history":[{"sender":"user","text":"hello"},{"sender":"bot","text":"tell me more"}],
		"language":"en"
	}`
	req := httptest.NewRequest("POST", "/api/chat", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Analyze(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Text           string `json:"text"`
		Emotion        string `json:"emotion"`
		Recommendation *struct {
			ID int `json:"id"`
		} `json:"recommendation"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "tired", response.Emotion)
	require.NotNil(t, response.Recommendation)
	assert.Equal(t, 2, response.Recommendation.ID)
}

func TestChatHandler_Analyze_MissingText(t *testing.T) {
	handler := handlers.NewChatHandler(services.NewMoodService(nil))

	req := httptest.NewRequest("POST", "/api/chat", strings.NewReader(`{"text":"  "}`))
	w := httptest.NewRecorder()

	handler.Analyze(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatHandler_Analyze_InvalidJSON(t *testing.T) {
	handler := handlers.NewChatHandler(services.NewMoodService(nil))

	req := httptest.NewRequest("POST", "/api/chat", strings.NewReader(`{`))
	w := httptest.NewRecorder()

	handler.Analyze(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
