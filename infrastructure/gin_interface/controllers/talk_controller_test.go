package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nikshey/TWINSKILL/application/ports/inbound"
	"github.com/Nikshey/TWINSKILL/domain"
	"github.com/Nikshey/TWINSKILL/infrastructure/adapters"
	"github.com/Nikshey/TWINSKILL/infrastructure/gin_interface/dto"
	"github.com/Nikshey/TWINSKILL/middleware"
)

type recordingOrchestrator struct {
	result     domain.TalkResult
	lastParams inbound.TalkParams
}

func (o *recordingOrchestrator) Handle(_ context.Context, params inbound.TalkParams) domain.TalkResult {
	o.lastParams = params
	return o.result
}

func newTalkRouter(orchestrator inbound.TalkOrchestratorPort) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	NewTalkController(adapters.NewZerologWrapper(), orchestrator).RegisterRoutes(router)
	return router
}

func postTalk(router *gin.Engine, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/talk", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestTalkController_MissingFieldsRejected(t *testing.T) {
	router := newTalkRouter(&recordingOrchestrator{})

	recorder := postTalk(router, `{"imageUrl": "https://example.com/photo.jpg"}`, nil)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.JSONEq(t, `{"message": "imageUrl and text are required"}`, recorder.Body.String())
}

func TestTalkController_VideoResponse(t *testing.T) {
	orchestrator := &recordingOrchestrator{result: domain.TalkResult{
		Kind:     domain.TalkResultVideo,
		VideoURL: "https://cdn.example.com/talk.mp4",
		Persona: domain.Persona{
			Gender:   domain.GenderFemale,
			VoiceID:  "en-US-JennyNeural",
			VoiceURI: "Google UK English Female",
			Pitch:    1.2,
			Rate:     1.0,
			Volume:   1.0,
		},
		FaceDetails: domain.FaceAnalysis{FaceDetected: true, Gender: domain.GenderFemale},
	}}
	router := newTalkRouter(orchestrator)

	recorder := postTalk(router, `{"imageUrl": "https://example.com/photo.jpg", "text": "hello"}`, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var response dto.TalkResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

	assert.Equal(t, "https://cdn.example.com/talk.mp4", response.VideoURL)
	assert.Empty(t, response.Message)
	assert.Nil(t, response.AnimationData)
	assert.Equal(t, domain.GenderFemale, response.Gender)
	assert.Equal(t, "Google UK English Female", response.VoiceSettings.VoiceURI)

	assert.Equal(t, "https://example.com/photo.jpg", orchestrator.lastParams.ImageURL)
	assert.Equal(t, "hello", orchestrator.lastParams.Text)
}

func TestTalkController_FallbackResponseShape(t *testing.T) {
	orchestrator := &recordingOrchestrator{result: domain.TalkResult{
		Kind:     domain.TalkResultFallback,
		Text:     "hello",
		ImageURL: "https://example.com/photo.jpg",
		Persona: domain.Persona{
			Gender:   domain.GenderUnknown,
			VoiceURI: "Google US English",
			Pitch:    1.0,
			Rate:     1.0,
			Volume:   1.0,
		},
		FaceDetails: domain.FaceAnalysis{Gender: domain.GenderUnknown},
		Animation: &domain.AnimationHint{
			DurationMs:           500,
			Emotions:             []string{"happy", "thoughtful", "excited"},
			LipMovementIntensity: 1.0,
			HeadMovement:         true,
			BlinkFrequency:       0.5,
		},
	}}
	router := newTalkRouter(orchestrator)

	recorder := postTalk(router, `{"imageUrl": "https://example.com/photo.jpg", "text": "hello"}`, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))

	assert.Equal(t, "Fallback response", payload["message"])
	assert.Equal(t, "hello", payload["text"])
	assert.Equal(t, "https://example.com/photo.jpg", payload["imageUrl"])
	assert.NotContains(t, payload, "videoUrl")

	animation, ok := payload["animationData"].(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 500, animation["duration"])
	assert.EqualValues(t, 0.5, animation["blinkFrequency"])
}

func TestTalkController_BodyEmailUsedWithoutToken(t *testing.T) {
	orchestrator := &recordingOrchestrator{result: domain.TalkResult{Kind: domain.TalkResultFallback}}
	router := newTalkRouter(orchestrator)

	body := `{"imageUrl": "https://example.com/photo.jpg", "text": "hello", "userEmail": "body@gmail.com"}`
	recorder := postTalk(router, body, nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "body@gmail.com", orchestrator.lastParams.UserEmail)
}

// A valid session token overrides whatever email the body claims.
func TestTalkController_TokenPinsActingEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	orchestrator := &recordingOrchestrator{result: domain.TalkResult{Kind: domain.TalkResultFallback}}
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserEmailKey, "token@gmail.com")
	})
	NewTalkController(adapters.NewZerologWrapper(), orchestrator).RegisterRoutes(router)

	body := `{"imageUrl": "https://example.com/photo.jpg", "text": "hello", "userEmail": "body@gmail.com"}`
	recorder := postTalk(router, body, nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "token@gmail.com", orchestrator.lastParams.UserEmail)
}
