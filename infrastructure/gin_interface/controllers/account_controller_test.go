package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nikshey/TWINSKILL/application/ports/outbound"
	"github.com/Nikshey/TWINSKILL/application/services"
	"github.com/Nikshey/TWINSKILL/config"
	"github.com/Nikshey/TWINSKILL/domain"
	"github.com/Nikshey/TWINSKILL/infrastructure/adapters"
	"github.com/Nikshey/TWINSKILL/infrastructure/gin_interface/dto"
	"github.com/Nikshey/TWINSKILL/middleware"
)

type fixedFaceAnalyzer struct {
	result domain.FaceAnalysis
}

func (a fixedFaceAnalyzer) Analyze(string, []byte) domain.FaceAnalysis {
	return a.result
}

type inlineDispatcher struct{}

func (inlineDispatcher) Submit(task func()) error {
	task()
	return nil
}

// newAccountRouter wires the account endpoints over the in-memory store the
// way main does, with inline task dispatch so cleanup happens before asserts.
func newAccountRouter(t *testing.T) (*gin.Engine, outbound.UserStorePort) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := adapters.NewZerologWrapper()
	userStore := adapters.NewMemoryUserStore()
	photoStore, err := adapters.NewLocalPhotoStore(logger, &config.UploadsConfig{Dir: t.TempDir()})
	require.NoError(t, err)

	authHandler := middleware.NewAuthHandler(&config.AuthConfig{TokenSecret: "test-secret", TokenTTL: time.Hour})
	accounts := services.NewAccountService(logger, userStore, photoStore,
		fixedFaceAnalyzer{result: domain.FaceAnalysis{FaceDetected: true, Gender: domain.GenderFemale}},
		inlineDispatcher{}, authHandler)

	router := gin.New()
	router.Use(authHandler.AuthMiddleware())
	NewAccountController(logger, accounts, userStore).RegisterRoutes(router)
	return router, userStore
}

func registerForm(name, email string) url.Values {
	return url.Values{
		"name":     {name},
		"email":    {email},
		"phone":    {"1234567890"},
		"password": {"secret123"},
		"gender":   {"female"},
	}
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func sendJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestAccountController_RegisterAndLogin(t *testing.T) {
	router, _ := newAccountRouter(t)

	recorder := postForm(router, "/api/register", registerForm("Sophia", "sophia@gmail.com"))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"message": "User registered successfully!"}`, recorder.Body.String())

	recorder = sendJSON(router, http.MethodPost, "/api/login",
		`{"email": "sophia@gmail.com", "password": "secret123"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	var login dto.LoginResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &login))
	assert.Equal(t, "Login successful", login.Message)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, "Sophia", login.User.Name)
	assert.Equal(t, "female", login.User.Gender)
}

func TestAccountController_RegisterRejections(t *testing.T) {
	router, _ := newAccountRouter(t)

	t.Run("missing fields", func(t *testing.T) {
		recorder := postForm(router, "/api/register", url.Values{"name": {"Sophia"}})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.JSONEq(t, `{"message": "All fields required"}`, recorder.Body.String())
	})

	t.Run("non-gmail address", func(t *testing.T) {
		recorder := postForm(router, "/api/register", registerForm("Sophia", "sophia@yahoo.com"))
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("duplicate email", func(t *testing.T) {
		require.Equal(t, http.StatusOK,
			postForm(router, "/api/register", registerForm("Sophia", "dup@gmail.com")).Code)
		recorder := postForm(router, "/api/register", registerForm("Sophia", "dup@gmail.com"))
		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

func TestAccountController_LoginFailures(t *testing.T) {
	router, _ := newAccountRouter(t)
	require.Equal(t, http.StatusOK,
		postForm(router, "/api/register", registerForm("Sophia", "sophia@gmail.com")).Code)

	recorder := sendJSON(router, http.MethodPost, "/api/login",
		`{"email": "sophia@gmail.com", "password": "wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = sendJSON(router, http.MethodPost, "/api/login", `{"email": "sophia@gmail.com"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestAccountController_ChangePassword(t *testing.T) {
	router, _ := newAccountRouter(t)
	require.Equal(t, http.StatusOK,
		postForm(router, "/api/register", registerForm("Sophia", "sophia@gmail.com")).Code)

	recorder := sendJSON(router, http.MethodPut, "/api/change-password",
		`{"email": "sophia@gmail.com", "currentPassword": "secret123", "newPassword": "newsecret"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = sendJSON(router, http.MethodPost, "/api/login",
		`{"email": "sophia@gmail.com", "password": "newsecret"}`)
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = sendJSON(router, http.MethodPut, "/api/change-password",
		`{"email": "sophia@gmail.com", "currentPassword": "wrong", "newPassword": "another1"}`)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAccountController_DeleteAccount(t *testing.T) {
	router, userStore := newAccountRouter(t)
	require.Equal(t, http.StatusOK,
		postForm(router, "/api/register", registerForm("Sophia", "sophia@gmail.com")).Code)

	recorder := sendJSON(router, http.MethodDelete, "/api/delete-account",
		`{"email": "sophia@gmail.com"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	_, err := userStore.Find(context.Background(), "sophia@gmail.com")
	assert.ErrorIs(t, err, outbound.ErrUserNotFound)

	recorder = sendJSON(router, http.MethodDelete, "/api/delete-account",
		`{"email": "sophia@gmail.com"}`)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestAccountController_Health(t *testing.T) {
	router, _ := newAccountRouter(t)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"dbState": "memory"}`, recorder.Body.String())
}
