package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	dashboardapp "github.com/execdash/backend/internal/application/dashboard"
	"github.com/execdash/backend/internal/domain/dashboard"
	"github.com/execdash/backend/internal/domain/shared"
	"github.com/execdash/backend/internal/interfaces/http/dto"
	"github.com/execdash/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupInitiativeRouter(repo *MockInitiativeRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()

	engine := gin.New()
	api := engine.Group("/api/v1")
	NewInitiativeHandler(dashboardapp.NewInitiativeService(repo)).RegisterRoutes(api)
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, dto.Response) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var resp dto.Response
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func TestInitiativeHandler_Create(t *testing.T) {
	t.Run("creates an initiative", func(t *testing.T) {
		repo := new(MockInitiativeRepository)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*dashboard.Initiative")).Return(nil)

		engine := setupInitiativeRouter(repo)

		w, resp := doJSON(t, engine, http.MethodPost, "/api/v1/initiatives", gin.H{
			"title":  "Self-serve onboarding",
			"team":   "Growth",
			"status": "On Track",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, resp.Success)

		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "Self-serve onboarding", data["title"])
		assert.Equal(t, "Growth", data["team"])
		repo.AssertExpectations(t)
	})

	t.Run("rejects a missing title with field details", func(t *testing.T) {
		repo := new(MockInitiativeRepository)
		engine := setupInitiativeRouter(repo)

		w, resp := doJSON(t, engine, http.MethodPost, "/api/v1/initiatives", gin.H{
			"team": "Growth",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		require.NotEmpty(t, resp.Error.Details)
		assert.Equal(t, "title", resp.Error.Details[0].Field)
		repo.AssertNotCalled(t, "Save")
	})

	t.Run("rejects an inverted schedule", func(t *testing.T) {
		repo := new(MockInitiativeRepository)
		engine := setupInitiativeRouter(repo)

		w, resp := doJSON(t, engine, http.MethodPost, "/api/v1/initiatives", gin.H{
			"title":      "Backwards",
			"start_date": "2026-06-01T00:00:00Z",
			"end_date":   "2026-01-01T00:00:00Z",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "INVALID_DATE_RANGE", resp.Error.Code)
	})
}

func TestInitiativeHandler_GetByID(t *testing.T) {
	t.Run("maps the not-found sentinel to the entity code", func(t *testing.T) {
		repo := new(MockInitiativeRepository)
		missing := uuid.New()
		repo.On("FindByID", mock.Anything, missing).Return(nil, shared.ErrNotFound)

		engine := setupInitiativeRouter(repo)

		w, resp := doJSON(t, engine, http.MethodGet, "/api/v1/initiatives/"+missing.String(), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeInitiativeNotFound, resp.Error.Code)
	})

	t.Run("rejects a malformed ID", func(t *testing.T) {
		repo := new(MockInitiativeRepository)
		engine := setupInitiativeRouter(repo)

		w, resp := doJSON(t, engine, http.MethodGet, "/api/v1/initiatives/not-a-uuid", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeBadRequest, resp.Error.Code)
	})
}

func TestInitiativeHandler_List(t *testing.T) {
	repo := new(MockInitiativeRepository)

	initiative, err := dashboard.NewInitiative("Churn deep-dive")
	require.NoError(t, err)
	repo.On("FindAll", mock.Anything, mock.Anything).Return([]dashboard.Initiative{*initiative}, int64(41), nil)

	engine := setupInitiativeRouter(repo)

	w, resp := doJSON(t, engine, http.MethodGet, "/api/v1/initiatives?page=2&page_size=20", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(41), resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, 20, resp.Meta.PageSize)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}

func TestInitiativeHandler_Delete(t *testing.T) {
	repo := new(MockInitiativeRepository)

	initiative, err := dashboard.NewInitiative("Retire legacy billing")
	require.NoError(t, err)
	repo.On("FindByID", mock.Anything, initiative.ID).Return(initiative, nil)
	repo.On("Delete", mock.Anything, initiative.ID).Return(nil)

	engine := setupInitiativeRouter(repo)

	w, _ := doJSON(t, engine, http.MethodDelete, "/api/v1/initiatives/"+initiative.ID.String(), nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	repo.AssertExpectations(t)
}
