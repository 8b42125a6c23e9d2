package handler

import (
	"net/http"
	"testing"

	"github.com/execdash/backend/internal/application/configsvc"
	"github.com/execdash/backend/internal/domain/shared"
	"github.com/execdash/backend/internal/domain/taxonomy"
	"github.com/execdash/backend/internal/interfaces/http/dto"
	"github.com/execdash/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupConfigItemRouter(repo *MockItemRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()

	engine := gin.New()
	api := engine.Group("/api/v1")
	NewConfigItemHandler(configsvc.NewTaxonomyService(repo)).RegisterRoutes(api)
	return engine
}

func activeItem(t *testing.T, category taxonomy.Category, label string, order int) taxonomy.Item {
	t.Helper()
	item, err := taxonomy.NewItem(category, label, "")
	require.NoError(t, err)
	item.SetSortOrder(order)
	return *item
}

func TestConfigItemHandler_Create(t *testing.T) {
	t.Run("appends the item at the end of its category", func(t *testing.T) {
		repo := new(MockItemRepository)
		repo.On("FindActiveByLabel", mock.Anything, taxonomy.CategoryTeams, "Platform").Return(nil, shared.ErrNotFound)
		repo.On("MaxSortOrder", mock.Anything, taxonomy.CategoryTeams).Return(2, nil)
		repo.On("Save", mock.Anything, mock.MatchedBy(func(item *taxonomy.Item) bool {
			return item.Label == "Platform" && item.SortOrder == 3
		})).Return(nil)

		engine := setupConfigItemRouter(repo)

		w, resp := doJSON(t, engine, http.MethodPost, "/api/v1/config/items", gin.H{
			"category": "teams",
			"label":    "Platform",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, resp.Success)
		repo.AssertExpectations(t)
	})

	t.Run("rejects a duplicate label with 409", func(t *testing.T) {
		repo := new(MockItemRepository)
		existing := activeItem(t, taxonomy.CategoryTeams, "Platform", 0)
		repo.On("FindActiveByLabel", mock.Anything, taxonomy.CategoryTeams, "platform").Return(&existing, nil)

		engine := setupConfigItemRouter(repo)

		w, resp := doJSON(t, engine, http.MethodPost, "/api/v1/config/items", gin.H{
			"category": "teams",
			"label":    "platform",
		})

		assert.Equal(t, http.StatusConflict, w.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeAlreadyExists, resp.Error.Code)
	})

	t.Run("rejects an unknown category", func(t *testing.T) {
		repo := new(MockItemRepository)
		engine := setupConfigItemRouter(repo)

		w, resp := doJSON(t, engine, http.MethodPost, "/api/v1/config/items", gin.H{
			"category": "seasons",
			"label":    "Winter",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_CATEGORY", resp.Error.Code)
	})
}

func TestConfigItemHandler_Reorder(t *testing.T) {
	t.Run("orders submitted entries by position before reordering", func(t *testing.T) {
		repo := new(MockItemRepository)
		a := activeItem(t, taxonomy.CategoryTeams, "Platform", 0)
		b := activeItem(t, taxonomy.CategoryTeams, "Growth", 1)
		repo.On("FindByCategory", mock.Anything, taxonomy.CategoryTeams, true).Return([]taxonomy.Item{a, b}, nil)
		repo.On("Reorder", mock.Anything, taxonomy.CategoryTeams, []uuid.UUID{b.ID, a.ID}).Return(nil)

		engine := setupConfigItemRouter(repo)

		w, _ := doJSON(t, engine, http.MethodPost, "/api/v1/config/items/reorder", gin.H{
			"category": "teams",
			"items": []gin.H{
				{"id": a.ID, "order": 1},
				{"id": b.ID, "order": 0},
			},
		})

		assert.Equal(t, http.StatusNoContent, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("rejects a partial permutation", func(t *testing.T) {
		repo := new(MockItemRepository)
		a := activeItem(t, taxonomy.CategoryTeams, "Platform", 0)
		b := activeItem(t, taxonomy.CategoryTeams, "Growth", 1)
		repo.On("FindByCategory", mock.Anything, taxonomy.CategoryTeams, true).Return([]taxonomy.Item{a, b}, nil)

		engine := setupConfigItemRouter(repo)

		w, resp := doJSON(t, engine, http.MethodPost, "/api/v1/config/items/reorder", gin.H{
			"category": "teams",
			"items": []gin.H{
				{"id": a.ID, "order": 0},
			},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_ORDER", resp.Error.Code)
		repo.AssertNotCalled(t, "Reorder")
	})
}

func TestConfigItemHandler_List(t *testing.T) {
	t.Run("groups all categories when none is given", func(t *testing.T) {
		repo := new(MockItemRepository)
		team := activeItem(t, taxonomy.CategoryTeams, "Platform", 0)
		repo.On("FindAllActive", mock.Anything).Return([]taxonomy.Item{team}, nil)

		engine := setupConfigItemRouter(repo)

		w, resp := doJSON(t, engine, http.MethodGet, "/api/v1/config/items", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		grouped := resp.Data.(map[string]interface{})
		assert.Len(t, grouped["teams"], 1)
		assert.Empty(t, grouped["statuses"])
	})

	t.Run("lists one category", func(t *testing.T) {
		repo := new(MockItemRepository)
		team := activeItem(t, taxonomy.CategoryTeams, "Platform", 0)
		repo.On("FindByCategory", mock.Anything, taxonomy.CategoryTeams, true).Return([]taxonomy.Item{team}, nil)

		engine := setupConfigItemRouter(repo)

		w, resp := doJSON(t, engine, http.MethodGet, "/api/v1/config/items?category=teams", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		items := resp.Data.([]interface{})
		require.Len(t, items, 1)
		assert.Equal(t, "Platform", items[0].(map[string]interface{})["label"])
	})
}
