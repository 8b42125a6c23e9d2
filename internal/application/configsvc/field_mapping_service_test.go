package configsvc

import (
	"context"
	"testing"

	"github.com/execdash/backend/internal/domain/shared"
	"github.com/execdash/backend/internal/domain/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAlias(t *testing.T, field, raw, target string) *taxonomy.FieldAlias {
	t.Helper()
	alias, err := taxonomy.NewFieldAlias(field, raw, target)
	require.NoError(t, err)
	return alias
}

func TestFieldMappingServiceVerify(t *testing.T) {
	ctx := context.Background()

	t.Run("should resolve against snapshot and aliases", func(t *testing.T) {
		itemRepo := new(MockItemRepository)
		aliasRepo := new(MockAliasRepository)
		service := NewFieldMappingService(itemRepo, aliasRepo, nil)

		platform := newTestItem(t, taxonomy.CategoryTeams, "Platform", 0)
		itemRepo.On("FindAllActive", ctx).Return([]taxonomy.Item{*platform}, nil)
		aliasRepo.On("FindAllActive", ctx).Return([]taxonomy.FieldAlias{
			*newTestAlias(t, "team", "PLT", "Platform"),
		}, nil)

		resp, err := service.Verify(ctx, VerifyRequest{Record: map[string]any{
			"team":   "plt",
			"status": "Unknown Status",
		}})

		require.NoError(t, err)
		assert.Len(t, resp.Unmapped, 1)
		assert.Equal(t, "status", resp.Unmapped[0].FieldName)

		team := resp.Verifications[0]
		assert.Equal(t, "team", team.FieldName)
		assert.True(t, team.IsMapped)
		require.NotNil(t, team.Matched)
		assert.Equal(t, "Platform", team.Matched.Label)
	})
}

func TestFieldMappingServiceApply(t *testing.T) {
	ctx := context.Background()

	t.Run("use-existing should rewrite to canonical label and record alias", func(t *testing.T) {
		itemRepo := new(MockItemRepository)
		aliasRepo := new(MockAliasRepository)
		service := NewFieldMappingService(itemRepo, aliasRepo, nil)

		platform := newTestItem(t, taxonomy.CategoryTeams, "Platform", 0)
		itemRepo.On("FindActiveByLabel", ctx, taxonomy.CategoryTeams, "Platform").Return(platform, nil)
		aliasRepo.On("FindByField", ctx, "team").Return([]taxonomy.FieldAlias{}, nil)
		aliasRepo.On("Save", ctx, mock.AnythingOfType("*taxonomy.FieldAlias")).Return(nil)

		resp, err := service.Apply(ctx, ApplyRequest{
			Record: map[string]any{"team": "PLT", "title": "Revamp"},
			Decisions: []DecisionRequest{
				{FieldName: "team", Action: "use-existing", TargetValue: "Platform"},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "Platform", resp.Record["team"])
		assert.Equal(t, "Revamp", resp.Record["title"])
		require.Len(t, resp.Outcomes, 1)
		assert.True(t, resp.Outcomes[0].Applied)
		aliasRepo.AssertCalled(t, "Save", ctx, mock.AnythingOfType("*taxonomy.FieldAlias"))
	})

	t.Run("use-existing should not record alias when only casing differs", func(t *testing.T) {
		itemRepo := new(MockItemRepository)
		aliasRepo := new(MockAliasRepository)
		service := NewFieldMappingService(itemRepo, aliasRepo, nil)

		platform := newTestItem(t, taxonomy.CategoryTeams, "Platform", 0)
		itemRepo.On("FindActiveByLabel", ctx, taxonomy.CategoryTeams, "Platform").Return(platform, nil)

		resp, err := service.Apply(ctx, ApplyRequest{
			Record: map[string]any{"team": "platform"},
			Decisions: []DecisionRequest{
				{FieldName: "team", Action: "use-existing", TargetValue: "Platform"},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "Platform", resp.Record["team"])
		aliasRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("create-new should add taxonomy item at end of ordering", func(t *testing.T) {
		itemRepo := new(MockItemRepository)
		aliasRepo := new(MockAliasRepository)
		service := NewFieldMappingService(itemRepo, aliasRepo, nil)

		itemRepo.On("FindActiveByLabel", ctx, taxonomy.CategoryTeams, "Growth").Return(nil, shared.ErrNotFound)
		itemRepo.On("MaxSortOrder", ctx, taxonomy.CategoryTeams).Return(1, nil)
		itemRepo.On("Save", ctx, mock.MatchedBy(func(item *taxonomy.Item) bool {
			return item.Label == "Growth" && item.SortOrder == 2
		})).Return(nil)

		resp, err := service.Apply(ctx, ApplyRequest{
			Record: map[string]any{"team": "Growth"},
			Decisions: []DecisionRequest{
				{FieldName: "team", Action: "create-new", TargetValue: "Growth"},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "Growth", resp.Record["team"])
		assert.True(t, resp.Outcomes[0].Applied)
		require.Len(t, resp.CreatedItems, 1)
		assert.Equal(t, "Growth", resp.CreatedItems[0].Label)
		itemRepo.AssertExpectations(t)
	})

	t.Run("create-new should reject a label that already exists", func(t *testing.T) {
		itemRepo := new(MockItemRepository)
		aliasRepo := new(MockAliasRepository)
		service := NewFieldMappingService(itemRepo, aliasRepo, nil)

		existing := newTestItem(t, taxonomy.CategoryTeams, "Growth", 0)
		itemRepo.On("FindActiveByLabel", ctx, taxonomy.CategoryTeams, "growth").Return(existing, nil)

		resp, err := service.Apply(ctx, ApplyRequest{
			Record: map[string]any{"team": "growth"},
			Decisions: []DecisionRequest{
				{FieldName: "team", Action: "create-new", TargetValue: "growth"},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "growth", resp.Record["team"])
		assert.False(t, resp.Outcomes[0].Applied)
		assert.Contains(t, resp.Outcomes[0].Error, "already exists")
		assert.Empty(t, resp.CreatedItems)
		itemRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("create-new should fail the second of two identical labels in one batch", func(t *testing.T) {
		itemRepo := new(MockItemRepository)
		aliasRepo := new(MockAliasRepository)
		service := NewFieldMappingService(itemRepo, aliasRepo, nil)

		created := newTestItem(t, taxonomy.CategoryTeams, "Ghost Team", 2)
		itemRepo.On("FindActiveByLabel", ctx, taxonomy.CategoryTeams, "Ghost Team").
			Return(nil, shared.ErrNotFound).Once()
		itemRepo.On("MaxSortOrder", ctx, taxonomy.CategoryTeams).Return(1, nil).Once()
		itemRepo.On("Save", ctx, mock.MatchedBy(func(item *taxonomy.Item) bool {
			return item.Label == "Ghost Team" && item.SortOrder == 2
		})).Return(nil).Once()
		itemRepo.On("FindActiveByLabel", ctx, taxonomy.CategoryTeams, "Ghost Team").
			Return(created, nil).Once()

		resp, err := service.Apply(ctx, ApplyRequest{
			Record: map[string]any{"team": "Ghost Team"},
			Decisions: []DecisionRequest{
				{FieldName: "team", Action: "create-new", TargetValue: "Ghost Team"},
				{FieldName: "team", Action: "create-new", TargetValue: "Ghost Team"},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "Ghost Team", resp.Record["team"])
		require.Len(t, resp.Outcomes, 2)
		assert.True(t, resp.Outcomes[0].Applied)
		assert.False(t, resp.Outcomes[1].Applied)
		assert.Contains(t, resp.Outcomes[1].Error, "already exists")
		require.Len(t, resp.CreatedItems, 1)
		itemRepo.AssertExpectations(t)
	})

	t.Run("create-new should stay applied when alias recording fails", func(t *testing.T) {
		itemRepo := new(MockItemRepository)
		aliasRepo := new(MockAliasRepository)
		service := NewFieldMappingService(itemRepo, aliasRepo, nil)

		itemRepo.On("FindActiveByLabel", ctx, taxonomy.CategoryTeams, "Ghost Team").Return(nil, shared.ErrNotFound)
		itemRepo.On("MaxSortOrder", ctx, taxonomy.CategoryTeams).Return(1, nil)
		itemRepo.On("Save", ctx, mock.AnythingOfType("*taxonomy.Item")).Return(nil)
		aliasRepo.On("FindByField", ctx, "team").Return([]taxonomy.FieldAlias{}, nil)
		aliasRepo.On("Save", ctx, mock.AnythingOfType("*taxonomy.FieldAlias")).Return(shared.ErrStoreFailure)

		resp, err := service.Apply(ctx, ApplyRequest{
			Record: map[string]any{"team": "The Ghosts"},
			Decisions: []DecisionRequest{
				{FieldName: "team", Action: "create-new", TargetValue: "Ghost Team"},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "Ghost Team", resp.Record["team"])
		require.Len(t, resp.Outcomes, 1)
		assert.True(t, resp.Outcomes[0].Applied)
		assert.Empty(t, resp.Outcomes[0].Error)
		require.Len(t, resp.CreatedItems, 1)
		assert.Equal(t, "Ghost Team", resp.CreatedItems[0].Label)
	})

	t.Run("skip should drop the field", func(t *testing.T) {
		itemRepo := new(MockItemRepository)
		aliasRepo := new(MockAliasRepository)
		service := NewFieldMappingService(itemRepo, aliasRepo, nil)

		resp, err := service.Apply(ctx, ApplyRequest{
			Record: map[string]any{"team": "???", "title": "Revamp"},
			Decisions: []DecisionRequest{
				{FieldName: "team", Action: "skip"},
			},
		})

		require.NoError(t, err)
		_, present := resp.Record["team"]
		assert.False(t, present)
		assert.Equal(t, "Revamp", resp.Record["title"])
	})

	t.Run("keep-as-is should leave the raw value untouched", func(t *testing.T) {
		itemRepo := new(MockItemRepository)
		aliasRepo := new(MockAliasRepository)
		service := NewFieldMappingService(itemRepo, aliasRepo, nil)

		resp, err := service.Apply(ctx, ApplyRequest{
			Record: map[string]any{"team": "Skunkworks"},
			Decisions: []DecisionRequest{
				{FieldName: "team", Action: "keep-as-is"},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "Skunkworks", resp.Record["team"])
	})

	t.Run("should apply remaining decisions after one fails", func(t *testing.T) {
		itemRepo := new(MockItemRepository)
		aliasRepo := new(MockAliasRepository)
		service := NewFieldMappingService(itemRepo, aliasRepo, nil)

		itemRepo.On("FindActiveByLabel", ctx, taxonomy.CategoryTeams, "Nonexistent").Return(nil, shared.ErrNotFound)

		resp, err := service.Apply(ctx, ApplyRequest{
			Record: map[string]any{"team": "???", "status": "dropme"},
			Decisions: []DecisionRequest{
				{FieldName: "team", Action: "use-existing", TargetValue: "Nonexistent"},
				{FieldName: "status", Action: "skip"},
			},
		})

		require.NoError(t, err)
		require.Len(t, resp.Outcomes, 2)
		assert.False(t, resp.Outcomes[0].Applied)
		assert.NotEmpty(t, resp.Outcomes[0].Error)
		assert.True(t, resp.Outcomes[1].Applied)
		assert.Equal(t, "???", resp.Record["team"])
		_, present := resp.Record["status"]
		assert.False(t, present)
	})

	t.Run("should not mutate the submitted record", func(t *testing.T) {
		itemRepo := new(MockItemRepository)
		aliasRepo := new(MockAliasRepository)
		service := NewFieldMappingService(itemRepo, aliasRepo, nil)

		record := map[string]any{"team": "???"}
		_, err := service.Apply(ctx, ApplyRequest{
			Record: record,
			Decisions: []DecisionRequest{
				{FieldName: "team", Action: "skip"},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "???", record["team"])
	})
}

func TestFieldMappingServiceAliases(t *testing.T) {
	ctx := context.Background()

	t.Run("should reject duplicate alias for same field and raw value", func(t *testing.T) {
		itemRepo := new(MockItemRepository)
		aliasRepo := new(MockAliasRepository)
		service := NewFieldMappingService(itemRepo, aliasRepo, nil)

		aliasRepo.On("FindByField", ctx, "team").Return([]taxonomy.FieldAlias{
			*newTestAlias(t, "team", "PLT", "Platform"),
		}, nil)

		_, err := service.CreateAlias(ctx, CreateAliasRequest{
			FieldName: "team", RawValue: "plt", TargetLabel: "Platform Core",
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	})

	t.Run("should create alias for new raw value", func(t *testing.T) {
		itemRepo := new(MockItemRepository)
		aliasRepo := new(MockAliasRepository)
		service := NewFieldMappingService(itemRepo, aliasRepo, nil)

		aliasRepo.On("FindByField", ctx, "team").Return([]taxonomy.FieldAlias{}, nil)
		aliasRepo.On("Save", ctx, mock.AnythingOfType("*taxonomy.FieldAlias")).Return(nil)

		resp, err := service.CreateAlias(ctx, CreateAliasRequest{
			FieldName: "team", RawValue: "PLT", TargetLabel: "Platform",
		})

		require.NoError(t, err)
		assert.Equal(t, "PLT", resp.RawValue)
		assert.Equal(t, "Platform", resp.TargetLabel)
		assert.True(t, resp.IsActive)
	})
}
