package reconcile

import (
	"testing"

	"github.com/execdash/backend/internal/domain/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, category taxonomy.Category, label string) taxonomy.Item {
	t.Helper()
	item, err := taxonomy.NewItem(category, label, "")
	require.NoError(t, err)
	return *item
}

func mustAlias(t *testing.T, field, raw, target string) taxonomy.FieldAlias {
	t.Helper()
	alias, err := taxonomy.NewFieldAlias(field, raw, target)
	require.NoError(t, err)
	return *alias
}

func TestResolve(t *testing.T) {
	items := []taxonomy.Item{
		mustItem(t, taxonomy.CategoryTeams, "Platform"),
		mustItem(t, taxonomy.CategoryStatuses, "On Track"),
		mustItem(t, taxonomy.CategoryPriorities, "High"),
	}

	t.Run("should match exact labels", func(t *testing.T) {
		result := Resolve(map[string]any{"team": "Platform"}, items, nil)

		v := verificationFor(t, result, "team")
		assert.True(t, v.IsMapped)
		require.NotNil(t, v.Matched)
		assert.Equal(t, "Platform", v.Matched.Label)
		assert.Empty(t, result.Unmapped)
	})

	t.Run("should match case-insensitively with surrounding whitespace", func(t *testing.T) {
		result := Resolve(map[string]any{"status": "  on track "}, items, nil)

		v := verificationFor(t, result, "status")
		assert.True(t, v.IsMapped)
		require.NotNil(t, v.Matched)
		assert.Equal(t, "On Track", v.Matched.Label)
	})

	t.Run("should treat absent and empty fields as mapped", func(t *testing.T) {
		result := Resolve(map[string]any{"team": ""}, items, nil)

		for _, v := range result.Verifications {
			assert.True(t, v.IsMapped, "field %s", v.FieldName)
			assert.Nil(t, v.Matched)
		}
		assert.Empty(t, result.Unmapped)
	})

	t.Run("should report unknown values as unmapped", func(t *testing.T) {
		result := Resolve(map[string]any{"team": "Growth"}, items, nil)

		require.Len(t, result.Unmapped, 1)
		assert.Equal(t, "team", result.Unmapped[0].FieldName)
		assert.Equal(t, "Growth", result.Unmapped[0].RawValue)
		assert.False(t, result.Unmapped[0].IsMapped)
	})

	t.Run("should not match items from another category", func(t *testing.T) {
		result := Resolve(map[string]any{"status": "Platform"}, items, nil)

		require.Len(t, result.Unmapped, 1)
		assert.Equal(t, "status", result.Unmapped[0].FieldName)
	})

	t.Run("should ignore inactive items", func(t *testing.T) {
		retired := mustItem(t, taxonomy.CategoryTeams, "Legacy")
		retired.Deactivate()

		result := Resolve(map[string]any{"team": "Legacy"}, append(items, retired), nil)

		require.Len(t, result.Unmapped, 1)
		assert.Equal(t, "team", result.Unmapped[0].FieldName)
	})

	t.Run("should resolve through aliases", func(t *testing.T) {
		aliases := []taxonomy.FieldAlias{
			mustAlias(t, "team", "PLT", "Platform"),
		}

		result := Resolve(map[string]any{"team": "plt"}, items, aliases)

		v := verificationFor(t, result, "team")
		assert.True(t, v.IsMapped)
		require.NotNil(t, v.Matched)
		assert.Equal(t, "Platform", v.Matched.Label)
	})

	t.Run("should leave field unmapped when alias target has no item", func(t *testing.T) {
		aliases := []taxonomy.FieldAlias{
			mustAlias(t, "team", "GRW", "Growth"),
		}

		result := Resolve(map[string]any{"team": "GRW"}, items, aliases)

		require.Len(t, result.Unmapped, 1)
		assert.Equal(t, "team", result.Unmapped[0].FieldName)
	})

	t.Run("should ignore inactive aliases", func(t *testing.T) {
		alias := mustAlias(t, "team", "PLT", "Platform")
		alias.Deactivate()

		result := Resolve(map[string]any{"team": "PLT"}, items, []taxonomy.FieldAlias{alias})

		require.Len(t, result.Unmapped, 1)
	})

	t.Run("should emit fields in declaration order regardless of input", func(t *testing.T) {
		record := map[string]any{
			"gtmType":  "Launch",
			"team":     "Growth",
			"priority": "Critical",
		}

		result := Resolve(record, items, nil)

		require.Len(t, result.Verifications, len(taxonomy.FieldBindings))
		for idx, binding := range taxonomy.FieldBindings {
			assert.Equal(t, binding.Field, result.Verifications[idx].FieldName)
		}
		require.Len(t, result.Unmapped, 3)
		assert.Equal(t, "team", result.Unmapped[0].FieldName)
		assert.Equal(t, "priority", result.Unmapped[1].FieldName)
		assert.Equal(t, "gtmType", result.Unmapped[2].FieldName)
	})

	t.Run("should not mutate the record", func(t *testing.T) {
		record := map[string]any{"team": "Growth"}

		Resolve(record, items, nil)

		assert.Equal(t, map[string]any{"team": "Growth"}, record)
	})

	t.Run("should report non-string values as unmapped", func(t *testing.T) {
		result := Resolve(map[string]any{"team": 42}, items, nil)

		v := verificationFor(t, result, "team")
		assert.False(t, v.IsMapped)
		assert.Equal(t, "42", v.RawValue)
		require.Len(t, result.Unmapped, 1)
		assert.Equal(t, "team", result.Unmapped[0].FieldName)
	})

	t.Run("should treat nil values as absent", func(t *testing.T) {
		result := Resolve(map[string]any{"team": nil}, items, nil)

		v := verificationFor(t, result, "team")
		assert.True(t, v.IsMapped)
		assert.Empty(t, result.Unmapped)
	})
}

func TestMappingDecisionValidate(t *testing.T) {
	t.Run("should accept use-existing with target", func(t *testing.T) {
		d := MappingDecision{FieldName: "team", Action: ActionUseExisting, TargetValue: "Platform"}

		assert.NoError(t, d.Validate())
	})

	t.Run("should accept skip without target", func(t *testing.T) {
		d := MappingDecision{FieldName: "status", Action: ActionSkip}

		assert.NoError(t, d.Validate())
	})

	t.Run("should reject create-new without target", func(t *testing.T) {
		d := MappingDecision{FieldName: "team", Action: ActionCreateNew, TargetValue: "  "}

		assert.Error(t, d.Validate())
	})

	t.Run("should reject unknown field", func(t *testing.T) {
		d := MappingDecision{FieldName: "title", Action: ActionKeepAsIs}

		assert.Error(t, d.Validate())
	})

	t.Run("should reject unknown action", func(t *testing.T) {
		d := MappingDecision{FieldName: "team", Action: DecisionAction("merge")}

		assert.Error(t, d.Validate())
	})
}

func verificationFor(t *testing.T, result Result, field string) FieldVerification {
	t.Helper()
	for _, v := range result.Verifications {
		if v.FieldName == field {
			return v
		}
	}
	t.Fatalf("no verification for field %s", field)
	return FieldVerification{}
}
