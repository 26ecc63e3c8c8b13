package questionnaire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetKnownTypes(t *testing.T) {
	for _, typ := range Types() {
		cfg := Get(typ)
		require.NotNil(t, cfg)
		assert.Equal(t, typ, cfg.ID)
	}
}

func TestGetFallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultType, Get("laundry").ID)
	assert.Equal(t, DefaultType, Get("").ID)
	assert.Equal(t, DefaultType, Get("FOOD").ID)
}

func TestOptionsDeclarationOrder(t *testing.T) {
	opts := Options()
	require.Len(t, opts, 3)
	assert.Equal(t, TypeFood, opts[0].Value)
	assert.Equal(t, TypeHousekeeping, opts[1].Value)
	assert.Equal(t, TypeSchoolCanteen, opts[2].Value)
	for _, o := range opts {
		assert.NotEmpty(t, o.LabelKey)
	}
}

// Every config must be self-consistent: the designated fields exist in some
// section and have the kind their role demands.
func TestConfigSelfConsistency(t *testing.T) {
	for _, typ := range Types() {
		typ := typ
		t.Run(string(typ), func(t *testing.T) {
			cfg := Get(typ)

			overall, ok := cfg.Field(cfg.OverallRatingField)
			require.True(t, ok, "overall rating field %q not found", cfg.OverallRatingField)
			assert.Equal(t, KindRatingGrid, overall.Kind)

			sugg, ok := cfg.Field(cfg.SuggestionsField)
			require.True(t, ok, "suggestions field %q not found", cfg.SuggestionsField)
			assert.Equal(t, KindTextarea, sugg.Kind)

			for _, cat := range cfg.CategoryFields {
				f, ok := cfg.Field(cat)
				require.True(t, ok, "category field %q not found", cat)
				assert.Equal(t, KindRatingGrid, f.Kind)
			}

			for _, id := range cfg.RadioFields {
				f, ok := cfg.Field(id)
				require.True(t, ok, "radio field %q not found", id)
				assert.Equal(t, KindRadio, f.Kind)
			}

			seen := map[string]bool{}
			for _, r := range cfg.RatingScale {
				assert.False(t, seen[r.Value], "duplicate scale value %q", r.Value)
				seen[r.Value] = true
			}

			// exactly one aggregation shape
			assert.False(t, cfg.HasCategoryBreakdown && cfg.HasChoiceBreakdown)
		})
	}
}

func TestScoreMapMonotonicWithScaleOrder(t *testing.T) {
	for _, typ := range Types() {
		scale := Get(typ).RatingScale
		scores := ScoreMap(typ)
		for i := 1; i < len(scale); i++ {
			assert.Greater(t, scores[scale[i-1].Value], scores[scale[i].Value],
				"%s: scale must be declared best-first", typ)
		}
	}
}

func TestRatingValuesOrder(t *testing.T) {
	vals := RatingValues(TypeFood)
	assert.Equal(t, []string{"excellent", "very_good", "good", "average", "dissatisfied"}, vals)
}

func TestAllFieldsSkipsNonRatable(t *testing.T) {
	ids := Get(TypeFood).AllFields()
	assert.NotContains(t, ids, "meal_time")
	assert.NotContains(t, ids, "suggestions")
	assert.Contains(t, ids, "overall_experience")
	// 7 categories + overall
	assert.Len(t, ids, 8)
}

func TestFieldLookup(t *testing.T) {
	cfg := Get(TypeHousekeeping)
	f, ok := cfg.Field("laundry_issues")
	require.True(t, ok)
	assert.Equal(t, KindRadio, f.Kind)
	assert.Len(t, f.Options, 4)

	_, ok = cfg.Field("meal_time")
	assert.False(t, ok)
}
