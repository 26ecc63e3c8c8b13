package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodcity/feedback-server/models"
	"github.com/foodcity/feedback-server/questionnaire"
)

func record(t *testing.T, date string, qtype string, fields map[string]any) models.Feedback {
	t.Helper()
	fb := models.Feedback{QuestionnaireType: qtype, FeedbackDate: date}
	require.NoError(t, fb.SetFields(fields))
	return fb
}

func foodRecord(t *testing.T, date, overall, suggestions string) models.Feedback {
	fields := map[string]any{
		"meal_time":          "lunch",
		"overall_experience": overall,
	}
	if suggestions == "" {
		fields["suggestions"] = nil
	} else {
		fields["suggestions"] = suggestions
	}
	return record(t, date, "food", fields)
}

func TestAggregateEmptyWindow(t *testing.T) {
	s := Aggregate(nil, questionnaire.TypeFood)

	assert.Equal(t, 0, s.Total)
	assert.Empty(t, s.ByRating)
	assert.Empty(t, s.ByCategory)
	assert.Empty(t, s.ByMealTime)
	assert.Equal(t, []DateCount{}, s.ByDate)
	assert.Equal(t, 0, s.WithSuggestions)

	// no division by zero anywhere downstream
	cfg := questionnaire.Get(questionnaire.TypeFood)
	assert.Equal(t, 0, Satisfaction(s.ByRating, cfg.RatingScale, s.Total))
	assert.Equal(t, 0.0, Average(s.ByRating, questionnaire.ScoreMap(questionnaire.TypeFood)))
}

func TestAggregateByRatingAndSuggestions(t *testing.T) {
	feedbacks := []models.Feedback{
		foodRecord(t, "2026-08-01", "excellent", ""),
		foodRecord(t, "2026-08-01", "excellent", "more fruit"),
		foodRecord(t, "2026-08-02", "good", ""),
	}

	s := Aggregate(feedbacks, questionnaire.TypeFood)

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 2, s.ByRating["excellent"])
	assert.Equal(t, 1, s.ByRating["good"])
	assert.Equal(t, 1, s.WithSuggestions)
	assert.Equal(t, 3, s.ByMealTime["lunch"])
}

func TestAggregateExcludesMissingOverall(t *testing.T) {
	feedbacks := []models.Feedback{
		foodRecord(t, "2026-08-01", "excellent", ""),
		// legacy row: no overall value, extra unknown key
		record(t, "2026-08-01", "food", map[string]any{"ancient_field": "x"}),
		record(t, "2026-08-01", "food", map[string]any{"overall_experience": ""}),
	}

	s := Aggregate(feedbacks, questionnaire.TypeFood)

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, map[string]int{"excellent": 1}, s.ByRating)
}

func TestAggregateByDateSorted(t *testing.T) {
	feedbacks := []models.Feedback{
		foodRecord(t, "2026-08-10", "good", ""),
		foodRecord(t, "2026-08-02", "good", ""),
		foodRecord(t, "2026-08-10", "average", ""),
	}

	s := Aggregate(feedbacks, questionnaire.TypeFood)

	require.Len(t, s.ByDate, 2)
	assert.Equal(t, DateCount{Date: "2026-08-02", Count: 1}, s.ByDate[0])
	assert.Equal(t, DateCount{Date: "2026-08-10", Count: 2}, s.ByDate[1])
}

func TestAggregateCategoryZeroBuckets(t *testing.T) {
	feedbacks := []models.Feedback{
		record(t, "2026-08-01", "food", map[string]any{
			"overall_experience": "excellent",
			"food_taste":         "excellent",
		}),
	}

	s := Aggregate(feedbacks, questionnaire.TypeFood)

	cfg := questionnaire.Get(questionnaire.TypeFood)
	require.Len(t, s.ByCategory, len(cfg.CategoryFields))

	taste := s.ByCategory["food_taste"]
	assert.Equal(t, 1, taste["excellent"])
	// absent ratings show as 0, not as missing keys
	assert.Contains(t, taste, "dissatisfied")
	assert.Equal(t, 0, taste["dissatisfied"])

	// a category nobody rated still has all its zero buckets
	clean := s.ByCategory["cleanliness"]
	require.Len(t, clean, len(cfg.RatingScale))
	for _, v := range clean {
		assert.Equal(t, 0, v)
	}
}

func TestAggregateIgnoresUnknownRatingValues(t *testing.T) {
	feedbacks := []models.Feedback{
		record(t, "2026-08-01", "food", map[string]any{"food_taste": "amazing"}),
	}
	s := Aggregate(feedbacks, questionnaire.TypeFood)
	assert.NotContains(t, s.ByCategory["food_taste"], "amazing")
}

func TestAggregateChoiceShape(t *testing.T) {
	mk := func(clean string) models.Feedback {
		return record(t, "2026-08-01", "housekeeping", map[string]any{
			"housekeeping_overall": "good",
			"toilet_clean_at_use":  clean,
		})
	}
	feedbacks := []models.Feedback{mk("yes"), mk("yes"), mk("yes"), mk("no")}

	s := Aggregate(feedbacks, questionnaire.TypeHousekeeping)

	assert.Equal(t, map[string]int{"yes": 3, "no": 1}, s.ByField["toilet_clean_at_use"])
	// only observed values appear as keys
	assert.Empty(t, s.ByField["laundry_issues"])
	assert.Nil(t, s.ByCategory)
	assert.Nil(t, s.ByMealTime)
}

func TestMatchesTypeBackwardCompat(t *testing.T) {
	// default type claims untagged legacy rows
	assert.True(t, MatchesType("food", questionnaire.DefaultType))
	assert.True(t, MatchesType("", questionnaire.DefaultType))
	assert.False(t, MatchesType("housekeeping", questionnaire.DefaultType))

	// other types are exact matches only
	assert.True(t, MatchesType("housekeeping", questionnaire.TypeHousekeeping))
	assert.False(t, MatchesType("", questionnaire.TypeHousekeeping))
	assert.False(t, MatchesType("food", questionnaire.TypeHousekeeping))
}

func TestAverage(t *testing.T) {
	scores := questionnaire.ScoreMap(questionnaire.TypeFood)

	assert.Equal(t, 0.0, Average(map[string]int{}, scores))
	// 2*5 + 1*3 = 13 over 3
	assert.InDelta(t, 13.0/3.0, Average(map[string]int{"excellent": 2, "good": 1}, scores), 1e-9)
	// unknown values weigh the denominator but score 0
	assert.InDelta(t, 2.5, Average(map[string]int{"excellent": 1, "mystery": 1}, scores), 1e-9)
}

func TestBestWorst(t *testing.T) {
	scores := questionnaire.ScoreMap(questionnaire.TypeFood)
	categories := []string{"a", "b", "c", "d"}
	byCategory := map[string]map[string]int{
		"a": {"good": 1},      // 3.0
		"b": {"excellent": 1}, // 5.0
		"c": {},               // no responses
		"d": {"excellent": 1}, // 5.0, ties with b
	}

	best, worst, bestScore, worstScore := BestWorst(byCategory, categories, scores)

	// strict > means the first-encountered category keeps a tied best
	assert.Equal(t, "b", best)
	assert.Equal(t, 5.0, bestScore)
	// categories with zero responses are never chosen as worst
	assert.Equal(t, "a", worst)
	assert.Equal(t, 3.0, worstScore)
}

func TestBestWorstNoResponses(t *testing.T) {
	scores := questionnaire.ScoreMap(questionnaire.TypeFood)
	byCategory := map[string]map[string]int{"a": {}, "b": {}}

	best, worst, bestScore, worstScore := BestWorst(byCategory, []string{"a", "b"}, scores)

	assert.Empty(t, best)
	assert.Empty(t, worst)
	assert.Equal(t, 0.0, bestScore)
	assert.Equal(t, 0.0, worstScore)
}

func TestSatisfactionTopThree(t *testing.T) {
	cfg := questionnaire.Get(questionnaire.TypeFood)
	// excellent, excellent, good, average, dissatisfied -> 3 of 5 in top-3
	byRating := map[string]int{"excellent": 2, "good": 1, "average": 1, "dissatisfied": 1}
	assert.Equal(t, 60, Satisfaction(byRating, cfg.RatingScale, 5))
}

func TestSatisfactionShortScale(t *testing.T) {
	scale := []questionnaire.RatingScaleOption{
		{Value: "up", Score: 2},
		{Value: "down", Score: 1},
	}
	// topN degrades to the scale length
	assert.Equal(t, 100, Satisfaction(map[string]int{"up": 1, "down": 1}, scale, 2))
	assert.Equal(t, 0, Satisfaction(map[string]int{}, scale, 0))
}

func TestSatisfactionRounding(t *testing.T) {
	cfg := questionnaire.Get(questionnaire.TypeFood)
	// 1 of 3 positive = 33.33 -> 33
	assert.Equal(t, 33, Satisfaction(map[string]int{"excellent": 1, "dissatisfied": 2}, cfg.RatingScale, 3))
	// 2 of 3 positive = 66.67 -> 67
	assert.Equal(t, 67, Satisfaction(map[string]int{"excellent": 2, "dissatisfied": 1}, cfg.RatingScale, 3))
}
