// Package stats computes dashboard aggregations over a set of stored feedback
// rows. The caller filters rows by place, date range and questionnaire type;
// Aggregate only folds what it is given. Aggregation shape follows the
// questionnaire config's shape flags, not the type tag.
package stats

import (
	"math"
	"sort"

	"github.com/foodcity/feedback-server/models"
	"github.com/foodcity/feedback-server/questionnaire"
)

// DateCount is one day's submission count. Dates are zero-padded YYYY-MM-DD,
// so their lexicographic order is date order.
type DateCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Stats is the aggregation result for one questionnaire type.
type Stats struct {
	Total           int            `json:"total"`
	ByRating        map[string]int `json:"byRating"`
	ByDate          []DateCount    `json:"byDate"`
	WithSuggestions int            `json:"withSuggestions"`

	// ByMealTime is present only for configs with a meal-time field.
	ByMealTime map[string]int `json:"byMealTime,omitempty"`
	// ByCategory is present for category-shaped configs; every known rating
	// value appears as a bucket even at zero.
	ByCategory map[string]map[string]int `json:"byCategory,omitempty"`
	// ByField is present for choice-shaped configs; only observed option
	// values appear as keys.
	ByField map[string]map[string]int `json:"byField,omitempty"`
}

// Aggregate folds feedback rows into a Stats summary for t. Rows missing the
// overall rating field, or holding an empty value there, are excluded from
// ByRating (not counted as zero or unknown).
func Aggregate(feedbacks []models.Feedback, t questionnaire.Type) Stats {
	cfg := questionnaire.Get(t)

	s := Stats{
		Total:    len(feedbacks),
		ByRating: make(map[string]int),
		ByDate:   []DateCount{},
	}

	// Nothing to fold: keep the shape maps empty rather than zero-initialized
	// so an empty window renders as "no data", not rows of zeros.
	if len(feedbacks) == 0 {
		if cfg.HasMealTime {
			s.ByMealTime = map[string]int{}
		}
		if cfg.HasCategoryBreakdown {
			s.ByCategory = map[string]map[string]int{}
		} else if cfg.HasChoiceBreakdown {
			s.ByField = map[string]map[string]int{}
		}
		return s
	}

	if cfg.HasMealTime {
		s.ByMealTime = make(map[string]int)
	}
	if cfg.HasCategoryBreakdown {
		s.ByCategory = make(map[string]map[string]int, len(cfg.CategoryFields))
		for _, cat := range cfg.CategoryFields {
			buckets := make(map[string]int, len(cfg.RatingScale))
			for _, r := range cfg.RatingScale {
				buckets[r.Value] = 0
			}
			s.ByCategory[cat] = buckets
		}
	} else if cfg.HasChoiceBreakdown {
		s.ByField = make(map[string]map[string]int, len(cfg.RadioFields))
		for _, f := range cfg.RadioFields {
			s.ByField[f] = make(map[string]int)
		}
	}

	byDate := make(map[string]int)
	for i := range feedbacks {
		fb := &feedbacks[i]
		fields := fb.Fields()

		byDate[fb.FeedbackDate]++

		if v, _ := fields[cfg.OverallRatingField].(string); v != "" {
			s.ByRating[v]++
		}
		if v, _ := fields[cfg.SuggestionsField].(string); v != "" {
			s.WithSuggestions++
		}

		if cfg.HasMealTime {
			if v, _ := fields["meal_time"].(string); v != "" {
				s.ByMealTime[v]++
			}
		}
		if cfg.HasCategoryBreakdown {
			for _, cat := range cfg.CategoryFields {
				v, _ := fields[cat].(string)
				if v == "" {
					continue
				}
				if _, known := s.ByCategory[cat][v]; known {
					s.ByCategory[cat][v]++
				}
			}
		} else if cfg.HasChoiceBreakdown {
			for _, f := range cfg.RadioFields {
				if v, _ := fields[f].(string); v != "" {
					s.ByField[f][v]++
				}
			}
		}
	}

	for date, count := range byDate {
		s.ByDate = append(s.ByDate, DateCount{Date: date, Count: count})
	}
	sort.Slice(s.ByDate, func(i, j int) bool { return s.ByDate[i].Date < s.ByDate[j].Date })

	return s
}

// MatchesType reports whether a stored record's type tag belongs under the
// filter type. A filter for the default type also claims records with no tag
// at all (legacy rows); any other filter is an exact match only.
func MatchesType(recordType string, filter questionnaire.Type) bool {
	if filter == questionnaire.DefaultType {
		return recordType == "" || questionnaire.Type(recordType) == filter
	}
	return questionnaire.Type(recordType) == filter
}

// Average is the score-weighted mean of a rating tally, 0 when the tally is
// empty. Values missing from scores contribute weight but no score, matching
// the original dashboard math.
func Average(tally map[string]int, scores map[string]int) float64 {
	total := 0
	weighted := 0
	for value, count := range tally {
		total += count
		weighted += scores[value] * count
	}
	if total == 0 {
		return 0
	}
	return float64(weighted) / float64(total)
}

// BestWorst picks the best and worst category by weighted average score,
// walking categories in their declared order. Best uses strict > against an
// initial score of 0, so the first-declared category wins ties; worst only
// considers categories with at least one rated response.
func BestWorst(byCategory map[string]map[string]int, categories []string, scores map[string]int) (best, worst string, bestScore, worstScore float64) {
	worstScore = math.Inf(1)
	for _, cat := range categories {
		tally := byCategory[cat]
		responses := 0
		for _, c := range tally {
			responses += c
		}
		score := 0.0
		if responses > 0 {
			score = Average(tally, scores)
		}
		if score > bestScore {
			bestScore = score
			best = cat
		}
		if responses > 0 && score < worstScore {
			worstScore = score
			worst = cat
		}
	}
	if worst == "" {
		worstScore = 0
	}
	return best, worst, bestScore, worstScore
}

// Satisfaction is the rounded percentage of submissions whose overall rating
// sits in the top min(3, len(scale)) scale positions. Positions are taken by
// scale order, not by score value. Returns 0 when total is 0.
func Satisfaction(byRating map[string]int, scale []questionnaire.RatingScaleOption, total int) int {
	if total == 0 {
		return 0
	}
	topN := 3
	if len(scale) < topN {
		topN = len(scale)
	}
	positive := 0
	for _, r := range scale[:topN] {
		positive += byRating[r.Value]
	}
	return int(math.Round(float64(positive) / float64(total) * 100))
}
