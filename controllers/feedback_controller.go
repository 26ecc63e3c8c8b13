package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/foodcity/feedback-server/config"
	"github.com/foodcity/feedback-server/models"
	"github.com/foodcity/feedback-server/questionnaire"
	"github.com/foodcity/feedback-server/stats"
)

/* ========== Submit feedback (public) ========== */

// SubmitFeedback accepts {feedback_date?, questionnaire_type?, place_slug?,
// ...field values} and stores one submission. A place slug must resolve to an
// active place; an explicit questionnaire_type wins over the place default.
func SubmitFeedback(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	placeSlug := stringField(body, "place_slug")
	callerType := stringField(body, "questionnaire_type")
	feedbackDate := stringField(body, "feedback_date")

	fb := models.Feedback{}
	resolvedType := callerType

	if placeSlug != "" {
		var place models.Place
		err := config.DB.Where("slug = ? AND active = ?", placeSlug, true).First(&place).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "This location is no longer accepting feedback"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to submit feedback"})
			return
		}
		fb.PlaceID = &place.ID
		fb.PlaceSlug = &place.Slug
		fb.PlaceName = &place.Name
		// The place default applies only when the caller sent no type.
		if resolvedType == "" {
			resolvedType = place.QuestionnaireType
		}
	}

	// Unknown or absent types resolve to the default config; the stored tag
	// is normalized to the resolved config's id.
	cfg := questionnaire.Get(questionnaire.Type(resolvedType))
	fb.QuestionnaireType = string(cfg.ID)

	values := questionnaire.InitialValues(cfg)
	for id := range values {
		if v := stringField(body, id); v != "" {
			values[id] = v
		}
	}

	if err := questionnaire.Validate(cfg, values); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}

	if feedbackDate == "" {
		feedbackDate = time.Now().Format("2006-01-02")
	}
	fb.FeedbackDate = feedbackDate

	if err := fb.SetFields(questionnaire.BuildFields(cfg, values)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to submit feedback"})
		return
	}

	if err := config.DB.Create(&fb).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to submit feedback"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": fb.ID, "success": true})
}

/* ========== List feedback (admin) ========== */

// ListFeedback returns filtered submissions, newest first. Rating and
// meal-time filters match inside the fields document.
func ListFeedback(c *gin.Context) {
	q := feedbackQuery(c.Query("place_slug"), c.Query("questionnaire_type"), c.Query("from_date"), c.Query("to_date"))

	if mt := c.Query("meal_time"); mt != "" {
		q = q.Where("fields ->> 'meal_time' = ?", mt)
	}
	if rating := c.Query("rating"); rating != "" {
		cfg := questionnaire.Get(questionnaire.Type(c.Query("questionnaire_type")))
		q = q.Where(fmt.Sprintf("fields ->> '%s' = ?", cfg.OverallRatingField), rating)
	}

	var feedbacks []models.Feedback
	if err := q.Order("created_at DESC").Find(&feedbacks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch feedback"})
		return
	}

	// Flatten envelope + field document the way the legacy store returned
	// records.
	out := make([]gin.H, 0, len(feedbacks))
	for i := range feedbacks {
		fb := &feedbacks[i]
		item := gin.H{
			"id":            fb.ID,
			"created_at":    fb.CreatedAt,
			"feedback_date": fb.FeedbackDate,
		}
		if fb.QuestionnaireType != "" {
			item["questionnaire_type"] = fb.QuestionnaireType
		}
		if fb.PlaceSlug != nil {
			item["place_slug"] = *fb.PlaceSlug
		}
		if fb.PlaceName != nil {
			item["place_name"] = *fb.PlaceName
		}
		for k, v := range fb.Fields() {
			item[k] = v
		}
		out = append(out, item)
	}

	c.JSON(http.StatusOK, out)
}

/* ========== Delete feedback (admin) ========== */

func DeleteFeedback(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID"})
		return
	}

	res := config.DB.Delete(&models.Feedback{}, id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete feedback"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Feedback not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

/* ========== Stats (admin) ========== */

// GetFeedbackStats aggregates filtered submissions per the questionnaire
// type's shape and attaches the derived dashboard summary.
func GetFeedbackStats(c *gin.Context) {
	qt := questionnaire.Type(c.Query("questionnaire_type"))
	if qt == "" {
		qt = questionnaire.DefaultType
	}

	q := feedbackQuery(c.Query("place_slug"), c.Query("questionnaire_type"), c.Query("from_date"), c.Query("to_date"))

	var feedbacks []models.Feedback
	if err := q.Find(&feedbacks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch stats"})
		return
	}

	s := stats.Aggregate(feedbacks, qt)
	cfg := questionnaire.Get(qt)
	scores := questionnaire.ScoreMap(qt)

	summary := gin.H{
		"satisfaction":  stats.Satisfaction(s.ByRating, cfg.RatingScale, s.Total),
		"average_score": stats.Average(s.ByRating, scores),
	}
	if cfg.HasCategoryBreakdown {
		best, worst, bestScore, worstScore := stats.BestWorst(s.ByCategory, cfg.CategoryFields, scores)
		summary["best_category"] = best
		summary["worst_category"] = worst
		summary["best_score"] = bestScore
		summary["worst_score"] = worstScore
	}

	resp := gin.H{
		"total":           s.Total,
		"byRating":        s.ByRating,
		"byDate":          s.ByDate,
		"withSuggestions": s.WithSuggestions,
		"summary":         summary,
	}
	if s.ByMealTime != nil {
		resp["byMealTime"] = s.ByMealTime
	}
	if s.ByCategory != nil {
		resp["byCategory"] = s.ByCategory
	}
	if s.ByField != nil {
		resp["byField"] = s.ByField
	}

	c.JSON(http.StatusOK, resp)
}

/* ========== helpers ========== */

// feedbackQuery applies the shared place/type/date filters. A filter for the
// default type also claims legacy rows with no type tag; any other type is an
// exact match.
func feedbackQuery(placeSlug, questionnaireType, fromDate, toDate string) *gorm.DB {
	q := config.DB.Model(&models.Feedback{})

	if placeSlug != "" {
		q = q.Where("place_slug = ?", placeSlug)
	}
	if questionnaireType != "" {
		if questionnaire.Type(questionnaireType) == questionnaire.DefaultType {
			q = q.Where("(questionnaire_type = ? OR questionnaire_type IS NULL OR questionnaire_type = '')",
				string(questionnaire.DefaultType))
		} else {
			q = q.Where("questionnaire_type = ?", questionnaireType)
		}
	}
	if fromDate != "" {
		q = q.Where("feedback_date >= ?", fromDate)
	}
	if toDate != "" {
		q = q.Where("feedback_date <= ?", toDate)
	}
	return q
}

func stringField(body map[string]any, key string) string {
	v, _ := body[key].(string)
	return v
}
