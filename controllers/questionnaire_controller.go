package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodcity/feedback-server/questionnaire"
)

// ListQuestionnaires returns the selectable survey types in declaration
// order, for admin pickers.
func ListQuestionnaires(c *gin.Context) {
	c.JSON(http.StatusOK, questionnaire.Options())
}

// GetQuestionnaire exposes the full config for a type so a form-rendering
// client can build the UI without hardcoding field lists. Unknown types fall
// back to the default config.
func GetQuestionnaire(c *gin.Context) {
	cfg := questionnaire.Get(questionnaire.Type(c.Param("type")))
	c.JSON(http.StatusOK, cfg)
}
