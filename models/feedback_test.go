package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedbackFieldsRoundTrip(t *testing.T) {
	fb := Feedback{}
	in := map[string]any{
		"meal_time":          "lunch",
		"overall_experience": "excellent",
		"suggestions":        nil,
	}
	require.NoError(t, fb.SetFields(in))

	out := fb.Fields()
	assert.Equal(t, "lunch", out["meal_time"])
	assert.Equal(t, "excellent", out["overall_experience"])

	// null survives the round trip as a present key with a nil value
	v, ok := out["suggestions"]
	require.True(t, ok)
	assert.Nil(t, v)
}

func TestFeedbackFieldsToleratesBadDocument(t *testing.T) {
	fb := Feedback{FieldsJSON: "{not json"}
	assert.Empty(t, fb.Fields())

	fb = Feedback{}
	assert.Empty(t, fb.Fields())
}

func TestFieldString(t *testing.T) {
	fb := Feedback{}
	require.NoError(t, fb.SetFields(map[string]any{
		"overall_experience": "good",
		"suggestions":        nil,
		"count":              float64(3),
	}))

	assert.Equal(t, "good", fb.FieldString("overall_experience"))
	assert.Empty(t, fb.FieldString("suggestions"))
	assert.Empty(t, fb.FieldString("count"))
	assert.Empty(t, fb.FieldString("missing"))
}
