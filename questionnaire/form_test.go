package questionnaire

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filledFoodValues() map[string]string {
	cfg := Get(TypeFood)
	values := InitialValues(cfg)
	values["meal_time"] = "lunch"
	for _, cat := range cfg.CategoryFields {
		values[cat] = "good"
	}
	values["overall_experience"] = "excellent"
	return values
}

func TestInitialValuesCoversEveryField(t *testing.T) {
	for _, typ := range Types() {
		cfg := Get(typ)
		values := InitialValues(cfg)
		for _, s := range cfg.Sections {
			for _, f := range s.Fields {
				v, ok := values[f.ID]
				require.True(t, ok, "%s: field %q missing from initial values", typ, f.ID)
				assert.Empty(t, v)
			}
		}
	}
}

func TestValidateFirstMissingFieldWins(t *testing.T) {
	cfg := Get(TypeFood)
	values := InitialValues(cfg)

	// meal_time is the first required field and gets its own message
	err := Validate(cfg, values)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "meal_time", verr.FieldID)
	assert.Equal(t, "please select a meal time", verr.Error())

	// with meal_time set the scan stops at the next section's first field
	values["meal_time"] = "breakfast"
	err = Validate(cfg, values)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "food_temperature", verr.FieldID)
	assert.Contains(t, verr.Error(), "complete all required fields")
}

func TestValidateIdempotent(t *testing.T) {
	cfg := Get(TypeFood)
	values := InitialValues(cfg)
	values["meal_time"] = "dinner"

	first := Validate(cfg, values)
	second := Validate(cfg, values)

	var e1, e2 *ValidationError
	require.ErrorAs(t, first, &e1)
	require.ErrorAs(t, second, &e2)
	assert.Equal(t, e1.FieldID, e2.FieldID)
}

func TestValidateFullyFilled(t *testing.T) {
	assert.NoError(t, Validate(Get(TypeFood), filledFoodValues()))
}

func TestValidateOptionalFieldsMayStayEmpty(t *testing.T) {
	// suggestions is not required
	values := filledFoodValues()
	values["suggestions"] = ""
	assert.NoError(t, Validate(Get(TypeFood), values))
}

func TestBuildFieldsRoundTrip(t *testing.T) {
	cfg := Get(TypeFood)
	values := filledFoodValues()
	values["suggestions"] = "more fruit please"

	fields := BuildFields(cfg, values)

	for _, s := range cfg.Sections {
		for _, f := range s.Fields {
			assert.Equal(t, values[f.ID], fields[f.ID], "field %q", f.ID)
		}
	}
}

func TestBuildFieldsNullsEmptyTextarea(t *testing.T) {
	cfg := Get(TypeFood)
	values := filledFoodValues()

	fields := BuildFields(cfg, values)
	v, ok := fields["suggestions"]
	require.True(t, ok, "empty textarea must be stored as null, not dropped")
	assert.Nil(t, v)

	values["suggestions"] = "   "
	assert.Nil(t, BuildFields(cfg, values)["suggestions"])

	values["suggestions"] = "  too salty  "
	assert.Equal(t, "too salty", BuildFields(cfg, values)["suggestions"])
}

func TestBuildFieldsDropsUndeclaredKeys(t *testing.T) {
	cfg := Get(TypeFood)
	values := filledFoodValues()
	values["toilet_clean_at_use"] = "yes"

	fields := BuildFields(cfg, values)
	_, ok := fields["toilet_clean_at_use"]
	assert.False(t, ok, "keys outside the active config must never be included")
}

func TestFormStateMachine(t *testing.T) {
	form := NewForm(Get(TypeFood))
	assert.Equal(t, StateEditing, form.State)

	// validation failure keeps the form editing and never calls create
	called := false
	err := form.Submit(func(map[string]any) error { called = true; return nil })
	require.Error(t, err)
	assert.False(t, called)
	assert.Equal(t, StateEditing, form.State)

	for id, v := range filledFoodValues() {
		form.SetValue(id, v)
	}

	// a store failure also keeps the form editing
	storeErr := errors.New("store unavailable")
	err = form.Submit(func(map[string]any) error { return storeErr })
	assert.ErrorIs(t, err, storeErr)
	assert.Equal(t, StateEditing, form.State)

	var stored map[string]any
	require.NoError(t, form.Submit(func(fields map[string]any) error {
		stored = fields
		return nil
	}))
	assert.Equal(t, StateSubmitted, form.State)
	assert.Equal(t, "excellent", stored["overall_experience"])

	// submitted forms reject edits and resubmission
	form.SetValue("overall_experience", "dissatisfied")
	assert.Equal(t, "excellent", form.Values["overall_experience"])
	assert.Error(t, form.Submit(func(map[string]any) error { return nil }))

	// reset returns to a fresh editing state
	form.Reset()
	assert.Equal(t, StateEditing, form.State)
	assert.Empty(t, form.Values["overall_experience"])
}
