// Package questionnaire holds the static questionnaire definitions: one config
// per survey type describing its rating scale, sections and fields. The table
// is built at compile time and never mutated, so it is safe for concurrent
// readers without locking. Both the form engine (write path) and the stats
// aggregator (read path) consume the same config.
package questionnaire

// Type identifies a survey variant.
type Type string

const (
	TypeFood          Type = "food"
	TypeHousekeeping  Type = "housekeeping"
	TypeSchoolCanteen Type = "school_canteen"

	// DefaultType is the canonical type. Legacy records predating
	// multi-survey support carry no type tag and are treated as this type
	// everywhere in the system.
	DefaultType = TypeFood
)

// FieldKind is the input widget / value semantics of a field.
type FieldKind string

const (
	KindRatingGrid   FieldKind = "rating_grid"
	KindRadio        FieldKind = "radio"
	KindTextarea     FieldKind = "textarea"
	KindMealTime     FieldKind = "meal_time"
	KindSchoolSelect FieldKind = "school_select"
)

// RatingScaleOption is one position on a type's rating scale. Score is used
// for weighted averages only; higher means better.
type RatingScaleOption struct {
	Value    string `json:"value"`
	LabelKey string `json:"label_key"`
	Score    int    `json:"score"`
}

// FieldOption is one choice of a radio field.
type FieldOption struct {
	Value    string `json:"value"`
	LabelKey string `json:"label_key"`
}

// QuestionField describes a single input. ID doubles as the storage key for
// the submitted value.
type QuestionField struct {
	ID        string        `json:"id"`
	LabelKey  string        `json:"label_key"`
	Kind      FieldKind     `json:"kind"`
	Required  bool          `json:"required"`
	Options   []FieldOption `json:"options,omitempty"`
	ShowLabel bool          `json:"show_label"`
}

// QuestionSection is an ordered group of fields. Section order is display and
// validation order.
type QuestionSection struct {
	ID             string          `json:"id"`
	TitleKey       string          `json:"title_key"`
	DescriptionKey string          `json:"description_key,omitempty"`
	Fields         []QuestionField `json:"fields"`
}

// Config is the full definition of one questionnaire type.
//
// The Has* flags describe the aggregation shape so that stats code branches on
// shape instead of string-matching the type tag; new types stay additive.
type Config struct {
	ID          Type   `json:"id"`
	NameKey     string `json:"name_key"`
	WelcomeKey  string `json:"welcome_key"`
	SubtitleKey string `json:"subtitle_key"`

	RatingScale []RatingScaleOption `json:"rating_scale"`
	Sections    []QuestionSection   `json:"sections"`

	OverallRatingField string   `json:"overall_rating_field"`
	SuggestionsField   string   `json:"suggestions_field"`
	CategoryFields     []string `json:"category_fields,omitempty"`
	RadioFields        []string `json:"radio_fields,omitempty"`

	HasMealTime          bool `json:"has_meal_time"`
	HasSchoolSelect      bool `json:"has_school_select"`
	HasCategoryBreakdown bool `json:"has_category_breakdown"`
	HasChoiceBreakdown   bool `json:"has_choice_breakdown"`
}

// Option is one entry of the type picker shown to administrators.
type Option struct {
	Value    Type   `json:"value"`
	LabelKey string `json:"label_key"`
}

var foodRatingScale = []RatingScaleOption{
	{Value: "excellent", LabelKey: "ratings.excellent", Score: 5},
	{Value: "very_good", LabelKey: "ratings.very_good", Score: 4},
	{Value: "good", LabelKey: "ratings.good", Score: 3},
	{Value: "average", LabelKey: "ratings.average", Score: 2},
	{Value: "dissatisfied", LabelKey: "ratings.dissatisfied", Score: 1},
}

var fiveStarRatingScale = []RatingScaleOption{
	{Value: "excellent", LabelKey: "ratings.excellent", Score: 5},
	{Value: "good", LabelKey: "ratings.good", Score: 4},
	{Value: "average", LabelKey: "ratings.average", Score: 3},
	{Value: "poor", LabelKey: "ratings.poor", Score: 2},
	{Value: "very_poor", LabelKey: "ratings.very_poor", Score: 1},
}

var yesNo = []FieldOption{
	{Value: "yes", LabelKey: "common.yes"},
	{Value: "no", LabelKey: "common.no"},
}

var yesNoNotSure = []FieldOption{
	{Value: "yes", LabelKey: "common.yes"},
	{Value: "no", LabelKey: "common.no"},
	{Value: "not_sure", LabelKey: "common.notSure"},
}

var yesNoNA = []FieldOption{
	{Value: "yes", LabelKey: "common.yes"},
	{Value: "no", LabelKey: "common.no"},
	{Value: "not_applicable", LabelKey: "common.notApplicable"},
}

var foodConfig = &Config{
	ID:          TypeFood,
	NameKey:     "questionnaire.food.name",
	WelcomeKey:  "feedback.welcome",
	SubtitleKey: "feedback.subtitle",
	RatingScale: foodRatingScale,
	Sections: []QuestionSection{
		{
			ID:       "meal_time",
			TitleKey: "feedback.mealTime",
			Fields: []QuestionField{
				{ID: "meal_time", LabelKey: "feedback.mealTime", Kind: KindMealTime, Required: true},
			},
		},
		{
			ID:             "food_menu",
			TitleKey:       "feedback.foodMenuRatings",
			DescriptionKey: "feedback.selectOne",
			Fields: []QuestionField{
				{ID: "food_temperature", LabelKey: "feedback.foodTemperature", Kind: KindRatingGrid, Required: true, ShowLabel: true},
				{ID: "food_taste", LabelKey: "feedback.foodTaste", Kind: KindRatingGrid, Required: true, ShowLabel: true},
				{ID: "food_aroma", LabelKey: "feedback.foodAroma", Kind: KindRatingGrid, Required: true, ShowLabel: true},
				{ID: "menu_variety", LabelKey: "feedback.menuVariety", Kind: KindRatingGrid, Required: true, ShowLabel: true},
			},
		},
		{
			ID:             "service",
			TitleKey:       "feedback.serviceRatings",
			DescriptionKey: "feedback.selectOne",
			Fields: []QuestionField{
				{ID: "staff_attitude", LabelKey: "feedback.staffAttitude", Kind: KindRatingGrid, Required: true, ShowLabel: true},
				{ID: "service_time", LabelKey: "feedback.serviceTime", Kind: KindRatingGrid, Required: true, ShowLabel: true},
				{ID: "cleanliness", LabelKey: "feedback.cleanliness", Kind: KindRatingGrid, Required: true, ShowLabel: true},
			},
		},
		{
			ID:       "overall",
			TitleKey: "feedback.overallExperience",
			Fields: []QuestionField{
				{ID: "overall_experience", Kind: KindRatingGrid, Required: true},
			},
		},
		{
			ID:       "suggestions",
			TitleKey: "feedback.suggestions",
			Fields: []QuestionField{
				{ID: "suggestions", LabelKey: "feedback.suggestionsPlaceholder", Kind: KindTextarea},
			},
		},
	},
	OverallRatingField: "overall_experience",
	SuggestionsField:   "suggestions",
	CategoryFields: []string{
		"food_temperature", "food_taste", "food_aroma", "menu_variety",
		"staff_attitude", "service_time", "cleanliness",
	},
	HasMealTime:          true,
	HasCategoryBreakdown: true,
}

var housekeepingConfig = &Config{
	ID:          TypeHousekeeping,
	NameKey:     "questionnaire.housekeeping.name",
	WelcomeKey:  "questionnaire.housekeeping.welcome",
	SubtitleKey: "questionnaire.housekeeping.subtitle",
	RatingScale: fiveStarRatingScale,
	Sections: []QuestionSection{
		{
			ID:       "overall_rating",
			TitleKey: "questionnaire.housekeeping.overallRating",
			Fields: []QuestionField{
				{ID: "housekeeping_overall", Kind: KindRatingGrid, Required: true},
			},
		},
		{
			ID:       "toilet_questions",
			TitleKey: "questionnaire.housekeeping.toiletSection",
			Fields: []QuestionField{
				{ID: "toilet_clean_at_use", LabelKey: "questionnaire.housekeeping.cleanAtUse", Kind: KindRadio, Required: true, Options: yesNo},
				{ID: "toilet_supplies_available", LabelKey: "questionnaire.housekeeping.suppliesAvailable", Kind: KindRadio, Required: true, Options: yesNo},
				{ID: "toilet_unpleasant_smell", LabelKey: "questionnaire.housekeeping.unpleasantSmell", Kind: KindRadio, Required: true, Options: yesNo},
				{ID: "toilet_area_needs_cleaning", LabelKey: "questionnaire.housekeeping.areaNeedsCleaning", Kind: KindRadio, Required: true, Options: []FieldOption{
					{Value: "toilet_seat", LabelKey: "questionnaire.housekeeping.toiletSeat"},
					{Value: "floor", LabelKey: "questionnaire.housekeeping.floor"},
					{Value: "wash_basin", LabelKey: "questionnaire.housekeeping.washBasin"},
					{Value: "none", LabelKey: "questionnaire.housekeeping.noneOption"},
				}},
				{ID: "toilet_cleaned_frequently", LabelKey: "questionnaire.housekeeping.cleanedFrequently", Kind: KindRadio, Required: true, Options: yesNoNotSure},
			},
		},
		{
			ID:       "laundry_questions",
			TitleKey: "questionnaire.housekeeping.laundrySection",
			Fields: []QuestionField{
				{ID: "laundry_properly_cleaned", LabelKey: "questionnaire.housekeeping.properlyCleaned", Kind: KindRadio, Required: true, Options: yesNo},
				{ID: "laundry_returned_on_time", LabelKey: "questionnaire.housekeeping.returnedOnTime", Kind: KindRadio, Required: true, Options: yesNo},
				{ID: "laundry_fresh_no_odor", LabelKey: "questionnaire.housekeeping.freshNoOdor", Kind: KindRadio, Required: true, Options: yesNo},
				{ID: "laundry_ironing_folding", LabelKey: "questionnaire.housekeeping.ironingFoldingDone", Kind: KindRadio, Required: true, Options: yesNoNA},
				{ID: "laundry_issues", LabelKey: "questionnaire.housekeeping.issuesNoticed", Kind: KindRadio, Required: true, Options: []FieldOption{
					{Value: "clothes_damaged", LabelKey: "questionnaire.housekeeping.clothesDamaged"},
					{Value: "stains_not_removed", LabelKey: "questionnaire.housekeeping.stainsNotRemoved"},
					{Value: "missing_items", LabelKey: "questionnaire.housekeeping.missingItems"},
					{Value: "no_issues", LabelKey: "questionnaire.housekeeping.noIssues"},
				}},
			},
		},
		{
			ID:       "suggestions",
			TitleKey: "feedback.suggestions",
			Fields: []QuestionField{
				{ID: "housekeeping_suggestions", LabelKey: "questionnaire.housekeeping.suggestionsPlaceholder", Kind: KindTextarea},
			},
		},
	},
	OverallRatingField: "housekeeping_overall",
	SuggestionsField:   "housekeeping_suggestions",
	RadioFields: []string{
		"toilet_clean_at_use", "toilet_supplies_available", "toilet_unpleasant_smell",
		"toilet_area_needs_cleaning", "toilet_cleaned_frequently",
		"laundry_properly_cleaned", "laundry_returned_on_time", "laundry_fresh_no_odor",
		"laundry_ironing_folding", "laundry_issues",
	},
	HasChoiceBreakdown: true,
}

var schoolCanteenConfig = &Config{
	ID:          TypeSchoolCanteen,
	NameKey:     "questionnaire.school_canteen.name",
	WelcomeKey:  "questionnaire.school_canteen.welcome",
	SubtitleKey: "questionnaire.school_canteen.subtitle",
	RatingScale: foodRatingScale,
	Sections: []QuestionSection{
		{
			ID:       "school_selection",
			TitleKey: "questionnaire.school_canteen.selectSchool",
			Fields: []QuestionField{
				{ID: "sc_school", LabelKey: "questionnaire.school_canteen.selectSchool", Kind: KindSchoolSelect, Required: true},
			},
		},
		{
			ID:             "food_quality",
			TitleKey:       "questionnaire.school_canteen.foodQuality",
			DescriptionKey: "questionnaire.school_canteen.foodQualityDesc",
			Fields: []QuestionField{
				{ID: "sc_food_taste", LabelKey: "questionnaire.school_canteen.foodTaste", Kind: KindRatingGrid, Required: true, ShowLabel: true},
				{ID: "sc_food_temperature", LabelKey: "questionnaire.school_canteen.foodTemperature", Kind: KindRatingGrid, Required: true, ShowLabel: true},
				{ID: "sc_food_freshness", LabelKey: "questionnaire.school_canteen.foodFreshness", Kind: KindRatingGrid, Required: true, ShowLabel: true},
				{ID: "sc_food_variety", LabelKey: "questionnaire.school_canteen.foodVariety", Kind: KindRatingGrid, Required: true, ShowLabel: true},
				{ID: "sc_portion_size", LabelKey: "questionnaire.school_canteen.portionSize", Kind: KindRatingGrid, Required: true, ShowLabel: true},
			},
		},
		{
			ID:             "hygiene_cleanliness",
			TitleKey:       "questionnaire.school_canteen.hygieneCleanliness",
			DescriptionKey: "questionnaire.school_canteen.hygieneDesc",
			Fields: []QuestionField{
				{ID: "sc_kitchen_cleanliness", LabelKey: "questionnaire.school_canteen.kitchenCleanliness", Kind: KindRatingGrid, Required: true, ShowLabel: true},
				{ID: "sc_dining_area", LabelKey: "questionnaire.school_canteen.diningArea", Kind: KindRatingGrid, Required: true, ShowLabel: true},
				{ID: "sc_food_handling", LabelKey: "questionnaire.school_canteen.foodHandling", Kind: KindRatingGrid, Required: true, ShowLabel: true},
			},
		},
		{
			ID:             "service",
			TitleKey:       "questionnaire.school_canteen.serviceSection",
			DescriptionKey: "feedback.selectOne",
			Fields: []QuestionField{
				{ID: "sc_staff_behavior", LabelKey: "questionnaire.school_canteen.staffBehavior", Kind: KindRatingGrid, Required: true, ShowLabel: true},
				{ID: "sc_waiting_time", LabelKey: "questionnaire.school_canteen.waitingTime", Kind: KindRatingGrid, Required: true, ShowLabel: true},
				{ID: "sc_serving_quality", LabelKey: "questionnaire.school_canteen.servingQuality", Kind: KindRatingGrid, Required: true, ShowLabel: true},
			},
		},
		{
			ID:       "overall",
			TitleKey: "questionnaire.school_canteen.overallExperience",
			Fields: []QuestionField{
				{ID: "sc_overall", Kind: KindRatingGrid, Required: true},
			},
		},
		{
			ID:             "suggestions",
			TitleKey:       "questionnaire.school_canteen.suggestionsTitle",
			DescriptionKey: "questionnaire.school_canteen.suggestionsDesc",
			Fields: []QuestionField{
				{ID: "sc_suggestions", LabelKey: "questionnaire.school_canteen.suggestionsPlaceholder", Kind: KindTextarea},
			},
		},
	},
	OverallRatingField: "sc_overall",
	SuggestionsField:   "sc_suggestions",
	CategoryFields: []string{
		"sc_food_taste", "sc_food_temperature", "sc_food_freshness", "sc_food_variety", "sc_portion_size",
		"sc_kitchen_cleanliness", "sc_dining_area", "sc_food_handling",
		"sc_staff_behavior", "sc_waiting_time", "sc_serving_quality",
	},
	HasSchoolSelect:      true,
	HasCategoryBreakdown: true,
}

// order is authorial, not alphabetical; it drives the admin type picker.
var orderedTypes = []Type{TypeFood, TypeHousekeeping, TypeSchoolCanteen}

var registry = map[Type]*Config{
	TypeFood:          foodConfig,
	TypeHousekeeping:  housekeepingConfig,
	TypeSchoolCanteen: schoolCanteenConfig,
}

// Get returns the config for t, falling back to the default type when t is
// unknown or empty. The fallback is deliberate: historical records without a
// type tag are treated as the default type system-wide.
func Get(t Type) *Config {
	if c, ok := registry[t]; ok {
		return c
	}
	return registry[DefaultType]
}

// Options lists the selectable questionnaire types in declaration order.
func Options() []Option {
	opts := make([]Option, 0, len(orderedTypes))
	for _, t := range orderedTypes {
		opts = append(opts, Option{Value: t, LabelKey: registry[t].NameKey})
	}
	return opts
}

// Types lists all registered types in declaration order.
func Types() []Type {
	out := make([]Type, len(orderedTypes))
	copy(out, orderedTypes)
	return out
}

// Field looks up a field by id across all sections.
func (c *Config) Field(id string) (QuestionField, bool) {
	for _, s := range c.Sections {
		for _, f := range s.Fields {
			if f.ID == id {
				return f, true
			}
		}
	}
	return QuestionField{}, false
}

// AllFields returns the ids of every ratable/answerable field, skipping
// textarea, meal_time and school_select inputs.
func (c *Config) AllFields() []string {
	var ids []string
	for _, s := range c.Sections {
		for _, f := range s.Fields {
			switch f.Kind {
			case KindTextarea, KindMealTime, KindSchoolSelect:
			default:
				ids = append(ids, f.ID)
			}
		}
	}
	return ids
}

// RatingValues returns the scale values for t in scale order.
func RatingValues(t Type) []string {
	scale := Get(t).RatingScale
	vals := make([]string, len(scale))
	for i, r := range scale {
		vals[i] = r.Value
	}
	return vals
}

// ScoreMap returns value -> score for t's rating scale.
func ScoreMap(t Type) map[string]int {
	scale := Get(t).RatingScale
	m := make(map[string]int, len(scale))
	for _, r := range scale {
		m[r.Value] = r.Score
	}
	return m
}
