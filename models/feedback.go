package models

import (
	"encoding/json"
	"time"
)

// Feedback is one stored submission: a small fixed envelope plus a sparse
// field-id -> value document in FieldsJSON. The field set is open-ended per
// questionnaire type, and rows written by older versions of the app may carry
// keys no current config declares; readers must tolerate missing and extra
// keys. Rows are never updated, only deleted by an administrator.
type Feedback struct {
	ID uint `gorm:"column:id;primaryKey;autoIncrement" json:"id"`

	// Empty for legacy rows predating multi-survey support; such rows are
	// treated as the default type.
	QuestionnaireType string `gorm:"column:questionnaire_type;size:50" json:"questionnaire_type,omitempty"`

	// Calendar day the feedback refers to, zero-padded YYYY-MM-DD so that
	// lexicographic order is date order.
	FeedbackDate string `gorm:"column:feedback_date;size:10;index" json:"feedback_date"`

	PlaceID   *uint   `gorm:"column:place_id" json:"place_id,omitempty"`
	PlaceSlug *string `gorm:"column:place_slug;size:32;index" json:"place_slug,omitempty"`
	PlaceName *string `gorm:"column:place_name;size:255" json:"place_name,omitempty"`

	FieldsJSON string `gorm:"column:fields;type:jsonb" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Feedback) TableName() string {
	return "feedback"
}

// Fields decodes the sparse field document. A broken or empty document decodes
// to an empty map rather than an error so one bad row cannot poison a listing
// or an aggregation.
func (f *Feedback) Fields() map[string]any {
	fields := make(map[string]any)
	if f.FieldsJSON != "" {
		_ = json.Unmarshal([]byte(f.FieldsJSON), &fields)
	}
	return fields
}

// SetFields encodes the field document for storage.
func (f *Feedback) SetFields(fields map[string]any) error {
	b, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	f.FieldsJSON = string(b)
	return nil
}

// FieldString returns the string value stored under id, or "" when the key is
// absent, null or not a string.
func (f *Feedback) FieldString(id string) string {
	v, _ := f.Fields()[id].(string)
	return v
}
