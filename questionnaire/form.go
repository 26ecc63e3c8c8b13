package questionnaire

import (
	"fmt"
	"strings"
)

// ValidationError reports the first required field left empty, scanning
// sections then fields in declared order.
type ValidationError struct {
	FieldID string
	Kind    FieldKind
}

func (e *ValidationError) Error() string {
	if e.Kind == KindMealTime {
		return "please select a meal time"
	}
	return fmt.Sprintf("please complete all required fields (missing %q)", e.FieldID)
}

// InitialValues returns an empty-string placeholder for every field of every
// section.
func InitialValues(c *Config) map[string]string {
	values := make(map[string]string)
	for _, s := range c.Sections {
		for _, f := range s.Fields {
			values[f.ID] = ""
		}
	}
	return values
}

// Validate checks required fields left-to-right, top-to-bottom and stops at
// the first failure. A nil return means the values are submittable.
func Validate(c *Config, values map[string]string) error {
	for _, s := range c.Sections {
		for _, f := range s.Fields {
			if f.Required && values[f.ID] == "" {
				return &ValidationError{FieldID: f.ID, Kind: f.Kind}
			}
		}
	}
	return nil
}

// BuildFields assembles the sparse field document stored with a submission.
// Values are copied verbatim for every field the config declares; textarea
// values are trimmed, and an empty textarea becomes null rather than an empty
// string so that "has suggestions" counts can rely on null meaning none.
// Keys not declared by the config are never included.
func BuildFields(c *Config, values map[string]string) map[string]any {
	fields := make(map[string]any)
	for _, s := range c.Sections {
		for _, f := range s.Fields {
			v, ok := values[f.ID]
			if !ok {
				continue
			}
			if f.Kind == KindTextarea {
				if t := strings.TrimSpace(v); t != "" {
					fields[f.ID] = t
				} else {
					fields[f.ID] = nil
				}
				continue
			}
			fields[f.ID] = v
		}
	}
	return fields
}

// FormState is the lifecycle of an in-progress form.
type FormState string

const (
	StateEditing   FormState = "editing"
	StateSubmitted FormState = "submitted"
)

// Form tracks one respondent's answers for a config. It has exactly two
// states: editing and submitted. There is no draft or partial-submission
// state.
type Form struct {
	Config *Config
	Values map[string]string
	State  FormState
}

// NewForm starts an editing form with all values empty.
func NewForm(c *Config) *Form {
	return &Form{Config: c, Values: InitialValues(c), State: StateEditing}
}

// SetValue records a single field value. It is a pure update with no
// cross-field side effects, and is ignored once the form is submitted.
func (f *Form) SetValue(fieldID, value string) {
	if f.State != StateEditing {
		return
	}
	f.Values[fieldID] = value
}

// Validate runs required-field validation against the current values.
func (f *Form) Validate() error {
	return Validate(f.Config, f.Values)
}

// Submit validates and, via create, persists the assembled field document.
// The editing -> submitted transition happens only after both succeed.
func (f *Form) Submit(create func(fields map[string]any) error) error {
	if f.State == StateSubmitted {
		return fmt.Errorf("form already submitted")
	}
	if err := f.Validate(); err != nil {
		return err
	}
	if err := create(BuildFields(f.Config, f.Values)); err != nil {
		return err
	}
	f.State = StateSubmitted
	return nil
}

// Reset returns a submitted form to the editing state with fresh empty values
// ("new feedback" on the same config).
func (f *Form) Reset() {
	f.Values = InitialValues(f.Config)
	f.State = StateEditing
}
