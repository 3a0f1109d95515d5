// Package assessment contains the pure model and validation logic for
// assessments. It is shared by the builder preview and the live candidate
// attempt so both evaluate visibility and answers identically.
package assessment

// Question types.
const (
	TypeShortText    = "short-text"
	TypeLongText     = "long-text"
	TypeSingleChoice = "single-choice"
	TypeMultiChoice  = "multi-choice"
	TypeNumeric      = "numeric"
	TypeFileUpload   = "file-upload"
)

// Condition makes a question's visibility depend on another question's
// answer being exactly ExpectedValue.
type Condition struct {
	QuestionID    string `json:"questionId"`
	ExpectedValue string `json:"expectedValue"`
}

// Question is one prompt within a section. The constraint fields are
// pointers so that "not configured" is distinguishable from zero.
type Question struct {
	ID            string     `json:"id"`
	Type          string     `json:"type"`
	Text          string     `json:"text"`
	Required      bool       `json:"required"`
	Options       []string   `json:"options,omitempty"`
	MinValue      *float64   `json:"minValue,omitempty"`
	MaxValue      *float64   `json:"maxValue,omitempty"`
	MaxLength     *int       `json:"maxLength,omitempty"`
	ConditionalOn *Condition `json:"conditionalOn,omitempty"`
}

// Section is an ordered group of questions.
type Section struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Answers maps question ids to in-progress answer values. Values follow
// JSON decoding: string, float64, or []any of strings depending on the
// question type.
type Answers map[string]any
