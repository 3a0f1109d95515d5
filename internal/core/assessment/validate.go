package assessment

import (
	"fmt"
	"strconv"
	"strings"
)

// Validate checks every currently-visible question against the answer
// snapshot and returns all errors keyed by question id. Hidden questions
// are skipped entirely, including their required flag. An empty map means
// the answers are acceptable.
func Validate(sections []Section, answers Answers) map[string]string {
	errs := make(map[string]string)
	for _, section := range sections {
		for _, q := range section.Questions {
			if !Visible(q, answers) {
				continue
			}
			if msg := validateAnswer(q, answers[q.ID]); msg != "" {
				errs[q.ID] = msg
			}
		}
	}
	return errs
}

func validateAnswer(q Question, answer any) string {
	if q.Required && isEmpty(answer) {
		return "This field is required"
	}

	if q.Type == TypeNumeric && !isEmpty(answer) {
		num, ok := toNumber(answer)
		if !ok {
			return "Please enter a valid number"
		}
		if q.MinValue != nil && num < *q.MinValue {
			return fmt.Sprintf("Value must be at least %s", formatNumber(*q.MinValue))
		}
		if q.MaxValue != nil && num > *q.MaxValue {
			return fmt.Sprintf("Value must be at most %s", formatNumber(*q.MaxValue))
		}
	}

	if (q.Type == TypeShortText || q.Type == TypeLongText) && !isEmpty(answer) && q.MaxLength != nil {
		if s, ok := answer.(string); ok && len([]rune(s)) > *q.MaxLength {
			return fmt.Sprintf("Maximum length is %d characters", *q.MaxLength)
		}
	}

	return ""
}

// isEmpty reports whether an answer counts as not provided: absent, nil,
// empty string, or empty list.
func isEmpty(answer any) bool {
	switch v := answer.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []string:
		return len(v) == 0
	case []any:
		return len(v) == 0
	default:
		return false
	}
}

// toNumber interprets an answer as a number. JSON numbers arrive as
// float64; free-text numeric inputs arrive as strings.
func toNumber(answer any) (float64, bool) {
	switch v := answer.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		num, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return num, true
	default:
		return 0, false
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
