package assessment

// Visible reports whether a question should be shown for the current
// answer snapshot. Questions without a condition are always visible;
// conditional questions require the dependency's answer to be exactly
// equal to the expected value (strict equality, not containment).
//
// Chains are not specially resolved: visibility is computed per question
// from the snapshot, so multi-level conditions settle as long as the
// caller re-evaluates after every answer change.
func Visible(q Question, answers Answers) bool {
	if q.ConditionalOn == nil {
		return true
	}
	answer, ok := answers[q.ConditionalOn.QuestionID]
	if !ok {
		return false
	}
	s, ok := answer.(string)
	return ok && s == q.ConditionalOn.ExpectedValue
}
