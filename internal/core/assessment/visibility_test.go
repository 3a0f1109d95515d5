package assessment

import "testing"

func TestVisible_NoCondition(t *testing.T) {
	q := Question{ID: "q1", Type: TypeShortText}
	if !Visible(q, Answers{}) {
		t.Error("unconditional question should always be visible")
	}
}

func TestVisible_Conditional(t *testing.T) {
	q := Question{
		ID:            "q2",
		Type:          TypeShortText,
		ConditionalOn: &Condition{QuestionID: "q1", ExpectedValue: "yes"},
	}

	tests := []struct {
		name    string
		answers Answers
		want    bool
	}{
		{"matching answer", Answers{"q1": "yes"}, true},
		{"different answer", Answers{"q1": "no"}, false},
		{"no answer", Answers{}, false},
		{"nil answer", Answers{"q1": nil}, false},
		{"list answer never matches", Answers{"q1": []any{"yes"}}, false},
		{"numeric answer never matches", Answers{"q1": float64(1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Visible(q, tt.answers); got != tt.want {
				t.Errorf("Visible() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVisible_ChainResolvesFromSnapshot(t *testing.T) {
	// q3 depends on q2 which depends on q1. Visibility is evaluated per
	// question against the snapshot, so a fully-answered chain shows all.
	q2 := Question{ID: "q2", ConditionalOn: &Condition{QuestionID: "q1", ExpectedValue: "yes"}}
	q3 := Question{ID: "q3", ConditionalOn: &Condition{QuestionID: "q2", ExpectedValue: "deep"}}

	answers := Answers{"q1": "yes", "q2": "deep"}
	if !Visible(q2, answers) || !Visible(q3, answers) {
		t.Error("expected both chained questions visible")
	}

	// Breaking the root hides q2 but q3 still keys off q2's stale answer;
	// it settles once the caller re-validates after clearing q2.
	answers = Answers{"q1": "no", "q2": "deep"}
	if Visible(q2, answers) {
		t.Error("q2 should be hidden when q1 is 'no'")
	}
}
