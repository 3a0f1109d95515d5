package assessment

import "testing"

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func singleSection(questions ...Question) []Section {
	return []Section{{ID: "s1", Title: "Section", Questions: questions}}
}

func TestValidate_Required(t *testing.T) {
	sections := singleSection(Question{ID: "q1", Type: TypeShortText, Required: true})

	tests := []struct {
		name    string
		answers Answers
		wantErr bool
	}{
		{"missing", Answers{}, true},
		{"nil", Answers{"q1": nil}, true},
		{"empty string", Answers{"q1": ""}, true},
		{"empty list", Answers{"q1": []any{}}, true},
		{"answered", Answers{"q1": "hello"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(sections, tt.answers)
			if _, ok := errs["q1"]; ok != tt.wantErr {
				t.Errorf("error present = %v, want %v (errs: %v)", ok, tt.wantErr, errs)
			}
			if tt.wantErr && errs["q1"] != "This field is required" {
				t.Errorf("message = %q", errs["q1"])
			}
		})
	}
}

func TestValidate_NumericBounds(t *testing.T) {
	sections := singleSection(Question{
		ID: "q1", Type: TypeNumeric, MinValue: fptr(2), MaxValue: fptr(5),
	})

	tests := []struct {
		name    string
		answer  any
		wantMsg string
	}{
		{"below minimum", "1", "Value must be at least 2"},
		{"above maximum", "6", "Value must be at most 5"},
		{"within bounds", "3", ""},
		{"at minimum", "2", ""},
		{"at maximum", "5", ""},
		{"json number within", float64(4), ""},
		{"json number below", float64(1), "Value must be at least 2"},
		{"not a number", "abc", "Please enter a valid number"},
		{"optional and empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(sections, Answers{"q1": tt.answer})
			if errs["q1"] != tt.wantMsg {
				t.Errorf("message = %q, want %q", errs["q1"], tt.wantMsg)
			}
		})
	}
}

func TestValidate_MaxLength(t *testing.T) {
	sections := singleSection(Question{ID: "q1", Type: TypeLongText, MaxLength: iptr(5)})

	if errs := Validate(sections, Answers{"q1": "123456"}); errs["q1"] != "Maximum length is 5 characters" {
		t.Errorf("message = %q", errs["q1"])
	}
	if errs := Validate(sections, Answers{"q1": "12345"}); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestValidate_HiddenQuestionsSkipped(t *testing.T) {
	sections := singleSection(
		Question{ID: "q1", Type: TypeSingleChoice, Options: []string{"yes", "no"}},
		Question{
			ID: "q2", Type: TypeShortText, Required: true,
			ConditionalOn: &Condition{QuestionID: "q1", ExpectedValue: "yes"},
		},
	)

	// q2 hidden: its required flag must not fire.
	if errs := Validate(sections, Answers{"q1": "no"}); len(errs) != 0 {
		t.Errorf("expected no errors for hidden question, got %v", errs)
	}

	// q2 visible and empty: required fires.
	errs := Validate(sections, Answers{"q1": "yes"})
	if errs["q2"] != "This field is required" {
		t.Errorf("expected required error for q2, got %v", errs)
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	sections := singleSection(
		Question{ID: "q1", Type: TypeShortText, Required: true},
		Question{ID: "q2", Type: TypeNumeric, MinValue: fptr(10)},
		Question{ID: "q3", Type: TypeMultiChoice, Required: true, Options: []string{"a", "b"}},
	)

	errs := Validate(sections, Answers{"q2": "3", "q3": []any{}})
	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %d: %v", len(errs), errs)
	}
}

func TestValidate_FileUploadOnlyRequired(t *testing.T) {
	sections := singleSection(Question{ID: "q1", Type: TypeFileUpload, Required: true})

	if errs := Validate(sections, Answers{}); errs["q1"] == "" {
		t.Error("expected required error")
	}
	if errs := Validate(sections, Answers{"q1": "resume.pdf"}); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}
