package notes

import (
	"reflect"
	"testing"
)

func TestMentions(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"no mentions", "strong phone screen, moving forward", nil},
		{"single name", "flagging for @Alex", []string{"Alex"}},
		{"full name", "please review @Sarah Chen before Friday", []string{"Sarah Chen"}},
		{"multiple mentions", "@Alex and @Jordan Lee should pair on this", []string{"Alex and", "Jordan Lee"}},
		{"duplicate kept once", "@Alex then @Alex again", []string{"Alex then", "Alex again"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mentions(tt.content); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Mentions(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}
