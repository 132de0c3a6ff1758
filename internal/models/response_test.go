package models

import "testing"

func TestModelOutputText(t *testing.T) {
	tests := []struct {
		name   string
		output ModelOutput
		want   string
	}{
		{
			name:   "no candidates returns empty string",
			output: ModelOutput{},
			want:   "",
		},
		{
			name: "single candidate",
			output: ModelOutput{
				Candidates: []Candidate{{Text: "hello"}},
			},
			want: "hello",
		},
		{
			name: "chosen candidate",
			output: ModelOutput{
				Candidates: []Candidate{{Text: "first"}, {Text: "second"}},
				Chosen:     1,
			},
			want: "second",
		},
		{
			name: "chosen out of range falls back to first",
			output: ModelOutput{
				Candidates: []Candidate{{Text: "first"}},
				Chosen:     5,
			},
			want: "first",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.output.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestModelOutputFinishReason(t *testing.T) {
	empty := ModelOutput{}
	if got := empty.FinishReason(); got != "" {
		t.Errorf("FinishReason() on empty output = %q, want empty", got)
	}

	out := ModelOutput{
		Candidates: []Candidate{{Text: "x", FinishReason: "MAX_TOKENS"}},
	}
	if got := out.FinishReason(); got != "MAX_TOKENS" {
		t.Errorf("FinishReason() = %q, want MAX_TOKENS", got)
	}
}

func TestChosenCandidate(t *testing.T) {
	empty := ModelOutput{}
	if got := empty.ChosenCandidate(); got != nil {
		t.Errorf("ChosenCandidate() on empty output = %v, want nil", got)
	}

	out := ModelOutput{
		Candidates: []Candidate{{Text: "a"}, {Text: "b"}},
		Chosen:     1,
	}
	if got := out.ChosenCandidate(); got == nil || got.Text != "b" {
		t.Errorf("ChosenCandidate() = %v, want candidate b", got)
	}

	out.Chosen = 9
	if got := out.ChosenCandidate(); got == nil || got.Text != "a" {
		t.Errorf("ChosenCandidate() out of range = %v, want first candidate", got)
	}
}
