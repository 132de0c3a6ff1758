package api

import (
	"testing"

	"github.com/diogo/promptrelay/internal/models"
)

func TestMockClientRecordsCalls(t *testing.T) {
	mock := &MockClient{
		GenerateContentVal: &models.ModelOutput{
			Candidates: []models.Candidate{{Text: "canned"}},
		},
	}

	if err := mock.Init(); err != nil {
		t.Fatalf("Init() unexpected error: %v", err)
	}
	if !mock.InitCalled {
		t.Error("InitCalled not recorded")
	}

	out, err := mock.GenerateContent("recorded prompt", &GenerateOptions{})
	if err != nil {
		t.Fatalf("GenerateContent() unexpected error: %v", err)
	}
	if out.Text() != "canned" {
		t.Errorf("Text() = %q, want canned", out.Text())
	}
	if mock.LastPrompt != "recorded prompt" {
		t.Errorf("LastPrompt = %q", mock.LastPrompt)
	}
	if mock.GenerateContentCalled != 1 {
		t.Errorf("GenerateContentCalled = %d, want 1", mock.GenerateContentCalled)
	}

	mock.Close()
	if !mock.CloseCalled {
		t.Error("CloseCalled not recorded")
	}
}
