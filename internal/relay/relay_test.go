package relay

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/diogo/promptrelay/internal/api"
	"github.com/diogo/promptrelay/internal/models"
)

// output builds a single-candidate ModelOutput with the given text
func output(text string) *models.ModelOutput {
	return &models.ModelOutput{
		Candidates: []models.Candidate{
			{Text: text, FinishReason: "STOP"},
		},
	}
}

func TestRunWritesResponseText(t *testing.T) {
	mock := &api.MockClient{
		GenerateContentVal: output("# Answer\n\nHello from Gemini."),
	}
	path := filepath.Join(t.TempDir(), "content.md")

	r := New(mock, path)
	text, err := r.Run("What is Go?")
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	if text != "# Answer\n\nHello from Gemini." {
		t.Errorf("Run() returned %q", text)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}
	if string(data) != "# Answer\n\nHello from Gemini." {
		t.Errorf("file contents = %q, want the response text", string(data))
	}

	if mock.LastPrompt != "What is Go?" {
		t.Errorf("generator received prompt %q, want %q", mock.LastPrompt, "What is Go?")
	}
}

func TestRunOverwritesPreviousContent(t *testing.T) {
	mock := &api.MockClient{
		GenerateContentVal: output("first response, quite a long one so truncation matters"),
	}
	path := filepath.Join(t.TempDir(), "content.md")
	r := New(mock, path)

	if _, err := r.Run("first prompt"); err != nil {
		t.Fatalf("first Run() failed: %v", err)
	}

	mock.GenerateContentVal = output("second")
	if _, err := r.Run("second prompt"); err != nil {
		t.Fatalf("second Run() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("file contents = %q, want only the second response", string(data))
	}
}

func TestRunPassesEmptyPromptThrough(t *testing.T) {
	mock := &api.MockClient{
		GenerateContentVal: output("still answered"),
		LastPrompt:         "sentinel", // Overwritten by the call
	}
	r := New(mock, filepath.Join(t.TempDir(), "content.md"))

	if _, err := r.Run(""); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	if mock.GenerateContentCalled != 1 {
		t.Fatalf("GenerateContent called %d times, want 1", mock.GenerateContentCalled)
	}
	if mock.LastPrompt != "" {
		t.Errorf("generator received prompt %q, want empty string", mock.LastPrompt)
	}
}

func TestRunEmptyResponseWritesEmptyFile(t *testing.T) {
	mock := &api.MockClient{
		GenerateContentVal: output(""),
	}
	path := filepath.Join(t.TempDir(), "content.md")
	r := New(mock, path)

	// Seed the file so the truncation is observable
	if err := os.WriteFile(path, []byte("stale content"), 0o644); err != nil {
		t.Fatalf("failed to seed output file: %v", err)
	}

	if _, err := r.Run("anything"); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("failed to stat output file: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("output file has %d bytes, want 0", info.Size())
	}
}

func TestRunNoCandidatesWritesEmptyFile(t *testing.T) {
	mock := &api.MockClient{
		GenerateContentVal: &models.ModelOutput{},
	}
	path := filepath.Join(t.TempDir(), "content.md")
	r := New(mock, path)

	if _, err := r.Run("anything"); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("output file has %d bytes, want 0", len(data))
	}
}

func TestRunGeneratorErrorLeavesNoFile(t *testing.T) {
	genErr := errors.New("service unavailable")
	mock := &api.MockClient{
		GenerateContentErr: genErr,
	}
	path := filepath.Join(t.TempDir(), "content.md")
	r := New(mock, path)

	_, err := r.Run("prompt")
	if err == nil {
		t.Fatal("Run() expected error but got none")
	}
	if !errors.Is(err, genErr) {
		t.Errorf("Run() error = %v, want wrapped %v", err, genErr)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("output file should not exist after a failed generation")
	}
}

func TestRunWriteFailurePropagates(t *testing.T) {
	mock := &api.MockClient{
		GenerateContentVal: output("text"),
	}
	// Directory path cannot be written as a file
	r := New(mock, t.TempDir())

	if _, err := r.Run("prompt"); err == nil {
		t.Fatal("Run() expected write error but got none")
	}
}

func TestOutputPath(t *testing.T) {
	r := New(&api.MockClient{}, "content.md")
	if r.OutputPath() != "content.md" {
		t.Errorf("OutputPath() = %q, want content.md", r.OutputPath())
	}
}
