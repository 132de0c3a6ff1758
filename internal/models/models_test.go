package models

import (
	"strings"
	"testing"
)

func TestModelFromName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Model
	}{
		{"flash", "gemini-2.5-flash", Model25Flash},
		{"pro", "gemini-2.5-pro", Model25Pro},
		{"flash lite", "gemini-2.5-flash-lite", Model25FlashLite},
		{"unknown falls back to unspecified", "gpt-4o", ModelUnspecified},
		{"empty falls back to unspecified", "", ModelUnspecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ModelFromName(tt.input); got.Name != tt.want.Name {
				t.Errorf("ModelFromName(%q) = %q, want %q", tt.input, got.Name, tt.want.Name)
			}
		})
	}
}

func TestAllModels(t *testing.T) {
	all := AllModels()
	if len(all) != 3 {
		t.Fatalf("AllModels() returned %d models, want 3", len(all))
	}
	for _, m := range all {
		if m.Name == "" || m.Description == "" {
			t.Errorf("model %+v has empty fields", m)
		}
	}
}

func TestEndpointGenerate(t *testing.T) {
	got := EndpointGenerate("gemini-2.5-flash")
	want := "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash:generateContent"
	if got != want {
		t.Errorf("EndpointGenerate() = %q, want %q", got, want)
	}
}

func TestDefaultHeaders(t *testing.T) {
	headers := DefaultHeaders()

	if headers["Content-Type"] != "application/json" {
		t.Errorf("Content-Type = %q", headers["Content-Type"])
	}
	if !strings.HasPrefix(headers["User-Agent"], "promptrelay/") {
		t.Errorf("User-Agent = %q", headers["User-Agent"])
	}
	// The key never travels in the shared headers
	if _, ok := headers["x-goog-api-key"]; ok {
		t.Error("DefaultHeaders() must not carry the API key")
	}
}
