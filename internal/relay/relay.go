// Package relay implements the single-shot prompt pipeline: one prompt in,
// one generation request, one truncating write of the response text.
package relay

import (
	"fmt"
	"os"

	"github.com/diogo/promptrelay/internal/api"
)

// Relay forwards a prompt to a text generator and persists the response.
type Relay struct {
	gen        api.Generator
	outputPath string
}

// New creates a Relay writing responses to outputPath.
func New(gen api.Generator, outputPath string) *Relay {
	return &Relay{
		gen:        gen,
		outputPath: outputPath,
	}
}

// OutputPath returns the file the response text is written to.
func (r *Relay) OutputPath() string {
	return r.outputPath
}

// Run submits the prompt and writes the response text to the output file,
// replacing any previous content. The prompt is passed through verbatim;
// no trimming, no validation, empty input included. Returns the response
// text on success.
func (r *Relay) Run(prompt string) (string, error) {
	output, err := r.gen.GenerateContent(prompt, &api.GenerateOptions{})
	if err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}

	text := output.Text()

	if err := os.WriteFile(r.outputPath, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("failed to write output file: %w", err)
	}

	return text, nil
}
