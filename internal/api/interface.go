package api

import "github.com/diogo/promptrelay/internal/models"

// Generator is the text-generation capability consumed by the relay and the
// CLI. Production code uses *Client; tests substitute MockClient.
type Generator interface {
	Init() error
	Close()
	GetModel() models.Model
	SetModel(model models.Model)
	IsClosed() bool
	GenerateContent(prompt string, opts *GenerateOptions) (*models.ModelOutput, error)
}

// Ensure Client implements Generator
var _ Generator = (*Client)(nil)
