// Package models contains data types and constants for the Gemini API.
package models

import "fmt"

// Endpoints for the generativelanguage API
const (
	EndpointBase       = "https://generativelanguage.googleapis.com"
	EndpointGenerateFn = EndpointBase + "/v1beta/models/%s:generateContent"
	EndpointModels     = EndpointBase + "/v1beta/models"
)

// EndpointGenerate returns the generateContent endpoint for a model name.
func EndpointGenerate(modelName string) string {
	return fmt.Sprintf(EndpointGenerateFn, modelName)
}

// Model represents an available Gemini model
type Model struct {
	Name        string
	Description string
}

// Available models
var (
	// ModelUnspecified falls back to the default model at request time
	ModelUnspecified = Model{
		Name: "unspecified",
	}

	Model25Flash = Model{
		Name:        "gemini-2.5-flash",
		Description: "Fast general-purpose model",
	}

	Model25Pro = Model{
		Name:        "gemini-2.5-pro",
		Description: "Strongest reasoning model",
	}

	Model25FlashLite = Model{
		Name:        "gemini-2.5-flash-lite",
		Description: "Cheapest and fastest model",
	}

	// DefaultModel is the recommended default
	DefaultModel = Model25Flash
)

// AllModels returns a list of all available models
func AllModels() []Model {
	return []Model{Model25Flash, Model25Pro, Model25FlashLite}
}

// ModelFromName returns a Model by its name
func ModelFromName(name string) Model {
	switch name {
	case "gemini-2.5-flash":
		return Model25Flash
	case "gemini-2.5-pro":
		return Model25Pro
	case "gemini-2.5-flash-lite":
		return Model25FlashLite
	default:
		return ModelUnspecified
	}
}

// DefaultHeaders returns the default headers for Gemini requests.
// The API key header is added per request by the client.
func DefaultHeaders() map[string]string {
	return map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
		"User-Agent":   "promptrelay/0.1.0",
	}
}
