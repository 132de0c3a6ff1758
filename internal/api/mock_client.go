package api

import "github.com/diogo/promptrelay/internal/models"

// MockClient is a mock implementation of Generator for testing
type MockClient struct {
	// Mock return values
	InitErr            error
	Model              models.Model
	IsClosedVal        bool
	GenerateContentVal *models.ModelOutput
	GenerateContentErr error

	// Call counters/recorders
	InitCalled            bool
	CloseCalled           bool
	GenerateContentCalled int
	LastPrompt            string
	LastOptions           *GenerateOptions
}

// Ensure MockClient implements Generator
var _ Generator = (*MockClient)(nil)

func (m *MockClient) Init() error {
	m.InitCalled = true
	return m.InitErr
}

func (m *MockClient) Close() {
	m.CloseCalled = true
}

func (m *MockClient) GetModel() models.Model {
	return m.Model
}

func (m *MockClient) SetModel(model models.Model) {
	m.Model = model
}

func (m *MockClient) IsClosed() bool {
	return m.IsClosedVal
}

func (m *MockClient) GenerateContent(prompt string, opts *GenerateOptions) (*models.ModelOutput, error) {
	m.GenerateContentCalled++
	m.LastPrompt = prompt
	m.LastOptions = opts
	return m.GenerateContentVal, m.GenerateContentErr
}
