package models

// Candidate represents a single response candidate from Gemini
type Candidate struct {
	Index        int
	Text         string
	FinishReason string // "STOP", "MAX_TOKENS", "SAFETY", ...
}

// UsageMetadata carries the token accounting returned with a response
type UsageMetadata struct {
	PromptTokens    int
	CandidateTokens int
	TotalTokens     int
}

// ModelOutput represents the complete API response from Gemini
type ModelOutput struct {
	Candidates []Candidate
	Chosen     int // Index of selected candidate
	Usage      UsageMetadata
}

// Text returns the chosen candidate's text
func (m *ModelOutput) Text() string {
	if len(m.Candidates) == 0 {
		return ""
	}
	if m.Chosen >= len(m.Candidates) {
		return m.Candidates[0].Text
	}
	return m.Candidates[m.Chosen].Text
}

// FinishReason returns the chosen candidate's finish reason
func (m *ModelOutput) FinishReason() string {
	if len(m.Candidates) == 0 {
		return ""
	}
	if m.Chosen >= len(m.Candidates) {
		return m.Candidates[0].FinishReason
	}
	return m.Candidates[m.Chosen].FinishReason
}

// ChosenCandidate returns a pointer to the chosen candidate
func (m *ModelOutput) ChosenCandidate() *Candidate {
	if len(m.Candidates) == 0 {
		return nil
	}
	if m.Chosen >= len(m.Candidates) {
		return &m.Candidates[0]
	}
	return &m.Candidates[m.Chosen]
}
