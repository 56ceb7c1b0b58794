package llm

import "context"

// MockClient is a configurable generative client for testing.
// Set Response/Err to control what Generate returns, or ResponseFn for
// per-prompt behavior.
type MockClient struct {
	Response   string
	Err        error
	ResponseFn func(prompt string) (string, error)

	// Call tracking for assertions
	GenerateCalls []string
}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) Generate(_ context.Context, prompt string) (string, error) {
	m.GenerateCalls = append(m.GenerateCalls, prompt)
	if m.ResponseFn != nil {
		return m.ResponseFn(prompt)
	}
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
