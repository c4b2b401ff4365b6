package llm

import "context"

// MockProvider returns canned responses for testing.
type MockProvider struct {
	Response string
	Err      error
	Calls    int
}

// Query returns the configured response or error.
func (m *MockProvider) Query(ctx context.Context, prompt string) (string, error) {
	m.Calls++
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// Name identifies the mock in logs.
func (m *MockProvider) Name() string {
	return "mock"
}

var _ Provider = (*MockProvider)(nil)
