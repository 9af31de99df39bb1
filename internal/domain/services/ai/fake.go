package ai

import "context"

// FakeProvider is a canned Provider for tests
type FakeProvider struct {
	ResponseText string
	Err          error

	// Last call arguments, for assertions
	LastPrompt string
	LastInline *InlineData
	Calls      int
}

func (f *FakeProvider) Generate(_ context.Context, prompt string, inline *InlineData) (string, error) {
	f.Calls++
	f.LastPrompt = prompt
	f.LastInline = inline
	if f.Err != nil {
		return "", f.Err
	}
	return f.ResponseText, nil
}
