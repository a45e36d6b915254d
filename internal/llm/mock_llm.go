package llm

import (
	"context"

	"github.com/stretchr/testify/mock"

	"web-summarizer/internal/session"
)

// MockClient is a mock implementation of Client using testify/mock.
type MockClient struct {
	mock.Mock
}

func (m *MockClient) Summarize(ctx context.Context, content string) (string, error) {
	args := m.Called(ctx, content)
	return args.String(0), args.Error(1)
}

func (m *MockClient) Topic(ctx context.Context, summary string) (string, error) {
	args := m.Called(ctx, summary)
	return args.String(0), args.Error(1)
}

func (m *MockClient) Answer(ctx context.Context, question, summary string, history []session.Turn) (string, error) {
	args := m.Called(ctx, question, summary, history)
	return args.String(0), args.Error(1)
}
