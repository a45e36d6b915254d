package fetch

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockFetcher is a mock implementation of Fetcher using testify/mock.
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Fetch(ctx context.Context, url string) (Page, error) {
	args := m.Called(ctx, url)
	return args.Get(0).(Page), args.Error(1)
}
