package testutil

import (
	"context"

	dapr "github.com/dapr/go-sdk/client"
	"github.com/stretchr/testify/mock"
)

// MockDaprClient covers the slice of dapr.Client the services touch:
// service invocation for peer lookups, pub/sub for click events, and Close.
// Publish options are accepted but not matched.
type MockDaprClient struct {
	mock.Mock
}

func (m *MockDaprClient) InvokeMethod(ctx context.Context, appID, methodName, verb string) ([]byte, error) {
	args := m.Called(ctx, appID, methodName, verb)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockDaprClient) PublishEvent(ctx context.Context, pubsubName, topicName string, data interface{}, _ ...dapr.PublishEventOption) error {
	return m.Called(ctx, pubsubName, topicName, data).Error(0)
}

func (m *MockDaprClient) Close() {
	m.Called()
}
