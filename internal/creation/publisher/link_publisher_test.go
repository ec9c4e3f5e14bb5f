package publisher_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-shortlink/internal/creation/domain"
	"go-shortlink/internal/creation/publisher"
	"go-shortlink/internal/shared/events"
	"go-shortlink/internal/testutil/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPublishLinkCreated_SendsEventOnLinksTopic(t *testing.T) {
	// Setup
	mockPub := mocks.NewMockPublisher(t)
	created := time.Date(2024, 6, 1, 10, 0, 0, 0, time.FixedZone("CEST", 2*3600))
	link := domain.Link{ID: 7, ShortCode: "abc123", OriginalURL: "https://example.com", CreatedAt: created}

	mockPub.EXPECT().Publish(mock.Anything, events.LinkCreatedTopic, events.LinkCreatedEvent{
		ShortCode:   "abc123",
		OriginalURL: "https://example.com",
		CreatedAt:   created.UTC(),
	}).Return(nil)

	// Act
	err := publisher.NewLinkPublisher(mockPub).PublishLinkCreated(context.Background(), link)

	// Assert
	assert.NoError(t, err)
}

func TestPublishLinkCreated_PropagatesError(t *testing.T) {
	mockPub := mocks.NewMockPublisher(t)
	mockPub.EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("broker down"))

	err := publisher.NewLinkPublisher(mockPub).PublishLinkCreated(context.Background(), domain.Link{ShortCode: "abc123"})

	assert.EqualError(t, err, "broker down")
}
