package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go-shortlink/internal/creation/testutil/mocks"
	"go-shortlink/internal/creation/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeFilter_Warm_LoadsStoredCodes(t *testing.T) {
	// Setup
	mockRepo := mocks.NewMockLinkRepository(t)
	codes := make([]string, 500)
	for i := range codes {
		codes[i] = fmt.Sprintf("c%05d", i)
	}
	mockRepo.EXPECT().ListCodes(context.Background()).Return(codes, nil)
	filter := usecase.NewCodeFilter(10_000, 0.001)

	// Act
	n, err := filter.Warm(context.Background(), mockRepo)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 500, n)
	for _, c := range codes {
		assert.True(t, filter.MayContain(c), "no false negatives: %s", c)
	}
}

func TestCodeFilter_Warm_StoreError(t *testing.T) {
	mockRepo := mocks.NewMockLinkRepository(t)
	mockRepo.EXPECT().ListCodes(context.Background()).Return(nil, errors.New("db closed"))

	_, err := usecase.NewCodeFilter(0, 0).Warm(context.Background(), mockRepo)

	assert.ErrorContains(t, err, "list codes")
}

func TestCodeFilter_UnseenCodes_MostlyNegative(t *testing.T) {
	filter := usecase.NewCodeFilter(1000, 0.01)
	for i := 0; i < 1000; i++ {
		filter.Add(fmt.Sprintf("a%05d", i))
	}

	positives := 0
	for i := 0; i < 1000; i++ {
		if filter.MayContain(fmt.Sprintf("b%05d", i)) {
			positives++
		}
	}

	assert.Less(t, positives, 50)
}
