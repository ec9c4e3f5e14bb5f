package pubsub_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"go-shortlink/internal/shared/events"
	"go-shortlink/internal/shared/pubsub"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

func startNATS(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "nats:2.10-alpine",
			ExposedPorts: []string{"4222/tcp"},
			WaitingFor:   wait.ForLog("Server is ready").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "4222")
	require.NoError(t, err)
	return fmt.Sprintf("nats://%s:%s", host, port.Port())
}

func TestNATS_QueueGroup_DeliversOncePerGroup(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping nats container test in short mode")
	}

	url := startNATS(t)

	pubConn, err := pubsub.Connect(url, "test-publisher")
	require.NoError(t, err)
	t.Cleanup(pubConn.Close)

	var handled atomic.Int32
	handle := func(context.Context, []byte) error {
		handled.Add(1)
		return nil
	}

	// two replicas in the same queue group
	for i := 0; i < 2; i++ {
		conn, err := pubsub.Connect(url, fmt.Sprintf("test-subscriber-%d", i))
		require.NoError(t, err)
		t.Cleanup(conn.Close)

		_, err = pubsub.Subscribe(conn, events.ClickTopic, "analytics", time.Second, zap.NewNop(), handle)
		require.NoError(t, err)
		require.NoError(t, conn.Flush())
	}

	publisher := pubsub.NewNATSPublisher(pubConn)
	for i := 0; i < 5; i++ {
		require.NoError(t, publisher.Publish(context.Background(), events.ClickTopic, events.NewClickEvent("abc123", "", "", "")))
	}
	require.NoError(t, pubConn.Flush())

	assert.Eventually(t, func() bool { return handled.Load() == 5 }, 5*time.Second, 50*time.Millisecond)
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(5), handled.Load())
}
