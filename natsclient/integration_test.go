//go:build integration

package natsclient

import (
	"context"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JuntinLin/bom-owl-sub002/errors"
)

func TestIntegration_ConnectAndClose(t *testing.T) {
	testClient := NewTestClient(t)
	defer testClient.Close()

	client := testClient.Client
	assert.Equal(t, StatusConnected, client.Status())
	assert.True(t, client.IsHealthy())

	rtt, err := client.RTT()
	require.NoError(t, err)
	assert.Greater(t, rtt, time.Duration(0))

	require.NoError(t, client.Close(context.Background()))
	assert.Equal(t, StatusDisconnected, client.Status())
}

func TestIntegration_PublishSubscribe(t *testing.T) {
	testClient := NewTestClient(t)
	defer testClient.Close()

	client := testClient.Client
	ctx := context.Background()

	received := make(chan []byte, 1)
	require.NoError(t, client.Subscribe(ctx, "bom.test", func(_ context.Context, data []byte) {
		received <- data
	}))

	require.NoError(t, client.Publish(ctx, "bom.test", []byte("hello")))

	select {
	case data := <-received:
		assert.Equal(t, []byte("hello"), data)
	case <-time.After(5 * time.Second):
		t.Fatal("message not received")
	}
}

func TestIntegration_RequestReply(t *testing.T) {
	testClient := NewTestClient(t)
	defer testClient.Close()

	client := testClient.Client
	ctx := context.Background()

	// Responder rides the raw connection so it can address the reply subject
	conn := client.GetConnection()
	require.NotNil(t, conn)

	sub, err := conn.Subscribe("reasoner.echo", func(msg *nats.Msg) {
		_ = msg.Respond(append([]byte("re: "), msg.Data...))
	})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	reqCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	reply, err := client.Request(reqCtx, "reasoner.echo", []byte("ping"))
	require.NoError(t, err)
	assert.Equal(t, []byte("re: ping"), reply)
}

func TestIntegration_RequestNoResponders(t *testing.T) {
	testClient := NewTestClient(t)
	defer testClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := testClient.Client.Request(ctx, "reasoner.absent", []byte("ping"))
	require.Error(t, err)
	assert.True(t, errors.IsTransient(err), "missing responder should be retryable")
}
