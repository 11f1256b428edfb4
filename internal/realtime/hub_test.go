package realtime

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/logger"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func recvMessage(t *testing.T, ch <-chan Message, timeout time.Duration) Message {
	t.Helper()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for SSE message")
	}
	return Message{}
}

func TestHubOrderingAndReconnect(t *testing.T) {
	hub := NewHub(logger.Nop())

	clientA := hub.NewClient("a")
	hub.AddChannel(clientA, ActivityChannel)

	hub.Broadcast(Message{Channel: ActivityChannel, Event: EventSymptomCreated, Data: map[string]any{"seq": 1}})
	hub.Broadcast(Message{Channel: ActivityChannel, Event: EventRiskCreated, Data: map[string]any{"seq": 2}})

	assert.Equal(t, EventSymptomCreated, recvMessage(t, clientA.Outbound, time.Second).Event)
	assert.Equal(t, EventRiskCreated, recvMessage(t, clientA.Outbound, time.Second).Event)

	hub.CloseClient(clientA)
	_, ok := <-clientA.Outbound
	assert.False(t, ok, "outbound should be closed after disconnect")
	assert.Zero(t, hub.Subscribers(ActivityChannel))

	hub.Broadcast(Message{Channel: ActivityChannel, Event: EventInhalerCreated})

	clientB := hub.NewClient("b")
	hub.AddChannel(clientB, ActivityChannel)
	hub.Broadcast(Message{Channel: ActivityChannel, Event: EventInhalerCreated})
	assert.Equal(t, EventInhalerCreated, recvMessage(t, clientB.Outbound, time.Second).Event)
	hub.CloseClient(clientB)
}

func TestHubDropsWhenBufferFull(t *testing.T) {
	hub := NewHub(logger.Nop())
	client := hub.NewClient("a")
	hub.AddChannel(client, ActivityChannel)

	for i := 0; i < outboundBuffer+5; i++ {
		hub.Broadcast(Message{Channel: ActivityChannel, Event: EventRiskCreated})
	}
	assert.Len(t, client.Outbound, outboundBuffer)
	hub.CloseClient(client)
}

func TestHubIgnoresEmptyChannel(t *testing.T) {
	hub := NewHub(logger.Nop())
	client := hub.NewClient("a")
	hub.AddChannel(client, "  ")
	assert.Empty(t, client.Channels)
	hub.Broadcast(Message{Event: EventRiskCreated})
	assert.Len(t, client.Outbound, 0)
	hub.CloseClient(client)
}

func TestServeHTTPStreamsEvents(t *testing.T) {
	hub := NewHub(logger.Nop())
	client := hub.NewClient("a")
	hub.AddChannel(client, ActivityChannel)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.ServeHTTP(w, r, client)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
	require.NoError(t, err)
	tr := &http.Transport{}
	defer tr.CloseIdleConnections()
	resp, err := (&http.Client{Transport: tr}).Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	hub.Broadcast(Message{Channel: ActivityChannel, Event: EventSymptomCreated, Data: map[string]any{"id": "x"}})

	reader := bufio.NewReader(resp.Body)
	line, err := reader.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "event: symptom.created\n", line)
	line, err = reader.ReadString('\n')
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(line, "data: {"), line)
	assert.Contains(t, line, `"event":"symptom.created"`)

	hub.CloseClient(client)
}
