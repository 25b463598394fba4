package websockets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/chris/travel-payments/pkg/models"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubPublish(t *testing.T) {
	hub := NewHub()
	attached := make(chan struct{})

	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Attach("local-1", conn)
		close(attached)
	}))
	defer server.Close()

	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), nil)
	require.NoError(t, err)
	defer client.Close()

	select {
	case <-attached:
	case <-time.After(2 * time.Second):
		t.Fatal("connection was not attached")
	}
	assert.Equal(t, 1, hub.Len())

	err = hub.Publish(context.Background(), NewBudgetAlert(models.ThresholdCrossing{BudgetID: "bud-1", Kind: models.ThresholdFifty}))
	require.NoError(t, err)

	require.NoError(t, client.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := client.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"budgetAlert"`)
	assert.Contains(t, string(data), `"budget_id":"bud-1"`)

	hub.Detach("local-1")
	assert.Equal(t, 0, hub.Len())
}

func TestHubDetachesStalledConnection(t *testing.T) {
	hub := NewHub()
	hub.writeTimeout = 20 * time.Millisecond
	attached := make(chan struct{})

	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Attach("stalled", conn)
		close(attached)
	}))
	defer server.Close()

	// The client never reads, so the socket buffers eventually fill up.
	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), nil)
	require.NoError(t, err)
	defer client.Close()
	<-attached

	alert := NewBudgetAlert(models.ThresholdCrossing{BudgetID: "bud-1", Kind: models.ThresholdEighty})
	deadline := time.Now().Add(10 * time.Second)
	for hub.Len() > 0 && time.Now().Before(deadline) {
		require.NoError(t, hub.Publish(context.Background(), alert))
	}

	assert.Equal(t, 0, hub.Len())
}
