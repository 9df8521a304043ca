package websocket

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub() *Hub {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewHub(log)
}

func registerClient(h *Hub, userID string, buffer int) *Client {
	c := &Client{send: make(chan *Message, buffer), UserID: userID}
	h.register <- c
	return c
}

func TestHubDropsClientWithFullBuffer(t *testing.T) {
	h := newTestHub()
	go h.Run()

	healthy := registerClient(h, "user-1", 8)
	stalled := registerClient(h, "user-1", 0)

	require.Eventually(t, func() bool {
		return h.ClientCount("user-1") == 2
	}, time.Second, time.Millisecond)

	h.SendToUser("user-1", "notification", map[string]interface{}{"n": 1})

	require.Eventually(t, func() bool {
		return h.ClientCount("user-1") == 1
	}, time.Second, time.Millisecond)

	msg := <-healthy.send
	assert.Equal(t, "notification", msg.Type)

	_, open := <-stalled.send
	assert.False(t, open)

	h.SendToUser("user-1", "notification", map[string]interface{}{"n": 2})
	msg = <-healthy.send
	assert.Equal(t, 2, msg.Payload["n"])
}

func TestHubRemovesUserEntryWhenLastClientDies(t *testing.T) {
	h := newTestHub()
	go h.Run()

	registerClient(h, "user-1", 0)
	require.Eventually(t, func() bool {
		return h.ClientCount("user-1") == 1
	}, time.Second, time.Millisecond)

	h.SendToUser("user-1", "notification", nil)

	require.Eventually(t, func() bool {
		h.mu.RLock()
		defer h.mu.RUnlock()
		_, ok := h.clients["user-1"]
		return !ok
	}, time.Second, time.Millisecond)
}

func TestHubBroadcastDuringConcurrentReads(t *testing.T) {
	h := newTestHub()
	go h.Run()

	for i := 0; i < 4; i++ {
		user := fmt.Sprintf("user-%d", i)
		registerClient(h, user, 64)
		registerClient(h, user, 0)
	}
	require.Eventually(t, func() bool {
		return h.ClientCount("user-3") == 2
	}, time.Second, time.Millisecond)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			h.ClientCount("user-2")
		}
	}()
	for i := 0; i < 20; i++ {
		h.broadcast <- &Message{Type: "notification"}
	}
	wg.Wait()

	// Every unbuffered connection is dropped once, the buffered ones stay.
	require.Eventually(t, func() bool {
		for i := 0; i < 4; i++ {
			if h.ClientCount(fmt.Sprintf("user-%d", i)) != 1 {
				return false
			}
		}
		return true
	}, time.Second, time.Millisecond)
}
