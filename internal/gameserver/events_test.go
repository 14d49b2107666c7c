package gameserver_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/idlerealm/worldboss/internal/game/boss"
	"github.com/idlerealm/worldboss/internal/gameserver"
)

func dialHub(t *testing.T, hub *gameserver.EventHub) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(hub)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestEventHub_DeliversEvents(t *testing.T) {
	hub := gameserver.NewEventHub(zaptest.NewLogger(t), 8, time.Second)
	t.Cleanup(hub.Close)
	a := dialHub(t, hub)
	b := dialHub(t, hub)
	require.Eventually(t, func() bool { return hub.Subscribers() == 2 }, 2*time.Second, 10*time.Millisecond)

	at := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	hub.Publish(boss.Event{Kind: boss.EventAttacked, InstanceID: 7, PlayerID: 3, Damage: 42, CurrentHealth: 958, At: at})

	for _, conn := range []*websocket.Conn{a, b} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)
		var got boss.Event
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, boss.EventAttacked, got.Kind)
		assert.Equal(t, int64(7), got.InstanceID)
		assert.Equal(t, int64(42), got.Damage)
		assert.Equal(t, int64(958), got.CurrentHealth)
		assert.True(t, at.Equal(got.At))
	}
}

func TestEventHub_ClientDisconnectUnsubscribes(t *testing.T) {
	hub := gameserver.NewEventHub(zaptest.NewLogger(t), 0, 0)
	t.Cleanup(hub.Close)
	conn := dialHub(t, hub)
	require.Eventually(t, func() bool { return hub.Subscribers() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return hub.Subscribers() == 0 }, 2*time.Second, 10*time.Millisecond)

	// publishing with no subscribers is a no-op
	hub.Publish(boss.Event{Kind: boss.EventSpawned, InstanceID: 1})
}

func TestEventHub_CloseDisconnectsSubscribers(t *testing.T) {
	hub := gameserver.NewEventHub(zaptest.NewLogger(t), 4, time.Second)
	conn := dialHub(t, hub)
	require.Eventually(t, func() bool { return hub.Subscribers() == 1 }, 2*time.Second, 10*time.Millisecond)

	hub.Close()
	assert.Zero(t, hub.Subscribers())

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	require.Error(t, err)
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)
}

func TestEventHub_ReceivesServiceEvents(t *testing.T) {
	hub := gameserver.NewEventHub(zaptest.NewLogger(t), 8, time.Second)
	t.Cleanup(hub.Close)
	conn := dialHub(t, hub)
	require.Eventually(t, func() bool { return hub.Subscribers() == 1 }, 2*time.Second, 10*time.Millisecond)

	f := newTickFixture(t, boss.WithPublisher(hub))
	_, err := f.svc.CurrentInstance(t.Context())
	require.NoError(t, err)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var got boss.Event
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, boss.EventSpawned, got.Kind)
	assert.Equal(t, "Stone Golem", got.TemplateName)
}
