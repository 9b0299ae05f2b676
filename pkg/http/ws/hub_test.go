package ws

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newQueueOnlyConnection() *Connection {
	return &Connection{
		sendCh: make(chan Message, 256),
		logger: zerolog.Nop(),
	}
}

func TestSendToUnknownClient(t *testing.T) {
	hub := NewHub(zerolog.Nop())

	err := hub.SendToClient(uuid.New(), Message{Type: TypePing})
	assert.ErrorIs(t, err, ErrConnectionNotFound)
}

func TestBroadcastToTopicReachesSubscribers(t *testing.T) {
	hub := NewHub(zerolog.Nop())

	subscriber := uuid.New()
	bystander := uuid.New()
	subConn := newQueueOnlyConnection()
	byConn := newQueueOnlyConnection()
	hub.RegisterConnection(subscriber, subConn)
	hub.RegisterConnection(bystander, byConn)

	topic := uuid.New().String()
	hub.Subscribe(topic, subscriber)
	hub.Subscribe(topic, subscriber) // idempotent

	err := hub.BroadcastToTopic(topic, Message{Type: TypeShooterFrame})
	assert.NoError(t, err)

	assert.Len(t, subConn.sendCh, 1)
	assert.Empty(t, byConn.sendCh)

	msg := <-subConn.sendCh
	assert.Equal(t, TypeShooterFrame, msg.Type)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	hub := NewHub(zerolog.Nop())

	clientID := uuid.New()
	conn := newQueueOnlyConnection()
	hub.RegisterConnection(clientID, conn)

	hub.Subscribe("session-1", clientID)
	hub.Unsubscribe("session-1", clientID)

	assert.NoError(t, hub.BroadcastToTopic("session-1", Message{Type: TypeShooterFrame}))
	assert.Empty(t, conn.sendCh)
}

func TestBroadcastAll(t *testing.T) {
	hub := NewHub(zerolog.Nop())

	a := newQueueOnlyConnection()
	b := newQueueOnlyConnection()
	hub.RegisterConnection(uuid.New(), a)
	hub.RegisterConnection(uuid.New(), b)

	assert.NoError(t, hub.BroadcastAll(Message{Type: TypeLeaderboardUpdate}))
	assert.Len(t, a.sendCh, 1)
	assert.Len(t, b.sendCh, 1)
}

func TestSendAfterClose(t *testing.T) {
	conn := newQueueOnlyConnection()
	conn.closed = true

	err := conn.Send(Message{Type: TypePing})
	assert.ErrorIs(t, err, ErrConnectionClosed)
}
