package leaderboard

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	ws "github.com/mindplayhq/mindplay-server/pkg/http/ws"
)

func TestDecodeUpdate(t *testing.T) {
	_, ok := decodeUpdate("not json")
	assert.False(t, ok)

	_, ok = decodeUpdate(`{"board":"","top":[]}`)
	assert.False(t, ok)

	_, ok = decodeUpdate(`{"board":"overall","top":[]}`)
	assert.False(t, ok)

	update, ok := decodeUpdate(`{"board":"math","top":[{"rank":1,"user_id":"u1","display_name":"A","points":40,"games":2}]}`)
	assert.True(t, ok)
	assert.Equal(t, "math", update.Board)
	assert.Len(t, update.Top, 1)
	assert.Equal(t, 40, update.Top[0].Points)
}

func TestFanOutToleratesBadPayloads(t *testing.T) {
	b := NewBroadcaster(nil, ws.NewHub(zerolog.Nop()), "", zerolog.Nop())

	b.fanOut("not json")
	b.fanOut(`{"board":"overall","top":[{"rank":1,"user_id":"u1","display_name":"A","points":10,"games":1}]}`)
}
