package network

import (
	"errors"
	"testing"

	"github.com/automoto/keydoor/shared/messages"
	"github.com/stretchr/testify/assert"
)

func TestDrainPreservesOrder(t *testing.T) {
	c := NewClient(8, 0)
	c.push(messages.KeyCollected{PlayerID: 1})
	c.push(messages.AtDoorUpdate{PlayerIDs: []int{1}})
	c.push(messages.GameWon{})

	got := c.Drain()

	assert.Equal(t, []messages.ServerEvent{
		messages.KeyCollected{PlayerID: 1},
		messages.AtDoorUpdate{PlayerIDs: []int{1}},
		messages.GameWon{},
	}, got)
	assert.Empty(t, c.Drain())
}

func TestFullInboxDrops(t *testing.T) {
	c := NewClient(2, 0)
	for i := 0; i < 5; i++ {
		c.push(messages.PlayerDied{PlayerID: 1})
	}

	assert.Len(t, c.Drain(), 2)
	assert.Equal(t, 3, c.Dropped())
}

func TestSendBeforeConnect(t *testing.T) {
	c := NewClient(1, 0)
	err := c.Send(messages.GameReset{})
	assert.True(t, errors.Is(err, ErrNotConnected))
	assert.Equal(t, StateDisconnected, c.State())
	assert.Zero(t, c.PlayerID())
}
