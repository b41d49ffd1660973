package game

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/automoto/keydoor/config"
	"github.com/automoto/keydoor/shared/leveldata"
	"github.com/automoto/keydoor/shared/messages"
	"github.com/automoto/keydoor/shared/netconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLink struct {
	inbox  []messages.ServerEvent
	sent   []any
	closed bool
}

func (f *fakeLink) Drain() []messages.ServerEvent {
	out := f.inbox
	f.inbox = nil
	return out
}

func (f *fakeLink) Send(msg any) error {
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeLink) Close() error {
	f.closed = true
	return nil
}

func createTestLevel(t *testing.T, world int) *Level {
	t.Helper()
	opts := DefaultOptions()
	def, err := leveldata.ByNumber(world, opts.ViewportH-float64(config.C.GroundOffset))
	require.NoError(t, err)
	l, err := NewLevel(def, opts)
	require.NoError(t, err)
	return l
}

func TestBuiltinWorldsSettle(t *testing.T) {
	for world := 1; world <= leveldata.WorldCount; world++ {
		l := createTestLevel(t, world)
		for i := 0; i < 120; i++ {
			l.Tick(nil)
		}
		s := l.Snapshot()
		assert.Equal(t, netconfig.StatePlaying, s.State, "world %d", world)
		assert.Equal(t, s.Living, len(s.Players))
		for _, p := range s.Players {
			assert.True(t, p.OnGround, "world %d player %d at rest", world, p.ID)
		}
	}
}

func TestSnapshotContents(t *testing.T) {
	l := createTestLevel(t, 3)
	s := l.Snapshot()

	assert.Equal(t, 3, s.World)
	assert.Len(t, s.Players, 4)
	assert.Len(t, s.Boxes, 11)
	assert.NotEmpty(t, s.Hazards)
	assert.NotEmpty(t, s.Platforms)
	assert.False(t, s.DoorOpen())
	for i, p := range s.Players {
		assert.Equal(t, i+1, p.ID)
		assert.True(t, p.Local)
	}
}

func TestRestartLocal(t *testing.T) {
	l := createTestLevel(t, 1)
	start := l.Snapshot().Players[0].Rect
	for i := 0; i < 30; i++ {
		l.Tick(config.NewKeySet("d"))
	}
	require.NotEqual(t, start.X, l.Snapshot().Players[0].Rect.X)

	require.NoError(t, l.Restart())
	s := l.Snapshot()
	assert.Equal(t, start, s.Players[0].Rect)
	assert.Equal(t, netconfig.StatePlaying, s.State)
}

func TestNetworkedLevel(t *testing.T) {
	link := &fakeLink{}
	opts := DefaultOptions()
	opts.Networked = true
	opts.Link = link
	def, err := leveldata.ByNumber(1, opts.ViewportH-float64(config.C.GroundOffset))
	require.NoError(t, err)
	l, err := NewLevel(def, opts)
	require.NoError(t, err)

	assert.Empty(t, l.Snapshot().Players, "networked levels wait for the room")

	link.inbox = append(link.inbox, messages.RoomState{YourID: 2, AtDoor: []int{1}})
	l.Tick(nil)
	s := l.Snapshot()
	assert.Equal(t, 2, s.LocalID)
	assert.Len(t, s.Players, 1)
	assert.Equal(t, 1, s.AtDoor)

	require.NoError(t, l.Restart())
	assert.Contains(t, link.sent, messages.RestartRequest{})

	link.inbox = append(link.inbox, messages.GameReset{})
	require.NoError(t, l.Close())
	assert.True(t, link.closed)
	assert.Empty(t, link.inbox, "close discards queued events")

	l.Tick(nil)
	assert.Equal(t, 1, l.Snapshot().Tick, "closed levels do not tick")
}

func TestNetworkedNeedsLink(t *testing.T) {
	opts := DefaultOptions()
	opts.Networked = true
	def, err := leveldata.ByNumber(1, 620)
	require.NoError(t, err)
	_, err = NewLevel(def, opts)
	assert.Error(t, err)

	_, err = NewLevel(nil, DefaultOptions())
	assert.Error(t, err)
}

func TestLoopStopsOnCancel(t *testing.T) {
	l := createTestLevel(t, 1)
	var ticks atomic.Int32
	loop := NewLoop(l, nil, 240)
	loop.OnTick = func(Snapshot) { ticks.Add(1) }

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	require.Eventually(t, func() bool { return ticks.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(time.Second):
		t.Fatal("loop did not stop")
	}
	stopped := ticks.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, ticks.Load())
}

func TestLoopRejectsBadRate(t *testing.T) {
	l := createTestLevel(t, 1)
	err := NewLoop(l, nil, 0).Run(context.Background())
	assert.Error(t, err)
}
