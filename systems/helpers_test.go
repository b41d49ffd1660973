package systems

import (
	"testing"

	"github.com/automoto/keydoor/components"
	"github.com/automoto/keydoor/config"
	"github.com/automoto/keydoor/shared/gamemath"
	"github.com/automoto/keydoor/shared/leveldata"
	"github.com/automoto/keydoor/shared/messages"
	"github.com/automoto/keydoor/systems/factory"
	"github.com/automoto/keydoor/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

const (
	testGround    = 600.0
	testViewportW = 1200.0
	testViewportH = 700.0
)

// createTestDefinition is a flat level: one long ground slab, the key and door
// far to the right, a single player standing at x=100.
func createTestDefinition() *leveldata.Definition {
	d := &leveldata.Definition{
		Name:    "test",
		Profile: config.ProfileClassic,
		GroundY: testGround,
		Players: 1,
		Platforms: []gamemath.Rect{
			{X: 0, Y: testGround, W: 3000, H: 100},
		},
		Key:  gamemath.Rect{X: 2000, Y: testGround - 40, W: 40, H: 40},
		Door: gamemath.Rect{X: 2500, Y: testGround - 75, W: 55, H: 75},
		SpawnPoints: []leveldata.SpawnPoint{
			{X: 100, Y: testGround - 55, Index: 1},
		},
	}
	return finishTestDefinition(d)
}

func finishTestDefinition(d *leveldata.Definition) *leveldata.Definition {
	d.DeriveCapabilities()
	d.DeriveWidth()
	return d
}

func createTestWorld(t *testing.T, def *leveldata.Definition) donburi.World {
	t.Helper()
	w := donburi.NewWorld()
	_, err := factory.CreateLevel(w, def, factory.LevelOptions{
		ViewportW: testViewportW,
		ViewportH: testViewportH,
	})
	require.NoError(t, err)
	return w
}

func createTestNetWorld(t *testing.T, def *leveldata.Definition, link components.NetLink) donburi.World {
	t.Helper()
	w := donburi.NewWorld()
	_, err := factory.CreateLevel(w, def, factory.LevelOptions{
		ViewportW: testViewportW,
		ViewportH: testViewportH,
		Networked: true,
		Link:      link,
	})
	require.NoError(t, err)
	return w
}

// runTicks runs the full pipeline n times with keys held.
func runTicks(w donburi.World, n int, keys ...string) {
	pressed := config.NewKeySet(keys...)
	for i := 0; i < n; i++ {
		e, _ := levelEntry(w)
		components.Input.Get(e).Pressed = pressed
		for _, s := range Pipeline() {
			s(w)
		}
	}
}

func player(t *testing.T, w donburi.World, id int) (*components.PlayerData, *components.BodyData) {
	t.Helper()
	e := findPlayer(w, id)
	require.NotNil(t, e, "player %d", id)
	return components.Player.Get(e), components.Body.Get(e)
}

// placeBody moves an entity and its broadphase proxy.
func placeBody(w donburi.World, e *donburi.Entry, x, y float64) {
	b := components.Body.Get(e)
	b.X, b.Y = x, y
	SyncObject(e, spaceOf(w).Pad)
}

func keyData(t *testing.T, w donburi.World) *components.KeyData {
	t.Helper()
	e, ok := tags.Key.First(w)
	require.True(t, ok)
	return components.Key.Get(e)
}

type fakeLink struct {
	inbox   []messages.ServerEvent
	sent    []any
	sendErr error
	closed  bool
}

func (f *fakeLink) Drain() []messages.ServerEvent {
	out := f.inbox
	f.inbox = nil
	return out
}

func (f *fakeLink) Send(msg any) error {
	f.sent = append(f.sent, msg)
	return f.sendErr
}

func (f *fakeLink) Close() error {
	f.closed = true
	return nil
}

func (f *fakeLink) push(evs ...messages.ServerEvent) {
	f.inbox = append(f.inbox, evs...)
}

func sentOfType[T any](f *fakeLink) []T {
	var out []T
	for _, m := range f.sent {
		if v, ok := m.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

func ptr[T any](v T) *T { return &v }
