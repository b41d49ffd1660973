package systems

import (
	"errors"
	"math"
	"testing"

	"github.com/automoto/keydoor/shared/messages"
	"github.com/automoto/keydoor/shared/netconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func joinedNetWorld(t *testing.T) (donburi.World, *fakeLink) {
	t.Helper()
	link := &fakeLink{}
	w := createTestNetWorld(t, createTestDefinition(), link)
	link.push(messages.RoomState{
		RoomID: "lobby",
		YourID: 1,
		Players: []messages.PlayerState{
			{PlayerID: 2, X: 400, Y: testGround - 55, FacingRight: true},
		},
		Names: map[int]string{1: "alice", 2: "bob"},
	})
	runTicks(w, 1)
	return w, link
}

func TestRoomStateSpawnsPlayers(t *testing.T) {
	link := &fakeLink{}
	w := createTestNetWorld(t, createTestDefinition(), link)
	link.push(messages.RoomState{
		RoomID:  "lobby",
		YourID:  2,
		Players: []messages.PlayerState{{PlayerID: 1, X: 400, Y: 300}},
		Names:   map[int]string{1: "alice", 2: "bob"},
		HasKey:  true,
		AtDoor:  []int{1},
	})
	runTicks(w, 1)

	local, lb := player(t, w, 2)
	assert.True(t, local.Local)
	assert.Equal(t, "bob", local.Name)
	assert.Equal(t, 50+2*80.0, lb.X)

	puppet, pb := player(t, w, 1)
	assert.False(t, puppet.Local)
	assert.Equal(t, 400.0, pb.X)
	assert.Equal(t, 300.0, pb.Y, "puppets do not fall on their own")

	assert.True(t, keyData(t, w).Collected)
	assert.Equal(t, []int{1}, netOf(w).RemoteAtDoor)
}

func TestInboundPatchValidation(t *testing.T) {
	link := &fakeLink{}
	w := createTestNetWorld(t, createTestDefinition(), link)
	link.push(messages.RoomState{YourID: 1, Players: []messages.PlayerState{{PlayerID: 2, X: 400, Y: 300}}})
	runTicks(w, 1)

	link.push(
		messages.PlayerPatch{PlayerID: 3, X: ptr(1.0)},
		messages.PlayerPatch{PlayerID: 1, X: ptr(1.0)},
		messages.PlayerPatch{PlayerID: 2, X: ptr(math.NaN())},
		messages.PlayerPatch{PlayerID: 9},
		messages.PlayerPatch{PlayerID: 2, X: ptr(420.0), Dead: ptr(true)},
	)
	runTicks(w, 1)

	nd := netOf(w)
	assert.Equal(t, 4, nd.Dropped)
	_, local := player(t, w, 1)
	assert.NotEqual(t, 1.0, local.X, "local state is never overwritten")
	p2, b2 := player(t, w, 2)
	assert.Equal(t, 420.0, b2.X)
	assert.Equal(t, 300.0, b2.Y, "nil fields are left alone")
	assert.True(t, p2.Dead)
}

func TestOutboundStateEveryThirdTick(t *testing.T) {
	w, link := joinedNetWorld(t)
	runTicks(w, 8)

	states := sentOfType[messages.PlayerState](link)
	require.Len(t, states, 3)
	for _, s := range states {
		assert.Equal(t, 1, s.PlayerID)
	}
}

func TestAtDoorChangesAreReported(t *testing.T) {
	link := &fakeLink{}
	d := createTestDefinition()
	d.Door.X = 100
	w := createTestNetWorld(t, d, link)
	link.push(messages.RoomState{YourID: 1, HasKey: true})

	runTicks(w, 3)
	changes := sentOfType[messages.AtDoorChanged](link)
	require.Len(t, changes, 1)
	assert.True(t, changes[0].AtDoor)

	runTicks(w, 20, "d")
	changes = sentOfType[messages.AtDoorChanged](link)
	require.Len(t, changes, 2)
	assert.False(t, changes[1].AtDoor)
	assert.Equal(t, netconfig.StatePlaying, levelState(w).State, "the relay decides the win")
}

func TestNetworkedDeathRespawnsOnlyLocal(t *testing.T) {
	link := &fakeLink{}
	d := createTestDefinition()
	d.Key.X = 500
	w := createTestNetWorld(t, d, link)
	link.push(messages.RoomState{YourID: 1, Players: []messages.PlayerState{{PlayerID: 2, X: 400, Y: 300}}})
	runTicks(w, 1)
	collectKey(w, 2)

	KillPlayer(w, findPlayer(w, 1))
	require.Len(t, sentOfType[messages.PlayerDied](link), 1)

	runTicks(w, levelState(w).Physics.DeathFreezeTicks)

	p1, b1 := player(t, w, 1)
	assert.False(t, p1.Dead)
	assert.Equal(t, 130.0, b1.X)
	assert.Equal(t, netconfig.StatePlaying, levelState(w).State)
	assert.True(t, keyData(t, w).Collected, "local respawn keeps the room's key")
	_, b2 := player(t, w, 2)
	assert.Equal(t, 400.0, b2.X)
}

func TestWinDuringFreezeAppliesAfterRespawn(t *testing.T) {
	w, link := joinedNetWorld(t)
	ls := levelState(w)
	nd := netOf(w)

	KillPlayer(w, findPlayer(w, 1))
	link.push(messages.GameWon{})
	runTicks(w, 1)
	assert.Equal(t, netconfig.StateDead, ls.State)
	assert.True(t, nd.PendingWin)

	runTicks(w, ls.Physics.DeathFreezeTicks)
	assert.Equal(t, netconfig.StateWon, ls.State)
	assert.False(t, nd.PendingWin)
	p1, _ := player(t, w, 1)
	assert.False(t, p1.Dead)
}

func TestResetClearsPendingWin(t *testing.T) {
	w, link := joinedNetWorld(t)
	ls := levelState(w)

	KillPlayer(w, findPlayer(w, 1))
	link.push(messages.GameWon{}, messages.GameReset{})
	runTicks(w, 1)
	assert.Equal(t, netconfig.StatePlaying, ls.State)
	assert.False(t, netOf(w).PendingWin)
}

func TestServerEvents(t *testing.T) {
	w, link := joinedNetWorld(t)
	nd := netOf(w)
	ls := levelState(w)

	link.push(
		messages.KeyCollected{PlayerID: 2},
		messages.AtDoorUpdate{PlayerIDs: []int{2}},
		messages.PlayerJoined{PlayerID: 3, Name: "carol", Total: 3},
	)
	runTicks(w, 1)
	key := keyData(t, w)
	assert.True(t, key.Collected)
	assert.Equal(t, 2, key.CollectedBy)
	assert.Equal(t, []int{2}, nd.RemoteAtDoor)
	carol, _ := player(t, w, 3)
	assert.False(t, carol.Local)

	link.push(messages.PlayerDied{PlayerID: 2}, messages.PlayerLeft{PlayerID: 3, Total: 2})
	runTicks(w, 1)
	bob, _ := player(t, w, 2)
	assert.True(t, bob.Dead)
	assert.Nil(t, findPlayer(w, 3))
	assert.Equal(t, netconfig.StatePlaying, ls.State, "remote deaths do not freeze this client")

	link.push(messages.GameWon{})
	runTicks(w, 1)
	assert.Equal(t, netconfig.StateWon, ls.State)

	link.push(messages.GameReset{})
	runTicks(w, 1)
	assert.Equal(t, netconfig.StatePlaying, ls.State)
	assert.False(t, keyData(t, w).Collected)
	assert.Empty(t, nd.RemoteAtDoor)
}

func TestSendErrorsAreCounted(t *testing.T) {
	link := &fakeLink{sendErr: errors.New("closed")}
	w := createTestNetWorld(t, createTestDefinition(), link)
	link.push(messages.RoomState{YourID: 1})
	runTicks(w, 3)

	assert.Equal(t, 1, netOf(w).SendErrors)
}
