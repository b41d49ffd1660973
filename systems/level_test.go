package systems

import (
	"testing"

	"github.com/automoto/keydoor/components"
	"github.com/automoto/keydoor/config"
	"github.com/automoto/keydoor/shared/gamemath"
	"github.com/automoto/keydoor/shared/leveldata"
	"github.com/automoto/keydoor/shared/netconfig"
	"github.com/automoto/keydoor/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyIsMonotonic(t *testing.T) {
	d := createTestDefinition()
	d.Key = gamemath.Rect{X: 200, Y: testGround - 40, W: 40, H: 40}
	w := createTestWorld(t, d)

	runTicks(w, 30, "d")
	key := keyData(t, w)
	require.True(t, key.Collected)
	assert.Equal(t, 1, key.CollectedBy)

	runTicks(w, 30, "a")
	assert.True(t, keyData(t, w).Collected, "walking away keeps the key")

	ResetLevel(w)
	assert.False(t, keyData(t, w).Collected, "only a reset clears the key")
}

func TestWinScenario(t *testing.T) {
	d := createTestDefinition()
	d.Key = gamemath.Rect{X: 120, Y: testGround - 40, W: 40, H: 40}
	d.Door = gamemath.Rect{X: 300, Y: testGround - 75, W: 55, H: 75}
	w := createTestWorld(t, d)
	ls := levelState(w)

	for i := 0; i < 100 && ls.State == netconfig.StatePlaying; i++ {
		runTicks(w, 1, "d")
	}
	require.Equal(t, netconfig.StateWon, ls.State)
	_, b := player(t, w, 1)
	assert.True(t, b.Rect().Intersects(d.Door))

	// Won is terminal: further input changes nothing.
	x := b.X
	runTicks(w, 10, "d")
	assert.Equal(t, netconfig.StateWon, ls.State)
	assert.Equal(t, x, b.X)
}

func TestDoorNeedsKey(t *testing.T) {
	d := createTestDefinition()
	d.Door = gamemath.Rect{X: 100, Y: testGround - 75, W: 55, H: 75}
	w := createTestWorld(t, d)

	runTicks(w, 5)
	ls := levelState(w)
	assert.Empty(t, ls.AtDoor)
	assert.Equal(t, netconfig.StatePlaying, ls.State)
}

func TestWinNeedsEveryLivingPlayer(t *testing.T) {
	d := twoPlayerDefinition(leveldata.SpawnPoint{X: 600, Y: testGround - 55, Index: 2})
	d.Key = gamemath.Rect{X: 100, Y: testGround - 40, W: 40, H: 40}
	d.Door = gamemath.Rect{X: 100, Y: testGround - 75, W: 55, H: 75}
	w := createTestWorld(t, d)
	ls := levelState(w)

	runTicks(w, 3)
	assert.Equal(t, []int{1}, ls.AtDoorIDs())
	assert.Equal(t, netconfig.StatePlaying, ls.State)

	p2, _ := player(t, w, 2)
	p2.Dead = true
	runTicks(w, 1)
	assert.Equal(t, netconfig.StateWon, ls.State, "dead players do not block the win")
}

func TestAtDoorIsRecomputedEachTick(t *testing.T) {
	d := createTestDefinition()
	d.Key = gamemath.Rect{X: 100, Y: testGround - 40, W: 40, H: 40}
	d.Door = gamemath.Rect{X: 100, Y: testGround - 75, W: 55, H: 75}
	d.Players = 2
	d.SpawnPoints = append(d.SpawnPoints, leveldata.SpawnPoint{X: 900, Y: testGround - 55, Index: 2})
	w := createTestWorld(t, d)
	ls := levelState(w)

	runTicks(w, 1)
	require.Contains(t, ls.AtDoor, 1)

	runTicks(w, 20, "d")
	assert.NotContains(t, ls.AtDoor, 1, "leaving the door removes the player")
}

func TestHazardKillsAndLevelResets(t *testing.T) {
	d := createTestDefinition()
	d.Hazards = []gamemath.Rect{{X: 300, Y: testGround - 35, W: 35, H: 35}}
	d.Key = gamemath.Rect{X: 200, Y: testGround - 40, W: 40, H: 40}
	w := createTestWorld(t, finishTestDefinition(d))
	ls := levelState(w)
	freeze := config.ProfileByName(config.ProfileClassic).DeathFreezeTicks

	for i := 0; i < 100 && ls.Playing(); i++ {
		runTicks(w, 1, "d")
	}
	require.Equal(t, netconfig.StateDead, ls.State)
	p, b := player(t, w, 1)
	require.True(t, p.Dead)
	require.True(t, keyData(t, w).Collected)
	deadX := b.X

	runTicks(w, freeze-2, "d")
	assert.Equal(t, netconfig.StateDead, ls.State)
	assert.Equal(t, deadX, b.X, "nothing moves while frozen")

	runTicks(w, 1, "d")
	assert.Equal(t, netconfig.StatePlaying, ls.State)
	assert.False(t, p.Dead)
	assert.Equal(t, 100.0, b.X)
	assert.Equal(t, testGround-55, b.Y)
	assert.Zero(t, b.VX)
	assert.False(t, keyData(t, w).Collected)
	assert.Equal(t, 1, ls.Deaths)
	assert.Equal(t, 1, ls.Resets)
}

func TestFreezeStartsOnNextTick(t *testing.T) {
	d := createTestDefinition()
	d.Players = 2
	d.SpawnPoints = append(d.SpawnPoints, leveldata.SpawnPoint{X: 600, Y: testGround - 55, Index: 2})
	d.Hazards = []gamemath.Rect{{X: 120, Y: testGround - 35, W: 35, H: 35}}
	w := createTestWorld(t, finishTestDefinition(d))
	_, b2 := player(t, w, 2)

	runTicks(w, 1, "arrowright")
	require.Equal(t, netconfig.StateDead, levelState(w).State)
	assert.Equal(t, 605.0, b2.X, "later players finish the fatal tick")

	runTicks(w, 1, "arrowright")
	assert.Equal(t, 605.0, b2.X, "frozen from the next tick")
}

func TestSimultaneousDeathsShareOneCountdown(t *testing.T) {
	d := twoPlayerDefinition(leveldata.SpawnPoint{X: 600, Y: testGround - 55, Index: 2})
	w := createTestWorld(t, d)
	ls := levelState(w)
	freeze := config.ProfileByName(config.ProfileClassic).DeathFreezeTicks

	KillPlayer(w, findPlayer(w, 1))
	ls.ResetCountdown = 10
	KillPlayer(w, findPlayer(w, 2))
	KillPlayer(w, findPlayer(w, 2))

	assert.Equal(t, freeze, ls.ResetCountdown, "the latest death restarts the countdown")
	assert.Equal(t, 2, ls.Deaths)
}

func TestFallingOutIsFatal(t *testing.T) {
	d := createTestDefinition()
	d.Platforms = []gamemath.Rect{{X: 2000, Y: testGround, W: 500, H: 100}}
	w := createTestWorld(t, finishTestDefinition(d))
	ls := levelState(w)

	for i := 0; i < 200 && ls.Playing(); i++ {
		runTicks(w, 1)
	}
	require.Equal(t, netconfig.StateDead, ls.State)
	_, b := player(t, w, 1)
	assert.Greater(t, b.Y, testViewportH+ls.Physics.FallMargin)
}

func TestDeathBeatsWinInSameTick(t *testing.T) {
	d := createTestDefinition()
	d.Key = gamemath.Rect{X: 100, Y: testGround - 40, W: 40, H: 40}
	d.Door = gamemath.Rect{X: 100, Y: testGround - 75, W: 55, H: 75}
	d.Hazards = []gamemath.Rect{{X: 120, Y: testGround - 35, W: 35, H: 35}}
	w := createTestWorld(t, finishTestDefinition(d))

	runTicks(w, 1)

	assert.Equal(t, netconfig.StateDead, levelState(w).State)
	assert.True(t, keyData(t, w).Collected, "pickup still fires")
}

func TestCameraFollow(t *testing.T) {
	w := createTestWorld(t, createTestDefinition())
	ce, ok := components.Camera.First(w)
	require.True(t, ok)
	cam := components.Camera.Get(ce)

	runTicks(w, 10)
	assert.Equal(t, 0.0, cam.Position.X, "camera never scrolls past the level start")

	placeBody(w, findPlayer(w, 1), 2000, testGround-55)
	UpdateCamera(w)
	target := 2000 - testViewportW/2 + 45.0/2
	assert.InDelta(t, target*0.1, cam.Position.X, 1e-9)

	for i := 0; i < 200; i++ {
		UpdateCamera(w)
		require.GreaterOrEqual(t, cam.Position.X, 0.0)
		require.LessOrEqual(t, cam.Position.X, target+1e-9)
	}
	assert.InDelta(t, target, cam.Position.X, 0.01)

	p, _ := player(t, w, 1)
	p.Dead = true
	x := cam.Position.X
	UpdateCamera(w)
	assert.Equal(t, x, cam.Position.X, "camera holds with nobody alive")
}

func TestMovingPlatformReverses(t *testing.T) {
	d := createTestDefinition()
	d.MovingPlatforms = []leveldata.MovingPlatform{{
		Rect:      gamemath.Rect{X: 500, Y: 400, W: 100, H: 20},
		StartX:    500,
		EndX:      510,
		Speed:     2,
		Direction: 1,
	}}
	w := createTestWorld(t, finishTestDefinition(d))
	e, ok := tags.MovingPlatform.First(w)
	require.True(t, ok)
	b := components.Body.Get(e)
	mp := components.MovingPlatform.Get(e)

	for i := 0; i < 5; i++ {
		UpdatePlatforms(w)
	}
	assert.Equal(t, 510.0, b.X)
	assert.Equal(t, -1.0, mp.Direction)
	assert.Equal(t, 2.0, mp.StepX)

	UpdatePlatforms(w)
	assert.Equal(t, 508.0, b.X)
	assert.Equal(t, -2.0, mp.StepX)

	ResetLevel(w)
	assert.Equal(t, 500.0, b.X)
	assert.Equal(t, 1.0, mp.Direction)
}

func TestRiderMovesWithPlatform(t *testing.T) {
	d := createTestDefinition()
	d.MovingPlatforms = []leveldata.MovingPlatform{{
		Rect:      gamemath.Rect{X: 80, Y: 400, W: 120, H: 20},
		StartX:    0,
		EndX:      1000,
		Speed:     2,
		Direction: 1,
	}}
	d.SpawnPoints = []leveldata.SpawnPoint{{X: 100, Y: 345, Index: 1}}
	w := createTestWorld(t, finishTestDefinition(d))
	_, b := player(t, w, 1)

	runTicks(w, 10)

	assert.InDelta(t, 120.0, b.X, 1e-9)
	assert.Equal(t, 345.0, b.Y)
}

func TestFallingPlatformDrops(t *testing.T) {
	d := createTestDefinition()
	d.FallingPlatforms = []gamemath.Rect{{X: 80, Y: 400, W: 100, H: 20}}
	d.SpawnPoints = []leveldata.SpawnPoint{{X: 100, Y: 345, Index: 1}}
	w := createTestWorld(t, finishTestDefinition(d))
	e, ok := tags.FallingPlatform.First(w)
	require.True(t, ok)
	b := components.Body.Get(e)
	fp := components.FallingPlatform.Get(e)

	runTicks(w, 1)
	require.True(t, fp.Falling)

	runTicks(w, 30)
	assert.Equal(t, 400.0, b.Y)
	runTicks(w, 1)
	assert.Equal(t, 408.0, b.Y)

	ResetLevel(w)
	assert.Equal(t, 400.0, b.Y)
	assert.False(t, fp.Falling)
	assert.Zero(t, fp.FallTimer)
}
