package systems

import (
	"testing"

	"github.com/automoto/keydoor/config"
	"github.com/automoto/keydoor/shared/gamemath"
	"github.com/automoto/keydoor/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoPlayerDefinition(second leveldata.SpawnPoint) *leveldata.Definition {
	d := createTestDefinition()
	d.Players = 2
	d.SpawnPoints = append(d.SpawnPoints, second)
	return d
}

func TestGravityIsMonotonic(t *testing.T) {
	d := createTestDefinition()
	d.Platforms = []gamemath.Rect{{X: 2000, Y: testGround, W: 500, H: 100}}
	d.SpawnPoints = []leveldata.SpawnPoint{{X: 100, Y: 100, Index: 1}}
	w := createTestWorld(t, finishTestDefinition(d))
	g := config.ProfileByName(config.ProfileClassic).Gravity

	_, b := player(t, w, 1)
	prevVY, prevY := b.VY, b.Y
	for i := 0; i < 20; i++ {
		runTicks(w, 1)
		assert.InDelta(t, prevVY+g, b.VY, 1e-9, "tick %d", i)
		assert.Greater(t, b.Y, prevY)
		prevVY, prevY = b.VY, b.Y
	}
}

func TestGroundClamp(t *testing.T) {
	w := createTestWorld(t, createTestDefinition())
	_, b := player(t, w, 1)

	for i := 0; i < 30; i++ {
		runTicks(w, 1)
		require.Equal(t, testGround-b.H, b.Y, "tick %d", i)
		require.Zero(t, b.VY)
		require.True(t, b.OnGround)
	}
}

func TestJumpRequiresGround(t *testing.T) {
	w := createTestWorld(t, createTestDefinition())
	prof := config.ProfileByName(config.ProfileClassic)
	_, b := player(t, w, 1)

	// Spawned in the air: the first jump press is ignored.
	runTicks(w, 1, "w")
	assert.Zero(t, b.VY)
	assert.True(t, b.OnGround)

	runTicks(w, 1, "w")
	assert.InDelta(t, prof.JumpForce+prof.Gravity, b.VY, 1e-9)
	assert.False(t, b.OnGround)

	// Holding jump mid-air does not jump again.
	runTicks(w, 1, "w")
	assert.InDelta(t, prof.JumpForce+2*prof.Gravity, b.VY, 1e-9)
}

func TestHorizontalInput(t *testing.T) {
	tests := []struct {
		name       string
		keys       []string
		wantVX     float64
		wantFacing bool
	}{
		{"idle", nil, 0, true},
		{"right", []string{"d"}, 5, true},
		{"left", []string{"a"}, -5, false},
		{"left wins", []string{"a", "d"}, -5, false},
		{"other scheme ignored", []string{"arrowleft"}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := createTestWorld(t, createTestDefinition())
			runTicks(w, 1, tt.keys...)
			p, b := player(t, w, 1)
			assert.Equal(t, tt.wantVX, b.VX)
			assert.Equal(t, tt.wantFacing, p.FacingRight)
		})
	}
}

func TestWalkAnimation(t *testing.T) {
	w := createTestWorld(t, createTestDefinition())
	p, _ := player(t, w, 1)

	runTicks(w, 7, "d")
	assert.Equal(t, 0, p.AnimFrame)
	runTicks(w, 1, "d")
	assert.Equal(t, 1, p.AnimFrame)
	runTicks(w, 8, "d")
	assert.Equal(t, 2, p.AnimFrame)
	runTicks(w, 8, "d")
	assert.Equal(t, 1, p.AnimFrame)
	runTicks(w, 1)
	assert.Equal(t, 0, p.AnimFrame)
}

func TestLeftEdgeClamp(t *testing.T) {
	w := createTestWorld(t, createTestDefinition())
	runTicks(w, 40, "a")
	_, b := player(t, w, 1)
	assert.Equal(t, 0.0, b.X)
}

func TestStackingIsIdempotent(t *testing.T) {
	w := createTestWorld(t, twoPlayerDefinition(leveldata.SpawnPoint{X: 100, Y: testGround - 110, Index: 2}))
	_, bottom := player(t, w, 1)
	top, topBody := player(t, w, 2)

	runTicks(w, 1)
	wantY := bottom.Y - topBody.H
	for i := 0; i < 20; i++ {
		runTicks(w, 1)
		require.Equal(t, wantY, topBody.Y, "tick %d", i)
		require.Equal(t, 1, top.StandingOnPlayer)
		require.True(t, topBody.OnGround)
		require.Zero(t, topBody.VY)
	}
}

func TestRiderIsCarried(t *testing.T) {
	w := createTestWorld(t, twoPlayerDefinition(leveldata.SpawnPoint{X: 100, Y: testGround - 110, Index: 2}))
	_, bottom := player(t, w, 1)
	_, topBody := player(t, w, 2)

	runTicks(w, 1)
	runTicks(w, 5, "d")

	assert.InDelta(t, 125.0, bottom.X, 1e-9)
	assert.InDelta(t, 120.0, topBody.X, 1e-9, "rider moves at 80%% of the carrier")
}

func TestPushIsSymmetric(t *testing.T) {
	w := createTestWorld(t, twoPlayerDefinition(leveldata.SpawnPoint{X: 130, Y: testGround - 55, Index: 2}))
	_, a := player(t, w, 1)
	_, b := player(t, w, 2)

	runTicks(w, 1)

	assert.InDelta(t, 92.0, a.X, 1e-9)
	assert.InDelta(t, 138.0, b.X, 1e-9)
	assert.InDelta(t, 230.0, a.X+b.X, 1e-9)
	assert.False(t, a.Rect().Intersects(b.Rect()))
}

func TestDeadPlayerIsInert(t *testing.T) {
	w := createTestWorld(t, twoPlayerDefinition(leveldata.SpawnPoint{X: 100, Y: testGround - 110, Index: 2}))
	runTicks(w, 1)
	p1, b1 := player(t, w, 1)
	p1.Dead = true
	frozenY := b1.Y

	_, top := player(t, w, 2)
	UpdatePlayers(w)

	assert.Equal(t, frozenY, b1.Y)
	assert.Greater(t, top.Y, frozenY-top.H, "no stacking on a dead player")
}
