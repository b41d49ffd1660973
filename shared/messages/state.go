package messages

import (
	"errors"
	"fmt"

	"github.com/automoto/keydoor/shared/gamemath"
	"github.com/automoto/keydoor/shared/netconfig"
)

// ErrInvalidPatch is returned when an inbound patch fails shape validation.
var ErrInvalidPatch = errors.New("invalid player patch")

// PlayerState is the full observable state of one player. Clients send their
// own state every few ticks; the relay forwards it to the room as a patch.
type PlayerState struct {
	PlayerID    int
	X, Y        float64
	VX, VY      float64
	OnGround    bool
	FacingRight bool
	Dead        bool
	AnimFrame   int
}

// PlayerPatch is a partial update keyed by PlayerID. Nil fields are left
// untouched by the receiver.
type PlayerPatch struct {
	PlayerID    int
	X, Y        *float64
	VX, VY      *float64
	OnGround    *bool
	FacingRight *bool
	Dead        *bool
	AnimFrame   *int
}

func (PlayerPatch) serverEvent() {}

// Patch converts a full state into a patch that sets every field.
func (s PlayerState) Patch() PlayerPatch {
	return PlayerPatch{
		PlayerID:    s.PlayerID,
		X:           &s.X,
		Y:           &s.Y,
		VX:          &s.VX,
		VY:          &s.VY,
		OnGround:    &s.OnGround,
		FacingRight: &s.FacingRight,
		Dead:        &s.Dead,
		AnimFrame:   &s.AnimFrame,
	}
}

// Validate checks the patch shape: a valid id, finite numbers and a known
// animation frame. It says nothing about whether the id exists locally.
func (p PlayerPatch) Validate() error {
	if !netconfig.ValidPlayerID(p.PlayerID) {
		return fmt.Errorf("%w: player id %d", ErrInvalidPatch, p.PlayerID)
	}
	for _, f := range []*float64{p.X, p.Y, p.VX, p.VY} {
		if f != nil && !gamemath.Finite(*f) {
			return fmt.Errorf("%w: non-finite value for player %d", ErrInvalidPatch, p.PlayerID)
		}
	}
	if p.AnimFrame != nil && (*p.AnimFrame < 0 || *p.AnimFrame > 2) {
		return fmt.Errorf("%w: anim frame %d", ErrInvalidPatch, *p.AnimFrame)
	}
	return nil
}
