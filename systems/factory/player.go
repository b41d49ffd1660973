package factory

import (
	"github.com/automoto/keydoor/archetypes"
	"github.com/automoto/keydoor/components"
	"github.com/automoto/keydoor/config"
	"github.com/automoto/keydoor/shared/leveldata"
	"github.com/automoto/keydoor/tags"
	"github.com/yohamta/donburi"
)

// PlayerSlot describes one participant to spawn.
type PlayerSlot struct {
	ID       int
	Name     string
	Spawn    leveldata.SpawnPoint
	Controls config.ControlBinding
	Local    bool
}

func CreatePlayer(w donburi.World, space *components.SpaceData, prof config.PhysicsProfile, slot PlayerSlot) *donburi.Entry {
	player := archetypes.Player.Spawn(w)
	components.Body.SetValue(player, components.BodyData{
		X: slot.Spawn.X,
		Y: slot.Spawn.Y,
		W: prof.PlayerWidth,
		H: prof.PlayerHeight,
	})
	components.Player.SetValue(player, components.PlayerData{
		ID:          slot.ID,
		Name:        slot.Name,
		Controls:    slot.Controls,
		SpawnX:      slot.Spawn.X,
		SpawnY:      slot.Spawn.Y,
		FacingRight: true,
		Local:       slot.Local,
	})
	attachObject(space, player, QueryInflate, tags.ResolvPlayer)
	return player
}
