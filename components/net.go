package components

import (
	"github.com/automoto/keydoor/shared/messages"
	"github.com/yohamta/donburi"
)

// NetLink is the transport as seen by the simulation: a queue drained once
// per tick and a fire-and-forget send.
type NetLink interface {
	Drain() []messages.ServerEvent
	Send(msg any) error
}

type NetData struct {
	Link    NetLink
	LocalID int

	// Room-wide door membership as last reported by the relay.
	RemoteAtDoor []int
	WasAtDoor    bool

	// PendingWin holds a GameWon that arrived while frozen dead.
	PendingWin bool

	Dropped    int // inbound patches rejected since level start
	SendErrors int
}

var Net = donburi.NewComponentType[NetData]()
