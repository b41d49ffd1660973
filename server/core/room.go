package core

import (
	"errors"
	"log"
	"sort"

	"github.com/automoto/keydoor/shared/messages"
	"github.com/automoto/keydoor/shared/netconfig"
)

// ErrRoomFull is returned when every player slot in a room is taken.
var ErrRoomFull = errors.New("room full")

// Peer is one connected client as seen by a room.
type Peer interface {
	Id() string
	SendMessage(msg any) error
}

type member struct {
	peer  Peer
	id    int
	name  string
	state messages.PlayerState
	seen  bool // state has been reported at least once
	dead  bool
}

// Room relays state between the members playing one level. It trusts what
// clients report; it only owns the shared key and door membership.
type Room struct {
	ID      string
	members map[int]*member
	hasKey  bool
	atDoor  map[int]struct{}
	won     bool
}

func NewRoom(id string) *Room {
	return &Room{
		ID:      id,
		members: make(map[int]*member),
		atDoor:  make(map[int]struct{}),
	}
}

// Join gives peer the lowest free id, sends it the room state and announces
// it to everyone else.
func (r *Room) Join(peer Peer, name string) (int, error) {
	id := 0
	for i := 1; i <= netconfig.MaxPlayers; i++ {
		if _, taken := r.members[i]; !taken {
			id = i
			break
		}
	}
	if id == 0 {
		return 0, ErrRoomFull
	}
	r.members[id] = &member{peer: peer, id: id, name: name}

	r.send(r.members[id], r.snapshot(id))
	r.broadcast(messages.PlayerJoined{PlayerID: id, Name: name, Total: len(r.members)}, id)
	log.Printf("[room %s] %s joined as player %d (%d/%d)", r.ID, name, id, len(r.members), netconfig.MaxPlayers)
	return id, nil
}

// Leave drops a member and tells the rest of the room.
func (r *Room) Leave(id int) {
	m, ok := r.members[id]
	if !ok {
		return
	}
	delete(r.members, id)
	delete(r.atDoor, id)
	r.broadcast(messages.PlayerLeft{PlayerID: id, Total: len(r.members)}, 0)
	log.Printf("[room %s] %s (player %d) left", r.ID, m.name, id)
	if len(r.atDoor) > 0 {
		r.broadcast(messages.AtDoorUpdate{PlayerIDs: r.AtDoor()}, 0)
		r.checkWin()
	}
}

func (r *Room) Len() int {
	return len(r.members)
}

func (r *Room) Empty() bool {
	return len(r.members) == 0
}

func (r *Room) HasKey() bool {
	return r.hasKey
}

// AtDoor returns the door set sorted by id.
func (r *Room) AtDoor() []int {
	ids := make([]int, 0, len(r.atDoor))
	for id := range r.atDoor {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// ReportState stamps st with the sender's id and relays it to the others.
func (r *Room) ReportState(id int, st messages.PlayerState) {
	m, ok := r.members[id]
	if !ok {
		return
	}
	st.PlayerID = id
	m.state = st
	m.seen = true
	r.broadcast(st.Patch(), id)
	if st.Dead && !m.dead {
		r.markDead(m)
	}
	m.dead = st.Dead
}

func (r *Room) CollectKey(id int) {
	if _, ok := r.members[id]; !ok || r.hasKey {
		return
	}
	r.hasKey = true
	r.broadcast(messages.KeyCollected{PlayerID: id}, id)
	log.Printf("[room %s] key collected by player %d", r.ID, id)
}

func (r *Room) SetAtDoor(id int, at bool) {
	if _, ok := r.members[id]; !ok {
		return
	}
	_, was := r.atDoor[id]
	if at == was {
		return
	}
	if at {
		r.atDoor[id] = struct{}{}
	} else {
		delete(r.atDoor, id)
	}
	r.broadcast(messages.AtDoorUpdate{PlayerIDs: r.AtDoor()}, 0)
	r.checkWin()
}

func (r *Room) Died(id int) {
	m, ok := r.members[id]
	if !ok {
		return
	}
	r.broadcast(messages.PlayerDied{PlayerID: id}, id)
	r.markDead(m)
}

// markDead drops a member from the door set; the living may have won.
func (r *Room) markDead(m *member) {
	m.dead = true
	if _, at := r.atDoor[m.id]; at {
		delete(r.atDoor, m.id)
		r.broadcast(messages.AtDoorUpdate{PlayerIDs: r.AtDoor()}, 0)
	}
	r.checkWin()
}

// Reset clears the key and door and tells every member to rebuild.
func (r *Room) Reset() {
	r.hasKey = false
	r.won = false
	r.atDoor = make(map[int]struct{})
	for _, m := range r.members {
		m.dead = false
	}
	r.broadcast(messages.GameReset{}, 0)
	log.Printf("[room %s] reset", r.ID)
}

// checkWin announces the win once every living member is in the door.
func (r *Room) checkWin() {
	if r.won || !r.hasKey {
		return
	}
	living := 0
	for id, m := range r.members {
		if m.dead {
			continue
		}
		living++
		if _, ok := r.atDoor[id]; !ok {
			return
		}
	}
	if living == 0 {
		return
	}
	r.won = true
	r.broadcast(messages.GameWon{}, 0)
	log.Printf("[room %s] won with %d players", r.ID, living)
}

func (r *Room) snapshot(forID int) messages.RoomState {
	rs := messages.RoomState{
		RoomID: r.ID,
		YourID: forID,
		Names:  make(map[int]string, len(r.members)),
		HasKey: r.hasKey,
		AtDoor: r.AtDoor(),
	}
	for _, id := range r.ids() {
		m := r.members[id]
		rs.Names[id] = m.name
		if id == forID || !m.seen {
			continue
		}
		rs.Players = append(rs.Players, m.state)
	}
	return rs
}

func (r *Room) ids() []int {
	ids := make([]int, 0, len(r.members))
	for id := range r.members {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// broadcast sends msg to every member except the one with id except.
func (r *Room) broadcast(msg any, except int) {
	for _, id := range r.ids() {
		if id == except {
			continue
		}
		r.send(r.members[id], msg)
	}
}

func (r *Room) send(m *member, msg any) {
	if err := m.peer.SendMessage(msg); err != nil {
		log.Printf("[room %s] Warning: send %T to player %d: %v", r.ID, msg, m.id, err)
	}
}
