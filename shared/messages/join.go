package messages

// ProtocolVersion is checked by the relay on join.
const ProtocolVersion = "keydoor/1"

// JoinRoom is sent by a client after connecting to request a slot in a room.
type JoinRoom struct {
	Version    string
	RoomID     string
	PlayerName string
}

// RoomState is sent to a client whose join was accepted.
type RoomState struct {
	RoomID  string
	YourID  int
	Players []PlayerState
	Names   map[int]string
	HasKey  bool
	AtDoor  []int
}

// JoinRejected is sent by the server when a client's join request is rejected.
type JoinRejected struct {
	Reason string
}

// PlayerJoined is broadcast to the rest of a room when a slot is filled.
type PlayerJoined struct {
	PlayerID int
	Name     string
	Total    int
}

// PlayerLeft is broadcast when a member disconnects.
type PlayerLeft struct {
	PlayerID int
	Total    int
}

func (RoomState) serverEvent()    {}
func (JoinRejected) serverEvent() {}
func (PlayerJoined) serverEvent() {}
func (PlayerLeft) serverEvent()   {}
