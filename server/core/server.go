package core

import (
	"fmt"
	"log"
	"sync"

	"github.com/automoto/keydoor/shared/messages"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
)

const commandBuffer = 1024

type seat struct {
	room *Room
	id   int
}

// Server accepts websocket clients and groups them into rooms. Router
// callbacks only enqueue commands; the game loop applies them in order on a
// single goroutine, so rooms need no locking.
type Server struct {
	loop      *GameLoop
	transport *transports.WsServerTransport
	version   string
	maxRooms  int

	commands chan func()

	rooms map[string]*Room
	seats map[string]seat // by peer id

	mu      sync.RWMutex
	players int
}

// NewServer creates a relay. An empty version accepts any client; maxRooms
// of 0 means unlimited.
func NewServer(tickRate int, version string, maxRooms int) *Server {
	s := &Server{
		version:  version,
		maxRooms: maxRooms,
		commands: make(chan func(), commandBuffer),
		rooms:    make(map[string]*Room),
		seats:    make(map[string]seat),
	}
	s.loop = NewGameLoop(s, tickRate)
	return s
}

// Start runs the game loop and blocks serving websocket connections.
func (s *Server) Start(port uint) error {
	s.setupRouterCallbacks()
	go s.loop.Run()

	s.transport = transports.NewWsServerTransport(port, "", nil)
	if err := s.transport.Start(); err != nil {
		return fmt.Errorf("start transport on port %d: %w", port, err)
	}
	return nil
}

func (s *Server) Stop() {
	s.loop.Stop()
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		log.Printf("[server] client connected: %s", client.Id())
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		if err != nil {
			log.Printf("[server] client %s disconnected with error: %v", client.Id(), err)
		}
		s.enqueue(func() { s.HandleDisconnect(client) })
	})

	router.On(func(client *router.NetworkClient, msg messages.JoinRoom) {
		s.enqueue(func() { s.HandleJoin(client, msg) })
	})
	router.On(func(client *router.NetworkClient, msg messages.PlayerState) {
		s.enqueue(func() { s.withSeat(client, func(r *Room, id int) { r.ReportState(id, msg) }) })
	})
	router.On(func(client *router.NetworkClient, _ messages.KeyCollected) {
		s.enqueue(func() { s.withSeat(client, func(r *Room, id int) { r.CollectKey(id) }) })
	})
	router.On(func(client *router.NetworkClient, msg messages.AtDoorChanged) {
		s.enqueue(func() { s.withSeat(client, func(r *Room, id int) { r.SetAtDoor(id, msg.AtDoor) }) })
	})
	router.On(func(client *router.NetworkClient, _ messages.PlayerDied) {
		s.enqueue(func() { s.withSeat(client, func(r *Room, id int) { r.Died(id) }) })
	})
	router.On(func(client *router.NetworkClient, _ messages.RestartRequest) {
		s.enqueue(func() { s.withSeat(client, func(r *Room, _ int) { r.Reset() }) })
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("[server] client error: %v", err)
	})
}

func (s *Server) enqueue(cmd func()) {
	select {
	case s.commands <- cmd:
	default:
		log.Printf("[server] Warning: command queue full, dropping command")
	}
}

// ProcessCommands applies every queued command. It is called once per tick
// by the game loop.
func (s *Server) ProcessCommands() {
	for {
		select {
		case cmd := <-s.commands:
			cmd()
		default:
			return
		}
	}
}

// HandleJoin seats peer in the requested room, creating the room if needed.
func (s *Server) HandleJoin(peer Peer, msg messages.JoinRoom) {
	reject := func(reason string) {
		log.Printf("[server] rejecting %s: %s", peer.Id(), reason)
		if err := peer.SendMessage(messages.JoinRejected{Reason: reason}); err != nil {
			log.Printf("[server] Warning: send rejection to %s: %v", peer.Id(), err)
		}
	}

	if s.version != "" && msg.Version != s.version {
		reject(fmt.Sprintf("version mismatch: server %s, client %s", s.version, msg.Version))
		return
	}
	if _, seated := s.seats[peer.Id()]; seated {
		reject("already in a room")
		return
	}
	roomID := msg.RoomID
	if roomID == "" {
		roomID = "lobby"
	}
	room, ok := s.rooms[roomID]
	if !ok {
		if s.maxRooms > 0 && len(s.rooms) >= s.maxRooms {
			reject("server has no free rooms")
			return
		}
		room = NewRoom(roomID)
		s.rooms[roomID] = room
		log.Printf("[server] room %q created", roomID)
	}

	id, err := room.Join(peer, msg.PlayerName)
	if err != nil {
		reject(err.Error())
		if room.Empty() {
			delete(s.rooms, roomID)
		}
		return
	}
	s.seats[peer.Id()] = seat{room: room, id: id}
	s.updatePlayerCount()
}

// HandleDisconnect removes peer from its room and deletes the room once empty.
func (s *Server) HandleDisconnect(peer Peer) {
	st, ok := s.seats[peer.Id()]
	if !ok {
		return
	}
	delete(s.seats, peer.Id())
	st.room.Leave(st.id)
	if st.room.Empty() {
		delete(s.rooms, st.room.ID)
		log.Printf("[server] room %q closed", st.room.ID)
	}
	s.updatePlayerCount()
}

func (s *Server) withSeat(peer Peer, fn func(r *Room, id int)) {
	st, ok := s.seats[peer.Id()]
	if !ok {
		return
	}
	fn(st.room, st.id)
}

// Room returns a room by id. Only safe from the loop goroutine or tests.
func (s *Server) Room(id string) (*Room, bool) {
	r, ok := s.rooms[id]
	return r, ok
}

func (s *Server) RoomCount() int {
	return len(s.rooms)
}

func (s *Server) updatePlayerCount() {
	s.mu.Lock()
	s.players = len(s.seats)
	s.mu.Unlock()
}

// PlayerCount returns the number of seated players. Safe from any goroutine.
func (s *Server) PlayerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.players
}
