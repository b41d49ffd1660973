package network

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/automoto/keydoor/shared/messages"
	"github.com/coder/websocket"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
)

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateJoinedRoom
	StateError
)

// ErrNotConnected is returned by Send before the socket is up or after Close.
var ErrNotConnected = errors.New("not connected")

// Client is the relay connection. Router callbacks run on necs goroutines and
// only queue events; the simulation picks them up with Drain once per tick.
type Client struct {
	mu sync.RWMutex

	state     ClientState
	lastError error
	playerID  int
	roomID    string
	conn      *websocket.Conn

	inbox        chan messages.ServerEvent
	dropped      int
	writeTimeout time.Duration
}

func NewClient(inboxSize int, writeTimeout time.Duration) *Client {
	if inboxSize <= 0 {
		inboxSize = 1
	}
	return &Client{
		state:        StateDisconnected,
		inbox:        make(chan messages.ServerEvent, inboxSize),
		writeTimeout: writeTimeout,
	}
}

// Connect dials the relay in a background goroutine and joins roomID once the
// socket is up.
func (c *Client) Connect(address, roomID, playerName string) {
	c.mu.Lock()
	c.state = StateConnecting
	c.lastError = nil
	c.roomID = roomID
	c.mu.Unlock()

	router.OnConnect(func(_ *router.NetworkClient) {
		log.Println("[net] connected to relay")
		c.mu.Lock()
		c.state = StateConnected
		c.mu.Unlock()

		err := c.Send(messages.JoinRoom{
			Version:    messages.ProtocolVersion,
			RoomID:     roomID,
			PlayerName: playerName,
		})
		if err != nil {
			c.setError(fmt.Errorf("failed to send join request: %w", err))
		}
	})

	router.On(func(_ *router.NetworkClient, msg messages.RoomState) {
		log.Printf("[net] joined room %q as player %d", msg.RoomID, msg.YourID)
		c.mu.Lock()
		c.playerID = msg.YourID
		c.state = StateJoinedRoom
		c.mu.Unlock()
		c.push(msg)
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinRejected) {
		log.Printf("[net] join rejected: %s", msg.Reason)
		c.setError(fmt.Errorf("join rejected: %s", msg.Reason))
		c.push(msg)
	})

	forward[messages.PlayerJoined](c)
	forward[messages.PlayerLeft](c)
	forward[messages.PlayerPatch](c)
	forward[messages.KeyCollected](c)
	forward[messages.AtDoorUpdate](c)
	forward[messages.PlayerDied](c)
	forward[messages.GameWon](c)
	forward[messages.GameReset](c)

	router.OnDisconnect(func(_ *router.NetworkClient, err error) {
		log.Printf("[net] disconnected: %v", err)
		c.mu.Lock()
		if c.state != StateError {
			c.state = StateDisconnected
		}
		c.conn = nil
		c.mu.Unlock()
	})

	router.OnError(func(_ *router.NetworkClient, err error) {
		log.Printf("[net] error: %v", err)
	})

	go func() {
		transport := transports.NewWsClientTransport("ws://" + address)
		err := transport.Start(func(conn *websocket.Conn) {
			c.mu.Lock()
			c.conn = conn
			c.mu.Unlock()
		})
		if err != nil {
			c.setError(fmt.Errorf("connection failed: %w", err))
		}
	}()
}

func forward[T messages.ServerEvent](c *Client) {
	router.On(func(_ *router.NetworkClient, msg T) {
		c.push(msg)
	})
}

// push queues ev without blocking the network goroutine. When the queue is
// full the event is dropped.
func (c *Client) push(ev messages.ServerEvent) {
	select {
	case c.inbox <- ev:
	default:
		c.mu.Lock()
		c.dropped++
		c.mu.Unlock()
		log.Printf("[net] Warning: inbox full, dropping %T", ev)
	}
}

// Drain returns every queued event in arrival order. Non-blocking.
func (c *Client) Drain() []messages.ServerEvent {
	var out []messages.ServerEvent
	for {
		select {
		case ev := <-c.inbox:
			out = append(out, ev)
		default:
			return out
		}
	}
}

// Send serializes msg and writes it as one binary frame.
func (c *Client) Send(msg any) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return ErrNotConnected
	}

	payload, err := router.Serialize(msg)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	ctx := context.Background()
	if c.writeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.writeTimeout)
		defer cancel()
	}
	return conn.Write(ctx, websocket.MessageBinary, payload)
}

// Close drops the connection, discards queued events and clears the router.
func (c *Client) Close() error {
	c.mu.Lock()
	conn := c.conn
	c.state = StateDisconnected
	c.conn = nil
	c.mu.Unlock()

	c.Drain()
	router.ResetRouter()

	if conn != nil {
		return conn.Close(websocket.StatusNormalClosure, "bye")
	}
	return nil
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

// PlayerID is the id the relay assigned, 0 until joined.
func (c *Client) PlayerID() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.playerID
}

func (c *Client) RoomID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.roomID
}

// Dropped counts events lost to a full inbox.
func (c *Client) Dropped() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dropped
}

func (c *Client) setError(err error) {
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}
