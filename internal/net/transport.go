package net

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"StrawBoard/internal/control"
	"StrawBoard/internal/ink"

	"github.com/gorilla/websocket"
)

// PenPath is the HTTP path of the pen endpoint.
const PenPath = "/pen"

// PenMessage is one input sample on the wire.
type PenMessage struct {
	Type  string  `json:"type"` // down, move, up or key
	X     float64 `json:"x,omitempty"`
	Y     float64 `json:"y,omitempty"`
	Shift bool    `json:"shift,omitempty"`
	Ctrl  bool    `json:"ctrl,omitempty"`
	Code  string  `json:"code,omitempty"`
}

// Event converts m to a controller event.
func (m PenMessage) Event() (control.Event, error) {
	ev := control.Event{Pos: ink.Pt(m.X, m.Y), Code: m.Code}
	switch m.Type {
	case "down":
		ev.Kind = control.Down
	case "move":
		ev.Kind = control.Move
	case "up":
		ev.Kind = control.Up
	case "key":
		ev.Kind = control.Key
		if m.Code == "" {
			return control.Event{}, errors.New("key message without code")
		}
	default:
		return control.Event{}, fmt.Errorf("unknown message type %q", m.Type)
	}
	if m.Shift {
		ev.Mods |= control.ModShift
	}
	if m.Ctrl {
		ev.Mods |= control.ModCtrl
	}
	return ev, nil
}

// MessageOf is the inverse of PenMessage.Event.
func MessageOf(ev control.Event) PenMessage {
	return PenMessage{
		Type:  ev.Kind.String(),
		X:     ev.Pos.X,
		Y:     ev.Pos.Y,
		Shift: ev.Mods.Has(control.ModShift),
		Ctrl:  ev.Mods.Has(control.ModCtrl),
		Code:  ev.Code,
	}
}

// Peer is a connected pen.
type Peer struct {
	Conn *websocket.Conn
}

// PeerManager tracks the pens connected to the board.
type PeerManager struct {
	peers map[string]*Peer
	mu    sync.RWMutex
}

// NewPeerManager creates a new manager.
func NewPeerManager() *PeerManager {
	return &PeerManager{
		peers: make(map[string]*Peer),
	}
}

func (pm *PeerManager) Add(peer *Peer) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	addr := peer.Conn.RemoteAddr().String()
	pm.peers[addr] = peer
	log.Printf("[PEN] Connected from %s", addr)
}

func (pm *PeerManager) Remove(peer *Peer) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	addr := peer.Conn.RemoteAddr().String()
	delete(pm.peers, addr)
	log.Printf("[PEN] Disconnected %s", addr)
}

// Count returns the number of connected pens.
func (pm *PeerManager) Count() int {
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	return len(pm.peers)
}

// CloseAll disconnects every pen.
func (pm *PeerManager) CloseAll() {
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	for _, p := range pm.peers {
		p.Conn.Close()
	}
}

// PenServer accepts websocket pens and forwards their samples to post.
type PenServer struct {
	Peers *PeerManager

	post     func(control.Event) bool
	upgrader websocket.Upgrader
}

// NewPenServer creates a server that hands every decoded event to post.
func NewPenServer(post func(control.Event) bool) *PenServer {
	return &PenServer{
		Peers: NewPeerManager(),
		post:  post,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Pens are local devices on the same network, often plain
			// pages served from elsewhere.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

func (s *PenServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[PEN] Upgrade failed for %s: %v", r.RemoteAddr, err)
		return
	}
	defer conn.Close()

	peer := &Peer{Conn: conn}
	s.Peers.Add(peer)
	defer s.Peers.Remove(peer)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("[PEN] Read from %s: %v", conn.RemoteAddr(), err)
			}
			return
		}
		var msg PenMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("[PEN] Skipping malformed frame from %s: %v", conn.RemoteAddr(), err)
			continue
		}
		ev, err := msg.Event()
		if err != nil {
			log.Printf("[PEN] Skipping frame from %s: %v", conn.RemoteAddr(), err)
			continue
		}
		if !s.post(ev) {
			return
		}
	}
}

// ListenAndServe serves the pen endpoint on port until ctx is cancelled.
func (s *PenServer) ListenAndServe(ctx context.Context, port int) error {
	mux := http.NewServeMux()
	mux.Handle(PenPath, s)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdown)
		s.Peers.CloseAll()
	}()

	log.Printf("[PEN] Listening on port %d", port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("pen server: %w", err)
	}
	return nil
}

// PenClient streams input samples to a board.
type PenClient struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// DialPen connects to the pen endpoint at addr (host:port).
func DialPen(ctx context.Context, addr string) (*PenClient, error) {
	url := "ws://" + addr + PenPath
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", url, err)
	}
	return &PenClient{conn: conn}, nil
}

// Send writes ev to the board. It is safe for concurrent use.
func (c *PenClient) Send(ev control.Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(MessageOf(ev))
}

// Close says goodbye and closes the connection.
func (c *PenClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
	return c.conn.Close()
}
