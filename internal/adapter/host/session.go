package host

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vralabs/wardrobe/internal/core/domain"
	"github.com/vralabs/wardrobe/internal/port"
)

const writeTimeout = 10 * time.Second

// command is one instruction to the host runtime.
type command struct {
	Op       string     `json:"op"`
	ID       string     `json:"id,omitempty"`
	Label    string     `json:"label,omitempty"`
	Text     string     `json:"text,omitempty"`
	Position [3]float32 `json:"position,omitempty"`
	Rotation [4]float32 `json:"rotation,omitempty"` // x, y, z, w
	Scale    [3]float32 `json:"scale,omitempty"`
	Asset    string     `json:"asset,omitempty"`
	Node     string     `json:"node,omitempty"`
	UserID   string     `json:"user_id,omitempty"`
	Anchor   string     `json:"anchor,omitempty"`
	Instance string     `json:"instance,omitempty"`
}

// event is one notification from the host runtime.
type event struct {
	Event   string `json:"event"`
	UserID  string `json:"user_id,omitempty"`
	Control string `json:"control,omitempty"`
}

// Session wraps one host-runtime connection and implements the Scene
// and UI capabilities on top of it. Commands are one-way: a write
// failure is the host-collaborator failure the core propagates, and
// nothing here retries.
type Session struct {
	conn *websocket.Conn

	writeMu sync.Mutex

	mu       sync.Mutex
	handlers map[string]port.ClickHandler
}

var (
	_ port.Scene = (*Session)(nil)
	_ port.UI    = (*Session)(nil)
)

func newSession(conn *websocket.Conn) *Session {
	return &Session{
		conn:     conn,
		handlers: make(map[string]port.ClickHandler),
	}
}

func (s *Session) send(cmd command) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return fmt.Errorf("host write deadline: %w", err)
	}
	if err := s.conn.WriteJSON(cmd); err != nil {
		return fmt.Errorf("host write: %w", err)
	}
	return nil
}

// CreateButton registers onClick under a fresh control id and asks the
// host to create the control.
func (s *Session) CreateButton(ctx context.Context, label string, pos mgl32.Vec3, onClick port.ClickHandler) (string, error) {
	id := uuid.NewString()
	s.mu.Lock()
	s.handlers[id] = onClick
	s.mu.Unlock()

	if err := s.send(command{Op: "create_button", ID: id, Label: label, Position: pos}); err != nil {
		s.mu.Lock()
		delete(s.handlers, id)
		s.mu.Unlock()
		return "", err
	}
	return id, nil
}

// CreateLabel asks the host to create a static text element.
func (s *Session) CreateLabel(ctx context.Context, text string, pos mgl32.Vec3) (string, error) {
	id := uuid.NewString()
	if err := s.send(command{Op: "create_label", ID: id, Text: text, Position: pos}); err != nil {
		return "", err
	}
	return id, nil
}

// Instantiate asks the host to spawn an instance of tmpl and returns
// the handle the instance will be addressed by.
func (s *Session) Instantiate(ctx context.Context, tmpl domain.Template, pose domain.Pose) (string, error) {
	id := uuid.NewString()
	cmd := command{
		Op:       "instantiate",
		ID:       id,
		Asset:    tmpl.AssetURL,
		Node:     tmpl.Node,
		Position: pose.Position,
		Rotation: [4]float32{pose.Rotation.X(), pose.Rotation.Y(), pose.Rotation.Z(), pose.Rotation.W},
		Scale:    pose.Scale,
	}
	if err := s.send(cmd); err != nil {
		return "", err
	}
	return id, nil
}

// AttachToUser parents an instance to an anchor on the user's avatar.
func (s *Session) AttachToUser(ctx context.Context, instanceID, userID, anchor string) error {
	return s.send(command{Op: "attach", Instance: instanceID, UserID: userID, Anchor: anchor})
}

// Destroy removes an instance from the host scene.
func (s *Session) Destroy(ctx context.Context, instanceID string) error {
	return s.send(command{Op: "destroy", Instance: instanceID})
}

func (s *Session) handler(controlID string) port.ClickHandler {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.handlers[controlID]
}
