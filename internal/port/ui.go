package port

import (
	"context"

	"github.com/go-gl/mathgl/mgl32"
)

// ClickHandler runs when a user activates a control. The user id is
// the host's identity token for the activating user.
type ClickHandler func(ctx context.Context, userID string)

// UI is the host runtime's menu-surface capability. Created elements
// are owned by the host scene, not by the caller.
type UI interface {
	// CreateButton creates a selectable control at pos and binds
	// onClick to its activation event, returning the control handle.
	CreateButton(ctx context.Context, label string, pos mgl32.Vec3, onClick ClickHandler) (string, error)

	// CreateLabel creates a static text element at pos.
	CreateLabel(ctx context.Context, text string, pos mgl32.Vec3) (string, error)
}
