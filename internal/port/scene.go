package port

import (
	"context"

	"github.com/vralabs/wardrobe/internal/core/domain"
)

// Scene is the host runtime's scene-graph capability. The core never
// renders anything itself; it only asks the host to create, attach and
// destroy instances. Failures are the host's verdict and are not
// retried here.
type Scene interface {
	// Instantiate creates a live instance of tmpl posed per pose and
	// returns its instance handle.
	Instantiate(ctx context.Context, tmpl domain.Template, pose domain.Pose) (string, error)

	// AttachToUser parents an instance to a named anchor point on the
	// user's avatar.
	AttachToUser(ctx context.Context, instanceID, userID, anchor string) error

	// Destroy removes an instance from the scene, releasing its handle.
	Destroy(ctx context.Context, instanceID string) error
}
