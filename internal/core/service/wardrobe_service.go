package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/vralabs/wardrobe/internal/core/domain"
	"github.com/vralabs/wardrobe/internal/port"
)

// ErrUnknownGarment means a wear request named an id the catalog does
// not contain. Ids only ever originate from the catalog's own
// enumeration, so this signals data corruption and is not swallowed.
var ErrUnknownGarment = errors.New("unknown garment")

// WardrobeService owns the per-user attachment state. Invariant: at
// most one live instance per user, and every instance the service
// creates is destroyed on every path that stops tracking it.
type WardrobeService struct {
	catalog     *domain.Catalog
	registry    *TemplateRegistry
	scene       port.Scene
	policy      domain.RewearPolicy
	attachPoint string
	logger      zerolog.Logger

	mu          sync.Mutex
	attachments map[string]domain.Attachment
}

func NewWardrobeService(
	catalog *domain.Catalog,
	registry *TemplateRegistry,
	scene port.Scene,
	policy domain.RewearPolicy,
	attachPoint string,
	logger zerolog.Logger,
) *WardrobeService {
	return &WardrobeService{
		catalog:     catalog,
		registry:    registry,
		scene:       scene,
		policy:      policy,
		attachPoint: attachPoint,
		logger:      logger,
		attachments: make(map[string]domain.Attachment),
	}
}

// Wear puts garment id on the user's avatar, replacing whatever is
// worn. Selecting the no-garment entry behaves as Remove. A garment
// whose template is not (yet) loaded degrades to a removal: the user
// ends up unworn and no error is surfaced.
func (s *WardrobeService) Wear(ctx context.Context, garmentID, userID string) error {
	desc, ok := s.catalog.Get(garmentID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownGarment, garmentID)
	}
	if !desc.Wearable() {
		return s.Remove(ctx, userID)
	}

	if s.policy == domain.RewearPolicyKeep {
		s.mu.Lock()
		current, worn := s.attachments[userID]
		s.mu.Unlock()
		if worn && current.GarmentID == garmentID {
			return nil
		}
	}

	// Remove first so a failure later can never leave two instances.
	if err := s.Remove(ctx, userID); err != nil {
		return fmt.Errorf("remove before wear: %w", err)
	}

	tmpl, ok := s.registry.Get(garmentID)
	if !ok {
		s.logger.Warn().
			Str("garment", garmentID).
			Str("user", userID).
			Msg("template not loaded, user stays unworn")
		return nil
	}

	instanceID, err := s.scene.Instantiate(ctx, tmpl, desc.Transform.Pose())
	if err != nil {
		return fmt.Errorf("instantiate %q: %w", garmentID, err)
	}
	if err := s.scene.AttachToUser(ctx, instanceID, userID, s.attachPoint); err != nil {
		// The instance exists but is not tracked yet; destroy it so the
		// failed attach leaves nothing orphaned in the scene.
		if derr := s.scene.Destroy(ctx, instanceID); derr != nil {
			s.logger.Error().Err(derr).
				Str("instance", instanceID).
				Msg("destroy after failed attach")
		}
		return fmt.Errorf("attach %q to %q: %w", garmentID, userID, err)
	}

	s.mu.Lock()
	s.attachments[userID] = domain.Attachment{
		UserID:     userID,
		GarmentID:  garmentID,
		InstanceID: instanceID,
	}
	s.mu.Unlock()
	return nil
}

// Remove destroys the user's worn instance, if any. Removing from an
// unworn user is a no-op and issues no destroy call.
func (s *WardrobeService) Remove(ctx context.Context, userID string) error {
	s.mu.Lock()
	att, ok := s.attachments[userID]
	if ok {
		delete(s.attachments, userID)
	}
	s.mu.Unlock()
	if !ok {
		return nil
	}

	if err := s.scene.Destroy(ctx, att.InstanceID); err != nil {
		return fmt.Errorf("destroy instance %q: %w", att.InstanceID, err)
	}
	return nil
}

// Worn returns the user's current attachment, if any.
func (s *WardrobeService) Worn(userID string) (domain.Attachment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	att, ok := s.attachments[userID]
	return att, ok
}

// Attachments returns a snapshot of all live attachments, ordered by
// user id.
func (s *WardrobeService) Attachments() []domain.Attachment {
	s.mu.Lock()
	out := make([]domain.Attachment, 0, len(s.attachments))
	for _, att := range s.attachments {
		out = append(out, att)
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out
}
