package domain

import "fmt"

// Template is a preloaded, ready-to-instantiate model handle. Only ids
// whose bundle loaded successfully have one; everything else stays
// non-instantiable.
type Template struct {
	GarmentID string
	AssetURL  string
	Node      string
}

// Attachment binds one live garment instance to one user's avatar.
// The instance handle is exclusively owned by whoever recorded the
// attachment and must be destroyed on every path that drops it.
type Attachment struct {
	UserID     string
	GarmentID  string
	InstanceID string
}

// RewearPolicy decides what selecting an already-worn garment does.
type RewearPolicy int

const (
	// RewearPolicyReplace destroys and recreates the instance even when
	// the same garment is re-selected.
	RewearPolicyReplace RewearPolicy = iota
	// RewearPolicyKeep leaves the existing instance untouched when the
	// same garment is re-selected.
	RewearPolicyKeep
)

func (p RewearPolicy) String() string {
	switch p {
	case RewearPolicyReplace:
		return "replace"
	case RewearPolicyKeep:
		return "keep"
	default:
		return fmt.Sprintf("RewearPolicy(%d)", int(p))
	}
}

// ParseRewearPolicy maps a configuration string onto a policy.
func ParseRewearPolicy(s string) (RewearPolicy, error) {
	switch s {
	case "replace":
		return RewearPolicyReplace, nil
	case "keep":
		return RewearPolicyKeep, nil
	default:
		return RewearPolicyReplace, fmt.Errorf("unknown rewear policy %q", s)
	}
}
