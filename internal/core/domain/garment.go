package domain

import "github.com/go-gl/mathgl/mgl32"

// ModelRef points at a loadable model bundle. The zero value means
// "no garment" and is a valid catalog entry (the bare-avatar option),
// not an error state.
type ModelRef struct {
	ref string
}

// NewModelRef builds a reference from a bundle path. An empty path
// yields the no-garment reference.
func NewModelRef(ref string) ModelRef {
	return ModelRef{ref: ref}
}

// IsNone reports whether the reference names no model bundle.
func (r ModelRef) IsNone() bool {
	return r.ref == ""
}

func (r ModelRef) String() string {
	return r.ref
}

// Transform places a garment relative to its attachment anchor.
// Rotation is authored in degrees; Quat converts it for the engine.
type Transform struct {
	Position    mgl32.Vec3
	RotationDeg mgl32.Vec3
	Scale       mgl32.Vec3
}

// IdentityTransform returns the neutral placement (unit scale).
func IdentityTransform() Transform {
	return Transform{Scale: mgl32.Vec3{1, 1, 1}}
}

// Quat converts the authored Euler rotation (degrees, XYZ order) into
// the engine's quaternion representation.
func (t Transform) Quat() mgl32.Quat {
	return mgl32.AnglesToQuat(
		mgl32.DegToRad(t.RotationDeg.X()),
		mgl32.DegToRad(t.RotationDeg.Y()),
		mgl32.DegToRad(t.RotationDeg.Z()),
		mgl32.XYZ,
	)
}

// Pose is the resolved placement handed to the scene when an instance
// is created: position and scale pass through, rotation is already in
// quaternion form.
type Pose struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

// Pose resolves the transform into its engine-ready form.
func (t Transform) Pose() Pose {
	return Pose{
		Position: t.Position,
		Rotation: t.Quat(),
		Scale:    t.Scale,
	}
}

// GarmentDescriptor is one immutable catalog entry.
type GarmentDescriptor struct {
	ID        string
	Name      string
	Model     ModelRef
	Transform Transform
}

// Wearable reports whether selecting this garment creates an instance.
// The no-garment entry is selectable but only removes what is worn.
func (d GarmentDescriptor) Wearable() bool {
	return !d.Model.IsNone()
}
