package editor

import "github.com/philipparndt/gomesh/pkg/geometry"

// Event is one sample of the input collaborator's ordered stream.
// Events are processed strictly in arrival order; each one completes
// synchronously inside the handler that received it.
type Event struct {
	ClientX   float64
	ClientY   float64
	MovementX float64
	MovementY float64
	Button    int
	ShiftKey  bool
	CtrlKey   bool
	AltKey    bool
	MetaKey   bool
	Key       string
}

// Mouse buttons as delivered by the input collaborator
const (
	ButtonNone      = -1
	ButtonPrimary   = 0
	ButtonSecondary = 2
)

// PointerCapture abstracts the platform's pointer-capture mechanism as
// an acquire/release pair scoped to one operation's lifetime. Tools
// that need unbounded relative movement acquire it on start and must
// release it on commit or cancel.
type PointerCapture interface {
	Acquire()
	Release()
}

// nopCapture is used when no capture mechanism is wired in
type nopCapture struct{}

func (nopCapture) Acquire() {}
func (nopCapture) Release() {}

// ViewContext carries the camera-dependent quantities a transform
// needs to map screen movement into the world: the basis of the view
// plane, the viewing direction, the distance to the pivot, and a
// picker turning screen coordinates into world rays.
type ViewContext struct {
	Right          geometry.Vector3
	Up             geometry.Vector3
	Forward        geometry.Vector3
	CameraDistance float64
	PickRay        func(x, y float64) geometry.Ray
}

// DefaultViewContext is an axis-aligned front view, mostly useful in
// tests and headless runs
func DefaultViewContext() ViewContext {
	return ViewContext{
		Right:          geometry.NewVector3(1, 0, 0),
		Up:             geometry.NewVector3(0, 1, 0),
		Forward:        geometry.NewVector3(0, 0, -1),
		CameraDistance: 1,
	}
}
