package editor

import "github.com/philipparndt/gomesh/pkg/geometry"

// ToolKind identifies the active tool
type ToolKind int

const (
	ToolNone ToolKind = iota
	ToolTranslate
	ToolRotate
	ToolScale
	ToolLoopCut
)

// AxisLock constrains a transform to a single world axis
type AxisLock int

const (
	AxisNone AxisLock = iota
	AxisX
	AxisY
	AxisZ
)

// Mask returns the per-component multiplier for the lock: all ones
// when unlocked, the unit axis otherwise
func (a AxisLock) Mask() geometry.Vector3 {
	switch a {
	case AxisX:
		return geometry.NewVector3(1, 0, 0)
	case AxisY:
		return geometry.NewVector3(0, 1, 0)
	case AxisZ:
		return geometry.NewVector3(0, 0, 1)
	default:
		return geometry.NewVector3(1, 1, 1)
	}
}

// Axis returns the unit vector of the locked axis, or the fallback
// when no axis is locked
func (a AxisLock) Axis(fallback geometry.Vector3) geometry.Vector3 {
	switch a {
	case AxisX:
		return geometry.NewVector3(1, 0, 0)
	case AxisY:
		return geometry.NewVector3(0, 1, 0)
	case AxisZ:
		return geometry.NewVector3(0, 0, 1)
	default:
		return fallback
	}
}

// toolData is the tool-kind-dependent payload of the active operation.
// Every consumption site type-switches over the concrete variants.
type toolData interface {
	isToolData()
}

type transformData struct {
	op *TransformOp
}

type loopCutData struct {
	op *LoopCut
}

func (transformData) isToolData() {}
func (loopCutData) isToolData()   {}

// toolState tracks the single active tool. The active flag guards
// against concurrent starts; while set, the operation exclusively owns
// pointer movement and the reserved keys.
type toolState struct {
	kind   ToolKind
	active bool
	data   toolData
}
