package editor

import (
	"math"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/mesh"
	"github.com/philipparndt/gomesh/pkg/scene"
)

// TransformKind selects what the accumulated delta means
type TransformKind int

const (
	TransformTranslate TransformKind = iota
	TransformRotate
	TransformScale
)

// TargetSet is the tagged union of entity sets a transform can act on:
// mesh vertices, scene objects, or the per-corner UVs of faces. Every
// consumption site type-switches over the three variants.
type TargetSet interface {
	isTargetSet()
}

// VertexTargets transforms vertex positions of one mesh
type VertexTargets struct {
	Mesh *mesh.Mesh
	IDs  []mesh.VertexID
}

// ObjectTargets transforms whole-object placements in a scene
type ObjectTargets struct {
	Scene *scene.Scene
	IDs   []scene.ObjectID
}

// UVTargets transforms the per-corner UVs of the given faces
type UVTargets struct {
	Mesh  *mesh.Mesh
	Faces []mesh.FaceID
}

func (VertexTargets) isTargetSet() {}
func (ObjectTargets) isTargetSet() {}
func (UVTargets) isTargetSet()     {}

// TransformOp is one in-flight translate/rotate/scale operation. It
// snapshots every affected entity on start and recomputes each entity
// from that snapshot plus the accumulated delta on every update, so
// updates are idempotent and error never compounds across samples.
type TransformOp struct {
	kind    TransformKind
	axis    AxisLock
	targets TargetSet
	view    ViewContext
	opts    Options
	capture PointerCapture

	pivot   geometry.Vector3
	uvPivot geometry.Vector2

	origPositions map[mesh.VertexID]geometry.Vector3
	origObjects   map[scene.ObjectID]geometry.Transform
	origUVs       map[mesh.FaceID][]geometry.Vector2

	translation geometry.Vector3
	uvDelta     geometry.Vector2
	angle       float64
	factor      float64
	snap        bool

	active bool
}

// StartTransform snapshots the target set and begins an operation.
// An empty target set yields no operation. The caller guards against
// concurrent operations; the Editor does this via its tool state.
func StartTransform(kind TransformKind, targets TargetSet, view ViewContext, opts Options, capture PointerCapture) (*TransformOp, bool) {
	if capture == nil {
		capture = nopCapture{}
	}
	op := &TransformOp{
		kind:    kind,
		targets: targets,
		view:    view,
		opts:    opts,
		capture: capture,
		factor:  1,
	}

	switch t := targets.(type) {
	case VertexTargets:
		if t.Mesh == nil || len(t.IDs) == 0 {
			return nil, false
		}
		op.origPositions = make(map[mesh.VertexID]geometry.Vector3, len(t.IDs))
		var sum geometry.Vector3
		for _, id := range t.IDs {
			v, ok := t.Mesh.Vertex(id)
			if !ok {
				continue
			}
			op.origPositions[id] = v.Position
			sum = sum.Add(v.Position)
		}
		if len(op.origPositions) == 0 {
			return nil, false
		}
		op.pivot = sum.Mul(1.0 / float64(len(op.origPositions)))

	case ObjectTargets:
		if t.Scene == nil || len(t.IDs) == 0 {
			return nil, false
		}
		op.origObjects = make(map[scene.ObjectID]geometry.Transform, len(t.IDs))
		var sum geometry.Vector3
		for _, id := range t.IDs {
			o, ok := t.Scene.Object(id)
			if !ok {
				continue
			}
			op.origObjects[id] = o.Transform
			sum = sum.Add(o.Transform.Position)
		}
		if len(op.origObjects) == 0 {
			return nil, false
		}
		op.pivot = sum.Mul(1.0 / float64(len(op.origObjects)))

	case UVTargets:
		if t.Mesh == nil || len(t.Faces) == 0 {
			return nil, false
		}
		op.origUVs = make(map[mesh.FaceID][]geometry.Vector2, len(t.Faces))
		// Distinct-entry mean: corners sharing the same UV value count
		// once, so seams do not skew the pivot.
		distinct := make(map[geometry.Vector2]bool)
		var sum geometry.Vector2
		for _, id := range t.Faces {
			f, ok := t.Mesh.Face(id)
			if !ok || f.LoopUVs == nil {
				continue
			}
			op.origUVs[id] = append([]geometry.Vector2(nil), f.LoopUVs...)
			for _, uv := range f.LoopUVs {
				if !distinct[uv] {
					distinct[uv] = true
					sum = sum.Add(uv)
				}
			}
		}
		if len(op.origUVs) == 0 || len(distinct) == 0 {
			return nil, false
		}
		op.uvPivot = sum.Mul(1.0 / float64(len(distinct)))

	default:
		return nil, false
	}

	op.active = true
	op.capture.Acquire()
	return op, true
}

// Active reports whether the operation is still in flight
func (op *TransformOp) Active() bool { return op.active }

// SetAxisLock changes the axis constraint; the next update reapplies
// the accumulated delta under the new lock
func (op *TransformOp) SetAxisLock(axis AxisLock) {
	if !op.active {
		return
	}
	op.axis = axis
	op.apply()
}

// SetSnap toggles delta quantization. Snapping rounds the accumulated
// delta before application, never the per-entity results, so relative
// offsets inside the selection survive.
func (op *TransformOp) SetSnap(snap bool) {
	if !op.active {
		return
	}
	op.snap = snap
	op.apply()
}

// Update folds one input sample into the accumulator and recomputes
// every target from its snapshot
func (op *TransformOp) Update(ev Event) {
	if !op.active {
		return
	}
	switch op.kind {
	case TransformTranslate:
		if _, ok := op.targets.(UVTargets); ok {
			op.uvDelta = op.uvDelta.Add(geometry.NewVector2(
				ev.MovementX*op.opts.UVSensitivity,
				-ev.MovementY*op.opts.UVSensitivity,
			))
		} else {
			scale := op.view.CameraDistance * op.opts.TranslateSensitivity
			step := op.view.Right.Mul(ev.MovementX * scale).
				Add(op.view.Up.Mul(-ev.MovementY * scale))
			op.translation = op.translation.Add(step)
		}
	case TransformRotate:
		op.angle += (ev.MovementX + ev.MovementY) * op.opts.RotateSensitivity
	case TransformScale:
		op.factor += (ev.MovementX + ev.MovementY) * op.opts.ScaleSensitivity
		if op.factor < op.opts.ScaleFloor {
			op.factor = op.opts.ScaleFloor
		}
	}
	op.apply()
}

// Commit finalizes the current values in the authoritative stores and
// ends the operation
func (op *TransformOp) Commit() {
	if !op.active {
		return
	}
	op.apply()
	op.finish()
}

// Cancel restores every target to its pre-operation value and ends the
// operation; there is no partial-apply window
func (op *TransformOp) Cancel() {
	if !op.active {
		return
	}
	switch t := op.targets.(type) {
	case VertexTargets:
		t.Mesh.Edit(func(d *mesh.Draft) {
			for id, pos := range op.origPositions {
				d.SetPosition(id, pos)
			}
		})
	case ObjectTargets:
		for id, tr := range op.origObjects {
			t.Scene.SetTransform(id, tr)
		}
	case UVTargets:
		t.Mesh.Edit(func(d *mesh.Draft) {
			for id, uvs := range op.origUVs {
				d.SetLoopUVs(id, uvs)
			}
		})
	}
	op.finish()
}

func (op *TransformOp) finish() {
	op.active = false
	op.capture.Release()
}

// apply recomputes every entity from the start-of-operation snapshot
// plus the accumulated (masked, optionally snapped) delta
func (op *TransformOp) apply() {
	switch t := op.targets.(type) {
	case VertexTargets:
		t.Mesh.Edit(func(d *mesh.Draft) {
			for id, orig := range op.origPositions {
				d.SetPosition(id, op.transformPoint(orig))
			}
		})
	case ObjectTargets:
		for id, orig := range op.origObjects {
			t.Scene.SetTransform(id, op.transformObject(orig))
		}
	case UVTargets:
		t.Mesh.Edit(func(d *mesh.Draft) {
			for id, origUVs := range op.origUVs {
				uvs := make([]geometry.Vector2, len(origUVs))
				for i, uv := range origUVs {
					uvs[i] = op.transformUV(uv)
				}
				d.SetLoopUVs(id, uvs)
			}
		})
	}
}

func (op *TransformOp) transformPoint(orig geometry.Vector3) geometry.Vector3 {
	switch op.kind {
	case TransformTranslate:
		return orig.Add(op.maskedTranslation())
	case TransformRotate:
		axis := op.axis.Axis(op.view.Forward).Normalize()
		return op.pivot.Add(orig.Sub(op.pivot).RotateAroundAxis(axis, op.snappedAngle()))
	case TransformScale:
		return op.pivot.Add(orig.Sub(op.pivot).MulVec(op.scaleVector()))
	}
	return orig
}

func (op *TransformOp) transformObject(orig geometry.Transform) geometry.Transform {
	out := orig
	switch op.kind {
	case TransformTranslate:
		out.Position = orig.Position.Add(op.maskedTranslation())
	case TransformRotate:
		axis := op.axis.Axis(op.view.Forward).Normalize()
		angle := op.snappedAngle()
		out.Position = op.pivot.Add(orig.Position.Sub(op.pivot).RotateAroundAxis(axis, angle))
		out.Rotation = orig.Rotation.Add(axis.Mul(angle))
	case TransformScale:
		s := op.scaleVector()
		out.Position = op.pivot.Add(orig.Position.Sub(op.pivot).MulVec(s))
		out.Scale = orig.Scale.MulVec(s)
	}
	return out
}

func (op *TransformOp) transformUV(orig geometry.Vector2) geometry.Vector2 {
	switch op.kind {
	case TransformTranslate:
		d := op.uvDelta
		if op.snap {
			d = geometry.NewVector2(
				quantize(d.X, op.opts.SnapTranslate),
				quantize(d.Y, op.opts.SnapTranslate),
			)
		}
		switch op.axis {
		case AxisX:
			d.Y = 0
		case AxisY:
			d.X = 0
		}
		return orig.Add(d)
	case TransformRotate:
		return op.uvPivot.Add(orig.Sub(op.uvPivot).Rotate(op.snappedAngle()))
	case TransformScale:
		f := op.snappedFactor()
		s := geometry.NewVector2(f, f)
		switch op.axis {
		case AxisX:
			s.Y = 1
		case AxisY:
			s.X = 1
		}
		return op.uvPivot.Add(orig.Sub(op.uvPivot).MulVec(s))
	}
	return orig
}

func (op *TransformOp) maskedTranslation() geometry.Vector3 {
	d := op.translation
	if op.snap {
		d = geometry.NewVector3(
			quantize(d.X, op.opts.SnapTranslate),
			quantize(d.Y, op.opts.SnapTranslate),
			quantize(d.Z, op.opts.SnapTranslate),
		)
	}
	return d.MulVec(op.axis.Mask())
}

func (op *TransformOp) snappedAngle() float64 {
	if !op.snap {
		return op.angle
	}
	return quantize(op.angle, op.opts.SnapRotateDegrees*math.Pi/180)
}

func (op *TransformOp) snappedFactor() float64 {
	f := op.factor
	if op.snap {
		f = quantize(f, op.opts.SnapScale)
	}
	if f < op.opts.ScaleFloor {
		f = op.opts.ScaleFloor
	}
	return f
}

func (op *TransformOp) scaleVector() geometry.Vector3 {
	f := op.snappedFactor()
	ones := geometry.NewVector3(1, 1, 1)
	return ones.Add(op.axis.Mask().Mul(f - 1))
}

func quantize(value, step float64) float64 {
	if step <= 0 {
		return value
	}
	return math.Round(value/step) * step
}
