// Package editor implements the interactive editing engine: selection
// state, the accumulator-driven transform operations, and the loop cut
// operator. It is single-threaded and event-driven; every input event
// is processed to completion before the next one is looked at, and the
// core never fails across its public boundary; degenerate input
// degrades to a no-op.
package editor

import (
	"strings"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/mesh"
	"github.com/philipparndt/gomesh/pkg/scene"
)

const slideSensitivity = 0.005

// Editor routes input events to the single active tool and resolves
// selection state into the entity sets the tools operate on
type Editor struct {
	Scene     *scene.Scene
	Selection *Selection
	Options   Options
	View      ViewContext
	Capture   PointerCapture

	tool toolState
}

// New creates an editor over a scene with default options
func New(s *scene.Scene) *Editor {
	return &Editor{
		Scene:     s,
		Selection: NewSelection(),
		Options:   DefaultOptions(),
		View:      DefaultViewContext(),
		Capture:   nopCapture{},
	}
}

// ActiveTool returns the running tool kind, or ToolNone
func (e *Editor) ActiveTool() ToolKind {
	if !e.tool.active {
		return ToolNone
	}
	return e.tool.kind
}

// StartTranslate begins a translate over the current selection
func (e *Editor) StartTranslate() bool { return e.startTransform(TransformTranslate, ToolTranslate) }

// StartRotate begins a rotate over the current selection
func (e *Editor) StartRotate() bool { return e.startTransform(TransformRotate, ToolRotate) }

// StartScale begins a scale over the current selection
func (e *Editor) StartScale() bool { return e.startTransform(TransformScale, ToolScale) }

func (e *Editor) startTransform(kind TransformKind, tool ToolKind) bool {
	if e.tool.active {
		return false // One operation at a time
	}
	targets, ok := e.resolveTargets()
	if !ok {
		return false
	}
	op, ok := StartTransform(kind, targets, e.View, e.Options, e.Capture)
	if !ok {
		return false
	}
	e.tool = toolState{kind: tool, active: true, data: transformData{op: op}}
	return true
}

// StartUVTransform begins a transform over the per-corner UVs of the
// selected faces. Requires edit granularity.
func (e *Editor) StartUVTransform(kind TransformKind) bool {
	if e.tool.active || e.Selection.Granularity() != GranularityEdit {
		return false
	}
	m, ok := e.Scene.Mesh(e.Selection.TargetMesh())
	if !ok {
		return false
	}
	targets := UVTargets{Mesh: m, Faces: e.Selection.SelectedFaces()}
	op, started := StartTransform(kind, targets, e.View, e.Options, e.Capture)
	if !started {
		return false
	}
	tool := ToolTranslate
	switch kind {
	case TransformRotate:
		tool = ToolRotate
	case TransformScale:
		tool = ToolScale
	}
	e.tool = toolState{kind: tool, active: true, data: transformData{op: op}}
	return true
}

// StartLoopCut begins the loop cut operator on the edit-target mesh,
// using the transform of the first object placing that mesh
func (e *Editor) StartLoopCut() bool {
	if e.tool.active || e.Selection.Granularity() != GranularityEdit {
		return false
	}
	m, ok := e.Scene.Mesh(e.Selection.TargetMesh())
	if !ok {
		return false
	}
	transform := geometry.IdentityTransform()
	for _, o := range e.Scene.Objects() {
		if o.MeshID == m.ID {
			transform = o.Transform
			break
		}
	}
	lc := StartLoopCut(m, transform, e.Options)
	e.tool = toolState{kind: ToolLoopCut, active: true, data: loopCutData{op: lc}}
	return true
}

// resolveTargets maps the selection onto a transform target set: the
// selected objects in object granularity, or the vertex set implied by
// the component selection while editing
func (e *Editor) resolveTargets() (TargetSet, bool) {
	switch e.Selection.Granularity() {
	case GranularityObject:
		return ObjectTargets{Scene: e.Scene, IDs: e.Selection.SelectedObjects()}, true
	case GranularityEdit:
		m, ok := e.Scene.Mesh(e.Selection.TargetMesh())
		if !ok {
			return nil, false
		}
		return VertexTargets{Mesh: m, IDs: e.affectedVertices(m)}, true
	}
	return nil, false
}

// affectedVertices flattens the active component selection to vertices
func (e *Editor) affectedVertices(m *mesh.Mesh) []mesh.VertexID {
	set := make(map[mesh.VertexID]bool)
	switch e.Selection.Mode() {
	case ModeVertex:
		for _, id := range e.Selection.SelectedVertices() {
			set[id] = true
		}
	case ModeEdge:
		for _, id := range e.Selection.SelectedEdges() {
			if edge, ok := m.Edge(id); ok {
				set[edge.A] = true
				set[edge.B] = true
			}
		}
	case ModeFace:
		for _, id := range e.Selection.SelectedFaces() {
			if f, ok := m.Face(id); ok {
				for _, vid := range f.Vertices {
					set[vid] = true
				}
			}
		}
	}
	out := make([]mesh.VertexID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}

// HandleEvent feeds one input sample to the active tool. While a tool
// runs it exclusively owns pointer movement, the primary button, the
// axis letters and Escape; commit and cancel complete synchronously
// inside this call. Without an active tool the event is ignored.
func (e *Editor) HandleEvent(ev Event) {
	if !e.tool.active {
		return
	}

	switch data := e.tool.data.(type) {
	case transformData:
		e.handleTransformEvent(data.op, ev)
	case loopCutData:
		e.handleLoopCutEvent(data.op, ev)
	}
}

func (e *Editor) handleTransformEvent(op *TransformOp, ev Event) {
	switch {
	case ev.Key == "Escape":
		op.Cancel()
		e.clearTool()
	case isAxisKey(ev.Key):
		op.SetAxisLock(toggleAxis(op.axis, axisForKey(ev.Key)))
	case ev.Button == ButtonPrimary:
		op.Commit()
		e.clearTool()
	default:
		op.SetSnap(ev.CtrlKey)
		op.Update(ev)
	}
}

func (e *Editor) handleLoopCutEvent(lc *LoopCut, ev Event) {
	switch {
	case ev.Key == "Escape":
		lc.Cancel()
		e.clearTool()
	case ev.Key == "+" || ev.Key == "=":
		lc.AdjustSegments(1)
	case ev.Key == "-":
		lc.AdjustSegments(-1)
	case ev.Button == ButtonPrimary:
		switch lc.Phase() {
		case LoopCutChoose:
			if !lc.ConfirmChoose() {
				// Nothing cuttable under the pointer; abort without
				// touching the mesh.
				lc.Cancel()
				e.clearTool()
			}
		case LoopCutSlide:
			lc.Commit()
			e.clearTool()
		}
	default:
		switch lc.Phase() {
		case LoopCutChoose:
			if e.View.PickRay != nil {
				lc.Hover(e.View.PickRay(ev.ClientX, ev.ClientY))
			}
		case LoopCutSlide:
			lc.SetSlide(lc.slide + ev.MovementX*slideSensitivity)
		}
	}
}

// LoopCutPreview returns the cross lines of an active loop cut for
// the renderer to overlay, or nil when no loop cut is running
func (e *Editor) LoopCutPreview() [][2]geometry.Vector3 {
	if !e.tool.active {
		return nil
	}
	if data, ok := e.tool.data.(loopCutData); ok {
		return data.op.Preview()
	}
	return nil
}

func (e *Editor) clearTool() {
	e.tool = toolState{}
}

func isAxisKey(key string) bool {
	switch strings.ToLower(key) {
	case "x", "y", "z":
		return true
	}
	return false
}

func axisForKey(key string) AxisLock {
	switch strings.ToLower(key) {
	case "x":
		return AxisX
	case "y":
		return AxisY
	case "z":
		return AxisZ
	}
	return AxisNone
}

// toggleAxis re-pressing the locked axis letter releases the lock
func toggleAxis(current, pressed AxisLock) AxisLock {
	if current == pressed {
		return AxisNone
	}
	return pressed
}
