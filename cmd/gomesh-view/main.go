package main

import (
	"fmt"
	"math"
	"os"
	"sync/atomic"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gomesh/pkg/editor"
	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/mesh"
	"github.com/philipparndt/gomesh/pkg/primitive"
	"github.com/philipparndt/gomesh/pkg/scene"
	"github.com/philipparndt/gomesh/pkg/stl"
	"github.com/philipparndt/gomesh/pkg/watcher"
)

// App wires the editing engine to the raylib window: it feeds pointer
// and keyboard samples to the editor and redraws from mesh snapshots
// every frame.
type App struct {
	scene  *scene.Scene
	editor *editor.Editor
	object scene.ObjectID

	camera         rl.Camera3D
	cameraDistance float32
	cameraAngleX   float32
	cameraAngleY   float32
	cameraTarget   rl.Vector3

	sourceFile  string
	fileWatcher *watcher.FileWatcher
	needsReload atomic.Bool
}

// pointerCapture implements editor.PointerCapture on top of raylib's
// cursor lock, giving transforms unbounded relative movement
type pointerCapture struct{}

func (pointerCapture) Acquire() { rl.DisableCursor() }
func (pointerCapture) Release() { rl.EnableCursor() }

func main() {
	sc := scene.New()

	var m *mesh.Mesh
	sourceFile := ""
	if len(os.Args) > 1 {
		sourceFile = os.Args[1]
		imported, err := stl.Import(sourceFile)
		if err != nil {
			fmt.Printf("Error loading %s: %v\n", sourceFile, err)
			os.Exit(1)
		}
		m = sc.AdoptMesh(imported)
	} else {
		m = sc.AdoptMesh(primitive.Cube("cube", 2))
	}
	objectID := sc.AddObject(m.Name, m.ID)

	app := &App{
		scene:      sc,
		editor:     editor.New(sc),
		object:     objectID,
		sourceFile: sourceFile,
	}
	app.editor.Capture = pointerCapture{}
	if opts, err := editor.LoadOptions("gomesh.yaml"); err == nil {
		app.editor.Options = opts
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(1400, 900, "gomesh")
	rl.SetTargetFPS(60)
	defer rl.CloseWindow()

	bbox := m.BoundingBox()
	size := bbox.Size()
	maxDim := math.Max(size.X, math.Max(size.Y, size.Z))
	if maxDim == 0 {
		maxDim = 2
	}
	center := bbox.Center()
	app.cameraTarget = rl.Vector3{X: float32(center.X), Y: float32(center.Y), Z: float32(center.Z)}
	app.cameraDistance = float32(maxDim * 2.5)
	app.cameraAngleX = 0.3
	app.cameraAngleY = 0.3
	app.camera = rl.Camera3D{
		Position:   rl.Vector3{Z: app.cameraDistance},
		Target:     app.cameraTarget,
		Up:         rl.Vector3{Y: 1},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}

	if sourceFile != "" {
		fw, err := watcher.New(sourceFile, 300*time.Millisecond, func(string) {
			app.needsReload.Store(true)
		})
		if err != nil {
			fmt.Printf("Warning: file watching unavailable: %v\n", err)
		} else {
			fw.Start()
			app.fileWatcher = fw
			defer app.fileWatcher.Close()
		}
	}

	for !rl.WindowShouldClose() {
		if app.needsReload.CompareAndSwap(true, false) {
			app.reload()
		}

		app.updateCamera()
		app.updateView()
		app.handleInput()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))
		rl.BeginMode3D(app.camera)
		app.drawMesh()
		rl.EndMode3D()
		app.drawUI()
		rl.EndDrawing()
	}
}

// reload re-imports the source file, replacing the edit target's mesh
func (app *App) reload() {
	imported, err := stl.Import(app.sourceFile)
	if err != nil {
		fmt.Printf("Reload failed: %v\n", err)
		return
	}
	m := app.scene.AdoptMesh(imported)
	app.scene.RemoveObject(app.object)
	app.object = app.scene.AddObject(m.Name, m.ID)
	app.editor.Selection = editor.NewSelection()
	fmt.Printf("Reloaded %s\n", app.sourceFile)
}

// updateCamera orbits with the right mouse button and zooms with the
// wheel; the left button belongs to the editor
func (app *App) updateCamera() {
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		app.cameraAngleY += delta.X * 0.01
		app.cameraAngleX -= delta.Y * 0.01
		if app.cameraAngleX > 1.5 {
			app.cameraAngleX = 1.5
		}
		if app.cameraAngleX < -1.5 {
			app.cameraAngleX = -1.5
		}
	}
	wheel := rl.GetMouseWheelMove()
	if wheel != 0 {
		app.cameraDistance *= (1.0 - wheel*0.03)
		if app.cameraDistance < 0.5 {
			app.cameraDistance = 0.5
		}
	}

	cosX := float32(math.Cos(float64(app.cameraAngleX)))
	app.camera.Position = rl.Vector3{
		X: app.cameraTarget.X + app.cameraDistance*cosX*float32(math.Sin(float64(app.cameraAngleY))),
		Y: app.cameraTarget.Y + app.cameraDistance*float32(math.Sin(float64(app.cameraAngleX))),
		Z: app.cameraTarget.Z + app.cameraDistance*cosX*float32(math.Cos(float64(app.cameraAngleY))),
	}
	app.camera.Target = app.cameraTarget
}

// updateView republishes the camera basis and pick ray to the editor
func (app *App) updateView() {
	forward := geometry.NewVector3(
		float64(app.camera.Target.X-app.camera.Position.X),
		float64(app.camera.Target.Y-app.camera.Position.Y),
		float64(app.camera.Target.Z-app.camera.Position.Z),
	).Normalize()
	worldUp := geometry.NewVector3(0, 1, 0)
	right := forward.Cross(worldUp).Normalize()
	up := right.Cross(forward).Normalize()

	camera := app.camera
	app.editor.View = editor.ViewContext{
		Right:          right,
		Up:             up,
		Forward:        forward,
		CameraDistance: float64(app.cameraDistance),
		PickRay: func(x, y float64) geometry.Ray {
			ray := rl.GetMouseRay(rl.Vector2{X: float32(x), Y: float32(y)}, camera)
			return geometry.NewRay(
				geometry.NewVector3(float64(ray.Position.X), float64(ray.Position.Y), float64(ray.Position.Z)),
				geometry.NewVector3(float64(ray.Direction.X), float64(ray.Direction.Y), float64(ray.Direction.Z)),
			)
		},
	}
}

// handleInput translates raylib state into editor events. While a tool
// is active it owns the pointer and the reserved keys; otherwise input
// drives mode switches and picking.
func (app *App) handleInput() {
	e := app.editor
	m, ok := app.scene.Mesh(e.Selection.TargetMesh())
	if !ok {
		m, _ = app.scene.ObjectMesh(app.object)
	}

	if e.ActiveTool() != editor.ToolNone {
		if rl.IsKeyPressed(rl.KeyEscape) {
			e.HandleEvent(editor.Event{Button: editor.ButtonNone, Key: "Escape"})
			return
		}
		for key, name := range map[int32]string{rl.KeyX: "x", rl.KeyY: "y", rl.KeyZ: "z"} {
			if rl.IsKeyPressed(key) {
				e.HandleEvent(editor.Event{Button: editor.ButtonNone, Key: name})
			}
		}
		if rl.IsKeyPressed(rl.KeyKpAdd) || rl.IsKeyPressed(rl.KeyEqual) {
			e.HandleEvent(editor.Event{Button: editor.ButtonNone, Key: "+"})
		}
		if rl.IsKeyPressed(rl.KeyMinus) {
			e.HandleEvent(editor.Event{Button: editor.ButtonNone, Key: "-"})
		}
		if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			e.HandleEvent(editor.Event{Button: editor.ButtonPrimary})
			return
		}
		delta := rl.GetMouseDelta()
		pos := rl.GetMousePosition()
		e.HandleEvent(editor.Event{
			ClientX:   float64(pos.X),
			ClientY:   float64(pos.Y),
			MovementX: float64(delta.X),
			MovementY: float64(delta.Y),
			Button:    editor.ButtonNone,
			CtrlKey:   rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl),
			ShiftKey:  rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift),
		})
		return
	}

	// Mode and granularity switches.
	if rl.IsKeyPressed(rl.KeyTab) {
		if e.Selection.Granularity() == editor.GranularityObject {
			if om, ok := app.scene.ObjectMesh(app.object); ok {
				e.Selection.EnterEdit(om.ID)
			}
		} else {
			e.Selection.ExitEdit()
		}
	}
	if m != nil && e.Selection.Granularity() == editor.GranularityEdit {
		if rl.IsKeyPressed(rl.KeyOne) {
			e.Selection.SetMode(m, editor.ModeVertex)
		}
		if rl.IsKeyPressed(rl.KeyTwo) {
			e.Selection.SetMode(m, editor.ModeEdge)
		}
		if rl.IsKeyPressed(rl.KeyThree) {
			e.Selection.SetMode(m, editor.ModeFace)
		}
	}

	// Tool starts.
	if rl.IsKeyPressed(rl.KeyG) {
		e.StartTranslate()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		e.StartRotate()
	}
	if rl.IsKeyPressed(rl.KeyS) {
		e.StartScale()
	}
	if rl.IsKeyPressed(rl.KeyL) {
		e.StartLoopCut()
	}

	// Picking.
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.pick(m)
	}

	e.Selection.SyncFlags(app.scene)
}

// pick selects the entity under the cursor for the current mode
func (app *App) pick(m *mesh.Mesh) {
	e := app.editor
	if e.Selection.Granularity() == editor.GranularityObject {
		additive := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
		if !additive {
			for _, o := range app.scene.Objects() {
				e.Selection.SelectObject(o.ID, false)
			}
		}
		e.Selection.SelectObject(app.object, true)
		return
	}
	if m == nil || e.Selection.Mode() != editor.ModeVertex {
		return
	}

	additive := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
	if !additive {
		e.Selection.ClearComponents()
	}

	mousePos := rl.GetMousePosition()
	bestDist := float32(12.0)
	var bestID mesh.VertexID
	found := false
	for _, v := range m.Vertices() {
		screen := rl.GetWorldToScreen(rl.Vector3{
			X: float32(v.Position.X),
			Y: float32(v.Position.Y),
			Z: float32(v.Position.Z),
		}, app.camera)
		dist := rl.Vector2Distance(mousePos, screen)
		if dist < bestDist {
			bestDist = dist
			bestID = v.ID
			found = true
		}
	}
	if found {
		e.Selection.SelectVertex(bestID, true)
	}
}

// drawMesh renders the wireframe, vertices and loop cut preview from
// the current snapshot
func (app *App) drawMesh() {
	m, ok := app.scene.ObjectMesh(app.object)
	if !ok {
		return
	}
	obj, _ := app.scene.Object(app.object)
	snapshot := m.Snapshot()

	positions := make(map[mesh.VertexID]rl.Vector3, len(snapshot.Vertices))
	for _, v := range snapshot.Vertices {
		p := obj.Transform.Apply(v.Position)
		positions[v.ID] = rl.Vector3{X: float32(p.X), Y: float32(p.Y), Z: float32(p.Z)}
	}

	for _, face := range snapshot.Faces {
		if len(face.Vertices) < 3 {
			continue
		}
		fill := rl.NewColor(55, 65, 85, 255)
		if face.Selected {
			fill = rl.NewColor(160, 110, 40, 255)
		}
		v0 := positions[face.Vertices[0]]
		for i := 1; i+1 < len(face.Vertices); i++ {
			a := positions[face.Vertices[i]]
			b := positions[face.Vertices[i+1]]
			rl.DrawTriangle3D(v0, a, b, fill)
			rl.DrawTriangle3D(v0, b, a, fill)
		}
	}

	for _, edge := range snapshot.Edges {
		color := rl.NewColor(130, 140, 160, 255)
		if edge.Selected {
			color = rl.Orange
		}
		rl.DrawLine3D(positions[edge.A], positions[edge.B], color)
	}

	if app.editor.Selection.Granularity() == editor.GranularityEdit {
		bbox := m.BoundingBox()
		markerSize := float32(bbox.Diagonal()) * 0.008
		if markerSize == 0 {
			markerSize = 0.02
		}
		for _, v := range snapshot.Vertices {
			color := rl.Gray
			if v.Selected {
				color = rl.Orange
			}
			rl.DrawSphere(positions[v.ID], markerSize, color)
		}
	}

	for _, line := range app.editor.LoopCutPreview() {
		rl.DrawLine3D(
			rl.Vector3{X: float32(line[0].X), Y: float32(line[0].Y), Z: float32(line[0].Z)},
			rl.Vector3{X: float32(line[1].X), Y: float32(line[1].Y), Z: float32(line[1].Z)},
			rl.Yellow,
		)
	}
}

// drawUI prints the mode line
func (app *App) drawUI() {
	e := app.editor
	granularity := "object"
	if e.Selection.Granularity() == editor.GranularityEdit {
		switch e.Selection.Mode() {
		case editor.ModeVertex:
			granularity = "edit/vertex"
		case editor.ModeEdge:
			granularity = "edit/edge"
		case editor.ModeFace:
			granularity = "edit/face"
		}
	}
	text := fmt.Sprintf("[%s]  Tab: mode  1/2/3: component  G/R/S: transform  L: loop cut", granularity)
	rl.DrawText(text, 10, 10, 18, rl.RayWhite)
}
