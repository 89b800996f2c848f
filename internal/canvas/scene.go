package canvas

import (
	"sync"

	"github.com/google/uuid"

	"github.com/petar-djukic/satchel/pkg/types"
)

// historyLimit bounds the undo and redo stacks.
const historyLimit = 50

// Scene holds the canvas shapes and a bounded mutation history. Every
// mutating operation snapshots the prior state onto the undo stack and
// clears the redo stack.
type Scene struct {
	mu     sync.RWMutex
	shapes []Shape
	undo   [][]Shape
	redo   [][]Shape
}

// NewScene returns an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// Shapes returns a copy of the scene contents in z-order, bottom first.
func (sc *Scene) Shapes() []Shape {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return cloneShapes(sc.shapes)
}

// AddShape appends a shape on top of the stack.
// An empty ID is assigned one.
func (sc *Scene) AddShape(shape Shape) Shape {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if shape.ID == "" {
		shape.ID = newShapeID()
	}
	sc.checkpoint()
	sc.shapes = append(sc.shapes, shape.Clone())
	return shape
}

// UpdateShape replaces the shape with the given id. Returns
// ErrNotFound if no shape has that id.
func (sc *Scene) UpdateShape(id string, shape Shape) error {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	i := sc.index(id)
	if i < 0 {
		return types.ErrNotFound
	}
	sc.checkpoint()
	shape.ID = id
	sc.shapes[i] = shape.Clone()
	return nil
}

// DeleteShape removes the shape with the given id.
func (sc *Scene) DeleteShape(id string) error {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	i := sc.index(id)
	if i < 0 {
		return types.ErrNotFound
	}
	sc.checkpoint()
	sc.shapes = append(sc.shapes[:i], sc.shapes[i+1:]...)
	return nil
}

// TranslateShape moves a shape by (dx, dy).
func (sc *Scene) TranslateShape(id string, dx, dy float64) error {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	i := sc.index(id)
	if i < 0 {
		return types.ErrNotFound
	}
	sc.checkpoint()
	shape := sc.shapes[i].Clone()
	shape.Translate(dx, dy)
	sc.shapes[i] = shape
	return nil
}

// ScaleShape resizes a shape by factor about center.
func (sc *Scene) ScaleShape(id string, center Point, factor float64) error {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	i := sc.index(id)
	if i < 0 {
		return types.ErrNotFound
	}
	sc.checkpoint()
	shape := sc.shapes[i].Clone()
	shape.Scale(center, factor)
	sc.shapes[i] = shape
	return nil
}

// ShapeAt returns the topmost shape hit by p, testing from the top of
// the z-order down.
func (sc *Scene) ShapeAt(p Point, tolerance float64) (Shape, bool) {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	for i := len(sc.shapes) - 1; i >= 0; i-- {
		if sc.shapes[i].Hit(p, tolerance) {
			return sc.shapes[i].Clone(), true
		}
	}
	return Shape{}, false
}

// Undo reverts the most recent mutation. Returns false when there is
// nothing to undo.
func (sc *Scene) Undo() bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if len(sc.undo) == 0 {
		return false
	}
	sc.redo = pushHistory(sc.redo, sc.shapes)
	sc.shapes = sc.undo[len(sc.undo)-1]
	sc.undo = sc.undo[:len(sc.undo)-1]
	return true
}

// Redo reapplies the most recently undone mutation.
func (sc *Scene) Redo() bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if len(sc.redo) == 0 {
		return false
	}
	sc.undo = pushHistory(sc.undo, sc.shapes)
	sc.shapes = sc.redo[len(sc.redo)-1]
	sc.redo = sc.redo[:len(sc.redo)-1]
	return true
}

// CanUndo reports whether history remains to revert.
func (sc *Scene) CanUndo() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return len(sc.undo) > 0
}

// CanRedo reports whether undone history remains to reapply.
func (sc *Scene) CanRedo() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return len(sc.redo) > 0
}

// checkpoint records the current state for undo and invalidates the
// redo stack. Caller holds the lock.
func (sc *Scene) checkpoint() {
	sc.undo = pushHistory(sc.undo, sc.shapes)
	sc.redo = nil
}

// pushHistory appends a snapshot, evicting the oldest entry past the
// history limit.
func pushHistory(stack [][]Shape, shapes []Shape) [][]Shape {
	stack = append(stack, cloneShapes(shapes))
	if len(stack) > historyLimit {
		stack = stack[1:]
	}
	return stack
}

func cloneShapes(shapes []Shape) []Shape {
	out := make([]Shape, len(shapes))
	for i, s := range shapes {
		out[i] = s.Clone()
	}
	return out
}

func (sc *Scene) index(id string) int {
	for i, s := range sc.shapes {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func newShapeID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
