// Package history keeps a bounded linear undo/redo log of surface frames.
package history

import "SketchBoard/internal/raster"

// DefaultDepth is the number of undo steps kept when none is configured.
const DefaultDepth = 10

// Manager holds the undo and redo stacks, most recent last.
type Manager struct {
	undo  []raster.Frame
	redo  []raster.Frame
	depth int
}

func NewManager(depth int) *Manager {
	if depth <= 0 {
		depth = DefaultDepth
	}
	return &Manager{depth: depth}
}

// RecordUndo pushes the frame taken before a new edit, evicting the oldest
// entries beyond the depth, and drops redo history.
func (m *Manager) RecordUndo(f raster.Frame) {
	m.undo = append(m.undo, f)
	if over := len(m.undo) - m.depth; over > 0 {
		m.undo = append(m.undo[:0], m.undo[over:]...)
	}
	m.redo = nil
}

// Undo moves current onto the redo stack and returns the frame to restore.
// It reports false and changes nothing when there is nothing to undo.
func (m *Manager) Undo(current raster.Frame) (raster.Frame, bool) {
	if len(m.undo) == 0 {
		return raster.Frame{}, false
	}
	m.redo = append(m.redo, current)
	f := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]
	return f, true
}

// Redo moves current onto the undo stack and returns the frame to restore.
// Unlike RecordUndo this path never evicts.
func (m *Manager) Redo(current raster.Frame) (raster.Frame, bool) {
	if len(m.redo) == 0 {
		return raster.Frame{}, false
	}
	m.undo = append(m.undo, current)
	f := m.redo[len(m.redo)-1]
	m.redo = m.redo[:len(m.redo)-1]
	return f, true
}

func (m *Manager) CanUndo() bool  { return len(m.undo) > 0 }
func (m *Manager) CanRedo() bool  { return len(m.redo) > 0 }
func (m *Manager) UndoDepth() int { return len(m.undo) }
func (m *Manager) RedoDepth() int { return len(m.redo) }
func (m *Manager) Depth() int     { return m.depth }
