package topics

// HistoryCap bounds the undo stack. Oldest snapshots are dropped first.
const HistoryCap = 25

// UndoStack is a bounded linear undo/redo history of Selection
// snapshots. Entries are immutable; Undo and Redo only move the cursor.
// Recording after an undo discards the redo tail (linear, not a tree).
type UndoStack struct {
	entries []Selection
	cursor  int // index of the current entry
}

// NewUndoStack creates a stack seeded with the initial selection.
func NewUndoStack(initial Selection) *UndoStack {
	return &UndoStack{
		entries: []Selection{clone(initial)},
		cursor:  0,
	}
}

// Record pushes a new snapshot after the cursor, truncating any redo
// entries. When the stack exceeds HistoryCap the oldest entry is dropped.
func (u *UndoStack) Record(s Selection) {
	u.entries = append(u.entries[:u.cursor+1], clone(s))
	if len(u.entries) > HistoryCap {
		u.entries = u.entries[len(u.entries)-HistoryCap:]
	}
	u.cursor = len(u.entries) - 1
}

// Undo moves the cursor back one entry and returns it.
// Returns the current entry and false when already at the oldest.
func (u *UndoStack) Undo() (Selection, bool) {
	if u.cursor == 0 {
		return clone(u.entries[u.cursor]), false
	}
	u.cursor--
	return clone(u.entries[u.cursor]), true
}

// Redo moves the cursor forward one entry and returns it.
// Returns the current entry and false when already at the newest.
func (u *UndoStack) Redo() (Selection, bool) {
	if u.cursor == len(u.entries)-1 {
		return clone(u.entries[u.cursor]), false
	}
	u.cursor++
	return clone(u.entries[u.cursor]), true
}

// Current returns the selection at the cursor.
func (u *UndoStack) Current() Selection {
	return clone(u.entries[u.cursor])
}

// Len returns the number of stored snapshots.
func (u *UndoStack) Len() int {
	return len(u.entries)
}
