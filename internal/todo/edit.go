package todo

import "strings"

// Labels shown on an item's update button.
const (
	LabelUpdate = "Update"
	LabelChange = "Change"
)

// UpdateLabel derives the update button label from the stored value and the
// edit buffer.
func UpdateLabel(stored, buffer string) string {
	if buffer != stored {
		return LabelChange
	}
	return LabelUpdate
}

// Editor is an inline edit session for one item. It only exists while the
// item is being edited and is never stored on the item itself.
type Editor struct {
	ItemID   string
	Original string
	Buffer   string
}

// BeginEdit starts an edit session for item. Completed items cannot be edited.
func BeginEdit(item Item) (*Editor, bool) {
	if item.IsDone {
		return nil, false
	}
	return &Editor{
		ItemID:   item.ID,
		Original: item.Value,
		Buffer:   item.Value,
	}, true
}

// SetBuffer replaces the edit buffer.
func (e *Editor) SetBuffer(value string) {
	e.Buffer = value
}

// Dirty reports whether the buffer differs from the value being edited.
func (e *Editor) Dirty() bool {
	return e.Buffer != e.Original
}

// ButtonLabel returns the update button label for the current buffer.
func (e *Editor) ButtonLabel() string {
	return UpdateLabel(e.Original, e.Buffer)
}

// Commit renames the item to the buffer contents. A blank buffer is rejected
// and the session stays open; the return value reports whether the session
// is finished.
func (e *Editor) Commit(l *List) bool {
	if strings.TrimSpace(e.Buffer) == "" {
		return false
	}
	if !e.Dirty() {
		return true
	}
	// The item may have been removed since the session started; that still
	// ends the session.
	l.RenameItem(e.ItemID, e.Buffer)
	return true
}
