package ui

import "github.com/nibzard/todolist-go/internal/todo"

// Row is the view model of one rendered item. Region ids are empty for
// controls the item does not currently expose.
type Row struct {
	Item  todo.Item
	Class string

	ContainerID    string
	CheckboxID     string
	UpdateButtonID string // open items only
	UpdateInputID  string // while editing
	CancelButtonID string // while editing
	DeleteButtonID string // done items only

	// UpdateLabel is the update button text: "Change" once the edit buffer
	// differs from the stored value, "Update" otherwise.
	UpdateLabel string
	Editing     bool
}

// BuildRows derives the rows for items. editor is the active edit session,
// or nil.
func BuildRows(items []todo.Item, editor *todo.Editor) []Row {
	rows := make([]Row, 0, len(items))
	for _, item := range items {
		row := Row{
			Item:        item,
			Class:       todo.ContainerClass(item),
			ContainerID: todo.ElementID(todo.SectionContainer, item.ID),
			CheckboxID:  todo.ElementID(todo.SectionCheckbox, item.ID),
		}

		editing := editor != nil && editor.ItemID == item.ID && !item.IsDone
		if editing {
			row.Editing = true
			row.UpdateInputID = todo.ElementID(todo.SectionUpdateInput, item.ID)
			row.CancelButtonID = todo.ElementID(todo.SectionCancelButton, item.ID)
		}

		if item.IsDone {
			row.DeleteButtonID = todo.ElementID(todo.SectionDeleteButton, item.ID)
		} else {
			row.UpdateButtonID = todo.ElementID(todo.SectionUpdateButton, item.ID)
			row.UpdateLabel = todo.LabelUpdate
			if editing {
				row.UpdateLabel = todo.UpdateLabel(item.Value, editor.Buffer)
			}
		}

		rows = append(rows, row)
	}
	return rows
}
