package todo

import "strings"

// Section names for the addressable regions of a rendered item.
const (
	SectionContainer    = "container"
	SectionCheckbox     = "checkbox"
	SectionUpdateButton = "update-button"
	SectionUpdateInput  = "update-input"
	SectionCancelButton = "cancel-button"
	SectionDeleteButton = "delete-button"
)

// DoneClass marks the container of a completed item.
const DoneClass = "isDone"

// NormalizeID replaces spaces in id with hyphens.
func NormalizeID(id string) string {
	return strings.ReplaceAll(id, " ", "-")
}

// ElementID returns the region id for a section of the item with id.
func ElementID(section, id string) string {
	return section + "-" + NormalizeID(id)
}

// ContainerClass returns the class carried by an item's container.
func ContainerClass(item Item) string {
	if item.IsDone {
		return DoneClass
	}
	return ""
}
