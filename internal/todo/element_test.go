package todo

import "testing"

func TestElementID(t *testing.T) {
	tests := []struct {
		section, id, want string
	}{
		{SectionContainer, "1", "container-1"},
		{SectionCheckbox, "buy milk", "checkbox-buy-milk"},
		{SectionUpdateButton, "pay light bill", "update-button-pay-light-bill"},
		{SectionDeleteButton, "a  b", "delete-button-a--b"},
	}
	for _, tt := range tests {
		if got := ElementID(tt.section, tt.id); got != tt.want {
			t.Errorf("ElementID(%q, %q): got %q, want %q", tt.section, tt.id, got, tt.want)
		}
	}
}

func TestContainerClass(t *testing.T) {
	if got := ContainerClass(Item{IsDone: true}); got != DoneClass {
		t.Errorf("done: got %q, want %q", got, DoneClass)
	}
	if got := ContainerClass(Item{}); got != "" {
		t.Errorf("open: got %q, want empty", got)
	}
}
