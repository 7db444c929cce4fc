package todo

import (
	"reflect"
	"testing"
)

func twoItems() []Item {
	return []Item{
		{ID: "1", Value: "buy tea", IsDone: true},
		{ID: "2", Value: "buy coffee", IsDone: false},
	}
}

func TestAddItem(t *testing.T) {
	t.Run("appends to an empty list", func(t *testing.T) {
		l := NewList()
		l.SetPendingInput("buy milk")

		item, ok := l.AddItem(l.PendingInput())
		if !ok {
			t.Fatal("AddItem returned false")
		}

		want := []Item{{ID: "1", Value: "buy milk", IsDone: false}}
		if got := l.Items(); !reflect.DeepEqual(got, want) {
			t.Errorf("Items: got %+v, want %+v", got, want)
		}
		if item != want[0] {
			t.Errorf("returned item: got %+v, want %+v", item, want[0])
		}
		if l.PendingInput() != "" {
			t.Errorf("PendingInput: got %q, want empty", l.PendingInput())
		}
	})

	t.Run("rejects empty and whitespace text", func(t *testing.T) {
		for _, text := range []string{"", " ", "\t\n  "} {
			l := NewList(WithItems(twoItems()))
			l.SetPendingInput(text)

			if _, ok := l.AddItem(text); ok {
				t.Errorf("AddItem(%q) returned true", text)
			}
			if l.Len() != 2 {
				t.Errorf("AddItem(%q): Len got %d, want 2", text, l.Len())
			}
			if l.PendingInput() != text {
				t.Errorf("AddItem(%q): PendingInput got %q, want unchanged", text, l.PendingInput())
			}
		}
	})

	t.Run("keeps text verbatim", func(t *testing.T) {
		l := NewList()
		item, _ := l.AddItem("  padded  ")
		if item.Value != "  padded  " {
			t.Errorf("Value: got %q, want %q", item.Value, "  padded  ")
		}
	})

	t.Run("grows by exactly one and appends at the end", func(t *testing.T) {
		l := NewList(WithItems(twoItems()))
		before := l.Items()

		item, _ := l.AddItem("pay light bill")

		after := l.Items()
		if len(after) != len(before)+1 {
			t.Fatalf("Len: got %d, want %d", len(after), len(before)+1)
		}
		if !reflect.DeepEqual(after[:2], before) {
			t.Errorf("existing items changed: got %+v, want %+v", after[:2], before)
		}
		if after[2] != item || item.IsDone {
			t.Errorf("appended item: got %+v", after[2])
		}
	})

	t.Run("does not reuse ids after deletion", func(t *testing.T) {
		l := NewList(WithItems(twoItems()))
		l.ToggleItem("2")
		l.DeleteItem("2")

		item, _ := l.AddItem("buy milk")
		if item.ID == "1" || item.ID == "2" {
			t.Errorf("new id %q collides with a previous id", item.ID)
		}
	})
}

func TestSetPendingInput(t *testing.T) {
	l := NewList()
	l.SetPendingInput("  typing ")
	if got := l.PendingInput(); got != "  typing " {
		t.Errorf("PendingInput: got %q, want %q", got, "  typing ")
	}
}

func TestToggleItem(t *testing.T) {
	t.Run("flips only the matching item", func(t *testing.T) {
		l := NewList(WithItems(twoItems()))

		if !l.ToggleItem("2") {
			t.Fatal("ToggleItem(2) returned false")
		}

		want := []Item{
			{ID: "1", Value: "buy tea", IsDone: true},
			{ID: "2", Value: "buy coffee", IsDone: true},
		}
		if got := l.Items(); !reflect.DeepEqual(got, want) {
			t.Errorf("Items: got %+v, want %+v", got, want)
		}
	})

	t.Run("is an involution", func(t *testing.T) {
		l := NewList(WithItems(twoItems()))
		original := l.Items()

		l.ToggleItem("1")
		l.ToggleItem("1")

		if got := l.Items(); !reflect.DeepEqual(got, original) {
			t.Errorf("Items: got %+v, want %+v", got, original)
		}
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		l := NewList(WithItems(twoItems()))
		if l.ToggleItem("99") {
			t.Error("ToggleItem(99) returned true")
		}
		if got := l.Items(); !reflect.DeepEqual(got, twoItems()) {
			t.Errorf("Items: got %+v, want unchanged", got)
		}
	})

	t.Run("does not modify earlier snapshots", func(t *testing.T) {
		l := NewList(WithItems(twoItems()))
		snapshot := l.Items()
		l.ToggleItem("2")
		if snapshot[1].IsDone {
			t.Error("snapshot was modified by ToggleItem")
		}
	})
}

func TestRenameItem(t *testing.T) {
	t.Run("changes only the value", func(t *testing.T) {
		l := NewList(WithItems(twoItems()))

		if !l.RenameItem("1", "buy green tea") {
			t.Fatal("RenameItem returned false")
		}

		want := []Item{
			{ID: "1", Value: "buy green tea", IsDone: true},
			{ID: "2", Value: "buy coffee", IsDone: false},
		}
		if got := l.Items(); !reflect.DeepEqual(got, want) {
			t.Errorf("Items: got %+v, want %+v", got, want)
		}
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		l := NewList(WithItems(twoItems()))
		if l.RenameItem("missing", "x") {
			t.Error("RenameItem(missing) returned true")
		}
		if got := l.Items(); !reflect.DeepEqual(got, twoItems()) {
			t.Errorf("Items: got %+v, want unchanged", got)
		}
	})
}

func TestDeleteItem(t *testing.T) {
	t.Run("removes a done item and notifies once", func(t *testing.T) {
		var notified []string
		l := NewList(
			WithItems(twoItems()),
			WithDeleteNotifier(func(id string) { notified = append(notified, id) }),
		)

		if !l.DeleteItem("1") {
			t.Fatal("DeleteItem(1) returned false")
		}

		want := []Item{{ID: "2", Value: "buy coffee", IsDone: false}}
		if got := l.Items(); !reflect.DeepEqual(got, want) {
			t.Errorf("Items: got %+v, want %+v", got, want)
		}
		if !reflect.DeepEqual(notified, []string{"1"}) {
			t.Errorf("notifications: got %v, want [1]", notified)
		}
	})

	t.Run("preserves relative order", func(t *testing.T) {
		l := NewList(WithItems([]Item{
			{ID: "1", Value: "a"},
			{ID: "2", Value: "b", IsDone: true},
			{ID: "3", Value: "c"},
			{ID: "4", Value: "d", IsDone: true},
		}))

		l.DeleteItem("2")

		var ids []string
		for _, item := range l.Items() {
			ids = append(ids, item.ID)
		}
		if !reflect.DeepEqual(ids, []string{"1", "3", "4"}) {
			t.Errorf("ids: got %v, want [1 3 4]", ids)
		}
	})

	t.Run("open items are not deleted", func(t *testing.T) {
		calls := 0
		l := NewList(
			WithItems(twoItems()),
			WithDeleteNotifier(func(string) { calls++ }),
		)

		if l.DeleteItem("2") {
			t.Error("DeleteItem(2) returned true for an open item")
		}
		if l.Len() != 2 {
			t.Errorf("Len: got %d, want 2", l.Len())
		}
		if calls != 0 {
			t.Errorf("notifier calls: got %d, want 0", calls)
		}
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		calls := 0
		l := NewList(
			WithItems(twoItems()),
			WithDeleteNotifier(func(string) { calls++ }),
		)

		if l.DeleteItem("42") {
			t.Error("DeleteItem(42) returned true")
		}
		if got := l.Items(); !reflect.DeepEqual(got, twoItems()) {
			t.Errorf("Items: got %+v, want unchanged", got)
		}
		if calls != 0 {
			t.Errorf("notifier calls: got %d, want 0", calls)
		}
	})

	t.Run("nil notifier", func(t *testing.T) {
		l := NewList(WithItems(twoItems()))
		if !l.DeleteItem("1") {
			t.Error("DeleteItem(1) returned false")
		}
	})
}

func TestSeed(t *testing.T) {
	t.Run("replaces the collection", func(t *testing.T) {
		l := NewList()
		l.AddItem("temporary")

		dropped := l.Seed(twoItems())

		if dropped != 0 {
			t.Errorf("dropped: got %d, want 0", dropped)
		}
		if got := l.Items(); !reflect.DeepEqual(got, twoItems()) {
			t.Errorf("Items: got %+v, want %+v", got, twoItems())
		}
	})

	t.Run("drops duplicate and empty ids", func(t *testing.T) {
		l := NewList()
		dropped := l.Seed([]Item{
			{ID: "1", Value: "first"},
			{ID: "1", Value: "second"},
			{ID: "", Value: "no id"},
			{ID: "2", Value: "third"},
		})

		if dropped != 2 {
			t.Errorf("dropped: got %d, want 2", dropped)
		}
		want := []Item{{ID: "1", Value: "first"}, {ID: "2", Value: "third"}}
		if got := l.Items(); !reflect.DeepEqual(got, want) {
			t.Errorf("Items: got %+v, want %+v", got, want)
		}
	})

	t.Run("new ids continue after seeded ids", func(t *testing.T) {
		l := NewList(WithItems([]Item{{ID: "7", Value: "seeded"}}))
		item, _ := l.AddItem("next")
		if item.ID != "8" {
			t.Errorf("ID: got %q, want 8", item.ID)
		}
	})
}

func TestGetAndCountDone(t *testing.T) {
	l := NewList(WithItems(twoItems()))

	item, ok := l.Get("2")
	if !ok || item.Value != "buy coffee" {
		t.Errorf("Get(2): got %+v, %v", item, ok)
	}
	if _, ok := l.Get("3"); ok {
		t.Error("Get(3) found an item")
	}
	if got := l.CountDone(); got != 1 {
		t.Errorf("CountDone: got %d, want 1", got)
	}
}

func TestListsAreIndependent(t *testing.T) {
	a := NewList()
	b := NewList()

	a.AddItem("only in a")
	a.SetPendingInput("typing in a")

	if b.Len() != 0 || b.PendingInput() != "" {
		t.Errorf("list b affected by list a: len=%d pending=%q", b.Len(), b.PendingInput())
	}
	item, _ := b.AddItem("first in b")
	if item.ID != "1" {
		t.Errorf("list b id: got %q, want 1", item.ID)
	}
}
