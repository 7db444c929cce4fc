package todo

import "strings"

// Item represents a single to-do entry.
type Item struct {
	ID     string `json:"id" yaml:"id"`
	Value  string `json:"value" yaml:"value"`
	IsDone bool   `json:"isDone" yaml:"isDone"`
}

// List is the authoritative in-memory collection of items and the pending
// input text. Mutations replace the backing slice, so a slice returned by
// Items is never modified afterwards.
//
// A List is not safe for concurrent use; callers serialize access the way an
// event loop does.
type List struct {
	items    []Item
	pending  string
	ids      IDGenerator
	onDelete func(id string)
}

// ListOption configures a List.
type ListOption func(*List)

// WithIDGenerator sets the id generator used by AddItem.
func WithIDGenerator(gen IDGenerator) ListOption {
	return func(l *List) {
		if gen != nil {
			l.ids = gen
		}
	}
}

// WithDeleteNotifier registers a callback invoked once for every deleted item.
func WithDeleteNotifier(fn func(id string)) ListOption {
	return func(l *List) {
		l.onDelete = fn
	}
}

// WithItems seeds the list with an initial collection.
func WithItems(items []Item) ListOption {
	return func(l *List) {
		l.Seed(items)
	}
}

// NewList creates an empty list.
func NewList(opts ...ListOption) *List {
	l := &List{ids: &SequenceIDs{}}
	for _, opt := range opts {
		opt(l)
	}
	l.observe()
	return l
}

// Items returns a copy of the current collection in insertion order.
func (l *List) Items() []Item {
	out := make([]Item, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of items.
func (l *List) Len() int {
	return len(l.items)
}

// Get returns the item with the given id.
func (l *List) Get(id string) (Item, bool) {
	idx := l.index(id)
	if idx < 0 {
		return Item{}, false
	}
	return l.items[idx], true
}

// PendingInput returns the in-progress text for a not-yet-created item.
func (l *List) PendingInput() string {
	return l.pending
}

// SetPendingInput replaces the pending buffer verbatim.
func (l *List) SetPendingInput(text string) {
	l.pending = text
}

// Seed replaces the collection with items, typically the result of the
// initial data fetch. Items with an empty or repeated id are dropped (the
// first occurrence wins); the number dropped is returned.
func (l *List) Seed(items []Item) int {
	seen := make(map[string]bool, len(items))
	next := make([]Item, 0, len(items))
	dropped := 0
	for _, item := range items {
		if item.ID == "" || seen[item.ID] {
			dropped++
			continue
		}
		seen[item.ID] = true
		next = append(next, item)
	}
	l.items = next
	l.observe()
	return dropped
}

// AddItem appends a new open item with text as its value and clears the
// pending buffer. Empty or whitespace-only text is rejected and leaves both
// the collection and the buffer untouched.
func (l *List) AddItem(text string) (Item, bool) {
	if strings.TrimSpace(text) == "" {
		return Item{}, false
	}

	item := Item{ID: l.ids.NextID(l.items), Value: text}
	next := make([]Item, len(l.items), len(l.items)+1)
	copy(next, l.items)
	l.items = append(next, item)
	l.pending = ""
	return item, true
}

// ToggleItem flips the completion flag of the item with the given id.
func (l *List) ToggleItem(id string) bool {
	return l.update(id, func(item *Item) {
		item.IsDone = !item.IsDone
	})
}

// RenameItem sets the value of the item with the given id. Completion state
// and order are left as they are.
func (l *List) RenameItem(id, value string) bool {
	return l.update(id, func(item *Item) {
		item.Value = value
	})
}

// DeleteItem removes a completed item and notifies the delete callback.
// Open items are kept; deleting them is not a permitted transition.
func (l *List) DeleteItem(id string) bool {
	idx := l.index(id)
	if idx < 0 || !l.items[idx].IsDone {
		return false
	}

	next := make([]Item, 0, len(l.items)-1)
	next = append(next, l.items[:idx]...)
	next = append(next, l.items[idx+1:]...)
	l.items = next

	if l.onDelete != nil {
		l.onDelete(id)
	}
	return true
}

// CountDone returns how many items are marked done.
func (l *List) CountDone() int {
	n := 0
	for _, item := range l.items {
		if item.IsDone {
			n++
		}
	}
	return n
}

func (l *List) update(id string, fn func(*Item)) bool {
	idx := l.index(id)
	if idx < 0 {
		return false
	}
	next := make([]Item, len(l.items))
	copy(next, l.items)
	fn(&next[idx])
	l.items = next
	return true
}

// observe lets the id generator see ids that did not come from it.
func (l *List) observe() {
	if o, ok := l.ids.(observer); ok {
		o.Observe(l.items)
	}
}

func (l *List) index(id string) int {
	for i := range l.items {
		if l.items[i].ID == id {
			return i
		}
	}
	return -1
}
