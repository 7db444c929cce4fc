package todo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// IDGenerator produces the id for a new item given the current collection.
// Implementations must never return an id already present in items.
type IDGenerator interface {
	NextID(items []Item) string
}

// observer is implemented by generators that track ids already in use.
type observer interface {
	Observe(items []Item)
}

// ID scheme names accepted by NewIDGenerator.
const (
	SchemeSequence = "sequence"
	SchemeUUID     = "uuid"
	SchemeLength   = "length"
)

// NewIDGenerator returns the generator for a scheme name. An empty name
// selects the sequence scheme.
func NewIDGenerator(scheme string) (IDGenerator, error) {
	switch strings.ToLower(strings.TrimSpace(scheme)) {
	case "", SchemeSequence:
		return &SequenceIDs{}, nil
	case SchemeUUID:
		return UUIDIDs{}, nil
	case SchemeLength:
		return LengthIDs{}, nil
	default:
		return nil, fmt.Errorf("unknown id scheme %q, must be one of: %s, %s, %s",
			scheme, SchemeSequence, SchemeUUID, SchemeLength)
	}
}

// SequenceIDs hands out stringified integers from a counter that only grows.
// The counter starts after the largest numeric id in the collection, so ids
// freed by deletion are never reused.
type SequenceIDs struct {
	last int
}

// Observe advances the counter past every numeric id in items.
func (s *SequenceIDs) Observe(items []Item) {
	for _, item := range items {
		if n := numericID(item.ID); n > s.last {
			s.last = n
		}
	}
}

// NextID returns the next unused sequence number.
func (s *SequenceIDs) NextID(items []Item) string {
	s.Observe(items)
	taken := make(map[string]bool, len(items))
	for _, item := range items {
		taken[item.ID] = true
	}
	for {
		s.last++
		id := strconv.Itoa(s.last)
		if !taken[id] {
			return id
		}
	}
}

// LengthIDs reproduces the length+1 numbering of the original list widget.
// Collisions after deletions are resolved by probing upwards.
type LengthIDs struct{}

// NextID returns len(items)+1, or the next free number above it.
func (LengthIDs) NextID(items []Item) string {
	taken := make(map[string]bool, len(items))
	for _, item := range items {
		taken[item.ID] = true
	}
	for n := len(items) + 1; ; n++ {
		id := strconv.Itoa(n)
		if !taken[id] {
			return id
		}
	}
}

// UUIDIDs generates random v4 UUIDs.
type UUIDIDs struct{}

// NextID returns a new random UUID.
func (UUIDIDs) NextID(items []Item) string {
	return uuid.NewString()
}

// numericID returns the integer value of a purely numeric id, or 0.
func numericID(id string) int {
	n, err := strconv.Atoi(id)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
