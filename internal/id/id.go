// Package id provides the identifier generators used by the entity store.
package id

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Sequence hands out monotonically increasing integer IDs. IDs are
// never reused, even after the entity they were assigned to is deleted.
type Sequence struct {
	mu   sync.Mutex
	next int64
}

// NewSequence creates a Sequence whose first ID is start.
func NewSequence(start int64) *Sequence {
	return &Sequence{next: start}
}

// Next returns the next ID.
func (s *Sequence) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.next
	s.next++
	return n
}

// OrderNumbers generates human-readable order numbers of the form
// ORD-<year>-NNN with a zero-padded monotonic suffix.
type OrderNumbers struct {
	mu      sync.Mutex
	year    int
	counter int
}

// NewOrderNumbers creates a generator starting at the given suffix.
func NewOrderNumbers(year, start int) *OrderNumbers {
	return &OrderNumbers{year: year, counter: start}
}

// Next returns the next order number.
func (o *OrderNumbers) Next() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	n := o.counter
	o.counter++
	return fmt.Sprintf("ORD-%d-%03d", o.year, n)
}

// Token returns an opaque random token (a UUID without dashes).
func Token() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Reference returns a random reference string with the given prefix,
// e.g. Reference("REF") -> "REF-1b9d6bcd...".
func Reference(prefix string) string {
	return prefix + "-" + Token()
}
