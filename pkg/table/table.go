package table

import (
	"github.com/arthur-debert/guidex/pkg/errors"
	"github.com/arthur-debert/guidex/pkg/guid"
	"github.com/arthur-debert/guidex/pkg/section"
)

// Signature marks a formatted handler table ("EGSI"). Candidate storage that
// does not read back this marker is either unclaimed or not writable.
const Signature uint32 = 0x49534745

// GetInfoHandler examines a guided section and reports the decoded output
// size, the scratch memory the decode step will need, and the section's
// attribute bits.
type GetInfoHandler func(s *section.Section) (section.Info, error)

// DecodeHandler decodes a guided section. The returned buffer may alias the
// section's payload when the decoded content is byte-identical to the input;
// that decision belongs to the handler. The AuthStatus bitmask reports how
// much trust to place in the result.
type DecodeHandler func(s *section.Section, scratch []byte) ([]byte, section.AuthStatus, error)

// Table is the registry's bookkeeping block: parallel fixed-capacity
// sequences of registered GUIDs and their handler pairs. The arrays are
// allocated once when the table is formatted and never grown or relocated,
// so entries keep their identity for the table's lifetime.
//
// Entries are published by incrementing count only after a slot is fully
// written. A re-entrant reader therefore sees either the old count or the
// new count with a complete entry, never a GUID without its handlers. That
// ordering is the table's only concurrency defense; it assumes a single
// effective execution context.
type Table struct {
	signature uint32
	count     int
	guids     []guid.GUID
	getInfo   []GetInfoHandler
	decode    []DecodeHandler
}

// Format initializes a table for the given capacity. Storage providers call
// it exactly once per claimed candidate; the layout is never recomputed
// afterwards.
func Format(capacity int) *Table {
	return &Table{
		signature: Signature,
		guids:     make([]guid.GUID, capacity),
		getInfo:   make([]GetInfoHandler, capacity),
		decode:    make([]DecodeHandler, capacity),
	}
}

// Valid reports whether t carries the signature of a formatted table.
func (t *Table) Valid() bool {
	return t != nil && t.signature == Signature
}

// Capacity returns the fixed upper bound on registered decoders.
func (t *Table) Capacity() int {
	return len(t.guids)
}

// Count returns the number of published entries.
func (t *Table) Count() int {
	return t.count
}

// Lookup returns the index of g among the published entries.
func (t *Table) Lookup(g guid.GUID) (int, bool) {
	for i := 0; i < t.count; i++ {
		if t.guids[i] == g {
			return i, true
		}
	}
	return 0, false
}

// Upsert registers the handler pair for g, replacing the pair of an existing
// entry in place. Replacement never grows the table, so re-registration
// cannot fail on capacity.
func (t *Table) Upsert(g guid.GUID, info GetInfoHandler, dec DecodeHandler) error {
	if i, ok := t.Lookup(g); ok {
		t.getInfo[i] = info
		t.decode[i] = dec
		return nil
	}

	if t.count >= len(t.guids) {
		return errors.Newf(errors.ErrTableFull,
			"handler table full (capacity %d)", len(t.guids)).
			WithDetail("guid", g.String())
	}

	// Fill the slot completely before publishing it through count.
	i := t.count
	t.guids[i] = g
	t.getInfo[i] = info
	t.decode[i] = dec
	t.count = i + 1
	return nil
}

// Handlers returns the handler pair published at index i.
func (t *Table) Handlers(i int) (GetInfoHandler, DecodeHandler) {
	if i < 0 || i >= t.count {
		return nil, nil
	}
	return t.getInfo[i], t.decode[i]
}

// Guids returns a copy of the published GUIDs. The copy is only current
// until the next registration.
func (t *Table) Guids() []guid.GUID {
	out := make([]guid.GUID, t.count)
	copy(out, t.guids[:t.count])
	return out
}
