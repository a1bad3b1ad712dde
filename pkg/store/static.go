package store

import "github.com/arthur-debert/guidex/pkg/table"

// Static is the module-local candidate: a block owned by this process image.
// It is the preferred location when globals are writable, but boot phases
// that execute in place from read-only flash silently drop stores to it,
// which SetWritable models.
type Static struct {
	blk block
}

// NewStatic returns a writable module-local candidate.
func NewStatic() *Static {
	return &Static{blk: block{writable: true}}
}

// SetWritable switches the candidate's memory between writable RAM and
// read-only (execute-in-place) behavior. It has no effect on a table that
// was already claimed while the block was writable.
func (s *Static) SetWritable(w bool) {
	s.blk.writable = w
}

func (s *Static) Name() string {
	return "static"
}

func (s *Static) TryClaim(capacity int) (*table.Table, error) {
	return s.blk.tryClaim(capacity)
}
