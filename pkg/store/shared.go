package store

import (
	"fmt"
	"sync"

	"github.com/arthur-debert/guidex/pkg/table"
)

// DefaultSharedAddress is the well-known address convention for the shared
// fallback block. It works in environments where system memory is usable
// without initialization, such as virtual machines.
const DefaultSharedAddress uint64 = 0x1000

// The pool maps well-known addresses to their backing blocks so that every
// Shared provider resolving the same address, in any registry, reaches the
// same table. The mutex only guards pool bookkeeping; the table itself has
// no locking (see pkg/table).
var (
	poolMu sync.Mutex
	pool   = map[uint64]*block{}
)

// Shared is the fallback candidate: a block at a fixed, well-known address
// shared by every module in the process. Whether the address is backed by
// usable memory is an environment property, controlled with SetBacked.
type Shared struct {
	addr uint64
}

// NewShared returns a provider for the shared block at addr.
func NewShared(addr uint64) *Shared {
	return &Shared{addr: addr}
}

func (s *Shared) Name() string {
	return fmt.Sprintf("shared@%#x", s.addr)
}

func (s *Shared) TryClaim(capacity int) (*table.Table, error) {
	return sharedBlock(s.addr).tryClaim(capacity)
}

func sharedBlock(addr uint64) *block {
	poolMu.Lock()
	defer poolMu.Unlock()
	b, ok := pool[addr]
	if !ok {
		// Backed by default: the common case for this fallback is memory
		// that is usable without initialization.
		b = &block{writable: true}
		pool[addr] = b
	}
	return b
}

// SetBacked marks the shared region at addr as RAM-backed (writable) or
// not-yet-mapped. A region that was claimed while backed keeps its table.
func SetBacked(addr uint64, backed bool) {
	sharedBlock(addr).writable = backed
}

// ResetShared drops every shared region. Test hook; real boot flows abandon
// the region at phase transition instead.
func ResetShared() {
	poolMu.Lock()
	defer poolMu.Unlock()
	pool = map[uint64]*block{}
}
