package store

import (
	"github.com/arthur-debert/guidex/pkg/errors"
	"github.com/arthur-debert/guidex/pkg/table"
)

// Provider is one candidate location for the handler table. The locator in
// pkg/extract walks an ordered list of providers until one claim succeeds.
type Provider interface {
	// Name identifies the candidate in logs and errors.
	Name() string

	// TryClaim returns the table held by this candidate, formatting it on
	// first use. A candidate that was already claimed returns its table
	// as-is; reformatting would clobber entries registered by an earlier
	// caller. A candidate whose memory rejects writes in the current
	// environment fails with ErrNotWritable.
	TryClaim(capacity int) (*table.Table, error)
}

// ErrNotWritable reports that a candidate's memory dropped the signature
// write. Callers match it by code through errors.Is.
var ErrNotWritable = errors.New(errors.ErrStorageUnavailable, "candidate storage is not writable")

// block models one candidate memory region. Writes to a non-writable region
// are dropped the way stores to execute-in-place flash are, so a claim is
// trusted only after the marker reads back.
type block struct {
	tab      *table.Table
	writable bool
}

func (b *block) tryClaim(capacity int) (*table.Table, error) {
	// Already claimed by a prior caller, possibly in a different execution
	// unit. Trust the layout as-is.
	if b.tab.Valid() {
		return b.tab, nil
	}

	// Probe: write a freshly formatted table, then read the marker back. On
	// a non-writable region the store is lost and the read-back fails.
	formatted := table.Format(capacity)
	if b.writable {
		b.tab = formatted
	}
	if !b.tab.Valid() {
		return nil, ErrNotWritable
	}
	return b.tab, nil
}
