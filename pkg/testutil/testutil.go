package testutil

import (
	"testing"

	"github.com/arthur-debert/guidex/pkg/guid"
	"github.com/arthur-debert/guidex/pkg/section"
	"github.com/arthur-debert/guidex/pkg/table"
)

// Guid parses s, failing the test on malformed input.
func Guid(t *testing.T, s string) guid.GUID {
	t.Helper()
	g, err := guid.Parse(s)
	if err != nil {
		t.Fatalf("parsing GUID %q: %v", s, err)
	}
	return g
}

// BuildSection assembles a guided section around payload and parses it back
// into a read-only view.
func BuildSection(t *testing.T, g guid.GUID, attributes uint16, payload []byte) *section.Section {
	t.Helper()
	raw, err := section.Build(g, attributes, payload)
	if err != nil {
		t.Fatalf("building section: %v", err)
	}
	s, err := section.Parse(raw)
	if err != nil {
		t.Fatalf("parsing built section: %v", err)
	}
	return s
}

// StaticInfoHandler returns a get-info handler with a canned result.
func StaticInfoHandler(info section.Info) table.GetInfoHandler {
	return func(*section.Section) (section.Info, error) {
		return info, nil
	}
}

// StaticDecodeHandler returns a decode handler with a canned result.
func StaticDecodeHandler(out []byte, status section.AuthStatus) table.DecodeHandler {
	return func(*section.Section, []byte) ([]byte, section.AuthStatus, error) {
		return out, status, nil
	}
}

// FakeProvider is a scripted storage candidate for locator tests.
type FakeProvider struct {
	// NameVal is returned by Name.
	NameVal string
	// Err, when set, fails every claim.
	Err error
	// Claims counts TryClaim calls.
	Claims int

	tab *table.Table
}

func (f *FakeProvider) Name() string {
	if f.NameVal == "" {
		return "fake"
	}
	return f.NameVal
}

func (f *FakeProvider) TryClaim(capacity int) (*table.Table, error) {
	f.Claims++
	if f.Err != nil {
		return nil, f.Err
	}
	if !f.tab.Valid() {
		f.tab = table.Format(capacity)
	}
	return f.tab, nil
}

// Table exposes the claimed table, or nil before the first successful claim.
func (f *FakeProvider) Table() *table.Table {
	return f.tab
}
