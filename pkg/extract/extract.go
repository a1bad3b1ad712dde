package extract

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/guidex/pkg/errors"
	"github.com/arthur-debert/guidex/pkg/guid"
	"github.com/arthur-debert/guidex/pkg/logging"
	"github.com/arthur-debert/guidex/pkg/section"
	"github.com/arthur-debert/guidex/pkg/store"
	"github.com/arthur-debert/guidex/pkg/table"
)

// DefaultCapacity is the upper bound on simultaneously registered decoders
// when no explicit capacity is configured. Fixed once the first claim
// succeeds.
const DefaultCapacity = 16

// Registry routes guided-section operations to decoder handlers registered
// by GUID. It holds no table itself; every operation re-resolves the table
// through the configured storage candidates, so all callers reach the same
// table regardless of which candidate is backing it.
type Registry struct {
	providers []store.Provider
	capacity  int
	logger    zerolog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithProviders sets the ordered candidate storage locations.
func WithProviders(ps ...store.Provider) Option {
	return func(r *Registry) {
		r.providers = ps
	}
}

// WithCapacity sets the maximum number of simultaneously registered
// decoders.
func WithCapacity(n int) Option {
	return func(r *Registry) {
		r.capacity = n
	}
}

// New creates a registry. Without options it probes the module-local static
// block first and the well-known shared address second.
func New(opts ...Option) *Registry {
	r := &Registry{
		capacity: DefaultCapacity,
		logger:   logging.GetLogger("extract"),
	}
	for _, opt := range opts {
		opt(r)
	}
	if len(r.providers) == 0 {
		r.providers = []store.Provider{
			store.NewStatic(),
			store.NewShared(store.DefaultSharedAddress),
		}
	}
	if r.capacity < 1 {
		r.capacity = DefaultCapacity
	}
	return r
}

// locate probes the candidates in order on every call. Whichever candidate
// was claimed first keeps winning: its signature short-circuits the probe
// before any write happens.
func (r *Registry) locate() (*table.Table, error) {
	for _, p := range r.providers {
		t, err := p.TryClaim(r.capacity)
		if err != nil {
			r.logger.Trace().Str("candidate", p.Name()).Err(err).
				Msg("candidate not usable")
			continue
		}
		return t, nil
	}
	return nil, errors.New(errors.ErrStorageUnavailable,
		"no candidate storage location is writable")
}

// Register binds the get-info/decode handler pair for g, replacing any pair
// registered earlier for the same GUID. Re-registration never grows the
// table.
func (r *Registry) Register(g guid.GUID, info table.GetInfoHandler, dec table.DecodeHandler) error {
	if info == nil || dec == nil {
		return errors.New(errors.ErrInvalidInput, "both handlers are required")
	}

	t, err := r.locate()
	if err != nil {
		return errors.Wrapf(err, errors.ErrStorageUnavailable,
			"registering decoder %s", g)
	}

	if err := t.Upsert(g, info, dec); err != nil {
		return err
	}
	r.logger.Debug().Stringer("guid", g).Int("count", t.Count()).
		Msg("decoder registered")
	return nil
}

// GetInfo routes the section to the get-info handler registered for its
// GUID and returns the handler's result verbatim.
func (r *Registry) GetInfo(s *section.Section) (section.Info, error) {
	if s == nil {
		return section.Info{}, errors.New(errors.ErrInvalidInput, "nil section")
	}

	t, err := r.locate()
	if err != nil {
		return section.Info{}, err
	}

	i, ok := t.Lookup(s.Guid())
	if !ok {
		return section.Info{}, unsupported(s.Guid())
	}
	info, _ := t.Handlers(i)
	return info(s)
}

// Decode routes the section to the decode handler registered for its GUID.
// The handler's output buffer, which may alias the section payload, and its
// authentication status are forwarded unmodified. The scratch buffer is
// required only when the decoder's GetInfo response reported a nonzero
// scratch size.
func (r *Registry) Decode(s *section.Section, scratch []byte) ([]byte, section.AuthStatus, error) {
	if s == nil {
		return nil, 0, errors.New(errors.ErrInvalidInput, "nil section")
	}

	t, err := r.locate()
	if err != nil {
		return nil, 0, err
	}

	i, ok := t.Lookup(s.Guid())
	if !ok {
		return nil, 0, unsupported(s.Guid())
	}
	_, dec := t.Handlers(i)
	return dec(s, scratch)
}

// Guids returns the GUIDs of the currently registered decoders. The slice
// is a read-only snapshot, current only until the next registration.
func (r *Registry) Guids() ([]guid.GUID, error) {
	t, err := r.locate()
	if err != nil {
		return nil, err
	}
	return t.Guids(), nil
}

func unsupported(g guid.GUID) error {
	return errors.Newf(errors.ErrUnsupported,
		"no decoder registered for section GUID %s", g)
}
