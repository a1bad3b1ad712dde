package passthru

import (
	"github.com/arthur-debert/guidex/pkg/extract"
	"github.com/arthur-debert/guidex/pkg/guid"
	"github.com/arthur-debert/guidex/pkg/section"
)

// SectionGuid identifies pass-through guided sections: payloads that need no
// transformation, wrapped only to travel as guided sections.
var SectionGuid = guid.MustParse("b1f4bfcc-2f14-49a0-a59c-cb11a5561d36")

// GetInfo reports the payload size unchanged; no scratch memory is needed.
func GetInfo(s *section.Section) (section.Info, error) {
	return section.Info{
		OutputSize:  uint32(len(s.Data())),
		ScratchSize: 0,
		Attributes:  s.Attributes(),
	}, nil
}

// Decode returns the payload aliased directly onto the section data: the
// decoded content is byte-identical to the input, so no copy is made.
func Decode(s *section.Section, _ []byte) ([]byte, section.AuthStatus, error) {
	return s.Data(), section.AuthNotTested, nil
}

// Encode wraps payload in a pass-through guided section.
func Encode(payload []byte) ([]byte, error) {
	return section.Build(SectionGuid, 0, payload)
}

// Register binds the pass-through decoder into r.
func Register(r *extract.Registry) error {
	return r.Register(SectionGuid, GetInfo, Decode)
}
