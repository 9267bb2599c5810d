package id

import "github.com/rs/xid"

// Generator creates opaque IDs suitable for external references.
type Generator interface {
	NewID() (string, error)
}

// XIDGenerator produces sortable 20-character ids.
type XIDGenerator struct {
	prefix string
}

func NewXIDGenerator(prefix string) *XIDGenerator {
	return &XIDGenerator{prefix: prefix}
}

func (g *XIDGenerator) NewID() (string, error) {
	return g.prefix + xid.New().String(), nil
}

// Sequence is a deterministic generator used by tests and seeded fixtures.
type Sequence struct {
	next int
	ids  []string
}

func NewSequence(ids ...string) *Sequence {
	return &Sequence{ids: ids}
}

func (s *Sequence) NewID() (string, error) {
	if s.next < len(s.ids) {
		v := s.ids[s.next]
		s.next++
		return v, nil
	}
	s.next++
	return xid.New().String(), nil
}
