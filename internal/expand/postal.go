// Package expand adapts libpostal's address expansion (via the gopostal
// cgo bindings) to the engine's Expander interface. libpostal requires
// its data files installed; wiring failures surface at first call.
package expand

import (
	"strings"

	postal "github.com/openvenues/gopostal/expand"

	"github.com/geo-dedupe/internal/dedupe"
)

// Address component bit flags, values from libpostal.h.
const (
	addressAny         uint16 = 1 << 0
	addressName        uint16 = 1 << 1
	addressHouseNumber uint16 = 1 << 2
	addressStreet      uint16 = 1 << 3
	addressUnit        uint16 = 1 << 4
	addressLevel       uint16 = 1 << 5
)

// Postal is the libpostal-backed expander.
type Postal struct {
	languages []string
}

// NewPostal returns a libpostal expander. Languages restrict the
// expansion dictionaries; with none given, libpostal classifies the
// input language itself.
func NewPostal(languages ...string) *Postal {
	return &Postal{languages: languages}
}

// Expand returns the normalized written-form variants of a component
// value. Blank input yields nil; otherwise libpostal always returns at
// least the normalized identity form.
func (p *Postal) Expand(value string, component dedupe.Component) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	opts := postal.GetDefaultExpansionOptions()
	opts.AddressComponents = componentFlags(component)
	if len(p.languages) > 0 {
		opts.Languages = p.languages
	}
	return postal.ExpandAddressOptions(value, opts)
}

func componentFlags(component dedupe.Component) uint16 {
	switch component {
	case dedupe.ComponentName:
		return addressName
	case dedupe.ComponentHouseNumber:
		return addressHouseNumber
	case dedupe.ComponentStreet:
		return addressStreet
	case dedupe.ComponentUnit:
		return addressUnit
	case dedupe.ComponentLevel:
		return addressLevel
	default:
		return addressAny
	}
}
