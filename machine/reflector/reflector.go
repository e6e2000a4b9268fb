// This is free and unencumbered software released into the public domain.
// See the UNLICENSE file for details.

// Package reflector implements the Umkehrwalze: a fixed involutive
// substitution applied once per character, between the forward and
// backward rotor passes.  It never moves and never maps a letter to
// itself, which is what makes the whole machine self-inverse and
// fixed-point free.
package reflector

import (
	"fmt"

	"enigma/machine/alphabet"
)

// Reflector is a fixed involutive substitution table, shared read-only
// across the machine's lifetime.
type Reflector struct {
	name  string
	table [alphabet.Size]int
}

// The two reflectors fitted to the Wehrmacht Enigma I.
var (
	B = mustNew("B", "YRUHQSLDPXNGOKMIEBFZCWVJAT")
	C = mustNew("C", "FVPJIAOYEDRZXWGCTKUQSBNMHL")
)

// New builds a reflector and verifies the historical properties the
// machine depends on: the wiring is an involution with no fixed points.
func New(name, wiring string) (*Reflector, error) {
	if len(wiring) != alphabet.Size {
		return nil, fmt.Errorf("reflector %s: want %d letters, got %d", name, alphabet.Size, len(wiring))
	}
	r := &Reflector{name: name}
	for i := 0; i < alphabet.Size; i++ {
		j := alphabet.Index(wiring[i])
		if j < 0 {
			return nil, fmt.Errorf("reflector %s: %q is not an uppercase letter", name, wiring[i])
		}
		if j == i {
			return nil, fmt.Errorf("reflector %s: %c reflects to itself", name, wiring[i])
		}
		r.table[i] = j
	}
	for i, j := range r.table {
		if r.table[j] != i {
			return nil, fmt.Errorf("reflector %s: wiring is not an involution at %c", name, alphabet.Letter(i))
		}
	}
	return r, nil
}

// ByName returns a catalog reflector.  The empty name selects B, the
// standard fit.
func ByName(name string) (*Reflector, error) {
	switch name {
	case "", "B":
		return B, nil
	case "C":
		return C, nil
	}
	return nil, fmt.Errorf("unknown reflector %q: want B or C", name)
}

// Reflect maps a letter through the fixed table.
func (r *Reflector) Reflect(c byte) byte {
	return alphabet.Letter(r.table[alphabet.Index(c)])
}

// Name returns the catalog name the reflector was built with.
func (r *Reflector) Name() string {
	return r.name
}

func mustNew(name, wiring string) *Reflector {
	r, err := New(name, wiring)
	if err != nil {
		panic(err)
	}
	return r
}
