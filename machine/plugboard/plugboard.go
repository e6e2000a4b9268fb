// This is free and unencumbered software released into the public domain.
// See the UNLICENSE file for details.

// Package plugboard implements the Steckerbrett: an involutive swap of
// letter pairs applied when the signal enters the machine and again when
// it leaves.
package plugboard

import (
	"fmt"

	"enigma/machine/alphabet"
)

// MaxPairs is the number of cables the board has room for.
const MaxPairs = 13

// Plugboard is a symmetric letter-swap table.  A letter in no pair maps
// to itself, so the zero configuration is the identity.
type Plugboard struct {
	table [alphabet.Size]int
}

// New builds a plugboard from a list of two-letter pairs such as "AB".
// The pairs must be disjoint: a letter plugged twice, plugged to itself,
// or a malformed pair is a configuration error.
func New(pairs []string) (*Plugboard, error) {
	if len(pairs) > MaxPairs {
		return nil, fmt.Errorf("plugboard takes at most %d pairs, got %d", MaxPairs, len(pairs))
	}
	p := &Plugboard{}
	for i := range p.table {
		p.table[i] = i
	}
	var used [alphabet.Size]bool
	for _, pair := range pairs {
		if len(pair) != 2 {
			return nil, fmt.Errorf("plugboard pair %q: want exactly two letters", pair)
		}
		a, b := alphabet.Index(pair[0]), alphabet.Index(pair[1])
		if a < 0 || b < 0 {
			return nil, fmt.Errorf("plugboard pair %q: letters must be A-Z", pair)
		}
		if a == b {
			return nil, fmt.Errorf("plugboard pair %q: cannot plug a letter to itself", pair)
		}
		if used[a] {
			return nil, fmt.Errorf("plugboard letter %c appears in more than one pair", pair[0])
		}
		if used[b] {
			return nil, fmt.Errorf("plugboard letter %c appears in more than one pair", pair[1])
		}
		used[a], used[b] = true, true
		p.table[a], p.table[b] = b, a
	}
	return p, nil
}

// Swap returns the partner of a plugged letter and the letter itself
// otherwise.  Disjoint pairs make the table an involution, so applying
// Swap twice always returns the original letter.
func (p *Plugboard) Swap(c byte) byte {
	return alphabet.Letter(p.table[alphabet.Index(c)])
}
