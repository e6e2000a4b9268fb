// This is free and unencumbered software released into the public domain.
// See the UNLICENSE file for details.

// Package rotor implements a single Enigma substitution wheel: a wiring
// permutation offset by a ring setting, a rotating position, and a
// turnover notch that carries the next wheel to the left.
package rotor

import (
	"fmt"

	"enigma/machine/alphabet"
)

// Spec describes one catalog entry: a named historical wiring and its
// turnover notch.
type Spec struct {
	Name   string
	Wiring string
	Notch  byte
}

// Catalog is the fixed set of wirings this machine knows about: the five
// wheels issued with the Wehrmacht Enigma I.
var Catalog = []Spec{
	{Name: "I", Wiring: "EKMFLGDQVZNTOWYHXUSPAIBRCJ", Notch: 'Q'},
	{Name: "II", Wiring: "AJDKSIRUXBLHWTMCQGZNPYFVOE", Notch: 'E'},
	{Name: "III", Wiring: "BDFHJLCPRTXVZNYEIWGAKMUSQO", Notch: 'V'},
	{Name: "IV", Wiring: "ESOVPZJAYQUIRHXLNFTGKDCMWB", Notch: 'J'},
	{Name: "V", Wiring: "VZBRGITYUPSDNHLXAWMJQOFECK", Notch: 'Z'},
}

// Rotor is one substitution wheel.  The wiring, notch and ring setting
// are fixed at construction; only the position mutates, advanced in
// place by Step for the lifetime of the machine.
type Rotor struct {
	forward  [alphabet.Size]int
	backward [alphabet.Size]int
	notch    int
	ring     int
	position int
}

// New builds a rotor from a wiring permutation, a notch letter, a ring
// setting and a starting position.  It fails on anything that would
// produce silently wrong ciphertext: a wiring that is not a permutation
// of the alphabet, a notch outside the alphabet, or a ring setting or
// position outside 0-25.
func New(wiring string, notch byte, ring, position int) (*Rotor, error) {
	if len(wiring) != alphabet.Size {
		return nil, fmt.Errorf("rotor wiring %q: want %d letters, got %d", wiring, alphabet.Size, len(wiring))
	}
	n := alphabet.Index(notch)
	if n < 0 {
		return nil, fmt.Errorf("rotor notch %q: not an uppercase letter", notch)
	}
	if ring < 0 || ring >= alphabet.Size {
		return nil, fmt.Errorf("ring setting %d: want 0-%d", ring, alphabet.Size-1)
	}
	if position < 0 || position >= alphabet.Size {
		return nil, fmt.Errorf("rotor position %d: want 0-%d", position, alphabet.Size-1)
	}
	r := &Rotor{notch: n, ring: ring, position: position}
	var seen [alphabet.Size]bool
	for i := 0; i < alphabet.Size; i++ {
		j := alphabet.Index(wiring[i])
		if j < 0 {
			return nil, fmt.Errorf("rotor wiring %q: %q is not an uppercase letter", wiring, wiring[i])
		}
		if seen[j] {
			return nil, fmt.Errorf("rotor wiring %q: %c wired twice", wiring, wiring[i])
		}
		seen[j] = true
		r.forward[i] = j
		r.backward[j] = i
	}
	return r, nil
}

// FromCatalog builds an independent rotor from a catalog index.  Repeat
// indices are legal; each call returns a rotor with its own position.
func FromCatalog(index, ring, position int) (*Rotor, error) {
	if index < 0 || index >= len(Catalog) {
		return nil, fmt.Errorf("rotor index %d: catalog holds rotors 0-%d", index, len(Catalog)-1)
	}
	s := Catalog[index]
	return New(s.Wiring, s.Notch, ring, position)
}

// Forward maps a letter through the wiring in the keyboard-to-reflector
// direction.  The signal enters offset by position minus ring setting
// and leaves shifted back by the same amount; both offsets share the
// same modular arithmetic so the two cannot drift apart.
func (r *Rotor) Forward(c byte) byte {
	shift := r.position - r.ring
	i := alphabet.Mod(alphabet.Index(c) + shift)
	return alphabet.Letter(r.forward[i] - shift)
}

// Backward maps a letter through the wiring in the reflector-to-lamp
// direction.  It is the exact inverse of Forward at the same position
// and ring setting.
func (r *Rotor) Backward(c byte) byte {
	shift := r.position - r.ring
	i := alphabet.Mod(alphabet.Index(c) + shift)
	return alphabet.Letter(r.backward[i] - shift)
}

// Step advances the wheel one position.
func (r *Rotor) Step() {
	r.position = alphabet.Mod(r.position + 1)
}

// AtNotch reports whether the wheel sits at its turnover notch, the
// position where stepping it also steps the next wheel to the left.
func (r *Rotor) AtNotch() bool {
	return r.position == r.notch
}

// Position returns the current rotational offset, 0-25.
func (r *Rotor) Position() int {
	return r.position
}
