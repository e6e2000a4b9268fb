// This is free and unencumbered software released into the public domain.
// See the UNLICENSE file for details.

// Package machine wires three rotors, a reflector and a plugboard into a
// Wehrmacht Enigma I cipher machine.  Encryption and decryption are the
// same operation: running the ciphertext through a fresh machine with
// the same settings yields the plaintext again.
package machine

import (
	"fmt"
	"strings"

	"enigma/machine/alphabet"
	"enigma/machine/plugboard"
	"enigma/machine/reflector"
	"enigma/machine/rotor"
)

// Config describes one machine setup.  Rotors, Rings and Positions are
// given left to right and must each hold exactly three entries; Rotors
// holds indices into the rotor catalog, which may repeat.
type Config struct {
	Rotors    []int
	Rings     []int
	Positions []int
	Plugboard []string
	Reflector string
}

// Enigma is a configured machine.  Rotor positions mutate as characters
// are processed, so one Enigma serves one message at a time; it is not
// safe for concurrent use, but independent machines are.
type Enigma struct {
	left   *rotor.Rotor
	middle *rotor.Rotor
	right  *rotor.Rotor
	board  *plugboard.Plugboard
	ukw    *reflector.Reflector
}

var slotNames = [3]string{"left", "middle", "right"}

// New builds a machine, failing fast on any malformed configuration.
// Partial or silently wrong ciphertext is worse than an explicit error,
// so nothing is clamped or defaulted except the reflector name.
func New(cfg Config) (*Enigma, error) {
	if len(cfg.Rotors) != 3 {
		return nil, fmt.Errorf("machine takes exactly 3 rotors, got %d", len(cfg.Rotors))
	}
	if len(cfg.Rings) != 3 {
		return nil, fmt.Errorf("machine takes exactly 3 ring settings, got %d", len(cfg.Rings))
	}
	if len(cfg.Positions) != 3 {
		return nil, fmt.Errorf("machine takes exactly 3 rotor positions, got %d", len(cfg.Positions))
	}
	ukw, err := reflector.ByName(cfg.Reflector)
	if err != nil {
		return nil, err
	}
	board, err := plugboard.New(cfg.Plugboard)
	if err != nil {
		return nil, err
	}
	var wheels [3]*rotor.Rotor
	for i := range wheels {
		wheels[i], err = rotor.FromCatalog(cfg.Rotors[i], cfg.Rings[i], cfg.Positions[i])
		if err != nil {
			return nil, fmt.Errorf("%s rotor: %w", slotNames[i], err)
		}
	}
	return &Enigma{
		left:   wheels[0],
		middle: wheels[1],
		right:  wheels[2],
		board:  board,
		ukw:    ukw,
	}, nil
}

// step advances the rotors for one keystroke.  The middle rotor's notch
// state is sampled before anything moves: a middle rotor at its notch
// turns the left rotor over and steps itself a second time on the same
// keystroke, the double-stepping anomaly.  Re-checking notch state after
// a rotor has moved gives historically wrong results.
func (m *Enigma) step() {
	middleAtNotch := m.middle.AtNotch()
	if m.right.AtNotch() {
		m.middle.Step()
	}
	if middleAtNotch {
		m.left.Step()
		m.middle.Step()
	}
	m.right.Step()
}

// EncryptChar pushes one character through the machine, advancing the
// rotors first.  Characters outside the uppercase alphabet, lowercase
// included, pass through verbatim without moving the rotors; folding to
// uppercase is Process's job, not this layer's.
func (m *Enigma) EncryptChar(r rune) rune {
	if !alphabet.Contains(r) {
		return r
	}
	m.step()
	c := m.board.Swap(byte(r))
	c = m.right.Forward(c)
	c = m.middle.Forward(c)
	c = m.left.Forward(c)
	c = m.ukw.Reflect(c)
	c = m.left.Backward(c)
	c = m.middle.Backward(c)
	c = m.right.Backward(c)
	// The plugboard applies at exit as well as entry.
	c = m.board.Swap(c)
	return rune(c)
}

// Process encrypts a whole message: the input is uppercased, each letter
// is pushed through EncryptChar with rotor state accumulating across the
// message, and non-alphabetic characters are kept at their original
// positions.
func (m *Enigma) Process(text string) string {
	var out strings.Builder
	out.Grow(len(text))
	for _, r := range strings.ToUpper(text) {
		out.WriteRune(m.EncryptChar(r))
	}
	return out.String()
}

// Windows reports the letters visible in the three rotor windows, left
// to right.
func (m *Enigma) Windows() [3]byte {
	return [3]byte{
		alphabet.Letter(m.left.Position()),
		alphabet.Letter(m.middle.Position()),
		alphabet.Letter(m.right.Position()),
	}
}
