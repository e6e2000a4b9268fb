// This is free and unencumbered software released into the public domain.
// See the UNLICENSE file for details.

// Package alphabet provides the fixed 26-letter machine alphabet shared
// by the rotors, the plugboard and the reflector, along with the modular
// index arithmetic that goes with it.
package alphabet

const (
	// Letters is the machine alphabet in wheel order.
	Letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// Size is the number of contacts on a wheel.
	Size = len(Letters)
)

// Index returns the 0-based alphabet index of an uppercase letter, or -1
// if c is not part of the alphabet.
func Index(c byte) int {
	if c < 'A' || c > 'Z' {
		return -1
	}
	return int(c - 'A')
}

// Letter returns the letter at index i, reduced modulo the alphabet size.
func Letter(i int) byte {
	return Letters[Mod(i)]
}

// Contains reports whether r is one of the 26 uppercase letters.
func Contains(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// Mod reduces i into [0, Size).  Offsets can go negative when a ring
// setting exceeds the rotor position, so a plain % will not do.
func Mod(i int) int {
	return ((i % Size) + Size) % Size
}
