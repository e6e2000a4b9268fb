// This is free and unencumbered software released into the public domain.
// See the UNLICENSE file for details.

package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enigma/machine/alphabet"
)

func defaultConfig() Config {
	return Config{
		Rotors:    []int{0, 1, 2},
		Rings:     []int{0, 0, 0},
		Positions: []int{0, 0, 0},
	}
}

func mustMachine(t *testing.T, cfg Config) *Enigma {
	t.Helper()
	m, err := New(cfg)
	require.NoError(t, err)
	return m
}

// Historical known-answer vectors for rotors I-II-III with reflector B.
func TestKnownAnswerVectors(t *testing.T) {
	m := mustMachine(t, defaultConfig())
	assert.Equal(t, "BDZGO", m.Process("AAAAA"))

	cfg := defaultConfig()
	cfg.Rings = []int{1, 1, 1}
	m = mustMachine(t, cfg)
	assert.Equal(t, "EWTYX", m.Process("AAAAA"))
}

func TestSelfInverseRoundTrip(t *testing.T) {
	cfg := Config{
		Rotors:    []int{1, 4, 2},
		Rings:     []int{3, 21, 7},
		Positions: []int{11, 0, 19},
		Plugboard: []string{"AQ", "EN", "ZX"},
		Reflector: "C",
	}
	plaintext := "THE QUICK BROWN FOX JUMPS OVER 13 LAZY DOGS!"
	ciphertext := mustMachine(t, cfg).Process(plaintext)
	require.NotEqual(t, plaintext, ciphertext)
	assert.Equal(t, plaintext, mustMachine(t, cfg).Process(ciphertext))
}

// The round trip holds against the starting positions, not the
// encrypting machine's end state: a fresh machine decrypts, the used one
// does not.
func TestRoundTripNeedsFreshMachine(t *testing.T) {
	m1 := mustMachine(t, defaultConfig())
	ciphertext := m1.Process("HELLO")
	assert.NotEqual(t, "HELLO", m1.Process(ciphertext))
	m2 := mustMachine(t, defaultConfig())
	assert.Equal(t, "HELLO", m2.Process(ciphertext))
}

func TestScenarioHelloRoundTrip(t *testing.T) {
	m1 := mustMachine(t, defaultConfig())
	ciphertext := m1.Process("HELLO")
	require.NotEqual(t, "HELLO", ciphertext)
	require.Len(t, ciphertext, 5)

	m2 := mustMachine(t, defaultConfig())
	assert.Equal(t, "HELLO", m2.Process(ciphertext))
}

// Regression for the classic missing-exit-swap defect: with plugboard
// pairs configured, forgetting the second Swap still produces ciphertext
// that looks fine but does not decrypt.
func TestPlugboardRoundTrip(t *testing.T) {
	cfg := defaultConfig()
	cfg.Plugboard = []string{"AB", "CD"}
	ciphertext := mustMachine(t, cfg).Process("ABCD")
	require.NotEqual(t, "ABCD", ciphertext)
	assert.Equal(t, "ABCD", mustMachine(t, cfg).Process(ciphertext))
}

func TestNoFixedPoints(t *testing.T) {
	for i := 0; i < alphabet.Size; i++ {
		c := rune(alphabet.Letter(i))
		m := mustMachine(t, defaultConfig())
		assert.NotEqual(t, c, m.EncryptChar(c), "letter %c encrypted to itself", c)
	}
}

// Stepping from A-D-U: the right rotor reaches its notch at V, carrying
// the middle rotor to its notch at E, which on the next keystroke steps
// the left rotor and itself again.  Window sequence A-D-V, A-E-W, B-F-X.
func TestDoubleSteppingSequence(t *testing.T) {
	cfg := defaultConfig()
	cfg.Positions = []int{0, 3, 20} // A D U
	m := mustMachine(t, cfg)

	want := []string{"ADV", "AEW", "BFX"}
	for _, expected := range want {
		m.EncryptChar('A')
		window := m.Windows()
		assert.Equal(t, expected, string(window[:]))
	}
}

// A middle rotor sitting at its notch advances all three rotors on one
// keystroke, even though nothing from the right caused it to step.
func TestMiddleNotchStepsAllThree(t *testing.T) {
	cfg := defaultConfig()
	cfg.Positions = []int{0, 4, 0} // middle rotor II at its notch E
	m := mustMachine(t, cfg)
	m.EncryptChar('A')
	window := m.Windows()
	assert.Equal(t, "BFB", string(window[:]))
}

func TestNonAlphabeticPassthrough(t *testing.T) {
	m := mustMachine(t, defaultConfig())
	out := m.Process("HELLO 123!")
	require.Len(t, out, len("HELLO 123!"))
	assert.Equal(t, " 123!", out[5:])
	assert.NotEqual(t, "HELLO", out[:5])
}

// Non-alphabetic characters must not advance the rotors: the same
// letters with punctuation interleaved encrypt identically.
func TestNonAlphabeticDoesNotStep(t *testing.T) {
	m1 := mustMachine(t, defaultConfig())
	m2 := mustMachine(t, defaultConfig())
	a := m1.Process("AB")
	b := m2.Process("A, B!")
	assert.Equal(t, a, string(b[0])+string(b[3]))
}

// Process uppercases; EncryptChar deliberately does not.  A lowercase
// letter given to EncryptChar passes through untouched, rotors included.
func TestEncryptCharCaseAsymmetry(t *testing.T) {
	m := mustMachine(t, defaultConfig())
	assert.Equal(t, 'a', m.EncryptChar('a'))
	window := m.Windows()
	assert.Equal(t, "AAA", string(window[:]), "lowercase input must not step the rotors")

	m2 := mustMachine(t, defaultConfig())
	assert.Equal(t, "BDZGO", m2.Process("aaaaa"))
}

func TestRepeatedRotorIndicesAreLegal(t *testing.T) {
	cfg := defaultConfig()
	cfg.Rotors = []int{2, 2, 2}
	m := mustMachine(t, cfg)
	ciphertext := m.Process("ENIGMA")
	assert.Equal(t, "ENIGMA", mustMachine(t, cfg).Process(ciphertext))
}

func TestNewRejectsBadConfigurations(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"two rotors", func(c *Config) { c.Rotors = []int{0, 1} }},
		{"four rotors", func(c *Config) { c.Rotors = []int{0, 1, 2, 3} }},
		{"two rings", func(c *Config) { c.Rings = []int{0, 0} }},
		{"two positions", func(c *Config) { c.Positions = []int{0, 0} }},
		{"unknown rotor index", func(c *Config) { c.Rotors = []int{0, 1, 9} }},
		{"negative ring", func(c *Config) { c.Rings = []int{0, -1, 0} }},
		{"position out of range", func(c *Config) { c.Positions = []int{0, 0, 26} }},
		{"duplicate plugboard letter", func(c *Config) { c.Plugboard = []string{"AB", "BC"} }},
		{"unknown reflector", func(c *Config) { c.Reflector = "Q" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.mutate(&cfg)
			_, err := New(cfg)
			assert.Error(t, err)
		})
	}
}

// Longer message: rotor state accumulates across the whole text, and the
// round trip still closes over a middle-rotor turnover.
func TestLongMessageRoundTrip(t *testing.T) {
	cfg := defaultConfig()
	cfg.Positions = []int{0, 3, 15}
	var plaintext string
	for len(plaintext) < 200 {
		plaintext += "WEATHERREPORTFORTHENORTHSEA"
	}
	ciphertext := mustMachine(t, cfg).Process(plaintext)
	require.NotEqual(t, plaintext, ciphertext)
	assert.Equal(t, plaintext, mustMachine(t, cfg).Process(ciphertext))
}
