// This is free and unencumbered software released into the public domain.
// See the UNLICENSE file for details.

// Package main - enigma is a simulator of the Wehrmacht Enigma I, the
// three-rotor electromechanical cipher machine, complete with the
// historical rotor catalog, ring settings, plugboard and the
// double-stepping anomaly.
package main

import "enigma/cmd"

func main() {
	cmd.Execute()
}
