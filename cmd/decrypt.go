// This is free and unencumbered software released into the public domain.
// See the UNLICENSE file for details.

package cmd

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/bgallie/filters/lines"
	"github.com/spf13/cobra"
)

var compactInput bool

// decryptCmd represents the decrypt command
var decryptCmd = &cobra.Command{
	Use:   "decrypt [text]",
	Short: "Decrypt text on the Enigma",
	Long: `Decrypt text on the configured Enigma machine.  The cipher is
self-inverse, so this is the encrypt run with the same settings; use
--compact for ciphertext that was written as 5-letter groups.`,
	Run: func(cmd *cobra.Command, args []string) {
		decrypt(args)
	},
}

func init() {
	rootCmd.AddCommand(decryptCmd)
	decryptCmd.Flags().BoolVarP(&compactInput, "compact", "c", false,
		"strip whitespace from the ciphertext first (inverse of encrypt --group)")
}

func decrypt(args []string) {
	machine, err := newMachine()
	cobra.CheckErr(err)
	fin, fout := getInputAndOutputFiles(false)
	defer fout.Close()
	var text string
	if len(args) > 0 {
		text = strings.Join(args, " ")
	} else {
		var rdr io.Reader = fin
		if compactInput {
			rdr = lines.CombineLines(bufio.NewReader(fin))
		}
		data, err := io.ReadAll(rdr)
		checkError(err)
		text = string(data)
	}
	if compactInput {
		text = stripSpace(text)
	}
	_, err = io.WriteString(fout, machine.Process(text))
	checkError(err)
}

// stripSpace removes all whitespace, undoing the grouping and line
// wrapping applied by encrypt --group.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
