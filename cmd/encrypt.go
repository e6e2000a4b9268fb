// This is free and unencumbered software released into the public domain.
// See the UNLICENSE file for details.

package cmd

import (
	"io"
	"strings"

	"github.com/bgallie/filters/lines"
	"github.com/spf13/cobra"

	"enigma/machine/alphabet"
)

var groupOutput bool

// encryptCmd represents the encrypt command
var encryptCmd = &cobra.Command{
	Use:   "encrypt [text]",
	Short: "Encrypt text on the Enigma",
	Long: `Encrypt text on the configured Enigma machine.  The text is taken from
the command line if given, otherwise from the input file or stdin.  Input
is uppercased; characters outside A-Z pass through unchanged.`,
	Run: func(cmd *cobra.Command, args []string) {
		encrypt(args)
	},
}

func init() {
	rootCmd.AddCommand(encryptCmd)
	encryptCmd.Flags().BoolVarP(&groupOutput, "group", "g", false,
		"write the ciphertext as 5-letter transmission groups (drops everything outside A-Z)")
}

func encrypt(args []string) {
	machine, err := newMachine()
	cobra.CheckErr(err)
	fin, fout := getInputAndOutputFiles(true)
	defer fout.Close()
	var text string
	if len(args) > 0 {
		text = strings.Join(args, " ")
	} else {
		data, err := io.ReadAll(fin)
		checkError(err)
		text = string(data)
	}
	ciphertext := machine.Process(text)
	if groupOutput {
		_, err = io.Copy(fout, lines.SplitToLines(strings.NewReader(groupLetters(ciphertext))))
	} else {
		_, err = io.WriteString(fout, ciphertext)
	}
	checkError(err)
	window := machine.Windows()
	logger.Debug("message processed", "characters", len(text), "window", string(window[:]))
}

// groupLetters reflows ciphertext into space-separated 5-letter groups,
// the historical radio transmission format.  Everything outside A-Z is
// dropped, so grouped output round-trips to a letters-only plaintext.
func groupLetters(s string) string {
	var out strings.Builder
	n := 0
	for _, r := range s {
		if !alphabet.Contains(r) {
			continue
		}
		if n > 0 && n%5 == 0 {
			out.WriteByte(' ')
		}
		out.WriteRune(r)
		n++
	}
	return out.String()
}
