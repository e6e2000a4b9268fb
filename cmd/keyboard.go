// This is free and unencumbered software released into the public domain.
// See the UNLICENSE file for details.

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// keyboardCmd represents the keyboard command
var keyboardCmd = &cobra.Command{
	Use:   "keyboard",
	Short: "Operate the Enigma interactively",
	Long: `Operate the configured Enigma machine line by line.  Each entered line
is encrypted on the live machine, so rotor state carries across lines as
it would across the characters of one message.  The prompt shows the
letters in the three rotor windows.`,
	Run: func(cmd *cobra.Command, args []string) {
		keyboard()
	},
}

func init() {
	rootCmd.AddCommand(keyboardCmd)
}

func keyboard() {
	machine, err := newMachine()
	cobra.CheckErr(err)

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		// Piped input: behave like a line-at-a-time filter.
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			fmt.Println(machine.Process(scanner.Text()))
		}
		checkError(scanner.Err())
		return
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	fmt.Fprintln(os.Stderr, "Enter text to encrypt; Ctrl-D ends the session.")
	for {
		window := machine.Windows()
		input, err := line.Prompt(fmt.Sprintf("enigma %s> ", string(window[:])))
		if err == liner.ErrPromptAborted || err == io.EOF {
			fmt.Fprintln(os.Stderr, "")
			return
		}
		cobra.CheckErr(err)
		if len(input) == 0 {
			continue
		}
		line.AppendHistory(input)
		fmt.Println(machine.Process(input))
	}
}
