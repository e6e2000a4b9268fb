// This is free and unencumbered software released into the public domain.
// See the UNLICENSE file for details.

package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"enigma/machine"
	"enigma/machine/rotor"
)

var (
	cfgFile        string
	inputFileName  string
	outputFileName string
	verbose        bool
	logger         *log.Logger
	GitCommit      string = "not set"
	GitBranch      string = "not set"
	GitState       string = "not set"
	GitSummary     string = "not set"
	BuildDate      string = "not set"
	Version        string = "dev"
)

const encryptedExtension = ".enigma"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "enigma",
	Short: "A Wehrmacht Enigma I cipher machine",
	Long: `enigma simulates the three-rotor Wehrmacht Enigma I: catalog rotors I-V,
reflectors B and C, ring settings, rotor positions and a plugboard.  The
cipher is self-inverse, so decryption is encryption with the same settings.`,
	Version: Version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	cobra.OnInitialize(initConfig)
	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "enigma"})
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.enigma.yaml)")
	rootCmd.PersistentFlags().StringVarP(&inputFileName, "inputFile", "i", "-", "Name of the file to encrypt/decrypt.")
	rootCmd.PersistentFlags().StringVarP(&outputFileName, "outputFile", "o", "", "Name of the file to write the encrypted/decrypted text to.")
	rootCmd.PersistentFlags().StringSlice("rotors", []string{"I", "II", "III"}, "the three rotors to fit, left to right (catalog names I-V or indices 0-4)")
	rootCmd.PersistentFlags().StringSlice("rings", []string{"A", "A", "A"}, "the three ring settings, left to right (letters A-Z or numbers 0-25)")
	rootCmd.PersistentFlags().StringSlice("positions", []string{"A", "A", "A"}, "the three starting rotor positions, left to right (letters A-Z or numbers 0-25)")
	rootCmd.PersistentFlags().StringSlice("plugboard", nil, "plugboard pairs, e.g. AB,CD or A:B,C:D (at most 13, disjoint)")
	rootCmd.PersistentFlags().String("reflector", "B", "the reflector to fit (B or C)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log the resolved machine settings to stderr")
	cobra.CheckErr(viper.BindPFlag("rotors", rootCmd.PersistentFlags().Lookup("rotors")))
	cobra.CheckErr(viper.BindPFlag("rings", rootCmd.PersistentFlags().Lookup("rings")))
	cobra.CheckErr(viper.BindPFlag("positions", rootCmd.PersistentFlags().Lookup("positions")))
	cobra.CheckErr(viper.BindPFlag("plugboard", rootCmd.PersistentFlags().Lookup("plugboard")))
	cobra.CheckErr(viper.BindPFlag("reflector", rootCmd.PersistentFlags().Lookup("reflector")))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".enigma" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".enigma")
	}

	viper.SetEnvPrefix("enigma")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
}

// newMachine builds the cipher machine from the resolved settings:
// command line flags win over environment variables win over the config
// file.  Any malformed setting stops the run before a single character
// is processed.
func newMachine() (*machine.Enigma, error) {
	cfg := machine.Config{
		Reflector: viper.GetString("reflector"),
	}
	for _, name := range viper.GetStringSlice("rotors") {
		index, err := parseRotorName(name)
		if err != nil {
			return nil, err
		}
		cfg.Rotors = append(cfg.Rotors, index)
	}
	for _, s := range viper.GetStringSlice("rings") {
		v, err := parseSetting(s)
		if err != nil {
			return nil, fmt.Errorf("ring setting %q: %w", s, err)
		}
		cfg.Rings = append(cfg.Rings, v)
	}
	for _, s := range viper.GetStringSlice("positions") {
		v, err := parseSetting(s)
		if err != nil {
			return nil, fmt.Errorf("rotor position %q: %w", s, err)
		}
		cfg.Positions = append(cfg.Positions, v)
	}
	for _, pair := range viper.GetStringSlice("plugboard") {
		cfg.Plugboard = append(cfg.Plugboard, normalizePair(pair))
	}
	logger.Debug("machine settings",
		"rotors", viper.GetStringSlice("rotors"),
		"rings", cfg.Rings,
		"positions", cfg.Positions,
		"plugboard", cfg.Plugboard,
		"reflector", cfg.Reflector)
	return machine.New(cfg)
}

// parseRotorName resolves a rotor given either by its catalog name
// (I-V, case insensitive) or by its catalog index.
func parseRotorName(name string) (int, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for i, s := range rotor.Catalog {
		if s.Name == upper {
			return i, nil
		}
	}
	index, err := strconv.Atoi(upper)
	if err != nil {
		return 0, fmt.Errorf("unknown rotor %q: want a catalog name (I-V) or index", name)
	}
	return index, nil
}

// parseSetting resolves a ring setting or rotor position given either as
// a letter (A-Z) or as a number (0-25).
func parseSetting(s string) (int, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	if len(upper) == 1 && upper[0] >= 'A' && upper[0] <= 'Z' {
		return int(upper[0] - 'A'), nil
	}
	v, err := strconv.Atoi(upper)
	if err != nil {
		return 0, fmt.Errorf("want a letter A-Z or a number 0-25")
	}
	return v, nil
}

// normalizePair uppercases a plugboard pair and accepts the A:B spelling
// alongside AB.  Validation proper happens in the plugboard package.
func normalizePair(pair string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(pair), ":", ""))
}

/*
	getInputAndOutputFiles will return the input and output files to use while
	encrypting/decrypting text.  If input and/or output file names were given,
	then those files will be opened.  Otherwise stdin and stdout are used.
*/
func getInputAndOutputFiles(encrypting bool) (*os.File, *os.File) {
	var fin *os.File
	var err error

	if len(inputFileName) > 0 {
		if inputFileName == "-" {
			fin = os.Stdin
		} else {
			fin, err = os.Open(inputFileName)
			cobra.CheckErr(err)
		}
	} else {
		fin = os.Stdin
	}

	var fout *os.File

	if len(outputFileName) > 0 {
		if outputFileName == "-" {
			fout = os.Stdout
		} else {
			fout, err = os.Create(outputFileName)
			cobra.CheckErr(err)
		}
	} else if inputFileName == "-" {
		fout = os.Stdout
	} else if encrypting {
		outputFileName = inputFileName + encryptedExtension
		fout, err = os.Create(outputFileName)
		cobra.CheckErr(err)
	} else {
		if strings.HasSuffix(inputFileName, encryptedExtension) {
			outputFileName = inputFileName[:len(inputFileName)-len(encryptedExtension)]
			fout, err = os.Create(outputFileName)
			cobra.CheckErr(err)
		} else {
			fout = os.Stdout
		}
	}
	return fin, fout
}

// checkError checks for errors that are not io.EOF and io.ErrUnexpectedEOF and logs them.
func checkError(e error) {
	if e != io.EOF && e != io.ErrUnexpectedEOF {
		cobra.CheckErr(e)
	}
}
