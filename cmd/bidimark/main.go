// Command bidimark resolves the embedding levels of bidirectional text and
// prints them, paragraph by paragraph. Input comes from the command line
// arguments or from stdin; with --html the input is treated as an HTML
// fragment whose dir attributes become directional isolates.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	sheenbidi "github.com/utelle/SheenBidi"
	"github.com/utelle/SheenBidi/classify"
	"github.com/utelle/SheenBidi/display"
	"github.com/utelle/SheenBidi/html"
)

var (
	flagBase     string
	flagHTML     bool
	flagRuns     bool
	flagNoColors bool
)

var rootCmd = &cobra.Command{
	Use:   "bidimark [text]",
	Short: "Resolve UAX#9 embedding levels of bidirectional text",
	Long: `bidimark runs the paragraph-level part of the Unicode Bidirectional
Algorithm (rules P2/P3 and X1-X10) over its input and prints the resolved
embedding level of every position, plus the stream of isolating run
sequences if requested.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&flagBase, "base", "auto-ltr",
		"base direction: ltr, rtl, auto-ltr or auto-rtl")
	rootCmd.Flags().BoolVar(&flagHTML, "html", false,
		"treat input as an HTML fragment (dir attributes become isolates)")
	rootCmd.Flags().BoolVar(&flagRuns, "runs", false,
		"print the isolating run sequences as they are resolved")
	rootCmd.Flags().BoolVar(&flagNoColors, "no-color", false,
		"disable colorized output")
}

func baseLevel(s string) (sheenbidi.Level, error) {
	switch strings.ToLower(s) {
	case "ltr":
		return 0, nil
	case "rtl":
		return 1, nil
	case "auto-ltr", "auto":
		return sheenbidi.LevelDefaultLTR, nil
	case "auto-rtl":
		return sheenbidi.LevelDefaultRTL, nil
	}
	return 0, fmt.Errorf("unknown base direction %q", s)
}

func input(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	raw, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func run(cmd *cobra.Command, args []string) error {
	base, err := baseLevel(flagBase)
	if err != nil {
		return err
	}
	text, err := input(cmd, args)
	if err != nil {
		return err
	}

	var runes []rune
	if flagHTML {
		if runes, err = html.Text(text); err != nil {
			return err
		}
	} else {
		runes = []rune(text)
	}
	if len(runes) == 0 {
		return fmt.Errorf("empty input")
	}

	config := display.ConfigFromTerminal()
	if flagNoColors {
		config.Colors = false
	}

	opts := []sheenbidi.Option{
		sheenbidi.WithSeparatorLengths(classify.Separators(runes)),
	}
	if flagRuns {
		opts = append(opts, sheenbidi.WithRunResolver(&display.RunPrinter{
			W:      cmd.OutOrStdout(),
			Colors: config.Colors,
		}))
	}

	algo := sheenbidi.New(classify.ClassesOfRunes(runes), opts...)
	return algo.EachParagraph(base, func(para *sheenbidi.Paragraph) error {
		return display.Levels(cmd.OutOrStdout(), runes, para, config)
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
