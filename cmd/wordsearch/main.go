// Command wordsearch filters a word list from the command line.
//
//	wordsearch --length 5 --criterion a:1 --exclude xyz words.csv
//	wordsearch --chain --target 1 --secondary-length 2 --secondary-match 1 words.csv
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"wordsearch/internal/state"
	"wordsearch/internal/types"
	"wordsearch/internal/wordfilter"
)

var (
	verbose         bool
	jsonOutput      bool
	exactLength     int
	excludedLetters string
	strictCriteria  []string
	looseCriteria   []string
	chained         bool
	targetPosition  int
	looseTarget     bool
	secondaryLength int
	secondaryMatch  int

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "wordsearch [flags] FILE...",
	Short: "Filter a word list by length, excluded letters and letter positions",
	Long: `wordsearch reads one or more word files (one word per line or comma-separated,
"-" for stdin) and prints the words that satisfy every criterion.

A criterion is LETTER:POSITIONS, for example a:1 or e:2,5. Positions count from 1.
--criterion also forbids the letter anywhere else in the word; --loose does not.

With --chain each surviving word is paired with words of --secondary-length that
carry the letter found at --target in position --secondary-match.`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runSearch,
}

func init() {
	flags := rootCmd.Flags()
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	flags.BoolVar(&jsonOutput, "json", false, "Print the full search state as JSON")
	flags.IntVarP(&exactLength, "length", "l", 0, "Exact word length (0 for any)")
	flags.StringVarP(&excludedLetters, "exclude", "x", "", "Letters that must not appear")
	flags.StringArrayVarP(&strictCriteria, "criterion", "c", nil, "LETTER:POSITIONS, letter nowhere else (repeatable)")
	flags.StringArrayVar(&looseCriteria, "loose", nil, "LETTER:POSITIONS, letter may appear elsewhere (repeatable)")
	flags.BoolVar(&chained, "chain", false, "Pair results with secondary words")
	flags.IntVar(&targetPosition, "target", 0, "Position of the link letter in each result word")
	flags.BoolVar(&looseTarget, "loose-target", false, "Allow the link letter to appear elsewhere in the result word")
	flags.IntVar(&secondaryLength, "secondary-length", 0, "Length of secondary words")
	flags.IntVar(&secondaryMatch, "secondary-match", 0, "Position of the link letter in secondary words")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	words, err := readWordFiles(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	logger.Debug("Loaded word list", zap.Int("words", len(words)), zap.Strings("files", args))

	s := state.New().WithWords(words)
	for _, arg := range strictCriteria {
		if s, err = addCriterionFlag(s, arg, true); err != nil {
			return err
		}
	}
	for _, arg := range looseCriteria {
		if s, err = addCriterionFlag(s, arg, false); err != nil {
			return err
		}
	}

	s = s.WithPrimary(exactLength, excludedLetters).WithChain(chained, wordfilter.ChainedConfig{
		TargetPosition:          targetPosition,
		ExclusiveTargetPosition: !looseTarget,
		SecondaryLength:         secondaryLength,
		SecondaryMatchPosition:  secondaryMatch,
	})

	s, err = s.RunSearch()
	if err != nil {
		return err
	}
	logger.Debug("Search complete", zap.Int("results", len(s.Results)), zap.Bool("chained", chained))

	return printResults(cmd.OutOrStdout(), s)
}

// addCriterionFlag parses LETTER:POSITIONS.
func addCriterionFlag(s state.SearchState, arg string, exclusive bool) (state.SearchState, error) {
	letter, positions, ok := strings.Cut(arg, ":")
	if !ok {
		return s, fmt.Errorf("criterion %q: expected LETTER:POSITIONS", arg)
	}
	next, err := s.AddCriterion(letter, positions, exclusive)
	if err != nil {
		return s, fmt.Errorf("criterion %q: %w", arg, err)
	}
	return next, nil
}

func readWordFiles(stdin io.Reader, paths []string) (wordfilter.WordList, error) {
	var all wordfilter.WordList
	for _, path := range paths {
		words, err := readWordFile(stdin, path)
		if err != nil {
			return nil, err
		}
		all = append(all, words...)
	}
	return all, nil
}

func readWordFile(stdin io.Reader, path string) (wordfilter.WordList, error) {
	if path == "-" {
		words, err := wordfilter.ReadWordList(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return words, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word file: %w", err)
	}
	defer f.Close()
	words, err := wordfilter.ReadWordList(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return words, nil
}

func printResults(w io.Writer, s state.SearchState) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(types.FromState(s, ""))
	}
	if msg := s.Message(); msg != "" {
		_, err := fmt.Fprintln(w, msg)
		return err
	}
	for _, pair := range s.Results {
		if _, err := fmt.Fprintln(w, pair.String()); err != nil {
			return err
		}
	}
	return nil
}
