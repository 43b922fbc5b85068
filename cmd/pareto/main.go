// Package main implements the pareto command: epsilon-nondominated
// sorting of delimited input files from the shell.
//
//	pareto runs/*.txt -o 0-2 -e 0.05 0.05 1.0 --contribution > frontier.txt
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/pareto/eparchive"
	"github.com/katalvlaran/pareto/epsort"
	"github.com/katalvlaran/pareto/tabular"
)

var (
	// Sort configuration
	flagObjectives []string
	flagMaximize   []string
	maximizeAll    bool
	flagEpsilons   []float64

	// Input handling
	delimiter   string
	useTabs     bool
	skipBlank   bool
	comments    []string
	headerLines int

	// Output handling
	outputPath    string
	onlyObjective bool
	contribution  bool
	lineNumbers   bool

	// Execution
	parallel bool
	verbose  bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the pareto command.
var rootCmd = &cobra.Command{
	Use:   "pareto [flags] inputs...",
	Short: "Epsilon-nondominated sort for delimited files",
	Long: `pareto filters candidate solutions from multi-objective optimization
runs down to an epsilon-nondominated set.

Each input file contributes rows of delimited numeric fields; use - for
standard input.  Objective columns are selected with -o (zero-indexed,
ranges allowed: "-o 0-2 5"), all columns by default.  Objectives are
minimized unless named by -m/--maximize.  Epsilons (-e, one per
objective) set the resolution of the sort; omitted epsilons default to
1e-9, which approximates an exact Pareto sort.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		if logger, err = config.Build(); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runSort,
}

func init() {
	rootCmd.Flags().StringSliceVarP(&flagObjectives, "objectives", "o", nil,
		"objective columns, zero-indexed, ranges allowed (e.g. 0-2,5)")
	rootCmd.Flags().StringSliceVarP(&flagMaximize, "maximize", "m", nil,
		"objective columns to maximize, zero-indexed, ranges allowed")
	rootCmd.Flags().BoolVarP(&maximizeAll, "maximize-all", "M", false,
		"maximize all objectives")
	rootCmd.Flags().Float64SliceVarP(&flagEpsilons, "epsilons", "e", nil,
		"box widths, one per objective (default 1e-9 each)")

	rootCmd.Flags().StringVarP(&delimiter, "delimiter", "d", " ",
		"input column delimiter")
	rootCmd.Flags().BoolVar(&useTabs, "tabs", false,
		"use tabs as the delimiter")
	rootCmd.MarkFlagsMutuallyExclusive("delimiter", "tabs")
	rootCmd.Flags().BoolVar(&skipBlank, "blank", false,
		"skip blank lines")
	rootCmd.Flags().StringSliceVarP(&comments, "comment", "c", nil,
		"skip lines starting with any of these prefixes")
	rootCmd.Flags().IntVar(&headerLines, "header", 0,
		"number of header lines to skip per input")

	rootCmd.Flags().StringVar(&outputPath, "output", "",
		"output filename (default standard output)")
	rootCmd.Flags().BoolVar(&onlyObjective, "print-only-objectives", false,
		"print only the objective columns")
	rootCmd.Flags().BoolVar(&contribution, "contribution", false,
		"append the source filename to each surviving row")
	rootCmd.Flags().BoolVar(&lineNumbers, "line-number", false,
		"with --contribution, also append the source line number")

	rootCmd.Flags().BoolVar(&parallel, "parallel", false,
		"sort input files concurrently, one shard per file, then merge")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"log archive decisions and sort statistics")
}

// runSort wires the flags into the epsort driver and writes survivors.
func runSort(cmd *cobra.Command, args []string) error {
	objectives, err := parseIndexRanges(flagObjectives)
	if err != nil {
		return fmt.Errorf("--objectives: %w", err)
	}
	maximize, err := parseIndexRanges(flagMaximize)
	if err != nil {
		return fmt.Errorf("--maximize: %w", err)
	}
	// -M with explicit objectives means exactly those columns.
	if maximizeAll && objectives != nil {
		maximize = objectives
		maximizeAll = false
	}
	if useTabs {
		delimiter = "\t"
	}
	// Provenance fields are not numeric; without explicit objective
	// columns they would be parsed as objectives and fail every row.
	if contribution && objectives == nil {
		return errors.New("--contribution requires --objectives")
	}

	tables, names, closeAll, err := openInputs(args)
	if err != nil {
		return err
	}
	defer closeAll()

	opts := epsort.Options{
		Objectives:  objectives,
		Maximize:    maximize,
		MaximizeAll: maximizeAll,
		Epsilons:    flagEpsilons,
	}
	if verbose {
		opts.Archive.OnEvent = func(ev eparchive.Event) {
			logger.Debug("archive event",
				zap.Stringer("kind", ev.Kind),
				zap.Float64s("objectives", ev.Objectives))
		}
	}

	var arch *eparchive.Archive
	if parallel {
		arch, err = epsort.SortSharded(cmd.Context(), tables, opts)
	} else {
		arch, err = epsort.Sort(tables, opts)
	}
	if err != nil {
		return diagnose(err, names)
	}

	logger.Debug("sort complete",
		zap.Int("inputs", len(tables)),
		zap.Int("survivors", arch.Len()),
		zap.Int("objectives", arch.NumObjectives()))

	return writeSurvivors(arch, objectives)
}

// openInputs opens every input argument, mapping "-" to standard input.
func openInputs(args []string) (tables []epsort.Table, names []string, closeAll func(), err error) {
	var files []*os.File
	closeAll = func() {
		for _, f := range files {
			if f != os.Stdin {
				_ = f.Close()
			}
		}
	}

	for _, arg := range args {
		f := os.Stdin
		name := "<stdin>"
		if arg != "-" {
			if f, err = os.Open(arg); err != nil {
				closeAll()

				return nil, nil, func() {}, err
			}
			name = arg
		}
		files = append(files, f)
		names = append(names, name)

		ropts := tabular.Options{
			Delimiter:   delimiter,
			Comment:     comments,
			Header:      headerLines,
			SkipBlank:   skipBlank,
			LineNumbers: lineNumbers,
		}
		if contribution {
			ropts.Contribution = name
		}
		tables = append(tables, tabular.NewReader(f, ropts))
	}

	return tables, names, closeAll, nil
}

// diagnose rewrites a sort failure into a user-facing message naming
// the offending file and row.
func diagnose(err error, names []string) error {
	var rowErr *epsort.RowError
	if errors.As(err, &rowErr) && rowErr.Table >= 0 && rowErr.Table < len(names) {
		return fmt.Errorf("%s: row %d: %w", names[rowErr.Table], rowErr.Row, rowErr.Err)
	}

	return err
}

// writeSurvivors prints the surviving rows, optionally projected down
// to the objective columns.
func writeSurvivors(arch *eparchive.Archive, objectives []int) error {
	var out io.Writer = os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	w := tabular.NewWriter(out, delimiter)
	for _, tag := range arch.Tags() {
		row := tag.([]string)
		if onlyObjective && objectives != nil {
			projected := make([]string, len(objectives))
			for i, c := range objectives {
				projected[i] = row[c]
			}
			row = projected
		}
		if err := w.WriteRow(row); err != nil {
			return err
		}
	}

	return w.Flush()
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "pareto:", err)
		os.Exit(1)
	}
}
