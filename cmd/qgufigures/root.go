package main

import (
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/iafilius/AttosecondDelays/src/figures"
	"github.com/iafilius/AttosecondDelays/src/physics"
)

var version = "dev"

// rootOptions holds the flags of the root command. LogLevel and NoColor are shared with
// every subcommand.
type rootOptions struct {
	OutDir      string
	Figures     string
	Formats     string
	PanelWidth  int
	PanelHeight int
	DataDir     string
	LogLevel    string
	NoColor     bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "qgufigures",
		Short: "Render the QGU attosecond delay figures",
		Long: `Compute Coulomb and QGU photoionization time delays for He, Ne, Ar, Kr and Xe
and write six figures, each as PDF and PNG.

Without flags all six figures are written into the current directory.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			figures.ConfigureLogging(cmd.ErrOrStderr(), opts.NoColor)
			if !figures.SetLogLevel(opts.LogLevel) {
				return fmt.Errorf("invalid log level %q (want debug|info|warn|error)", opts.LogLevel)
			}
			figures.Debugf("log level %s", figures.GetLogLevel())
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFigures(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.OutDir, "out-dir", ".", "Directory the figure files are written to")
	f.StringVar(&opts.Figures, "figures", "", "Comma separated figure numbers to render (e.g. 1,3); empty = all")
	f.StringVar(&opts.Formats, "formats", "pdf,png", "Comma separated output formats (pdf,png)")
	f.IntVar(&opts.PanelWidth, "panel-width", figures.DefaultPanelWidth, "Width of one panel in pixels (min 320)")
	f.IntVar(&opts.PanelHeight, "panel-height", 0, "Height of one panel in pixels (0 = 0.8 x width)")
	f.StringVar(&opts.DataDir, "data-dir", "", "If set, also write the plotted numbers of each figure as YAML here")
	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.LogLevel, "log-level", "warn", "Log level (debug|info|warn|error)")
	pf.BoolVar(&opts.NoColor, "no-color", false, "Disable colour in banners and logs")

	cmd.AddCommand(newElementsCommand())
	cmd.AddCommand(newCutoffsCommand())
	cmd.AddCommand(newVersionCommand())
	return cmd
}

func runFigures(cmd *cobra.Command, opts *rootOptions) error {
	nums, err := figures.ParseFigureList(opts.Figures)
	if err != nil {
		return err
	}
	formats, err := figures.ParseFormats(opts.Formats)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	b := newBanner(opts.NoColor)
	start := time.Now()

	fmt.Fprintln(out, b.title("QGU attosecond time delays"))
	fmt.Fprintf(out, "[init] figures=%s formats=%s out=%s go=%s/%s\n",
		figureListLabel(nums), opts.Formats, opts.OutDir, runtime.GOOS, runtime.GOARCH)

	written, err := figures.Run(physics.Default(), figures.Options{
		OutDir:      opts.OutDir,
		Figures:     nums,
		Formats:     formats,
		PanelWidth:  opts.PanelWidth,
		PanelHeight: opts.PanelHeight,
		DataDir:     opts.DataDir,
		Console:     out,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(out, b.title(fmt.Sprintf("Done: %d files in %s", len(written), time.Since(start).Round(time.Millisecond))))
	for _, p := range written {
		fmt.Fprintln(out, b.item(filepath.Clean(p)))
	}
	return nil
}

func figureListLabel(nums []int) string {
	if len(nums) == 0 {
		return "all"
	}
	return fmt.Sprint(nums)
}
