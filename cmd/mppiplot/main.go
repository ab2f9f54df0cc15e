package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nav-tools/mppiplot/internal/analysis"
	"github.com/nav-tools/mppiplot/internal/config"
	"github.com/nav-tools/mppiplot/internal/export"
	"github.com/nav-tools/mppiplot/internal/figure"
	"github.com/nav-tools/mppiplot/internal/trajectory"
	"github.com/nav-tools/mppiplot/internal/viz"
)

var (
	configFile  string
	verbose     bool
	veryVerbose bool

	dt        float64
	threshold float64
	horizon   float64
	outPath   string
	sizeName  string

	// Preview dimensions in terminal cells
	previewWidth  int
	previewHeight int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mppiplot [trajectory-file]",
		Short: "plot MPPI optimizer trajectory sweeps",
		Args:  cobra.ExactArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetLevel(log.InfoLevel)
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
			if veryVerbose {
				log.SetLevel(log.TraceLevel)
			}
		},
		RunE: renderFigure,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&veryVerbose, "vv", false, "very verbose output")
	rootCmd.PersistentFlags().Float64Var(&dt, "dt", config.DefaultModelDt, "optimizer model timestep")
	rootCmd.PersistentFlags().Float64Var(&threshold, "threshold", config.DefaultThreshold, "path_length regime split")
	rootCmd.PersistentFlags().Float64Var(&horizon, "horizon", config.DefaultHorizon, "trajectory horizon in seconds")

	rootCmd.Flags().StringVarP(&outPath, "out", "o", "", "output PNG path (default: input with .png)")
	rootCmd.Flags().StringVar(&sizeName, "size", "", "figure size preset")

	sweepCmd := &cobra.Command{
		Use:   "sweep [sweep-file]",
		Short: "plot a velocity-response sweep file",
		Args:  cobra.ExactArgs(1),
		RunE:  renderSweep,
	}
	sweepCmd.Flags().StringVarP(&outPath, "out", "o", "", "output PNG path (default: input with .png)")
	sweepCmd.Flags().StringVar(&sizeName, "size", "", "figure size preset")

	previewCmd := &cobra.Command{
		Use:   "preview [trajectory-file]",
		Short: "terminal preview of the comparison figure",
		Args:  cobra.ExactArgs(1),
		RunE:  previewRun,
	}
	previewCmd.Flags().IntVar(&previewWidth, "width", 60, "panel width in cells")
	previewCmd.Flags().IntVar(&previewHeight, "height", 10, "panel height in cells")

	summaryCmd := &cobra.Command{
		Use:   "summary [trajectory-file]",
		Short: "per-group statistics table",
		Args:  cobra.ExactArgs(1),
		RunE:  summaryRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [trajectory-file]",
		Short: "export derived series to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [trajectory-file]",
		Short: "export derived series to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	sizesCmd := &cobra.Command{
		Use:   "sizes",
		Short: "list figure size presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListFigurePresets() {
				fc := config.FigurePresets[name]
				fmt.Printf("%s: %gx%g\n", name, fc.Width, fc.Height)
			}
			return nil
		},
	}

	rootCmd.AddCommand(sweepCmd, previewCmd, summaryCmd, exportCSVCmd, exportJSONCmd, sizesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadSettings resolves the run configuration: defaults, then the
// config file when given, then explicit CLI flags on top.
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("dt") {
		cfg.ModelDt = dt
	}
	if cmd.Flags().Changed("threshold") {
		cfg.Threshold = threshold
	}
	if cmd.Flags().Changed("horizon") {
		cfg.Horizon = horizon
	}
	if sizeName != "" {
		fc := config.GetFigurePreset(sizeName)
		if fc == nil {
			return nil, fmt.Errorf("unknown size preset: %s (available: %v)",
				sizeName, config.ListFigurePresets())
		}
		cfg.Figure = *fc
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func figureOptions(cfg *config.Config) figure.Options {
	return figure.Options{
		Dt:        cfg.ModelDt,
		Threshold: cfg.Threshold,
		Horizon:   cfg.Horizon,
		Width:     cfg.Figure.Width,
		Height:    cfg.Figure.Height,
	}
}

// defaultOut swaps the input extension for .png.
func defaultOut(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".png"
}

func loadGroups(path string) ([]*trajectory.Group, error) {
	recs, err := trajectory.Load(path)
	if err != nil {
		return nil, err
	}
	log.Debugf("parsed %d records from %s", len(recs), path)

	groups := trajectory.GroupByPathLength(recs)
	fmt.Printf("Found %d groups\n", len(groups))
	for _, g := range groups {
		log.Tracef("group %s: %d samples", g.Label(), g.Len())
	}
	return groups, nil
}

func renderFigure(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	groups, err := loadGroups(args[0])
	if err != nil {
		return err
	}

	grid, err := figure.Render(groups, figureOptions(cfg))
	if err != nil {
		return err
	}

	out := outPath
	if out == "" {
		out = defaultOut(args[0])
	}
	if err := grid.Save(out); err != nil {
		return err
	}
	log.Debugf("figure written to %s", out)
	return nil
}

func renderSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	recs, err := trajectory.LoadSweep(args[0])
	if err != nil {
		return err
	}
	log.Debugf("parsed %d sweep records from %s", len(recs), args[0])

	groups := trajectory.GroupSweep(recs)
	fmt.Printf("Found %d groups\n", len(groups))

	grid, err := figure.RenderSweep(groups, figureOptions(cfg))
	if err != nil {
		return err
	}

	out := outPath
	if out == "" {
		out = defaultOut(args[0])
	}
	if err := grid.Save(out); err != nil {
		return err
	}
	log.Debugf("figure written to %s", out)
	return nil
}

func previewRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	groups, err := loadGroups(args[0])
	if err != nil {
		return err
	}

	out, err := viz.RenderPreview(groups, cfg.ModelDt, cfg.Threshold, previewWidth, previewHeight)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func summaryRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	groups, err := loadGroups(args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, viz.HeaderStyle.Render("PATH_LENGTH")+"\tREGIME\tSAMPLES\tX_MIN\tX_MAX\tV_MEAN\tV_PEAK")

	for _, g := range groups {
		s, err := analysis.Summarize(g, cfg.ModelDt)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%g\t%s\t%d\t%.4f\t%.4f\t%.4f\t%.4f\n",
			s.PathLength,
			viz.RegimeLabel(s.PathLength, cfg.Threshold),
			s.Samples, s.XMin, s.XMax, s.VMean, s.VPeak,
		)
	}

	return w.Flush()
}

func exportCSV(cmd *cobra.Command, args []string) error {
	doc, err := buildDocument(cmd, args[0])
	if err != nil {
		return err
	}
	return export.WriteCSV(os.Stdout, doc)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	doc, err := buildDocument(cmd, args[0])
	if err != nil {
		return err
	}
	return export.WriteJSON(os.Stdout, doc)
}

func buildDocument(cmd *cobra.Command, path string) (*export.Document, error) {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return nil, err
	}

	groups, err := loadGroups(path)
	if err != nil {
		return nil, err
	}

	return export.BuildDocument(path, cfg.ModelDt, groups)
}
