package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/cubelife/internal/config"
	"github.com/san-kum/cubelife/internal/export"
	"github.com/san-kum/cubelife/internal/render"
	"github.com/san-kum/cubelife/internal/tui"
	"github.com/san-kum/cubelife/internal/viz"
)

const defaultConfigPath = "cubelife.yaml"

// app holds the flag values shared by all commands.
type app struct {
	configFile string
	preset     string
	verbose    bool

	watch  bool
	theme  string
	style  string
	width  int
	height int
	output string
	force  bool

	imageFormat string
	imageWidth  int
	imageHeight int
	tableFormat string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		// the viewer may have silenced the default logger
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("cubelife failed", "err", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "cubelife",
		Short:         "cube lifetime versus challenge level",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd.ErrOrStderr(), a.verbose)
		},
		// no subcommand opens the viewer
		RunE: a.runView,
	}
	rootCmd.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVarP(&a.preset, "preset", "p", "", "start from a named preset")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "interactive chart viewer",
		Args:  cobra.NoArgs,
		RunE:  a.runView,
	}
	viewCmd.Flags().BoolVarP(&a.watch, "watch", "w", false, "reload when the config file changes")
	viewCmd.Flags().StringVar(&a.theme, "theme", "", "color theme")
	rootCmd.Flags().AddFlagSet(viewCmd.Flags())

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "print the chart to the terminal",
		Args:  cobra.NoArgs,
		RunE:  a.runPlot,
	}
	plotCmd.Flags().StringVarP(&a.style, "style", "s", "braille", "plot style (braille, ascii)")
	plotCmd.Flags().StringVar(&a.theme, "theme", "", "color theme")
	plotCmd.Flags().IntVar(&a.width, "width", config.DefaultWidth, "width in columns")
	plotCmd.Flags().IntVar(&a.height, "height", config.DefaultHeight, "plot height in rows")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "write the chart as png or svg",
		Args:  cobra.NoArgs,
		RunE:  a.runRender,
	}
	renderCmd.Flags().StringVarP(&a.output, "output", "o", "", "output file (.png or .svg)")
	renderCmd.Flags().StringVarP(&a.imageFormat, "format", "f", "", "image format, defaults to the output extension")
	renderCmd.Flags().IntVar(&a.imageWidth, "width", config.DefaultImageWidth, "image width in pixels")
	renderCmd.Flags().IntVar(&a.imageHeight, "height", config.DefaultImageHeight, "image height in pixels")
	_ = renderCmd.MarkFlagRequired("output")

	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "print the annotated challenge points",
		Args:  cobra.NoArgs,
		RunE:  a.runTable,
	}
	tableCmd.Flags().StringVarP(&a.tableFormat, "format", "f", string(export.FormatText), "table format (text, csv, json)")
	tableCmd.Flags().StringVarP(&a.output, "output", "o", "", "output file, stdout if empty")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "presets:")
			for _, p := range config.ListPresets() {
				fmt.Fprintf(out, "  %s\n", p)
			}
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "config file helpers",
	}
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the resolved configuration to a yaml file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runConfigInit,
	}
	initCmd.Flags().BoolVar(&a.force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(initCmd)

	rootCmd.AddCommand(viewCmd, plotCmd, renderCmd, tableCmd, presetsCmd, configCmd)
	return rootCmd
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// resolve layers defaults, preset, config file, environment and flags, in
// that order.
func (a *app) resolve(cmd *cobra.Command) (*config.Config, error) {
	return a.load(cmd, a.configFile)
}

func (a *app) load(cmd *cobra.Command, path string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if a.preset != "" {
		cfg = config.GetPreset(a.preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", a.preset, config.ListPresets())
		}
	}

	if path != "" {
		loaded, err := config.LoadOver(cfg, path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Display.Theme = a.theme
	}
	switch cmd.Name() {
	case "plot":
		if flags.Changed("width") {
			cfg.Display.Width = a.width
		}
		if flags.Changed("height") {
			cfg.Display.Height = a.height
		}
	case "render":
		if flags.Changed("width") {
			cfg.Display.ImageWidth = a.imageWidth
		}
		if flags.Changed("height") {
			cfg.Display.ImageHeight = a.imageHeight
		}
	}

	slog.Debug("config resolved", "preset", a.preset, "file", path,
		"epochs_per_day", cfg.Axes.EpochsPerDay, "increment", cfg.Axes.EpochIncrement)
	return cfg, nil
}

func (a *app) source() string {
	switch {
	case a.configFile != "":
		return a.configFile
	case a.preset != "":
		return "preset " + a.preset
	}
	return "defaults"
}

func (a *app) runView(cmd *cobra.Command, args []string) error {
	if a.watch && a.configFile == "" {
		return errors.New("--watch needs --config")
	}

	cfg, err := a.resolve(cmd)
	if err != nil {
		return err
	}
	_, ch, err := cfg.Build()
	if err != nil {
		return err
	}

	// the viewer owns the screen; reload errors are shown in it instead
	if !a.verbose {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	}

	m := tui.New(ch, cfg.Display.Theme, cfg.Display.Width, cfg.Display.Height, a.source())

	var watch func(context.Context, func(tea.Msg))
	if a.watch {
		watch = func(ctx context.Context, send func(tea.Msg)) {
			load := func(path string) (*config.Config, error) { return a.load(cmd, path) }
			onChange := func(c *config.Config) {
				_, next, err := c.Build()
				if err != nil {
					send(tui.ErrMsg{Err: err})
					return
				}
				send(tui.ChartMsg{Chart: next})
			}
			onError := func(err error) { send(tui.ErrMsg{Err: err}) }

			if err := config.Watch(ctx, a.configFile, load, onChange, onError); err != nil {
				send(tui.ErrMsg{Err: fmt.Errorf("watch %s: %w", a.configFile, err)})
			}
		}
	}

	return tui.Run(cmd.Context(), m, watch)
}

func (a *app) runPlot(cmd *cobra.Command, args []string) error {
	cfg, err := a.resolve(cmd)
	if err != nil {
		return err
	}
	_, ch, err := cfg.Build()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch a.style {
	case "braille":
		o := render.DefaultTerminalOptions()
		o.Width = cfg.Display.Width
		o.Height = cfg.Display.Height
		o.Theme = viz.GetTheme(cfg.Display.Theme)
		fmt.Fprintln(out, render.Terminal(ch, o))
	case "ascii":
		fmt.Fprint(out, render.ASCII(ch, cfg.Display.Width, cfg.Display.Height))
	default:
		return fmt.Errorf("unknown plot style: %s (available: braille, ascii)", a.style)
	}
	return nil
}

func (a *app) runRender(cmd *cobra.Command, args []string) error {
	name := a.imageFormat
	if name == "" {
		name = a.output
	}
	format, err := render.ParseFormat(name)
	if err != nil {
		return err
	}

	cfg, err := a.resolve(cmd)
	if err != nil {
		return err
	}
	_, ch, err := cfg.Build()
	if err != nil {
		return err
	}

	err = writeFile(a.output, func(w io.Writer) error {
		return render.Image(w, ch, format, cfg.Display.ImageWidth, cfg.Display.ImageHeight)
	})
	if err != nil {
		return err
	}

	slog.Info("chart written", "path", a.output, "format", format)
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", a.output)
	return nil
}

func (a *app) runTable(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(a.tableFormat)
	if err != nil {
		return err
	}

	cfg, err := a.resolve(cmd)
	if err != nil {
		return err
	}
	m, ch, err := cfg.Build()
	if err != nil {
		return err
	}

	if a.output == "" {
		return export.Write(cmd.OutOrStdout(), format, m, ch)
	}

	return writeFile(a.output, func(w io.Writer) error {
		return export.Write(w, format, m, ch)
	})
}

// writeFile creates path and fills it with write. A failed write removes the
// partial file.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

func (a *app) runConfigInit(cmd *cobra.Command, args []string) error {
	path := defaultConfigPath
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !a.force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg, err := a.resolve(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
