package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/san-kum/headmap/internal/config"
	"github.com/san-kum/headmap/internal/export"
	"github.com/san-kum/headmap/internal/gui"
	"github.com/san-kum/headmap/internal/headmap"
	"github.com/san-kum/headmap/internal/playback"
	"github.com/san-kum/headmap/internal/scene"
	"github.com/san-kum/headmap/internal/viz"
)

var (
	shapeFile  string
	dataFile   string
	configFile string
	preset     string
	logLevel   string
	logFile    string
	frameRate  int
	interval   float64
	theme      string
	svgWidth   int
	svgHeight  int
)

// main runs the terminal viewer when no subcommand is given.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

// newRootCmd registers the commands and binds every flag to its package var.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "headmap",
		Short:             "time series point cloud viewer",
		PersistentPreRunE: setupLogging,
		RunE:              runTUI,
		SilenceUsage:      true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&shapeFile, "shape", config.DefaultShapeFile, "vertex positions (csv x,y,z)")
	pf.StringVar(&dataFile, "data", config.DefaultDataFile, "per-vertex time series (csv)")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&logLevel, "log-level", "info", "log level")
	pf.StringVar(&logFile, "log-file", "", "write logs here while a viewer is running")
	pf.IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	pf.Float64Var(&interval, "interval", config.DefaultAdvanceInterval, "seconds per timestep during playback")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "terminal theme")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "terminal viewer",
		RunE:  runTUI,
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "3D window viewer",
		RunE:  runGUI,
	}

	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "summarize the loaded data",
		RunE:  inspect,
	}

	frameCmd := &cobra.Command{
		Use:   "frame [t]",
		Short: "print the mapped visuals at a timestep as csv",
		Args:  cobra.MaximumNArgs(1),
		RunE:  printFrame,
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [t]",
		Short: "render a timestep as svg to stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE:  snapshot,
	}
	snapshotCmd.Flags().IntVar(&svgWidth, "width", 80, "canvas width in cells")
	snapshotCmd.Flags().IntVar(&svgHeight, "height", 40, "canvas height in cells")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(tuiCmd, guiCmd, inspectCmd, frameCmd, snapshotCmd, presetsCmd)
	return rootCmd
}

func setupLogging(cmd *cobra.Command, args []string) error {
	log.SetFormatter(&prefixed.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
		ForceFormatting: true,
	})
	log.SetOutput(os.Stderr)
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	return nil
}

// resolveConfig layers defaults, preset, config file and changed flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("shape") || cfg.ShapeFile == "" {
		cfg.ShapeFile = shapeFile
	}
	if flags.Changed("data") || cfg.DataFile == "" {
		cfg.DataFile = dataFile
	}
	if flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if flags.Changed("interval") {
		cfg.AdvanceInterval = interval
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadCloud(cmd *cobra.Command) (*config.Config, *scene.Graph, *headmap.Cloud, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	graph := scene.New()
	cloud, err := headmap.Load(graph, cfg.ShapeFile, cfg.DataFile, cfg.CloudOptions())
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, graph, cloud, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, graph, cloud, err := loadCloud(cmd)
	if err != nil {
		return err
	}

	if logFile != "" {
		f, err := tea.LogToFile(logFile, "headmap")
		if err != nil {
			return err
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}
	defer log.SetOutput(os.Stderr)

	m := viz.NewModel(cloud, graph, viz.Options{
		FPS:      cfg.FPS,
		Interval: cfg.AdvanceInterval,
		Theme:    cfg.Theme,
	})
	return viz.Run(m)
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, graph, cloud, err := loadCloud(cmd)
	if err != nil {
		return err
	}
	gui.Run(cloud, graph, cfg.AdvanceInterval, cfg.FPS)
	return nil
}

func inspect(cmd *cobra.Command, args []string) error {
	_, _, cloud, err := loadCloud(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("points:    %d\n", len(cloud.Points))
	fmt.Printf("timesteps: %d\n", cloud.Len())
	fmt.Printf("range:     %g .. %g\n", cloud.Range.Min, cloud.Range.Max)

	mean := cloud.MeanSeries()
	if len(mean) < 2 {
		return nil
	}
	fmt.Println()
	fmt.Println(asciigraph.Plot(mean,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("mean value per timestep"),
	))
	return nil
}

func parseTimestep(args []string) (int, error) {
	if len(args) == 0 {
		return 0, nil
	}
	t, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid timestep %q: %w", args[0], err)
	}
	return t, nil
}

// seekCloud loads the cloud and applies the visuals for the requested timestep.
func seekCloud(cmd *cobra.Command, args []string) (*scene.Graph, *headmap.Cloud, int, error) {
	t, err := parseTimestep(args)
	if err != nil {
		return nil, nil, 0, err
	}
	_, graph, cloud, err := loadCloud(cmd)
	if err != nil {
		return nil, nil, 0, err
	}
	ctrl := playback.New(cloud)
	if err := ctrl.Jump(t); err != nil {
		return nil, nil, 0, err
	}
	return graph, cloud, t, nil
}

func printFrame(cmd *cobra.Command, args []string) error {
	_, cloud, t, err := seekCloud(cmd, args)
	if err != nil {
		return err
	}
	return writeFrame(os.Stdout, cloud, t)
}

func snapshot(cmd *cobra.Command, args []string) error {
	graph, _, _, err := seekCloud(cmd, args)
	if err != nil {
		return err
	}
	canvas := viz.NewCanvas(svgWidth, svgHeight)
	cam := viz.NewCamera()
	cam.Fit(viz.BoundingRadius(graph))
	viz.RenderSpheres(canvas, graph, cam)
	return export.WriteSVG(os.Stdout, canvas, 4)
}

// writeFrame writes one row per point with the visuals currently applied.
func writeFrame(w io.Writer, cloud *headmap.Cloud, t int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"index", "x", "y", "z", "value", "r", "g", "b", "a", "scale"}); err != nil {
		return err
	}
	for i, p := range cloud.Points {
		c := p.Sphere.Color
		row := []string{
			strconv.Itoa(i),
			formatFloat(p.Vertex.X),
			formatFloat(p.Vertex.Y),
			formatFloat(p.Vertex.Z),
			formatFloat(p.Series[t]),
			strconv.Itoa(int(c.R)),
			strconv.Itoa(int(c.G)),
			strconv.Itoa(int(c.B)),
			strconv.Itoa(int(c.A)),
			formatFloat(p.Sphere.Scale.X),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
