// Command lvroute computes shortest routes over a small weighted network and
// simulates node failures interactively.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvroute/config"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/ingest"
	"github.com/katalvlaran/lvroute/logging"
	"github.com/katalvlaran/lvroute/render"
)

var (
	configPath string
	envFile    string
	graphPath  string
	logLevel   string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		// A second interrupt kills the process.
		<-ctx.Done()
		stop()
	}()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lvroute",
		Short:         "Shortest routes and failure simulation on small networks",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (hot-reloaded)")
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with LVROUTE_* overrides")
	root.PersistentFlags().StringVar(&graphPath, "graph", "", "graph file (.txt or .yaml); overrides graph.file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error; overrides log.level")

	root.AddCommand(
		newRunCmd(),
		newTableCmd(),
		newRenderCmd(),
		newGenerateCmd(),
	)

	return root
}

// app is the wiring shared by every subcommand.
type app struct {
	loader *config.Loader
	cfg    *config.Config
	log    *zap.Logger
	level  zap.AtomicLevel
	graph  *core.Graph
}

// setup loads config, builds the logger and reads the graph. Flags win over
// the file and the environment.
func setup() (*app, error) {
	loader, err := config.NewLoader(configPath, config.WithEnvFile(envFile))
	if err != nil {
		return nil, err
	}
	cfg := *loader.Config()
	if graphPath != "" {
		cfg.Graph.File = graphPath
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if err = config.Validate(&cfg); err != nil {
		return nil, err
	}

	log, level, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	g, err := ingest.LoadFile(cfg.Graph.File, core.WithLogger(log.Named("core")))
	if err != nil {
		return nil, err
	}
	log.Debug("graph loaded", zap.String("file", cfg.Graph.File), zap.Int("vertices", g.Order()), zap.Int("edges", g.EdgeCount()))

	return &app{loader: loader, cfg: &cfg, log: log, level: level, graph: g}, nil
}

// layout builds the configured layout for a canvas of the given size.
func (a *app) layout(width, height float64) (render.Layout, error) {
	return render.NewLayout(a.cfg.Render.Layout, render.LayoutConfig{
		Width:   width,
		Height:  height,
		Padding: 1,
		Seed:    a.cfg.Render.Seed,
	})
}
