package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvroute/logging"
	"github.com/katalvlaran/lvroute/metrics"
	"github.com/katalvlaran/lvroute/render"
	"github.com/katalvlaran/lvroute/session"
	"github.com/katalvlaran/lvroute/tui"
)

func newRunCmd() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start an interactive session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			defer a.log.Sync() //nolint:errcheck
			if mode != "" {
				a.cfg.Session.Mode = mode
			}
			return a.run(cmd)
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "", "prompt or tui; overrides session.mode")

	return cmd
}

// run starts the metrics listener and config watcher next to the session and
// stops them when the session ends.
func (a *app) run(cmd *cobra.Command) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	grp, ctx := errgroup.WithContext(ctx)

	var reg *metrics.Registry
	if a.cfg.Metrics.Enabled {
		reg = metrics.NewRegistry()
		grp.Go(func() error {
			a.serveMetrics(ctx, reg, cmd.ErrOrStderr())
			return nil
		})
	}

	a.followLogLevel()
	stopWatch, err := a.loader.Watch()
	if err != nil {
		return err
	}
	grp.Go(func() error {
		<-ctx.Done()
		stopWatch()
		return nil
	})

	renderer, err := a.renderer(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	c := session.NewController(a.graph,
		session.WithLogger(a.log.Named("session")),
		session.WithMetrics(reg),
		session.WithRenderer(renderer),
	)

	grp.Go(func() error {
		defer cancel()
		if a.cfg.Session.Mode == "tui" {
			layout, err := a.layout(float64(a.cfg.Render.Width), float64(a.cfg.Render.Height))
			if err != nil {
				return err
			}
			return tui.Run(ctx, tui.New(c, layout, a.cfg.Render.Width, a.cfg.Render.Height))
		}
		return session.NewPrompt(c, cmd.InOrStdin(), cmd.OutOrStdout()).Run(ctx)
	})

	return grp.Wait()
}

// serveMetrics runs the metrics listener until ctx ends. A listener failure
// is logged and reported on errw as soon as it happens, and the session
// carries on without metrics.
func (a *app) serveMetrics(ctx context.Context, reg *metrics.Registry, errw io.Writer) {
	a.log.Info("metrics listening", zap.String("addr", a.cfg.Metrics.Addr))
	err := reg.Serve(ctx, a.cfg.Metrics.Addr)
	if err != nil {
		a.log.Error("metrics listener failed", zap.Error(err))
		fmt.Fprintf(errw, "metrics disabled: %v\n", err)
	}
}

// followLogLevel applies log.level edits on reload unless --log-level pinned
// the level.
func (a *app) followLogLevel() {
	if logLevel != "" {
		a.log.Debug("log level pinned by flag", zap.String("level", logLevel))
		return
	}
	logging.Follow(a.loader, a.level, a.log)
}

// renderer builds the route renderer. The terminal picture is only drawn in
// prompt mode; the TUI draws its own.
func (a *app) renderer(w io.Writer) (render.Renderer, error) {
	var out render.Multi
	rc := a.cfg.Render
	if rc.Enabled && a.cfg.Session.Mode == "prompt" {
		layout, err := a.layout(float64(rc.Width), float64(rc.Height))
		if err != nil {
			return nil, err
		}
		out = append(out, render.NewTerminalRenderer(w, layout, rc.Width, rc.Height))
	}
	if rc.Output != "" {
		layout, err := a.layout(1000, 1000)
		if err != nil {
			return nil, err
		}
		out = append(out, render.NewJSONRenderer(rc.Output, layout, 1000, 1000))
	}

	return out, nil
}
