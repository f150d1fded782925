// internal/cli/serve.go
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"career-match/internal/api"
	"career-match/internal/common/camunda"
	"career-match/internal/common/config"
	matchcareer "career-match/internal/workers/assessment/match-career"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and, when camunda is enabled, the match-career job worker",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, opts)
		},
	}
}

func serve(ctx context.Context, opts *rootOptions) error {
	rt, err := openRuntime(ctx, opts, runtimeOptions{service: true})
	if err != nil {
		return err
	}
	defer rt.Close()

	rt.log.Info("Starting career-match service...", map[string]interface{}{
		"version":     version,
		"environment": rt.cfg.App.Environment,
	})

	var (
		zeebe     *camunda.Client
		jobWorker *camunda.CamundaWorker
	)
	if rt.cfg.Camunda.Enabled {
		zeebe, err = camunda.Connect(ctx, camunda.ClientConfigFrom(rt.cfg.Camunda), rt.log)
		if err != nil {
			return err
		}
		jobWorker = camunda.StartWorker(
			zeebe.GetClient(),
			matchcareer.TaskType,
			config.GetWorkerConfig(rt.cfg, matchcareer.TaskType),
			rt.handler,
			rt.log,
		)
	}

	server := api.NewServer(rt.cfg.Server, rt.handler, rt.log)
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Listen()
	}()

	select {
	case <-ctx.Done():
		rt.log.Info("Shutdown signal received, stopping service...", nil)
	case err = <-serverErr:
		rt.log.Error("HTTP server failed", map[string]interface{}{"error": err})
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
		rt.log.Error("Error stopping HTTP server", map[string]interface{}{"error": shutdownErr})
	}
	jobWorker.Stop()
	if zeebe != nil {
		if closeErr := zeebe.Close(); closeErr != nil {
			rt.log.Error("Error closing Zeebe client", map[string]interface{}{"error": closeErr})
		}
	}

	rt.log.Info("career-match service stopped gracefully", nil)
	return err
}
