// Command squadd runs the product-squad orchestration server.
package main

import (
	"fmt"
	"os"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/spf13/cobra"

	"github.com/ventureops/squad/artifact"
	"github.com/ventureops/squad/comm"
	"github.com/ventureops/squad/config"
	"github.com/ventureops/squad/logging"
	"github.com/ventureops/squad/model"
	"github.com/ventureops/squad/model/anthropic"
	"github.com/ventureops/squad/model/openai"
	"github.com/ventureops/squad/orchestrator"
	"github.com/ventureops/squad/responder"
	"github.com/ventureops/squad/server"
	"github.com/ventureops/squad/session"
	"github.com/ventureops/squad/stats"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "squadd",
		Short:         "AI product squad orchestration server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(configPath)
		},
	}
	rootCmd.AddCommand(serveCmd)

	return rootCmd
}

func serve(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Format: cfg.LogFormat,
	})

	llm, err := buildModel(cfg)
	if err != nil {
		return err
	}
	logger.Info("model.selected", "provider", llm.Info().Provider, "model", llm.Info().Name)

	registry := responder.NewRegistry(llm, logger)
	if err := cfg.ApplyOverrides(registry); err != nil {
		return err
	}

	comms := comm.NewInMemoryStore()
	artifacts := artifact.NewInMemoryStore()
	sessions := session.NewInMemoryStore()
	ledger := stats.NewLedger()

	orch := orchestrator.New(registry, comms, artifacts, func(o *orchestrator.Options) {
		o.Logger = logger
	})

	srv := server.New(orch, registry, sessions, artifacts, comms, ledger, func(o *server.Options) {
		o.Logger = logger
	})

	return srv.Run(cfg.Addr)
}

// buildModel selects the generation backend. API keys come from the
// environment (ANTHROPIC_API_KEY, OPENAI_API_KEY) via the official SDKs.
func buildModel(cfg *config.Config) (model.Model, error) {
	switch cfg.Provider {
	case "anthropic", "":
		return anthropic.NewModel(func(o *anthropic.Options) {
			if cfg.Model != "" {
				o.Model = anthropicsdk.Model(cfg.Model)
			}
		}), nil
	case "openai":
		return openai.NewModel(func(o *openai.Options) {
			if cfg.Model != "" {
				o.Model = cfg.Model
			}
		}), nil
	case "mock":
		return model.NewMockModel("mock"), nil
	default:
		return nil, fmt.Errorf("unknown model provider: %s", cfg.Provider)
	}
}
