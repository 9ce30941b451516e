package commands

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aurorabank/lumen/internal/buildinfo"
	"github.com/aurorabank/lumen/internal/config"
	"github.com/aurorabank/lumen/internal/gateway"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "lumen",
		Short:   "Aurora banking dashboard and gateway simulator",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newServeCommand(),
		newSnapshotCommand(),
		newOperateCommand(),
		newOperationsCommand(),
		newExportCommand(),
	)

	return rootCmd
}

// gatewayFlags are the simulator knobs shared by every subcommand that talks
// to the gateway. Flags override the config file, which overrides defaults.
type gatewayFlags struct {
	configPath  string
	latencyMS   int
	failureRate float64
	seed        int64
}

func (f *gatewayFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "path to lumen.yaml")
	cmd.Flags().IntVar(&f.latencyMS, "latency", -1, "simulated delay in milliseconds")
	cmd.Flags().Float64Var(&f.failureRate, "failure-rate", -1, "injected failure probability in [0,1]")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "seed for failure injection randomness")
}

func (f *gatewayFlags) load() (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if f.latencyMS >= 0 {
		cfg.Gateway.LatencyMS = f.latencyMS
	}
	if f.failureRate >= 0 {
		cfg.Gateway.FailureRate = f.failureRate
	}
	if f.seed != 0 {
		cfg.Gateway.Seed = f.seed
	}
	return cfg, cfg.Validate()
}

func newSimulator(cfg *config.Config, logger *zap.Logger) *gateway.Simulator {
	opts := []gateway.Option{
		gateway.WithLatency(cfg.Gateway.Latency()),
		gateway.WithFailureRate(cfg.Gateway.FailureRate),
		gateway.WithLogger(logger),
	}
	if cfg.Gateway.Seed != 0 {
		opts = append(opts, gateway.WithRand(rand.NewSource(cfg.Gateway.Seed)))
	}
	return gateway.New(opts...)
}
