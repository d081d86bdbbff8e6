// Package cli wires the roundplan cobra commands.
package cli

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/roundplan/internal/config"
	"github.com/katalvlaran/roundplan/internal/ctxlog"
	"github.com/katalvlaran/roundplan/internal/logging"
)

// app is the state shared by one command tree.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg    config.Config
	logger *slog.Logger
}

// NewRootCmd creates the root cobra command for the roundplan CLI.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "roundplan",
		Short: "roundplan schedules server updates into conflict-free rounds",
		Long: `roundplan reads a server network ("n m" then m connections) and assigns
every server an update round so that no two connected servers update in the
same round, using as few rounds as possible.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newSolveCmd(a),
		newValidateCmd(a),
		newGenerateCmd(a),
	)

	return root
}

// setup loads the configuration, applies persistent flag overrides and
// puts a run-scoped logger on the command context.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logging.NewLoggerWithWriter(logging.ParseLevel(cfg.Log.Level), cfg.Log.Format, cmd.ErrOrStderr()).
		With("run_id", uuid.New().String(), "command", cmd.Name())
	cmd.SetContext(ctxlog.WithLogger(cmd.Context(), a.logger))

	return nil
}
