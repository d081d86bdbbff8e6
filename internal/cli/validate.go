package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/roundplan/internal/ctxlog"
	"github.com/katalvlaran/roundplan/internal/instance"
	"github.com/katalvlaran/roundplan/rounds"
)

var (
	errIncomplete     = errors.New("allocation leaves servers unassigned")
	errRoundsMismatch = errors.New("rounds file disagrees with allocation")
)

func newValidateCmd(a *app) *cobra.Command {
	var input, allocation, roundsFile string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check an allocation file against a network instance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := ctxlog.FromContext(cmd.Context())

			g, err := loadInstance(cmd, input)
			if err != nil {
				return fmt.Errorf("load instance: %w", err)
			}

			f, err := os.Open(allocation)
			if err != nil {
				return fmt.Errorf("open allocation: %w", err)
			}
			defer f.Close()
			alloc, err := instance.ParseAllocation(f, g.VertexCount())
			if err != nil {
				return fmt.Errorf("read allocation: %w", err)
			}
			if err = g.ApplyRounds(alloc); err != nil {
				return err
			}

			if err = rounds.Validate(g); err != nil {
				return err
			}
			if !rounds.IsComplete(g) {
				return errIncomplete
			}

			used := g.MaxRound()
			if roundsFile != "" {
				rf, err := os.Open(roundsFile)
				if err != nil {
					return fmt.Errorf("open rounds: %w", err)
				}
				defer rf.Close()
				claimed, err := instance.ParseRounds(rf)
				if err != nil {
					return fmt.Errorf("read rounds: %w", err)
				}
				if claimed != used {
					return fmt.Errorf("%w: file says %d, allocation uses %d", errRoundsMismatch, claimed, used)
				}
			}

			logger.Debug("allocation checked", "servers", g.VertexCount(), "rounds", used)
			fmt.Fprintf(cmd.OutOrStdout(), "valid: %d servers in %d rounds\n", g.VertexCount(), used)

			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", instance.Stdin, "Instance file (- for stdin)")
	cmd.Flags().StringVarP(&allocation, "allocation", "a", "", "Allocation file to check")
	cmd.Flags().StringVarP(&roundsFile, "rounds", "r", "", "Optional rounds file to cross-check")
	_ = cmd.MarkFlagRequired("allocation")

	return cmd
}
