package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/roundplan/internal/instance"
	"github.com/katalvlaran/roundplan/network"
)

// loadInstance reads path, or the command's stdin for "-".
func loadInstance(cmd *cobra.Command, path string) (*network.Graph, error) {
	if path == instance.Stdin || path == "" {
		return instance.Parse(cmd.InOrStdin())
	}

	return instance.Load(path)
}
