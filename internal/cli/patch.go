package cli

import (
	"github.com/spf13/cobra"

	http "github.com/louisgoodnews/webutils/internal/http"
)

var patchCmd = &cobra.Command{
	Use:   "patch URL",
	Short: "Perform a PATCH request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVerb(cmd, http.MethodPatch, args[0])
	},
}

func init() {
	addRequestFlags(patchCmd, true)
}
