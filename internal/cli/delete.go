package cli

import (
	"github.com/spf13/cobra"

	http "github.com/louisgoodnews/webutils/internal/http"
)

var deleteCmd = &cobra.Command{
	Use:   "delete URL",
	Short: "Perform a DELETE request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVerb(cmd, http.MethodDelete, args[0])
	},
}

func init() {
	addRequestFlags(deleteCmd, true)
}
