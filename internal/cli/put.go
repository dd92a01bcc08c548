package cli

import (
	"github.com/spf13/cobra"

	http "github.com/louisgoodnews/webutils/internal/http"
)

var putCmd = &cobra.Command{
	Use:   "put URL",
	Short: "Perform a PUT request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVerb(cmd, http.MethodPut, args[0])
	},
}

func init() {
	addRequestFlags(putCmd, true)
}
