package cli

import (
	"github.com/spf13/cobra"

	http "github.com/louisgoodnews/webutils/internal/http"
)

var getCmd = &cobra.Command{
	Use:   "get URL",
	Short: "Perform a GET request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVerb(cmd, http.MethodGet, args[0])
	},
}

func init() {
	addRequestFlags(getCmd, false)
}
