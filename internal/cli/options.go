package cli

import (
	"github.com/spf13/cobra"

	http "github.com/louisgoodnews/webutils/internal/http"
)

var optionsCmd = &cobra.Command{
	Use:   "options URL",
	Short: "Perform an OPTIONS request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVerb(cmd, http.MethodOptions, args[0])
	},
}

func init() {
	addRequestFlags(optionsCmd, false)
}
