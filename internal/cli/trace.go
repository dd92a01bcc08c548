package cli

import (
	"github.com/spf13/cobra"

	http "github.com/louisgoodnews/webutils/internal/http"
)

var traceCmd = &cobra.Command{
	Use:   "trace URL",
	Short: "Perform a TRACE request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVerb(cmd, http.MethodTrace, args[0])
	},
}

func init() {
	addRequestFlags(traceCmd, false)
}
