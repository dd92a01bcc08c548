package cli

import (
	"github.com/spf13/cobra"

	http "github.com/louisgoodnews/webutils/internal/http"
)

var postCmd = &cobra.Command{
	Use:   "post URL",
	Short: "Perform a POST request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVerb(cmd, http.MethodPost, args[0])
	},
}

func init() {
	addRequestFlags(postCmd, true)
}
