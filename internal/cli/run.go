package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/louisgoodnews/webutils/internal/config"
	http "github.com/louisgoodnews/webutils/internal/http"
	"github.com/louisgoodnews/webutils/internal/output"
	"github.com/louisgoodnews/webutils/pkg/jsonpath"
)

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Execute a YAML request suite",
	Long: `Run executes every request in a YAML suite file in order, rendering
each response and applying the per-request extract and schema steps.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		noColor, _ := cmd.Flags().GetBool("no-color")

		suite, err := config.Load(args[0])
		if err != nil {
			return err
		}

		formatter := output.NewFormatter(verbose, noColor)
		service := http.NewService()

		failed := 0
		for _, req := range suite.Requests {
			fmt.Printf("%s:\n", req.Name)

			// Validate already vetted the method name.
			method, _ := http.ParseMethod(req.Method)
			url := req.ResolveURL(suite.BaseURL)
			headers := mergeHeaders(suite.Headers, req.Headers)

			fmt.Print(formatter.FormatRequest(method, url, headers, req.Body))

			resp, err := dispatch(cmd.Context(), service, method, url, req.Body, headers)
			if err != nil {
				fmt.Printf("  %s %v\n", output.ErrorIcon(noColor), err)
				failed++
				continue
			}

			fmt.Print(formatter.FormatResponse(resp))

			if len(req.Extract) > 0 {
				if err := runExtractions(resp, req.Extract, noColor); err != nil {
					failed++
					continue
				}
			}

			if req.Schema != "" {
				if err := validateBody(resp, req.Schema, noColor); err != nil {
					failed++
					continue
				}
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d requests failed", failed, len(suite.Requests))
		}
		return nil
	},
}

// runExtractions evaluates every named JSONPath against the response body
// and prints the results.
func runExtractions(resp *http.Response, extract map[string]string, noColor bool) error {
	document, err := json.Marshal(resp.Body())
	if err != nil {
		return err
	}

	values, err := jsonpath.ExtractAll(string(document), extract)
	if err != nil {
		fmt.Printf("  %s %v\n", output.ErrorIcon(noColor), err)
		return err
	}

	for name, value := range values {
		fmt.Printf("  %s = %s\n", name, value)
	}
	return nil
}

// mergeHeaders layers request headers over the suite-wide defaults.
func mergeHeaders(base, extra map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(extra))
	for key, value := range base {
		merged[key] = value
	}
	for key, value := range extra {
		merged[key] = value
	}
	return merged
}

func init() {
	runCmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")
	runCmd.Flags().Bool("no-color", false, "Disable colored output")
}
