package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	http "github.com/louisgoodnews/webutils/internal/http"
	"github.com/louisgoodnews/webutils/internal/output"
	"github.com/louisgoodnews/webutils/pkg/jsonpath"
	"github.com/louisgoodnews/webutils/pkg/jsonschema"
)

// requestOptions carries the flag values shared by every verb command.
type requestOptions struct {
	headers    map[string]string
	data       map[string]any
	verbose    bool
	noColor    bool
	asJSON     bool
	extract    string
	schemaPath string
}

// addRequestFlags registers the flags shared by the verb commands. Body
// verbs additionally accept --data.
func addRequestFlags(cmd *cobra.Command, withBody bool) {
	cmd.Flags().StringArrayP("header", "H", []string{}, "HTTP headers to include (can be used multiple times)")
	cmd.Flags().StringP("auth", "u", "", "Credentials as user:password for the Authorization header")
	cmd.Flags().String("auth-scheme", http.SchemeBasic, "Authorization scheme (basic, bearer, custom, digest, oauth, oauth2)")
	cmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
	cmd.Flags().Bool("json", false, "Print the serialized response record as JSON")
	cmd.Flags().String("extract", "", "JSONPath expression to extract from the response body")
	cmd.Flags().String("schema", "", "JSON Schema file to validate the response body against")
	if withBody {
		cmd.Flags().StringP("data", "d", "", "Request body as a JSON object")
	}
}

// requestOptionsFrom reads the shared flags back out of a command.
func requestOptionsFrom(cmd *cobra.Command, withBody bool) (*requestOptions, error) {
	headerPairs, _ := cmd.Flags().GetStringArray("header")
	headers := parseHeaders(headerPairs)

	auth, _ := cmd.Flags().GetString("auth")
	if auth != "" {
		scheme, _ := cmd.Flags().GetString("auth-scheme")
		username, password, _ := strings.Cut(auth, ":")

		header, err := http.NewAuthorization(username, password).Header(scheme)
		if err != nil {
			return nil, err
		}
		for key, value := range header {
			headers[key] = value
		}
	}

	opts := &requestOptions{headers: headers}

	if withBody {
		raw, _ := cmd.Flags().GetString("data")
		if raw != "" {
			var data map[string]any
			if err := json.Unmarshal([]byte(raw), &data); err != nil {
				return nil, fmt.Errorf("invalid request body: %w", err)
			}
			opts.data = data
		}
	}

	opts.verbose, _ = cmd.Flags().GetBool("verbose")
	opts.noColor, _ = cmd.Flags().GetBool("no-color")
	opts.asJSON, _ = cmd.Flags().GetBool("json")
	opts.extract, _ = cmd.Flags().GetString("extract")
	opts.schemaPath, _ = cmd.Flags().GetString("schema")

	return opts, nil
}

// parseHeaders turns "Key: Value" pairs into a header mapping.
func parseHeaders(pairs []string) map[string]string {
	headers := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, ":")
		if !found {
			continue
		}
		headers[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return headers
}

// methodTakesBody reports whether the verb command accepts --data.
func methodTakesBody(method http.Method) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

// dispatch routes one exchange to the matching Service verb.
func dispatch(ctx context.Context, service *http.Service, method http.Method, url string, data map[string]any, headers map[string]string) (*http.Response, error) {
	switch method {
	case http.MethodGet:
		return service.Get(ctx, url, headers)
	case http.MethodPost:
		return service.Post(ctx, url, data, headers)
	case http.MethodPut:
		return service.Put(ctx, url, data, headers)
	case http.MethodDelete:
		return service.Delete(ctx, url, data, headers)
	case http.MethodPatch:
		return service.Patch(ctx, url, data, headers)
	case http.MethodOptions:
		return service.Options(ctx, url, headers)
	case http.MethodTrace:
		return service.Trace(ctx, url)
	default:
		return nil, fmt.Errorf("unsupported method %s", method)
	}
}

// runVerb executes one verb command end to end: flags, request, response
// rendering, then the optional extraction and schema validation steps.
func runVerb(cmd *cobra.Command, method http.Method, url string) error {
	opts, err := requestOptionsFrom(cmd, methodTakesBody(method))
	if err != nil {
		return err
	}

	formatter := output.NewFormatter(opts.verbose, opts.noColor)
	fmt.Print(formatter.FormatRequest(method, url, opts.headers, opts.data))

	resp, err := dispatch(cmd.Context(), http.NewService(), method, url, opts.data, opts.headers)
	if err != nil {
		return err
	}

	if opts.asJSON {
		out, err := formatter.FormatResponseJSON(resp)
		if err != nil {
			return err
		}
		fmt.Print(out)
	} else {
		fmt.Print(formatter.FormatResponse(resp))
	}

	if opts.extract != "" {
		value, err := extractFromBody(resp, opts.extract)
		if err != nil {
			return err
		}
		fmt.Println(value)
	}

	if opts.schemaPath != "" {
		schema, err := os.ReadFile(opts.schemaPath)
		if err != nil {
			return fmt.Errorf("error reading schema file: %w", err)
		}
		if err := validateBody(resp, string(schema), opts.noColor); err != nil {
			return err
		}
	}

	return nil
}

// extractFromBody runs a JSONPath expression over the decoded body.
func extractFromBody(resp *http.Response, path string) (string, error) {
	document, err := json.Marshal(resp.Body())
	if err != nil {
		return "", err
	}
	return jsonpath.Extract(string(document), path)
}

// validateBody checks the decoded body against a JSON Schema and prints
// one line per violated constraint.
func validateBody(resp *http.Response, schema string, noColor bool) error {
	document, err := json.Marshal(resp.Body())
	if err != nil {
		return err
	}

	if err := jsonschema.Validate(string(document), schema); err != nil {
		for _, failure := range jsonschema.Failures(err) {
			fmt.Printf("  %s %s\n", output.ErrorIcon(noColor), failure)
		}
		return fmt.Errorf("response body does not match schema")
	}

	fmt.Printf("  %s schema valid\n", output.SuccessIcon(noColor))
	return nil
}
