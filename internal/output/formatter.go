package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	http "github.com/louisgoodnews/webutils/internal/http"
)

// Formatter renders requests and responses for terminal display.
type Formatter struct {
	Verbose bool
	NoColor bool

	scheme *ColorScheme
}

// NewFormatter creates a new formatter with the given options. Colors are
// disabled when requested or when stdout is not a terminal.
func NewFormatter(verbose, noColor bool) *Formatter {
	noColor = noColor || !IsTerminal()

	scheme := DefaultColorScheme()
	if noColor {
		scheme = NoColorScheme()
	}

	return &Formatter{
		Verbose: verbose,
		NoColor: noColor,
		scheme:  scheme,
	}
}

// FormatRequest formats the outgoing side of an exchange for display.
func (f *Formatter) FormatRequest(method http.Method, url string, headers map[string]string, data map[string]any) string {
	var buf strings.Builder

	buf.WriteString(fmt.Sprintf("▶ REQUEST: %s %s\n", f.scheme.Method.Sprint(method), f.scheme.URL.Sprint(url)))

	if f.Verbose || len(headers) > 0 {
		buf.WriteString("  Headers:\n")
		for _, key := range sortedKeys(headers) {
			buf.WriteString(fmt.Sprintf("    %s: %s\n", f.scheme.HeaderKey.Sprint(key), headers[key]))
		}
	}

	if data != nil {
		encoded, err := json.Marshal(data)
		if err != nil {
			buf.WriteString(fmt.Sprintf("  Body: %v\n", data))
		} else {
			buf.WriteString("  Body: " + formatJSONString(string(encoded)) + "\n")
		}
	}

	return buf.String()
}

// FormatResponse formats a completed response for display.
func (f *Formatter) FormatResponse(resp *http.Response) string {
	var buf strings.Builder

	statusColor := f.scheme.StatusOK
	if !resp.Success() {
		statusColor = f.scheme.StatusError
	}

	buf.WriteString(fmt.Sprintf("◀ RESPONSE: %s (%.0fms)\n",
		statusColor.Sprintf("%d %s", resp.Status(), resp.Message()),
		resp.Duration()*1000))

	if f.Verbose {
		buf.WriteString(fmt.Sprintf("  Type: %s\n", resp.Type()))
		buf.WriteString(fmt.Sprintf("  Start: %s\n", resp.Dict()["start"]))
		buf.WriteString(fmt.Sprintf("  End: %s\n", resp.Dict()["end"]))
		buf.WriteString("  Headers:\n")
		headers := resp.Headers()
		keys := make([]string, 0, len(headers))
		for key := range headers {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			buf.WriteString(fmt.Sprintf("    %s: %v\n", f.scheme.HeaderKey.Sprint(key), headers[key]))
		}
	}

	if len(resp.Body()) > 0 {
		encoded, err := json.Marshal(resp.Body())
		if err == nil {
			buf.WriteString("  Body:\n")
			buf.WriteString(formatJSONString(string(encoded)))
			buf.WriteString("\n")
		}
	}

	return buf.String()
}

// FormatResponseJSON renders the serialized Dict view of a response as
// indented JSON, for machine-friendly output.
func (f *Formatter) FormatResponseJSON(resp *http.Response) (string, error) {
	encoded, err := json.MarshalIndent(resp.Dict(), "", "  ")
	if err != nil {
		return "", err
	}
	return string(encoded) + "\n", nil
}

// formatJSONString attempts to pretty-print a JSON string
func formatJSONString(s string) string {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, []byte(s), "  ", "  "); err != nil {
		return s
	}
	return pretty.String()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
