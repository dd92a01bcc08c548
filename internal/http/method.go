package http

import (
	"fmt"
	"strings"
)

// Method identifies one of the supported HTTP verbs. The set is closed:
// values are only constructible through the exported constants or
// ParseMethod, and each value stringifies to its wire-form token.
type Method int

// The supported verbs. The zero value is not a valid method.
const (
	MethodGet Method = iota + 1
	MethodPost
	MethodPut
	MethodDelete
	MethodPatch
	MethodHead
	MethodOptions
	MethodTrace
)

var methodTokens = map[Method]string{
	MethodGet:     "GET",
	MethodPost:    "POST",
	MethodPut:     "PUT",
	MethodDelete:  "DELETE",
	MethodPatch:   "PATCH",
	MethodHead:    "HEAD",
	MethodOptions: "OPTIONS",
	MethodTrace:   "TRACE",
}

// String returns the wire-form token for the method, e.g. "GET".
func (m Method) String() string {
	if token, ok := methodTokens[m]; ok {
		return token
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// Valid reports whether the method is one of the supported verbs.
func (m Method) Valid() bool {
	_, ok := methodTokens[m]
	return ok
}

// ParseMethod maps a wire token back to its Method. Matching is
// case-insensitive; unknown tokens fail.
func ParseMethod(token string) (Method, error) {
	normalized := strings.ToUpper(strings.TrimSpace(token))
	for method, wire := range methodTokens {
		if wire == normalized {
			return method, nil
		}
	}
	return 0, fmt.Errorf("unknown HTTP method %q", token)
}
