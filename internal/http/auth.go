package http

import (
	"encoding/base64"
	"strings"
)

// The authorization schemes accepted by Authorization.Header.
const (
	SchemeBasic  = "basic"
	SchemeBearer = "bearer"
	SchemeCustom = "custom"
	SchemeDigest = "digest"
	SchemeOAuth  = "oauth"
	SchemeOAuth2 = "oauth2"
)

// Authorization holds a credential pair and renders it into the value of
// an Authorization header. Renderings are computed per call; only the raw
// pair is stored. Authorization values are immutable and safe to share
// between goroutines.
type Authorization struct {
	username string
	password string
}

// NewAuthorization creates an Authorization from a credential pair. Both
// values are required but may be empty; no validation is applied.
func NewAuthorization(username, password string) Authorization {
	return Authorization{username: username, password: password}
}

// Username returns the username of the credential pair.
func (a Authorization) Username() string { return a.username }

// Password returns the password of the credential pair.
func (a Authorization) Password() string { return a.password }

// String masks the password so credentials never reach logs in cleartext.
func (a Authorization) String() string {
	return "Authorization(username=" + a.username +
		", password=" + strings.Repeat("*", len(a.password)) + ")"
}

// Basic renders "Basic <base64(username:password)>" using standard
// (padded, non-URL-safe) base64 over the UTF-8 bytes.
func (a Authorization) Basic() string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(a.username+":"+a.password))
}

// Bearer renders the password as a bearer token.
func (a Authorization) Bearer() string { return "Bearer " + a.password }

// Digest renders the password under the Digest scheme token.
func (a Authorization) Digest() string { return "Digest " + a.password }

// OAuth renders the password under the OAuth scheme token.
func (a Authorization) OAuth() string { return "OAuth " + a.password }

// OAuth2 renders the password under the OAuth2 scheme token.
func (a Authorization) OAuth2() string { return "OAuth2 " + a.password }

// Custom renders the password under a caller-supplied scheme token. It is
// the only renderer taking a parameter.
func (a Authorization) Custom(scheme string) string { return scheme + " " + a.password }

// Header renders the named scheme and wraps the value as a ready-to-send
// header mapping. scheme must be one of SchemeBasic, SchemeBearer,
// SchemeCustom, SchemeDigest, SchemeOAuth or SchemeOAuth2; anything else
// fails with *InvalidSchemeError. SchemeCustom renders under the literal
// token "Custom"; use Custom plus HeaderBuilder to pick another token.
func (a Authorization) Header(scheme string) (map[string]string, error) {
	value, err := a.render(scheme)
	if err != nil {
		return nil, err
	}
	return map[string]string{"Authorization": value}, nil
}

// render is the closed dispatch from scheme token to renderer.
func (a Authorization) render(scheme string) (string, error) {
	switch scheme {
	case SchemeBasic:
		return a.Basic(), nil
	case SchemeBearer:
		return a.Bearer(), nil
	case SchemeCustom:
		return a.Custom("Custom"), nil
	case SchemeDigest:
		return a.Digest(), nil
	case SchemeOAuth:
		return a.OAuth(), nil
	case SchemeOAuth2:
		return a.OAuth2(), nil
	default:
		return "", &InvalidSchemeError{Scheme: scheme}
	}
}
