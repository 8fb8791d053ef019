package common

import (
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

// AuthHeader is embedded in every console input that calls the upstream API.
type AuthHeader struct {
	Authorization string `header:"Authorization" doc:"Upstream API token, as 'Token <key>' or 'Bearer <key>'"`
}

func isScheme(s string) bool {
	return strings.EqualFold(s, "Token") || strings.EqualFold(s, "Bearer")
}

// Token extracts the bare upstream token, or returns a 401.
func (a AuthHeader) Token() (string, error) {
	parts := strings.Fields(a.Authorization)
	switch {
	case len(parts) == 1 && !isScheme(parts[0]):
		return parts[0], nil
	case len(parts) == 2 && isScheme(parts[0]):
		return parts[1], nil
	}
	return "", huma.NewError(http.StatusUnauthorized, "missing or malformed Authorization header")
}
