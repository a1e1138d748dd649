package server

import (
	"net/http"
	"regexp"
	"slices"
)

const (
	// DefaultAPIVersion is served when the client does not ask for one.
	DefaultAPIVersion = "v1"

	apiVersionHeader = "X-API-Version"
)

var (
	supportedAPIVersions = []string{"v1"}

	// application/vnd.rigcheck.v1+json
	vendorMediaType = regexp.MustCompile(`application/vnd\.rigcheck\.(v[0-9]+)\+json`)
)

// negotiateAPIVersion picks the API version from the Accept header,
// falling back to DefaultAPIVersion.
func negotiateAPIVersion(r *http.Request) string {
	m := vendorMediaType.FindStringSubmatch(r.Header.Get("Accept"))
	if m == nil || !isValidAPIVersion(m[1]) {
		return DefaultAPIVersion
	}
	return m[1]
}

func isValidAPIVersion(v string) bool {
	return slices.Contains(supportedAPIVersions, v)
}
