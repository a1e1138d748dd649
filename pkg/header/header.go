// Package header provides the kind/apiVersion/metadata envelope shared by
// every document rigcheck emits.
package header

import (
	"fmt"
	"strings"
	"time"
)

const (
	APIVersionDomain = "rigcheck.dev"
	APIVersionV1     = "v1"

	// TimestampKey is the metadata key Set records the creation time under.
	TimestampKey = "timestamp"

	// VersionKey is the metadata key for the producing rigcheck version.
	VersionKey = "version"
)

// Header identifies the type and schema version of a document.
type Header struct {
	// Kind is the type of the document, e.g. "BuildReport".
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty"`

	// APIVersion is the schema version of the document.
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`

	// Metadata contains free-form key-value pairs about the document.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Annotate records a metadata entry. Empty values are ignored.
func (h *Header) Annotate(key, value string) {
	if value == "" {
		return
	}
	if h.Metadata == nil {
		h.Metadata = make(map[string]string)
	}
	h.Metadata[key] = value
}

// Set initializes the header for kind. The APIVersion becomes
// "<kind>.rigcheck.dev/v1" and the current UTC time is stored under
// TimestampKey. Existing metadata is kept.
func (h *Header) Set(kind string) {
	h.Kind = kind
	h.APIVersion = fmt.Sprintf("%s.%s/%s", strings.ToLower(kind), APIVersionDomain, APIVersionV1)
	h.Annotate(TimestampKey, time.Now().UTC().Format(time.RFC3339))
}
