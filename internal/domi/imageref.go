package domi

import (
	"encoding/base64"
	"net/url"
	"strings"
)

// ImageRefKind classifies a caller-supplied image reference.
type ImageRefKind int

const (
	RefInvalid ImageRefKind = iota
	RefURL
	RefBase64
)

// ClassifyImageRef decides whether an image reference can be passed upstream:
// an absolute URL (scheme and host both present) or inline base64 data.
// Anything else is RefInvalid and must be rejected before a request is made.
func ClassifyImageRef(ref string) ImageRefKind {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return RefInvalid
	}
	if u, err := url.Parse(ref); err == nil && u.Scheme != "" && u.Host != "" {
		return RefURL
	}
	if _, err := base64.StdEncoding.DecodeString(ref); err == nil {
		return RefBase64
	}
	return RefInvalid
}
