// Package auth attaches IBM Cloud and IBM Quantum credentials to outbound
// HTTP requests.
package auth

import (
	"net/http"
	"strings"
)

// Authenticator computes the headers for one credential set and attaches
// them to requests right before they are sent.
type Authenticator interface {
	// Headers returns the header names and values to attach, keyed by the
	// names as documented for the service (for example Service-CRN).
	Headers() (map[string]string, error)

	// Apply merges Headers into req.Header and returns req. The names are
	// stored in canonical form, so req.Header.Get finds them.
	Apply(req *http.Request) (*http.Request, error)

	// Equal reports whether other carries the same identifying credentials.
	// Authenticators of different kinds are never equal.
	Equal(other Authenticator) bool
}

// applyHeaders overwrites the named headers on req, keeping every other
// header as is. Names are stored in canonical form so that http.Header.Get
// and Set find them; any existing entry spelled in another case is dropped.
func applyHeaders(req *http.Request, headers map[string]string) *http.Request {
	if req.Header == nil {
		req.Header = make(http.Header, len(headers))
	}
	for name, value := range headers {
		for key := range req.Header {
			if strings.EqualFold(key, name) {
				delete(req.Header, key)
			}
		}
		req.Header.Set(name, value)
	}
	return req
}
