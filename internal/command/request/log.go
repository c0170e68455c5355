package request

import (
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/cpkurotori/qiskit-ibm-runtime/internal/auth"
)

// loggingTransport logs each round trip at debug level. Only the names of
// the auth headers are logged, never their values.
type loggingTransport struct {
	log  *slog.Logger
	auth auth.Authenticator
	next http.RoundTripper
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	t.log.Debug("sending request",
		"method", req.Method,
		"url", req.URL.String(),
		"authHeaders", authHeaderNames(t.auth))

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		t.log.Debug("request failed", "url", req.URL.String(), "error", err)
		return nil, err
	}
	t.log.Debug("received response",
		"url", req.URL.String(),
		"status", resp.StatusCode,
		"duration", time.Since(start))
	return resp, nil
}

// authHeaderNames only knows the names of the concrete authenticators; it
// does not compute headers, so no token is fetched for logging.
func authHeaderNames(a auth.Authenticator) []string {
	var names []string
	switch a.(type) {
	case *auth.CloudAuth:
		names = []string{auth.AuthorizationHeader, auth.ServiceCRNHeader}
	case *auth.QuantumAuth:
		names = []string{auth.AccessTokenHeader}
	}
	sort.Strings(names)
	return names
}
