package auth

import "net/http"

const AccessTokenHeader = "X-Access-Token"

// QuantumAuth attaches a static IBM Quantum access token.
type QuantumAuth struct {
	accessToken string
}

var _ Authenticator = (*QuantumAuth)(nil)

func NewQuantumAuth(accessToken string) *QuantumAuth {
	return &QuantumAuth{accessToken: accessToken}
}

// Headers never fails.
func (q *QuantumAuth) Headers() (map[string]string, error) {
	return map[string]string{AccessTokenHeader: q.accessToken}, nil
}

func (q *QuantumAuth) Apply(req *http.Request) (*http.Request, error) {
	headers, _ := q.Headers()
	return applyHeaders(req, headers), nil
}

func (q *QuantumAuth) Equal(other Authenticator) bool {
	o, ok := other.(*QuantumAuth)
	if !ok || q == nil || o == nil {
		return ok && q == o
	}
	return q.accessToken == o.accessToken
}
