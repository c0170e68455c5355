package auth

import (
	"net/http"

	"github.com/cpkurotori/qiskit-ibm-runtime/internal/utils"
)

const (
	ServiceCRNHeader    = "Service-CRN"
	AuthorizationHeader = "Authorization"
)

// CloudAuth attaches IBM Cloud IAM credentials: a bearer token obtained from
// a TokenManager and the CRN of the target service instance.
type CloudAuth struct {
	// apiKey is kept only to compare authenticators.
	apiKey string
	crn    string
	tm     TokenManager
}

var _ Authenticator = (*CloudAuth)(nil)

// NewCloudAuth resolves the IAM endpoint belonging to endpointURL and binds an
// IAM token manager to apiKey and that endpoint. Only a malformed endpointURL
// fails here; the key is neither checked nor exchanged until Headers or Apply.
func NewCloudAuth(apiKey, crn, endpointURL string) (*CloudAuth, error) {
	iamURL, err := utils.IAMAPIURL(endpointURL)
	if err != nil {
		return nil, err
	}
	return NewCloudAuthWithTokenManager(apiKey, crn, NewIAMTokenManager(apiKey, iamURL)), nil
}

func NewCloudAuthWithTokenManager(apiKey, crn string, tm TokenManager) *CloudAuth {
	return &CloudAuth{
		apiKey: apiKey,
		crn:    crn,
		tm:     tm,
	}
}

func (c *CloudAuth) CRN() string {
	return c.crn
}

// Headers asks the token manager for a current token. Whatever error the
// token manager returns is handed back untouched.
func (c *CloudAuth) Headers() (map[string]string, error) {
	token, err := c.tm.GetToken()
	if err != nil {
		return nil, err
	}
	return map[string]string{
		ServiceCRNHeader:    c.crn,
		AuthorizationHeader: "Bearer " + token,
	}, nil
}

func (c *CloudAuth) Apply(req *http.Request) (*http.Request, error) {
	headers, err := c.Headers()
	if err != nil {
		return nil, err
	}
	return applyHeaders(req, headers), nil
}

func (c *CloudAuth) Equal(other Authenticator) bool {
	o, ok := other.(*CloudAuth)
	if !ok || c == nil || o == nil {
		return ok && c == o
	}
	return c.apiKey == o.apiKey && c.crn == o.crn
}
