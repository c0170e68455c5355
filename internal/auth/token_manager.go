package auth

import "github.com/IBM/go-sdk-core/v5/core"

// TokenManager hands out a currently valid bearer token. Acquiring, caching
// and refreshing the token is entirely up to the implementation, as is being
// safe for concurrent use.
type TokenManager interface {
	GetToken() (string, error)
}

// iamTokenManager defers every check of the API key to GetToken, so a bad
// key is reported when a request is authenticated rather than when the
// manager is built.
type iamTokenManager struct {
	iam *core.IamAuthenticator
}

// NewIAMTokenManager returns a token manager backed by the IBM Cloud SDK IAM
// authenticator, bound to apiKey and iamURL. The authenticator fetches a
// token on first use and refreshes it shortly before it expires.
func NewIAMTokenManager(apiKey, iamURL string) TokenManager {
	return iamTokenManager{
		iam: &core.IamAuthenticator{
			ApiKey: apiKey,
			URL:    iamURL,
		},
	}
}

func (m iamTokenManager) GetToken() (string, error) {
	if err := m.iam.Validate(); err != nil {
		return "", err
	}
	return m.iam.GetToken()
}
