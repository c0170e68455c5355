package auth

import "fmt"

const (
	CloudChannel   = "ibm_cloud"
	QuantumChannel = "ibm_quantum"
)

const (
	DefaultCloudURL   = "https://cloud.ibm.com"
	DefaultQuantumURL = "https://auth.quantum-computing.ibm.com/api"
)

// DefaultURL returns the endpoint used for channel when none is configured.
func DefaultURL(channel string) string {
	switch channel {
	case CloudChannel:
		return DefaultCloudURL
	case QuantumChannel:
		return DefaultQuantumURL
	}
	return ""
}

// ForChannel builds the authenticator matching channel. For ibm_cloud, token
// is the IAM API key and instance the service CRN; for ibm_quantum, token is
// the access token and instance is ignored.
func ForChannel(channel, token, instance, url string) (Authenticator, error) {
	switch channel {
	case CloudChannel:
		if url == "" {
			url = DefaultCloudURL
		}
		ca, err := NewCloudAuth(token, instance, url)
		if err != nil {
			return nil, err
		}
		return ca, nil
	case QuantumChannel:
		return NewQuantumAuth(token), nil
	default:
		return nil, fmt.Errorf("unknown channel %q, must be one of %s or %s", channel, CloudChannel, QuantumChannel)
	}
}
