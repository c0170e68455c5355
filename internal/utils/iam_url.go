package utils

import (
	"fmt"
	"net/url"
)

// IAMAPIURL returns the IAM endpoint serving the cloud at baseURL, e.g.
// https://cloud.ibm.com -> https://iam.cloud.ibm.com. Port and path are
// dropped.
func IAMAPIURL(baseURL string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid url %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Hostname() == "" {
		return "", fmt.Errorf("invalid url %q: scheme and host are required", baseURL)
	}
	return fmt.Sprintf("%s://iam.%s", u.Scheme, u.Hostname()), nil
}
