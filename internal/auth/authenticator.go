package auth

import (
	"github.com/go-openapi/runtime"
	"github.com/go-openapi/strfmt"
)

// AuthInfo exposes a as credentials for go-openapi generated clients.
// Header names go through ClientRequest.SetHeaderParam, which stores them in
// canonical form.
func AuthInfo(a Authenticator) runtime.ClientAuthInfoWriter {
	return runtime.ClientAuthInfoWriterFunc(func(req runtime.ClientRequest, _ strfmt.Registry) error {
		headers, err := a.Headers()
		if err != nil {
			return err
		}
		for name, value := range headers {
			if err := req.SetHeaderParam(name, value); err != nil {
				return err
			}
		}
		return nil
	})
}
