package auth

import (
	"errors"
	"net/http"
	"testing"

	"github.com/go-openapi/runtime"
	"github.com/go-openapi/strfmt"
)

type fakeClientRequest struct {
	runtime.ClientRequest
	header http.Header
}

func (r *fakeClientRequest) SetHeaderParam(name string, values ...string) error {
	r.header[http.CanonicalHeaderKey(name)] = values
	return nil
}

func (r *fakeClientRequest) GetHeaderParams() http.Header {
	return r.header
}

func TestAuthInfo(t *testing.T) {
	req := &fakeClientRequest{header: http.Header{}}
	err := AuthInfo(NewQuantumAuth("abc123")).AuthenticateRequest(req, strfmt.Default)
	if err != nil {
		t.Fatalf("AuthenticateRequest failed: %v", err)
	}
	if v := req.GetHeaderParams().Get("X-Access-Token"); v != "abc123" {
		t.Errorf("expected X-Access-Token abc123, got %q", v)
	}

	req = &fakeClientRequest{header: http.Header{}}
	cloud := NewCloudAuthWithTokenManager("key", "crn:v1:x", &stubTokenManager{token: "T1"})
	if err := AuthInfo(cloud).AuthenticateRequest(req, strfmt.Default); err != nil {
		t.Fatalf("AuthenticateRequest failed: %v", err)
	}
	if v := req.GetHeaderParams().Get("Service-CRN"); v != "crn:v1:x" {
		t.Errorf("expected Service-CRN crn:v1:x, got %q", v)
	}
	if v := req.GetHeaderParams().Get("Authorization"); v != "Bearer T1" {
		t.Errorf("expected Authorization Bearer T1, got %q", v)
	}
}

func TestAuthInfoError(t *testing.T) {
	tokenErr := errors.New("boom")
	cloud := NewCloudAuthWithTokenManager("key", "crn:v1:x", &stubTokenManager{err: tokenErr})
	req := &fakeClientRequest{header: http.Header{}}
	if err := AuthInfo(cloud).AuthenticateRequest(req, strfmt.Default); err != tokenErr {
		t.Fatalf("expected %v, got %v", tokenErr, err)
	}
	if len(req.header) != 0 {
		t.Errorf("no headers should be set on error, got %v", req.header)
	}
}
