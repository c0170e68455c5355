package request

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cpkurotori/qiskit-ibm-runtime/internal/auth"
	"github.com/cpkurotori/qiskit-ibm-runtime/internal/buildinfo"
	"github.com/cpkurotori/qiskit-ibm-runtime/internal/clio"
	"github.com/cpkurotori/qiskit-ibm-runtime/internal/config"
	"github.com/cpkurotori/qiskit-ibm-runtime/internal/print"
	"github.com/cpkurotori/qiskit-ibm-runtime/internal/spinner"
	"github.com/go-openapi/runtime"
	"github.com/go-openapi/runtime/client"
	"github.com/go-openapi/strfmt"
	"github.com/spf13/cobra"
)

func New(api *config.API) *cobra.Command {
	cfg := &config.Request{API: api}

	cmd := &cobra.Command{
		Use:   "request PATH|URL",
		Short: "Send an authenticated request and print the response body",
		Long: `Send an authenticated request and print the response body.

A PATH is resolved against the configured url. An absolute URL is used as is.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRequest(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0])
		},
	}
	cfg.AddFlags(cmd)

	return cmd
}

func runRequest(ctx context.Context, cfg *config.Request, in io.Reader, out, errOut io.Writer, target string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := cfg.InitAPIConfig(); err != nil {
		return print.Error(out, err, cfg.OutputFormat)
	}
	log := cfg.GetLog()

	op, err := newOperation(cfg, in, target)
	if err != nil {
		return print.Error(out, err, cfg.OutputFormat)
	}

	rt := client.New(op.url.Host, "/", []string{op.url.Scheme})
	rt.DefaultAuthentication = auth.AuthInfo(cfg.Authenticator)
	rt.Consumers["*/*"] = runtime.ByteStreamConsumer()

	spin := spinner.Start(errOut, op.method)
	spin.Message(op.url.String())
	res, err := rt.Submit(&runtime.ClientOperation{
		ID:                 "request",
		Method:             op.method,
		PathPattern:        op.path(),
		ProducesMediaTypes: []string{runtime.JSONMime},
		ConsumesMediaTypes: []string{runtime.JSONMime},
		Schemes:            []string{op.url.Scheme},
		Params:             op,
		Reader:             &responseReader{out: out},
		Context:            ctx,
		Client: &http.Client{
			Transport: &loggingTransport{
				log:  log,
				auth: cfg.Authenticator,
				next: http.DefaultTransport,
			},
			Timeout: cfg.Timeout,
		},
	})
	if err != nil {
		spin.StopFail("request failed")
		return print.Error(out, err, cfg.OutputFormat)
	}
	resp := res.(*response)
	spin.Stop(resp.status)

	if resp.code < 200 || resp.code > 299 {
		return print.Error(out, fmt.Errorf("%s %s: %s", op.method, op.url, resp.status), cfg.OutputFormat)
	}
	return nil
}

// operation is a single request built from the command line. It writes its
// own parameters; the runtime adds the auth headers afterwards.
type operation struct {
	method  string
	url     *url.URL
	body    []byte
	headers http.Header
	timeout time.Duration
}

func newOperation(cfg *config.Request, in io.Reader, target string) (*operation, error) {
	raw, err := resolveURL(cfg.URL, target)
	if err != nil {
		return nil, err
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}

	op := &operation{
		method:  strings.ToUpper(cfg.Method),
		url:     u,
		headers: http.Header{},
		timeout: cfg.Timeout,
	}
	if op.method == "" {
		op.method = http.MethodGet
	}

	switch {
	case cfg.Data != "" && cfg.DataFile != "":
		return nil, errors.New("--data and --data-file are mutually exclusive")
	case cfg.Data != "":
		op.body = []byte(cfg.Data)
	case cfg.DataFile != "":
		data, err := clio.LoadJSONBody(cfg.DataFile, in)
		if err != nil {
			return nil, err
		}
		op.body = data
	}

	op.headers.Set("User-Agent", buildinfo.UserAgent())
	for _, h := range cfg.Headers {
		name, value, ok := strings.Cut(h, ":")
		if !ok {
			return nil, fmt.Errorf("invalid header %q, expected 'Name: value'", h)
		}
		op.headers.Set(strings.TrimSpace(name), strings.TrimSpace(value))
	}
	return op, nil
}

func (op *operation) path() string {
	if op.url.Path == "" {
		return "/"
	}
	return op.url.Path
}

func (op *operation) WriteToRequest(req runtime.ClientRequest, _ strfmt.Registry) error {
	if op.timeout > 0 {
		if err := req.SetTimeout(op.timeout); err != nil {
			return err
		}
	}
	for name, values := range op.headers {
		if err := req.SetHeaderParam(name, values...); err != nil {
			return err
		}
	}
	for name, values := range op.url.Query() {
		if err := req.SetQueryParam(name, values...); err != nil {
			return err
		}
	}
	if op.body != nil {
		return req.SetBodyParam(bytes.NewReader(op.body))
	}
	return nil
}

type response struct {
	code   int
	status string
}

// responseReader copies the body to out whatever the status, so error
// documents from the service are shown too.
type responseReader struct {
	out io.Writer
}

func (r *responseReader) ReadResponse(resp runtime.ClientResponse, _ runtime.Consumer) (interface{}, error) {
	if _, err := io.Copy(r.out, resp.Body()); err != nil {
		return nil, err
	}
	return &response{code: resp.Code(), status: resp.Message()}, nil
}

// resolveURL joins a relative target onto base. Absolute targets win.
func resolveURL(base, target string) (string, error) {
	t, err := url.Parse(target)
	if err != nil {
		return "", fmt.Errorf("invalid target %q: %w", target, err)
	}
	if t.IsAbs() {
		return t.String(), nil
	}
	b, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid url %q: %w", base, err)
	}
	if !b.IsAbs() {
		return "", fmt.Errorf("invalid url %q: scheme and host are required", base)
	}
	return b.JoinPath(t.Path).String() + querySuffix(t), nil
}

func querySuffix(u *url.URL) string {
	if u.RawQuery == "" {
		return ""
	}
	return "?" + u.RawQuery
}
