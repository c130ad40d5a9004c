package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/oapi-codegen/runtime"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/hospital-mgmt/frontdesk/errors"
	"github.com/hospital-mgmt/frontdesk/patients"
)

// RequestEditorFn is applied to every request before it is sent.
type RequestEditorFn func(ctx context.Context, req *http.Request) error

// HttpRequestDoer performs HTTP requests. *http.Client satisfies it.
type HttpRequestDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type ClientOption func(*Client) error

type Client struct {
	// Server is the base url of the patients API with a trailing slash.
	Server string

	Client HttpRequestDoer

	// RequestEditors run on every request, authenticated or not.
	RequestEditors []RequestEditorFn

	tokenSource oauth2.TokenSource
	logger      *zap.SugaredLogger
}

var _ ClientInterface = &Client{}

func NewClient(server string, opts ...ClientOption) (*Client, error) {
	client := Client{
		Server: server,
	}
	for _, o := range opts {
		if err := o(&client); err != nil {
			return nil, err
		}
	}
	if !strings.HasSuffix(client.Server, "/") {
		client.Server += "/"
	}
	if client.Client == nil {
		client.Client = &http.Client{}
	}
	if client.logger == nil {
		client.logger = zap.NewNop().Sugar()
	}
	return &client, nil
}

func WithHTTPClient(doer HttpRequestDoer) ClientOption {
	return func(c *Client) error {
		c.Client = doer
		return nil
	}
}

func WithRequestEditorFn(fn RequestEditorFn) ClientOption {
	return func(c *Client) error {
		c.RequestEditors = append(c.RequestEditors, fn)
		return nil
	}
}

// WithTokenSource sets where the bearer token of the patient endpoints comes from.
func WithTokenSource(source oauth2.TokenSource) ClientOption {
	return func(c *Client) error {
		c.tokenSource = source
		return nil
	}
}

func WithLogger(logger *zap.SugaredLogger) ClientOption {
	return func(c *Client) error {
		c.logger = logger
		return nil
	}
}

func (c *Client) Login(ctx context.Context, body LoginRequest) (*LoginResponse, error) {
	req, err := c.newRequest(ctx, http.MethodPost, loginPath, body)
	if err != nil {
		return nil, err
	}
	status, payload, err := c.do(req)
	if err != nil {
		return nil, err
	}

	response := &LoginResponse{}
	if err := json.Unmarshal(payload, response); err != nil {
		return nil, &errors.TransportError{Err: fmt.Errorf("unable to decode login response: %w", err)}
	}
	response.StatusCode = status
	return response, nil
}

func (c *Client) Register(ctx context.Context, body RegisterRequest) (*RegisterResponse, error) {
	req, err := c.newRequest(ctx, http.MethodPost, registerPath, body)
	if err != nil {
		return nil, err
	}
	status, payload, err := c.do(req)
	if err != nil {
		return nil, err
	}

	response := &RegisterResponse{}
	if err := json.Unmarshal(payload, response); err != nil {
		return nil, &errors.TransportError{Err: fmt.Errorf("unable to decode register response: %w", err)}
	}
	response.StatusCode = status
	return response, nil
}

func (c *Client) ListPatients(ctx context.Context) ([]patients.Patient, error) {
	req, err := c.newAuthorizedRequest(ctx, http.MethodGet, patientsPath, nil)
	if err != nil {
		return nil, err
	}
	status, payload, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if !isSuccess(status) {
		return nil, remoteError(status, payload)
	}

	var list []patients.Patient
	if err := json.Unmarshal(payload, &list); err != nil {
		return nil, &errors.TransportError{Err: fmt.Errorf("unable to decode patients: %w", err)}
	}
	if list == nil {
		list = []patients.Patient{}
	}
	return list, nil
}

func (c *Client) CreatePatient(ctx context.Context, body patients.Fields) (*patients.Patient, error) {
	req, err := c.newAuthorizedRequest(ctx, http.MethodPost, patientsPath, body)
	if err != nil {
		return nil, err
	}
	return c.doPatient(req)
}

func (c *Client) UpdatePatient(ctx context.Context, id int64, body patients.Fields) (*patients.Patient, error) {
	path, err := patientPath(id)
	if err != nil {
		return nil, err
	}
	req, err := c.newAuthorizedRequest(ctx, http.MethodPut, path, body)
	if err != nil {
		return nil, err
	}
	return c.doPatient(req)
}

func (c *Client) DeletePatient(ctx context.Context, id int64) error {
	path, err := patientPath(id)
	if err != nil {
		return err
	}
	req, err := c.newAuthorizedRequest(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	status, payload, err := c.do(req)
	if err != nil {
		return err
	}
	if !isSuccess(status) {
		return remoteError(status, payload)
	}
	return nil
}

func (c *Client) doPatient(req *http.Request) (*patients.Patient, error) {
	status, payload, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if !isSuccess(status) {
		return nil, remoteError(status, payload)
	}

	patient := &patients.Patient{}
	if len(bytes.TrimSpace(payload)) == 0 || json.Unmarshal(payload, patient) != nil {
		// The server is allowed to answer with a bare acknowledgement
		return nil, nil
	}
	return patient, nil
}

func (c *Client) newAuthorizedRequest(ctx context.Context, method string, path string, body interface{}) (*http.Request, error) {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	if c.tokenSource == nil {
		return req, nil
	}

	token, err := c.tokenSource.Token()
	if err != nil {
		return nil, err
	}
	token.SetAuthHeader(req)
	return req, nil
}

func (c *Client) newRequest(ctx context.Context, method string, path string, body interface{}) (*http.Request, error) {
	serverURL, err := url.Parse(c.Server)
	if err != nil {
		return nil, err
	}
	if path[0] == '/' {
		path = "." + path
	}
	queryURL, err := serverURL.Parse(path)
	if err != nil {
		return nil, err
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, queryURL.String(), reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Add("Content-Type", "application/json")
	}
	for _, editor := range c.RequestEditors {
		if err := editor(ctx, req); err != nil {
			return nil, err
		}
	}
	return req, nil
}

func (c *Client) do(req *http.Request) (int, []byte, error) {
	c.logger.Debugw("sending request", "method", req.Method, "url", req.URL.String())

	res, err := c.Client.Do(req)
	if err != nil {
		return 0, nil, &errors.TransportError{Err: err}
	}
	defer res.Body.Close()

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		return 0, nil, &errors.TransportError{Err: err}
	}

	c.logger.Debugw("received response", "method", req.Method, "url", req.URL.String(), "status", res.StatusCode)
	return res.StatusCode, payload, nil
}

func patientPath(id int64) (string, error) {
	pathParam0, err := runtime.StyleParamWithLocation("simple", false, "id", runtime.ParamLocationPath, id)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s", patientsPath, pathParam0), nil
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

func remoteError(status int, payload []byte) *errors.RemoteError {
	e := &errors.RemoteError{Code: status}
	body := errorPayload{}
	if err := json.Unmarshal(payload, &body); err == nil {
		e.Message = body.Error
	}
	return e
}
