package backend

import (
	"context"

	"github.com/hospital-mgmt/frontdesk/patients"
)

const (
	loginPath    = "/api/auth/login"
	registerPath = "/api/auth/register"
	patientsPath = "/api/patients"
)

//go:generate mockgen --build_flags=--mod=mod -source=./backend.go -destination=./test/mock_client.go -package test MockClientInterface

// ClientInterface is the part of the patients API used by the front desk. Errors are
// either *errors.TransportError or *errors.RemoteError.
type ClientInterface interface {
	// Login and Register decode the response body whatever the status code, because the
	// server reports credential problems in the payload. Only transport errors are returned.
	Login(ctx context.Context, body LoginRequest) (*LoginResponse, error)
	Register(ctx context.Context, body RegisterRequest) (*RegisterResponse, error)

	ListPatients(ctx context.Context) ([]patients.Patient, error)
	// CreatePatient and UpdatePatient return the patient echoed by the server, or nil when the
	// server only acknowledged the request.
	CreatePatient(ctx context.Context, body patients.Fields) (*patients.Patient, error)
	UpdatePatient(ctx context.Context, id int64, body patients.Fields) (*patients.Patient, error)
	DeletePatient(ctx context.Context, id int64) error
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	StatusCode int                    `json:"-"`
	Success    bool                   `json:"success"`
	Token      string                 `json:"token,omitempty"`
	User       map[string]interface{} `json:"user,omitempty"`
	Message    string                 `json:"message,omitempty"`
	Error      string                 `json:"error,omitempty"`
}

// Authenticated reports whether the login produced a usable session.
func (l *LoginResponse) Authenticated() bool {
	return l != nil && l.Success && l.Token != ""
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type RegisterResponse struct {
	StatusCode int    `json:"-"`
	Success    bool   `json:"success"`
	Message    string `json:"message,omitempty"`
	Error      string `json:"error,omitempty"`
}

type errorPayload struct {
	Error string `json:"error"`
}
