package test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/brpaz/echozap"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/hospital-mgmt/frontdesk/backend"
	"github.com/hospital-mgmt/frontdesk/errors"
	"github.com/hospital-mgmt/frontdesk/patients"
	"github.com/hospital-mgmt/frontdesk/session"
)

const (
	SigningSecret = "stub-signing-secret"
	TokenLifetime = 24 * time.Hour
)

type Request struct {
	Method        string
	Path          string
	Authorization string
}

type account struct {
	id       int64
	password string
	role     string
}

// Server is an in-memory stand-in for the patients API.
type Server struct {
	*httptest.Server

	mu            sync.Mutex
	accounts      map[string]account
	tokens        map[string]string
	patients      []patients.Patient
	nextPatientId int64
	requests      []Request
	failures      map[string]int
}

func ServerStub(logger *zap.Logger) *Server {
	s := &Server{
		accounts:      make(map[string]account),
		tokens:        make(map[string]string),
		failures:      make(map[string]int),
		nextPatientId: 1,
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = errors.JSONHTTPErrorHandler
	e.Use(s.record)
	if logger != nil {
		e.Use(echozap.ZapLogger(logger))
	}

	e.POST("/api/auth/login", s.login)
	e.POST("/api/auth/register", s.register)

	api := e.Group("/api/patients", s.authorize, s.inject)
	api.GET("", s.listPatients)
	api.POST("", s.createPatient)
	api.PUT("/:id", s.updatePatient)
	api.DELETE("/:id", s.deletePatient)

	s.Server = httptest.NewServer(e)
	return s
}

// AddAccount registers credentials directly, bypassing the register endpoint.
func (s *Server) AddAccount(username, password string, role session.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts[username] = account{
		id:       int64(len(s.accounts) + 1),
		password: password,
		role:     string(role),
	}
}

// IssueToken returns a valid token for an existing account.
func (s *Server) IssueToken(username string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[username]
	if !ok {
		return "", fmt.Errorf("unknown account %q", username)
	}
	return s.issueToken(username, acc)
}

func (s *Server) AddPatient(p patients.Patient) patients.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.Id = s.nextPatientId
	s.nextPatientId++
	s.patients = append(s.patients, p)
	return p
}

func (s *Server) Patients() []patients.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]patients.Patient, len(s.patients))
	copy(result, s.patients)
	return result
}

// FailWith makes every patients request with the given method answer with status.
func (s *Server) FailWith(method string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failures[method] = status
}

func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]Request, len(s.requests))
	copy(result, s.requests)
	return result
}

// CountRequests counts recorded requests by method and path prefix.
func (s *Server) CountRequests(method string, pathPrefix string) int {
	count := 0
	for _, r := range s.Requests() {
		if r.Method == method && strings.HasPrefix(r.Path, pathPrefix) {
			count++
		}
	}
	return count
}

func (s *Server) record(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:        c.Request().Method,
			Path:          c.Request().URL.Path,
			Authorization: c.Request().Header.Get(echo.HeaderAuthorization),
		})
		s.mu.Unlock()
		return next(c)
	}
}

func (s *Server) authorize(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header required")
		}

		s.mu.Lock()
		_, ok := s.tokens[token]
		s.mu.Unlock()
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
		}
		return next(c)
	}
}

func (s *Server) inject(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s.mu.Lock()
		status, ok := s.failures[c.Request().Method]
		s.mu.Unlock()
		if ok {
			return echo.NewHTTPError(status, "injected failure")
		}
		return next(c)
	}
}

func (s *Server) login(c echo.Context) error {
	req := backend.LoginRequest{}
	if err := c.Bind(&req); err != nil || req.Username == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid input")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[req.Username]
	if !ok || acc.password != req.Password {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	}
	token, err := s.issueToken(req.Username, acc)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"token":   token,
		"user": map[string]interface{}{
			"id":       acc.id,
			"username": req.Username,
			"role":     acc.role,
		},
		"message": "Login successful",
	})
}

func (s *Server) register(c echo.Context) error {
	req := backend.RegisterRequest{}
	if err := c.Bind(&req); err != nil || req.Username == "" || req.Password == "" || req.Role == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid input")
	}
	if req.Role != string(session.RoleReceptionist) && req.Role != string(session.RoleDoctor) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid role. Must be 'receptionist' or 'doctor'")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[req.Username]; exists {
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not register user")
	}
	s.accounts[req.Username] = account{
		id:       int64(len(s.accounts) + 1),
		password: req.Password,
		role:     req.Role,
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "User registered successfully",
	})
}

func (s *Server) listPatients(c echo.Context) error {
	return c.JSON(http.StatusOK, s.Patients())
}

func (s *Server) createPatient(c echo.Context) error {
	fields := patients.Fields{}
	if err := c.Bind(&fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created := s.AddPatient(fromFields(0, fields))
	return c.JSON(http.StatusCreated, created)
}

func (s *Server) updatePatient(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid patient ID")
	}
	fields := patients.Fields{}
	if err := c.Bind(&fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.patients {
		if p.Id == id {
			s.patients[i] = fromFields(id, fields)
			return c.JSON(http.StatusOK, s.patients[i])
		}
	}
	return echo.NewHTTPError(http.StatusNotFound, "patient not found")
}

func (s *Server) deletePatient(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid patient ID")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.patients {
		if p.Id == id {
			s.patients = append(s.patients[:i:i], s.patients[i+1:]...)
			return c.NoContent(http.StatusNoContent)
		}
	}
	return echo.NewHTTPError(http.StatusNotFound, "patient not found")
}

func (s *Server) issueToken(username string, acc account) (string, error) {
	claims := session.TokenClaims{
		Username: username,
		Role:     acc.role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenLifetime)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(SigningSecret))
	if err != nil {
		return "", err
	}
	s.tokens[token] = username
	return token, nil
}

func fromFields(id int64, f patients.Fields) patients.Patient {
	return patients.Patient{
		Id:          id,
		FirstName:   f.FirstName,
		LastName:    f.LastName,
		DateOfBirth: f.DateOfBirth,
		Gender:      f.Gender,
		Phone:       f.Phone,
		Email:       f.Email,
		Address:     f.Address,
	}
}
