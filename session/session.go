package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

const (
	TokenKey = "token"
	UserKey  = "user"

	bearerTokenType = "Bearer"
)

var ErrNoSession = errors.New("no active session")

type Role string

const (
	RoleDoctor       Role = "doctor"
	RoleReceptionist Role = "receptionist"
)

type User struct {
	Id       int64  `json:"id,omitempty" mapstructure:"id"`
	Username string `json:"username" mapstructure:"username"`
	Role     Role   `json:"role" mapstructure:"role"`
}

// Initial returns the upper-cased first letter of the username.
func (u User) Initial() string {
	for _, r := range u.Username {
		return strings.ToUpper(string(r))
	}
	return ""
}

type Session struct {
	Token string
	User  *User
}

// Context is the explicit replacement for the ambient token/user globals. Every controller
// receives the same instance and goes through it to read or change the session.
type Context struct {
	store  Store
	logger *zap.SugaredLogger
}

var _ oauth2.TokenSource = &Context{}

func NewContext(store Store, logger *zap.SugaredLogger) *Context {
	return &Context{
		store:  store,
		logger: logger,
	}
}

// AccessToken returns the stored token or an empty string.
func (c *Context) AccessToken() string {
	token, ok, err := c.store.Get(TokenKey)
	if err != nil {
		c.logger.Errorw("unable to read session token", "error", err)
		return ""
	}
	if !ok {
		return ""
	}
	return token
}

func (c *Context) Authenticated() bool {
	return c.AccessToken() != ""
}

// User returns the stored user, or nil when none is stored or it cannot be decoded.
func (c *Context) User() *User {
	raw, ok, err := c.store.Get(UserKey)
	if err != nil {
		c.logger.Errorw("unable to read session user", "error", err)
		return nil
	}
	if !ok || raw == "" {
		return nil
	}

	attributes := map[string]interface{}{}
	if err := json.Unmarshal([]byte(raw), &attributes); err != nil {
		c.logger.Warnw("stored session user is not valid json", "error", err)
		return nil
	}
	user, err := DecodeUser(attributes)
	if err != nil {
		c.logger.Warnw("unable to decode stored session user", "error", err)
		return nil
	}
	return user
}

func (c *Context) Session() (*Session, error) {
	token := c.AccessToken()
	if token == "" {
		return nil, ErrNoSession
	}
	return &Session{
		Token: token,
		User:  c.User(),
	}, nil
}

// Save persists the token and the user object exactly as returned by the login endpoint.
func (c *Context) Save(token string, user map[string]interface{}) error {
	if token == "" {
		return fmt.Errorf("%w: token is empty", ErrNoSession)
	}
	if user == nil {
		user = map[string]interface{}{}
	}
	serialized, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("unable to serialize user: %w", err)
	}

	if err := c.store.Set(TokenKey, token); err != nil {
		return err
	}
	return c.store.Set(UserKey, string(serialized))
}

func (c *Context) Clear() error {
	if err := c.store.Delete(TokenKey); err != nil {
		return err
	}
	return c.store.Delete(UserKey)
}

// Token implements oauth2.TokenSource so the API client can authorize requests.
func (c *Context) Token() (*oauth2.Token, error) {
	token := c.AccessToken()
	if token == "" {
		return nil, ErrNoSession
	}
	return &oauth2.Token{
		AccessToken: token,
		TokenType:   bearerTokenType,
	}, nil
}

func DecodeUser(attributes map[string]interface{}) (*User, error) {
	user := &User{}
	if err := mapstructure.Decode(attributes, user); err != nil {
		return nil, err
	}
	return user, nil
}
