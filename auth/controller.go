package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/hospital-mgmt/frontdesk/backend"
	"github.com/hospital-mgmt/frontdesk/config"
	"github.com/hospital-mgmt/frontdesk/errors"
	"github.com/hospital-mgmt/frontdesk/guard"
	"github.com/hospital-mgmt/frontdesk/notify"
	"github.com/hospital-mgmt/frontdesk/schedule"
	"github.com/hospital-mgmt/frontdesk/session"
)

const (
	MessageLoginSucceeded        = "Login successful! Redirecting..."
	MessageLoginFailed           = "Login failed. Please check your credentials."
	MessageRegistrationSucceeded = "Account created successfully! Redirecting to login..."
	MessageRegistrationFailed    = "Registration failed. Please try again."
)

// LoadingIndicator is the submit control of a credential form.
type LoadingIndicator interface {
	SetLoading(loading bool)
}

// FieldMarker flags the password confirmation field.
type FieldMarker interface {
	MarkMismatch(mismatch bool)
}

type noopIndicator struct{}

func (noopIndicator) SetLoading(bool)   {}
func (noopIndicator) MarkMismatch(bool) {}

type Params struct {
	fx.In

	Client    backend.ClientInterface
	Session   *session.Context
	Notifier  notify.Surface
	Navigator guard.Navigator
	Scheduler schedule.Scheduler
	Policy    Policy
	Config    *config.Config
	Logger    *zap.SugaredLogger

	Indicator LoadingIndicator `optional:"true"`
	Marker    FieldMarker      `optional:"true"`
}

// Controller drives the login and registration forms.
type Controller struct {
	client    backend.ClientInterface
	session   *session.Context
	notifier  notify.Surface
	navigator guard.Navigator
	scheduler schedule.Scheduler
	policy    Policy
	logger    *zap.SugaredLogger

	loginRedirectDelay    time.Duration
	registerRedirectDelay time.Duration

	indicator LoadingIndicator
	marker    FieldMarker
}

func NewController(p Params) *Controller {
	c := &Controller{
		client:                p.Client,
		session:               p.Session,
		notifier:              p.Notifier,
		navigator:             p.Navigator,
		scheduler:             p.Scheduler,
		policy:                p.Policy,
		logger:                p.Logger,
		loginRedirectDelay:    p.Config.LoginRedirectDelay,
		registerRedirectDelay: p.Config.RegisterRedirectDelay,
		indicator:             p.Indicator,
		marker:                p.Marker,
	}
	if c.indicator == nil {
		c.indicator = noopIndicator{}
	}
	if c.marker == nil {
		c.marker = noopIndicator{}
	}
	return c
}

// SubmitLogin exchanges credentials for a token. On success the session is stored and a
// redirect to the dashboard is scheduled.
func (c *Controller) SubmitLogin(ctx context.Context, form LoginForm) error {
	c.indicator.SetLoading(true)
	defer c.indicator.SetLoading(false)

	username := strings.TrimSpace(form.Username)
	if username == "" || form.Password == "" {
		return c.fail(errors.NewValidationError(MessageFillAllFields), MessageLoginFailed)
	}

	response, err := c.client.Login(ctx, backend.LoginRequest{
		Username: username,
		Password: form.Password,
	})
	if err != nil {
		c.logger.Errorw("login error", "username", username, "error", err)
		return c.fail(err, MessageLoginFailed)
	}
	if !response.Authenticated() {
		return c.fail(&errors.RemoteError{Code: response.StatusCode, Message: response.Error}, MessageLoginFailed)
	}

	if err := c.session.Save(response.Token, response.User); err != nil {
		c.logger.Errorw("unable to store session", "username", username, "error", err)
		return c.fail(fmt.Errorf("unable to store session: %w", err), MessageLoginFailed)
	}

	c.logger.Infow("logged in", "username", username)
	c.notifier.Show(MessageLoginSucceeded, notify.SeveritySuccess)
	c.scheduler.After(c.loginRedirectDelay, func() {
		c.navigator.Navigate(guard.DashboardPath)
	})
	return nil
}

// SubmitRegistration validates the form locally and only then calls the API. A failed
// validation never reaches the network.
func (c *Controller) SubmitRegistration(ctx context.Context, form RegistrationForm, confirmPassword string) error {
	c.indicator.SetLoading(true)
	defer c.indicator.SetLoading(false)

	form.Username = strings.TrimSpace(form.Username)
	if err := c.policy.ValidateRegistration(form, confirmPassword); err != nil {
		return c.fail(err, MessageRegistrationFailed)
	}

	response, err := c.client.Register(ctx, backend.RegisterRequest{
		Username: form.Username,
		Password: form.Password,
		Role:     form.Role,
	})
	if err != nil {
		c.logger.Errorw("registration error", "username", form.Username, "error", err)
		return c.fail(err, MessageRegistrationFailed)
	}
	if !response.Success {
		return c.fail(&errors.RemoteError{Code: response.StatusCode, Message: response.Error}, MessageRegistrationFailed)
	}

	c.logger.Infow("registered", "username", form.Username, "role", form.Role)
	c.notifier.Show(MessageRegistrationSucceeded, notify.SeveritySuccess)
	c.scheduler.After(c.registerRedirectDelay, func() {
		c.navigator.Navigate(guard.LoginPath)
	})
	return nil
}

// CheckConfirmPassword flags the confirmation field while it differs from the password. It
// is cosmetic: submission validates again regardless.
func (c *Controller) CheckConfirmPassword(password string, confirmPassword string) bool {
	mismatch := confirmPassword != "" && password != confirmPassword
	c.marker.MarkMismatch(mismatch)
	return mismatch
}

// Logout forgets the session and returns to the login page.
func (c *Controller) Logout() error {
	if err := c.session.Clear(); err != nil {
		c.logger.Errorw("unable to clear session", "error", err)
		return err
	}
	c.navigator.Navigate(guard.LoginPath)
	return nil
}

func (c *Controller) fail(err error, fallback string) error {
	c.notifier.Show(errors.UserMessage(err, fallback), notify.SeverityDanger)
	return err
}
