package guard

import (
	"go.uber.org/zap"
)

const (
	LoginPath     = "/login"
	RegisterPath  = "/register"
	DashboardPath = "/api/dashboard"
)

type Page string

const (
	PageLogin     Page = LoginPath
	PageRegister  Page = RegisterPath
	PageDashboard Page = DashboardPath
)

type Navigator interface {
	Navigate(path string)
}

type Authenticator interface {
	Authenticated() bool
}

// Guard gates a page on the presence of a stored token. It never checks whether the token
// is still valid; the server rejects stale tokens on the first API call.
type Guard struct {
	session   Authenticator
	navigator Navigator
	logger    *zap.SugaredLogger
}

func New(session Authenticator, navigator Navigator, logger *zap.SugaredLogger) *Guard {
	return &Guard{
		session:   session,
		navigator: navigator,
		logger:    logger,
	}
}

// Check reports whether page may be shown. When it may not, the navigator has already been
// sent to the right place.
func (g *Guard) Check(page Page) bool {
	authenticated := g.session.Authenticated()
	switch {
	case authenticated && (page == PageLogin || page == PageRegister):
		g.logger.Debugw("session present, leaving credential page", "page", page)
		g.navigator.Navigate(DashboardPath)
		return false
	case !authenticated && page == PageDashboard:
		g.logger.Debugw("no session, leaving dashboard", "page", page)
		g.navigator.Navigate(LoginPath)
		return false
	}
	return true
}
