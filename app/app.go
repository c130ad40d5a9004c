package app

import (
	"context"
	"net/http"
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/hospital-mgmt/frontdesk/auth"
	"github.com/hospital-mgmt/frontdesk/backend"
	"github.com/hospital-mgmt/frontdesk/config"
	"github.com/hospital-mgmt/frontdesk/guard"
	"github.com/hospital-mgmt/frontdesk/logger"
	"github.com/hospital-mgmt/frontdesk/notify"
	"github.com/hospital-mgmt/frontdesk/patients"
	"github.com/hospital-mgmt/frontdesk/roster"
	"github.com/hospital-mgmt/frontdesk/schedule"
	"github.com/hospital-mgmt/frontdesk/session"
	"github.com/hospital-mgmt/frontdesk/view/html"
	"github.com/hospital-mgmt/frontdesk/view/terminal"
)

// Dependencies is the DI graph shared by every command.
func Dependencies() []fx.Option {
	return []fx.Option{
		fx.Supply(notify.ModeAppend),
		fx.Provide(
			config.Load,
			logger.NewLogger,
			logger.Suggar,
			NewSessionStore,
			session.NewContext,
			session.NewDefaultInspector,
			NewHttpClient,
			NewBackendClient,
			NewTerminal,
			html.NewPage,
			NewRenderer,
			NewBoard,
			NewGuard,
			schedule.NewTimers,
			auth.LoadPolicy,
			patients.LoadRules,
			patients.NewValidator,
			auth.NewController,
			roster.NewController,
			fx.Annotate(func(t *terminal.Terminal) *terminal.Terminal { return t },
				fx.As(new(guard.Navigator)),
				fx.As(new(roster.Confirmer)),
				fx.As(new(roster.SaveIndicator)),
				fx.As(new(auth.LoadingIndicator)),
				fx.As(new(auth.FieldMarker)),
			),
			fx.Annotate(func(b *notify.Board) *notify.Board { return b }, fx.As(new(notify.Surface))),
			fx.Annotate(func(t *schedule.Timers) *schedule.Timers { return t }, fx.As(new(schedule.Scheduler))),
		),
	}
}

// CredentialPages makes new notifications replace older ones, as on the login and
// registration pages.
func CredentialPages() fx.Option {
	return fx.Replace(notify.ModeReplace)
}

func NewSessionStore(cfg *config.Config) session.Store {
	return session.NewFileStore(cfg.SessionFile)
}

func NewHttpClient(cfg *config.Config) *http.Client {
	return &http.Client{Timeout: cfg.HttpTimeout}
}

func NewBackendClient(cfg *config.Config, httpClient *http.Client, sessionContext *session.Context, logger *zap.SugaredLogger) (backend.ClientInterface, error) {
	return backend.NewClient(cfg.ApiBaseUrl,
		backend.WithHTTPClient(httpClient),
		backend.WithTokenSource(sessionContext),
		backend.WithLogger(logger),
	)
}

func NewTerminal(logger *zap.SugaredLogger) *terminal.Terminal {
	return terminal.New(os.Stdout, os.Stdin, logger)
}

func NewRenderer(t *terminal.Terminal, page *html.Page) roster.Renderer {
	return roster.Renderers{t, page}
}

func NewBoard(cfg *config.Config, mode notify.Mode, t *terminal.Terminal, page *html.Page, lifecycle fx.Lifecycle) *notify.Board {
	board := notify.NewBoard(mode, cfg.NotificationTTL, t, page)
	lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			board.Close()
			return nil
		},
	})
	return board
}

func NewGuard(sessionContext *session.Context, navigator guard.Navigator, logger *zap.SugaredLogger) *guard.Guard {
	return guard.New(sessionContext, navigator, logger)
}
