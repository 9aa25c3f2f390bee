// Package host bridges the mixed-reality host runtime to the core
// over a websocket. The runtime connects, announces session start,
// streams user and interaction events, and executes the scene/UI
// commands the core sends back.
package host

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// App receives the lifecycle events of one host session.
type App interface {
	OnStarted(ctx context.Context) error
	OnUserLeft(ctx context.Context, userID string) error
}

// AppFactory builds the per-session application bound to a session's
// scene and UI capabilities.
type AppFactory func(sess *Session) App

// Bridge upgrades incoming host connections and runs one session per
// connection. Events are dispatched serially from the read loop, so
// core state only ever mutates on one goroutine per session (preload
// completions aside, which the registry guards against).
type Bridge struct {
	factory  AppFactory
	upgrader websocket.Upgrader
	logger   zerolog.Logger
}

func NewBridge(factory AppFactory, logger zerolog.Logger) *Bridge {
	return &Bridge{
		factory: factory,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		logger: logger,
	}
}

func (b *Bridge) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		b.logger.Error().Err(err).Msg("host upgrade failed")
		return
	}

	sess := newSession(conn)
	app := b.factory(sess)
	b.logger.Info().Str("remote", conn.RemoteAddr().String()).Msg("host session connected")
	b.run(r.Context(), sess, app)
	b.logger.Info().Str("remote", conn.RemoteAddr().String()).Msg("host session closed")
}

func (b *Bridge) run(ctx context.Context, sess *Session, app App) {
	defer sess.conn.Close()
	for {
		var ev event
		if err := sess.conn.ReadJSON(&ev); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				b.logger.Error().Err(err).Msg("host read failed")
			}
			return
		}
		b.dispatch(ctx, sess, app, ev)
	}
}

func (b *Bridge) dispatch(ctx context.Context, sess *Session, app App, ev event) {
	switch ev.Event {
	case "started":
		if err := app.OnStarted(ctx); err != nil {
			b.logger.Error().Err(err).Msg("session start failed")
		}
	case "user_left":
		if err := app.OnUserLeft(ctx, ev.UserID); err != nil {
			b.logger.Error().Err(err).Str("user", ev.UserID).Msg("departure cleanup failed")
		}
	case "button_click":
		h := sess.handler(ev.Control)
		if h == nil {
			b.logger.Warn().Str("control", ev.Control).Msg("click on unknown control")
			return
		}
		h(ctx, ev.UserID)
	default:
		b.logger.Warn().Str("event", ev.Event).Msg("unknown host event")
	}
}
