package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-cloud-sync/internal/logger"
	"github.com/MKhiriev/go-cloud-sync/models"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

const defaultReconnectDelay = 5 * time.Second

// PushListener keeps a websocket connection to the remote store's push
// channel and posts every received notification to a [NotificationCenter].
// It implements the workers.Worker interface.
type PushListener struct {
	url            string
	tokens         interface{ Token() string }
	center         *NotificationCenter
	logger         *logger.Logger
	reconnectDelay time.Duration
}

// NewPushListener returns a listener for pushURL. An empty pushURL is derived
// from httpAddress by switching the scheme to ws/wss and appending
// [RoutePush]. The bearer token is read from tokens on every (re)connect.
func NewPushListener(pushURL, httpAddress string, tokens interface{ Token() string }, center *NotificationCenter, log *logger.Logger) (*PushListener, error) {
	if pushURL == "" {
		base, err := normalizeBaseURL(httpAddress)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
		}
		pushURL = toWebsocketURL(base) + RoutePush
	}

	return &PushListener{
		url:            pushURL,
		tokens:         tokens,
		center:         center,
		logger:         log,
		reconnectDelay: defaultReconnectDelay,
	}, nil
}

func toWebsocketURL(base string) string {
	switch {
	case strings.HasPrefix(base, "https://"):
		return "wss://" + strings.TrimPrefix(base, "https://")
	case strings.HasPrefix(base, "http://"):
		return "ws://" + strings.TrimPrefix(base, "http://")
	}
	return base
}

// URL returns the websocket endpoint.
func (l *PushListener) URL() string { return l.url }

// Run connects and reconnects until ctx is cancelled. A reconnect posts an
// account-changed signal, since notifications may have been missed while the
// connection was down.
func (l *PushListener) Run(ctx context.Context) error {
	connected := false
	for {
		err := l.Listen(ctx, func() {
			if connected {
				l.center.PostAccountChanged()
			}
			connected = true
		})
		if ctx.Err() != nil {
			return ctx.Err()
		}

		l.logger.Warn().Err(err).
			Str("func", "PushListener.Run").
			Dur("retry_in", l.reconnectDelay).
			Msg("push channel disconnected")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(l.reconnectDelay):
		}
	}
}

// Listen opens one connection and reads notifications until it breaks.
// onConnect, if non-nil, runs after the handshake succeeds.
func (l *PushListener) Listen(ctx context.Context, onConnect func()) error {
	header := http.Header{}
	if token := l.tokens.Token(); token != "" {
		header.Set("Authorization", "Bearer "+token)
	}

	conn, _, err := websocket.Dial(ctx, l.url, &websocket.DialOptions{HTTPHeader: header})
	if err != nil {
		return fmt.Errorf("dial push channel: %w", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	l.logger.Info().Str("url", l.url).Msg("push channel connected")
	if onConnect != nil {
		onConnect()
	}

	for {
		var n models.PushNotification
		if err = wsjson.Read(ctx, conn, &n); err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure || errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("read push notification: %w", err)
		}

		l.logger.Debug().
			Str("kind", string(n.Kind)).
			Str("subscription_id", n.SubscriptionID).
			Msg("push notification received")
		l.center.Post(n)
	}
}
