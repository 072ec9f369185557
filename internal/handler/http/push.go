package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-cloud-sync/internal/logger"
	"github.com/MKhiriev/go-cloud-sync/internal/utils"
	"github.com/MKhiriev/go-cloud-sync/models"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

const (
	pushQueueSize    = 64
	pushWriteTimeout = 5 * time.Second
)

type pushClient struct {
	accountID string
	queue     chan models.PushNotification
}

// PushHub fans store notifications out to the websocket connections of the
// notified account. Its Notify method matches remote.NotifyFunc.
type PushHub struct {
	mu      sync.RWMutex
	clients map[*pushClient]struct{}
	done    chan struct{}
	once    sync.Once

	logger *logger.Logger
}

func NewPushHub(log *logger.Logger) *PushHub {
	return &PushHub{
		clients: make(map[*pushClient]struct{}),
		done:    make(chan struct{}),
		logger:  log,
	}
}

// Notify queues n for every connection of accountID. A connection whose
// queue is full misses n; the client recovers on its next periodic sync.
func (p *PushHub) Notify(accountID string, n models.PushNotification) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for c := range p.clients {
		if c.accountID != accountID {
			continue
		}
		select {
		case c.queue <- n:
		default:
			p.logger.Warn().
				Str("func", "*PushHub.Notify").
				Str("account_id", accountID).
				Str("kind", string(n.Kind)).
				Msg("push queue full, notification dropped")
		}
	}
}

// Connections returns the number of open connections of accountID.
func (p *PushHub) Connections(accountID string) int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	n := 0
	for c := range p.clients {
		if c.accountID == accountID {
			n++
		}
	}
	return n
}

// Close disconnects every client with StatusGoingAway.
func (p *PushHub) Close() {
	p.once.Do(func() { close(p.done) })
}

func (p *PushHub) register(accountID string) *pushClient {
	c := &pushClient{accountID: accountID, queue: make(chan models.PushNotification, pushQueueSize)}
	p.mu.Lock()
	p.clients[c] = struct{}{}
	p.mu.Unlock()
	return c
}

func (p *PushHub) unregister(c *pushClient) {
	p.mu.Lock()
	delete(p.clients, c)
	p.mu.Unlock()
}

// push upgrades the request to a websocket and streams the account's
// notifications until either side closes.
func (h *Handler) push(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	accountID, _ := utils.GetAccountIDFromContext(r.Context())

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Err(err).Str("func", "*Handler.push").Msg("websocket upgrade failed")
		return
	}
	defer conn.CloseNow()

	client := h.hub.register(accountID)
	defer h.hub.unregister(client)

	// the client never sends; CloseRead handles control frames and cancels
	// ctx once the peer goes away
	ctx := conn.CloseRead(r.Context())
	log.Info().Str("account_id", accountID).Msg("push channel opened")

	for {
		select {
		case <-ctx.Done():
			return
		case <-h.hub.done:
			conn.Close(websocket.StatusGoingAway, "server shutting down")
			return
		case n := <-client.queue:
			if err = writeNotification(ctx, conn, n); err != nil {
				log.Err(err).Str("func", "*Handler.push").Msg("error writing push notification")
				return
			}
		}
	}
}

func writeNotification(ctx context.Context, conn *websocket.Conn, n models.PushNotification) error {
	ctx, cancel := context.WithTimeout(ctx, pushWriteTimeout)
	defer cancel()
	return wsjson.Write(ctx, conn, n)
}
