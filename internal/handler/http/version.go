package http

import (
	"net/http"
)

// getServerVersion answers with the configured version as plain text. It is
// public so deployments can be probed without a token.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(h.app.Version)); err != nil {
		h.logger.Err(err).Str("func", "*Handler.getServerVersion").Send()
	}
}
