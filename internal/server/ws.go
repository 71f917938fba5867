package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Handler serves the lobby over HTTP: /ws for seats, /health and /matches.
type Handler struct {
	lobby    *Lobby
	log      *slog.Logger
	upgrader websocket.Upgrader
}

func NewHandler(l *Lobby, log *slog.Logger) *Handler {
	return &Handler{
		lobby: l,
		log:   log,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.serveWS)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/matches", h.serveMatches)
	return mux
}

// serveWS attaches the connection to ?match=<id>, or to the newest open
// match when no id is given.
func (h *Handler) serveWS(w http.ResponseWriter, r *http.Request) {
	var m *Match
	if raw := r.URL.Query().Get("match"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			http.Error(w, "invalid match id", http.StatusBadRequest)
			return
		}
		var ok bool
		if m, ok = h.lobby.Get(id); !ok {
			http.Error(w, "unknown match", http.StatusNotFound)
			return
		}
	} else {
		var err error
		if m, err = h.lobby.Join(); err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
	}
	if err := h.lobby.Enter(m); err != nil {
		http.Error(w, err.Error(), enterStatus(err))
		return
	}
	defer h.lobby.Leave(m)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("ws upgrade", "err", err)
		return
	}
	defer conn.Close()

	NewSession(m, conn, h.log).Serve()
}

func (h *Handler) serveMatches(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		m, err := h.lobby.Create()
		if err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(BuildMatchView(m))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.lobby.List())
}

func enterStatus(err error) int {
	if errors.Is(err, ErrMatchGone) {
		return http.StatusGone
	}
	return http.StatusServiceUnavailable
}
