package server

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Mikey-Burns/Setback/internal/player"
	"github.com/Mikey-Burns/Setback/internal/protocol"
)

// Session relays one websocket connection to one seat controller. Every
// text frame is a command line and is answered by exactly one text frame.
type Session struct {
	id    uuid.UUID
	match *Match
	ctrl  *player.Controller
	conn  *websocket.Conn
	log   *slog.Logger
}

func NewSession(m *Match, conn *websocket.Conn, log *slog.Logger) *Session {
	ctrl := player.New(m.Engine)
	return &Session{
		id:    ctrl.ID(),
		match: m,
		ctrl:  ctrl,
		conn:  conn,
		log:   log.With("match", m.ID, "session", ctrl.ID()),
	}
}

// Serve runs until the client disconnects or the controller terminates.
func (s *Session) Serve() {
	s.log.Info("session opened")
	defer s.log.Info("session closed", "seat", s.ctrl.MyNumber(), "state", s.ctrl.State())

	for {
		kind, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Warn("read failed", "err", err)
			}
			return
		}
		if kind != websocket.TextMessage {
			continue
		}
		line := strings.TrimSpace(string(data))
		msg := protocol.Parse(line)
		reply := s.ctrl.ProcessInput(msg)
		if msg.Command != protocol.NoCommand {
			s.log.Debug("command", "line", line, "reply", reply)
		}
		if err := s.conn.WriteMessage(websocket.TextMessage, []byte(reply)); err != nil {
			s.log.Warn("write failed", "err", err)
			return
		}
		if reply == protocol.ReplyExit && s.ctrl.State() == player.StateTerminated {
			_ = s.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, "EXIT"))
			return
		}
	}
}
