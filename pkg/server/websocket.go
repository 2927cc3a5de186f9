package server

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/hyperflex/pkg/render"
)

// wsReply is sent for every document received on /ws.
type wsReply struct {
	HTML  string `json:"html,omitempty"`
	Error any    `json:"error,omitempty"`
}

// handleWebSocket runs the playground: each text message is a document
// and is answered with its HTML or an error.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Debug("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(s.config.MaxBodyBytes)

	rc := render.RendererConfig{
		Pretty: s.config.Pretty || isTrue(r.URL.Query().Get("pretty")),
		Indent: s.config.Indent,
	}

	for {
		typ, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Warn("websocket read error", "error", err)
			}
			return
		}
		if typ != websocket.TextMessage {
			continue
		}

		var reply wsReply
		node, err := s.buildDocument(r, msg)
		if err == nil {
			reply.HTML, err = render.NewRenderer(rc).RenderToString(node)
		}
		if err != nil {
			reply.Error = errorJSON(err)
		}
		if err := conn.WriteJSON(reply); err != nil {
			s.logger.Warn("websocket write error", "error", err)
			return
		}
	}
}
