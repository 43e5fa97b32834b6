package server

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"github.com/filipedpsilva/counter/errs"
	"github.com/filipedpsilva/counter/widget"
)

const (
	messageIncrement = "increment"
	messageInputs    = "inputs"
	messageState     = "state"
	messageError     = "error"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type liveMessage struct {
	Type    string  `json:"type"`
	StartAt *string `json:"start_at,omitempty"`
	Step    *string `json:"step,omitempty"`
}

type liveReply struct {
	Type  string        `json:"type"`
	State *widget.State `json:"state,omitempty"`
	Error string        `json:"error,omitempty"`
}

type liveConn struct {
	*websocket.Conn
}

func newLiveConn(w http.ResponseWriter, r *http.Request) (*liveConn, error) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return nil, errs.NewInternalError("upgrade connection to websocket").Wrap(err)
	}
	return &liveConn{conn}, nil
}

// waitForMsg blocks for the next client message. A closed connection is
// reported as an error.
func (c *liveConn) waitForMsg() (liveMessage, error) {
	var msg liveMessage
	_, raw, err := c.ReadMessage()
	if err != nil {
		return msg, err
	}
	if err := json.Unmarshal(raw, &msg); err != nil {
		return msg, errs.NewBadInputError("decode message").Wrap(err)
	}
	return msg, nil
}

func (c *liveConn) send(reply liveReply) error {
	body, err := json.Marshal(reply)
	if err != nil {
		return errs.NewInternalError("encode reply").Wrap(err)
	}
	return c.WriteMessage(websocket.TextMessage, body)
}

// handleLive pushes the state on connect, then answers every message with
// the new state or an error. Errors do not close the socket. Every message
// keeps the counter alive in the store.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	wdg, err := s.store.Get(id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	conn, err := newLiveConn(w, r)
	if err != nil {
		s.logger.Printf("live: %v", err)
		return
	}
	s.track(conn)
	defer s.untrack(conn)
	defer conn.Close()

	state := wdg.State()
	if err := conn.send(liveReply{Type: messageState, State: &state}); err != nil {
		s.logger.Printf("live: %v", err)
		return
	}

	for {
		msg, err := conn.waitForMsg()
		if err != nil && errs.TypeOf(err) != errs.BAD_INPUT_ERROR {
			return
		}

		if _, getErr := s.store.Get(id); getErr != nil {
			conn.send(liveReply{Type: messageError, Error: getErr.Error()})
			return
		}

		var reply liveReply
		if err != nil {
			reply = liveReply{Type: messageError, Error: err.Error()}
		} else {
			reply = handleLiveMessage(wdg, msg)
		}
		if err := conn.send(reply); err != nil {
			s.logger.Printf("live: %v", err)
			return
		}
	}
}

func (s *Server) track(conn *liveConn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.live[conn] = struct{}{}
}

func (s *Server) untrack(conn *liveConn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.live, conn)
}

// CloseLive sends a going-away close frame to every open socket. Hijacked
// connections are not covered by http.Server.Shutdown, so register it with
// RegisterOnShutdown.
func (s *Server) CloseLive() {
	s.mu.Lock()
	conns := make([]*liveConn, 0, len(s.live))
	for conn := range s.live {
		conns = append(conns, conn)
	}
	s.mu.Unlock()

	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
	deadline := time.Now().Add(time.Second)
	for _, conn := range conns {
		if err := conn.WriteControl(websocket.CloseMessage, msg, deadline); err != nil {
			s.logger.Printf("live: close: %v", err)
		}
		conn.Close()
	}
}

func handleLiveMessage(wdg *widget.Widget, msg liveMessage) liveReply {
	var state widget.State
	switch msg.Type {
	case messageIncrement:
		state = wdg.Increment()
	case messageInputs:
		if err := applyInputs(wdg, inputsRequest{StartAt: msg.StartAt, Step: msg.Step}); err != nil {
			return liveReply{Type: messageError, Error: err.Error()}
		}
		state = wdg.State()
	case messageState:
		state = wdg.State()
	default:
		err := errs.NewBadInputError("unknown message type " + msg.Type)
		return liveReply{Type: messageError, Error: err.Error()}
	}
	return liveReply{Type: messageState, State: &state}
}
