package server

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/session"
)

// MessageType names the kinds of websocket message.
type MessageType string

const (
	MessageTypeMove  MessageType = "move"  // client move, answered by the computer
	MessageTypeReply MessageType = "reply" // ask the computer to move
	MessageTypeState MessageType = "state" // server push after every ply
	MessageTypeError MessageType = "error"
)

// Message is the websocket envelope in both directions.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// errorPayload is the payload of an error message.
type errorPayload struct {
	Error string `json:"error"`
}

// handleSocket streams the game's state to the client and applies the moves
// it sends. After a client move the computer replies once the configured
// delay has passed.
func (s *Server) handleSocket(c *websocket.Conn) {
	id := c.Params("id")
	log := s.log.With().Str("game", id).Logger()

	// Writes come from the forwarder and the read loop.
	var writeMu sync.Mutex
	send := func(msg Message) {
		writeMu.Lock()
		defer writeMu.Unlock()
		if err := c.WriteJSON(msg); err != nil {
			log.Debug().Err(err).Msg("websocket write failed")
		}
	}

	st, err := s.sessions.Get(id)
	if err != nil {
		send(errorMessage(err))
		return
	}
	updates, unsubscribe, err := s.sessions.Subscribe(id)
	if err != nil {
		send(errorMessage(err))
		return
	}
	defer unsubscribe()

	send(stateMessage(st))
	log.Info().Msg("websocket connected")

	var forwarder sync.WaitGroup
	forwarder.Add(1)
	go func() {
		defer forwarder.Done()
		for st := range updates {
			send(stateMessage(st))
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for {
		messageType, raw, err := c.ReadMessage()
		if err != nil {
			log.Debug().Err(err).Msg("websocket read ended")
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}
		if err := s.handleMessage(ctx, id, raw); err != nil {
			send(errorMessage(err))
		}
	}

	cancel()
	unsubscribe()
	forwarder.Wait()
	log.Info().Msg("websocket disconnected")
}

// handleMessage applies one client message. State changes reach the client
// through the subscription, so only errors are returned.
func (s *Server) handleMessage(ctx context.Context, id string, raw []byte) error {
	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		return errors.Wrap(errors.ErrInvalidInput, err.Error())
	}

	switch msg.Type {
	case MessageTypeMove:
		var body moveRequest
		if err := json.Unmarshal(msg.Payload, &body); err != nil {
			return errors.Wrap(errors.ErrInvalidInput, err.Error())
		}
		req, err := body.parse()
		if err != nil {
			return err
		}
		st, _, err := s.sessions.Play(id, req)
		if err != nil {
			return err
		}
		if st.Status.IsOver() {
			return nil
		}
		_, _, err = s.sessions.Reply(ctx, id)
		return err
	case MessageTypeReply:
		_, _, err := s.sessions.Reply(ctx, id)
		return err
	}
	return fmt.Errorf("message type %q: %w", msg.Type, errors.ErrInvalidInput)
}

func stateMessage(st session.State) Message {
	payload, _ := json.Marshal(st)
	return Message{Type: MessageTypeState, Payload: payload}
}

func errorMessage(err error) Message {
	payload, _ := json.Marshal(errorPayload{Error: err.Error()})
	return Message{Type: MessageTypeError, Payload: payload}
}
