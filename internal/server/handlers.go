package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/session"
)

// createRequest is the body of POST /api/games.
type createRequest struct {
	FEN   string `json:"fen"`
	Human string `json:"human"` // "white" (default) or "black"
}

// moveRequest is the body of POST /api/games/:id/moves and the payload of
// websocket move messages.
type moveRequest struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Castling string `json:"castling,omitempty"`
}

// moveResponse pairs an applied move with the resulting state.
type moveResponse struct {
	Move  output.JSONMove `json:"move"`
	State session.State   `json:"state"`
}

// legalMovesResponse lists the legal moves from one square.
type legalMovesResponse struct {
	From  string            `json:"from"`
	Moves []output.JSONMove `json:"moves"`
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "games": s.sessions.Len()})
}

func (s *Server) createGame(c *fiber.Ctx) error {
	var req createRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return errors.Wrap(errors.ErrInvalidInput, err.Error())
		}
	}

	human := chess.White
	if req.Human != "" {
		var err error
		if human, err = chess.ParseColour(req.Human); err != nil {
			return err
		}
	}

	st, err := s.sessions.Create(session.CreateOptions{FEN: req.FEN, Human: human})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(st)
}

func (s *Server) getGame(c *fiber.Ctx) error {
	st, err := s.sessions.Get(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(st)
}

func (s *Server) deleteGame(c *fiber.Ctx) error {
	if err := s.sessions.Delete(c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) legalMoves(c *fiber.Ctx) error {
	from, err := chess.ParseSquare(c.Query("from"))
	if err != nil {
		return err
	}
	moves, err := s.sessions.LegalMoves(c.Params("id"), from)
	if err != nil {
		return err
	}

	resp := legalMovesResponse{From: from.String(), Moves: make([]output.JSONMove, len(moves))}
	for i, m := range moves {
		resp.Moves[i] = output.MoveToJSON(m)
	}
	return c.JSON(resp)
}

func (s *Server) playMove(c *fiber.Ctx) error {
	var body moveRequest
	if err := c.BodyParser(&body); err != nil {
		return errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	req, err := body.parse()
	if err != nil {
		return err
	}

	st, m, err := s.sessions.Play(c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(moveResponse{Move: output.MoveToJSON(m), State: st})
}

func (s *Server) reply(c *fiber.Ctx) error {
	st, m, err := s.sessions.Reply(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(moveResponse{Move: output.MoveToJSON(m), State: st})
}

// parse converts the wire form of a move to a session request.
func (r moveRequest) parse() (session.MoveRequest, error) {
	from, err := chess.ParseSquare(r.From)
	if err != nil {
		return session.MoveRequest{}, err
	}
	to, err := chess.ParseSquare(r.To)
	if err != nil {
		return session.MoveRequest{}, err
	}
	side, err := chess.ParseCastlingSide(r.Castling)
	if err != nil {
		return session.MoveRequest{}, err
	}
	return session.MoveRequest{From: from, To: to, Side: side}, nil
}
