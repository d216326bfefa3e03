package hashing

import (
	"math/rand"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// zobristSeed fixes the key table so hashes are stable across runs.
const zobristSeed = 0x5eed_c4e55

var (
	pieceKeys    [2][chess.King + 1][chess.BoardSize * chess.BoardSize]uint64
	blackToMove  uint64
	castlingKeys [2][2]uint64 // [colour][0 king side, 1 queen side]
)

func init() {
	r := rand.New(rand.NewSource(zobristSeed))
	for c := range pieceKeys {
		for k := chess.Pawn; k <= chess.King; k++ {
			for sq := range pieceKeys[c][k] {
				pieceKeys[c][k][sq] = r.Uint64()
			}
		}
	}
	blackToMove = r.Uint64()
	for c := range castlingKeys {
		castlingKeys[c][0] = r.Uint64()
		castlingKeys[c][1] = r.Uint64()
	}
}

// GenerateZobristHash hashes the piece placement of board.
func GenerateZobristHash(board *chess.Board) uint64 {
	var hash uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := board[row][col]
			if p.IsEmpty() {
				continue
			}
			hash ^= pieceKeys[p.Colour][p.Kind][row*chess.BoardSize+col]
		}
	}
	return hash
}

// PositionHash extends GenerateZobristHash with the side to move and the
// castling rights of both colours.
func PositionHash(board *chess.Board, toMove chess.Colour, rights [2]chess.CastlingRights) uint64 {
	hash := GenerateZobristHash(board)
	if toMove == chess.Black {
		hash ^= blackToMove
	}
	for _, c := range chess.Colours {
		if rights[c].KingSide {
			hash ^= castlingKeys[c][0]
		}
		if rights[c].QueenSide {
			hash ^= castlingKeys[c][1]
		}
	}
	return hash
}

// WeakHash is a cheap additive hash of the placement, used to confirm a
// Zobrist match.
func WeakHash(board *chess.Board) uint32 {
	var hash uint32
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := board[row][col]
			if p.IsEmpty() {
				continue
			}
			hash += uint32(row*chess.BoardSize+col+1) * uint32(int(p.Kind)+6*int(p.Colour))
		}
	}
	return hash
}
