// Package hashing provides duplicate detection for chess games.
package hashing

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// DuplicateDetector tracks seen games for duplicate detection.
type DuplicateDetector struct {
	// hashTable stores seen signatures by final position hash
	hashTable map[uint64][]GameSignature
	// useExactMatch also compares the move sequences
	useExactMatch bool
	// maxCapacity limits the number of stored signatures (0 = unlimited)
	maxCapacity int
	size        int
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Hash is the Zobrist hash of the final position, side to move included
	Hash uint64
	// MoveCount is the number of plies in the game
	MoveCount int
	// WeakHash is a fast hash for quick comparison
	WeakHash uint32
	// MovesHash hashes the move sequence
	MovesHash uint64
}

// NewDuplicateDetector creates a new duplicate detector. With exactMatch two
// games are only duplicates if they also share their move sequence.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// Signature computes the signature of g in its current state.
func Signature(g *game.Game) GameSignature {
	pos := g.Position()
	board := pos.Board()
	rights := [2]chess.CastlingRights{
		chess.White: pos.CastlingRights(chess.White),
		chess.Black: pos.CastlingRights(chess.Black),
	}
	return GameSignature{
		Hash:      PositionHash(&board, g.ToMove(), rights),
		MoveCount: g.Ply(),
		WeakHash:  WeakHash(&board),
		MovesHash: hashMoveSequence(pos.History()),
	}
}

// CheckAndAdd checks if a game is a duplicate and adds it to the hash table.
// Returns true if the game is a duplicate. Once the detector is full new
// signatures are no longer stored but lookups continue.
func (d *DuplicateDetector) CheckAndAdd(g *game.Game) bool {
	if g == nil {
		return false
	}
	sig := Signature(g)

	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.size++
	return false
}

// signaturesMatch checks if two game signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch {
		return a.MoveCount == b.MoveCount && a.MovesHash == b.MovesHash
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games.
func (d *DuplicateDetector) UniqueCount() int {
	return d.size
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.size >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.size = 0
	d.duplicateCount = 0
}

// hashMoveSequence creates a hash from the UCI text of the moves.
func hashMoveSequence(moves []chess.Move) uint64 {
	var hash uint64
	multiplier := uint64(31)

	for _, m := range moves {
		for _, c := range m.UCI() {
			hash = hash*multiplier + uint64(c)
		}
	}
	return hash
}
