// Package hashing detects games that end in the same position.
package hashing

import (
	"golang.org/x/exp/rand"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// zobristSeed fixes the key table so hashes are stable between runs.
const zobristSeed = 0x9D39247E33776D41

const numSquares = chess.BoardSize * chess.BoardSize

var (
	// pieceKeys[colour][type][square]; index 0 of type is unused.
	pieceKeys [2][chess.Dragon + 1][numSquares]uint64
	blackKey  uint64
)

func init() {
	r := rand.New(rand.NewSource(zobristSeed))
	for colour := range pieceKeys {
		for t := chess.Pawn; t <= chess.Dragon; t++ {
			for sq := 0; sq < numSquares; sq++ {
				pieceKeys[colour][t][sq] = r.Uint64()
			}
		}
	}
	blackKey = r.Uint64()
}

// PositionHash returns the Zobrist hash of the piece placement and the side
// to move. Moved flags and history do not contribute.
func PositionHash(board *chess.Board) uint64 {
	var hash uint64
	for x := 0; x < chess.BoardSize; x++ {
		for y := 0; y < chess.BoardSize; y++ {
			p := board.Squares[x][y]
			if p.IsEmpty() {
				continue
			}
			hash ^= pieceKeys[p.Colour][p.Type][chess.Sq(x, y).Index()]
		}
	}
	if board.SideToMove() == chess.Black {
		hash ^= blackKey
	}
	return hash
}

// MaterialSignature packs the piece count of every colour and kind into
// four bits each. It is a cheap second check against Zobrist collisions.
func MaterialSignature(board *chess.Board) uint64 {
	var counts [2][chess.Dragon + 1]uint64
	for x := 0; x < chess.BoardSize; x++ {
		for y := 0; y < chess.BoardSize; y++ {
			if p := board.Squares[x][y]; !p.IsEmpty() {
				counts[p.Colour][p.Type]++
			}
		}
	}

	var sig uint64
	for colour := range counts {
		for t := chess.Pawn; t <= chess.Dragon; t++ {
			sig = sig<<4 | min(counts[colour][t], 15)
		}
	}
	return sig
}

// GameSignature identifies a game by where and when it ended.
type GameSignature struct {
	Hash     uint64
	Material uint64
	Plies    int

	// ID is the caller's identifier for the first game with this signature.
	ID int
}

// DuplicateDetector tracks final positions seen so far. It is not safe for
// concurrent use; callers feed it from a single goroutine in input order so
// the first occurrence of a game always wins.
type DuplicateDetector struct {
	// hashTable buckets signatures by Zobrist hash
	hashTable map[uint64][]GameSignature
	// exactMatch also requires equal ply counts
	exactMatch bool
	// maxCapacity bounds the number of stored signatures (0 = unlimited)
	maxCapacity    int
	stored         int
	duplicateCount int
}

// NewDuplicateDetector creates a detector. With exactMatch, games must also
// have the same number of plies to count as duplicates.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:   make(map[uint64][]GameSignature),
		exactMatch:  exactMatch,
		maxCapacity: maxCapacity,
	}
}

// Signature builds the signature of a finished game.
func Signature(board *chess.Board, id int) GameSignature {
	return GameSignature{
		Hash:     PositionHash(board),
		Material: MaterialSignature(board),
		Plies:    len(board.History),
		ID:       id,
	}
}

// CheckAndAdd reports whether the board duplicates an earlier game and, if
// so, the ID of that game. New signatures are stored until the detector is
// full.
func (d *DuplicateDetector) CheckAndAdd(board *chess.Board, id int) (int, bool) {
	if board == nil {
		return 0, false
	}

	sig := Signature(board, id)
	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return existing.ID, true
		}
	}

	if !d.IsFull() {
		d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
		d.stored++
	}
	return 0, false
}

func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.Material != b.Material {
		return false
	}
	return !d.exactMatch || a.Plies == b.Plies
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of stored signatures.
func (d *DuplicateDetector) UniqueCount() int {
	return d.stored
}

// IsFull reports whether the capacity limit has been reached.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.stored >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.stored = 0
	d.duplicateCount = 0
}
