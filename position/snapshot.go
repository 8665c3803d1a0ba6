package position

import (
	"github.com/kestrelchess/core/attacks"
	"github.com/kestrelchess/core/bitset"
	"github.com/kestrelchess/core/piece"
	"github.com/kestrelchess/core/square"
	"github.com/kestrelchess/core/zobrist"
)

/*
Snapshot is one frame of the position's history stack, grounded on Pleco's
BoardState (original_source/pleco/src/board/board_state.rs): every field a
child position needs to undo its own move, plus a prev pointer back to the
parent frame. Go's garbage collector makes the Rust original's Arc
reference-counting unnecessary — a plain pointer is enough, since a
Snapshot is only ever unreachable once nothing points at it or its
children anymore.
*/
type Snapshot struct {
	prev *Snapshot

	// the move that produced this frame from prev, and what it moved and
	// captured, kept so UnmakeMove can reverse it without recomputation.
	move     piece.Move
	moved    piece.Colored
	captured piece.Colored
	// capturedSq is where captured actually sat before the move (the
	// en-passant square for an en-passant capture, dest otherwise). Recorded
	// here because by the time UnmakeMove runs, dest has already been
	// cleared and the board alone can no longer tell the two cases apart.
	capturedSq square.Square

	castling piece.CastlingRights
	halfmove int
	epTarget square.Square

	key uint64

	checkers  bitset.BitSet
	blockers  [2]bitset.BitSet
	pinners   [2]bitset.BitSet
}

// whiteCastle and blackCastle hold the rook's home and destination squares
// for each side's king-side and queen-side castle, indexed
// [kingside=0/queenside=1].
type castleRookMove struct{ rookFrom, rookTo square.Square }

var whiteCastle = [2]castleRookMove{
	{square.New(7, 0), square.New(5, 0)}, // O-O: h1 -> f1
	{square.New(0, 0), square.New(3, 0)}, // O-O-O: a1 -> d1
}
var blackCastle = [2]castleRookMove{
	{square.New(7, 7), square.New(5, 7)},
	{square.New(0, 7), square.New(3, 7)},
}

// MakeMove applies m to the position. The caller must ensure m is at least
// pseudo-legal for the current side to move; MakeMove does not re-validate
// legality (that is movegen's job, same division of labor as the
// teacher's Position.MakeMove).
func (p *Position) MakeMove(m piece.Move) {
	side := p.side
	source := square.Square(m.Source())
	dest := square.Square(m.Dest())
	moved := p.squares[source]

	next := &Snapshot{
		prev:     p.top,
		move:     m,
		moved:    moved,
		castling: p.top.castling,
		halfmove: p.top.halfmove + 1,
		epTarget: square.None,
		key:      p.top.key,
	}

	captured := piece.ColoredNone
	switch m.Category() {
	case piece.CategoryCapture:
		if p.squares[dest] == piece.ColoredNone {
			// en-passant: the captured pawn sits behind the destination
			// square, not on it.
			capSq := dest
			if side == piece.White {
				capSq = dest - 8
			} else {
				capSq = dest + 8
			}
			captured = p.squares[capSq]
			next.capturedSq = capSq
			next.key ^= zobristForSquare(captured, capSq)
			p.removePiece(captured, capSq)
		} else {
			captured = p.squares[dest]
			next.capturedSq = dest
			next.key ^= zobristForSquare(captured, dest)
			p.removePiece(captured, dest)
		}
	case piece.CategoryPromotion:
		if p.squares[dest] != piece.ColoredNone {
			captured = p.squares[dest]
			next.capturedSq = dest
			next.key ^= zobristForSquare(captured, dest)
			p.removePiece(captured, dest)
		}
	}
	next.captured = captured
	if captured != piece.ColoredNone {
		next.halfmove = 0
	}

	next.key ^= zobristForSquare(moved, source)
	p.removePiece(moved, source)

	switch m.Category() {
	case piece.CategoryPromotion:
		promoted := piece.NewColored(m.Promotion().Kind(), side)
		p.placePiece(promoted, dest)
		next.key ^= zobristForSquare(promoted, dest)
	case piece.CategoryCastle:
		// castle moves encode the king's source and the ROOK's home
		// square; derive the king's true destination from which side the
		// rook square falls on.
		table := whiteCastle
		if side == piece.Black {
			table = blackCastle
		}
		var rookMove castleRookMove
		var kingDest square.Square
		if dest == table[0].rookFrom {
			rookMove = table[0]
			kingDest = square.New(6, source.Rank())
		} else {
			rookMove = table[1]
			kingDest = square.New(2, source.Rank())
		}
		p.placePiece(moved, kingDest)
		next.key ^= zobristForSquare(moved, kingDest)
		rook := p.squares[rookMove.rookFrom]
		next.key ^= zobristForSquare(rook, rookMove.rookFrom)
		p.removePiece(rook, rookMove.rookFrom)
		p.placePiece(rook, rookMove.rookTo)
		next.key ^= zobristForSquare(rook, rookMove.rookTo)
		if side == piece.White {
			next.castling |= piece.WhiteHasCastled
		} else {
			next.castling |= piece.BlackHasCastled
		}
	default:
		p.placePiece(moved, dest)
		next.key ^= zobristForSquare(moved, dest)
	}

	if moved.Kind() == piece.Pawn {
		next.halfmove = 0
		delta := int(dest) - int(source)
		if delta == 16 || delta == -16 {
			next.epTarget = square.Square((int(source) + int(dest)) / 2)
		}
	}

	next.key ^= zobrist.EnPassant(p.top.epTarget)
	next.key ^= zobrist.EnPassant(next.epTarget)

	next.castling &^= piece.RemovalMask(uint8(source))
	next.castling &^= piece.RemovalMask(uint8(dest))
	if next.castling != p.top.castling {
		next.key ^= zobrist.CastlingKey(p.top.castling)
		next.key ^= zobrist.CastlingKey(next.castling)
	}

	next.key ^= zobrist.Side

	if side == piece.Black {
		p.fullmove++
	}
	p.side = side.Opposite()
	p.top = next

	p.computeCheckStateInto(next)
}

// UnmakeMove reverses the most recently made move. The caller must pass the
// same move that was last made; this is asserted in debug builds (see
// assert.go) and trusted in release builds, mirroring the teacher's
// caller-responsibility convention for MakeMove.
func (p *Position) UnmakeMove(m piece.Move) {
	assertUnmakeMatches(p, m)

	snap := p.top
	side := p.side.Opposite()
	source := square.Square(m.Source())
	dest := square.Square(m.Dest())

	switch m.Category() {
	case piece.CategoryCastle:
		table := whiteCastle
		if side == piece.Black {
			table = blackCastle
		}
		var rookMove castleRookMove
		var kingDest square.Square
		if dest == table[0].rookFrom {
			rookMove = table[0]
			kingDest = square.New(6, source.Rank())
		} else {
			rookMove = table[1]
			kingDest = square.New(2, source.Rank())
		}
		rook := p.squares[rookMove.rookTo]
		p.removePiece(rook, rookMove.rookTo)
		p.placePiece(rook, rookMove.rookFrom)
		p.removePiece(snap.moved, kingDest)
		p.placePiece(snap.moved, source)
	case piece.CategoryPromotion:
		promoted := p.squares[dest]
		p.removePiece(promoted, dest)
		p.placePiece(snap.moved, source)
		if snap.captured != piece.ColoredNone {
			p.placePiece(snap.captured, dest)
		}
	case piece.CategoryCapture:
		p.removePiece(snap.moved, dest)
		p.placePiece(snap.moved, source)
		if snap.captured != piece.ColoredNone {
			p.placePiece(snap.captured, snap.capturedSq)
		}
	default:
		p.removePiece(snap.moved, dest)
		p.placePiece(snap.moved, source)
	}

	if side == piece.Black {
		p.fullmove--
	}
	p.side = side
	p.top = snap.prev
}

// computeCheckStateInto fills in s.checkers for the side to move and
// s.blockers/pinners for both sides against the CURRENT board (called
// right after MakeMove has applied the move and flipped p.side).
func (p *Position) computeCheckStateInto(s *Snapshot) {
	occ := p.AllOccupied()
	for _, mover := range [2]piece.Side{piece.White, piece.Black} {
		kingSq := p.King(mover)
		if kingSq == square.None {
			continue
		}
		enemy := mover.Opposite()
		if mover == p.side {
			s.checkers = p.AttackersTo(kingSq, occ) & p.occ[enemy]
		}

		var blockers, pinners bitset.BitSet
		snipers := (attacks.Bishop(kingSq, 0) & (p.pieces[enemy][piece.Bishop] | p.pieces[enemy][piece.Queen])) |
			(attacks.Rook(kingSq, 0) & (p.pieces[enemy][piece.Rook] | p.pieces[enemy][piece.Queen]))
		rem := snipers
		for rem != 0 {
			sniper := rem.PopLSB()
			between := attacks.Between(kingSq, sniper) & occ
			if between.Count() == 1 {
				blockers |= between
				pinners |= bitset.From(sniper)
			}
		}
		s.blockers[mover] = blockers
		s.pinners[mover] = pinners
	}
}
