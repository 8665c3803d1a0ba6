package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kestrelchess/core/piece"
	"github.com/kestrelchess/core/square"
	"github.com/kestrelchess/core/zobrist"
)

// FENErrorReason classifies why a FEN string was rejected, so callers (the
// UCI frontend in particular) can report something more useful than a bare
// string.
type FENErrorReason int

const (
	ReasonFieldCount FENErrorReason = iota
	ReasonBadPieceChar
	ReasonRankSquareCount
	ReasonTooManyKings
	ReasonMissingKing
	ReasonPawnOnBackRank
	ReasonIllegalCheck
	ReasonBadCastling
	ReasonBadEnPassant
	ReasonBadCounter
)

// FENError reports a malformed FEN string, naming the specific [FENErrorReason]
// instead of forcing callers to parse an error string.
type FENError struct {
	Reason FENErrorReason
	Detail string
}

func (e *FENError) Error() string {
	return fmt.Sprintf("fen: %s", e.Detail)
}

func fenErr(reason FENErrorReason, format string, args ...any) error {
	return &FENError{Reason: reason, Detail: fmt.Sprintf(format, args...)}
}

// FromFEN parses a FEN string into a [Position], returning a [FENError] (via
// the standard error interface) instead of panicking on malformed input —
// unlike the teacher's ParseFEN, which trusts its caller and panics.
func FromFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fenErr(ReasonFieldCount, "expected at least 4 space-separated fields, got %d", len(fields))
	}
	for len(fields) < 6 {
		fields = append(fields, "0")
	}

	p := &Position{}
	for i := range p.squares {
		p.squares[i] = piece.ColoredNone
	}

	if err := p.parsePlacement(fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		p.side = piece.White
	case "b":
		p.side = piece.Black
	default:
		return nil, fenErr(ReasonFieldCount, "active color must be 'w' or 'b', got %q", fields[1])
	}

	castling, err := parseCastling(fields[2])
	if err != nil {
		return nil, err
	}

	epTarget := square.None
	if fields[3] != "-" {
		sq, ok := square.Parse(fields[3])
		if !ok {
			return nil, fenErr(ReasonBadEnPassant, "invalid en-passant square %q", fields[3])
		}
		epTarget = sq
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return nil, fenErr(ReasonBadCounter, "invalid halfmove clock %q", fields[4])
	}
	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 1 {
		fullmove = 1
	}
	p.fullmove = fullmove

	if err := validatePlacement(p); err != nil {
		return nil, err
	}

	p.top = &Snapshot{castling: castling, epTarget: epTarget, halfmove: halfmove}
	p.top.key = p.computeKeyFromScratch()
	p.computeCheckStateInto(p.top)

	if checkers := p.AttackersTo(p.King(p.side.Opposite()), p.AllOccupied()) & p.occ[p.side]; checkers != 0 {
		return nil, fenErr(ReasonIllegalCheck, "side not to move is in check")
	}

	return p, nil
}

func (p *Position) parsePlacement(field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return fenErr(ReasonRankSquareCount, "piece placement must have 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, c := range rankStr {
			if file > 8 {
				return fenErr(ReasonRankSquareCount, "rank %d has more than 8 squares", rank+1)
			}
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			colored, ok := charToColored(byte(c))
			if !ok {
				return fenErr(ReasonBadPieceChar, "unrecognized piece character %q", c)
			}
			if file >= 8 {
				return fenErr(ReasonRankSquareCount, "rank %d has more than 8 squares", rank+1)
			}
			if colored.Kind() == piece.Pawn && (rank == 0 || rank == 7) {
				return fenErr(ReasonPawnOnBackRank, "pawn on back rank %d", rank+1)
			}
			sq := square.New(file, rank)
			p.placePiece(colored, sq)
			file++
		}
		if file != 8 {
			return fenErr(ReasonRankSquareCount, "rank %d covers %d squares, want 8", rank+1, file)
		}
	}
	return nil
}

func validatePlacement(p *Position) error {
	if p.pieces[piece.White][piece.King].Count() != 1 {
		if p.pieces[piece.White][piece.King].Count() == 0 {
			return fenErr(ReasonMissingKing, "white has no king")
		}
		return fenErr(ReasonTooManyKings, "white has more than one king")
	}
	if p.pieces[piece.Black][piece.King].Count() != 1 {
		if p.pieces[piece.Black][piece.King].Count() == 0 {
			return fenErr(ReasonMissingKing, "black has no king")
		}
		return fenErr(ReasonTooManyKings, "black has more than one king")
	}
	return nil
}

func charToColored(c byte) (piece.Colored, bool) {
	side := piece.White
	k := c
	if c >= 'a' && c <= 'z' {
		side = piece.Black
		k = c - ('a' - 'A')
	}
	var kind piece.Kind
	switch k {
	case 'P':
		kind = piece.Pawn
	case 'N':
		kind = piece.Knight
	case 'B':
		kind = piece.Bishop
	case 'R':
		kind = piece.Rook
	case 'Q':
		kind = piece.Queen
	case 'K':
		kind = piece.King
	default:
		return piece.ColoredNone, false
	}
	return piece.NewColored(kind, side), true
}

func parseCastling(field string) (piece.CastlingRights, error) {
	if field == "-" {
		return 0, nil
	}
	var rights piece.CastlingRights
	for _, c := range field {
		switch c {
		case 'K':
			rights |= piece.WhiteKingSide
		case 'Q':
			rights |= piece.WhiteQueenSide
		case 'k':
			rights |= piece.BlackKingSide
		case 'q':
			rights |= piece.BlackQueenSide
		default:
			return 0, fenErr(ReasonBadCastling, "unrecognized castling character %q", c)
		}
	}
	return rights, nil
}

func (p *Position) computeKeyFromScratch() uint64 {
	var key uint64
	for sq := range 64 {
		c := p.squares[sq]
		if c != piece.ColoredNone {
			key ^= zobristForSquare(c, square.Square(sq))
		}
	}
	key ^= zobrist.EnPassant(p.top.epTarget)
	key ^= zobrist.CastlingKey(p.top.castling)
	if p.side == piece.Black {
		key ^= zobrist.Side
	}
	return key
}

// FEN serializes the position back into a FEN string.
func (p *Position) FEN() string {
	var b strings.Builder
	b.Grow(72)

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			c := p.squares[square.New(file, rank)]
			if c == piece.ColoredNone {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteByte('0' + byte(empty))
				empty = 0
			}
			b.WriteByte(c.Symbol())
		}
		if empty > 0 {
			b.WriteByte('0' + byte(empty))
		}
		if rank != 0 {
			b.WriteByte('/')
		}
	}

	if p.side == piece.White {
		b.WriteString(" w ")
	} else {
		b.WriteString(" b ")
	}

	rights := p.top.castling
	wrote := false
	if rights&piece.WhiteKingSide != 0 {
		b.WriteByte('K')
		wrote = true
	}
	if rights&piece.WhiteQueenSide != 0 {
		b.WriteByte('Q')
		wrote = true
	}
	if rights&piece.BlackKingSide != 0 {
		b.WriteByte('k')
		wrote = true
	}
	if rights&piece.BlackQueenSide != 0 {
		b.WriteByte('q')
		wrote = true
	}
	if !wrote {
		b.WriteByte('-')
	}
	b.WriteByte(' ')

	if p.top.epTarget == square.None {
		b.WriteString("- ")
	} else {
		b.WriteString(p.top.epTarget.String())
		b.WriteByte(' ')
	}

	b.WriteString(strconv.Itoa(p.top.halfmove))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.fullmove))

	return b.String()
}
