package bitboard

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownColor is returned for colors other than "white" and "black".
	ErrUnknownColor = errors.New("unknown color")
	// ErrUnknownPiece is returned for piece names outside pawn..king.
	ErrUnknownPiece = errors.New("unknown piece")
)

// Color side.
type Color uint8

// Colors.
const (
	White Color = iota
	Black
)

// ParseColor resolves "white" or "black".
func ParseColor(name string) (Color, error) {
	switch name {
	case "white":
		return White, nil
	case "black":
		return Black, nil
	}
	return White, fmt.Errorf("%w: %q", ErrUnknownColor, name)
}

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// Piece is a piece type without color.
type Piece uint8

// Pieces, in kind order.
const (
	Pawn Piece = iota
	Bishop
	Knight
	Rook
	Queen
	King
)

// NumPieces is the number of piece types per color.
const NumPieces = 6

const pieceSymbols = "pbnrqk"

// ParsePiece resolves a lower case piece name such as "knight".
func ParsePiece(name string) (Piece, error) {
	switch name {
	case "pawn":
		return Pawn, nil
	case "bishop":
		return Bishop, nil
	case "knight":
		return Knight, nil
	case "rook":
		return Rook, nil
	case "queen":
		return Queen, nil
	case "king":
		return King, nil
	}
	return Pawn, fmt.Errorf("%w: %q", ErrUnknownPiece, name)
}

func (p Piece) String() string {
	switch p {
	case Pawn:
		return "pawn"
	case Bishop:
		return "bishop"
	case Knight:
		return "knight"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return fmt.Sprintf("Piece(%d)", uint8(p))
}

// Symbol is the lower case display letter.
func (p Piece) Symbol() byte {
	return pieceSymbols[p]
}

// PieceKind is one of the twelve color and piece combinations. White kinds
// come first, each color in pawn..king order.
type PieceKind uint8

// NumKinds is the number of piece kinds, and the length of a Position's
// mask and capture arrays.
const NumKinds = 2 * NumPieces

// Kind combines a color and a piece.
func Kind(c Color, p Piece) PieceKind {
	return PieceKind(uint8(c)*NumPieces + uint8(p))
}

// ParseKind resolves a color name and a piece name to a kind.
func ParseKind(color, piece string) (PieceKind, error) {
	c, err := ParseColor(color)
	if err != nil {
		return 0, err
	}
	p, err := ParsePiece(piece)
	if err != nil {
		return 0, err
	}
	return Kind(c, p), nil
}

// Color of the kind.
func (k PieceKind) Color() Color {
	return Color(k / NumPieces)
}

// Piece of the kind.
func (k PieceKind) Piece() Piece {
	return Piece(k % NumPieces)
}

// Symbol is upper case for white and lower case for black.
func (k PieceKind) Symbol() byte {
	symbol := k.Piece().Symbol()
	if k.Color() == White {
		return symbol - 'a' + 'A'
	}
	return symbol
}

func (k PieceKind) String() string {
	return k.Color().String() + " " + k.Piece().String()
}
