// Package bitboard keeps a game position as one occupancy mask per piece
// kind.
//
// A Position performs no legality checks. Callers must not spawn or move
// onto an occupied square; Overlaps reports when they did.
package bitboard

// Position holds the occupancy masks and capture counters of every kind.
// It is not safe for concurrent use.
type Position struct {
	pieces   [NumKinds]Mask
	captured [NumKinds]int
}

var startPieces = [NumKinds]Mask{
	0x00FF000000000000, // white pawn
	0x2400000000000000, // white bishop
	0x4200000000000000, // white knight
	0x8100000000000000, // white rook
	0x1000000000000000, // white queen
	0x0800000000000000, // white king
	0xFF00,             // black pawn
	0x24,               // black bishop
	0x42,               // black knight
	0x81,               // black rook
	0x10,               // black queen
	0x08,               // black king
}

// New returns the starting position with no captures.
func New() *Position {
	return &Position{pieces: startPieces}
}

// Pieces returns the occupancy mask of a kind.
func (p *Position) Pieces(kind PieceKind) Mask {
	return p.pieces[kind]
}

// Occupied is the union of all masks.
func (p *Position) Occupied() Mask {
	var occupied Mask
	for _, mask := range p.pieces {
		occupied |= mask
	}
	return occupied
}

// Overlaps returns the squares held by more than one kind.
func (p *Position) Overlaps() Mask {
	var seen, overlaps Mask
	for _, mask := range p.pieces {
		overlaps |= seen & mask
		seen |= mask
	}
	return overlaps
}

// At returns the first kind, in kind order, occupying the square mask.
func (p *Position) At(mask Mask) (PieceKind, bool) {
	for kind, pieces := range p.pieces {
		if pieces&mask != 0 {
			return PieceKind(kind), true
		}
	}
	return 0, false
}

// Captured returns how many pieces of a kind were captured.
func (p *Position) Captured(kind PieceKind) int {
	return p.captured[kind]
}

// Captures returns all capture counters in kind order.
func (p *Position) Captures() [NumKinds]int {
	return p.captured
}

// Place sets mask in the kind's occupancy. The zero mask is a no-op.
func (p *Position) Place(kind PieceKind, mask Mask) {
	p.pieces[kind] |= mask
}

// Spawn places a piece of color at coordinate.
func (p *Position) Spawn(color, piece, coordinate string) error {
	kind, err := ParseKind(color, piece)
	if err != nil {
		return err
	}
	mask, err := ParseSquare(coordinate)
	if err != nil {
		return err
	}
	p.Place(kind, mask)
	return nil
}

// CaptureMask removes the first piece found at mask and counts it as
// captured. At most one piece is removed.
func (p *Position) CaptureMask(mask Mask) (PieceKind, bool) {
	kind, ok := p.At(mask)
	if !ok {
		return 0, false
	}
	p.pieces[kind] ^= mask
	p.captured[kind]++
	return kind, true
}

// Capture removes the piece at coordinate. It reports false when the square
// is empty.
func (p *Position) Capture(coordinate string) (bool, error) {
	mask, err := ParseSquare(coordinate)
	if err != nil {
		return false, err
	}
	_, ok := p.CaptureMask(mask)
	return ok, nil
}

// MoveMask moves the first piece found at from to the to square. The
// destination is not checked, so moving onto a piece leaves both there.
func (p *Position) MoveMask(from, to Mask) (PieceKind, bool) {
	kind, ok := p.At(from)
	if !ok {
		return 0, false
	}
	p.pieces[kind] ^= from
	p.pieces[kind] ^= to
	return kind, true
}

// Move moves the piece at from to to. It reports false when from is empty.
func (p *Position) Move(from, to string) (bool, error) {
	fromMask, err := ParseSquare(from)
	if err != nil {
		return false, err
	}
	toMask, err := ParseSquare(to)
	if err != nil {
		return false, err
	}
	_, ok := p.MoveMask(fromMask, toMask)
	return ok, nil
}
