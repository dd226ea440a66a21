package bitboard

// String renders the board with rank 8 on top, files a to h left to right.
// White is upper case, black lower case and empty squares are '-'. Every
// character, newlines included, is preceded by a space.
//
// Kinds are drawn in order, so on overlapping squares the later kind wins.
func (p *Position) String() string {
	var cells [64]byte
	for i := range cells {
		cells[i] = '0'
	}
	for kind, mask := range p.pieces {
		mask.mark(&cells, PieceKind(kind).Symbol())
	}
	return layout(cells)
}

// Render is String.
func (p *Position) Render() string {
	return p.String()
}
