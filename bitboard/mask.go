package bitboard

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// ErrInvalidCoordinate is returned for coordinates outside a1..h8.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Mask is a 64 bit occupancy mask, one bit per square.
//
// Bit 0 is h8 and bit 63 is a1:
//
//	8 |  7  6  5  4  3  2  1  0
//	7 | 15 14 13 12 11 10  9  8
//	  ...
//	1 | 63 62 61 60 59 58 57 56
//	     a  b  c  d  e  f  g  h
type Mask uint64

func squareBit(file, rank int) uint {
	return uint((7-rank)*8 + (7 - file))
}

// Encode returns the single bit mask for an algebraic coordinate such as
// "e4". Malformed coordinates yield the zero mask, which callers treat as
// "nothing selected".
func Encode(coordinate string) Mask {
	if len(coordinate) != 2 {
		return 0
	}
	file := int(coordinate[0]) - 'a'
	rank := int(coordinate[1]) - '1'
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return 0
	}
	return Mask(1) << squareBit(file, rank)
}

// ParseSquare is Encode with an explicit error for malformed coordinates.
func ParseSquare(coordinate string) (Mask, error) {
	mask := Encode(coordinate)
	if mask == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCoordinate, coordinate)
	}
	return mask, nil
}

// Decode returns the coordinate of a single bit mask.
func Decode(mask Mask) (string, bool) {
	if mask.Count() != 1 {
		return "", false
	}
	index := bits.TrailingZeros64(uint64(mask))
	file := 7 - index%8
	rank := 7 - index/8
	return string([]byte{byte('a' + file), byte('1' + rank)}), true
}

// Square is Decode without the ok flag.
func (m Mask) Square() string {
	square, _ := Decode(m)
	return square
}

// Count returns the number of occupied squares.
func (m Mask) Count() int {
	return bits.OnesCount64(uint64(m))
}

// Squares lists the coordinates of every set bit, lowest bit first.
func (m Mask) Squares() []string {
	squares := make([]string, 0, m.Count())
	for rest := m; rest != 0; rest &= rest - 1 {
		squares = append(squares, (rest & -rest).Square())
	}
	return squares
}

func (m Mask) String() string {
	return fmt.Sprintf("0x%016x", uint64(m))
}

// MarshalText encodes the mask as a 0x prefixed hex string.
func (m Mask) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText accepts the MarshalText form.
func (m *Mask) UnmarshalText(text []byte) error {
	var value uint64
	if _, err := fmt.Sscanf(string(text), "0x%x", &value); err != nil {
		return fmt.Errorf("invalid mask %q: %w", text, err)
	}
	*m = Mask(value)
	return nil
}

// Board draws the mask in the same layout as Position.String, with 'x' on
// set squares.
func (m Mask) Board() string {
	var cells [64]byte
	for i := range cells {
		cells[i] = '0'
	}
	m.mark(&cells, 'x')
	return layout(cells)
}

// mark writes symbol into every cell whose bit is set. Cell i holds bit 63-i.
func (m Mask) mark(cells *[64]byte, symbol byte) {
	for rest := m; rest != 0; rest &= rest - 1 {
		cells[63-bits.TrailingZeros64(uint64(rest))] = symbol
	}
}

// layout splits the flattened cells into rows from block 7 down to block 0,
// puts a space before every character and shows empty cells as '-'.
func layout(cells [64]byte) string {
	var sb strings.Builder
	sb.Grow(8 * 18)
	for block := 7; block >= 0; block-- {
		for _, cell := range cells[block*8 : block*8+8] {
			if cell == '0' {
				cell = '-'
			}
			sb.WriteByte(' ')
			sb.WriteByte(cell)
		}
		sb.WriteString(" \n")
	}
	return sb.String()
}
