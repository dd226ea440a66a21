package main

import (
	"github.com/montanaflynn/stats"

	"github.com/maplefeline/zbc/bitboard"
)

// colorCaptures summarizes the captured pieces of one color.
type colorCaptures struct {
	Pieces map[string]int
	Total  int
	Mean   float64
	Most   string
}

type capturesResponse struct {
	Href  string
	White colorCaptures
	Black colorCaptures
}

func summarizeCaptures(counts [bitboard.NumKinds]int, color bitboard.Color) (colorCaptures, error) {
	summary := colorCaptures{Pieces: make(map[string]int, bitboard.NumPieces)}
	raw := make([]int, 0, bitboard.NumPieces)
	for piece := bitboard.Pawn; piece <= bitboard.King; piece++ {
		count := counts[bitboard.Kind(color, piece)]
		summary.Pieces[piece.String()] = count
		raw = append(raw, count)
	}
	data := stats.LoadRawData(raw)
	total, err := stats.Sum(data)
	if err != nil {
		return colorCaptures{}, err
	}
	mean, err := stats.Mean(data)
	if err != nil {
		return colorCaptures{}, err
	}
	most, err := stats.Max(data)
	if err != nil {
		return colorCaptures{}, err
	}
	summary.Total = int(total)
	summary.Mean = mean
	if most > 0 {
		for i, count := range raw {
			if float64(count) == most {
				summary.Most = bitboard.Piece(i).String()
				break
			}
		}
	}
	return summary, nil
}

func (game *Game) captureSummary() (capturesResponse, error) {
	counts := game.captures()
	white, err := summarizeCaptures(counts, bitboard.White)
	if err != nil {
		return capturesResponse{}, err
	}
	black, err := summarizeCaptures(counts, bitboard.Black)
	if err != nil {
		return capturesResponse{}, err
	}
	return capturesResponse{White: white, Black: black}, nil
}
