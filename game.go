package main

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/apex/log"
	uuid "github.com/satori/go.uuid"

	"github.com/maplefeline/zbc/bitboard"
)

var errGameNotFound = errors.New("game not found")

// Game game session.
type Game struct {
	GameID    uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time

	mu       sync.Mutex
	position *bitboard.Position
}

// gameView is the JSON form of a game.
type gameView struct {
	GameID    uuid.UUID
	Board     string
	Pieces    map[string]bitboard.Mask
	Captured  map[string]int
	CreatedAt time.Time
	UpdatedAt time.Time
}

type registry struct {
	mu    sync.RWMutex
	games map[uuid.UUID]*Game
}

var games = &registry{games: make(map[uuid.UUID]*Game)}

var now = time.Now

func makeGame() *Game {
	t := now()
	game := &Game{GameID: uuid.NewV4(), CreatedAt: t, UpdatedAt: t, position: bitboard.New()}
	games.mu.Lock()
	games.games[game.GameID] = game
	games.mu.Unlock()
	log.WithField("game", game.GameID).Info("game created")
	return game
}

func getGame(id uuid.UUID) (*Game, error) {
	games.mu.RLock()
	defer games.mu.RUnlock()
	game, ok := games.games[id]
	if !ok {
		return nil, errGameNotFound
	}
	return game, nil
}

func getGames() []*Game {
	games.mu.RLock()
	list := make([]*Game, 0, len(games.games))
	for _, game := range games.games {
		list = append(list, game)
	}
	games.mu.RUnlock()
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list
}

func deleteGame(id uuid.UUID) error {
	games.mu.Lock()
	defer games.mu.Unlock()
	if _, ok := games.games[id]; !ok {
		return errGameNotFound
	}
	delete(games.games, id)
	log.WithField("game", id).Info("game deleted")
	return nil
}

func resetGames() {
	games.mu.Lock()
	games.games = make(map[uuid.UUID]*Game)
	games.mu.Unlock()
}

// gameIdle drops games not updated within ttl.
func gameIdle(ttl time.Duration) int {
	cutoff := now().Add(-ttl)
	var stale []uuid.UUID
	for _, game := range getGames() {
		game.mu.Lock()
		if game.UpdatedAt.Before(cutoff) {
			stale = append(stale, game.GameID)
		}
		game.mu.Unlock()
	}
	dropped := 0
	for _, id := range stale {
		if err := deleteGame(id); err == nil {
			dropped++
		}
	}
	if dropped > 0 {
		log.WithFields(log.Fields{"dropped": dropped, "ttl": ttl}).Info("idle games expired")
	}
	return dropped
}

// touch must be called with game.mu held.
func (game *Game) touch() {
	game.UpdatedAt = now()
	if overlap := game.position.Overlaps(); overlap != 0 {
		log.WithFields(log.Fields{
			"game":    game.GameID,
			"squares": overlap.Squares(),
		}).Warn("overlapping occupancy")
	}
}

func (game *Game) spawn(color, piece, square string) (bitboard.Mask, error) {
	game.mu.Lock()
	defer game.mu.Unlock()
	if err := game.position.Spawn(color, piece, square); err != nil {
		return 0, err
	}
	game.touch()
	log.WithFields(log.Fields{"game": game.GameID, "color": color, "piece": piece, "square": square}).Debug("spawn")
	return game.position.Overlaps(), nil
}

func (game *Game) move(from, to string) (bool, string, bitboard.Mask, error) {
	game.mu.Lock()
	defer game.mu.Unlock()
	fromMask, err := bitboard.ParseSquare(from)
	if err != nil {
		return false, "", 0, err
	}
	toMask, err := bitboard.ParseSquare(to)
	if err != nil {
		return false, "", 0, err
	}
	entry := log.WithFields(log.Fields{"game": game.GameID, "from": from, "to": to})
	kind, ok := game.position.MoveMask(fromMask, toMask)
	if !ok {
		entry.Debug("move from empty square")
		return false, "", game.position.Overlaps(), nil
	}
	game.touch()
	entry.WithField("kind", kind).Debug("move")
	return true, kind.String(), game.position.Overlaps(), nil
}

func (game *Game) capture(square string) (bool, string, error) {
	game.mu.Lock()
	defer game.mu.Unlock()
	mask, err := bitboard.ParseSquare(square)
	if err != nil {
		return false, "", err
	}
	entry := log.WithFields(log.Fields{"game": game.GameID, "square": square})
	kind, ok := game.position.CaptureMask(mask)
	if !ok {
		entry.Debug("nothing to capture")
		return false, "", nil
	}
	game.touch()
	entry.WithField("kind", kind).Debug("capture")
	return true, kind.String(), nil
}

func (game *Game) render() string {
	game.mu.Lock()
	defer game.mu.Unlock()
	return game.position.String()
}

func (game *Game) captures() [bitboard.NumKinds]int {
	game.mu.Lock()
	defer game.mu.Unlock()
	return game.position.Captures()
}

func (game *Game) response() gameView {
	game.mu.Lock()
	defer game.mu.Unlock()
	view := gameView{
		GameID:    game.GameID,
		Board:     game.position.String(),
		Pieces:    make(map[string]bitboard.Mask, bitboard.NumKinds),
		Captured:  make(map[string]int, bitboard.NumKinds),
		CreatedAt: game.CreatedAt,
		UpdatedAt: game.UpdatedAt,
	}
	for kind := bitboard.PieceKind(0); kind < bitboard.NumKinds; kind++ {
		view.Pieces[kind.String()] = game.position.Pieces(kind)
		view.Captured[kind.String()] = game.position.Captured(kind)
	}
	return view
}
