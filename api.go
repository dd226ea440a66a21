package main

import (
	"errors"
	"net/http"
	"path"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	uuid "github.com/satori/go.uuid"

	"github.com/maplefeline/zbc/bitboard"
)

type spawnRequest struct {
	Color  string
	Piece  string
	Square string
}

type moveRequest struct {
	From string
	To   string
}

type captureRequest struct {
	Square string
}

type gameResponse struct {
	Href string
	Game gameView
}

type gamesResponse struct {
	Href  string
	Games []gameView
}

type spawnResponse struct {
	Href    string
	Game    gameView
	Overlap bitboard.Mask
}

type moveResponse struct {
	Href    string
	Game    gameView
	Applied bool
	Kind    string
	Overlap bitboard.Mask
}

type captureResponse struct {
	Href    string
	Game    gameView
	Applied bool
	Kind    string
}

func errToHTTP(err error) error {
	switch {
	case errors.Is(err, errGameNotFound):
		return echo.ErrNotFound
	case errors.Is(err, bitboard.ErrInvalidCoordinate),
		errors.Is(err, bitboard.ErrUnknownColor),
		errors.Is(err, bitboard.ErrUnknownPiece):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return err
}

func requestID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.FromString(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return id, nil
}

func requestGame(c echo.Context) (*Game, error) {
	id, err := requestID(c)
	if err != nil {
		return nil, err
	}
	game, err := getGame(id)
	if err != nil {
		return nil, errToHTTP(err)
	}
	return game, nil
}

func gameHref(game *Game) string {
	return path.Join("/games", game.GameID.String())
}

func responseGame(game *Game) gameResponse {
	return gameResponse{Game: game.response(), Href: gameHref(game)}
}

func responseGames(list []*Game) gamesResponse {
	views := make([]gameView, 0, len(list))
	for _, game := range list {
		views = append(views, game.response())
	}
	return gamesResponse{Games: views, Href: "/games"}
}

func apiHandler() *echo.Echo {
	e := echo.New()

	e.GET("/games", func(c echo.Context) error {
		return c.JSON(http.StatusOK, responseGames(getGames()))
	})
	e.POST("/games", func(c echo.Context) error {
		return c.JSON(http.StatusCreated, responseGame(makeGame()))
	})
	e.GET("/games/:id", func(c echo.Context) error {
		game, err := requestGame(c)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, responseGame(game))
	})
	e.DELETE("/games/:id", func(c echo.Context) error {
		id, err := requestID(c)
		if err != nil {
			return err
		}
		if err := deleteGame(id); err != nil {
			return errToHTTP(err)
		}
		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/games/:id/board", func(c echo.Context) error {
		game, err := requestGame(c)
		if err != nil {
			return err
		}
		board := game.render()
		if raw := c.QueryParam("color"); raw != "" {
			colored, err := strconv.ParseBool(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}
			if colored {
				board = colorBoard(board)
			}
		}
		return c.String(http.StatusOK, board)
	})
	e.POST("/games/:id/spawns", func(c echo.Context) error {
		game, err := requestGame(c)
		if err != nil {
			return err
		}
		var request spawnRequest
		if err := c.Bind(&request); err != nil {
			return err
		}
		overlap, err := game.spawn(request.Color, request.Piece, request.Square)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, spawnResponse{Href: gameHref(game), Game: game.response(), Overlap: overlap})
	})
	e.POST("/games/:id/moves", func(c echo.Context) error {
		game, err := requestGame(c)
		if err != nil {
			return err
		}
		var request moveRequest
		if err := c.Bind(&request); err != nil {
			return err
		}
		applied, kind, overlap, err := game.move(request.From, request.To)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, moveResponse{Href: gameHref(game), Game: game.response(), Applied: applied, Kind: kind, Overlap: overlap})
	})
	e.GET("/games/:id/captures", func(c echo.Context) error {
		game, err := requestGame(c)
		if err != nil {
			return err
		}
		summary, err := game.captureSummary()
		if err != nil {
			return err
		}
		summary.Href = path.Join(gameHref(game), "captures")
		return c.JSON(http.StatusOK, summary)
	})
	e.POST("/games/:id/captures", func(c echo.Context) error {
		game, err := requestGame(c)
		if err != nil {
			return err
		}
		var request captureRequest
		if err := c.Bind(&request); err != nil {
			return err
		}
		applied, kind, err := game.capture(request.Square)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, captureResponse{Href: gameHref(game), Game: game.response(), Applied: applied, Kind: kind})
	})

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Gzip())
	e.Use(middleware.RequestID())
	e.Use(middleware.Secure())

	return e
}
