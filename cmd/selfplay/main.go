package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"checkers-engine/checkersmg"
	"checkers-engine/game"
)

// Random playouts through the match controller. Every position along the way
// is validated, so this doubles as a fuzz pass over the move generator.
func main() {
	games := flag.Int("games", 100, "number of games to play")
	seed := flag.Int64("seed", 0, "RNG seed (0 = derive from time)")
	fen := flag.String("fen", "", "start position (empty = standard setup)")
	maxMoves := flag.Int("maxmoves", 1000, "abandon a game after this many moves")
	verbose := flag.Bool("v", false, "log each finished game")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))
	log.Info().Int64("seed", *seed).Int("games", *games).Msg("self-play starting")

	var whiteWins, blackWins, abandoned, totalMoves int
	start := time.Now()
	for i := 0; i < *games; i++ {
		winner, finished, moves, err := playOne(rng, *fen, *maxMoves)
		if err != nil {
			log.Fatal().Err(err).Int("game", i).Msg("self-play aborted")
		}
		totalMoves += moves
		switch {
		case !finished:
			abandoned++
		case winner == checkersmg.White:
			whiteWins++
		default:
			blackWins++
		}
		if *verbose {
			ev := log.Info().Int("game", i).Int("moves", moves)
			if finished {
				ev = ev.Str("winner", winner.String())
			} else {
				ev = ev.Bool("abandoned", true)
			}
			ev.Msg("game finished")
		}
	}
	elapsed := time.Since(start)

	avg := 0.0
	if *games > 0 {
		avg = float64(totalMoves) / float64(*games)
	}
	fmt.Printf("games %d  white %d  black %d  abandoned %d  avg moves %.1f  (%s)\n",
		*games, whiteWins, blackWins, abandoned, avg, elapsed.Round(time.Millisecond))
}

// playOne runs a single game to completion, counting individual moves
// (each leg of a multi-jump counts). Games that outlive maxMoves are
// reported as unfinished rather than an error: two random kings can
// shuffle forever.
func playOne(rng *rand.Rand, fen string, maxMoves int) (checkersmg.Color, bool, int, error) {
	ctrl, err := controllerFor(fen)
	if err != nil {
		return checkersmg.White, false, 0, err
	}
	moves := 0
	for ctrl.State() != game.StateGameOver {
		if moves >= maxMoves {
			return checkersmg.White, false, moves, nil
		}
		legal := ctrl.LegalMoves()
		if len(legal) == 0 {
			return checkersmg.White, false, moves, fmt.Errorf("no moves in a live game at %s", position(ctrl))
		}
		m := legal[rng.Intn(len(legal))]
		if err := ctrl.Play(m.From(), m.To()); err != nil {
			return checkersmg.White, false, moves, fmt.Errorf("generated move %v rejected at %s: %w", m, position(ctrl), err)
		}
		moves++
		b := ctrl.Board()
		if !b.Validate() {
			return checkersmg.White, false, moves, fmt.Errorf("corrupt board after %v at %s", m, position(ctrl))
		}
	}
	w, _ := ctrl.Winner()
	return w, true, moves, nil
}

func controllerFor(fen string) (*game.Controller, error) {
	if fen == "" {
		return game.New(), nil
	}
	b, turn, err := checkersmg.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return game.NewFromPosition(b, turn), nil
}

func position(c *game.Controller) string {
	b := c.Board()
	return b.ToFEN(c.Player())
}
