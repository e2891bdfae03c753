package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"checkers-engine/checkersmg"
	"checkers-engine/game"
)

// quitMove is a sentinel outside the encodable square range, used as the
// leave-the-match option in the interactive picker.
const quitMove checkersmg.Move = 0xFFFF

// session couples a match controller with its log context. Both front ends
// drive the same session; only the prompting differs.
type session struct {
	ctrl  *game.Controller
	match uuid.UUID
	log   zerolog.Logger
}

func newSession(fen string) (*session, error) {
	ctrl, err := controllerFor(fen)
	if err != nil {
		return nil, err
	}
	s := &session{ctrl: ctrl, match: uuid.New()}
	s.log = log.With().Str("match", s.match.String()).Logger()
	b := s.ctrl.Board()
	s.log.Info().Str("position", b.ToFEN(s.ctrl.Player())).Msg("match started")
	return s, nil
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

// play runs one move through the controller, logging the outcome under the
// match id. The controller guarantees a rejected move changes nothing.
func (s *session) play(from, to checkersmg.Square) error {
	mover := s.ctrl.Player()
	if err := s.ctrl.Play(from, to); err != nil {
		s.log.Debug().Err(err).Msg("move rejected")
		return err
	}
	s.log.Debug().
		Str("player", mover.String()).
		Str("move", checkersmg.NewMove(from, to).String()).
		Bool("chain", s.ctrl.InChain()).
		Msg("move accepted")
	if s.ctrl.State() == game.StateGameOver {
		if w, ok := s.ctrl.Winner(); ok {
			s.log.Info().Str("winner", w.String()).Msg("match over")
		}
	}
	return nil
}

// findMove resolves a token like "11-15" or "11x18" against the legal moves.
// The move must match an entry of the current legal set; notation that parses
// but is not playable right now is rejected like any other illegal move.
func findMove(moves []checkersmg.Move, token string) (checkersmg.Move, bool) {
	for _, m := range moves {
		if m.String() == token {
			return m, true
		}
	}
	parsed, err := checkersmg.ParseMove(token)
	if err != nil {
		return 0, false
	}
	for _, m := range moves {
		if m.From() == parsed.From() && m.To() == parsed.To() {
			return m, true
		}
	}
	// Not in the legal set; hand the squares back so the controller can say why.
	return parsed, true
}

// ==========================
// Plain line-oriented front end
// ==========================

const cliHelp = `commands:
  11-15          play a move (separator - or x)
  moves          list the legal moves
  board          draw the board
  fen [position] print the position, or load the given one
  new            start a fresh match
  dump           dump the session state
  help           show this help and the square numbering
  quit           leave`

// cliLoop reads commands line by line. Unknown tokens are tried as moves, so
// a session is usually just numbers: 11-15, 23-18, ...
func cliLoop(r io.Reader, w io.Writer, fen string) error {
	s, err := newSession(fen)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "checkers - type help for commands")
	fmt.Fprint(w, renderBoard(s.ctrl.Board()))

	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprintf(w, "%s> ", prompt(s.ctrl))
		if !scanner.Scan() {
			return scanner.Err()
		}
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "quit", "exit":
			return nil
		case "help":
			fmt.Fprintln(w, cliHelp)
			fmt.Fprint(w, renderNumbering())
		case "board":
			fmt.Fprint(w, renderBoard(s.ctrl.Board()))
		case "moves":
			fmt.Fprintln(w, movesLine(s.ctrl.LegalMoves()))
		case "fen":
			if len(tokens) == 1 {
				b := s.ctrl.Board()
				fmt.Fprintln(w, b.ToFEN(s.ctrl.Player()))
				continue
			}
			next, err := newSession(tokens[1])
			if err != nil {
				fmt.Fprintln(w, "bad position:", err)
				continue
			}
			s = next
			fmt.Fprint(w, renderBoard(s.ctrl.Board()))
		case "new":
			if s, err = newSession(""); err != nil {
				return err
			}
			fmt.Fprint(w, renderBoard(s.ctrl.Board()))
		case "dump":
			spew.Fdump(w, s.ctrl.State(), s.ctrl.Player(), s.ctrl.Board())
		default:
			playToken(s, w, tokens[0])
		}
	}
}

func playToken(s *session, w io.Writer, token string) {
	if s.ctrl.State() == game.StateGameOver {
		fmt.Fprintln(w, "the game is over - type new to start another")
		return
	}
	m, ok := findMove(s.ctrl.LegalMoves(), token)
	if !ok {
		fmt.Fprintf(w, "cannot read %q - moves look like 11-15 or 11x18\n", token)
		return
	}
	if err := s.play(m.From(), m.To()); err != nil {
		fmt.Fprintln(w, err)
		return
	}
	fmt.Fprint(w, renderBoard(s.ctrl.Board()))
	switch s.ctrl.State() {
	case game.StateGameOver:
		if win, ok := s.ctrl.Winner(); ok {
			fmt.Fprintf(w, "%v wins\n", win)
		}
	case game.StateAwaitingMove:
		if s.ctrl.InChain() {
			fmt.Fprintln(w, "capture continues:", movesLine(s.ctrl.LegalMoves()))
		}
	}
}

func prompt(c *game.Controller) string {
	if c.State() == game.StateGameOver {
		return "over"
	}
	return strings.ToLower(c.Player().String())
}

func movesLine(moves []checkersmg.Move) string {
	if len(moves) == 0 {
		return "(none)"
	}
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// ==========================
// Interactive front end
// ==========================

// interactiveLoop prompts for each move with a picker over the legal set, so
// illegal input is impossible to enter. Ctrl-C leaves cleanly.
func interactiveLoop(fen string) error {
	s, err := newSession(fen)
	if err != nil {
		return err
	}
	for {
		if s.ctrl.State() == game.StateGameOver {
			win, _ := s.ctrl.Winner()
			fmt.Print(renderBoard(s.ctrl.Board()))
			fmt.Printf("%v wins\n", win)

			again := false
			form := huh.NewForm(huh.NewGroup(
				huh.NewConfirm().Title("Play again?").Value(&again),
			))
			if err := form.Run(); err != nil {
				return interactiveErr(err)
			}
			if !again {
				return nil
			}
			if s, err = newSession(""); err != nil {
				return err
			}
			continue
		}

		fmt.Print(renderBoard(s.ctrl.Board()))
		m, err := pickMove(s.ctrl)
		if err != nil {
			return interactiveErr(err)
		}
		if m == quitMove {
			return nil
		}
		if err := s.play(m.From(), m.To()); err != nil {
			// The picker only offers legal moves; log and carry on.
			s.log.Warn().Err(err).Msg("picker produced a rejected move")
		}
	}
}

func pickMove(c *game.Controller) (checkersmg.Move, error) {
	moves := c.LegalMoves()
	opts := make([]huh.Option[checkersmg.Move], 0, len(moves)+1)
	for _, m := range moves {
		opts = append(opts, huh.NewOption(m.String(), m))
	}
	opts = append(opts, huh.NewOption("quit", quitMove))

	title := fmt.Sprintf("%v to move", c.Player())
	if c.InChain() {
		title = fmt.Sprintf("%v must continue the capture", c.Player())
	}

	var choice checkersmg.Move
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[checkersmg.Move]().
			Title(title).
			Options(opts...).
			Value(&choice),
	))
	if err := form.Run(); err != nil {
		return 0, err
	}
	return choice, nil
}

func interactiveErr(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	return err
}
