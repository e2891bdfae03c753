package game

import (
	"fmt"

	"golang.org/x/exp/slices"

	"checkers-engine/checkersmg"
)

// State identifies where a match is in its lifecycle.
type State uint8

const (
	// StateAwaitingMove means a turn is in progress: either it just began or
	// the current player is mid-way through a capture sequence.
	StateAwaitingMove State = iota
	// StateTurnComplete means the last move finished a full turn and the
	// opposing player is to act.
	StateTurnComplete
	// StateGameOver means the match has ended and a winner is decided.
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateAwaitingMove:
		return "awaiting move"
	case StateTurnComplete:
		return "turn complete"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Controller drives a match. It owns the board exclusively, tracks whose turn
// it is, and enforces turn order including forced multi-jump sequences: once
// a piece starts capturing, only that piece may continue within the turn, and
// it must continue while it can.
//
// Every accepted move advances the machine; a rejected move changes nothing.
// A move that leaves the moving piece with further captures stays in
// StateAwaitingMove with the same player. A move that finishes the turn
// passes play to the opponent in StateTurnComplete, or ends the match in
// StateGameOver when the opponent cannot respond.
type Controller struct {
	board  *checkersmg.Board
	player checkersmg.Color
	state  State
	chain  checkersmg.Square // piece locked into a capture sequence, or NoSquare
	winner checkersmg.Color
}

// New returns a controller for a fresh game with the standard starting
// layout. White moves first.
func New() *Controller {
	return &Controller{
		board:  checkersmg.NewBoard(),
		player: checkersmg.White,
		state:  StateAwaitingMove,
		chain:  checkersmg.NoSquare,
	}
}

// NewFromPosition starts a match from an arbitrary position with toMove to
// play. The controller takes ownership of the board. The terminal check runs
// immediately, so a dead position begins in StateGameOver.
func NewFromPosition(b *checkersmg.Board, toMove checkersmg.Color) *Controller {
	c := &Controller{
		board:  b,
		player: toMove,
		state:  StateAwaitingMove,
		chain:  checkersmg.NoSquare,
	}
	if w, over := WinnerOf(b, toMove); over {
		c.state = StateGameOver
		c.winner = w
	}
	return c
}

// Player returns the side to move.
func (c *Controller) Player() checkersmg.Color { return c.player }

// State returns the current lifecycle state.
func (c *Controller) State() State { return c.state }

// Winner returns the winning side once the game is over.
func (c *Controller) Winner() (checkersmg.Color, bool) {
	if c.state != StateGameOver {
		return checkersmg.White, false
	}
	return c.winner, true
}

// Board returns a copy of the current position. The controller's own board
// is never exposed; all mutation goes through Play.
func (c *Controller) Board() checkersmg.Board { return *c.board }

// InChain reports whether the current player is part-way through a
// multi-jump sequence.
func (c *Controller) InChain() bool { return c.chain != checkersmg.NoSquare }

// LegalMoves returns the moves the current player may play right now. During
// a capture sequence only the continuing jumps of the moving piece are
// legal; otherwise the full set with the forced-capture rule applied. The
// result is nil once the game is over.
func (c *Controller) LegalMoves() []checkersmg.Move {
	if c.state == StateGameOver {
		return nil
	}
	if c.chain != checkersmg.NoSquare {
		return c.board.CapturesFrom(c.chain)
	}
	return c.board.GenerateMoves(c.player)
}

// Play attempts the move from -> to for the current player. On success the
// board advances and the machine transitions as described on Controller. A
// rejected move returns ErrOutOfRange or ErrIllegalMove (with the reason
// attached) and leaves the match exactly as it was.
func (c *Controller) Play(from, to checkersmg.Square) error {
	if c.state == StateGameOver {
		return fmt.Errorf("%w: %v already won", ErrGameOver, c.winner)
	}
	if from < 0 || from > 63 {
		return fmt.Errorf("%w: from %d", ErrOutOfRange, from)
	}
	if to < 0 || to > 63 {
		return fmt.Errorf("%w: to %d", ErrOutOfRange, to)
	}
	m := checkersmg.NewMove(from, to)
	if !slices.Contains(c.LegalMoves(), m) {
		return fmt.Errorf("%w: %s", ErrIllegalMove, c.explainIllegal(m))
	}

	c.board.Apply(m, c.player)
	if m.IsCapture() && len(c.board.CapturesFrom(to)) > 0 {
		// Same piece must keep capturing; the turn is not over.
		c.chain = to
		c.state = StateAwaitingMove
		return nil
	}
	c.endTurn()
	return nil
}

// endTurn closes the current turn: the chain lock clears, play passes to the
// opponent, and the terminal check runs for the incoming player.
func (c *Controller) endTurn() {
	c.chain = checkersmg.NoSquare
	c.player = c.player.Opponent()
	if w, over := WinnerOf(c.board, c.player); over {
		c.state = StateGameOver
		c.winner = w
		return
	}
	c.state = StateTurnComplete
}

// explainIllegal builds the reason for a rejected move. Play has already
// established the move is not in the legal set.
func (c *Controller) explainIllegal(m checkersmg.Move) string {
	from, to := m.From(), m.To()
	p := c.board.PieceAt(from)
	switch {
	case c.chain != checkersmg.NoSquare && from != c.chain:
		return fmt.Sprintf("the piece on %s must finish its capture sequence", checkersmg.SquareString(c.chain))
	case p == checkersmg.NoPiece:
		return fmt.Sprintf("no piece on square %s", checkersmg.SquareString(from))
	case p.Color() != c.player:
		return fmt.Sprintf("the piece on %s belongs to %v", checkersmg.SquareString(from), c.player.Opponent())
	case !c.board.IsEmpty(to):
		return fmt.Sprintf("square %s is occupied", checkersmg.SquareString(to))
	case !m.IsCapture() && c.board.HasCaptures(c.player):
		return "a capture is available and must be taken"
	case m.IsCapture():
		return fmt.Sprintf("%s is not a legal jump for %v", m, c.player)
	default:
		return fmt.Sprintf("%s is not a legal move for %v", m, c.player)
	}
}

// IsTerminal reports whether the game is over with toMove to play: either
// side has run out of pieces, or toMove has no legal move.
func IsTerminal(b *checkersmg.Board, toMove checkersmg.Color) bool {
	_, over := WinnerOf(b, toMove)
	return over
}

// WinnerOf returns the winner of a finished position with toMove to play.
// A side with no pieces left or no legal move has lost.
// ok is false while the game is still live.
func WinnerOf(b *checkersmg.Board, toMove checkersmg.Color) (winner checkersmg.Color, ok bool) {
	switch {
	case b.Count(toMove) == 0 || !b.HasMoves(toMove):
		return toMove.Opponent(), true
	case b.Count(toMove.Opponent()) == 0:
		return toMove, true
	}
	return checkersmg.White, false
}
