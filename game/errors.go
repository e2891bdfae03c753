package game

import "errors"

var (
	ErrGameOver    = errors.New("game is over")
	ErrOutOfRange  = errors.New("square out of range")
	ErrIllegalMove = errors.New("illegal move")
)
