package game

import "errors"

// Rule violations. Each one leaves the state untouched.
var (
	ErrWrongPhase        = errors.New("operation not allowed in the current phase")
	ErrNotYourToken      = errors.New("token does not belong to the active player")
	ErrDiceNotRolled     = errors.New("dice have not been rolled")
	ErrNoDiceRemaining   = errors.New("no dice remaining: die already consumed")
	ErrRollInProgress    = errors.New("dice roll already in progress")
	ErrDiceAlreadyRolled = errors.New("both dice already rolled")
	ErrNoRollRequested   = errors.New("no dice roll was requested")
	ErrTokenArrived      = errors.New("token has already arrived")
)

// Contract violations: the caller passed something out of range.
var (
	ErrInvalidToken    = errors.New("invalid token")
	ErrInvalidDie      = errors.New("invalid die")
	ErrInvalidDieValue = errors.New("die value out of range")
)
