package challenge

import (
	"errors"
	"fmt"
)

var (
	ErrTooManyLines = errors.New("too many lines of input")
	ErrNoSolution   = errors.New("no solution found")
)

// MissingDataError reports a structural element that was absent when needed:
// a stack name line, a stack, a crate.
type MissingDataError struct {
	What string
}

func MissingData(what string) error {
	return &MissingDataError{What: what}
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("missing data in challenge: %s", e.What)
}

// InvalidCommandError reports an instruction line that does not match its grammar.
type InvalidCommandError struct {
	Line string
	Err  error
}

func InvalidCommand(line string, err error) error {
	return &InvalidCommandError{Line: line, Err: err}
}

func (e *InvalidCommandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid command in challenge: %q: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("invalid command in challenge: %q", e.Line)
}

func (e *InvalidCommandError) Unwrap() error {
	return e.Err
}

type ParseIntError struct {
	Token string
	Err   error
}

func (e *ParseIntError) Error() string {
	return fmt.Sprintf("error parsing int: %q: %v", e.Token, e.Err)
}

func (e *ParseIntError) Unwrap() error {
	return e.Err
}

// InvalidInputError reports a data line that could not be interpreted.
type InvalidInputError struct {
	Line   string
	Reason string
}

func InvalidInput(line, reason string) error {
	return &InvalidInputError{Line: line, Reason: reason}
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input in challenge: %q: %s", e.Line, e.Reason)
}

type InvalidDayError struct {
	Day int
}

func (e *InvalidDayError) Error() string {
	return fmt.Sprintf("invalid day `%d`", e.Day)
}

type NotImplementedError struct {
	Day int
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("day `%d` not implemented", e.Day)
}

// IsUnknownDay reports whether err means no puzzle exists for the requested day.
func IsUnknownDay(err error) bool {
	var invalid *InvalidDayError
	var missing *NotImplementedError
	return errors.As(err, &invalid) || errors.As(err, &missing)
}
