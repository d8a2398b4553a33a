package challenge

import (
	"fmt"
	"strconv"
	"strings"
)

// Part selects which of the two answers of a puzzle is computed.
type Part int

const (
	PartOne Part = iota + 1
	PartTwo
)

func (p Part) String() string {
	switch p {
	case PartOne:
		return "one"
	case PartTwo:
		return "two"
	default:
		return fmt.Sprintf("Part(%d)", int(p))
	}
}

// ParsePart accepts "1", "2", "one", "two", "first" and "second" (case insensitive).
func ParsePart(s string) (Part, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "one", "first":
		return PartOne, nil
	case "2", "two", "second":
		return PartTwo, nil
	}

	return 0, fmt.Errorf("invalid part %q", s)
}

func (p Part) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Part) UnmarshalText(text []byte) error {
	part, err := ParsePart(string(text))
	if err != nil {
		return err
	}
	*p = part
	return nil
}

// UnmarshalJSON accepts the part as a string or a bare number.
func (p *Part) UnmarshalJSON(data []byte) error {
	text := string(data)
	if unquoted, err := strconv.Unquote(text); err == nil {
		text = unquoted
	}
	return p.UnmarshalText([]byte(text))
}

// Challenge is a single puzzle bound to its input lines.
type Challenge interface {
	Run(part Part) (string, error)
}
