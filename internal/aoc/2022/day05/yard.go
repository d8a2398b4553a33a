package aoc2022day05

import (
	"errors"
	"fmt"
	"strings"

	"github.com/povarna/generative-ai-agents/aoc-agent/internal/challenge"
	"github.com/povarna/generative-ai-agents/aoc-agent/internal/deque"
)

var ErrDuplicateStack = errors.New("duplicate crate stack name")

// Crate is a single labelled crate.
type Crate rune

// Mode selects how a multi-crate move orders the crates it lands.
type Mode int

const (
	// Reverse moves crates one at a time, so a block lands upside down.
	Reverse Mode = iota
	// Preserve moves the block at once, keeping its order.
	Preserve
)

func (m Mode) String() string {
	if m == Preserve {
		return "preserve"
	}
	return "reverse"
}

// ModeFor maps part one to Reverse and part two to Preserve.
func ModeFor(part challenge.Part) (Mode, error) {
	switch part {
	case challenge.PartOne:
		return Reverse, nil
	case challenge.PartTwo:
		return Preserve, nil
	default:
		return 0, fmt.Errorf("unsupported part %s", part)
	}
}

// Yard holds the crate stacks by name. The front of each stack is its top.
type Yard struct {
	names  []string
	stacks map[string]*deque.Deque[Crate]
}

func NewYard(names []string) (*Yard, error) {
	y := &Yard{
		names:  make([]string, 0, len(names)),
		stacks: make(map[string]*deque.Deque[Crate], len(names)),
	}
	for _, name := range names {
		if _, exists := y.stacks[name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateStack, name)
		}
		y.names = append(y.names, name)
		y.stacks[name] = deque.New[Crate]()
	}
	return y, nil
}

// Names returns the stack names in declaration order.
func (y *Yard) Names() []string {
	return append([]string(nil), y.names...)
}

// Crates returns the labels of a stack, top first.
func (y *Yard) Crates(name string) (string, bool) {
	stack, ok := y.stacks[name]
	if !ok {
		return "", false
	}

	var sb strings.Builder
	for _, c := range stack.Items() {
		sb.WriteRune(rune(c))
	}
	return sb.String(), true
}

// Count is the total number of crates across all stacks.
func (y *Yard) Count() int {
	total := 0
	for _, stack := range y.stacks {
		total += stack.Len()
	}
	return total
}

func (y *Yard) Clone() *Yard {
	c := &Yard{
		names:  y.Names(),
		stacks: make(map[string]*deque.Deque[Crate], len(y.stacks)),
	}
	for name, stack := range y.stacks {
		c.stacks[name] = stack.Clone()
	}
	return c
}

func (y *Yard) stack(name string) (*deque.Deque[Crate], error) {
	stack, ok := y.stacks[name]
	if !ok {
		return nil, challenge.MissingData(fmt.Sprintf("crate stack %q", name))
	}
	return stack, nil
}

// Apply performs one move. Crates are staged through a buffer: popped off the
// source into the buffer front, then drained into the destination from the
// far end (Reverse) or the near end (Preserve). Nothing moves when the move
// names an unknown stack or the source holds too few crates.
func (y *Yard) Apply(m Move, mode Mode) error {
	src, err := y.stack(m.Src)
	if err != nil {
		return err
	}
	dst, err := y.stack(m.Dst)
	if err != nil {
		return err
	}
	if src.Len() < m.Count {
		return challenge.MissingData(fmt.Sprintf("crate: stack %q holds %d, move needs %d", m.Src, src.Len(), m.Count))
	}

	staging := deque.New[Crate]()
	for range m.Count {
		c, _ := src.PopFront()
		staging.PushFront(c)
	}

	for staging.Len() > 0 {
		var c Crate
		if mode == Preserve {
			c, _ = staging.PopFront()
		} else {
			c, _ = staging.PopBack()
		}
		dst.PushFront(c)
	}

	return nil
}

// Tops concatenates the top crate of every stack in declaration order.
func (y *Yard) Tops() (string, error) {
	var sb strings.Builder
	for _, name := range y.names {
		stack, err := y.stack(name)
		if err != nil {
			return "", err
		}
		c, ok := stack.Front()
		if !ok {
			return "", challenge.MissingData(fmt.Sprintf("stack is empty: %q", name))
		}
		sb.WriteRune(rune(c))
	}
	return sb.String(), nil
}
