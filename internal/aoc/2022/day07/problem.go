// Package aoc2022day07 rebuilds a directory tree from a terminal transcript
// and sizes its directories.
package aoc2022day07

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/povarna/generative-ai-agents/aoc-agent/internal/challenge"
)

const (
	smallDirLimit  = 100000
	totalDiskSpace = 70000000
	requiredSpace  = 30000000
)

type Node struct {
	Name     string
	IsDir    bool
	Size     int
	Parent   *Node
	Children map[string]*Node
}

func NewDir(name string, parent *Node) *Node {
	return &Node{
		Name:     name,
		IsDir:    true,
		Parent:   parent,
		Children: make(map[string]*Node),
	}
}

func NewFile(name string, size int, parent *Node) *Node {
	return &Node{
		Name:   name,
		Size:   size,
		Parent: parent,
	}
}

func (n *Node) TotalSize() int {
	if !n.IsDir {
		return n.Size
	}

	total := 0
	for _, child := range n.Children {
		total += child.TotalSize()
	}
	return total
}

// Walk visits every directory below and including n.
func (n *Node) Walk(visit func(dir *Node)) {
	if !n.IsDir {
		return
	}
	visit(n)
	for _, child := range n.Children {
		child.Walk(visit)
	}
}

type Challenge struct {
	lines []string
}

func New(lines []string) *Challenge {
	return &Challenge{lines: lines}
}

func (c *Challenge) Run(part challenge.Part) (string, error) {
	root, err := BuildFileSystem(c.lines)
	if err != nil {
		return "", err
	}

	switch part {
	case challenge.PartOne:
		return strconv.Itoa(sumSmallDirectories(root, smallDirLimit)), nil
	case challenge.PartTwo:
		needToFree := requiredSpace - (totalDiskSpace - root.TotalSize())
		return strconv.Itoa(findSmallestToDelete(root, needToFree)), nil
	default:
		return "", fmt.Errorf("unsupported part %s", part)
	}
}

// BuildFileSystem replays `cd` and `ls` output into a tree rooted at "/".
func BuildFileSystem(lines []string) (*Node, error) {
	root := NewDir("/", nil)
	current := root

	for _, line := range lines {
		switch {
		case line == "" || line == "$ ls":
		case strings.HasPrefix(line, "$ cd "):
			target := strings.TrimPrefix(line, "$ cd ")
			switch target {
			case "/":
				current = root
			case "..":
				if current.Parent != nil {
					current = current.Parent
				}
			default:
				child, exists := current.Children[target]
				if !exists {
					child = NewDir(target, current)
					current.Children[target] = child
				}
				if !child.IsDir {
					return nil, challenge.InvalidCommand(line, fmt.Errorf("%s is a file", target))
				}
				current = child
			}
		case strings.HasPrefix(line, "$"):
			return nil, challenge.InvalidCommand(line, nil)
		case strings.HasPrefix(line, "dir "):
			name := strings.TrimPrefix(line, "dir ")
			if _, exists := current.Children[name]; !exists {
				current.Children[name] = NewDir(name, current)
			}
		default:
			fields := strings.Fields(line)
			if len(fields) != 2 {
				return nil, challenge.InvalidInput(line, "expected <size> <name>")
			}
			size, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, challenge.InvalidCommand(line, &challenge.ParseIntError{Token: fields[0], Err: err})
			}
			current.Children[fields[1]] = NewFile(fields[1], size, current)
		}
	}

	return root, nil
}

func sumSmallDirectories(root *Node, limit int) int {
	total := 0
	root.Walk(func(dir *Node) {
		if size := dir.TotalSize(); size <= limit {
			total += size
		}
	})
	return total
}

func findSmallestToDelete(root *Node, minSize int) int {
	smallest := math.MaxInt
	root.Walk(func(dir *Node) {
		if size := dir.TotalSize(); size >= minSize && size < smallest {
			smallest = size
		}
	})
	return smallest
}
