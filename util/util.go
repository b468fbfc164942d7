// Package util provides a collection of domain-agnostic utility functions and terminal helpers.
package util

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/term"
)

// Quantify returns a pluralized string representation of a count and its associated labels.
func Quantify(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// Capitalize transforms the first rune of a string to its uppercase equivalent.
func Capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// TerminalSize retrieves the current character dimensions of the terminal window.
func TerminalSize() (width, height int, err error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// IsInteractive reports whether both stdin and stdout are attached to a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Max returns the maximum value among arguments.
func Max[T constraints.Ordered](items ...T) (max T) {
	if len(items) == 0 {
		return
	}
	max = items[0]
	for _, item := range items[1:] {
		if item > max {
			max = item
		}
	}
	return
}

// Min returns the minimum value among arguments.
func Min[T constraints.Ordered](items ...T) (min T) {
	if len(items) == 0 {
		return
	}
	min = items[0]
	for _, item := range items[1:] {
		if item < min {
			min = item
		}
	}
	return
}
