// Package script parses task script lines into commands.
//
// Parsing is built from small combinators: a Parser is a function from an
// input line and a starting offset to a Result. Primitive parsers match
// keywords, whitespace, identifiers, quoted strings and integers; Seq, OneOf
// and Map compose them into one parser per command.
package script

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Result is the outcome of running a Parser.
//
// On success Pos is the offset just past the consumed input, on failure it's
// the offset where the failure was detected and Reason explains it.
type Result[T any] struct {
	Value  T
	Pos    int
	Reason string
	ok     bool
}

// Ok reports whether the parse succeeded.
func (r Result[T]) Ok() bool {
	return r.ok
}

// Success creates a successful result.
func Success[T any](value T, pos int) Result[T] {
	return Result[T]{Value: value, Pos: pos, ok: true}
}

// Failure creates a failed result.
func Failure[T any](reason string, pos int) Result[T] {
	return Result[T]{Reason: reason, Pos: pos}
}

// Parser reads input starting at pos. Parsers never modify the input and
// return a position >= pos on success.
type Parser[T any] func(input string, pos int) Result[T]

// Pair holds the values of two sequenced parsers.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Literal matches word exactly.
func Literal(word string) Parser[string] {
	return func(input string, pos int) Result[string] {
		if pos <= len(input) && strings.HasPrefix(input[pos:], word) {
			return Success(word, pos+len(word))
		}
		return Failure[string](fmt.Sprintf("Expected '%s'", word), pos)
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// Whitespace matches one or more spaces, tabs, newlines or carriage returns.
var Whitespace Parser[string] = func(input string, pos int) Result[string] {
	end := pos
	for end < len(input) && isSpace(input[end]) {
		end++
	}
	if end == pos {
		return Failure[string]("Expected whitespace", pos)
	}
	return Success(input[pos:end], end)
}

// Identifier matches an ASCII letter followed by letters, digits and
// underscores.
var Identifier Parser[string] = func(input string, pos int) Result[string] {
	if pos >= len(input) || !isLetter(input[pos]) {
		return Failure[string]("Expected identifier", pos)
	}

	end := pos + 1
	for end < len(input) && (isLetter(input[end]) || isDigit(input[end]) || input[end] == '_') {
		end++
	}
	return Success(input[pos:end], end)
}

// QuotedString matches text between double quotes. There are no escapes,
// the string ends at the next quote.
var QuotedString Parser[string] = func(input string, pos int) Result[string] {
	if pos >= len(input) || input[pos] != '"' {
		return Failure[string]("Expected quoted string", pos)
	}

	closing := strings.IndexByte(input[pos+1:], '"')
	if closing < 0 {
		return Failure[string]("Unterminated quoted string", len(input))
	}

	end := pos + 1 + closing
	return Success(input[pos+1:end], end+1)
}

// Integer matches a run of ASCII digits. Values that don't fit in 32 bits
// are rejected.
var Integer Parser[int] = func(input string, pos int) Result[int] {
	end := pos
	for end < len(input) && isDigit(input[end]) {
		end++
	}
	if end == pos {
		return Failure[int]("Expected number", pos)
	}

	n, err := strconv.ParseInt(input[pos:end], 10, 64)
	if err != nil || n > math.MaxInt32 {
		return Failure[int]("Integer out of range", pos)
	}
	return Success(int(n), end)
}

// Seq runs a then b, failing if either does.
func Seq[A, B any](a Parser[A], b Parser[B]) Parser[Pair[A, B]] {
	return func(input string, pos int) Result[Pair[A, B]] {
		ra := a(input, pos)
		if !ra.Ok() {
			return Failure[Pair[A, B]](ra.Reason, ra.Pos)
		}

		rb := b(input, ra.Pos)
		if !rb.Ok() {
			return Failure[Pair[A, B]](rb.Reason, rb.Pos)
		}

		return Success(Pair[A, B]{First: ra.Value, Second: rb.Value}, rb.Pos)
	}
}

// Skip runs a then b and keeps only b's value.
func Skip[A, B any](a Parser[A], b Parser[B]) Parser[B] {
	return Map(Seq(a, b), func(p Pair[A, B]) B {
		return p.Second
	})
}

// OneOf tries each parser at the same offset and returns the first success.
// If all fail, the failure that got furthest into the input is returned,
// ties going to the later parser.
func OneOf[T any](parsers ...Parser[T]) Parser[T] {
	return func(input string, pos int) Result[T] {
		best := Failure[T]("No alternatives", pos)
		for _, p := range parsers {
			r := p(input, pos)
			if r.Ok() {
				return r
			}
			if r.Pos >= best.Pos {
				best = r
			}
		}
		return best
	}
}

// Map transforms the value of a successful parse.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(input string, pos int) Result[B] {
		r := p(input, pos)
		if !r.Ok() {
			return Failure[B](r.Reason, r.Pos)
		}
		return Success(f(r.Value), r.Pos)
	}
}

// Keywords matches the words in order separated by mandatory whitespace.
func Keywords(words ...string) Parser[string] {
	p := Literal(words[0])
	for _, w := range words[1:] {
		p = Skip(Skip(p, Whitespace), Literal(w))
	}
	return Map(p, func(string) string {
		return strings.Join(words, " ")
	})
}
