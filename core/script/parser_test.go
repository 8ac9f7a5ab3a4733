package script

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type primitiveCase struct {
	input  string
	pos    int
	ok     bool
	value  interface{}
	end    int
	reason string
}

func runPrimitiveCases[T any](t *testing.T, p Parser[T], cases []primitiveCase) {
	t.Helper()

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%q@%d", tc.input, tc.pos), func(t *testing.T) {
			r := p(tc.input, tc.pos)

			assert.Equal(t, tc.ok, r.Ok())
			assert.Equal(t, tc.end, r.Pos)
			if tc.ok {
				assert.Equal(t, tc.value, r.Value)
				assert.Empty(t, r.Reason)
			} else {
				assert.Equal(t, tc.reason, r.Reason)
			}
		})
	}
}

func TestLiteral(t *testing.T) {
	runPrimitiveCases(t, Literal("USER"), []primitiveCase{
		{input: "USER", ok: true, value: "USER", end: 4},
		{input: "USERS", ok: true, value: "USER", end: 4},
		{input: "CREATE USER", pos: 7, ok: true, value: "USER", end: 11},
		{input: "USE", reason: "Expected 'USER'"},
		{input: "user", reason: "Expected 'USER'"},
		{input: "", reason: "Expected 'USER'"},
		{input: "CREATE USER", pos: 11, reason: "Expected 'USER'", end: 11},
	})
}

func TestWhitespace(t *testing.T) {
	runPrimitiveCases(t, Whitespace, []primitiveCase{
		{input: " \t\r\nx", ok: true, value: " \t\r\n", end: 4},
		{input: "a  b", pos: 1, ok: true, value: "  ", end: 3},
		{input: "x", reason: "Expected whitespace"},
		{input: "", reason: "Expected whitespace"},
	})
}

func TestIdentifier(t *testing.T) {
	runPrimitiveCases(t, Identifier, []primitiveCase{
		{input: "alice", ok: true, value: "alice", end: 5},
		{input: "a_1B c", ok: true, value: "a_1B", end: 4},
		{input: "Bob-2", ok: true, value: "Bob", end: 3},
		{input: "_a", reason: "Expected identifier"},
		{input: "1a", reason: "Expected identifier"},
		{input: "", reason: "Expected identifier"},
		{input: "é", reason: "Expected identifier"},
	})
}

func TestQuotedString(t *testing.T) {
	runPrimitiveCases(t, QuotedString, []primitiveCase{
		{input: `"hello world" x`, ok: true, value: "hello world", end: 13},
		{input: `""`, ok: true, value: "", end: 2},
		{input: `"a\"b"`, ok: true, value: `a\`, end: 4},
		{input: `x "hi"`, pos: 2, ok: true, value: "hi", end: 6},
		{input: `"abc`, reason: "Unterminated quoted string", end: 4},
		{input: `abc`, reason: "Expected quoted string"},
		{input: ``, reason: "Expected quoted string"},
	})
}

func TestInteger(t *testing.T) {
	runPrimitiveCases(t, Integer, []primitiveCase{
		{input: "3", ok: true, value: 3, end: 1},
		{input: "042x", ok: true, value: 42, end: 3},
		{input: "2147483647", ok: true, value: 2147483647, end: 10},
		{input: "2147483648", reason: "Integer out of range"},
		{input: "99999999999999999999999", reason: "Integer out of range"},
		{input: "-1", reason: "Expected number"},
		{input: "", reason: "Expected number"},
	})
}

func TestSeq(t *testing.T) {
	p := Seq(Identifier, Skip(Whitespace, Integer))

	r := p("bob 12", 0)
	assert.True(t, r.Ok())
	assert.Equal(t, Pair[string, int]{First: "bob", Second: 12}, r.Value)
	assert.Equal(t, 6, r.Pos)

	r = p("bob x", 0)
	assert.False(t, r.Ok())
	assert.Equal(t, "Expected number", r.Reason)
	assert.Equal(t, 4, r.Pos)

	r = p("1 2", 0)
	assert.False(t, r.Ok())
	assert.Equal(t, "Expected identifier", r.Reason)
	assert.Equal(t, 0, r.Pos)
}

func TestOneOf(t *testing.T) {
	p := OneOf(
		Keywords("GET", "USERS"),
		Keywords("GET", "GROUPS"),
		Keywords("GET", "MESSAGE", "HISTORY"),
	)

	t.Run("backtracks", func(t *testing.T) {
		r := p("GET MESSAGE HISTORY", 0)
		assert.True(t, r.Ok())
		assert.Equal(t, "GET MESSAGE HISTORY", r.Value)
		assert.Equal(t, 19, r.Pos)
	})

	t.Run("furthest failure", func(t *testing.T) {
		r := p("GET MESSAGE HISTOR", 0)
		assert.False(t, r.Ok())
		assert.Equal(t, "Expected 'HISTORY'", r.Reason)
		assert.Equal(t, 12, r.Pos)
	})

	t.Run("ties go to the last", func(t *testing.T) {
		r := p("PUT", 0)
		assert.False(t, r.Ok())
		assert.Equal(t, "Expected 'GET'", r.Reason)
		assert.Equal(t, 0, r.Pos)
	})

	t.Run("empty", func(t *testing.T) {
		r := OneOf[string]()("x", 0)
		assert.False(t, r.Ok())
		assert.Equal(t, "No alternatives", r.Reason)
	})
}

func TestMap(t *testing.T) {
	p := Map(Integer, func(n int) string { return fmt.Sprint(n * 2) })

	r := p("x21y", 1)
	assert.True(t, r.Ok())
	assert.Equal(t, "42", r.Value)
	assert.Equal(t, 3, r.Pos)

	r = p("xy", 1)
	assert.False(t, r.Ok())
	assert.Equal(t, "Expected number", r.Reason)
	assert.Equal(t, 1, r.Pos)
}

func TestKeywords(t *testing.T) {
	p := Keywords("ADD", "USER")

	r := p("ADD \t USER bob", 0)
	assert.True(t, r.Ok())
	assert.Equal(t, "ADD USER", r.Value)
	assert.Equal(t, 10, r.Pos)

	r = p("ADDUSER", 0)
	assert.False(t, r.Ok())
	assert.Equal(t, "Expected whitespace", r.Reason)
	assert.Equal(t, 3, r.Pos)
}
