package typeref

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSyntax is returned when a type reference string cannot be parsed.
var ErrSyntax = errors.New("invalid type reference")

// Parse reads a reference written in the notation produced by Ref.String,
// e.g. "string", "map[string,any]" or "example.com/web.ResponseEntity[?]".
func Parse(text string) (Ref, error) {
	p := parser{input: text, pos: 0}

	ref, err := p.ref()
	if err != nil {
		return Ref{}, fmt.Errorf("%w %q: %w", ErrSyntax, text, err)
	}

	p.skipSpace()

	if p.pos != len(p.input) {
		return Ref{}, fmt.Errorf("%w %q: unexpected %q at %d", ErrSyntax, text, p.input[p.pos], p.pos)
	}

	return ref, nil
}

// MustParse is like Parse but panics on error.
func MustParse(text string) Ref {
	ref, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return ref
}

var (
	errEmptyName    = errors.New("empty type name")
	errUnterminated = errors.New("missing closing bracket")
)

type parser struct {
	input string
	pos   int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

func (p *parser) ref() (Ref, error) {
	p.skipSpace()

	start := p.pos
	for p.pos < len(p.input) && !strings.ContainsRune("[], ", rune(p.input[p.pos])) {
		p.pos++
	}

	qualified := p.input[start:p.pos]
	if qualified == "" {
		return Ref{}, errEmptyName
	}

	ref := splitQualified(qualified)

	p.skipSpace()

	if p.pos >= len(p.input) || p.input[p.pos] != '[' {
		return ref, nil
	}

	p.pos++

	for {
		arg, err := p.ref()
		if err != nil {
			return Ref{}, err
		}

		ref.args = append(ref.args, arg)

		p.skipSpace()

		if p.pos >= len(p.input) {
			return Ref{}, errUnterminated
		}

		switch p.input[p.pos] {
		case ',':
			p.pos++
		case ']':
			p.pos++

			return ref, nil
		default:
			return Ref{}, fmt.Errorf("unexpected %q at %d", p.input[p.pos], p.pos)
		}
	}
}

// splitQualified splits at the last dot so package paths may contain dots.
func splitQualified(qualified string) Ref {
	idx := strings.LastIndexByte(qualified, '.')
	if idx <= 0 {
		return Ref{pkg: "", name: qualified, args: nil}
	}

	return Ref{pkg: qualified[:idx], name: qualified[idx+1:], args: nil}
}
