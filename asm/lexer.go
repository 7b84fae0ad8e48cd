package asm

import "strings"

// A Lexer turns assembly source into a stream of lower-cased, whitespace-
// separated tokens. It carries no type information; the code generator
// decides what each token means.
type Lexer struct {
	toks    []string
	lines   []int
	pos     int
	curLine int
}

// NewLexer tokenizes program: case-folds to lower case, splits on space,
// tab and newline, and drops ';' comments through the next newline.
func NewLexer(program string) *Lexer {
	toks, lines := tokenize(program)
	return &Lexer{toks: toks, lines: lines}
}

func tokenize(program string) (toks []string, lines []int) {
	line := 1
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			toks = append(toks, strings.ToLower(cur.String()))
			lines = append(lines, line)
			cur.Reset()
		}
	}
	inComment := false
	for _, r := range program {
		if inComment {
			if r == '\n' {
				inComment = false
				line++
			}
			continue
		}
		switch r {
		case ';':
			flush()
			inComment = true
		case '\n':
			flush()
			line++
		case ' ', '\t', '\r':
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return toks, lines
}

// Peek returns the next token without consuming it. Repeated calls to Peek
// with no intervening Next are idempotent.
func (l *Lexer) Peek() (string, bool) {
	if l.pos >= len(l.toks) {
		return "", false
	}
	return l.toks[l.pos], true
}

// Next consumes and returns the next token.
func (l *Lexer) Next() (string, bool) {
	if l.pos >= len(l.toks) {
		return "", false
	}
	t := l.toks[l.pos]
	l.curLine = l.lines[l.pos]
	l.pos++
	return t, true
}

// Line returns the source line (1-based) of the token most recently
// returned by Next.
func (l *Lexer) Line() int {
	return l.curLine
}
