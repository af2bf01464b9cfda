// Package lexer turns stack language source text into a program.
//
// The lexer keeps one pending instruction per statement. Keywords set its
// kind, literals attach operands, and ';' appends it to the program. Keywords
// and literals may appear in any order inside a statement, so `pushs "hi";`
// and `"hi" pushs;` produce the same instruction.
package lexer

import (
	"log/slog"
	"strconv"

	"github.com/sarchlab/stackc/arena"
	"github.com/sarchlab/stackc/diag"
	"github.com/sarchlab/stackc/program"
)

// pending is the instruction being assembled for the current statement.
type pending struct {
	kind      program.Kind
	intrinsic program.Intrinsic

	num    int64
	hasNum bool
	str    arena.Ref
	hasStr bool
}

func (p pending) empty() bool {
	return p.kind == 0 && !p.hasNum && !p.hasStr
}

func (p pending) build() program.Inst {
	switch p.kind {
	case program.KindPushInt:
		return program.PushInt{Value: p.num}
	case program.KindPushString:
		return program.PushString{Str: p.str}
	case program.KindAddInt:
		return program.AddInt{}
	case program.KindIntrinsic:
		return program.CallIntrinsic{ID: p.intrinsic}
	}
	return nil
}

// Lexer holds the state of a single pass over src. A Lexer is single use.
type Lexer struct {
	src  string
	pos  int // index of the next byte to consume
	line int
	col  int

	isa  *program.ISA
	prog *program.Program
	cur  pending
	buf  []byte // scratch for string literal decoding
	errs []error
	done bool
}

// New creates a lexer over src that recognizes the default keyword set.
func New(src string) *Lexer {
	return NewWithISA(src, program.DefaultISA())
}

// NewWithISA creates a lexer over src that recognizes the keywords of isa.
func NewWithISA(src string, isa *program.ISA) *Lexer {
	return &Lexer{
		src:  src,
		line: 1,
		col:  1,
		isa:  isa,
		prog: program.New(),
	}
}

// Lex runs a lexer over src. It always returns the program assembled from the
// well-formed statements, together with every lexical error found.
func Lex(src string) (*program.Program, []error) {
	l := New(src)
	p := l.Run()
	return p, l.Errors()
}

// Errors returns the lexical errors found so far, in source order.
func (l *Lexer) Errors() []error {
	return l.errs
}

// Run consumes the whole source and returns the program.
func (l *Lexer) Run() *program.Program {
	if l.done {
		return l.prog
	}
	l.done = true

	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == ';':
			l.finish(l.here())
			l.advance()
		case isSpace(c):
			l.advance()
		case c == '"':
			l.scanString()
		case isAlpha(c):
			l.scanIdent()
		case isDigit(c):
			l.scanNumber()
		default:
			pos := l.here()
			l.advance()
			l.report(pos, string(c), "unexpected character %q", c)
		}
	}

	if !l.cur.empty() {
		slog.Warn("Dropping unterminated statement at end of input",
			"line", l.line, "col", l.col)
	}

	return l.prog
}

func (l *Lexer) here() diag.Pos {
	return diag.Pos{Line: l.line, Col: l.col}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) advance() byte {
	c := l.src[l.pos]
	l.pos++
	if c == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return c
}

func (l *Lexer) report(pos diag.Pos, tok string, format string, args ...interface{}) {
	err := diag.Lexical.New(format, args...).
		WithProperty(diag.PropPos, pos).
		WithProperty(diag.PropToken, tok)
	l.errs = append(l.errs, err)
}

// finish appends the pending instruction and starts a new statement.
func (l *Lexer) finish(pos diag.Pos) {
	cur := l.cur
	l.cur = pending{}

	switch {
	case cur.empty():
		slog.Debug("Skipping empty statement", "pos", pos)
	case cur.kind == 0:
		l.report(pos, ";", "operand without instruction")
	default:
		l.prog.Append(cur.build(), pos)
	}
}

// scanString decodes a string literal. The opening quote must be at l.peek().
func (l *Lexer) scanString() {
	start := l.here()
	l.advance()
	l.buf = l.buf[:0]

	closed := false
	for l.pos < len(l.src) {
		c := l.advance()
		if c == '"' {
			closed = true
			break
		}
		if c != '\\' {
			l.buf = append(l.buf, c)
			continue
		}

		if l.pos >= len(l.src) {
			break
		}
		switch l.advance() {
		case 'n':
			l.buf = append(l.buf, '\n')
		case 't':
			l.buf = append(l.buf, '\t')
		default:
			// Unknown escapes produce nothing.
		}
	}

	if !closed {
		l.report(start, `"`, "unterminated string literal")
	}

	l.cur.str = l.prog.Strings.Store(l.buf)
	l.cur.hasStr = true
}

// scanIdent consumes an alphabetic run and applies the matching keyword.
func (l *Lexer) scanIdent() {
	start := l.here()
	begin := l.pos
	for l.pos < len(l.src) && isAlpha(l.peek()) {
		l.advance()
	}
	word := l.src[begin:l.pos]

	kw, ok := l.isa.Lookup(word)
	if !ok {
		l.report(start, word, "Not a valid instruction: %s", word)
		return
	}

	if kw.Replaces {
		l.cur = pending{kind: kw.Kind, intrinsic: kw.Intrinsic}
		return
	}
	l.cur.kind = kw.Kind
	l.cur.intrinsic = kw.Intrinsic
}

// scanNumber consumes an alphanumeric run that starts with a digit.
func (l *Lexer) scanNumber() {
	start := l.here()
	begin := l.pos
	for l.pos < len(l.src) && (isAlpha(l.peek()) || isDigit(l.peek())) {
		l.advance()
	}
	text := l.src[begin:l.pos]

	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		l.report(start, text, "malformed integer literal %q", text)
		return
	}

	l.cur.num = v
	l.cur.hasNum = true
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\t' || c == '\r'
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
