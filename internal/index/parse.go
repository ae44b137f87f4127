package index

import (
	"fmt"
	"strconv"
	"strings"
	"text/scanner"
)

// Parse reads an index expression written in the literal syntax:
//
//	0          integer
//	-1         integer counted from the end
//	1..3       inclusive range
//	1..3//2    range with a step (only 1 resolves)
//	[]         no constraints
//	[0, 1..2]  positional list
//	[b: 1..2, 0: 3, :c: -1]  list keyed by name or position
//
// Lists may nest syntactically; nested lists are rejected when resolved.
func Parse(src string) (Spec, error) {
	p := &parser{src: src}
	p.s.Init(strings.NewReader(src))
	p.s.Mode = scanner.ScanIdents | scanner.ScanInts
	p.s.Error = func(_ *scanner.Scanner, msg string) { p.fail(msg) }
	p.next()

	s := p.expr()
	if p.err == nil && p.tok != scanner.EOF {
		p.fail(fmt.Sprintf("unexpected %q after expression", p.text))
	}
	if p.err != nil {
		return Spec{}, p.err
	}
	return s, nil
}

type parser struct {
	src  string
	s    scanner.Scanner
	tok  rune
	text string
	err  error
}

func (p *parser) next() {
	p.tok = p.s.Scan()
	p.text = p.s.TokenText()
}

func (p *parser) fail(msg string) {
	if p.err != nil {
		return
	}
	p.err = newError(ErrInvalidIndexSpec, -1, nil, p.src,
		"parse index %q: %s at column %d", p.src, msg, p.s.Position.Column)
	p.tok = scanner.EOF
}

func (p *parser) expect(tok rune) {
	if p.tok != tok {
		p.fail(fmt.Sprintf("expected %s, got %q", scanner.TokenString(tok), p.text))
		return
	}
	p.next()
}

// expr parses an integer, a range or a list.
func (p *parser) expr() Spec {
	if p.tok == '[' {
		return p.list()
	}
	n, ok := p.integer()
	if !ok {
		return Spec{}
	}
	return p.afterInt(n)
}

// afterInt continues an expression that began with the integer n.
func (p *parser) afterInt(n int) Spec {
	if p.tok != '.' {
		return Int(n)
	}
	p.next()
	p.expect('.')
	last, ok := p.integer()
	if !ok {
		return Spec{}
	}
	step := 1
	if p.tok == '/' {
		p.next()
		p.expect('/')
		if step, ok = p.integer(); !ok {
			return Spec{}
		}
	}
	return StepRange(n, last, step)
}

func (p *parser) integer() (int, bool) {
	neg := false
	if p.tok == '-' {
		neg = true
		p.next()
	}
	if p.tok != scanner.Int {
		p.fail(fmt.Sprintf("expected integer, got %q", p.text))
		return 0, false
	}
	v, err := strconv.ParseInt(p.text, 0, 0)
	if err != nil {
		p.fail(err.Error())
		return 0, false
	}
	p.next()
	if neg {
		v = -v
	}
	return int(v), true
}

// list parses [entry, ...]. All entries are keyed or none are.
func (p *parser) list() Spec {
	p.expect('[')
	var items []Spec
	var pairs []Pair
	for p.err == nil && p.tok != ']' {
		if len(items)+len(pairs) > 0 {
			p.expect(',')
		}
		key, spec, keyed := p.entry()
		switch {
		case p.err != nil:
		case keyed && len(items) > 0, !keyed && len(pairs) > 0:
			p.fail("cannot mix keyed and positional entries")
		case keyed:
			pairs = append(pairs, Pair{Key: key, Spec: spec})
		default:
			items = append(items, spec)
		}
	}
	p.expect(']')
	if len(pairs) > 0 {
		return Named(pairs...)
	}
	if len(items) == 0 {
		return Empty()
	}
	return List(items...)
}

// entry parses one list element, reporting whether it carried a key.
func (p *parser) entry() (Key, Spec, bool) {
	switch p.tok {
	case ':':
		p.next()
		name := p.text
		p.expect(scanner.Ident)
		p.expect(':')
		return Name(name), p.expr(), true
	case scanner.Ident:
		name := p.text
		p.next()
		p.expect(':')
		return Name(name), p.expr(), true
	case '[':
		return Key{}, p.list(), false
	}
	n, ok := p.integer()
	if !ok {
		return Key{}, Spec{}, false
	}
	if p.tok == ':' {
		p.next()
		return Position(n), p.expr(), true
	}
	return Key{}, p.afterInt(n), false
}
