package parser

import (
	"strconv"
	"strings"
)

// modifierNames maps surface modifier keywords to their canonical names.
// `on` and `device` are the same modifier spelled two ways.
var modifierNames = map[string]string{
	"volume": "volume",
	"mode":   "mode",
	"device": "device",
	"on":     "device",
	"limit":  "limit",
	"offset": "offset",
}

var searchTypes = map[string]bool{
	"tracks":    true,
	"artists":   true,
	"albums":    true,
	"playlists": true,
}

var modeWords = map[string]bool{
	"shuffle": true,
	"repeat":  true,
	"normal":  true,
}

// Parse lexes and parses one input line into its parse tree. The returned
// error is always a *ParseError carrying the offending column.
func Parse(input string) (*LineNode, error) {
	p := &parser{input: input, toks: newLexer(input).tokenize()}
	return p.parseLine()
}

type parser struct {
	input string
	toks  []Token
	pos   int
}

func (p *parser) tok() Token  { return p.toks[p.pos] }
func (p *parser) advance()    { p.pos++ }
func (p *parser) atEOF() bool { return p.tok().Type == EOF }

// word returns the lowercased text of the current token if it is a WORD.
func (p *parser) word() string {
	if p.tok().Type != WORD {
		return ""
	}
	return strings.ToLower(p.tok().Lit)
}

func (p *parser) errorf(pos Position, format string, args ...interface{}) error {
	return newParseError(p.input, pos, format, args...)
}

func (p *parser) errorAtCurrent(format string, args ...interface{}) error {
	return p.errorf(p.tok().Pos, format, args...)
}

func (p *parser) parseLine() (*LineNode, error) {
	line := &LineNode{Input: p.input}

	if p.atEOF() {
		return nil, &ParseError{Message: "empty command", Context: p.input}
	}
	if p.tok().Type == ILLEGAL {
		return nil, p.errorAtCurrent("unexpected character %q", p.tok().Lit)
	}
	if p.tok().Type != WORD {
		return nil, p.errorAtCurrent("expected a command keyword, got %s", p.tok().Lit)
	}

	// A line may open directly with a modifier: the standalone
	// state-change form. Otherwise a verb introduces the statement.
	if _, isModifier := modifierNames[p.word()]; !isModifier {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		line.Stmt = stmt
	}

	mods, err := p.parseModifiers()
	if err != nil {
		return nil, err
	}
	line.Modifiers = mods

	if !p.atEOF() {
		return nil, p.errorAtCurrent("unexpected input %q", p.tok().Lit)
	}
	if line.Stmt == nil && len(line.Modifiers) == 0 {
		return nil, &ParseError{Message: "empty command", Context: p.input}
	}
	return line, nil
}

func (p *parser) parseStatement() (*StatementNode, error) {
	pos := p.tok().Pos
	verb := p.word()
	p.advance()

	stmt := &StatementNode{Verb: verb, Pos: pos}

	switch verb {
	case "play":
		target, err := p.parseTarget("play")
		if err != nil {
			return nil, err
		}
		stmt.Primary = target
		if p.word() == "in" {
			p.advance()
			context, err := p.parseTarget("in")
			if err != nil {
				return nil, err
			}
			stmt.Secondary = context
		}

	case "pause", "resume", "history":
		// No operands.

	case "skip":
		if p.tok().Type == NUMBER {
			n, err := p.parseNumber()
			if err != nil {
				return nil, err
			}
			stmt.Number = &n
		}

	case "seek":
		n, err := p.parseNumber()
		if err != nil {
			return nil, err
		}
		stmt.Number = &n

	case "queue", "like", "unlike", "follow", "unfollow", "save", "unsave", "info":
		target, err := p.parseTarget(verb)
		if err != nil {
			return nil, err
		}
		stmt.Primary = target

	case "add", "remove":
		target, err := p.parseTarget(verb)
		if err != nil {
			return nil, err
		}
		stmt.Primary = target
		connective := "to"
		if verb == "remove" {
			connective = "from"
		}
		if p.word() != connective {
			return nil, p.errorAtCurrent("expected %q after the %s target", connective, verb)
		}
		p.advance()
		dest, err := p.parseTarget(connective)
		if err != nil {
			return nil, err
		}
		stmt.Secondary = dest

	case "create":
		if p.word() != "playlist" {
			return nil, p.errorAtCurrent("expected \"playlist\" after create")
		}
		p.advance()
		if p.tok().Type != STRING {
			return nil, p.errorAtCurrent("expected a quoted playlist name")
		}
		stmt.Verb = "create_playlist"
		stmt.Name = p.tok().Lit
		p.advance()

	case "delete":
		if p.word() != "playlist" {
			return nil, p.errorAtCurrent("expected \"playlist\" after delete")
		}
		p.advance()
		target, err := p.parseTarget("delete playlist")
		if err != nil {
			return nil, err
		}
		stmt.Verb = "delete_playlist"
		stmt.Primary = target

	case "search":
		if p.tok().Type != STRING {
			return nil, p.errorAtCurrent("expected a quoted search term")
		}
		stmt.Name = p.tok().Lit
		p.advance()
		if w := p.word(); w != "" && searchTypes[w] {
			stmt.TypeWord = w
			p.advance()
		}

	case "now":
		if p.word() != "playing" {
			return nil, p.errorAtCurrent("expected \"playing\" after now")
		}
		p.advance()
		stmt.Verb = "now_playing"

	case "get":
		switch p.word() {
		case "queue":
			stmt.Verb = "get_queue"
		case "devices":
			stmt.Verb = "get_devices"
		default:
			return nil, p.errorAtCurrent("expected \"queue\" or \"devices\" after get")
		}
		p.advance()

	case "library":
		if w := p.word(); w != "" {
			if _, isModifier := modifierNames[w]; !isModifier {
				if !searchTypes[w] {
					return nil, p.errorAtCurrent("unknown library type %q", p.tok().Lit)
				}
				stmt.TypeWord = w
				p.advance()
			}
		}

	case "recommend":
		if p.tok().Type == NUMBER {
			n, err := p.parseNumber()
			if err != nil {
				return nil, err
			}
			stmt.Number = &n
		}
		if p.word() != "for" {
			return nil, p.errorAtCurrent("expected \"for\" after recommend")
		}
		p.advance()
		target, err := p.parseTarget("for")
		if err != nil {
			return nil, err
		}
		stmt.Primary = target

	default:
		return nil, p.errorf(pos, "unknown command %q", verb)
	}

	return stmt, nil
}

// parseModifiers consumes the optional modifier suffixes, each legal at most
// once per line.
func (p *parser) parseModifiers() ([]ModifierNode, error) {
	var mods []ModifierNode
	seen := make(map[string]bool)

	for !p.atEOF() {
		name, ok := modifierNames[p.word()]
		if !ok {
			return mods, nil
		}
		if seen[name] {
			return nil, p.errorAtCurrent("duplicate %s modifier", name)
		}
		seen[name] = true

		mod := ModifierNode{Name: name, Pos: p.tok().Pos}
		p.advance()

		switch name {
		case "volume", "limit", "offset":
			n, err := p.parseNumber()
			if err != nil {
				return nil, err
			}
			mod.Number = n
		case "mode":
			w := p.word()
			if !modeWords[w] {
				return nil, p.errorAtCurrent("expected shuffle, repeat or normal after mode")
			}
			mod.Word = w
			p.advance()
		case "device":
			target, err := p.parseTarget(name)
			if err != nil {
				return nil, err
			}
			mod.Target = target
		}
		mods = append(mods, mod)
	}
	return mods, nil
}

// parseTarget accepts a colon-delimited URI literal or a quoted string.
func (p *parser) parseTarget(after string) (*TargetNode, error) {
	tok := p.tok()
	switch tok.Type {
	case URI:
		parts := strings.Split(tok.Lit, ":")
		if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
			return nil, p.errorAtCurrent("malformed URI %q, expected ns:kind:id", tok.Lit)
		}
		p.advance()
		return &TargetNode{URI: tok.Lit, Pos: tok.Pos}, nil
	case STRING:
		if tok.Lit == "" {
			return nil, p.errorAtCurrent("empty target after %s", after)
		}
		p.advance()
		return &TargetNode{Text: tok.Lit, Pos: tok.Pos}, nil
	default:
		return nil, p.errorAtCurrent("expected a URI or quoted string after %s", after)
	}
}

func (p *parser) parseNumber() (float64, error) {
	tok := p.tok()
	if tok.Type != NUMBER {
		return 0, p.errorAtCurrent("expected a number, got %q", tok.Lit)
	}
	n, err := strconv.ParseFloat(tok.Lit, 64)
	if err != nil {
		return 0, p.errorf(tok.Pos, "invalid number %q", tok.Lit)
	}
	p.advance()
	return n, nil
}
