package parser

// TargetNode is a target operand as it appeared syntactically: either a
// colon-delimited URI literal or a double-quoted string. The grammar does
// not judge whether the URI namespace is meaningful; that is left downstream.
type TargetNode struct {
	URI  string // set for URI literals
	Text string // set for quoted strings
	Pos  Position
}

// ModifierNode is one parsed modifier suffix. Name is the canonical modifier
// name (volume, mode, device, limit, offset); exactly one of Number, Word or
// Target carries the value depending on the modifier.
type ModifierNode struct {
	Name   string
	Number float64
	Word   string
	Target *TargetNode
	Pos    Position
}

// StatementNode is the head production of a line: one verb with its
// operands. A nil StatementNode on a LineNode means the line consisted of
// modifiers only (the standalone state-change form).
type StatementNode struct {
	Verb      string // canonical verb: play, pause, …, search, now_playing, …
	Primary   *TargetNode
	Secondary *TargetNode // add/remove destination, or play context
	Number    *float64    // skip count, seek position, recommend count
	Name      string      // create_playlist name or search term
	TypeWord  string      // search / library type filter
	Pos       Position
}

// LineNode is the parse tree for one input line.
type LineNode struct {
	Stmt      *StatementNode
	Modifiers []ModifierNode
	Input     string
}
