package ast

import (
	"strings"
)

// Tags assigned by the parser. Composite tags list every rule a node matched,
// outermost first, separated by "|".
const (
	TagRoot  = ">"
	TagRegex = "regex"
	TagChar  = "char"

	TagNumber     = "expr|number|regex"
	TagWordSymbol = "expr|symbol|string"
	TagCharSymbol = "expr|symbol|char"
	TagSExpr      = "expr|sexpr|>"
	TagQExpr      = "expr|qexpr|>"
)

// HasTag returns true if any of the rules in tag contains name.
func HasTag(tag string, name string) bool {
	return strings.Contains(tag, name)
}
