package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid         TokenType = iota
	TokenOpenExpression            // Open parenthesis: "("
	TokenCloseExpression           // Close parenthesis: ")"
	TokenOpenQuote                 // Open curly bracket: "{"
	TokenCloseQuote                // Close curly bracket: "}"
	TokenNewLine                   // Newline: "\n"
	TokenWhitespace                // Space, tab, linefeed or carriage return: \s\f\t\r
	TokenWord                      // Letters ([a-zA-Z]), digits and underscore
	TokenInteger                   // Integers, optionally negative
	TokenOperator                  // Arithmetic operator: + - * / % ^
	TokenEOF                       // End of file
)

var tokenValues = map[TokenType][]rune{
	TokenOpenExpression:  {'('},
	TokenCloseExpression: {')'},
	TokenOpenQuote:       {'{'},
	TokenCloseQuote:      {'}'},
	TokenNewLine:         {'\n'},
	TokenWhitespace:      []rune(" \f\t\r"),
	TokenWord:            []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_0123456789"),
	TokenInteger:         []rune("0123456789"),
	TokenOperator:        []rune("+-*/%^"),
}

var tokenNames = map[TokenType]string{
	TokenInvalid:         "invalid",
	TokenOpenExpression:  "open_expression",
	TokenCloseExpression: "close_expression",
	TokenOpenQuote:       "open_quote",
	TokenCloseQuote:      "close_quote",
	TokenNewLine:         "newline",
	TokenWhitespace:      "separator",
	TokenWord:            "word",
	TokenInteger:         "integer",
	TokenOperator:        "operator",
	TokenEOF:             "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isTokenType(tt TokenType) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range tokenValues[tt] {
			if v == r {
				return true
			}
		}
		return false
	}
}

func isWordStart(r rune) bool {
	return isWord(r) && !isInteger(r)
}

func isMinusSign(r rune) bool {
	return r == '-'
}
