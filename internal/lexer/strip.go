// Package lexer blanks out comments in JavaScript-family sources (JS, TS, JSX, Vue, Svelte)
// and their HTML templates while keeping every other byte, including newlines, in place.
package lexer

type state int

const (
	stateCode state = iota
	stateLineComment
	stateBlockComment
	stateHTMLComment
	stateSingleQuote
	stateDoubleQuote
	stateTemplate
	stateRegex
)

// Strip returns a copy of src in which every comment byte is replaced by a space.
// Newlines are kept, so line and column positions in the output match the input.
//
// Rules:
//   - "//", "/*" and "<!--" open comments only in code, never inside strings or other comments.
//   - "//" right after a URL scheme such as "https:" is part of the URL.
//   - single and double quoted strings end at the matching unescaped quote or at an unescaped newline.
//   - an apostrophe between two letters, as in "Don't", is text and opens no string.
//   - a "/" where an expression may start opens a regular expression literal, which ends at the
//     closing "/" outside a character class or at the end of the line.
//   - template literals may span lines; their ${...} expressions are code and nest by brace depth.
//   - JSX comment wrappers {/* ... */} are blanked together with their braces.
//   - an unterminated block or HTML comment runs to the end of the input.
func Strip(src []byte) []byte {
	out := make([]byte, len(src))
	copy(out, src)

	st := stateCode
	// brace depth of each open ${ expression, innermost last
	var exprs []int
	// offset of a '{' that may wrap the current block comment, -1 if none
	jsxOpen := -1
	// last significant code byte and its offset, used to tell a regular expression from a division
	var prev byte
	prevAt := -1
	inClass := false

	for i := 0; i < len(src); i++ {
		c := src[i]
		switch st {
		case stateCode:
			switch {
			case c == '/' && next(src, i) == '/' && afterScheme(src, i):
				i++
				prev, prevAt = '/', i
				continue
			case c == '/' && next(src, i) == '/':
				st = stateLineComment
				out[i], out[i+1] = ' ', ' '
				i++
				continue
			case c == '/' && next(src, i) == '*':
				st = stateBlockComment
				jsxOpen = openingBrace(src, i)
				out[i], out[i+1] = ' ', ' '
				i++
				continue
			case c == '<' && hasPrefix(src, i, "<!--"):
				st = stateHTMLComment
				for j := i; j < i+4; j++ {
					out[j] = ' '
				}
				i += 3
				continue
			case c == '/' && regexAllowed(src, prev, prevAt):
				st = stateRegex
				inClass = false
			case c == '\'' && isLetter(prevByte(src, i)) && isLetter(next(src, i)):
				// apostrophe in text
			case c == '\'':
				st = stateSingleQuote
			case c == '"':
				st = stateDoubleQuote
			case c == '`':
				st = stateTemplate
			case c == '{' && len(exprs) > 0:
				exprs[len(exprs)-1]++
			case c == '}' && len(exprs) > 0:
				if exprs[len(exprs)-1] == 0 {
					exprs = exprs[:len(exprs)-1]
					st = stateTemplate
				} else {
					exprs[len(exprs)-1]--
				}
			}
			if !isSpace(c) {
				prev, prevAt = c, i
			}

		case stateLineComment:
			if c == '\n' {
				st = stateCode
				continue
			}
			blank(out, i)

		case stateBlockComment:
			if c == '*' && next(src, i) == '/' {
				out[i], out[i+1] = ' ', ' '
				i++
				st = stateCode
				if jsxOpen >= 0 {
					if end := closingBrace(src, i+1); end >= 0 {
						out[jsxOpen] = ' '
						out[end] = ' '
						i = end
						if len(exprs) > 0 {
							exprs[len(exprs)-1]--
						}
					}
					jsxOpen = -1
				}
				continue
			}
			blank(out, i)

		case stateHTMLComment:
			if hasPrefix(src, i, "-->") {
				out[i], out[i+1], out[i+2] = ' ', ' ', ' '
				i += 2
				st = stateCode
				continue
			}
			blank(out, i)

		case stateSingleQuote, stateDoubleQuote:
			quote := byte('\'')
			if st == stateDoubleQuote {
				quote = '"'
			}
			switch c {
			case '\\':
				i++
			case quote, '\n':
				st = stateCode
				prev, prevAt = c, i
			}

		case stateTemplate:
			switch {
			case c == '\\':
				i++
			case c == '`':
				st = stateCode
				prev, prevAt = c, i
			case c == '$' && next(src, i) == '{':
				exprs = append(exprs, 0)
				st = stateCode
				i++
				prev, prevAt = '{', i
			}

		case stateRegex:
			switch {
			case c == '\\':
				i++
			case c == '\n':
				st = stateCode
			case c == '[':
				inClass = true
			case c == ']':
				inClass = false
			case c == '/' && !inClass:
				st = stateCode
				prev, prevAt = c, i
			}
		}
	}

	return out
}

// StripString is Strip for string input.
func StripString(src string) string {
	return string(Strip([]byte(src)))
}

func prevByte(src []byte, i int) byte {
	if i > 0 {
		return src[i-1]
	}
	return 0
}

func hasPrefix(src []byte, i int, prefix string) bool {
	return len(src)-i >= len(prefix) && string(src[i:i+len(prefix)]) == prefix
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// afterScheme reports whether the "//" at i directly follows a URL scheme like "https:".
func afterScheme(src []byte, i int) bool {
	return i >= 2 && src[i-1] == ':' && isLetter(src[i-2])
}

// keywordsBeforeExpression are the keywords after which a "/" starts a regular expression.
var keywordsBeforeExpression = map[string]bool{
	"return": true, "typeof": true, "case": true, "do": true, "else": true, "in": true,
	"instanceof": true, "new": true, "delete": true, "void": true, "throw": true,
	"yield": true, "await": true, "of": true,
}

// regexAllowed reports whether a "/" following the code byte prev, found at prevAt, starts a regular expression.
func regexAllowed(src []byte, prev byte, prevAt int) bool {
	if prevAt < 0 {
		return true
	}
	switch prev {
	case '(', ',', '=', ':', '[', '!', '&', '|', '?', '{', ';':
		return true
	}
	if !isLetter(prev) {
		return false
	}
	start := prevAt
	for start > 0 && isLetter(src[start-1]) {
		start--
	}
	return keywordsBeforeExpression[string(src[start:prevAt+1])]
}

func next(src []byte, i int) byte {
	if i+1 < len(src) {
		return src[i+1]
	}
	return 0
}

// blank replaces the comment byte at i, keeping line structure intact.
func blank(out []byte, i int) {
	if out[i] != '\n' && out[i] != '\r' {
		out[i] = ' '
	}
}

// openingBrace returns the offset of a '{' separated from the comment opener at i only by spaces or tabs.
// The brace of a template expression "${" does not count.
func openingBrace(src []byte, i int) int {
	for j := i - 1; j >= 0; j-- {
		switch src[j] {
		case ' ', '\t':
			continue
		case '{':
			if j > 0 && src[j-1] == '$' {
				return -1
			}
			return j
		default:
			return -1
		}
	}
	return -1
}

// closingBrace returns the offset of a '}' starting at i after optional spaces or tabs.
func closingBrace(src []byte, i int) int {
	for j := i; j < len(src); j++ {
		switch src[j] {
		case ' ', '\t':
			continue
		case '}':
			return j
		default:
			return -1
		}
	}
	return -1
}
