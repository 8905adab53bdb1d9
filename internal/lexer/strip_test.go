package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "no comments",
			input: `<div className="p-4 font-normal">`,
			want:  `<div className="p-4 font-normal">`,
		},
		{
			name:  "line comment",
			input: "const a = 1 // font-light\nconst b = 2",
			want:  "const a = 1              \nconst b = 2",
		},
		{
			name:  "block comment on one line",
			input: "a /* bg-gray-500 */ b",
			want:  "a                   b",
		},
		{
			name:  "multi-line block comment keeps newlines",
			input: "a /* one\ntwo\nthree */ b",
			want:  "a       \n   \n         b",
		},
		{
			name:  "jsx comment wrapper",
			input: `<div>{/* font-light */}</div>`,
			want:  `<div>                  </div>`,
		},
		{
			name:  "jsx comment wrapper with spaces",
			input: "<div>{ /* x */ }</div>",
			want:  "<div>           </div>",
		},
		{
			name:  "line comment opener inside block comment",
			input: "/* a // b */ c",
			want:  "             c",
		},
		{
			name:  "block opener inside line comment",
			input: "x // a /* b\ny */",
			want:  "x          \ny */",
		},
		{
			name:  "comment openers inside double quoted string",
			input: `const u = "https://cdn/*.css" // gone`,
			want:  `const u = "https://cdn/*.css"        `,
		},
		{
			name:  "comment openers inside single quoted string",
			input: `x = '/* font-light */'`,
			want:  `x = '/* font-light */'`,
		},
		{
			name:  "escaped quote does not end string",
			input: `x = "a \" // b" // c`,
			want:  `x = "a \" // b"     `,
		},
		{
			name:  "string ends at newline",
			input: "<p>Don't</p>\n/* font-light */",
			want:  "<p>Don't</p>\n                ",
		},
		{
			name:  "template literal spans lines",
			input: "x = `a\n// not a comment\n/* nor this */`",
			want:  "x = `a\n// not a comment\n/* nor this */`",
		},
		{
			name:  "comment inside template expression",
			input: "x = `p-4 ${cond /* font-light */ ? 'a' : 'b'} m-2` // end",
			want:  "x = `p-4 ${cond                  ? 'a' : 'b'} m-2`       ",
		},
		{
			name:  "nested braces inside template expression",
			input: "x = `${ {a: 1}.a } // kept` // gone",
			want:  "x = `${ {a: 1}.a } // kept`        ",
		},
		{
			name:  "empty template expression comment",
			input: "x = `${/* c */}` // gone",
			want:  "x = `${       }`        ",
		},
		{
			name:  "unterminated block comment",
			input: "a /* b\nc",
			want:  "a     \n ",
		},
		{
			name:  "division is not a comment",
			input: "x = a / b / c",
			want:  "x = a / b / c",
		},
		{
			name:  "html comment",
			input: `<!-- <div class="font-light"></div> -->`,
			want:  `                                       `,
		},
		{
			name:  "multi-line html comment keeps newlines",
			input: "<template>\n  <!-- <p class=\"bg-gray-500\">\n  </p> -->\n  <p />\n</template>",
			want:  "<template>\n                              \n          \n  <p />\n</template>",
		},
		{
			name:  "unterminated html comment",
			input: "a <!-- b\nc",
			want:  "a       \n ",
		},
		{
			name:  "html comment markers inside string",
			input: `x = "<!-- kept -->" // gone`,
			want:  `x = "<!-- kept -->"        `,
		},
		{
			name:  "url in jsx text",
			input: `<p>See https://example.com <span className="font-light">x</span></p>`,
			want:  `<p>See https://example.com <span className="font-light">x</span></p>`,
		},
		{
			name:  "unquoted url attribute",
			input: `<a href=https://x.io class="font-light">`,
			want:  `<a href=https://x.io class="font-light">`,
		},
		{
			name:  "regex literal with escaped slashes",
			input: `const re = /\/\//g; const c = "font-light" // gone`,
			want:  `const re = /\/\//g; const c = "font-light"        `,
		},
		{
			name:  "quote inside regex literal",
			input: `ok = /"/.test(s) // gone`,
			want:  `ok = /"/.test(s)        `,
		},
		{
			name:  "slash inside regex character class",
			input: `ok = /[/]/.test(s) // gone`,
			want:  `ok = /[/]/.test(s)        `,
		},
		{
			name:  "regex literal after return",
			input: `return /\/\/x/ // gone`,
			want:  `return /\/\/x/        `,
		},
		{
			name:  "division after parenthesis",
			input: `(a) / 2 // gone`,
			want:  `(a) / 2        `,
		},
		{
			name:  "apostrophe in jsx text",
			input: `<p>Don't do this</p>{/* font-light */}`,
			want:  `<p>Don't do this</p>                  `,
		},
		{
			name:  "crlf line endings",
			input: "a // b\r\nc",
			want:  "a     \r\nc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripString(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.input), len(got))
			assert.Equal(t, strings.Count(tt.input, "\n"), strings.Count(got, "\n"))
		})
	}
}

func TestStripDoesNotModifyInput(t *testing.T) {
	src := []byte("a // b")
	_ = Strip(src)
	assert.Equal(t, "a // b", string(src))
}
