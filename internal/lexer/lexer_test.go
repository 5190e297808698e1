package lexer

import (
	"testing"

	"github.com/cwbudde/go-jsengine/internal/token"
)

func collectTypes(t *testing.T, input string) []token.Type {
	t.Helper()
	l := New(input)
	var types []token.Type
	for {
		tok := l.NextToken()
		types = append(types, tok.Type)
		if tok.Type == token.EOF {
			break
		}
	}
	return types
}

func TestNextTokenPunctuation(t *testing.T) {
	input := `= + ( ) { } [ ] , ; . : ?`
	want := []token.Type{
		token.ASSIGN, token.PLUS, token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE,
		token.LBRACKET, token.RBRACKET, token.COMMA, token.SEMICOLON, token.DOT, token.COLON,
		token.QUESTION, token.EOF,
	}
	got := collectTypes(t, input)
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestMultiCharOperatorLongestMatch(t *testing.T) {
	tests := []struct {
		input string
		want  token.Type
	}{
		{"===", token.STRICT_EQ},
		{"==", token.EQ},
		{"!==", token.STRICT_NOT_EQ},
		{"!=", token.NOT_EQ},
		{">>>", token.USHR},
		{">>", token.SHR},
		{"<<", token.SHL},
		{"**", token.EXP},
		{"++", token.INC},
		{"--", token.DEC},
		{"&&", token.AND},
		{"||", token.OR},
		{"??", token.NULLISH_COALESCING},
	}
	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		if tok.Type != tt.want {
			t.Errorf("NextToken(%q) = %s, want %s", tt.input, tok.Type, tt.want)
		}
		if tok.Literal != tt.input {
			t.Errorf("NextToken(%q).Literal = %q, want %q", tt.input, tok.Literal, tt.input)
		}
	}
}

func TestKeywords(t *testing.T) {
	input := "function let const var true false null undefined NaN this if else switch case default for break continue return typeof"
	want := []token.Type{
		token.FUNCTION, token.LET, token.CONST, token.VAR, token.TRUE, token.FALSE,
		token.NULL, token.UNDEFINED, token.NAN, token.THIS, token.IF, token.ELSE,
		token.SWITCH, token.CASE, token.DEFAULT, token.FOR, token.BREAK, token.CONTINUE,
		token.RETURN, token.TYPEOF, token.EOF,
	}
	got := collectTypes(t, input)
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestNumberLiterals(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"123", "123"},
		{"123.45", "123.45"},
		{"1.5e10", "1.5e10"},
		{"1.5e-10", "1.5e-10"},
		{"0b1010", "0b1010"},
		{"0o17", "0o17"},
		{"0xFF", "0xFF"},
	}
	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		if tok.Type != token.NUMBER {
			t.Fatalf("NextToken(%q).Type = %s, want NUMBER", tt.input, tok.Type)
		}
		if tok.Literal != tt.want {
			t.Errorf("NextToken(%q).Literal = %q, want %q", tt.input, tok.Literal, tt.want)
		}
	}
}

func TestStringLiteralsAndEscapes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"hello"`, "hello"},
		{`'world'`, "world"},
		{`'it\'s'`, "it's"},
		{`"a\"b"`, `a"b`},
	}
	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		if tok.Type != token.STRING {
			t.Fatalf("NextToken(%q).Type = %s, want STRING", tt.input, tok.Type)
		}
		if tok.Literal != tt.want {
			t.Errorf("NextToken(%q).Literal = %q, want %q", tt.input, tok.Literal, tt.want)
		}
	}
}

func TestComments(t *testing.T) {
	input := `1 // line comment
+ /* block
comment */ 2`
	got := collectTypes(t, input)
	want := []token.Type{token.NUMBER, token.PLUS, token.NUMBER, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestPreserveCommentsEmitsCommentTokens(t *testing.T) {
	input := `1 // line comment
+ /* block */ 2`
	l := New(input, WithPreserveComments(true))
	var types []token.Type
	var literals []string
	for {
		tok := l.NextToken()
		types = append(types, tok.Type)
		literals = append(literals, tok.Literal)
		if tok.Type == token.EOF {
			break
		}
	}
	want := []token.Type{
		token.NUMBER, token.COMMENT, token.PLUS, token.COMMENT, token.NUMBER, token.EOF,
	}
	if len(types) != len(want) {
		t.Fatalf("token count = %d, want %d (%v)", len(types), len(want), types)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("token[%d] = %s, want %s", i, types[i], want[i])
		}
	}
	if literals[1] != "// line comment" {
		t.Errorf("comment literal = %q, want %q", literals[1], "// line comment")
	}
	if literals[3] != "/* block */" {
		t.Errorf("comment literal = %q, want %q", literals[3], "/* block */")
	}
}

func TestIllegalCharacter(t *testing.T) {
	l := New("@")
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("NextToken(%q).Type = %s, want ILLEGAL", "@", tok.Type)
	}
}

func TestEOFIsSticky(t *testing.T) {
	l := New("")
	for i := 0; i < 3; i++ {
		if tok := l.NextToken(); tok.Type != token.EOF {
			t.Fatalf("NextToken() = %s, want EOF", tok.Type)
		}
	}
}

func TestBOMStripped(t *testing.T) {
	input := "\xEF\xBB\xBF1"
	l := New(input)
	tok := l.NextToken()
	if tok.Type != token.NUMBER || tok.Literal != "1" {
		t.Fatalf("NextToken() = %+v, want NUMBER(1)", tok)
	}
}
