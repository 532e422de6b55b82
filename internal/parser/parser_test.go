package parser_test

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/leonardinius/loxfront/internal/loxerrors"
	"github.com/leonardinius/loxfront/internal/parser"
	"github.com/leonardinius/loxfront/internal/scanner"
	"github.com/leonardinius/loxfront/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, input string) (parser.Expr, *loxerrors.Diagnostics, error) {
	t.Helper()

	diag := loxerrors.NewDiagnostics()
	tokens, err := scanner.NewScanner(input, diag).Scan()
	require.NoError(t, err)

	expr, err := parser.NewParser(tokens, diag).Parse()
	return expr, diag, err
}

func TestParse(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name string
		in   string
		ast  string
		rpn  string
	}{
		{name: `number`, in: `1`, ast: `1`, rpn: `1`},
		{name: `string`, in: `"a b"`, ast: `a b`, rpn: `a b`},
		{name: `true`, in: `true`, ast: `true`, rpn: `true`},
		{name: `false`, in: `false`, ast: `false`, rpn: `false`},
		{name: `nil`, in: `nil`, ast: `nil`, rpn: `nil`},
		{name: `unary minus times`, in: `-1234 * 45.67`, ast: `(* (- 1234) 45.67)`, rpn: `1234 ~ 45.67 *`},
		{name: `grouping`, in: `-123 * (45.67)`, ast: `(* (- 123) (group 45.67))`, rpn: `123 ~ 45.67 *`},
		{name: `left assoc minus`, in: `8 - 4 - 2`, ast: `(- (- 8 4) 2)`, rpn: `8 4 - 2 -`},
		{name: `left assoc slash`, in: `8 / 4 / 2`, ast: `(/ (/ 8 4) 2)`, rpn: `8 4 / 2 /`},
		{name: `left assoc equality`, in: `1 == 2 != 3`, ast: `(!= (== 1 2) 3)`, rpn: `1 2 == 3 !=`},
		{name: `precedence factor over term`, in: `1 + 2 * 3`, ast: `(+ 1 (* 2 3))`, rpn: `1 2 3 * +`},
		{name: `precedence term over comparison`, in: `1 + 2 < 3 - 4`, ast: `(< (+ 1 2) (- 3 4))`, rpn: `1 2 + 3 4 - <`},
		{name: `precedence comparison over equality`, in: `1 < 2 == 3 >= 4`, ast: `(== (< 1 2) (>= 3 4))`, rpn: `1 2 < 3 4 >= ==`},
		{name: `grouping overrides precedence`, in: `(1 + 2) * 3`, ast: `(* (group (+ 1 2)) 3)`, rpn: `1 2 + 3 *`},
		{name: `nested grouping`, in: `((1))`, ast: `(group (group 1))`, rpn: `1`},
		{name: `unary chain`, in: `!!true`, ast: `(! (! true))`, rpn: `true ! !`},
		{name: `unary minus chain`, in: `- -1`, ast: `(- (- 1))`, rpn: `1 ~ ~`},
		{name: `unary binds tighter`, in: `-1 - -2`, ast: `(- (- 1) (- 2))`, rpn: `1 ~ 2 ~ -`},
		{name: `all comparisons`, in: `1 > 2 >= 3 < 4 <= 5`, ast: `(<= (< (>= (> 1 2) 3) 4) 5)`, rpn: `1 2 > 3 >= 4 < 5 <=`},
		{name: `multiline`, in: "1 +\n2", ast: `(+ 1 2)`, rpn: `1 2 +`},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			expr, diag, err := parse(t, tc.in)
			require.NoError(t, err)
			require.False(t, diag.HadError())
			assert.Equal(t, tc.ast, parser.NewAstPrinter().Print(expr))
			assert.Equal(t, tc.rpn, parser.NewRPNPrinter().Print(expr))
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name string
		in   string
		err  string
		is   error
		line int
	}{
		{name: `unmatched grouping`, in: `(1 + 2`, err: `[line 1] Error at end: Expect ')' after expression.`, is: loxerrors.ErrParseExpectedRightParenToken, line: 1},
		{name: `dangling operator`, in: `1 +`, err: `[line 1] Error at end: Expect expression.`, is: loxerrors.ErrParseUnexpectedEndOfInput, line: 1},
		{name: `empty input`, in: ``, err: `[line 1] Error at end: Expect expression.`, is: loxerrors.ErrParseUnexpectedEndOfInput, line: 1},
		{name: `operator as operand`, in: `1 + * 2`, err: `[line 1] Error at '*': Expect expression.`, is: loxerrors.ErrParseExpectedExpression, line: 1},
		{name: `closing paren only`, in: `)`, err: `[line 1] Error at ')': Expect expression.`, is: loxerrors.ErrParseExpectedExpression, line: 1},
		{name: `identifier is not an operand`, in: `a + 1`, err: `[line 1] Error at 'a': Expect expression.`, is: loxerrors.ErrParseExpectedExpression, line: 1},
		{name: `keyword is not an operand`, in: `print 1`, err: `[line 1] Error at 'print': Expect expression.`, is: loxerrors.ErrParseExpectedExpression, line: 1},
		{name: `trailing tokens`, in: `1 2`, err: `[line 1] Error at '2': Expect end of expression.`, is: loxerrors.ErrParseExpectedEndOfExpression, line: 1},
		{name: `trailing semicolon`, in: `1;`, err: `[line 1] Error at ';': Expect end of expression.`, is: loxerrors.ErrParseExpectedEndOfExpression, line: 1},
		{name: `error line`, in: "1 +\n\n*", err: `[line 3] Error at '*': Expect expression.`, is: loxerrors.ErrParseExpectedExpression, line: 3},
		{name: `unmatched nested grouping`, in: `((1)`, err: `[line 1] Error at end: Expect ')' after expression.`, is: loxerrors.ErrParseExpectedRightParenToken, line: 1},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			expr, diag, err := parse(t, tc.in)
			assert.Nil(t, expr)
			require.Error(t, err)
			assert.EqualError(t, err, tc.err)
			assert.ErrorIs(t, err, tc.is)

			require.True(t, diag.HadError())
			require.Len(t, diag.Errors(), 1)
			assert.Equal(t, tc.line, diag.Errors()[0].Line())
		})
	}
}

func TestParseAll(t *testing.T) {
	t.Parallel()

	diag := loxerrors.NewDiagnostics()
	tokens, err := scanner.NewScanner("1 + 2;\n;\n-3 * 4; \"s\"", diag).Scan()
	require.NoError(t, err)

	exprs, err := parser.NewParser(tokens, diag).ParseAll()
	require.NoError(t, err)
	require.Len(t, exprs, 3)

	printer := parser.NewAstPrinter()
	assert.Equal(t, "(+ 1 2)", printer.Print(exprs[0]))
	assert.Equal(t, "(* (- 3) 4)", printer.Print(exprs[1]))
	assert.Equal(t, "s", printer.Print(exprs[2]))
}

func TestParseAllEmpty(t *testing.T) {
	t.Parallel()

	tokens := []token.Token{token.NewToken(token.EOF, "", nil, 1)}
	exprs, err := parser.NewParser(tokens, nil).ParseAll()
	assert.NoError(t, err)
	assert.Empty(t, exprs)
}

func TestParseAllRecovers(t *testing.T) {
	t.Parallel()

	diag := loxerrors.NewDiagnostics()
	tokens, err := scanner.NewScanner("1 +;\n2 3;\n(4;\nvar x = 1;\n5", diag).Scan()
	require.NoError(t, err)

	exprs, err := parser.NewParser(tokens, diag).ParseAll()
	assert.Nil(t, exprs)
	require.Error(t, err)

	errs := diag.Errors()
	require.Len(t, errs, 4)
	assert.Equal(t, "[line 1] Error at ';': Expect expression.", errs[0].Error())
	assert.Equal(t, "[line 2] Error at '3': Expect ';' after expression.", errs[1].Error())
	assert.Equal(t, "[line 3] Error at ';': Expect ')' after expression.", errs[2].Error())
	assert.Equal(t, "[line 4] Error at 'var': Expect expression.", errs[3].Error())
	assert.ErrorIs(t, err, loxerrors.ErrParseExpectedSemicolon)
}

func TestNewParserRequiresEOF(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "tokens cannot be empty", func() {
		parser.NewParser(nil, nil)
	})
	assert.PanicsWithValue(t, "tokens must end with EOF", func() {
		parser.NewParser([]token.Token{token.NewToken(token.NUMBER, "1", token.NumberLiteral(1), 1)}, nil)
	})
}

func TestParserStringers(t *testing.T) {
	t.Parallel()

	tokens := []token.Token{token.NewToken(token.EOF, "", nil, 1)}
	p := parser.NewParser(tokens, nil)
	assert.Equal(t, "parser{tokens: 1, err: <nil>}", fmt.Sprint(p))
}

// sourcePrinter renders an expression back into fully parenthesized source.
type sourcePrinter struct{}

func (p sourcePrinter) VisitBinary(expr *parser.Binary) string {
	return "(" + parser.Accept[string](expr.Left, p) + " " + expr.Operator.Lexeme + " " + parser.Accept[string](expr.Right, p) + ")"
}

// VisitGrouping is transparent, every operator already brings its own parens.
func (p sourcePrinter) VisitGrouping(expr *parser.Grouping) string {
	return parser.Accept[string](expr.Expression, p)
}

func (p sourcePrinter) VisitLiteral(expr *parser.Literal) string {
	if s, ok := expr.Value.(token.StringLiteral); ok {
		return strconv.Quote(string(s))
	}
	return expr.Value.String()
}

func (p sourcePrinter) VisitUnary(expr *parser.Unary) string {
	return "(" + expr.Operator.Lexeme + parser.Accept[string](expr.Right, p) + ")"
}

func TestPrintRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		`-1234 * 45.67`,
		`8 - 4 - 2`,
		`1 + 2 * 3 == 7 != false`,
		`!(1 < 2) == !nil`,
		`(("a") + "b") >= - - 3 / 0.5`,
	}

	for _, in := range inputs {
		first, _, err := parse(t, in)
		require.NoError(t, err, in)

		source := parser.Accept[string](first, sourcePrinter{})
		second, _, err := parse(t, source)
		require.NoError(t, err, source)

		rpn := parser.NewRPNPrinter()
		assert.Equal(t, rpn.Print(first), rpn.Print(second), source)
		assert.Equal(t, source, parser.Accept[string](second, sourcePrinter{}))
	}
}
