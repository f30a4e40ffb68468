package parser

import (
	"math/big"
	"strings"

	"github.com/funvibe/swifty/internal/ast"
	"github.com/funvibe/swifty/internal/lexer"
	"github.com/funvibe/swifty/internal/token"
)

// infixTokens is the set of tokens that continue a binary operator chain.
// The chain is built flat and left-leaning on purpose: precedence is
// applied later by internal/opresolve's re-sort pass, never here.
var infixTokens = map[token.TokenType]bool{
	token.PLUS:            true,
	token.MINUS:           true,
	token.ASTERISK:        true,
	token.SLASH:           true,
	token.PERCENT:         true,
	token.POWER:           true,
	token.AMPERSAND:       true,
	token.PIPE:            true,
	token.CARET:           true,
	token.LSHIFT:          true,
	token.RSHIFT:          true,
	token.LT:              true,
	token.GT:              true,
	token.LTE:             true,
	token.GTE:             true,
	token.EQ:              true,
	token.NOT_EQ:          true,
	token.AND:             true,
	token.OR:              true,
	token.NULL_COALESCE:   true,
	token.ELLIPSIS:        true,
	token.HALF_OPEN_RANGE: true,
}

// parseExpression parses a full expression including the ternary
// conditional, which is right-associative.
func (p *Parser) parseExpression() ast.Expression {
	cond := p.parseBinaryChain()
	if cond == nil {
		return nil
	}
	if p.curTokenIs(token.QUESTION) && !p.peekTokenIs(token.LBRACKET) {
		tok := p.curToken
		p.nextToken()
		thenExpr := p.parseBinaryChain()
		p.expect(token.COLON)
		elseExpr := p.parseExpression()
		return &ast.ConditionalOperatorExpression{Token: tok, Condition: cond, Then: thenExpr, Else: elseExpr}
	}
	return cond
}

func (p *Parser) parseBinaryChain() ast.Expression {
	left := p.parseUnary()
	if left == nil {
		return nil
	}
	for infixTokens[p.curToken.Type] {
		opTok := p.curToken
		p.nextToken()
		right := p.parseUnary()
		if right == nil {
			return left
		}
		left = &ast.BinaryOperatorExpression{Token: opTok, Left: left, Operator: opTok.Lexeme, Right: right}
	}
	return left
}

func (p *Parser) parseUnary() ast.Expression {
	switch p.curToken.Type {
	case token.MINUS, token.BANG, token.TILDE, token.PLUS:
		tok := p.curToken
		p.nextToken()
		operand := p.parseUnary()
		if operand == nil {
			return nil
		}
		return &ast.UnaryOperatorExpression{Token: tok, Operator: tok.Lexeme, Operand: operand, IsPrefix: true}
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() ast.Expression {
	expr := p.parsePrimary()
	if expr == nil {
		return nil
	}
	for {
		switch p.curToken.Type {
		case token.DOT:
			dotTok := p.curToken
			p.nextToken()
			if p.curTokenIs(token.INIT) {
				expr = &ast.InitializerReferenceExpression{Token: dotTok, Base: expr}
				p.nextToken()
				continue
			}
			name, ok := p.identName()
			if !ok {
				p.errorExpected("member name")
				return expr
			}
			expr = &ast.MemberAccessExpression{
				Token:  dotTok,
				Base:   expr,
				Member: &ast.Identifier{Token: p.curToken, Name: name},
			}
			p.nextToken()
		case token.OPTIONAL_CHAIN:
			chainTok := p.curToken
			p.nextToken()
			wrapped := &ast.OptionalChainingExpression{Token: chainTok, Base: expr}
			if p.curTokenIs(token.LBRACKET) {
				expr = wrapped
				continue
			}
			if p.curTokenIs(token.INIT) {
				expr = &ast.InitializerReferenceExpression{Token: chainTok, Base: wrapped}
				p.nextToken()
				continue
			}
			name, ok := p.identName()
			if !ok {
				p.errorExpected("member name")
				return wrapped
			}
			expr = &ast.MemberAccessExpression{
				Token:  chainTok,
				Base:   wrapped,
				Member: &ast.Identifier{Token: p.curToken, Name: name},
			}
			p.nextToken()
		case token.QUESTION:
			if !p.peekTokenIs(token.LBRACKET) {
				return expr
			}
			expr = &ast.OptionalChainingExpression{Token: p.curToken, Base: expr}
			p.nextToken()
		case token.LBRACKET:
			sub := &ast.SubscriptAccessExpression{Token: p.curToken, Base: expr}
			p.nextToken()
			for !p.curTokenIs(token.RBRACKET) && !p.curTokenIs(token.EOF) {
				sub.Arguments = append(sub.Arguments, p.parseExpression())
				if p.curTokenIs(token.COMMA) {
					p.nextToken()
				}
			}
			p.expect(token.RBRACKET)
			expr = sub
		case token.LPAREN:
			expr = p.parseCall(expr)
		case token.BANG:
			expr = &ast.ForcedValueExpression{Token: p.curToken, Base: expr}
			p.nextToken()
		case token.LBRACE:
			if p.noTrailingClosure || !callableHead(expr) {
				return expr
			}
			call := &ast.FunctionCallExpression{Token: p.curToken, Callee: expr}
			call.TrailingClosure = p.parseClosure()
			expr = call
		default:
			return expr
		}
	}
}

// callableHead limits parenless trailing closures to the callee shapes
// that can actually take one, so a block following any other expression
// still reads as a block.
func callableHead(expr ast.Expression) bool {
	switch expr.(type) {
	case *ast.Identifier, *ast.MemberAccessExpression, *ast.InitializerReferenceExpression:
		return true
	default:
		return false
	}
}

func (p *Parser) parseCall(callee ast.Expression) ast.Expression {
	call := &ast.FunctionCallExpression{Token: p.curToken, Callee: callee}
	p.nextToken() // '('
	for !p.curTokenIs(token.RPAREN) && !p.curTokenIs(token.EOF) {
		var label *ast.Identifier
		if name, ok := p.identName(); ok && p.peekTokenIs(token.COLON) {
			label = &ast.Identifier{Token: p.curToken, Name: name}
			p.nextToken()
			p.nextToken()
		}
		value := p.parseExpression()
		if value == nil {
			break
		}
		call.Arguments = append(call.Arguments, ast.CallArgument{Label: label, Value: value})
		if p.curTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
	p.expect(token.RPAREN)

	// type(of: x) is the dynamic-type inspection form, not a call.
	if id, ok := callee.(*ast.Identifier); ok && id.Name == "type" &&
		len(call.Arguments) == 1 && call.Arguments[0].Label != nil && call.Arguments[0].Label.Name == "of" {
		return &ast.DynamicTypeExpression{Token: call.Token, Base: call.Arguments[0].Value}
	}

	if p.curTokenIs(token.LBRACE) && !p.noTrailingClosure {
		call.TrailingClosure = p.parseClosure()
	}
	return call
}

func (p *Parser) parsePrimary() ast.Expression {
	switch p.curToken.Type {
	case token.INT:
		tok := p.curToken
		p.nextToken()
		if bigValue, ok := tok.Literal.(*big.Int); ok {
			return &ast.BigIntLiteral{Token: tok, Value: bigValue}
		}
		value, _ := tok.Literal.(int64)
		return &ast.IntegerLiteral{Token: tok, Value: value}
	case token.FLOAT:
		tok := p.curToken
		p.nextToken()
		value, _ := tok.Literal.(float64)
		return &ast.FloatLiteral{Token: tok, Value: value}
	case token.STRING:
		tok := p.curToken
		p.nextToken()
		value, _ := tok.Literal.(string)
		return &ast.StringLiteral{Token: tok, Value: value}
	case token.INTERP_STRING:
		return p.parseInterpolatedString()
	case token.TRUE, token.FALSE:
		tok := p.curToken
		p.nextToken()
		return &ast.BooleanLiteral{Token: tok, Value: tok.Type == token.TRUE}
	case token.NIL:
		tok := p.curToken
		p.nextToken()
		return &ast.NilLiteral{Token: tok}
	case token.SELF:
		tok := p.curToken
		p.nextToken()
		return &ast.SelfExpression{Token: tok}
	case token.IDENT:
		tok := p.curToken
		p.nextToken()
		return &ast.Identifier{Token: tok, Name: tok.Lexeme}
	case token.SELF_TYPE:
		tok := p.curToken
		p.nextToken()
		return &ast.Identifier{Token: tok, Name: tok.Lexeme}
	case token.UNDERSCORE:
		tok := p.curToken
		p.nextToken()
		return &ast.Identifier{Token: tok, Name: "_"}
	case token.HASH_IDENT:
		tok := p.curToken
		p.nextToken()
		return &ast.CompileConstantExpression{Token: tok, Name: strings.TrimPrefix(tok.Lexeme, "#")}
	case token.LPAREN:
		return p.parseParenOrTuple()
	case token.LBRACKET:
		return p.parseCollectionLiteral()
	case token.LBRACE:
		return p.parseClosure()
	default:
		p.errorExpected("expression")
		p.nextToken()
		return nil
	}
}

func (p *Parser) parseParenOrTuple() ast.Expression {
	tok := p.curToken
	p.nextToken() // '('
	if p.curTokenIs(token.RPAREN) {
		p.nextToken()
		return &ast.TupleExpression{Token: tok}
	}
	var elems []ast.Expression
	var labels []string
	for !p.curTokenIs(token.RPAREN) && !p.curTokenIs(token.EOF) {
		label := ""
		if p.curTokenIs(token.IDENT) && p.peekTokenIs(token.COLON) {
			label = p.curToken.Lexeme
			p.nextToken()
			p.nextToken()
		}
		value := p.parseExpression()
		if value == nil {
			break
		}
		elems = append(elems, value)
		labels = append(labels, label)
		if p.curTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
	p.expect(token.RPAREN)
	if len(elems) == 1 && labels[0] == "" {
		return &ast.ParenthesizedExpression{Token: tok, Inner: elems[0]}
	}
	return &ast.TupleExpression{Token: tok, Elements: elems, Labels: labels}
}

func (p *Parser) parseCollectionLiteral() ast.Expression {
	tok := p.curToken
	p.nextToken() // '['
	if p.curTokenIs(token.RBRACKET) {
		p.nextToken()
		return &ast.ArrayLiteralExpression{Token: tok}
	}
	if p.curTokenIs(token.COLON) {
		p.nextToken()
		p.expect(token.RBRACKET)
		return &ast.DictionaryLiteralExpression{Token: tok}
	}
	first := p.parseExpression()
	if p.curTokenIs(token.COLON) {
		dict := &ast.DictionaryLiteralExpression{Token: tok}
		p.nextToken()
		dict.Pairs = append(dict.Pairs, ast.DictionaryPair{Key: first, Value: p.parseExpression()})
		for p.curTokenIs(token.COMMA) {
			p.nextToken()
			key := p.parseExpression()
			p.expect(token.COLON)
			dict.Pairs = append(dict.Pairs, ast.DictionaryPair{Key: key, Value: p.parseExpression()})
		}
		p.expect(token.RBRACKET)
		return dict
	}
	arr := &ast.ArrayLiteralExpression{Token: tok, Elements: []ast.Expression{first}}
	for p.curTokenIs(token.COMMA) {
		p.nextToken()
		arr.Elements = append(arr.Elements, p.parseExpression())
	}
	p.expect(token.RBRACKET)
	return arr
}

// parseClosure parses { (params) -> Ret in body }, { a, b in body } and
// bare { body } closures.
func (p *Parser) parseClosure() *ast.ClosureExpression {
	closure := &ast.ClosureExpression{Token: p.curToken}
	p.nextToken() // '{'
	p.skipSeparators()

	if p.curTokenIs(token.LPAREN) {
		closure.Params = p.parseParameterList()
		if p.curTokenIs(token.ARROW) {
			p.nextToken()
			closure.ReturnType = p.parseType()
		}
		p.expect(token.IN)
	} else if p.curTokenIs(token.IDENT) && p.shorthandParamsAhead() {
		closure.Params = &ast.ParameterList{Token: p.curToken}
		for p.curTokenIs(token.IDENT) {
			closure.Params.Params = append(closure.Params.Params, &ast.ParameterDeclaration{
				Token: p.curToken,
				Name:  &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme},
			})
			p.nextToken()
			if p.curTokenIs(token.COMMA) {
				p.nextToken()
			}
		}
		p.expect(token.IN)
	}

	body := &ast.CodeBlock{Token: closure.Token}
	p.skipSeparators()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		if stmt := p.parseStatement(); stmt != nil {
			body.Statements = append(body.Statements, stmt)
		} else {
			break
		}
		p.skipSeparators()
	}
	p.expect(token.RBRACE)
	closure.Body = body
	return closure
}

// shorthandParamsAhead reports whether the tokens from cur onward read as
// a bare closure parameter list (`a, b in`).
func (p *Parser) shorthandParamsAhead() bool {
	if p.peekTokenIs(token.IN) {
		return true
	}
	if !p.peekTokenIs(token.COMMA) {
		return false
	}
	for i := 0; i < 16; i++ {
		toks := p.stream.Peek(i + 1)
		if len(toks) <= i {
			return false
		}
		switch toks[i].Type {
		case token.IN:
			return true
		case token.IDENT, token.COMMA:
			continue
		default:
			return false
		}
	}
	return false
}

// parseInterpolatedString splits an interpolated string literal into its
// alternating literal and expression parts; each embedded expression is
// re-lexed and parsed on its own sub-stream.
func (p *Parser) parseInterpolatedString() ast.Expression {
	tok := p.curToken
	p.nextToken()
	raw, _ := tok.Literal.(string)
	expr := &ast.StringInterpolationExpression{Token: tok}

	var literal strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\\' && i+1 < len(raw) && raw[i+1] == '(' {
			if literal.Len() > 0 {
				expr.Parts = append(expr.Parts, &ast.StringLiteral{Token: tok, Value: literal.String()})
				literal.Reset()
			}
			depth := 1
			j := i + 2
			for j < len(raw) && depth > 0 {
				switch raw[j] {
				case '(':
					depth++
				case ')':
					depth--
				}
				j++
			}
			segment := raw[i+2 : j-1]
			sub := New(lexer.NewTokenStream(lexer.New(segment, tok.FileHash)), p.ctx)
			if part := sub.parseExpression(); part != nil {
				expr.Parts = append(expr.Parts, part)
			}
			i = j - 1
			continue
		}
		if raw[i] == '\\' && i+1 < len(raw) {
			literal.WriteString(unescapeSegment(raw[i : i+2]))
			i++
			continue
		}
		literal.WriteByte(raw[i])
	}
	if literal.Len() > 0 {
		expr.Parts = append(expr.Parts, &ast.StringLiteral{Token: tok, Value: literal.String()})
	}
	return expr
}

func unescapeSegment(s string) string {
	switch s {
	case "\\n":
		return "\n"
	case "\\t":
		return "\t"
	case "\\r":
		return "\r"
	case "\\\"":
		return "\""
	case "\\\\":
		return "\\"
	default:
		return s
	}
}

// parseCondition parses a control-flow condition, where a '{' opens the
// statement's body rather than a trailing closure.
func (p *Parser) parseCondition() ast.Expression {
	prev := p.noTrailingClosure
	p.noTrailingClosure = true
	expr := p.parseExpression()
	p.noTrailingClosure = prev
	return expr
}
