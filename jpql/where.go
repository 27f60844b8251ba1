/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package jpql

import (
	"fmt"
	"strings"

	"github.com/rulego/odatajpql/ast"
	"github.com/rulego/odatajpql/edm"
)

const (
	likeEscape = ` ESCAPE '\'`
	nullText   = "null"
)

// Fragment is a translated query fragment with the parameters it binds.
type Fragment struct {
	Text   string
	Params Parameters
}

// Where translates a filter expression into a condition fragment for alias.
// A nil node yields an empty fragment.
func Where(node ast.Node, alias string, opts ...ContextOption) (*Fragment, error) {
	c := NewContext(alias, opts...)
	text, err := c.Where(node)
	if err != nil {
		return nil, err
	}
	return &Fragment{Text: text, Params: c.params}, nil
}

// Where translates node within the context, so parameters continue from
// anything already bound by it.
func (c *Context) Where(node ast.Node) (string, error) {
	if node == nil {
		return "", nil
	}
	text, err := c.translate(node, nil)
	if err != nil {
		c.rewrite = false
		c.log.Warn("translate filter failed: %v", err)
		return "", err
	}
	c.log.Debug("filter %s -> %s %v", c.alias, text, c.params)
	return text, nil
}

// translate walks one node. hint is the host hint literals at this position
// are coerced with, nil for the kind default.
func (c *Context) translate(node ast.Node, hint *edm.HostHint) (string, error) {
	if c.maxDepth > 0 && c.depth >= c.maxDepth {
		return "", NewEvaluationError(fmt.Sprintf("expression nested deeper than %d", c.maxDepth), nil)
	}
	c.depth++
	defer func() { c.depth-- }()

	switch n := node.(type) {
	case *ast.Filter:
		if n.Expr == nil {
			return "", nil
		}
		return c.translate(n.Expr, hint)
	case *ast.Unary:
		return c.unary(n, hint)
	case *ast.Binary:
		return c.binary(n)
	case *ast.Property:
		return c.property(n)
	case *ast.Member:
		return c.member(n)
	case *ast.Literal:
		return c.literal(n.Text, n.Type, hint)
	case *ast.Method:
		return c.method(n)
	case nil:
		return "", NewEvaluationError("missing operand", nil)
	default:
		return "", NewUnsupportedOperationError("expression kind", node.NodeKind().String())
	}
}

func (c *Context) unary(n *ast.Unary, hint *edm.HostHint) (string, error) {
	switch n.Op {
	case ast.Not:
		operand, err := c.translate(n.Operand, hint)
		if err != nil {
			return "", err
		}
		return "NOT (" + operand + ")", nil
	case ast.Minus:
		// negative literals are bound as negative values
		if lit, ok := n.Operand.(*ast.Literal); ok {
			return c.literal(negate(edm.UnwrapLiteral(lit.Text, lit.Type)), lit.Type, hint)
		}
		operand, err := c.translate(n.Operand, hint)
		if err != nil {
			return "", err
		}
		return negate(operand), nil
	default:
		return "", NewUnsupportedOperationError("unary operator", n.Op.String())
	}
}

func negate(s string) string {
	if strings.HasPrefix(s, "-") {
		return s[1:]
	}
	return "-" + s
}

func (c *Context) binary(n *ast.Binary) (string, error) {
	if m, ok := n.Left.(*ast.Method); ok {
		switch m.Op {
		case ast.StartsWith, ast.EndsWith:
			if n.Right != nil && n.Right.ValueKind() == edm.KindBoolean && !n.Op.IsLogical() {
				if n.Op != ast.Eq && n.Op != ast.Ne {
					return "", NewInvalidOperatorError(n.Op.String())
				}
				if lit, ok := n.Right.(*ast.Literal); ok {
					return c.patternComparison(n, m, lit)
				}
			}
		case ast.SubstringOf:
			if n.Op == ast.Eq || n.Op == ast.Ne {
				c.rewrite = true
			}
		}
	}

	left, err := c.translate(n.Left, nil)
	if err != nil {
		return "", err
	}
	right, err := c.translate(n.Right, hintOf(n.Left))
	if err != nil {
		return "", err
	}

	switch n.Op {
	case ast.And:
		return "(" + left + " AND " + right + ")", nil
	case ast.Or:
		return "(" + left + " OR " + right + ")", nil
	case ast.Eq, ast.Ne:
		return equality(n, left, right), nil
	case ast.Lt:
		return "(" + left + " < " + right + ")", nil
	case ast.Le:
		return "(" + left + " <= " + right + ")", nil
	case ast.Gt:
		return "(" + left + " > " + right + ")", nil
	case ast.Ge:
		return "(" + left + " >= " + right + ")", nil
	default:
		return "", NewUnsupportedOperationError("binary operator", n.Op.String())
	}
}

func equality(n *ast.Binary, left, right string) string {
	eq := n.Op == ast.Eq
	if strings.EqualFold(right, nullText) {
		if eq {
			return "(" + left + " IS " + right + ")"
		}
		return "(" + left + " IS NOT " + right + ")"
	}
	prop := propertyOf(n.Left)
	if n.Left.ValueKind().IsPatternCompatible() && !prop.IsEnum() {
		if eq {
			return "(" + left + " LIKE " + right + likeEscape + ")"
		}
		return "(" + left + " NOT LIKE " + right + likeEscape + ")"
	}
	if eq {
		return "(" + left + " = " + right + ")"
	}
	return "(" + left + " <> " + right + ")"
}

// patternComparison folds startswith/endswith compared with a boolean into a
// single LIKE or NOT LIKE predicate.
func (c *Context) patternComparison(n *ast.Binary, m *ast.Method, lit *ast.Literal) (string, error) {
	var want bool
	switch strings.ToLower(strings.TrimSpace(lit.Text)) {
	case "true":
		want = true
	case "false":
	default:
		return "", NewEvaluationError("invalid boolean literal", fmt.Errorf("%q", lit.Text))
	}
	if n.Op == ast.Ne {
		want = !want
	}

	args, err := c.args(m, 2, 2)
	if err != nil {
		return "", err
	}
	return "(" + likeCall(m.Op, args[0], args[1], !want) + ")", nil
}

func likeCall(op ast.MethodOp, subject, pattern string, negated bool) string {
	like := "LIKE"
	if negated {
		like = "NOT LIKE"
	}
	if op == ast.StartsWith {
		return fmt.Sprintf("%s %s CONCAT(%s,'%%')%s", subject, like, pattern, likeEscape)
	}
	return fmt.Sprintf("%s %s CONCAT('%%',%s)%s", subject, like, pattern, likeEscape)
}

func (c *Context) property(n *ast.Property) (string, error) {
	if n.Prop == nil {
		return "", NewEvaluationError("property without mapping", nil)
	}
	return c.alias + "." + n.Prop.MappedName(), nil
}

func (c *Context) member(n *ast.Member) (string, error) {
	path, err := memberPath(n)
	if err != nil {
		return "", err
	}
	return c.alias + "." + path, nil
}

// memberPath renders a navigation chain head first.
func memberPath(n *ast.Member) (string, error) {
	if n.Property == nil || n.Property.Prop == nil {
		return "", NewEvaluationError("member without property mapping", nil)
	}
	var head string
	switch p := n.Path.(type) {
	case *ast.Property:
		if p.Prop == nil {
			return "", NewEvaluationError("member without property mapping", nil)
		}
		head = p.Prop.MappedName()
	case *ast.Member:
		var err error
		if head, err = memberPath(p); err != nil {
			return "", err
		}
	case nil:
		return "", NewEvaluationError("member without path", nil)
	default:
		return "", NewUnsupportedOperationError("member path", p.NodeKind().String())
	}
	return head + "." + n.Property.Prop.MappedName(), nil
}

func (c *Context) literal(text string, kind edm.ValueKind, hint *edm.HostHint) (string, error) {
	return c.bind(edm.UnwrapLiteral(text, kind), kind, hint)
}

func (c *Context) method(m *ast.Method) (string, error) {
	rewrite := c.takeRewrite()

	switch m.Op {
	case ast.Substring:
		args, err := c.args(m, 2, 3)
		if err != nil {
			return "", err
		}
		length := ""
		if len(args) == 3 {
			length = ", " + args[2]
		}
		return fmt.Sprintf("SUBSTRING(%s, %s + 1 %s)", args[0], args[1], length), nil
	case ast.SubstringOf:
		args, err := c.args(m, 2, 2)
		if err != nil {
			return "", err
		}
		text := fmt.Sprintf("(CASE WHEN (%s LIKE CONCAT('%%',CONCAT(%s,'%%'))%s) THEN TRUE ELSE FALSE END)",
			args[1], args[0], likeEscape)
		if rewrite {
			return text, nil
		}
		return text + " = true", nil
	case ast.ToLower:
		args, err := c.args(m, 1, 1)
		if err != nil {
			return "", err
		}
		return "LOWER(" + args[0] + ")", nil
	case ast.ToUpper:
		args, err := c.args(m, 1, 1)
		if err != nil {
			return "", err
		}
		return "UPPER(" + args[0] + ")", nil
	case ast.StartsWith, ast.EndsWith:
		args, err := c.args(m, 2, 2)
		if err != nil {
			return "", err
		}
		return likeCall(m.Op, args[0], args[1], false), nil
	default:
		return "", NewUnsupportedOperationError("method", m.Op.String())
	}
}

// args translates the method parameters in order after checking arity.
func (c *Context) args(m *ast.Method, lo, hi int) ([]string, error) {
	if len(m.Params) < lo || len(m.Params) > hi {
		return nil, NewEvaluationError(
			fmt.Sprintf("%s takes %d to %d parameters, got %d", m.Op, lo, hi, len(m.Params)), nil)
	}
	args := make([]string, len(m.Params))
	for i, p := range m.Params {
		s, err := c.translate(p, nil)
		if err != nil {
			return nil, err
		}
		args[i] = s
	}
	return args, nil
}

// propertyOf returns the property a Property or Member node resolves to.
func propertyOf(node ast.Node) *edm.Property {
	switch n := node.(type) {
	case *ast.Property:
		return n.Prop
	case *ast.Member:
		if n.Property != nil {
			return n.Property.Prop
		}
	}
	return nil
}

func hintOf(node ast.Node) *edm.HostHint {
	if p := propertyOf(node); p != nil {
		return p.Hint
	}
	return nil
}
