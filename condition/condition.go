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

package condition

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/google/uuid"

	"github.com/rulego/odatajpql/ast"
	"github.com/rulego/odatajpql/edm"
	"github.com/rulego/odatajpql/jpql"
	"github.com/rulego/odatajpql/literal"
	"github.com/rulego/odatajpql/utils/cast"
)

// entityVar is the environment variable holding the evaluated entity.
const entityVar = "entity"

// Condition evaluates a filter against one materialised entity.
type Condition interface {
	Evaluate(entity map[string]any) (bool, error)
}

// ExprCondition is a filter tree compiled into an expr-lang program.
type ExprCondition struct {
	program *vm.Program
	source  string
	values  map[string]any
}

// Compile turns a filter tree into an ExprCondition. Entities are maps keyed
// by external property names; navigation properties hold nested maps.
func Compile(node ast.Node) (*ExprCondition, error) {
	c := &compiler{values: make(map[string]any)}
	source, err := c.compile(node)
	if err != nil {
		return nil, err
	}

	options := []expr.Option{
		expr.Function("field", field),
		expr.Function("startswith", func(params ...any) (any, error) {
			s, p, err := twoStrings("startswith", params)
			if err != nil {
				return nil, err
			}
			return strings.HasPrefix(s, p), nil
		}),
		expr.Function("endswith", func(params ...any) (any, error) {
			s, p, err := twoStrings("endswith", params)
			if err != nil {
				return nil, err
			}
			return strings.HasSuffix(s, p), nil
		}),
		expr.Function("substringof", func(params ...any) (any, error) {
			needle, haystack, err := twoStrings("substringof", params)
			if err != nil {
				return nil, err
			}
			return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle)), nil
		}),
		expr.Function("tolower", func(params ...any) (any, error) {
			if len(params) != 1 {
				return nil, fmt.Errorf("tolower takes 1 parameter")
			}
			return strings.ToLower(cast.ToString(params[0])), nil
		}),
		expr.Function("toupper", func(params ...any) (any, error) {
			if len(params) != 1 {
				return nil, fmt.Errorf("toupper takes 1 parameter")
			}
			return strings.ToUpper(cast.ToString(params[0])), nil
		}),
		expr.Function("substring", substring),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	}

	program, err := expr.Compile(source, options...)
	if err != nil {
		return nil, jpql.NewEvaluationError("compile filter", err)
	}
	return &ExprCondition{program: program, source: source, values: c.values}, nil
}

// Source returns the generated expression, literals shown by variable name.
func (ec *ExprCondition) Source() string {
	return ec.source
}

// Evaluate runs the filter against entity.
func (ec *ExprCondition) Evaluate(entity map[string]any) (bool, error) {
	env := make(map[string]any, len(ec.values)+1)
	for k, v := range ec.values {
		env[k] = v
	}
	env[entityVar] = entity

	result, err := expr.Run(ec.program, env)
	if err != nil {
		return false, err
	}
	b, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("filter produced %T, want bool", result)
	}
	return b, nil
}

// Matches is Evaluate with failures counted as a mismatch.
func (ec *ExprCondition) Matches(entity map[string]any) bool {
	ok, err := ec.Evaluate(entity)
	return err == nil && ok
}

// Filter returns the entities the condition accepts, in order.
func Filter(cond Condition, entities []map[string]any) ([]map[string]any, error) {
	var out []map[string]any
	for _, e := range entities {
		ok, err := cond.Evaluate(e)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, e)
		}
	}
	return out, nil
}

type compiler struct {
	values map[string]any
}

func (c *compiler) compile(node ast.Node) (string, error) {
	switch n := node.(type) {
	case *ast.Filter:
		return c.compile(n.Expr)
	case *ast.Unary:
		operand, err := c.compile(n.Operand)
		if err != nil {
			return "", err
		}
		switch n.Op {
		case ast.Not:
			return "not (" + operand + ")", nil
		case ast.Minus:
			return "-(" + operand + ")", nil
		}
		return "", jpql.NewUnsupportedOperationError("unary operator", n.Op.String())
	case *ast.Binary:
		return c.binary(n)
	case *ast.Property, *ast.Member:
		path, err := fieldPath(n)
		if err != nil {
			return "", err
		}
		quoted := make([]string, len(path))
		for i, p := range path {
			quoted[i] = strconv.Quote(p)
		}
		return "field(" + entityVar + ", " + strings.Join(quoted, ", ") + ")", nil
	case *ast.Literal:
		v, err := value(n.Text, n.Type)
		if err != nil {
			return "", jpql.NewEvaluationError(fmt.Sprintf("cannot evaluate %s literal", n.Type), err)
		}
		name := "p" + strconv.Itoa(len(c.values)+1)
		c.values[name] = v
		return name, nil
	case *ast.Method:
		return c.method(n)
	case nil:
		return "", jpql.NewEvaluationError("missing operand", nil)
	default:
		return "", jpql.NewUnsupportedOperationError("expression kind", node.NodeKind().String())
	}
}

var binaryOps = map[ast.BinaryOp]string{
	ast.And: "and",
	ast.Or:  "or",
	ast.Eq:  "==",
	ast.Ne:  "!=",
	ast.Lt:  "<",
	ast.Le:  "<=",
	ast.Gt:  ">",
	ast.Ge:  ">=",
}

func (c *compiler) binary(n *ast.Binary) (string, error) {
	op, ok := binaryOps[n.Op]
	if !ok {
		return "", jpql.NewUnsupportedOperationError("binary operator", n.Op.String())
	}
	left, err := c.compile(n.Left)
	if err != nil {
		return "", err
	}
	right, err := c.compile(n.Right)
	if err != nil {
		return "", err
	}
	return "(" + left + " " + op + " " + right + ")", nil
}

var methodArity = map[ast.MethodOp][2]int{
	ast.StartsWith:  {2, 2},
	ast.EndsWith:    {2, 2},
	ast.SubstringOf: {2, 2},
	ast.ToLower:     {1, 1},
	ast.ToUpper:     {1, 1},
	ast.Substring:   {2, 3},
}

func (c *compiler) method(m *ast.Method) (string, error) {
	arity, ok := methodArity[m.Op]
	if !ok {
		return "", jpql.NewUnsupportedOperationError("method", m.Op.String())
	}
	if len(m.Params) < arity[0] || len(m.Params) > arity[1] {
		return "", jpql.NewEvaluationError(
			fmt.Sprintf("%s takes %d to %d parameters, got %d", m.Op, arity[0], arity[1], len(m.Params)), nil)
	}
	args := make([]string, len(m.Params))
	for i, p := range m.Params {
		s, err := c.compile(p)
		if err != nil {
			return "", err
		}
		args[i] = s
	}
	return m.Op.String() + "(" + strings.Join(args, ", ") + ")", nil
}

// fieldPath lists the external property names of a Property or Member chain.
func fieldPath(node ast.Node) ([]string, error) {
	switch n := node.(type) {
	case *ast.Property:
		if n.Prop == nil {
			return nil, jpql.NewEvaluationError("property without mapping", nil)
		}
		return []string{n.Prop.Name}, nil
	case *ast.Member:
		if n.Property == nil || n.Property.Prop == nil {
			return nil, jpql.NewEvaluationError("member without property mapping", nil)
		}
		head, err := fieldPath(n.Path)
		if err != nil {
			return nil, err
		}
		return append(head, n.Property.Prop.Name), nil
	case nil:
		return nil, jpql.NewEvaluationError("member without path", nil)
	default:
		return nil, jpql.NewUnsupportedOperationError("member path", node.NodeKind().String())
	}
}

// value converts literal text into the Go value compared in memory.
// Time literals compare as HH:MM:SS text.
func value(text string, kind edm.ValueKind) (any, error) {
	s := edm.UnwrapLiteral(text, kind)
	switch {
	case kind == edm.KindNull:
		return nil, nil
	case kind == edm.KindBoolean:
		return strconv.ParseBool(s)
	case kind == edm.KindString:
		return s, nil
	case kind == edm.KindGuid:
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		return id.String(), nil
	case kind.IsDateTime():
		return literal.ParseDateTime(s, kind)
	case kind == edm.KindTime:
		t, err := literal.ParseTime(s)
		if err != nil {
			return nil, err
		}
		return t.String(), nil
	case kind == edm.KindDecimal || kind == edm.KindDouble || kind == edm.KindSingle:
		return cast.ToFloat64E(s)
	case kind.IsNumeric():
		return cast.ToInt64E(s)
	default:
		return nil, fmt.Errorf("unsupported value kind %s", kind)
	}
}

func field(params ...any) (any, error) {
	if len(params) < 2 {
		return nil, fmt.Errorf("field takes an entity and a path")
	}
	cur := params[0]
	for _, p := range params[1:] {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, nil
		}
		cur = m[cast.ToString(p)]
	}
	return cur, nil
}

func twoStrings(name string, params []any) (string, string, error) {
	if len(params) != 2 {
		return "", "", fmt.Errorf("%s takes 2 parameters", name)
	}
	return cast.ToString(params[0]), cast.ToString(params[1]), nil
}

// substring follows the zero-based protocol semantics, clamped to the text.
func substring(params ...any) (any, error) {
	if len(params) < 2 || len(params) > 3 {
		return nil, fmt.Errorf("substring takes 2 or 3 parameters")
	}
	runes := []rune(cast.ToString(params[0]))
	start, err := cast.ToFloat(params[1])
	if err != nil {
		return nil, err
	}
	from := clamp(int(start), len(runes))
	to := len(runes)
	if len(params) == 3 {
		length, err := cast.ToFloat(params[2])
		if err != nil {
			return nil, err
		}
		to = clamp(from+int(length), len(runes))
	}
	return string(runes[from:to]), nil
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}
