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

// Package ast defines the parsed filter, order-by and key-predicate tree
// handed to the translator by the upstream query-string parser. Nodes are
// immutable once built; the translator never modifies them.
package ast

import (
	"fmt"

	"github.com/rulego/odatajpql/edm"
)

// NodeKind identifies the variant of a Node.
type NodeKind int

const (
	KindUnary NodeKind = iota + 1
	KindBinary
	KindFilter
	KindProperty
	KindMember
	KindLiteral
	KindMethod
)

func (k NodeKind) String() string {
	switch k {
	case KindUnary:
		return "UNARY"
	case KindBinary:
		return "BINARY"
	case KindFilter:
		return "FILTER"
	case KindProperty:
		return "PROPERTY"
	case KindMember:
		return "MEMBER"
	case KindLiteral:
		return "LITERAL"
	case KindMethod:
		return "METHOD"
	default:
		return fmt.Sprintf("NodeKind(%d)", int(k))
	}
}

// Node is an expression tree node.
type Node interface {
	// NodeKind returns the variant of the node.
	NodeKind() NodeKind
	// ValueKind returns the declared type of the value the node produces.
	ValueKind() edm.ValueKind
}

// Unary applies a unary operator to one operand.
type Unary struct {
	Op      UnaryOp
	Operand Node
}

func NewUnary(op UnaryOp, operand Node) *Unary {
	return &Unary{Op: op, Operand: operand}
}

func (*Unary) NodeKind() NodeKind { return KindUnary }

func (u *Unary) ValueKind() edm.ValueKind {
	if u.Op == Not {
		return edm.KindBoolean
	}
	if u.Operand == nil {
		return edm.KindUnknown
	}
	return u.Operand.ValueKind()
}

// Binary combines two operands with a binary operator.
type Binary struct {
	Op    BinaryOp
	Left  Node
	Right Node
}

func NewBinary(op BinaryOp, left, right Node) *Binary {
	return &Binary{Op: op, Left: left, Right: right}
}

func (*Binary) NodeKind() NodeKind { return KindBinary }

func (b *Binary) ValueKind() edm.ValueKind {
	if b.Op.IsLogical() || b.Op.IsComparison() {
		return edm.KindBoolean
	}
	if b.Left == nil {
		return edm.KindUnknown
	}
	return b.Left.ValueKind()
}

// Filter wraps the root expression of a $filter option.
type Filter struct {
	Expr Node
	// Text is the original filter string, kept for diagnostics.
	Text string
}

func NewFilter(expr Node, text string) *Filter {
	return &Filter{Expr: expr, Text: text}
}

func (*Filter) NodeKind() NodeKind { return KindFilter }

func (f *Filter) ValueKind() edm.ValueKind {
	if f.Expr == nil {
		return edm.KindUnknown
	}
	return f.Expr.ValueKind()
}

// Property references a property of the entity in scope.
type Property struct {
	Prop *edm.Property
}

func NewProperty(p *edm.Property) *Property {
	return &Property{Prop: p}
}

func (*Property) NodeKind() NodeKind { return KindProperty }

func (p *Property) ValueKind() edm.ValueKind {
	if p.Prop == nil {
		return edm.KindUnknown
	}
	return p.Prop.Kind
}

// Member is one navigation step: Path is the expression navigated from
// (a Property or another Member) and Property the step taken.
// Customer/Address/City is Member{Member{Customer, Address}, City}.
type Member struct {
	Path     Node
	Property *Property
}

func NewMember(path Node, prop *Property) *Member {
	return &Member{Path: path, Property: prop}
}

func (*Member) NodeKind() NodeKind { return KindMember }

func (m *Member) ValueKind() edm.ValueKind {
	if m.Property == nil {
		return edm.KindUnknown
	}
	return m.Property.ValueKind()
}

// Literal carries the raw URI literal text and its declared kind.
type Literal struct {
	Text string
	Type edm.ValueKind
}

func NewLiteral(text string, kind edm.ValueKind) *Literal {
	return &Literal{Text: text, Type: kind}
}

func (*Literal) NodeKind() NodeKind { return KindLiteral }

func (l *Literal) ValueKind() edm.ValueKind { return l.Type }

// Method is a built-in function call.
type Method struct {
	Op     MethodOp
	Params []Node
	Result edm.ValueKind
}

// NewMethod builds a method call whose result kind is the method's declared one.
func NewMethod(op MethodOp, params ...Node) *Method {
	return &Method{Op: op, Params: params, Result: op.ResultKind()}
}

func (*Method) NodeKind() NodeKind { return KindMethod }

func (m *Method) ValueKind() edm.ValueKind {
	if m.Result != edm.KindUnknown {
		return m.Result
	}
	return m.Op.ResultKind()
}

// SortOrder is the direction of one ordering clause.
type SortOrder int

const (
	Asc SortOrder = iota
	Desc
)

func (s SortOrder) String() string {
	if s == Desc {
		return "desc"
	}
	return "asc"
}

// Order is one $orderby clause.
type Order struct {
	Expr      Node
	Direction SortOrder
}

// KeyPredicate is one component of an entity key: a property and its
// literal value text.
type KeyPredicate struct {
	Property *edm.Property
	Literal  string
}
