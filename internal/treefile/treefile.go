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

// Package treefile reads filter trees written in YAML, resolving property
// paths against a catalog.
//
//	entity: Product
//	keys: ["ID=5"]
//	filter:
//	  binary: and
//	  left: {binary: eq, left: {property: Name}, right: {literal: "'Foo'"}}
//	  right:
//	    binary: eq
//	    left: {method: startswith, params: [{property: Supplier/Name}, {literal: "'A'"}]}
//	    right: {literal: true}
//	orderby:
//	  - {property: Name, desc: true}
//
// Literal kinds are inferred from the URI literal syntax unless type is given.
package treefile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rulego/odatajpql/ast"
	"github.com/rulego/odatajpql/edm"
)

// Node is one expression node. Exactly one of Property, Literal, Binary,
// Unary and Method is set.
type Node struct {
	Property string    `yaml:"property"`
	Literal  yaml.Node `yaml:"literal"`
	Type     string    `yaml:"type"`
	Binary   string    `yaml:"binary"`
	Left     *Node     `yaml:"left"`
	Right    *Node     `yaml:"right"`
	Unary    string    `yaml:"unary"`
	Operand  *Node     `yaml:"operand"`
	Method   string    `yaml:"method"`
	Params   []*Node   `yaml:"params"`
}

// Order is one ordering clause.
type Order struct {
	Property string `yaml:"property"`
	Desc     bool   `yaml:"desc"`
}

// Document is a complete tree file.
type Document struct {
	Entity  string   `yaml:"entity"`
	Keys    []string `yaml:"keys"`
	Filter  *Node    `yaml:"filter"`
	OrderBy []Order  `yaml:"orderby"`
}

// Tree is a document resolved against a catalog.
type Tree struct {
	Entity  *edm.EntityType
	Keys    []ast.KeyPredicate
	Filter  ast.Node
	OrderBy []ast.Order
}

// LoadFile decodes the document at path.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Load decodes a document.
func Load(r io.Reader) (*Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode tree: %w", err)
	}
	return &doc, nil
}

// Resolve builds the expression trees of doc. entity overrides the
// document's entity when not empty.
func (doc *Document) Resolve(catalog *edm.Catalog, entity string) (*Tree, error) {
	if entity == "" {
		entity = doc.Entity
	}
	if entity == "" {
		return nil, fmt.Errorf("no entity type given")
	}
	et, err := catalog.Entity(entity)
	if err != nil {
		return nil, err
	}
	r := resolver{catalog: catalog, entity: et}

	tree := &Tree{Entity: et}
	if tree.Keys, err = ParseKeys(et, doc.Keys); err != nil {
		return nil, err
	}
	if doc.Filter != nil {
		if tree.Filter, err = r.node(doc.Filter); err != nil {
			return nil, fmt.Errorf("filter: %w", err)
		}
	}
	for _, o := range doc.OrderBy {
		expr, err := r.path(o.Property)
		if err != nil {
			return nil, fmt.Errorf("orderby: %w", err)
		}
		dir := ast.Asc
		if o.Desc {
			dir = ast.Desc
		}
		tree.OrderBy = append(tree.OrderBy, ast.Order{Expr: expr, Direction: dir})
	}
	return tree, nil
}

// ParseKeys reads Name=value key components. A bare value is accepted for
// an entity with a single key property.
func ParseKeys(et *edm.EntityType, args []string) ([]ast.KeyPredicate, error) {
	keys := make([]ast.KeyPredicate, 0, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			if len(et.Keys) != 1 || len(args) != 1 {
				return nil, fmt.Errorf("key %q: want Name=value", arg)
			}
			name, value = et.Keys[0], arg
		}
		p, err := et.Property(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		keys = append(keys, ast.KeyPredicate{Property: p, Literal: strings.TrimSpace(value)})
	}
	return keys, nil
}

type resolver struct {
	catalog *edm.Catalog
	entity  *edm.EntityType
}

func (r resolver) node(n *Node) (ast.Node, error) {
	switch {
	case n == nil:
		return nil, fmt.Errorf("missing node")
	case n.Property != "":
		return r.path(n.Property)
	case n.Literal.Kind != 0:
		return literal(n)
	case n.Binary != "":
		op, err := ast.ParseBinaryOp(n.Binary)
		if err != nil {
			return nil, err
		}
		left, err := r.node(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := r.node(n.Right)
		if err != nil {
			return nil, err
		}
		return ast.NewBinary(op, left, right), nil
	case n.Unary != "":
		op, err := ast.ParseUnaryOp(n.Unary)
		if err != nil {
			return nil, err
		}
		operand, err := r.node(n.Operand)
		if err != nil {
			return nil, err
		}
		return ast.NewUnary(op, operand), nil
	case n.Method != "":
		op, err := ast.ParseMethodOp(n.Method)
		if err != nil {
			return nil, err
		}
		params := make([]ast.Node, len(n.Params))
		for i, p := range n.Params {
			if params[i], err = r.node(p); err != nil {
				return nil, err
			}
		}
		return ast.NewMethod(op, params...), nil
	default:
		return nil, fmt.Errorf("empty node")
	}
}

func literal(n *Node) (ast.Node, error) {
	text := n.Literal.Value
	if n.Type != "" {
		kind, err := edm.ParseValueKind(n.Type)
		if err != nil {
			return nil, err
		}
		return ast.NewLiteral(text, kind), nil
	}
	lit, err := edm.ParseLiteral(text)
	if err != nil {
		return nil, err
	}
	return ast.NewLiteral(text, lit.Kind), nil
}

// path resolves A/B/C into a Property or a Member chain, following
// navigation properties through the catalog.
func (r resolver) path(p string) (ast.Node, error) {
	segments := strings.Split(p, "/")
	et := r.entity
	var node ast.Node
	for i, seg := range segments {
		prop, err := et.Property(strings.TrimSpace(seg))
		if err != nil {
			return nil, err
		}
		if node == nil {
			node = ast.NewProperty(prop)
		} else {
			node = ast.NewMember(node, ast.NewProperty(prop))
		}
		if i == len(segments)-1 {
			break
		}
		if !prop.Navigation {
			return nil, fmt.Errorf("%s: %s is not a navigation property", p, seg)
		}
		if et, err = r.catalog.Entity(prop.Target); err != nil {
			return nil, err
		}
	}
	return node, nil
}
