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

package odatajpql

import (
	"fmt"
	"strings"

	"github.com/rulego/odatajpql/ast"
	"github.com/rulego/odatajpql/condition"
	"github.com/rulego/odatajpql/edm"
	"github.com/rulego/odatajpql/jpql"
	"github.com/rulego/odatajpql/literal"
	"github.com/rulego/odatajpql/logger"
)

// DefaultAlias qualifies properties unless WithAlias says otherwise.
const DefaultAlias = "e"

// Translator turns parsed $filter, $orderby and key predicates into JPQL.
// It holds configuration only and is safe for concurrent use; every call
// gets a parameter table of its own.
//
// Example:
//
//	tr := odatajpql.New(odatajpql.WithAlias("o"))
//	frag, err := tr.Where(filter)
//	// frag.Text   (o.Name LIKE ?1 ESCAPE '\')
//	// frag.Params {1: "Foo"}
type Translator struct {
	alias     string
	catalog   *edm.Catalog
	log       logger.Logger
	converter literal.TimeConverter
	startSlot int
	maxDepth  int
}

// New creates a Translator.
func New(options ...Option) *Translator {
	t := &Translator{
		alias: DefaultAlias,
		log:   logger.GetDefault(),
	}
	for _, option := range options {
		option(t)
	}
	return t
}

// Alias returns the configured entity alias.
func (t *Translator) Alias() string {
	return t.alias
}

func (t *Translator) contextOptions() []jpql.ContextOption {
	opts := []jpql.ContextOption{
		jpql.WithLogger(t.log),
		jpql.WithMaxDepth(t.maxDepth),
	}
	if t.converter != nil {
		opts = append(opts, jpql.WithTimeConverter(t.converter))
	}
	if t.startSlot > 0 {
		opts = append(opts, jpql.WithStartSlot(t.startSlot))
	}
	return opts
}

// NewContext creates a translation context with the translator's settings,
// for callers composing several fragments over one parameter table.
func (t *Translator) NewContext(opts ...jpql.ContextOption) *jpql.Context {
	return jpql.NewContext(t.alias, append(t.contextOptions(), opts...)...)
}

// Where translates a filter expression.
func (t *Translator) Where(filter ast.Node) (*jpql.Fragment, error) {
	return jpql.Where(filter, t.alias, t.contextOptions()...)
}

// OrderBy translates ordering clauses.
func (t *Translator) OrderBy(orders []ast.Order) (string, error) {
	return jpql.OrderBy(orders, t.alias, t.contextOptions()...)
}

// KeyPredicates translates an entity key; nil when the key is empty.
func (t *Translator) KeyPredicates(keys []ast.KeyPredicate) (*jpql.Fragment, error) {
	return jpql.KeyPredicates(keys, t.alias, t.contextOptions()...)
}

// Condition compiles filter for in-memory evaluation.
func (t *Translator) Condition(filter ast.Node) (*condition.ExprCondition, error) {
	cond, err := condition.Compile(filter)
	if err != nil {
		t.log.Warn("compile condition failed: %v", err)
		return nil, err
	}
	return cond, nil
}

// Request describes one read of an entity set.
type Request struct {
	Entity *edm.EntityType
	// Select lists the projected properties; empty selects the entity.
	Select  []*edm.Property
	Keys    []ast.KeyPredicate
	Filter  ast.Node
	OrderBy []ast.Order
	// KeyOrder orders by the entity key when OrderBy is empty.
	KeyOrder bool
}

// Statement is a complete query and the parameters bound to its placeholders.
type Statement struct {
	Text   string
	Params jpql.Parameters
}

// Query assembles
//
//	SELECT <select> FROM <Entity> <alias> [WHERE <key> [AND <filter>]] [ORDER BY <orderby>]
//
// Key and filter share one parameter table, so filter slots continue after
// the key's.
func (t *Translator) Query(req Request) (*Statement, error) {
	if req.Entity == nil {
		return nil, jpql.NewEvaluationError("query without entity type", nil)
	}
	c := t.NewContext()

	var conds []string
	if len(req.Keys) > 0 {
		key, err := c.KeyPredicates(req.Keys)
		if err != nil {
			return nil, err
		}
		conds = append(conds, key)
	}
	filter, err := c.Where(req.Filter)
	if err != nil {
		return nil, err
	}
	if filter != "" {
		conds = append(conds, filter)
	}

	order, err := t.OrderBy(req.OrderBy)
	if err != nil {
		return nil, err
	}
	if order == "" && req.KeyOrder {
		order = jpql.KeyOrderBy(req.Entity.KeyProperties(), t.alias)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "SELECT %s FROM %s %s", jpql.Select(req.Select, t.alias), req.Entity.Name, t.alias)
	if len(conds) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(conds, " AND "))
	}
	if order != "" {
		b.WriteString(" ORDER BY ")
		b.WriteString(order)
	}

	stmt := &Statement{Text: b.String(), Params: c.Parameters()}
	t.log.Debug("query %s -> %s %v", req.Entity.Name, stmt.Text, stmt.Params)
	return stmt, nil
}

// QueryEntity is Query with the entity type looked up by name in the catalog.
func (t *Translator) QueryEntity(entity string, req Request) (*Statement, error) {
	if t.catalog == nil {
		return nil, jpql.NewEvaluationError("no catalog configured", nil)
	}
	et, err := t.catalog.Entity(entity)
	if err != nil {
		return nil, jpql.NewEvaluationError("lookup entity type", err)
	}
	req.Entity = et
	return t.Query(req)
}
