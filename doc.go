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

/*
Package odatajpql translates parsed OData $filter, $orderby and key
predicates into JPQL fragments with positional parameters.

The expression tree (package ast) comes from an upstream query-string
parser and refers to property metadata (package edm). Translation produces
query text using ?N placeholders plus the parameter table to bind:

	tr := odatajpql.New()
	frag, err := tr.Where(ast.NewBinary(ast.Eq,
		ast.NewProperty(name),
		ast.NewLiteral("'Foo'", edm.KindString)))
	// frag.Text   (e.Name LIKE ?1 ESCAPE '\')
	// frag.Params {1: "Foo"}

Query assembles a full statement from key, filter and ordering:

	stmt, err := tr.Query(odatajpql.Request{
		Entity:  product,
		Keys:    []ast.KeyPredicate{{Property: id, Literal: "5"}},
		OrderBy: []ast.Order{{Expr: ast.NewProperty(name), Direction: ast.Desc}},
	})
	// SELECT e FROM Product e WHERE e.ID = ?1 ORDER BY e.Name DESC

The same filter can be compiled for in-memory evaluation with Condition.

Packages:

  - edm: value kinds, host type hints, property metadata and YAML catalogs
  - ast: the expression tree
  - literal: literal coercion and LIKE escaping
  - jpql: the translator core
  - condition: in-memory evaluation with expr-lang
  - logger: leveled logging
*/
package odatajpql
