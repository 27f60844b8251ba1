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

package treefile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/odatajpql/ast"
	"github.com/rulego/odatajpql/edm"
)

func catalog(t *testing.T) *edm.Catalog {
	t.Helper()
	c, err := edm.LoadCatalogFile("../../testdata/catalog.yaml")
	require.NoError(t, err)
	return c
}

const document = `
entity: Product
keys: ["ID=5"]
filter:
  binary: and
  left: {binary: eq, left: {property: Name}, right: {literal: "'Foo'"}}
  right:
    unary: not
    operand:
      binary: eq
      left: {method: startswith, params: [{property: Supplier/Address/City}, {literal: "'R'"}]}
      right: {literal: true}
orderby:
  - {property: Name, desc: true}
  - {property: Supplier/Name}
`

func TestResolve(t *testing.T) {
	doc, err := Load(strings.NewReader(document))
	require.NoError(t, err)
	tree, err := doc.Resolve(catalog(t), "")
	require.NoError(t, err)

	assert.Equal(t, "Product", tree.Entity.Name)
	require.Len(t, tree.Keys, 1)
	assert.Equal(t, "ID", tree.Keys[0].Property.Name)
	assert.Equal(t, "5", tree.Keys[0].Literal)

	and, ok := tree.Filter.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, ast.And, and.Op)

	eq := and.Left.(*ast.Binary)
	assert.Equal(t, "Name", eq.Left.(*ast.Property).Prop.Name)
	assert.Equal(t, ast.NewLiteral("'Foo'", edm.KindString), eq.Right)

	not := and.Right.(*ast.Unary)
	inner := not.Operand.(*ast.Binary)
	starts := inner.Left.(*ast.Method)
	assert.Equal(t, ast.StartsWith, starts.Op)
	city := starts.Params[0].(*ast.Member)
	assert.Equal(t, "City", city.Property.Prop.Name)
	assert.Equal(t, "Address", city.Path.(*ast.Member).Property.Prop.Name)
	assert.Equal(t, ast.NewLiteral("true", edm.KindBoolean), inner.Right)

	require.Len(t, tree.OrderBy, 2)
	assert.Equal(t, ast.Desc, tree.OrderBy[0].Direction)
	assert.IsType(t, &ast.Member{}, tree.OrderBy[1].Expr)
}

func TestResolve_Literals(t *testing.T) {
	tests := []struct {
		yaml string
		want *ast.Literal
	}{
		{`{literal: null}`, ast.NewLiteral("null", edm.KindNull)},
		{`{literal: 5}`, ast.NewLiteral("5", edm.KindInt32)},
		{`{literal: 5, type: Edm.Int64}`, ast.NewLiteral("5", edm.KindInt64)},
		{`{literal: "2.5M"}`, ast.NewLiteral("2.5M", edm.KindDecimal)},
		{`{literal: "datetime'2024-01-01T00:00'"}`, ast.NewLiteral("datetime'2024-01-01T00:00'", edm.KindDateTime)},
	}
	for _, tt := range tests {
		t.Run(tt.yaml, func(t *testing.T) {
			doc, err := Load(strings.NewReader("entity: Product\nfilter: " + tt.yaml))
			require.NoError(t, err)
			tree, err := doc.Resolve(catalog(t), "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, tree.Filter)
		})
	}
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name   string
		yaml   string
		entity string
	}{
		{"no entity", "filter: {property: Name}", ""},
		{"unknown entity", "filter: {property: Name}", "Order"},
		{"unknown property", "entity: Product\nfilter: {property: Colour}", ""},
		{"not navigation", "entity: Product\nfilter: {property: Name/Length}", ""},
		{"unknown operator", "entity: Product\nfilter: {binary: like, left: {property: Name}, right: {literal: 1}}", ""},
		{"unknown method", "entity: Product\nfilter: {method: soundex, params: [{property: Name}]}", ""},
		{"missing operand", "entity: Product\nfilter: {binary: eq, left: {property: Name}}", ""},
		{"empty node", "entity: Product\nfilter: {type: Edm.String}", ""},
		{"bad key", "entity: Supplier\nkeys: [DE]", ""},
		{"bad orderby", "entity: Product\norderby: [{property: Nope}]", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Load(strings.NewReader(tt.yaml))
			require.NoError(t, err)
			_, err = doc.Resolve(catalog(t), tt.entity)
			assert.Error(t, err)
		})
	}
}

func TestParseKeys(t *testing.T) {
	c := catalog(t)
	supplier, err := c.Entity("Supplier")
	require.NoError(t, err)

	keys, err := ParseKeys(supplier, []string{"Country='DE'", "Code = 7"})
	require.NoError(t, err)
	require.Len(t, keys, 2)
	assert.Equal(t, "Country", keys[0].Property.Name)
	assert.Equal(t, "'DE'", keys[0].Literal)
	assert.Equal(t, "7", keys[1].Literal)

	product, err := c.Entity("Product")
	require.NoError(t, err)
	keys, err = ParseKeys(product, []string{"42"})
	require.NoError(t, err)
	assert.Equal(t, "ID", keys[0].Property.Name)

	_, err = ParseKeys(product, []string{"Nope=1"})
	assert.ErrorIs(t, err, edm.ErrUnknownProperty)
}

func TestLoad_Empty(t *testing.T) {
	doc, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, doc.Filter)

	_, err = Load(strings.NewReader("filter: ["))
	assert.Error(t, err)
}
