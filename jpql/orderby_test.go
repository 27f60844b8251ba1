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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/odatajpql/ast"
	"github.com/rulego/odatajpql/edm"
	"github.com/rulego/odatajpql/logger"
)

func TestOrderBy(t *testing.T) {
	tests := []struct {
		name   string
		orders []ast.Order
		want   string
	}{
		{"empty", nil, ""},
		{"descending property", []ast.Order{{Expr: prop(propName), Direction: ast.Desc}}, "e.Name DESC"},
		{"ascending mapped property", []ast.Order{{Expr: prop(propCategory)}}, "e.category"},
		{
			name: "several clauses",
			orders: []ast.Order{
				{Expr: prop(propName), Direction: ast.Desc},
				{Expr: customerCity()},
				{Expr: ast.NewFilter(prop(propID), "ID"), Direction: ast.Desc},
			},
			want: "e.Name DESC , e.Customer.address.city , e.ID DESC",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OrderBy(tt.orders, "e")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrderBy_Errors(t *testing.T) {
	_, err := OrderBy([]ast.Order{{Expr: ast.NewMethod(ast.ToLower, prop(propName))}}, "e")
	assert.ErrorIs(t, err, ErrUnsupportedOperation)

	_, err = OrderBy([]ast.Order{{Expr: ast.NewProperty(nil)}}, "e")
	assert.ErrorIs(t, err, ErrEvaluation)

	_, err = OrderBy([]ast.Order{{}}, "e")
	assert.ErrorIs(t, err, ErrEvaluation)

	broken := ast.NewMember(ast.NewLiteral("1", edm.KindInt32), prop(propCity))
	_, err = OrderBy([]ast.Order{{Expr: broken}}, "e", WithLogger(logger.NewDiscardLogger()))
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
}

func TestKeyOrderBy(t *testing.T) {
	assert.Equal(t, "", KeyOrderBy(nil, "e"))
	assert.Equal(t, "e.ID", KeyOrderBy([]*edm.Property{propID}, "e"))
	assert.Equal(t, "e.ID , e.category", KeyOrderBy([]*edm.Property{propID, nil, propCategory}, "e"))
}

func TestSelect(t *testing.T) {
	assert.Equal(t, "e", Select(nil, "e"))
	assert.Equal(t, "e.Name", Select([]*edm.Property{propName}, "e"))
	assert.Equal(t, "e.ID, e.Name, e.category", Select([]*edm.Property{propID, propName, propCategory}, "e"))
}
