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
	"strings"

	"github.com/rulego/odatajpql/ast"
	"github.com/rulego/odatajpql/edm"
)

const orderSeparator = " , "

// OrderBy renders $orderby clauses for alias. Navigation paths are resolved
// with a context of their own, so ordering never shares a filter's
// parameter slots. opts configure those contexts.
func OrderBy(orders []ast.Order, alias string, opts ...ContextOption) (string, error) {
	var builder strings.Builder
	for i, o := range orders {
		expr := o.Expr
		if f, ok := expr.(*ast.Filter); ok {
			expr = f.Expr
		}

		var (
			text string
			err  error
		)
		switch e := expr.(type) {
		case *ast.Member:
			text, err = NewContext(alias, opts...).translate(e, nil)
		case *ast.Property:
			if e.Prop == nil {
				err = NewEvaluationError("property without mapping", nil)
			} else {
				text = alias + "." + e.Prop.MappedName()
			}
		case nil:
			err = NewEvaluationError("order clause without expression", nil)
		default:
			err = NewUnsupportedOperationError("order by expression", e.NodeKind().String())
		}
		if err != nil {
			return "", err
		}

		if i > 0 {
			builder.WriteString(orderSeparator)
		}
		builder.WriteString(text)
		if o.Direction == ast.Desc {
			builder.WriteString(" DESC")
		}
	}
	return builder.String(), nil
}

// KeyOrderBy renders the key properties as a default ordering.
func KeyOrderBy(keys []*edm.Property, alias string) string {
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		if k != nil {
			names = append(names, alias+"."+k.MappedName())
		}
	}
	return strings.Join(names, orderSeparator)
}
