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

// KeyPredicates translates entity key components into an AND-joined
// predicate. An empty key yields a nil fragment: the entity set is
// unconstrained.
func KeyPredicates(keys []ast.KeyPredicate, alias string, opts ...ContextOption) (*Fragment, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	c := NewContext(alias, opts...)
	text, err := c.KeyPredicates(keys)
	if err != nil {
		return nil, err
	}
	return &Fragment{Text: text, Params: c.params}, nil
}

// KeyPredicates binds the key components into the context's parameter
// table, slots advancing across the components in order.
func (c *Context) KeyPredicates(keys []ast.KeyPredicate) (string, error) {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		part, err := c.keyPredicate(k)
		if err != nil {
			c.log.Warn("translate key failed: %v", err)
			return "", err
		}
		parts = append(parts, part)
	}
	text := strings.Join(parts, " AND ")
	c.log.Debug("key %s -> %s %v", c.alias, text, c.params)
	return text, nil
}

func (c *Context) keyPredicate(k ast.KeyPredicate) (string, error) {
	p := k.Property
	if p == nil {
		return "", NewEvaluationError("key component without property", nil)
	}
	if p.Navigation {
		return "", NewUnsupportedOperationError("navigation key", p.Name)
	}
	value, err := c.bind(edm.UnwrapLiteral(k.Literal, p.Kind), p.Kind, p.Hint)
	if err != nil {
		return "", err
	}
	name := c.alias + "." + p.MappedName()
	if p.Kind.IsStringCompatible() && !p.IsEnum() {
		return fmt.Sprintf("%s LIKE %s%s", name, value, likeEscape), nil
	}
	return name + " = " + value, nil
}
