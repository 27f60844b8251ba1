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

	"github.com/rulego/odatajpql/edm"
)

// Select renders a projection of the given properties. Without properties
// the whole entity is selected through its alias.
func Select(props []*edm.Property, alias string) string {
	fields := make([]string, 0, len(props))
	for _, p := range props {
		if p != nil {
			fields = append(fields, alias+"."+p.MappedName())
		}
	}
	if len(fields) == 0 {
		return alias
	}
	return strings.Join(fields, ", ")
}
