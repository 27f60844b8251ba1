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
Package condition evaluates filter trees in memory.

A tree is compiled once into an expr-lang program and then applied to
entities held as maps keyed by external property names, with nested maps
for navigation properties. Missing properties evaluate to nil.

	cond, err := condition.Compile(filter)
	if err != nil {
		return err
	}
	matched, err := condition.Filter(cond, rows)

Supported: and, or, not, unary minus, eq, ne, lt, le, gt, ge, and the
methods startswith, endswith, substringof (case-insensitive), tolower,
toupper and substring. Anything else fails to compile with an
unsupported-operation error, the same taxonomy the jpql package uses.
*/
package condition
