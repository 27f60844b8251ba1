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
Package jpql translates filter, order-by and key-predicate expression trees
into JPQL fragments with positional parameters.

A translation walks an ast.Node tree and produces text such as

	(e.Name LIKE ?1 ESCAPE '\')

together with the parameter table {1: "Foo"} the statement executor binds
to the ?N placeholders. String and Guid equality is rendered as LIKE with
escaped wildcards, comparisons with null as IS [NOT] null, and
startswith/endswith compared with a boolean literal fold into a single
pattern predicate.

All per-call state lives in a Context. Compose calls by reusing one Context,
or by seeding a new one with WithParameters; slots continue after the
greatest bound slot.

	frag, err := jpql.Where(filter, "e")
	if err != nil {
		return err
	}
	rows, err := db.Query(frag.Text, frag.Params.Values()...)
*/
package jpql
