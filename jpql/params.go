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
	"strconv"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/rulego/odatajpql/edm"
	"github.com/rulego/odatajpql/literal"
)

// Parameters maps 1-based positional slots to bound values.
type Parameters map[int]any

// Slots returns the bound slots in ascending order.
func (p Parameters) Slots() []int {
	slots := maps.Keys(p)
	slices.Sort(slots)
	return slots
}

// Values returns the bound values ordered by slot.
func (p Parameters) Values() []any {
	slots := p.Slots()
	values := make([]any, len(slots))
	for i, s := range slots {
		values[i] = p[s]
	}
	return values
}

// Max returns the greatest bound slot, 0 when empty.
func (p Parameters) Max() int {
	top := 0
	for s := range p {
		if s > top {
			top = s
		}
	}
	return top
}

// Clone returns a shallow copy.
func (p Parameters) Clone() Parameters {
	return maps.Clone(p)
}

func placeholder(slot int) string {
	return "?" + strconv.Itoa(slot)
}

// nextSlot is one past the greatest bound slot, so tables seeded by an
// earlier translation continue where it stopped.
func (c *Context) nextSlot() int {
	if len(c.params) > 0 {
		return c.params.Max() + 1
	}
	return c.start
}

// bind coerces literal text, binds it at the next slot and returns the text
// to emit: a ?N placeholder, or the inline rendering for kinds that are
// written into the fragment.
func (c *Context) bind(text string, kind edm.ValueKind, hint *edm.HostHint) (string, error) {
	v, err := literal.Coerce(text, kind, hint, c.converter)
	if err != nil {
		return "", NewEvaluationError(fmt.Sprintf("cannot evaluate %s literal", kind), err)
	}
	if !v.Bound {
		return v.Inline, nil
	}

	slot := c.nextSlot()
	if _, exists := c.params[slot]; !exists {
		c.params[slot] = v.Data
	}
	if v.Inline != "" {
		return v.Inline, nil
	}
	return placeholder(slot), nil
}
