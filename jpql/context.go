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
	"github.com/rulego/odatajpql/literal"
	"github.com/rulego/odatajpql/logger"
)

// Context carries the state of one top-level translation: the table alias,
// the parameter table being built and the method-rewrite flag. It is passed
// by reference through the whole recursive walk and must not be shared
// between concurrent translations.
type Context struct {
	alias     string
	start     int
	params    Parameters
	converter literal.TimeConverter
	log       logger.Logger
	maxDepth  int
	depth     int

	// rewrite is set by a binary eq/ne whose left operand is a substringof
	// call; the call then omits its own "= true" comparison.
	rewrite bool
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithStartSlot sets the slot used for the first parameter when the table is empty.
func WithStartSlot(slot int) ContextOption {
	return func(c *Context) {
		if slot > 0 {
			c.start = slot
		}
	}
}

// WithParameters seeds the parameter table, e.g. to continue the slot
// numbering of an earlier translation. The map is copied.
func WithParameters(params Parameters) ContextOption {
	return func(c *Context) {
		for slot, v := range params {
			c.params[slot] = v
		}
	}
}

// WithTimeConverter registers the date/time host conversion callback.
func WithTimeConverter(conv literal.TimeConverter) ContextOption {
	return func(c *Context) {
		c.converter = conv
	}
}

// WithLogger sets the logger; the package default is used otherwise.
func WithLogger(log logger.Logger) ContextOption {
	return func(c *Context) {
		if log != nil {
			c.log = log
		}
	}
}

// WithMaxDepth bounds the nesting depth of translated expressions.
// Zero means unbounded.
func WithMaxDepth(depth int) ContextOption {
	return func(c *Context) {
		c.maxDepth = depth
	}
}

// NewContext creates a translation context for alias.
func NewContext(alias string, opts ...ContextOption) *Context {
	c := &Context{
		alias:  alias,
		start:  1,
		params: make(Parameters),
		log:    logger.GetDefault(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Alias returns the table alias fragments are qualified with.
func (c *Context) Alias() string {
	return c.alias
}

// Parameters returns the parameter table built so far. The map is owned by
// the context; callers composing translations should not modify it.
func (c *Context) Parameters() Parameters {
	return c.params
}

func (c *Context) takeRewrite() bool {
	r := c.rewrite
	c.rewrite = false
	return r
}
