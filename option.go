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

package odatajpql

import (
	"io"
	"os"

	"github.com/rulego/odatajpql/edm"
	"github.com/rulego/odatajpql/literal"
	"github.com/rulego/odatajpql/logger"
)

// Option configures a Translator.
type Option func(*Translator)

// WithLogger sets the logger used for every translation.
//
// Example:
//
//	tr := odatajpql.New(odatajpql.WithLogger(logger.NewLogger(logger.DEBUG, os.Stderr)))
func WithLogger(log logger.Logger) Option {
	return func(t *Translator) {
		if log != nil {
			t.log = log
		}
	}
}

// WithLogLevel logs to stderr at level.
func WithLogLevel(level logger.Level) Option {
	return func(t *Translator) {
		t.log = logger.NewLogger(level, os.Stderr)
	}
}

// WithLogOutput logs to output at level.
//
// Example:
//
//	logFile, _ := os.OpenFile("odatajpql.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
//	tr := odatajpql.New(odatajpql.WithLogOutput(logFile, logger.DEBUG))
func WithLogOutput(output io.Writer, level logger.Level) Option {
	return func(t *Translator) {
		t.log = logger.NewLogger(level, output)
	}
}

// WithDiscardLog disables logging.
func WithDiscardLog() Option {
	return func(t *Translator) {
		t.log = logger.NewDiscardLogger()
	}
}

// WithAlias sets the entity alias fragments are qualified with. Default "e".
func WithAlias(alias string) Option {
	return func(t *Translator) {
		if alias != "" {
			t.alias = alias
		}
	}
}

// WithCatalog sets the metadata catalog QueryEntity resolves entity names in.
func WithCatalog(catalog *edm.Catalog) Option {
	return func(t *Translator) {
		t.catalog = catalog
	}
}

// WithTimeConverter registers the callback turning parsed DateTime and
// DateTimeOffset literals into host values for properties with a host hint.
func WithTimeConverter(conv literal.TimeConverter) Option {
	return func(t *Translator) {
		t.converter = conv
	}
}

// WithStartSlot numbers the first positional parameter of each call from slot.
func WithStartSlot(slot int) Option {
	return func(t *Translator) {
		t.startSlot = slot
	}
}

// WithMaxDepth rejects filters nested deeper than depth. Zero disables the check.
func WithMaxDepth(depth int) Option {
	return func(t *Translator) {
		t.maxDepth = depth
	}
}
