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

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/rulego/odatajpql/jpql"
	"github.com/rulego/odatajpql/utils/table"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0
	ExitFailure      = 1 // translation or evaluation failed
	ExitCommandError = 2 // bad flags, unreadable files
)

// ExitError carries the process exit code of a failed command.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps err with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error, ExitFailure by default.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// Param is one bound parameter as printed.
type Param struct {
	Slot  int    `json:"slot"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// Result is the output of translate and keys.
type Result struct {
	Query   string  `json:"query,omitempty"`
	Where   string  `json:"where,omitempty"`
	OrderBy string  `json:"orderby,omitempty"`
	Params  []Param `json:"params"`
}

func params(p jpql.Parameters) []Param {
	out := make([]Param, 0, len(p))
	for _, slot := range p.Slots() {
		v := p[slot]
		out = append(out, Param{Slot: slot, Type: fmt.Sprintf("%T", v), Value: v})
	}
	return out
}

// OutputFormatter writes results as text or JSON.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// Tabular reports whether text output should be laid out as tables.
func (f *OutputFormatter) Tabular() bool {
	return f.Format == "table"
}

// Write prints v as indented JSON, or through text in the other formats.
func (f *OutputFormatter) Write(v any, text func(w io.Writer)) error {
	if f.Format == "json" {
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(f.Writer)
	return nil
}

func (r *Result) writeText(w io.Writer, tabular bool) {
	if r.Query != "" {
		fmt.Fprintln(w, r.Query)
	}
	if r.Where != "" {
		fmt.Fprintf(w, "where: %s\n", r.Where)
	}
	if r.OrderBy != "" {
		fmt.Fprintf(w, "orderby: %s\n", r.OrderBy)
	}
	if tabular {
		rows := make([][]string, 0, len(r.Params))
		for _, p := range r.Params {
			rows = append(rows, []string{fmt.Sprintf("?%d", p.Slot), p.Type, fmt.Sprintf("%v", p.Value)})
		}
		table.Write(w, []string{"slot", "type", "value"}, rows)
		return
	}
	for _, p := range r.Params {
		fmt.Fprintf(w, "?%d = %v (%s)\n", p.Slot, p.Value, p.Type)
	}
}
