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

// Package table renders rows as a bordered text table for terminal output.
package table

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const minWidth = 4

// Write renders rows under columns. Short rows leave trailing cells blank.
func Write(w io.Writer, columns []string, rows [][]string) {
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = width(col)
		for _, row := range rows {
			if i < len(row) && width(row[i]) > widths[i] {
				widths[i] = width(row[i])
			}
		}
		if widths[i] < minWidth {
			widths[i] = minWidth
		}
	}

	border(w, widths)
	line(w, widths, columns)
	border(w, widths)
	for _, row := range rows {
		line(w, widths, row)
	}
	border(w, widths)
	fmt.Fprintf(w, "(%d rows)\n", len(rows))
}

// FromMaps lays out map rows as cells. Columns named in order come first,
// the remaining keys follow sorted.
func FromMaps(data []map[string]any, order []string) ([]string, [][]string) {
	seen := make(map[string]bool)
	for _, row := range data {
		for k := range row {
			seen[k] = true
		}
	}

	columns := make([]string, 0, len(seen))
	for _, col := range order {
		if seen[col] {
			columns = append(columns, col)
			delete(seen, col)
		}
	}
	rest := maps.Keys(seen)
	slices.Sort(rest)
	columns = append(columns, rest...)

	rows := make([][]string, 0, len(data))
	for _, row := range data {
		cells := make([]string, len(columns))
		for i, col := range columns {
			if v, ok := row[col]; ok && v != nil {
				cells[i] = fmt.Sprintf("%v", v)
			}
		}
		rows = append(rows, cells)
	}
	return columns, rows
}

func border(w io.Writer, widths []int) {
	var b strings.Builder
	b.WriteByte('+')
	for _, n := range widths {
		b.WriteString(strings.Repeat("-", n+2))
		b.WriteByte('+')
	}
	fmt.Fprintln(w, b.String())
}

func line(w io.Writer, widths []int, cells []string) {
	var b strings.Builder
	b.WriteByte('|')
	for i, n := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteByte(' ')
		b.WriteString(cell)
		b.WriteString(strings.Repeat(" ", n-width(cell)))
		b.WriteString(" |")
	}
	fmt.Fprintln(w, b.String())
}

func width(s string) int {
	return utf8.RuneCountInString(s)
}
