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
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rulego/odatajpql/condition"
	"github.com/rulego/odatajpql/internal/treefile"
	"github.com/rulego/odatajpql/utils/table"
)

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	var entity string

	cmd := &cobra.Command{
		Use:   "eval <tree.yaml> <rows.yaml>",
		Short: "Apply a filter tree to rows in memory",
		Long: `Evaluate the filter of a tree file against a YAML list of rows keyed
by property name and print the rows that match.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, tr, err := setup(rootOpts, cmd)
			if err != nil {
				return err
			}
			doc, err := treefile.LoadFile(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "load tree", err)
			}
			tree, err := doc.Resolve(catalog, entity)
			if err != nil {
				return WrapExitError(ExitCommandError, "resolve tree", err)
			}
			rows, err := loadRows(args[1])
			if err != nil {
				return WrapExitError(ExitCommandError, "load rows", err)
			}

			matched := rows
			if tree.Filter != nil {
				cond, err := tr.Condition(tree.Filter)
				if err != nil {
					return WrapExitError(ExitFailure, "compile filter", err)
				}
				if matched, err = condition.Filter(cond, rows); err != nil {
					return WrapExitError(ExitFailure, "evaluate filter", err)
				}
			}
			if matched == nil {
				matched = []map[string]any{}
			}

			out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			return out.Write(matched, func(w io.Writer) {
				fmt.Fprintf(w, "%d of %d rows match\n", len(matched), len(rows))
				if out.Tabular() {
					columns, cells := table.FromMaps(matched, tree.Entity.Keys)
					table.Write(w, columns, cells)
					return
				}
				if len(matched) > 0 {
					enc := yaml.NewEncoder(w)
					_ = enc.Encode(matched)
					_ = enc.Close()
				}
			})
		},
	}

	cmd.Flags().StringVarP(&entity, "entity", "e", "", "entity type (overrides the tree file)")

	return cmd
}

func loadRows(path string) ([]map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rows []map[string]any
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
