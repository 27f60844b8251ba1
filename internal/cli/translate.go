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
	"io"

	"github.com/spf13/cobra"

	"github.com/rulego/odatajpql"
	"github.com/rulego/odatajpql/internal/treefile"
)

// TranslateOptions holds flags of the translate command.
type TranslateOptions struct {
	Entity    string
	Fragments bool
}

// NewTranslateCommand creates the translate command.
func NewTranslateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TranslateOptions{}

	cmd := &cobra.Command{
		Use:   "translate <tree.yaml>",
		Short: "Translate a filter tree into a JPQL query",
		Long: `Translate the key, filter and ordering of a YAML tree file into a
SELECT statement and print the positional parameters it binds.

With --fragments the WHERE and ORDER BY fragments are printed on their own
instead, each translated with a parameter table of its own.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Entity, "entity", "e", "", "entity type (overrides the tree file)")
	cmd.Flags().BoolVar(&opts.Fragments, "fragments", false, "print WHERE and ORDER BY fragments only")

	return cmd
}

func runTranslate(rootOpts *RootOptions, opts *TranslateOptions, path string, cmd *cobra.Command) error {
	catalog, tr, err := setup(rootOpts, cmd)
	if err != nil {
		return err
	}
	doc, err := treefile.LoadFile(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "load tree", err)
	}
	tree, err := doc.Resolve(catalog, opts.Entity)
	if err != nil {
		return WrapExitError(ExitCommandError, "resolve tree", err)
	}

	result := &Result{}
	if opts.Fragments {
		frag, err := tr.Where(tree.Filter)
		if err != nil {
			return WrapExitError(ExitFailure, "translate filter", err)
		}
		if result.OrderBy, err = tr.OrderBy(tree.OrderBy); err != nil {
			return WrapExitError(ExitFailure, "translate orderby", err)
		}
		result.Where = frag.Text
		result.Params = params(frag.Params)
	} else {
		stmt, err := tr.Query(odatajpql.Request{
			Entity:  tree.Entity,
			Keys:    tree.Keys,
			Filter:  tree.Filter,
			OrderBy: tree.OrderBy,
		})
		if err != nil {
			return WrapExitError(ExitFailure, "translate", err)
		}
		result.Query = stmt.Text
		result.Params = params(stmt.Params)
	}

	out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
	return out.Write(result, func(w io.Writer) { result.writeText(w, out.Tabular()) })
}
