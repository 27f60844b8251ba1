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

	"github.com/rulego/odatajpql/internal/treefile"
)

// NewKeysCommand creates the keys command.
func NewKeysCommand(rootOpts *RootOptions) *cobra.Command {
	var entity string

	cmd := &cobra.Command{
		Use:   "keys --entity <type> <Name=value>...",
		Short: "Translate an entity key into a predicate",
		Long: `Translate key components such as ID=5 or Name='Foo' into the
AND-joined key predicate. A bare value is accepted for single-key entities.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, tr, err := setup(rootOpts, cmd)
			if err != nil {
				return err
			}
			et, err := catalog.Entity(entity)
			if err != nil {
				return WrapExitError(ExitCommandError, "entity", err)
			}
			keys, err := treefile.ParseKeys(et, args)
			if err != nil {
				return WrapExitError(ExitCommandError, "keys", err)
			}
			frag, err := tr.KeyPredicates(keys)
			if err != nil {
				return WrapExitError(ExitFailure, "translate keys", err)
			}

			result := &Result{Where: frag.Text, Params: params(frag.Params)}
			out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			return out.Write(result, func(w io.Writer) { result.writeText(w, out.Tabular()) })
		},
	}

	cmd.Flags().StringVarP(&entity, "entity", "e", "", "entity type")
	_ = cmd.MarkFlagRequired("entity")

	return cmd
}
