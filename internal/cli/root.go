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

// Package cli implements the odatajpql command line.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rulego/odatajpql"
	"github.com/rulego/odatajpql/edm"
	"github.com/rulego/odatajpql/logger"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Catalog  string
	Alias    string
	Format   string // "json" | "text" | "table"
	LogLevel string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "table"}

// NewRootCommand creates the root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "odatajpql",
		Short: "Translate OData filter trees to JPQL",
		Long: `Translate OData $filter, $orderby and key predicates into JPQL
fragments with positional parameters, using a YAML metadata catalog.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if _, err := logger.ParseLevel(opts.LogLevel); err != nil {
				return err
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.Catalog, "catalog", "c", "catalog.yaml", "metadata catalog file")
	cmd.PersistentFlags().StringVar(&opts.Alias, "alias", odatajpql.DefaultAlias, "entity alias")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|table)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "off", "log level (debug|info|warn|error|off)")

	cmd.AddCommand(NewTranslateCommand(opts))
	cmd.AddCommand(NewKeysCommand(opts))
	cmd.AddCommand(NewEvalCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// setup loads the catalog and builds a translator logging to stderr.
func setup(opts *RootOptions, cmd *cobra.Command) (*edm.Catalog, *odatajpql.Translator, error) {
	catalog, err := edm.LoadCatalogFile(opts.Catalog)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "load catalog", err)
	}
	level, err := logger.ParseLevel(opts.LogLevel)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "log level", err)
	}
	tr := odatajpql.New(
		odatajpql.WithCatalog(catalog),
		odatajpql.WithAlias(opts.Alias),
		odatajpql.WithLogOutput(cmd.ErrOrStderr(), level),
	)
	return catalog, tr, nil
}
