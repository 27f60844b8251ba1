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
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogFlag = "--catalog=../../testdata/catalog.yaml"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "odatajpql", cmd.Use)

	for _, name := range []string{"translate", "keys", "eval"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}

	format := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "text", format.DefValue)
	alias := cmd.PersistentFlags().Lookup("alias")
	require.NotNil(t, alias)
	assert.Equal(t, "e", alias.DefValue)
}

func TestTranslate_Text(t *testing.T) {
	out, err := run(t, "translate", catalogFlag, "testdata/tree.yaml")
	require.NoError(t, err)
	assert.Equal(t, "SELECT e FROM Product e WHERE e.ID = ?1 AND ((e.name LIKE ?2 ESCAPE '\\') AND (e.Stock > ?3)) ORDER BY e.name DESC\n"+
		"?1 = 5 (int64)\n"+
		"?2 = Foo (string)\n"+
		"?3 = 10 (int32)\n", out)
}

func TestTranslate_Fragments(t *testing.T) {
	out, err := run(t, "translate", catalogFlag, "--alias=p", "--fragments", "testdata/tree.yaml")
	require.NoError(t, err)
	assert.Equal(t, "where: ((p.name LIKE ?1 ESCAPE '\\') AND (p.Stock > ?2))\n"+
		"orderby: p.name DESC\n"+
		"?1 = Foo (string)\n"+
		"?2 = 10 (int32)\n", out)
}

func TestTranslate_JSON(t *testing.T) {
	out, err := run(t, "translate", catalogFlag, "--format=json", "testdata/tree.yaml")
	require.NoError(t, err)

	var result struct {
		Query  string `json:"query"`
		Params []struct {
			Slot  int    `json:"slot"`
			Type  string `json:"type"`
			Value any    `json:"value"`
		} `json:"params"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Contains(t, result.Query, "WHERE e.ID = ?1")
	require.Len(t, result.Params, 3)
	assert.Equal(t, "int64", result.Params[0].Type)
	assert.Equal(t, "Foo", result.Params[1].Value)
	assert.Equal(t, 3, result.Params[2].Slot)
}

func TestTranslate_Errors(t *testing.T) {
	_, err := run(t, "translate", catalogFlag, "--format=xml", "testdata/tree.yaml")
	assert.Error(t, err)

	_, err = run(t, "translate", "--catalog=missing.yaml", "testdata/tree.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, err = run(t, "translate", catalogFlag, "testdata/missing.yaml")
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, err = run(t, "translate", catalogFlag, "testdata/unsupported.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "UNSUPPORTED_OPERATION")
}

func TestKeys(t *testing.T) {
	out, err := run(t, "keys", catalogFlag, "--entity=Supplier", "Country='DE'", "Code=7")
	require.NoError(t, err)
	assert.Equal(t, "where: e.Country LIKE ?1 ESCAPE '\\' AND e.Code = ?2\n"+
		"?1 = DE (string)\n"+
		"?2 = 7 (int32)\n", out)

	_, err = run(t, "keys", catalogFlag, "--entity=Product", "abc")
	assert.Equal(t, ExitFailure, GetExitCode(err))

	_, err = run(t, "keys", catalogFlag, "--entity=Nope", "1")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestEval(t *testing.T) {
	out, err := run(t, "eval", catalogFlag, "testdata/tree.yaml", "testdata/rows.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "1 of 3 rows match")
	assert.Contains(t, out, "Stock: 20")
	assert.NotContains(t, out, "Bar")

	out, err = run(t, "eval", catalogFlag, "--format=json", "testdata/tree.yaml", "testdata/rows.yaml")
	require.NoError(t, err)
	var rows []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, float64(20), rows[0]["Stock"])
}

func TestTableFormat(t *testing.T) {
	out, err := run(t, "eval", catalogFlag, "--format=table", "testdata/tree.yaml", "testdata/rows.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "1 of 3 rows match\n")
	assert.Contains(t, out, "| Name | Stock |\n")
	assert.Contains(t, out, "| Foo  | 20    |\n")
	assert.Contains(t, out, "(1 rows)\n")

	out, err = run(t, "keys", catalogFlag, "--entity=Supplier", "--format=table", "Country='DE'", "Code=7")
	require.NoError(t, err)
	assert.Contains(t, out, "| slot | type   | value |\n")
	assert.Contains(t, out, "| ?2   | int32  | 7     |\n")
}
