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

package edm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueKind(t *testing.T) {
	assert.Equal(t, "Edm.String", KindString.String())
	assert.Equal(t, "Edm.Kind(99)", ValueKind(99).String())

	for _, in := range []string{"Edm.Int32", "int32", " EDM.INT32 "} {
		k, err := ParseValueKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, KindInt32, k)
	}
	_, err := ParseValueKind("Edm.Geography")
	assert.Error(t, err)
	_, err = ParseValueKind("Unknown")
	assert.Error(t, err)

	assert.True(t, KindString.IsStringCompatible())
	assert.False(t, KindGuid.IsStringCompatible())
	assert.True(t, KindGuid.IsPatternCompatible())
	assert.False(t, KindInt32.IsPatternCompatible())
	assert.True(t, KindDateTimeOffset.IsDateTime())
	assert.False(t, KindTime.IsDateTime())
	assert.True(t, KindDecimal.IsNumeric())
	assert.False(t, KindBinary.IsNumeric())
}

func TestHostType(t *testing.T) {
	h, err := ParseHostType("")
	require.NoError(t, err)
	assert.Equal(t, HostDefault, h)

	h, err = ParseHostType("BigInt")
	require.NoError(t, err)
	assert.Equal(t, HostBigInt, h)
	assert.Equal(t, "bigint", h.String())
	assert.True(t, h.IsNumeric())
	assert.False(t, HostEnum.IsNumeric())

	_, err = ParseHostType("complex128")
	assert.Error(t, err)

	var nilHint *HostHint
	assert.Equal(t, HostDefault, nilHint.TypeOf())
	assert.Equal(t, "", nilHint.NameOf())
	assert.Equal(t, "time", (&HostHint{Type: HostTime}).NameOf())
	assert.Equal(t, "sql.NullTime", (&HostHint{Type: HostTime, Name: "sql.NullTime"}).NameOf())

	enum := &EnumType{Name: "Color", Members: []string{"RED", "GREEN"}}
	assert.Equal(t, 1, enum.Ordinal("GREEN"))
	assert.Equal(t, -1, enum.Ordinal("green"))
	assert.Equal(t, "Color.RED", EnumMember{Enum: "Color", Name: "RED"}.String())
}

func TestProperty(t *testing.T) {
	p := &Property{Name: "Name"}
	assert.Equal(t, "Name", p.MappedName())
	p.InternalName = "name"
	assert.Equal(t, "name", p.MappedName())
	assert.False(t, p.IsEnum())
	p.Hint = &HostHint{Type: HostEnum}
	assert.True(t, p.IsEnum())

	var nilProp *Property
	assert.False(t, nilProp.IsEnum())
}

func TestParseLiteral(t *testing.T) {
	tests := []struct {
		in   string
		want Literal
	}{
		{"null", Literal{"null", KindNull}},
		{"true", Literal{"true", KindBoolean}},
		{"'it''s'", Literal{"it's", KindString}},
		{"''", Literal{"", KindString}},
		{"guid'12345678-aaaa-bbbb-cccc-ddddeeeeffff'", Literal{"12345678-aaaa-bbbb-cccc-ddddeeeeffff", KindGuid}},
		{"datetime'2012-09-03T08:00'", Literal{"2012-09-03T08:00", KindDateTime}},
		{"datetimeoffset'2012-09-03T08:00:00Z'", Literal{"2012-09-03T08:00:00Z", KindDateTimeOffset}},
		{"time'PT13H20M'", Literal{"PT13H20M", KindTime}},
		{"X'0AFF'", Literal{"0AFF", KindBinary}},
		{"42", Literal{"42", KindInt32}},
		{"-7", Literal{"-7", KindInt32}},
		{"3000000000", Literal{"3000000000", KindInt64}},
		{"42L", Literal{"42", KindInt64}},
		{"2.5M", Literal{"2.5", KindDecimal}},
		{"2.5", Literal{"2.5", KindDecimal}},
		{"1.5D", Literal{"1.5", KindDouble}},
		{"1e3", Literal{"1e3", KindDouble}},
		{"0.5f", Literal{"0.5", KindSingle}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLiteral(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "abc", "1.2.3M", "12x", "99999999999999999999"} {
		_, err := ParseLiteral(bad)
		assert.Error(t, err, bad)
	}
}

func TestUnwrapLiteral(t *testing.T) {
	tests := []struct {
		text string
		kind ValueKind
		want string
	}{
		{"'Foo'", KindString, "Foo"},
		{"Foo", KindString, "Foo"},
		{"'a''b'", KindString, "a'b"},
		{"guid'abc'", KindGuid, "abc"},
		{"'abc'", KindGuid, "abc"},
		{"datetime'2012-09-03T08:00'", KindDateTime, "2012-09-03T08:00"},
		{"DateTimeOffset'2012-09-03T08:00Z'", KindDateTimeOffset, "2012-09-03T08:00Z"},
		{"time'PT1H'", KindTime, "PT1H"},
		{"binary'00'", KindBinary, "00"},
		{"5L", KindInt64, "5"},
		{"5", KindInt64, "5"},
		{"1.5m", KindDecimal, "1.5"},
		{"2D", KindDouble, "2"},
		{"2.F", KindSingle, "2."},
		{"F", KindSingle, "F"},
		{"true", KindBoolean, "true"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, UnwrapLiteral(tt.text, tt.kind), tt.text)
	}
}

const catalogYAML = `
entities:
  - name: SalesOrder
    keys: [ID]
    properties:
      - {name: ID, column: id, type: Edm.Int64}
      - {name: Status, type: Edm.String, host: enum, enum: {name: OrderStatus, members: [OPEN, CLOSED]}}
      - {name: Placed, type: Edm.DateTime, hostName: sql.NullTime}
      - {name: Customer, column: customer, navigation: Customer}
  - name: Customer
    keys: [Code]
    properties:
      - {name: Code, type: String}
`

func TestLoadCatalog(t *testing.T) {
	c, err := LoadCatalog(strings.NewReader(catalogYAML))
	require.NoError(t, err)
	assert.Equal(t, []string{"Customer", "SalesOrder"}, c.EntityNames())

	order, err := c.Entity("SalesOrder")
	require.NoError(t, err)

	id, err := order.Property("ID")
	require.NoError(t, err)
	assert.Equal(t, "id", id.MappedName())
	assert.Equal(t, KindInt64, id.Kind)
	assert.Nil(t, id.Hint)

	status, err := order.Property("Status")
	require.NoError(t, err)
	require.True(t, status.IsEnum())
	assert.Equal(t, "OrderStatus", status.Hint.Enum.Name)

	placed, err := order.Property("Placed")
	require.NoError(t, err)
	require.NotNil(t, placed.Hint)
	assert.Equal(t, HostDefault, placed.Hint.Type)
	assert.Equal(t, "sql.NullTime", placed.Hint.NameOf())

	customer, err := order.Property("Customer")
	require.NoError(t, err)
	assert.True(t, customer.Navigation)
	assert.Equal(t, "Customer", customer.Target)

	assert.Equal(t, []*Property{id}, order.KeyProperties())

	_, err = order.Property("Total")
	assert.ErrorIs(t, err, ErrUnknownProperty)
	_, err = c.Entity("Invoice")
	assert.ErrorIs(t, err, ErrUnknownEntity)
}

func TestLoadCatalog_Errors(t *testing.T) {
	tests := map[string]string{
		"bad yaml":          "entities: [",
		"entity name":       "entities: [{keys: [ID]}]",
		"property name":     "entities: [{name: A, properties: [{type: Edm.Int32}]}]",
		"kind":              "entities: [{name: A, properties: [{name: X, type: Edm.Geo}]}]",
		"host":              "entities: [{name: A, properties: [{name: X, type: Edm.Int32, host: complex}]}]",
		"enum members":      "entities: [{name: A, properties: [{name: X, type: Edm.String, host: enum}]}]",
		"unknown key":       "entities: [{name: A, keys: [Y], properties: [{name: X, type: Edm.Int32}]}]",
		"navigation key":    "entities: [{name: A, keys: [B], properties: [{name: B, navigation: A}]}]",
		"navigation target": "entities: [{name: A, properties: [{name: B, navigation: Nowhere}]}]",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadCatalog(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}

	_, err := LoadCatalogFile("testdata/does-not-exist.yaml")
	assert.Error(t, err)
}
