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
	"fmt"
	"strings"
)

// HostType selects the concrete host representation a value is coerced to.
// The set is closed; coercion matches it exhaustively.
type HostType int

const (
	// HostDefault uses the default representation of the value kind.
	HostDefault HostType = iota
	HostString
	HostChar
	HostChars
	HostUUID
	HostEnum
	HostInt8
	HostUint8
	HostInt16
	HostInt32
	HostInt64
	HostFloat32
	HostFloat64
	HostDecimal
	HostBigInt
	HostBytes
	HostTime
	HostBool
)

var hostNames = []string{
	HostDefault: "default",
	HostString:  "string",
	HostChar:    "char",
	HostChars:   "chars",
	HostUUID:    "uuid",
	HostEnum:    "enum",
	HostInt8:    "int8",
	HostUint8:   "uint8",
	HostInt16:   "int16",
	HostInt32:   "int32",
	HostInt64:   "int64",
	HostFloat32: "float32",
	HostFloat64: "float64",
	HostDecimal: "decimal",
	HostBigInt:  "bigint",
	HostBytes:   "bytes",
	HostTime:    "time",
	HostBool:    "bool",
}

func (h HostType) String() string {
	if h >= 0 && int(h) < len(hostNames) {
		return hostNames[h]
	}
	return fmt.Sprintf("HostType(%d)", int(h))
}

// ParseHostType resolves a host type name as written in catalog files.
// An empty name is HostDefault.
func ParseHostType(s string) (HostType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return HostDefault, nil
	}
	for i, n := range hostNames {
		if n == name {
			return HostType(i), nil
		}
	}
	return HostDefault, fmt.Errorf("unknown host type %q", s)
}

// IsNumeric reports the host types a numeric literal may be coerced to.
func (h HostType) IsNumeric() bool {
	switch h {
	case HostInt8, HostUint8, HostInt16, HostInt32, HostInt64,
		HostFloat32, HostFloat64, HostDecimal, HostBigInt, HostBytes:
		return true
	default:
		return false
	}
}

// EnumType is a host enumeration whose members are bound by name.
type EnumType struct {
	Name    string   `yaml:"name"`
	Members []string `yaml:"members"`
}

// Ordinal returns the position of member, or -1.
func (e *EnumType) Ordinal(member string) int {
	for i, m := range e.Members {
		if m == member {
			return i
		}
	}
	return -1
}

// EnumMember is the bound value of an enumeration-typed literal.
type EnumMember struct {
	Enum    string
	Name    string
	Ordinal int
}

func (m EnumMember) String() string {
	return m.Enum + "." + m.Name
}

// HostHint associates a property with the host representation its values
// must be coerced to. A nil *HostHint means the kind default.
type HostHint struct {
	Type HostType
	// Name is the host type name handed to a TimeConverter for date/time values.
	Name string
	Enum *EnumType
}

// TypeOf returns the hint type, HostDefault for a nil hint.
func (h *HostHint) TypeOf() HostType {
	if h == nil {
		return HostDefault
	}
	return h.Type
}

// NameOf returns the host type name, falling back to the host type.
func (h *HostHint) NameOf() string {
	if h == nil {
		return ""
	}
	if h.Name != "" {
		return h.Name
	}
	return h.Type.String()
}
