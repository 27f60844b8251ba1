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

// Package edm describes the protocol-level type system consumed by the
// translator: value kinds, host type hints and the property metadata that
// maps an external property name to its storage name.
package edm

import (
	"fmt"
	"strings"
)

// ValueKind is the declared abstract type of a value in the protocol's type system.
type ValueKind int

const (
	KindUnknown ValueKind = iota
	KindNull
	KindBoolean
	KindString
	KindGuid
	KindDateTime
	KindDateTimeOffset
	KindTime
	KindByte
	KindSByte
	KindInt16
	KindInt32
	KindInt64
	KindDecimal
	KindDouble
	KindSingle
	KindBinary
)

var kindNames = map[ValueKind]string{
	KindUnknown:        "Unknown",
	KindNull:           "Null",
	KindBoolean:        "Boolean",
	KindString:         "String",
	KindGuid:           "Guid",
	KindDateTime:       "DateTime",
	KindDateTimeOffset: "DateTimeOffset",
	KindTime:           "Time",
	KindByte:           "Byte",
	KindSByte:          "SByte",
	KindInt16:          "Int16",
	KindInt32:          "Int32",
	KindInt64:          "Int64",
	KindDecimal:        "Decimal",
	KindDouble:         "Double",
	KindSingle:         "Single",
	KindBinary:         "Binary",
}

// String returns the qualified name, e.g. Edm.String.
func (k ValueKind) String() string {
	if name, ok := kindNames[k]; ok {
		return "Edm." + name
	}
	return fmt.Sprintf("Edm.Kind(%d)", int(k))
}

// ParseValueKind resolves "Edm.Int32" or "Int32" (case-insensitive).
func ParseValueKind(s string) (ValueKind, error) {
	name := strings.TrimSpace(s)
	if len(name) > 4 && strings.EqualFold(name[:4], "edm.") {
		name = name[4:]
	}
	for kind, n := range kindNames {
		if kind != KindUnknown && strings.EqualFold(n, name) {
			return kind, nil
		}
	}
	return KindUnknown, fmt.Errorf("unknown value kind %q", s)
}

// IsStringCompatible reports whether values of this kind are plain strings.
func (k ValueKind) IsStringCompatible() bool {
	return k == KindString
}

// IsPatternCompatible reports whether equality on this kind is rendered as a
// pattern match.
func (k ValueKind) IsPatternCompatible() bool {
	return k == KindString || k == KindGuid
}

// IsDateTime reports DateTime and DateTimeOffset.
func (k ValueKind) IsDateTime() bool {
	return k == KindDateTime || k == KindDateTimeOffset
}

// IsNumeric reports the integral and floating point kinds.
func (k ValueKind) IsNumeric() bool {
	switch k {
	case KindByte, KindSByte, KindInt16, KindInt32, KindInt64, KindDecimal, KindDouble, KindSingle:
		return true
	default:
		return false
	}
}
