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

// Package literal converts literal text of a declared value kind into the
// value bound to a positional parameter. It owns wildcard escaping for
// pattern-matching contexts and the optional date/time host conversion.
package literal

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"

	"github.com/rulego/odatajpql/edm"
	"github.com/rulego/odatajpql/utils/cast"
)

// TimeConverter turns a parsed date/time literal into the value a host
// type expects. It is called synchronously once per DateTime or
// DateTimeOffset literal that carries a host type hint, and must not block.
type TimeConverter interface {
	Convert(value time.Time, hostType string) (any, error)
}

// TimeConverterFunc adapts a function to TimeConverter.
type TimeConverterFunc func(value time.Time, hostType string) (any, error)

func (f TimeConverterFunc) Convert(value time.Time, hostType string) (any, error) {
	return f(value, hostType)
}

// Value is the outcome of coercing one literal.
type Value struct {
	// Data is the value to bind at a parameter slot when Bound is set.
	Data  any
	Bound bool
	// Inline, when set, is written into the fragment instead of a placeholder.
	Inline string
}

// EscapeWildcards escapes the pattern characters of a LIKE operand.
// Backslash goes first so the escapes added for % and _ are not escaped again.
func EscapeWildcards(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

// Coerce converts text of the given kind, honouring an optional host hint.
// conv may be nil.
func Coerce(text string, kind edm.ValueKind, hint *edm.HostHint, conv TimeConverter) (Value, error) {
	switch {
	case kind == edm.KindNull || kind == edm.KindBoolean:
		return Value{Inline: text}, nil
	case kind == edm.KindString || kind == edm.KindGuid:
		return coerceString(text, kind, hint)
	case kind.IsDateTime():
		return coerceDateTime(text, kind, hint, conv)
	case kind == edm.KindTime:
		return coerceTime(text, hint)
	case kind.IsNumeric() || kind == edm.KindBinary:
		return coerceNumber(text, kind, hint)
	default:
		return Value{}, fmt.Errorf("unsupported value kind %s", kind)
	}
}

func bound(v any) Value {
	return Value{Data: v, Bound: true}
}

func unsupportedHint(kind edm.ValueKind, hint *edm.HostHint) error {
	return fmt.Errorf("host type %s cannot represent %s values", hint.TypeOf(), kind)
}

// coerceString escapes the text for LIKE use. Enum and UUID forms are
// resolved from the original text since they never take part in a pattern.
func coerceString(text string, kind edm.ValueKind, hint *edm.HostHint) (Value, error) {
	escaped := EscapeWildcards(text)
	switch hint.TypeOf() {
	case edm.HostDefault:
		if kind == edm.KindGuid {
			return parseUUID(text)
		}
		return bound(escaped), nil
	case edm.HostString:
		return bound(escaped), nil
	case edm.HostChar:
		r, size := utf8.DecodeRuneInString(escaped)
		if size == 0 {
			return Value{}, fmt.Errorf("empty literal for character host type")
		}
		return bound(r), nil
	case edm.HostChars:
		return bound([]rune(escaped)), nil
	case edm.HostUUID:
		return parseUUID(text)
	case edm.HostEnum:
		if hint.Enum == nil {
			return Value{}, fmt.Errorf("enum host type without enumeration")
		}
		ordinal := hint.Enum.Ordinal(text)
		if ordinal < 0 {
			return Value{}, fmt.Errorf("%q is not a member of enum %s", text, hint.Enum.Name)
		}
		return bound(edm.EnumMember{Enum: hint.Enum.Name, Name: text, Ordinal: ordinal}), nil
	default:
		return Value{}, unsupportedHint(kind, hint)
	}
}

func parseUUID(text string) (Value, error) {
	id, err := uuid.Parse(text)
	if err != nil {
		return Value{}, fmt.Errorf("invalid guid %q: %w", text, err)
	}
	return bound(id), nil
}

// coerceDateTime hands any hinted value to conv, which may produce whatever
// the host type needs. Without a converter only the time host types apply.
func coerceDateTime(text string, kind edm.ValueKind, hint *edm.HostHint, conv TimeConverter) (Value, error) {
	if conv == nil {
		switch hint.TypeOf() {
		case edm.HostDefault, edm.HostTime:
		default:
			return Value{}, unsupportedHint(kind, hint)
		}
	}
	t, err := ParseDateTime(text, kind)
	if err != nil {
		return Value{}, err
	}
	if hint == nil || conv == nil {
		return bound(t), nil
	}
	v, err := conv.Convert(t, hint.NameOf())
	if err != nil {
		return Value{}, fmt.Errorf("convert %s to %s: %w", kind, hint.NameOf(), err)
	}
	return bound(v), nil
}

// coerceTime binds the parsed clock time and also renders it inline.
func coerceTime(text string, hint *edm.HostHint) (Value, error) {
	switch hint.TypeOf() {
	case edm.HostDefault, edm.HostTime:
	default:
		return Value{}, unsupportedHint(edm.KindTime, hint)
	}
	ct, err := ParseTime(text)
	if err != nil {
		return Value{}, err
	}
	return Value{
		Data:   ct,
		Bound:  true,
		Inline: fmt.Sprintf("%02d:%02d:%02d", ct.Hour, ct.Minute, ct.Second),
	}, nil
}

func defaultHost(kind edm.ValueKind) edm.HostType {
	switch kind {
	case edm.KindByte:
		return edm.HostUint8
	case edm.KindSByte:
		return edm.HostInt8
	case edm.KindInt16:
		return edm.HostInt16
	case edm.KindInt32:
		return edm.HostInt32
	case edm.KindInt64:
		return edm.HostInt64
	case edm.KindDecimal:
		return edm.HostDecimal
	case edm.KindDouble:
		return edm.HostFloat64
	case edm.KindSingle:
		return edm.HostFloat32
	default:
		return edm.HostBytes
	}
}

func coerceNumber(text string, kind edm.ValueKind, hint *edm.HostHint) (Value, error) {
	host := hint.TypeOf()
	if host == edm.HostDefault {
		host = defaultHost(kind)
	}

	var (
		v   any
		err error
	)
	switch host {
	case edm.HostInt8:
		v, err = cast.ToInt8E(text)
	case edm.HostUint8:
		v, err = cast.ToUint8E(text)
	case edm.HostInt16:
		v, err = cast.ToInt16E(text)
	case edm.HostInt32:
		v, err = cast.ToInt32E(text)
	case edm.HostInt64:
		v, err = cast.ToInt64E(text)
	case edm.HostFloat32:
		v, err = cast.ToFloat32E(text)
	case edm.HostFloat64:
		v, err = cast.ToFloat64E(text)
	case edm.HostDecimal:
		d, _, derr := apd.NewFromString(strings.TrimSpace(text))
		v, err = d, derr
	case edm.HostBigInt:
		n, ok := new(big.Int).SetString(strings.TrimSpace(text), 10)
		if !ok {
			err = fmt.Errorf("invalid integer %q", text)
		}
		v = n
	case edm.HostBytes:
		if kind == edm.KindBinary {
			v, err = hex.DecodeString(text)
		} else {
			v = []byte(text)
		}
	default:
		return Value{}, unsupportedHint(kind, hint)
	}
	if err != nil {
		return Value{}, fmt.Errorf("coerce %s literal %q to %s: %w", kind, text, host, err)
	}
	return bound(v), nil
}
