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
	"math"
	"strconv"
	"strings"
)

// Literal is a URI literal with its wrapping removed and its kind resolved.
type Literal struct {
	Text string
	Kind ValueKind
}

var typedPrefixes = []struct {
	prefix string
	kind   ValueKind
}{
	// datetimeoffset must be tried before datetime.
	{"datetimeoffset'", KindDateTimeOffset},
	{"datetime'", KindDateTime},
	{"guid'", KindGuid},
	{"time'", KindTime},
	{"binary'", KindBinary},
	{"x'", KindBinary},
}

// ParseLiteral infers the kind of a URI literal such as 'abc', 42L,
// datetime'2012-09-03T08:00' or null and returns its bare text.
func ParseLiteral(text string) (Literal, error) {
	s := strings.TrimSpace(text)
	switch {
	case s == "":
		return Literal{}, fmt.Errorf("empty literal")
	case s == "null":
		return Literal{Text: s, Kind: KindNull}, nil
	case s == "true" || s == "false":
		return Literal{Text: s, Kind: KindBoolean}, nil
	case isQuoted(s):
		return Literal{Text: unquote(s), Kind: KindString}, nil
	}

	lower := strings.ToLower(s)
	for _, tp := range typedPrefixes {
		if strings.HasPrefix(lower, tp.prefix) && strings.HasSuffix(s, "'") && len(s) > len(tp.prefix) {
			return Literal{Text: s[len(tp.prefix) : len(s)-1], Kind: tp.kind}, nil
		}
	}
	return parseNumber(s)
}

func parseNumber(s string) (Literal, error) {
	body, kind := s, KindUnknown
	switch s[len(s)-1] {
	case 'L', 'l':
		body, kind = s[:len(s)-1], KindInt64
	case 'M', 'm':
		body, kind = s[:len(s)-1], KindDecimal
	case 'D', 'd':
		body, kind = s[:len(s)-1], KindDouble
	case 'F', 'f':
		body, kind = s[:len(s)-1], KindSingle
	}

	switch kind {
	case KindInt64:
		if _, err := strconv.ParseInt(body, 10, 64); err != nil {
			return Literal{}, fmt.Errorf("malformed Int64 literal %q", s)
		}
	case KindDecimal, KindDouble, KindSingle:
		if _, err := strconv.ParseFloat(body, 64); err != nil {
			return Literal{}, fmt.Errorf("malformed %s literal %q", kind, s)
		}
	default:
		if strings.ContainsAny(body, "eE") {
			if _, err := strconv.ParseFloat(body, 64); err != nil {
				return Literal{}, fmt.Errorf("malformed literal %q", s)
			}
			return Literal{Text: body, Kind: KindDouble}, nil
		}
		if strings.Contains(body, ".") {
			if _, err := strconv.ParseFloat(body, 64); err != nil {
				return Literal{}, fmt.Errorf("malformed literal %q", s)
			}
			return Literal{Text: body, Kind: KindDecimal}, nil
		}
		n, err := strconv.ParseInt(body, 10, 64)
		if err != nil {
			return Literal{}, fmt.Errorf("malformed literal %q", s)
		}
		if n >= math.MinInt32 && n <= math.MaxInt32 {
			return Literal{Text: body, Kind: KindInt32}, nil
		}
		return Literal{Text: body, Kind: KindInt64}, nil
	}
	return Literal{Text: body, Kind: kind}, nil
}

// UnwrapLiteral strips the URI wrapping expected for kind (quotes, a typed
// prefix or a numeric suffix). Text without that wrapping is returned as is.
func UnwrapLiteral(text string, kind ValueKind) string {
	switch kind {
	case KindString:
		if isQuoted(text) {
			return unquote(text)
		}
	case KindGuid:
		if v, ok := stripTyped(text, "guid'"); ok {
			return v
		}
		if isQuoted(text) {
			return unquote(text)
		}
	case KindDateTime:
		if v, ok := stripTyped(text, "datetime'"); ok {
			return v
		}
	case KindDateTimeOffset:
		if v, ok := stripTyped(text, "datetimeoffset'"); ok {
			return v
		}
	case KindTime:
		if v, ok := stripTyped(text, "time'"); ok {
			return v
		}
	case KindBinary:
		if v, ok := stripTyped(text, "binary'", "x'"); ok {
			return v
		}
	case KindInt64:
		return stripSuffix(text, 'L')
	case KindDecimal:
		return stripSuffix(text, 'M')
	case KindDouble:
		return stripSuffix(text, 'D')
	case KindSingle:
		return stripSuffix(text, 'F')
	}
	return text
}

func isQuoted(s string) bool {
	return len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\''
}

func unquote(s string) string {
	return strings.ReplaceAll(s[1:len(s)-1], "''", "'")
}

func stripTyped(s string, prefixes ...string) (string, bool) {
	lower := strings.ToLower(s)
	for _, p := range prefixes {
		if strings.HasPrefix(lower, p) && strings.HasSuffix(s, "'") && len(s) > len(p) {
			return s[len(p) : len(s)-1], true
		}
	}
	return s, false
}

func stripSuffix(s string, suffix byte) string {
	n := len(s)
	if n < 2 {
		return s
	}
	last := s[n-1]
	if last != suffix && last != suffix+('a'-'A') {
		return s
	}
	prev := s[n-2]
	if (prev >= '0' && prev <= '9') || prev == '.' {
		return s[:n-1]
	}
	return s
}
