/*
 * Copyright 2024 The RuleGo Authors.
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

// Package cast converts literal text into fixed-width host numbers. It sits
// on top of github.com/spf13/cast and adds the decimal-only syntax and range
// checks literal coercion needs: spf13/cast accepts base prefixes and
// truncates on narrowing conversions.
package cast

import (
	"fmt"
	"math"
	"strings"

	spfcast "github.com/spf13/cast"
)

// ToInt64E parses a base-10 integer.
func ToInt64E(s string) (int64, error) {
	digits, err := normalizeInteger(s)
	if err != nil {
		return 0, err
	}
	v, err := spfcast.ToInt64E(digits)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", s, err)
	}
	return v, nil
}

// ToInt32E parses a base-10 integer in the int32 range.
func ToInt32E(s string) (int32, error) {
	v, err := toRange(s, math.MinInt32, math.MaxInt32)
	return int32(v), err
}

// ToInt16E parses a base-10 integer in the int16 range.
func ToInt16E(s string) (int16, error) {
	v, err := toRange(s, math.MinInt16, math.MaxInt16)
	return int16(v), err
}

// ToInt8E parses a base-10 integer in the int8 range.
func ToInt8E(s string) (int8, error) {
	v, err := toRange(s, math.MinInt8, math.MaxInt8)
	return int8(v), err
}

// ToUint8E parses a base-10 integer in the uint8 range.
func ToUint8E(s string) (uint8, error) {
	v, err := toRange(s, 0, math.MaxUint8)
	return uint8(v), err
}

// ToFloat64E parses a floating point number.
func ToFloat64E(s string) (float64, error) {
	v, err := spfcast.ToFloat64E(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return v, nil
}

// ToFloat32E parses a floating point number in float32 precision.
func ToFloat32E(s string) (float32, error) {
	v, err := spfcast.ToFloat32E(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return v, nil
}

// ToFloat converts a bound numeric value to float64 for in-memory comparison.
func ToFloat(x any) (float64, error) {
	return spfcast.ToFloat64E(x)
}

// ToString renders any value with its default format.
func ToString(arg any) string {
	return spfcast.ToString(arg)
}

func toRange(s string, min, max int64) (int64, error) {
	v, err := ToInt64E(s)
	if err != nil {
		return 0, err
	}
	if v < min || v > max {
		return 0, fmt.Errorf("integer %q out of range [%d, %d]", s, min, max)
	}
	return v, nil
}

// normalizeInteger accepts an optional sign followed by decimal digits and
// drops leading zeros so the value is never read as octal.
func normalizeInteger(s string) (string, error) {
	t := strings.TrimSpace(s)
	sign := ""
	if t != "" && (t[0] == '-' || t[0] == '+') {
		if t[0] == '-' {
			sign = "-"
		}
		t = t[1:]
	}
	if t == "" {
		return "", fmt.Errorf("invalid integer %q", s)
	}
	for i := 0; i < len(t); i++ {
		if t[i] < '0' || t[i] > '9' {
			return "", fmt.Errorf("invalid integer %q", s)
		}
	}
	t = strings.TrimLeft(t, "0")
	if t == "" {
		return "0", nil
	}
	return sign + t, nil
}
