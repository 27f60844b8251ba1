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

package ast

import (
	"fmt"
	"strings"

	"github.com/rulego/odatajpql/edm"
)

// UnaryOp is a unary operator.
type UnaryOp int

const (
	Not UnaryOp = iota + 1
	Minus
)

func (op UnaryOp) String() string {
	switch op {
	case Not:
		return "not"
	case Minus:
		return "-"
	default:
		return fmt.Sprintf("UnaryOp(%d)", int(op))
	}
}

// BinaryOp is a binary operator.
type BinaryOp int

const (
	And BinaryOp = iota + 1
	Or
	Eq
	Ne
	Lt
	Le
	Gt
	Ge
	Add
	Sub
	Mul
	Div
	Mod
	PropertyAccess
)

var binaryNames = map[BinaryOp]string{
	And:            "and",
	Or:             "or",
	Eq:             "eq",
	Ne:             "ne",
	Lt:             "lt",
	Le:             "le",
	Gt:             "gt",
	Ge:             "ge",
	Add:            "add",
	Sub:            "sub",
	Mul:            "mul",
	Div:            "div",
	Mod:            "mod",
	PropertyAccess: "/",
}

func (op BinaryOp) String() string {
	if s, ok := binaryNames[op]; ok {
		return s
	}
	return fmt.Sprintf("BinaryOp(%d)", int(op))
}

// IsLogical reports and/or.
func (op BinaryOp) IsLogical() bool {
	return op == And || op == Or
}

// IsComparison reports eq, ne, lt, le, gt and ge.
func (op BinaryOp) IsComparison() bool {
	switch op {
	case Eq, Ne, Lt, Le, Gt, Ge:
		return true
	default:
		return false
	}
}

// ParseBinaryOp resolves the protocol spelling of a binary operator.
func ParseBinaryOp(s string) (BinaryOp, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for op, n := range binaryNames {
		if n == name {
			return op, nil
		}
	}
	return 0, fmt.Errorf("unknown binary operator %q", s)
}

// ParseUnaryOp resolves not and - (also spelled minus).
func ParseUnaryOp(s string) (UnaryOp, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "not":
		return Not, nil
	case "-", "minus":
		return Minus, nil
	}
	return 0, fmt.Errorf("unknown unary operator %q", s)
}

// MethodOp is a built-in method of the filter grammar.
type MethodOp int

const (
	Substring MethodOp = iota + 1
	SubstringOf
	ToLower
	ToUpper
	StartsWith
	EndsWith
	Length
	IndexOf
	Trim
	Concat
	Year
	Month
	Day
	Hour
	Minute
	Second
	Round
	Floor
	Ceiling
)

var methodNames = map[MethodOp]string{
	Substring:   "substring",
	SubstringOf: "substringof",
	ToLower:     "tolower",
	ToUpper:     "toupper",
	StartsWith:  "startswith",
	EndsWith:    "endswith",
	Length:      "length",
	IndexOf:     "indexof",
	Trim:        "trim",
	Concat:      "concat",
	Year:        "year",
	Month:       "month",
	Day:         "day",
	Hour:        "hour",
	Minute:      "minute",
	Second:      "second",
	Round:       "round",
	Floor:       "floor",
	Ceiling:     "ceiling",
}

func (op MethodOp) String() string {
	if s, ok := methodNames[op]; ok {
		return s
	}
	return fmt.Sprintf("MethodOp(%d)", int(op))
}

// ParseMethodOp resolves a method name (case-insensitive).
func ParseMethodOp(s string) (MethodOp, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for op, n := range methodNames {
		if n == name {
			return op, nil
		}
	}
	return 0, fmt.Errorf("unknown method %q", s)
}

// ResultKind returns the declared return kind of the method.
func (op MethodOp) ResultKind() edm.ValueKind {
	switch op {
	case SubstringOf, StartsWith, EndsWith:
		return edm.KindBoolean
	case Substring, ToLower, ToUpper, Trim, Concat:
		return edm.KindString
	case Length, IndexOf, Year, Month, Day, Hour, Minute, Second:
		return edm.KindInt32
	case Round, Floor, Ceiling:
		return edm.KindDouble
	default:
		return edm.KindUnknown
	}
}
