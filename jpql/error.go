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

package jpql

import (
	"fmt"
	"strings"
)

// ErrorType classifies translation failures.
type ErrorType int

const (
	// ErrorTypeUnsupportedOperation: a node kind, operator or method has no
	// translation rule.
	ErrorTypeUnsupportedOperation ErrorType = iota + 1
	// ErrorTypeInvalidOperator: a prefix/suffix match is compared with an
	// operator other than eq or ne.
	ErrorTypeInvalidOperator
	// ErrorTypeEvaluation: literal text does not parse into its kind, or a
	// metadata lookup failed.
	ErrorTypeEvaluation
)

// TranslationError is returned for every failed translation. The walk stops
// at the first error and no partial fragment is produced.
type TranslationError struct {
	Type    ErrorType
	Message string
	// Token is the offending operator, method or node kind, if any.
	Token string
	Cause error
}

var (
	// ErrUnsupportedOperation matches any unsupported-operation error with errors.Is.
	ErrUnsupportedOperation = &TranslationError{Type: ErrorTypeUnsupportedOperation}
	// ErrInvalidOperator matches any invalid-operator error with errors.Is.
	ErrInvalidOperator = &TranslationError{Type: ErrorTypeInvalidOperator}
	// ErrEvaluation matches any evaluation error with errors.Is.
	ErrEvaluation = &TranslationError{Type: ErrorTypeEvaluation}
)

func (e *TranslationError) Error() string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("[%s] %s", e.getErrorTypeName(), e.Message))
	if e.Token != "" {
		builder.WriteString(fmt.Sprintf(" (found '%s')", e.Token))
	}
	if e.Cause != nil {
		builder.WriteString(": ")
		builder.WriteString(e.Cause.Error())
	}
	return builder.String()
}

func (e *TranslationError) Unwrap() error {
	return e.Cause
}

// Is matches the package sentinels by error type.
func (e *TranslationError) Is(target error) bool {
	t, ok := target.(*TranslationError)
	if !ok {
		return false
	}
	return t.Message == "" && t.Token == "" && t.Cause == nil && t.Type == e.Type
}

func (e *TranslationError) getErrorTypeName() string {
	switch e.Type {
	case ErrorTypeUnsupportedOperation:
		return "UNSUPPORTED_OPERATION"
	case ErrorTypeInvalidOperator:
		return "INVALID_OPERATOR"
	case ErrorTypeEvaluation:
		return "EVALUATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// NewUnsupportedOperationError reports a construct without a translation rule.
func NewUnsupportedOperationError(what, token string) *TranslationError {
	return &TranslationError{
		Type:    ErrorTypeUnsupportedOperation,
		Message: fmt.Sprintf("unsupported %s", what),
		Token:   token,
	}
}

// NewInvalidOperatorError reports a prefix/suffix match compared with op.
func NewInvalidOperatorError(op string) *TranslationError {
	return &TranslationError{
		Type:    ErrorTypeInvalidOperator,
		Message: fmt.Sprintf("operator %s cannot compare startswith/endswith, use eq or ne", op),
		Token:   op,
	}
}

// NewEvaluationError wraps a coercion or lookup failure.
func NewEvaluationError(message string, cause error) *TranslationError {
	return &TranslationError{
		Type:    ErrorTypeEvaluation,
		Message: message,
		Cause:   cause,
	}
}
