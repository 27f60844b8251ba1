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
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslationError(t *testing.T) {
	cause := fmt.Errorf("bad digits")
	tests := []struct {
		name     string
		err      *TranslationError
		sentinel error
		message  string
	}{
		{
			name:     "unsupported",
			err:      NewUnsupportedOperationError("method", "length"),
			sentinel: ErrUnsupportedOperation,
			message:  "[UNSUPPORTED_OPERATION] unsupported method (found 'length')",
		},
		{
			name:     "invalid operator",
			err:      NewInvalidOperatorError("gt"),
			sentinel: ErrInvalidOperator,
			message:  "[INVALID_OPERATOR] operator gt cannot compare startswith/endswith, use eq or ne (found 'gt')",
		},
		{
			name:     "evaluation",
			err:      NewEvaluationError("cannot evaluate Edm.Int32 literal", cause),
			sentinel: ErrEvaluation,
			message:  "[EVALUATION_ERROR] cannot evaluate Edm.Int32 literal: bad digits",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.message, tt.err.Error())
			assert.True(t, errors.Is(tt.err, tt.sentinel))

			wrapped := fmt.Errorf("translate: %w", tt.err)
			assert.True(t, errors.Is(wrapped, tt.sentinel))
		})
	}

	assert.False(t, errors.Is(NewInvalidOperatorError("lt"), ErrEvaluation))
	assert.False(t, errors.Is(NewInvalidOperatorError("lt"), NewInvalidOperatorError("lt")))
	assert.True(t, errors.Is(NewEvaluationError("x", cause), cause))
	assert.Equal(t, "[UNKNOWN_ERROR] x", (&TranslationError{Message: "x"}).Error())
}

func TestParameters(t *testing.T) {
	p := Parameters{3: "c", 1: "a", 2: "b"}
	assert.Equal(t, []int{1, 2, 3}, p.Slots())
	assert.Equal(t, []any{"a", "b", "c"}, p.Values())
	assert.Equal(t, 3, p.Max())

	clone := p.Clone()
	clone[4] = "d"
	assert.Len(t, p, 3)

	assert.Equal(t, 0, Parameters{}.Max())
	assert.Empty(t, Parameters{}.Values())
}

func TestContext_BindNeverRebinds(t *testing.T) {
	c := NewContext("e", WithParameters(Parameters{2: "seed"}))
	text, err := c.bind("x", propName.Kind, nil)
	assert.NoError(t, err)
	assert.Equal(t, "?3", text)
	assert.Equal(t, "seed", c.params[2])

	text, err = c.bind("true", propActive.Kind, nil)
	assert.NoError(t, err)
	assert.Equal(t, "true", text)
	assert.Len(t, c.params, 2)
}
