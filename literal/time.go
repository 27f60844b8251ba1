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

package literal

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/golang-sql/civil"
	spfcast "github.com/spf13/cast"

	"github.com/rulego/odatajpql/edm"
)

var (
	dateTimeLayouts = []string{
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
	}
	dateTimeOffsetLayouts = []string{
		time.RFC3339,
		"2006-01-02T15:04Z07:00",
	}
	// PT13H20M30.5S; every component is optional but at least one is required.
	durationPattern = regexp.MustCompile(`^PT(?:(\d{1,2})H)?(?:(\d{1,4})M)?(?:(\d{1,5})(?:\.(\d+))?S)?$`)
)

// ParseDateTime parses the text of a DateTime or DateTimeOffset literal.
// DateTime values without an offset are read as UTC. Layouts of the other
// kind are accepted too, then anything github.com/spf13/cast understands.
func ParseDateTime(text string, kind edm.ValueKind) (time.Time, error) {
	s := strings.TrimSpace(text)
	layouts := append(append([]string{}, dateTimeLayouts...), dateTimeOffsetLayouts...)
	if kind == edm.KindDateTimeOffset {
		layouts = append(append([]string{}, dateTimeOffsetLayouts...), dateTimeLayouts...)
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	t, err := spfcast.ToTimeInDefaultLocationE(s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s literal %q: %w", kind, text, err)
	}
	return t, nil
}

// ParseTime parses a Time literal, either the duration form PT13H20M30S or
// a clock form 13:20:30. Components overflowing a day wrap around.
func ParseTime(text string) (civil.Time, error) {
	s := strings.TrimSpace(text)
	if m := durationPattern.FindStringSubmatch(s); m != nil && (m[1] != "" || m[2] != "" || m[3] != "") {
		h, _ := atoi(m[1])
		mi, _ := atoi(m[2])
		sec, _ := atoi(m[3])
		total := (h*3600 + mi*60 + sec) % (24 * 3600)
		return civil.Time{
			Hour:       total / 3600,
			Minute:     total % 3600 / 60,
			Second:     total % 60,
			Nanosecond: fraction(m[4]),
		}, nil
	}
	if ct, err := civil.ParseTime(s); err == nil {
		return ct, nil
	}
	if t, err := time.Parse("15:04", s); err == nil {
		return civil.TimeOf(t), nil
	}
	return civil.Time{}, fmt.Errorf("invalid %s literal %q", edm.KindTime, text)
}

func atoi(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

// fraction converts fractional second digits to nanoseconds.
func fraction(digits string) int {
	if digits == "" {
		return 0
	}
	if len(digits) > 9 {
		digits = digits[:9]
	}
	n, _ := strconv.Atoi(digits + strings.Repeat("0", 9-len(digits)))
	return n
}
