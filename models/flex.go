// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrUnsupportedJSONValue is returned when a flexible field receives an
// object or an array.
var ErrUnsupportedJSONValue = errors.New("unsupported JSON value")

// FlexString is a string field that also accepts JSON numbers and booleans,
// which are converted to their textual form. null leaves it empty.
type FlexString string

// UnmarshalJSON implements [json.Unmarshaler].
func (s *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}

	switch b[0] {
	case '"':
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	case '{', '[':
		return ErrUnsupportedJSONValue
	default:
		// numbers and booleans keep their literal text
		var v any
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = FlexString(b)
		return nil
	}
}

// String returns the plain string value.
func (s FlexString) String() string {
	return string(s)
}

// FlexInt is an integer field that also accepts numeric strings.
// Fractions are truncated; null and "" become zero.
type FlexInt int

// UnmarshalJSON implements [json.Unmarshaler].
func (i *FlexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*i = 0
		return nil
	}

	raw := string(b)
	if b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			*i = 0
			return nil
		}
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f > math.MaxInt32 || f < math.MinInt32 {
		return strconv.ErrRange
	}

	*i = FlexInt(int(f))
	return nil
}

// Int returns the plain int value.
func (i FlexInt) Int() int {
	return int(i)
}
