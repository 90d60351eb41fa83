// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// decodeJSON reads a JSON body into dst. An empty body leaves dst at its
// zero value so that missing fields are reported by field validation.
// Anything after the first JSON value makes the body invalid.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %w", errInvalidBody, err)
	}

	// exactly one JSON value is allowed
	var extra json.RawMessage
	if err = dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after JSON value", errInvalidBody)
	}

	return nil
}
