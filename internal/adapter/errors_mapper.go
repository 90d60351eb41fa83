// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
)

// maxEngineErrorBody caps the engine body kept in [EngineError]. The body
// reaches clients verbatim.
const maxEngineErrorBody = 4 << 10

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := truncateBody(strings.TrimSpace(string(resp.Body())), maxEngineErrorBody)
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	return &EngineError{StatusCode: resp.StatusCode(), Body: body}
}

// truncateBody cuts s to at most limit bytes without splitting a UTF-8
// sequence.
func truncateBody(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	s = s[:limit]
	for i := 0; i < utf8.UTFMax && len(s) > 0; i++ {
		if r, size := utf8.DecodeLastRuneInString(s); r != utf8.RuneError || size != 1 {
			break
		}
		s = s[:len(s)-1]
	}
	return s
}
