// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Configured(t *testing.T) {
	client := NewHTTPClient("http://engine:4000", 3*time.Second)

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
	assert.Equal(t, "http://engine:4000", client.BaseURL)
	assert.Equal(t, 3*time.Second, client.GetClient().Timeout)
	assert.Equal(t, 0, client.RetryCount)
	assert.Equal(t, "application/json", client.Header.Get("Accept"))
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://a", time.Second)
	client2 := NewHTTPClient("http://b", time.Second)

	assert.NotSame(t, client1.Client, client2.Client)
}
