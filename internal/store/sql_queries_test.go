// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/gamey-gateway/models"
)

func Test_buildInsertUserQuery_Postgres(t *testing.T) {
	b := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	query, args, err := buildInsertUserQuery(b, models.User{
		UserID:       "id-1",
		Username:     "alice",
		PasswordHash: "hash",
		Age:          30,
		Country:      "ES",
		CreatedAt:    createdAt,
	})
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO users (user_id,username,password_hash,age,country,score,created_at) VALUES ($1,$2,$3,$4,$5,$6,$7)",
		query)
	require.Len(t, args, 7)
	assert.Equal(t, "alice", args[1])
	assert.Nil(t, args[5], "missing score is stored as NULL")
	assert.Equal(t, createdAt, args[6])
}

func Test_buildInsertUserQuery_WithScore(t *testing.T) {
	score := 7

	_, args, err := buildInsertUserQuery(sq.StatementBuilder, models.User{Username: "bob", Score: &score})
	require.NoError(t, err)
	assert.Equal(t, 7, args[5])
}

func Test_buildFindUserByUsernameQuery_SQLite(t *testing.T) {
	b := sq.StatementBuilder.PlaceholderFormat(sq.Question)

	query, args, err := buildFindUserByUsernameQuery(b, "alice")
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "from users")
	assert.Contains(t, q, "where username = ?")
	assert.Contains(t, q, "limit 1")
	assert.Equal(t, []any{"alice"}, args)
}
