// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/gamey-gateway/models"
)

const usersTable = "users"

var userColumns = []string{
	"user_id",
	"username",
	"password_hash",
	"age",
	"country",
	"score",
	"created_at",
}

// buildInsertUserQuery builds the INSERT for a single user row.
func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	var score any
	if user.Score != nil {
		score = *user.Score
	}

	return b.Insert(usersTable).
		Columns(userColumns...).
		Values(user.UserID, user.Username, user.PasswordHash, user.Age, user.Country, score, user.CreatedAt).
		ToSql()
}

// buildFindUserByUsernameQuery builds an exact-match lookup by username.
func buildFindUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"username": username}).
		Limit(1).
		ToSql()
}
