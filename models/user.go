// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is the account record kept in the credential store.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the store-assigned identifier. It is never sent to clients.
	UserID string `json:"-" bson:"_id,omitempty"`

	// Username is the unique, trimmed account name.
	Username string `json:"username" bson:"username"`

	// PasswordHash is the salted one-way hash of the password.
	// The plaintext password is never stored.
	PasswordHash string `json:"-" bson:"password_hash"`

	Age     int    `json:"age" bson:"age"`
	Country string `json:"country" bson:"country"`

	// Score is an optional profile field returned on login when present.
	Score *int `json:"score,omitempty" bson:"score,omitempty"`

	// CreatedAt is assigned by the server once, at registration.
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// TableName returns the name of the collection/table that holds users.
func (u User) TableName() string {
	return "users"
}
