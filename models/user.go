// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidUser is returned by [NewUser] when a required attribute is empty.
var ErrInvalidUser = errors.New("invalid user: email and password hash are required")

// User represents an account entity used for authentication and ownership of
// uploaded videos.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the opaque unique identifier assigned by the credential store.
	ID string `json:"id"`

	// Email is the unique login identifier of the user.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never serialized and never holds the plaintext.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// NewUser builds a [User] from an email and an already-hashed password.
// The email is trimmed and lower-cased so uniqueness checks are
// case-insensitive.
func NewUser(email, passwordHash string) (User, error) {
	email = NormalizeEmail(email)
	if email == "" || passwordHash == "" {
		return User{}, ErrInvalidUser
	}

	return User{Email: email, PasswordHash: passwordHash}, nil
}

// Public returns the redacted view of the user (identifier and email only).
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// PublicUser is the only user representation that leaves the server.
type PublicUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Credentials is the body of a login request.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NormalizeEmail trims surrounding spaces and lower-cases the address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
