package service

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var (
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrForbidden          = errors.New("not authorized to modify this recipe")
	ErrFavoriteConflict   = errors.New("favorite was changed concurrently")
	ErrStorageDisabled    = errors.New("image storage is not configured")
	ErrPasswordTooLong    = errors.New("password exceeds 72 bytes")
)

// uniqueViolationCode is the postgres SQLSTATE for unique_violation
const uniqueViolationCode = "23505"

// isUniqueViolation reports whether err came from a unique constraint,
// either translated by gorm or raised by lib/pq directly.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolationCode
	}
	return false
}

// uniqueViolationConstraint returns the violated constraint name when lib/pq reports one
func uniqueViolationConstraint(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
		return pqErr.Constraint
	}
	return ""
}
