// Package repository implements the PostgreSQL stores for camps,
// registrations, payments, users and feedback. It uses pgx directly (no ORM).
//
// Each repository owns one table, and no method opens a transaction spanning
// tables. Cross-table sequencing is left to the service layer.
package repository

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrInvalidID is returned when an id is not in the store's id format.
var ErrInvalidID = errors.New("invalid id")

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns a user search into an ILIKE pattern that matches the
// search text literally anywhere in the column. An empty search matches
// everything.
func containsPattern(search string) string {
	return "%" + likeEscaper.Replace(search) + "%"
}
