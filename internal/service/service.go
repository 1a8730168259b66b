// Package service contains the business rules that sit between the HTTP
// handlers and the entity store.
//
//	Handler (HTTP layer)     → parses requests, writes responses
//	Service (business layer) → validates input, checks parents, assembles views
//	Repository (data layer)  → reads/writes the database
//
// Every service takes a repository.Store interface, never a concrete sqlite
// or postgres type, so tests run against an in-memory fake.
//
// Validation always happens at the top of a method, before the store is
// touched. Parent existence (list for a gear item, gear item for an
// alternate) is checked once at creation time.
package service

import (
	"errors"
	"log/slog"

	"github.com/sakif/packlist/internal/apperror"
)

// logStoreError logs err unless it is an expected domain outcome. NotFound
// and validation failures are normal responses, not failures worth a log line.
func logStoreError(logger *slog.Logger, msg string, err error, attrs ...any) {
	if errors.Is(err, apperror.ErrNotFound) || errors.Is(err, apperror.ErrValidation) {
		return
	}
	logger.Error(msg, append(attrs, slog.String("error", err.Error()))...)
}
