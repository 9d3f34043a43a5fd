// Package storage holds the backends a snapshot can be written to. A
// snapshot is addressed by a path and consists of named documents.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gravadigital/turnier-api/internal/domain/common"
)

// ErrDocumentNotFound is returned by Read when the document does not exist
var ErrDocumentNotFound = errors.New("document not found")

// SnapshotStore reads and writes the documents of a snapshot
type SnapshotStore interface {
	Write(ctx context.Context, snapshot, name string, data []byte) error
	Read(ctx context.Context, snapshot, name string) ([]byte, error)
	// List returns the document names stored under snapshot, sorted
	List(ctx context.Context, snapshot string) ([]string, error)
	Close() error
}

// ValidatePath rejects snapshot paths that could escape the backend's namespace
func ValidatePath(snapshot string) error {
	return validatePart("snapshot path", snapshot)
}

// ValidateKey checks a snapshot path and document name
func ValidateKey(snapshot, name string) error {
	if err := ValidatePath(snapshot); err != nil {
		return err
	}
	return validatePart("document name", name)
}

func validatePart(kind, value string) error {
	switch {
	case strings.TrimSpace(value) == "":
		return fmt.Errorf("%w: %s is required", common.ErrInvalidInput, kind)
	case strings.ContainsAny(value, `/\`), value == "." || value == "..":
		return fmt.Errorf("%w: invalid %s %q", common.ErrInvalidInput, kind, value)
	}
	return nil
}
