package validation

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gravadigital/turnier-api/internal/domain/common"
	"github.com/gravadigital/turnier-api/internal/domain/schedule"
	"github.com/gravadigital/turnier-api/internal/storage"
)

const (
	maxNameLength = 100
	maxTimeslots  = 96
	maxArenas     = 64
	maxRounds     = 32
	maxGroups     = 256
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), common.ErrInvalidInput)
}

// ValidateRequired checks that a field is not blank
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return invalid("%s is required", fieldName)
	}
	return nil
}

// ValidateMaxLength checks the rune length of a string
func ValidateMaxLength(value string, maxLength int, fieldName string) error {
	if utf8.RuneCountInString(value) > maxLength {
		return invalid("%s must be at most %d characters long", fieldName, maxLength)
	}
	return nil
}

// ValidateRange checks lo <= n <= hi
func ValidateRange(n, lo, hi uint32, fieldName string) error {
	if n < lo || n > hi {
		return invalid("%s must be between %d and %d", fieldName, lo, hi)
	}
	return nil
}

// ParseID parses a numeric path parameter
func ParseID(raw, fieldName string) (uint32, error) {
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, invalid("%s must be a non-negative integer", fieldName)
	}
	return uint32(n), nil
}

// TournamentValidation bundles the request checks of the tournament API
type TournamentValidation struct{}

// ValidateName checks tournament, event and fencer names
func (v TournamentValidation) ValidateName(name string) error {
	if err := ValidateRequired(name, "name"); err != nil {
		return err
	}
	return ValidateMaxLength(name, maxNameLength, "name")
}

func (v TournamentValidation) ValidateDaySpec(spec schedule.Spec) error {
	if spec.Date.IsZero() {
		return invalid("date is required")
	}
	if err := ValidateRange(spec.NumberTimeSlots, 1, maxTimeslots, "number_time_slots"); err != nil {
		return err
	}
	return ValidateRange(spec.NumberArenas, 1, maxArenas, "number_arenas")
}

func (v TournamentValidation) ValidateBewerb(name string, rounds, groups uint32) error {
	if err := v.ValidateName(name); err != nil {
		return err
	}
	if err := ValidateRange(rounds, 1, maxRounds, "number_rounds"); err != nil {
		return err
	}
	return ValidateRange(groups, 1, maxGroups, "number_groups")
}

// ValidateSnapshotPath accepts an empty path, meaning the configured default
func (v TournamentValidation) ValidateSnapshotPath(path string) error {
	if path == "" {
		return nil
	}
	return storage.ValidatePath(path)
}
