package common

import "fmt"

// Warning codes for integrity diagnostics
const (
	WarnStaleArena       = "stale_arena"
	WarnStaleGroup       = "stale_group"
	WarnUnknownBewerb    = "unknown_bewerb"
	WarnUnresolvedGroup  = "unresolved_group"
	WarnUnresolvedArena  = "unresolved_arena"
	WarnAssignmentClash  = "assignment_clash"
	WarnRoundOutOfRange  = "round_out_of_range"
	WarnChecksumMismatch = "checksum_mismatch"
	WarnDuplicateID      = "duplicate_id"
)

// Warning is a non-fatal integrity finding. The operation that produced it still succeeded.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (w Warning) String() string {
	return w.Code + ": " + w.Message
}

// Diagnostics collects warnings produced by a single operation
type Diagnostics []Warning

// Add appends a formatted warning
func (d *Diagnostics) Add(code, format string, args ...any) {
	*d = append(*d, Warning{Code: code, Message: fmt.Sprintf(format, args...)})
}

// Merge appends all warnings of other
func (d *Diagnostics) Merge(other Diagnostics) {
	*d = append(*d, other...)
}

// Empty reports whether no warning was recorded
func (d Diagnostics) Empty() bool {
	return len(d) == 0
}
