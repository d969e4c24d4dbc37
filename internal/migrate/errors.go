package migrate

import (
	"errors"
	"fmt"
)

// ErrAlreadyMigrated is returned when the target schema already holds rows.
// The migration runs at most once; a second run is refused before any write.
var ErrAlreadyMigrated = errors.New("target schema already contains data, migration runs at most once")

// ValidationError aborts the migration: a derived identifier (username, topic
// name) or required text violates its length or non-empty constraint. Never
// repaired by truncation; truncating identifiers could collide and break
// uniqueness.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// ResolutionError aborts the migration: a legacy record references a name or
// post that derivation never produced, meaning the scan was incomplete.
type ResolutionError struct {
	Kind string // "username", "topic" or "post"
	Ref  string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("unresolved %s reference %q", e.Kind, e.Ref)
}

// AmbiguousContentError aborts the migration: a legacy post either has both
// url and text content or neither, and the source defines no resolution
// policy. The corpus has to be repaired by hand before rerunning.
type AmbiguousContentError struct {
	LegacyPostID uint
	BothSet      bool
}

func (e *AmbiguousContentError) Error() string {
	if e.BothSet {
		return fmt.Sprintf("legacy post %d has both url and text content set", e.LegacyPostID)
	}
	return fmt.Sprintf("legacy post %d has neither url nor text content set", e.LegacyPostID)
}

// Rejection kinds.
const (
	RejectionDuplicateVote = "duplicate_vote"
)

// Rejection records a single legacy record the migration skipped without
// aborting. Reported after commit, never silently dropped.
type Rejection struct {
	Kind         string `json:"kind"`
	Username     string `json:"username"`
	LegacyPostID uint   `json:"legacy_post_id"`
	Reason       string `json:"reason"`
}

func (r Rejection) String() string {
	return fmt.Sprintf("%s: user %q on legacy post %d (%s)", r.Kind, r.Username, r.LegacyPostID, r.Reason)
}
