package migrate

import (
	"iter"
	"strings"

	"embers/internal/models"
)

// SplitVotes expands a legacy post's comma-joined voter lists into individual
// (username, direction) pairs, upvotes first. Empty and whitespace-only tokens
// come from trailing or doubled commas in the legacy data and are dropped.
// The sequence is lazy and restartable; it depends only on its two arguments.
func SplitVotes(upvotes, downvotes string) iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		if !splitList(upvotes, models.Upvote, yield) {
			return
		}
		splitList(downvotes, models.Downvote, yield)
	}
}

func splitList(list string, direction int, yield func(string, int) bool) bool {
	if list == "" {
		return true
	}
	for token := range strings.SplitSeq(list, ",") {
		name := strings.TrimSpace(token)
		if name == "" {
			continue
		}
		if !yield(name, direction) {
			return false
		}
	}
	return true
}
