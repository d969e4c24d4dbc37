package migrate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"embers/internal/models"
)

type votePair struct {
	name      string
	direction int
}

func collectVotes(up, down string) []votePair {
	var pairs []votePair
	for name, dir := range SplitVotes(up, down) {
		pairs = append(pairs, votePair{name, dir})
	}
	return pairs
}

func TestSplitVotes(t *testing.T) {
	tests := []struct {
		name string
		up   string
		down string
		want []votePair
	}{
		{
			name: "both lists",
			up:   "alice,bob",
			down: "carol",
			want: []votePair{{"alice", 1}, {"bob", 1}, {"carol", -1}},
		},
		{
			name: "empty strings",
			up:   "",
			down: "",
			want: nil,
		},
		{
			name: "double comma drops empty token",
			up:   "carol,,dave",
			down: "",
			want: []votePair{{"carol", 1}, {"dave", 1}},
		},
		{
			name: "trailing comma",
			up:   "alice,",
			down: "bob,",
			want: []votePair{{"alice", 1}, {"bob", -1}},
		},
		{
			name: "whitespace-only tokens dropped and names trimmed",
			up:   "  ,\talice ",
			down: "   ",
			want: []votePair{{"alice", 1}},
		},
		{
			name: "same name on both sides passes through",
			up:   "alice",
			down: "alice",
			want: []votePair{{"alice", 1}, {"alice", -1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, collectVotes(tt.up, tt.down))
		})
	}
}

func TestSplitVotesRestartable(t *testing.T) {
	seq := SplitVotes("alice,bob", "carol")
	first := 0
	for range seq {
		first++
	}
	second := 0
	for range seq {
		second++
	}
	assert.Equal(t, first, second)
}

func TestSplitVotesEarlyStop(t *testing.T) {
	for name, dir := range SplitVotes("alice,bob,carol", "dave") {
		assert.Equal(t, "alice", name)
		assert.Equal(t, models.Upvote, dir)
		break
	}
}
