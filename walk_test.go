package cmdtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescend(t *testing.T) {
	reg := demoRegistry(nil)

	jobs, ok := descend(reg.Root(), "jobs")
	require.True(t, ok)
	assert.IsType(t, &Group{}, jobs)

	start, ok := descend(jobs, "start")
	require.True(t, ok)
	assert.IsType(t, &Command{}, start)

	_, ok = descend(jobs, "bogus")
	assert.False(t, ok, "unknown child does not descend")

	_, ok = descend(start, "anything")
	assert.False(t, ok, "commands have no children to descend into")
}

func TestRegistry_WalkGroups(t *testing.T) {
	reg := demoRegistry(nil)
	tests := map[string]struct {
		tokens       []string
		wantConsumed []string
		wantRest     []string
	}{
		"empty walk stays at the root": {
			tokens: nil,
		},
		"full descent consumes everything": {
			tokens:       []string{"jobs", "start"},
			wantConsumed: []string{"jobs", "start"},
		},
		"stops at an unknown child": {
			tokens:       []string{"jobs", "bogus", "more"},
			wantConsumed: []string{"jobs"},
			wantRest:     []string{"bogus", "more"},
		},
		"stops once a command is reached": {
			tokens:       []string{"jobs", "list", "extra"},
			wantConsumed: []string{"jobs", "list"},
			wantRest:     []string{"extra"},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, consumed, rest := reg.walkGroups(tc.tokens)
			assert.Equal(t, tc.wantConsumed, consumed)
			assert.Equal(t, tc.wantRest, rest)
		})
	}
}
