package cmdtree

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// demoRegistry mirrors the job/user demo hierarchy used across this package's
// tests. Handlers record their invocation in calls.
func demoRegistry(calls *[]string) *Registry {
	record := func(name string) HandlerFunc {
		return func(_ Options, _ *Printer) error {
			if calls != nil {
				*calls = append(*calls, name)
			}
			return nil
		}
	}
	reg := New()
	jobs := reg.Group("jobs")
	jobs.Command("list", record("jobs list"))
	jobs.Command("start", record("jobs start")).Options("nice", "max-mem")
	jobs.Command("stop", record("jobs stop"))
	users := reg.Group("users")
	users.Command("add", record("users add"))
	users.Command("remove", record("users remove"))
	users.Command("list", record("users list"))
	return reg
}

func TestRegistry_Resolve(t *testing.T) {
	reg := demoRegistry(nil)

	t.Run("full path without options", func(t *testing.T) {
		res, err := reg.Resolve([]string{"jobs", "list"})
		require.NoError(t, err)
		assert.False(t, res.Help)
		assert.Equal(t, "list", res.Command.Name())
		assert.Equal(t, []string{"jobs", "list"}, res.Path)
		assert.Empty(t, res.Options)
	})

	t.Run("options in both forms", func(t *testing.T) {
		res, err := reg.Resolve([]string{"jobs", "start", "--nice=5", "--max-mem", "128k"})
		require.NoError(t, err)
		assert.Equal(t, "start", res.Command.Name())
		assert.Equal(t, Options{
			"nice":    StringValue("5"),
			"max_mem": StringValue("128k"),
		}, res.Options)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := reg.Resolve([]string{"jobs", "bogus"})
		assert.ErrorIs(t, err, ErrUnknownToken)
		var unknown *UnknownTokenError
		require.True(t, errors.As(err, &unknown))
		assert.Equal(t, "bogus", unknown.Token)
		assert.Equal(t, []string{"jobs"}, unknown.Path)
	})

	t.Run("incomplete path", func(t *testing.T) {
		_, err := reg.Resolve([]string{"jobs"})
		assert.ErrorIs(t, err, ErrIncompletePath)
		var incomplete *IncompletePathError
		require.True(t, errors.As(err, &incomplete))
		assert.Equal(t, []string{"jobs"}, incomplete.Path)
	})

	t.Run("empty token sequence", func(t *testing.T) {
		_, err := reg.Resolve(nil)
		assert.ErrorIs(t, err, ErrIncompletePath)
	})

	t.Run("help sentinel halts resolution", func(t *testing.T) {
		res, err := reg.Resolve([]string{"jobs", "--help", "start"})
		require.NoError(t, err)
		assert.True(t, res.Help)
		assert.Nil(t, res.Command)
		assert.Equal(t, []string{"jobs"}, res.Path)
	})

	t.Run("help sentinel at root", func(t *testing.T) {
		res, err := reg.Resolve([]string{"--help"})
		require.NoError(t, err)
		assert.True(t, res.Help)
		assert.Empty(t, res.Path)
	})

	t.Run("trailing tokens after command are dropped", func(t *testing.T) {
		res, err := reg.Resolve([]string{"jobs", "list", "extra", "tokens"})
		require.NoError(t, err)
		assert.Equal(t, "list", res.Command.Name())
		assert.Equal(t, []string{"jobs", "list"}, res.Path)
	})
}

func TestRegistry_Resolve_OptionForms(t *testing.T) {
	reg := demoRegistry(nil)
	tests := map[string]struct {
		tokens []string
		want   Options
	}{
		"one-token form": {
			tokens: []string{"jobs", "start", "--nice=5"},
			want:   Options{"nice": StringValue("5")},
		},
		"two-token form": {
			tokens: []string{"jobs", "start", "--nice", "5"},
			want:   Options{"nice": StringValue("5")},
		},
		"value containing separator splits once": {
			tokens: []string{"jobs", "start", "--nice=a=b"},
			want:   Options{"nice": StringValue("a=b")},
		},
		"bare flag at end of sequence": {
			tokens: []string{"jobs", "start", "--nice"},
			want:   Options{"nice": FlagValue()},
		},
		"option followed by option stays a flag": {
			tokens: []string{"jobs", "start", "--nice", "--max-mem=1g"},
			want:   Options{"nice": FlagValue(), "max_mem": StringValue("1g")},
		},
		"single-hyphen token is consumed as a value": {
			tokens: []string{"jobs", "start", "--nice", "-5"},
			want:   Options{"nice": StringValue("-5")},
		},
		"empty key is preserved": {
			tokens: []string{"jobs", "start", "--=value"},
			want:   Options{"": StringValue("value")},
		},
		"extra leading hyphens are stripped": {
			tokens: []string{"jobs", "start", "---nice=5"},
			want:   Options{"nice": StringValue("5")},
		},
		"last occurrence wins": {
			tokens: []string{"jobs", "start", "--nice=1", "--nice=2"},
			want:   Options{"nice": StringValue("2")},
		},
		"hyphenated key is normalized": {
			tokens: []string{"jobs", "start", "--max-mem=128k"},
			want:   Options{"max_mem": StringValue("128k")},
		},
		"options may precede path tokens": {
			tokens: []string{"--nice=5", "jobs", "start"},
			want:   Options{"nice": StringValue("5")},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			res, err := reg.Resolve(tc.tokens)
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Options)
		})
	}
}
