package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_parseArg(t *testing.T) {
	for _, tc := range []struct {
		arg   string
		check func(t *testing.T, cfg *config)
		err   string
	}{
		{arg: "help", check: func(t *testing.T, cfg *config) {
			assert.True(t, cfg.help)
		}},
		{arg: "-version", check: func(t *testing.T, cfg *config) {
			assert.True(t, cfg.version)
		}},

		{arg: "w60", check: func(t *testing.T, cfg *config) {
			assert.Equal(t, 60, cfg.width)
		}},
		{arg: "w", check: func(t *testing.T, cfg *config) {
			assert.Equal(t, 72, cfg.width)
		}},
		{arg: "8", check: func(t *testing.T, cfg *config) {
			assert.Equal(t, 8, cfg.prefix)
		}},
		{arg: "9", check: func(t *testing.T, cfg *config) {
			assert.Equal(t, 9, cfg.width)
			assert.Equal(t, -1, cfg.prefix)
		}},

		{arg: "w60j1g1", check: func(t *testing.T, cfg *config) {
			assert.Equal(t, 60, cfg.width)
			assert.True(t, cfg.just)
			assert.True(t, cfg.guess)
		}},
		{arg: "j", check: func(t *testing.T, cfg *config) {
			assert.True(t, cfg.just)
		}},
		{arg: "j0", check: func(t *testing.T, cfg *config) {
			assert.False(t, cfg.just)
		}},
		{arg: "h", check: func(t *testing.T, cfg *config) {
			assert.Equal(t, 1, cfg.hang)
		}},
		{arg: "h3", check: func(t *testing.T, cfg *config) {
			assert.Equal(t, 3, cfg.hang)
		}},
		{arg: "r", check: func(t *testing.T, cfg *config) {
			assert.Equal(t, 3, cfg.repeat)
		}},
		{arg: "p4s2", check: func(t *testing.T, cfg *config) {
			assert.Equal(t, 4, cfg.prefix)
			assert.Equal(t, 2, cfg.suffix)
		}},
		{arg: "t0", check: func(t *testing.T, cfg *config) {
			assert.False(t, cfg.touch)
			assert.True(t, cfg.touchSet)
		}},

		{arg: "B=_D", check: func(t *testing.T, cfg *config) {
			assert.True(t, cfg.bodychars.Has('7'))
			assert.False(t, cfg.bodychars.Has('a'))
		}},
		{arg: "Q+|", check: func(t *testing.T, cfg *config) {
			assert.True(t, cfg.quotechars.Has('|'))
			assert.True(t, cfg.quotechars.Has('>'), "augment keeps the default")
		}},
		{arg: "Q- ", check: func(t *testing.T, cfg *config) {
			assert.False(t, cfg.quotechars.Has(' '))
			assert.True(t, cfg.quotechars.Has('>'))
		}},
		{arg: "T=.", check: func(t *testing.T, cfg *config) {
			assert.True(t, cfg.terminalchars.Has('.'))
			assert.False(t, cfg.terminalchars.Has('?'))
		}},

		{arg: "z", err: "Bad argument: z"},
		{arg: "j2", err: "Bad argument: j2"},
		{arg: "B.", err: "Bad argument: B."},
		{arg: "w10000", err: "Bad argument: w10000"},
		{arg: "10000", err: "Bad argument: 10000"},
	} {
		t.Run(fmt.Sprintf("arg:%q", tc.arg), func(t *testing.T) {
			cfg := newConfig()
			err := cfg.parseArg(tc.arg)
			if tc.err != "" {
				require.EqualError(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			tc.check(t, cfg)
		})
	}
}

func TestConfig_parseArgs_files(t *testing.T) {
	name := writeTempFile(t, "some words\n")

	cfg := newConfig()
	require.NoError(t, cfg.parseArgs([]string{"w60", name}))
	assert.Equal(t, 60, cfg.width)
	assert.Equal(t, []string{name}, cfg.files)

	cfg = newConfig()
	err := cfg.parseArgs([]string{"no-such-file-anywhere"})
	assert.EqualError(t, err, "Bad argument: no-such-file-anywhere")
	assert.True(t, cfg.help, "bad arguments ask for usage")
}
