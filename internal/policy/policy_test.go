package policy

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedConfirmer struct {
	answer  bool
	prompts []string
}

func (c *scriptedConfirmer) Confirm(prompt string) (bool, error) {
	c.prompts = append(c.prompts, prompt)
	return c.answer, nil
}

func TestPromptText_Grammar(t *testing.T) {
	cases := []struct {
		name     string
		category Category
		paths    []string
		want     string
	}{
		{
			name:     "unincluded singular",
			category: UnincludedModifications,
			paths:    []string{"c.txt"},
			want:     "1 locally modified file is not part of this revision:",
		},
		{
			name:     "unincluded plural",
			category: UnincludedModifications,
			paths:    []string{"c.txt", "d.txt"},
			want:     "2 locally modified files are not part of this revision:",
		},
		{
			name:     "missing singular",
			category: MissingPaths,
			paths:    []string{"gone.txt"},
			want:     "1 declared file does not exist in the working copy and will be skipped:",
		},
		{
			name:     "missing plural",
			category: MissingPaths,
			paths:    []string{"gone.txt", "lost.txt"},
			want:     "2 declared files do not exist in the working copy and will be skipped:",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			text := PromptText(tc.category, tc.paths)
			assert.True(t, strings.HasPrefix(text, tc.want), "prompt %q should start with %q", text, tc.want)
			for _, p := range tc.paths {
				assert.Contains(t, text, "\n  "+p)
			}
			assert.True(t, strings.HasSuffix(text, "Continue with the commit?"))
		})
	}
}

func TestInteractive_Decide(t *testing.T) {
	yes := &scriptedConfirmer{answer: true}
	d, err := NewInteractive(yes).Decide(UnincludedModifications, []string{"c.txt"})
	require.NoError(t, err)
	assert.Equal(t, Proceed, d)
	require.Len(t, yes.prompts, 1)
	assert.Contains(t, yes.prompts[0], "c.txt")

	no := &scriptedConfirmer{answer: false}
	d, err = NewInteractive(no).Decide(MissingPaths, []string{"gone.txt"})
	require.NoError(t, err)
	assert.Equal(t, Abort, d)
}

func TestAutoApprove_AlwaysProceeds(t *testing.T) {
	d, err := AutoApprove{}.Decide(MissingPaths, []string{"gone.txt"})
	require.NoError(t, err)
	assert.Equal(t, Proceed, d)
}

func TestTTYConfirmer_Answers(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"n\n", false},
		{"\n", false},
		{"whatever\n", false},
	}

	for _, tc := range cases {
		var out bytes.Buffer
		c := &TTYConfirmer{
			In:          strings.NewReader(tc.input),
			Out:         &out,
			Interactive: true,
		}
		got, err := c.Confirm("Continue?")
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "input %q", tc.input)
		assert.Contains(t, out.String(), "[y/N]")
	}
}

func TestTTYConfirmer_NonInteractiveDefaultsNo(t *testing.T) {
	var out bytes.Buffer
	c := &TTYConfirmer{
		In:          strings.NewReader("y\n"), // must not be read
		Out:         &out,
		Interactive: false,
	}
	got, err := c.Confirm("Continue?")
	require.NoError(t, err)
	assert.False(t, got)
	assert.Contains(t, out.String(), "not a terminal")
}
