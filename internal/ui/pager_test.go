package ui

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPagerWritesToCustomOutput(t *testing.T) {
	t.Setenv("LINEAR_PAGER", "false")
	var buf bytes.Buffer
	require.NoError(t, ToPager("line 1\nline 2\n", PagerOptions{Out: &buf}))
	assert.Equal(t, "line 1\nline 2\n", buf.String())
}

func TestShouldUsePager(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, shouldUsePager(PagerOptions{NoPager: true}))
	assert.False(t, shouldUsePager(PagerOptions{Out: &buf}))

	t.Setenv("LINEAR_NO_PAGER", "1")
	assert.False(t, shouldUsePager(PagerOptions{Out: os.Stdout}))
}

func TestPagerCommand(t *testing.T) {
	t.Setenv("LINEAR_PAGER", "")
	t.Setenv("PAGER", "")
	assert.Equal(t, []string{"less"}, pagerCommand())

	t.Setenv("PAGER", "more")
	assert.Equal(t, []string{"more"}, pagerCommand())

	t.Setenv("LINEAR_PAGER", "less -S")
	assert.Equal(t, []string{"less", "-S"}, pagerCommand())
}
