package output

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCommenter struct {
	number int
	body   string
	err    error
}

func (f *fakeCommenter) PostComment(_ context.Context, number int, body string) error {
	f.number = number
	f.body = body
	return f.err
}

func TestReporterWritesStdout(t *testing.T) {
	var out bytes.Buffer

	err := NewReporter(&out).Report(context.Background(), "## ✅ DNS")

	require.NoError(t, err)
	assert.Equal(t, "## ✅ DNS\n", out.String())
}

func TestReporterAppendsStepSummary(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "summary.md", []byte("# Previous step\n"), 0o644))

	var out bytes.Buffer
	r := NewReporter(&out, WithStepSummary(mem, "summary.md"))
	require.NoError(t, r.Report(context.Background(), "comment"))

	data, err := afero.ReadFile(mem, "summary.md")
	require.NoError(t, err)
	assert.Equal(t, "# Previous step\ncomment\n", string(data))
}

func TestReporterPostsComment(t *testing.T) {
	c := &fakeCommenter{}
	r := NewReporter(nil, WithPullRequest(c, 42))

	require.NoError(t, r.Report(context.Background(), "body"))

	assert.Equal(t, 42, c.number)
	assert.Equal(t, "body", c.body)
}

func TestReporterPostFailure(t *testing.T) {
	c := &fakeCommenter{err: errors.New("forbidden")}
	r := NewReporter(nil, WithPullRequest(c, 1))

	err := r.Report(context.Background(), "body")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "forbidden")
}
