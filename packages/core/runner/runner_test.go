package runner

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/abelmx/affirm/packages/check"
	"github.com/abelmx/affirm/packages/marker"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadMarkers(t *testing.T, src string) *marker.Table {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "suite_test.go"), []byte(src), 0o644))
	table, err := marker.Load(dir)
	require.NoError(t, err)
	return table
}

func TestRun_Outcomes(t *testing.T) {
	suite := NewSuite("core")
	suite.Register("passes", func() error { return nil })
	suite.Register("fails", func() error { return check.Equal(3, 5) })

	result, err := NewRunner(nil).Run(suite)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Passed)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 0, result.Skipped)
	require.Len(t, result.Results, 2)

	assert.True(t, result.Results[0].Passed)
	assert.Nil(t, result.Results[0].Failure)

	failed := result.Results[1]
	assert.False(t, failed.Passed)
	require.NotNil(t, failed.Failure)
	assert.Equal(t, []string{"Expected: 5", "     Got: 3"}, failed.Failure.Lines())
}

func TestRun_AssignsRunID(t *testing.T) {
	suite := NewSuite("ids")
	suite.Register("noop", func() error { return nil })

	result, err := NewRunner(nil).Run(suite)
	require.NoError(t, err)
	_, parseErr := uuid.Parse(result.ID)
	assert.NoError(t, parseErr)
	assert.False(t, result.StartedAt.IsZero())
	require.NotNil(t, result.Stats)
}

func TestRun_ConfigErrorAborts(t *testing.T) {
	boom := errors.New("bad wiring")
	suite := NewSuite("broken")
	suite.Register("misconfigured", func() error { return boom })

	_, err := NewRunner(nil).Run(suite)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestRun_SkipMarker(t *testing.T) {
	table := loadMarkers(t, `package sample

//affirm:skip flaky on CI
func TestFlaky() error { return nil }
`)

	ran := false
	suite := NewSuite("skips", WithMarkers(table))
	suite.Register("TestFlaky", func() error {
		ran = true
		return nil
	})

	result, err := NewRunner(nil).Run(suite)
	require.NoError(t, err)

	assert.False(t, ran, "skipped routine must not execute")
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Results, 1)
	assert.Equal(t, "flaky on CI", result.Results[0].SkipReason)
}

func TestRun_NameMarker(t *testing.T) {
	table := loadMarkers(t, `package sample

//affirm:name Renders the empty diff
func TestEmptyDiff() error { return nil }
`)

	suite := NewSuite("names", WithMarkers(table))
	suite.Register("TestEmptyDiff", func() error { return nil })

	result, err := NewRunner(nil).Run(suite)
	require.NoError(t, err)
	require.Len(t, result.Results, 1)
	assert.Equal(t, "Renders the empty diff", result.Results[0].Name)
}

func TestRun_XFailMarker(t *testing.T) {
	table := loadMarkers(t, `package sample

//affirm:xfail
func TestKnownBroken() error { return nil }

//affirm:xfail
func TestFixedButMarked() error { return nil }
`)

	suite := NewSuite("xfail", WithMarkers(table))
	suite.Register("TestKnownBroken", func() error { return check.True(false) })
	suite.Register("TestFixedButMarked", func() error { return nil })

	result, err := NewRunner(nil).Run(suite)
	require.NoError(t, err)
	require.Len(t, result.Results, 2)

	assert.True(t, result.Results[0].Passed, "expected failure counts as pass")
	assert.False(t, result.Results[1].Passed, "unexpected pass counts as failure")
	require.NotNil(t, result.Results[1].Failure)
	assert.Contains(t, result.Results[1].Failure.Lines()[0], "expected to fail")
}

func TestRun_Bail(t *testing.T) {
	ran := false
	suite := NewSuite("bail")
	suite.Register("fails", func() error { return check.True(false) })
	suite.Register("never", func() error {
		ran = true
		return nil
	})

	result, err := NewRunner(&Config{Bail: true}).Run(suite)
	require.NoError(t, err)
	assert.False(t, ran)
	assert.Len(t, result.Results, 1)
}

func TestRun_NameFilter(t *testing.T) {
	suite := NewSuite("filter")
	suite.Register("compare roundtrip", func() error { return nil })
	suite.Register("marker lookup", func() error { return nil })

	result, err := NewRunner(&Config{NameFilter: "marker"}).Run(suite)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Passed)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, "filtered out", result.Results[0].SkipReason)
}
