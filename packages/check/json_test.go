package check

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONEqual(t *testing.T) {
	t.Run("key order irrelevant", func(t *testing.T) {
		assert.NoError(t, JSONEqual(`{"a": 1, "b": 2}`, `{"b": 2, "a": 1}`))
	})

	t.Run("array order matters", func(t *testing.T) {
		assert.NoError(t, JSONEqual(`[1, 2, 3]`, `[1, 2, 3]`))
		assert.Error(t, JSONEqual(`[1, 3, 2]`, `[1, 2, 3]`))
	})

	t.Run("nested documents", func(t *testing.T) {
		assert.NoError(t, JSONEqual(
			`{"user": {"name": "John", "tags": ["a", "b"]}}`,
			`{"user": {"tags": ["a", "b"], "name": "John"}}`,
		))
	})

	t.Run("mismatch renders diff", func(t *testing.T) {
		f := asFailure(t, JSONEqual(`{"a": 1}`, `{"a": 2}`))
		assert.Equal(t, []string{`Expected: {"a": 2}`, `     Got: {"a": 1}`}, f.Lines())
	})

	t.Run("invalid JSON is a config error", func(t *testing.T) {
		err := JSONEqual("not json", `{}`)
		require.Error(t, err)
		var f *Failure
		assert.False(t, errors.As(err, &f))

		err = JSONEqual(`{}`, "not json")
		require.Error(t, err)
		assert.False(t, errors.As(err, &f))
	})
}

func TestMatchesSchema(t *testing.T) {
	schema := []byte(`{
		"type": "object",
		"required": ["name", "email"],
		"properties": {
			"name": {"type": "string"},
			"email": {"type": "string"}
		}
	}`)

	t.Run("valid document", func(t *testing.T) {
		doc := map[string]any{"name": "John", "email": "john@example.com"}
		assert.NoError(t, MatchesSchema(doc, schema))
	})

	t.Run("missing field fails", func(t *testing.T) {
		doc := map[string]any{"name": "John"}
		f := asFailure(t, MatchesSchema(doc, schema))
		require.NotEmpty(t, f.Lines())
		assert.Contains(t, f.Lines()[0], "email")
	})

	t.Run("broken schema is a config error", func(t *testing.T) {
		err := MatchesSchema(map[string]any{}, []byte(`{{`))
		require.Error(t, err)
		var f *Failure
		assert.False(t, errors.As(err, &f))
	})
}
