package compare

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForm(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"int", 5, "5"},
		{"negative", -3, "-3"},
		{"float", 1.5, "1.5"},
		{"bool", true, "true"},
		{"string quoted", "foo", `"foo"`},
		{"empty string", "", `""`},
		{"nil", nil, "<nil>"},
		{"slice", []int{1, 2, 3}, "[1, 2, 3]"},
		{"empty slice", []int{}, "[]"},
		{"nested slice", [][]int{{1}, {2, 3}}, "[[1], [2, 3]]"},
		{"string slice", []string{"a", "b"}, `["a", "b"]`},
		{"map sorted keys", map[string]int{"b": 2, "a": 1}, `{"a": 1, "b": 2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Form(tt.value))
		})
	}
}

func TestDiff_Scalars(t *testing.T) {
	assert.Equal(t, []string{
		"Expected: 5",
		"     Got: 3",
	}, Diff(3, 5))
}

func TestDiff_Strings(t *testing.T) {
	assert.Equal(t, []string{
		`Expected: "bar"`,
		`     Got: "foo"`,
	}, Diff("foo", "bar"))
}

func TestDiff_Sequences(t *testing.T) {
	assert.Equal(t, []string{
		"Expected: [1, 2, 3]",
		"     Got: [1, 2, 4]",
	}, Diff([]int{1, 2, 4}, []int{1, 2, 3}))
}

func TestRender_SmallSequenceOneLine(t *testing.T) {
	lines := Render("Expected: ", []int{1, 2, 3, 4, 5})
	require.Len(t, lines, 1)
	assert.Equal(t, "Expected: [1, 2, 3, 4, 5]", lines[0])
}

func TestRender_EmptySequence(t *testing.T) {
	assert.Equal(t, []string{"Expected: []"}, Render("Expected: ", []int{}))
}

func TestRender_BigSequenceBlock(t *testing.T) {
	// Six elements, each wider than five characters once quoted.
	seq := []string{"first0", "second", "third0", "fourth", "fifth0", "sixth0"}
	lines := Render("Expected: ", seq)

	// Open bracket, one line per element, closing bracket.
	require.Len(t, lines, len(seq)+2)
	assert.Equal(t, "Expected: [", lines[0])
	for i, el := range seq {
		assert.Equal(t, strings.Repeat(" ", 14)+`"`+el+`",`, lines[i+1])
	}
	assert.Equal(t, strings.Repeat(" ", 10)+"]", lines[len(lines)-1])
}

func TestRender_WideElementTriggersBlock(t *testing.T) {
	// A single element whose form exceeds ten characters is enough.
	lines := Render("     Got: ", []string{"a very long element"})
	require.Len(t, lines, 3)
	assert.Equal(t, "     Got: [", lines[0])
	assert.Equal(t, strings.Repeat(" ", 14)+`"a very long element",`, lines[1])
	assert.Equal(t, strings.Repeat(" ", 10)+"]", lines[2])
}

func TestRender_NestedBigSequence(t *testing.T) {
	inner := []string{"first0", "second", "third0", "fourth", "fifth0", "sixth0"}
	outer := [][]string{inner}
	lines := Render("Expected: ", outer)

	// The outer block holds the inner block rendered with a blanked
	// prefix and a trailing comma on its closing bracket.
	require.Greater(t, len(lines), 3)
	assert.Equal(t, "Expected: [", lines[0])
	assert.Equal(t, strings.Repeat(" ", 14)+"[", lines[1])
	assert.Equal(t, strings.Repeat(" ", 10)+"],", lines[len(lines)-2])
	assert.Equal(t, strings.Repeat(" ", 10)+"]", lines[len(lines)-1])
}

func TestRender_DeterministicLines(t *testing.T) {
	v := map[string][]int{"b": {1, 2}, "a": {3}}
	first := Render("Got: ", v)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Render("Got: ", v))
	}
}
