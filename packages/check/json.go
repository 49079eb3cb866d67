package check

import (
	"encoding/json"
	"fmt"

	"github.com/abelmx/affirm/packages/compare"
	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"
)

// JSONEqual checks that two JSON documents are structurally equal: key
// order is irrelevant, array order is not. Invalid JSON on either side
// is a configuration error, not a failed check.
func JSONEqual(value, expected string, opts ...Option) error {
	if !gjson.Valid(value) {
		return fmt.Errorf("check: value is not valid JSON")
	}
	if !gjson.Valid(expected) {
		return fmt.Errorf("check: expected document is not valid JSON")
	}
	o := buildOptions(opts)
	av := gjson.Parse(value).Value()
	ev := gjson.Parse(expected).Value()
	if compare.Values(av, ev, o.compareOptions()...) {
		return nil
	}
	return fail(o, compare.Diff(av, ev)...)
}

// MatchesSchema validates value against a JSON Schema document. Schema
// load or compile problems are configuration errors.
func MatchesSchema(value any, schema []byte, opts ...Option) error {
	doc, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("check: marshal value: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewBytesLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("check: schema validation: %w", err)
	}
	if result.Valid() {
		return nil
	}

	o := buildOptions(opts)
	lines := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		lines = append(lines, desc.String())
	}
	return fail(o, lines...)
}
