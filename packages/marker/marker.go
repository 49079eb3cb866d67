package marker

import "strings"

// Prefix starts every marker directive, with no space after the
// comment slashes, following the //go: directive convention.
const Prefix = "//affirm:"

// Well-known marker kinds. Any other kind string is legal; these are
// the ones the runner and CLI act on.
const (
	Skip   = "skip"   // do not run; optional payload is the reason
	XFail  = "xfail"  // routine is expected to fail
	Serial = "serial" // run in isolation, never alongside other routines
	Name   = "name"   // payload overrides the display name
)

// Marker is a tag attached to one declaration, with an optional
// payload. Read-only after parsing.
type Marker struct {
	Kind       string
	Payload    string
	HasPayload bool
	Line       int
}

// parseDirective extracts a marker from a single comment line, or
// reports that the line is not a directive.
func parseDirective(text string) (Marker, bool) {
	if !strings.HasPrefix(text, Prefix) {
		return Marker{}, false
	}
	rest := strings.TrimPrefix(text, Prefix)
	kind, payload, _ := strings.Cut(rest, " ")
	kind = strings.TrimSpace(kind)
	if kind == "" {
		return Marker{}, false
	}
	payload = strings.TrimSpace(payload)
	return Marker{
		Kind:       kind,
		Payload:    payload,
		HasPayload: payload != "",
	}, true
}
