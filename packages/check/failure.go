package check

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/abelmx/affirm/packages/compare"
)

// Failure is the structured error raised by a failed check. It is
// immutable once constructed: accessors return copies.
type Failure struct {
	lines []string
	file  string
	line  int
	cause error
}

// NewFailure constructs a Failure with the given message lines. The call
// site defaults to the caller's frame; override it with At.
func NewFailure(lines []string, opts ...Option) *Failure {
	o := buildOptions(opts)
	return newFailure(o, 1, lines...)
}

// newFailure fills in the call site from the stack frame skip levels
// above it when no At option was given.
func newFailure(o *Options, skip int, lines ...string) *Failure {
	file, line := o.file, o.line
	if file == "" {
		if _, f, l, ok := runtime.Caller(skip + 1); ok {
			file, line = f, l
		}
	}
	return &Failure{
		lines: append([]string(nil), lines...),
		file:  file,
		line:  line,
		cause: o.cause,
	}
}

// fail is the constructor used by the predicates in this package. All of
// them call it directly so the captured frame is the predicate's caller.
func fail(o *Options, lines ...string) *Failure {
	return newFailure(o, 2, lines...)
}

func (f *Failure) Error() string {
	msg := strings.Join(f.lines, "\n")
	if f.file == "" {
		return msg
	}
	return fmt.Sprintf("%s:%d: %s", f.file, f.line, msg)
}

// Lines returns the ordered message lines.
func (f *Failure) Lines() []string {
	return append([]string(nil), f.lines...)
}

// File returns the source file of the failed check.
func (f *Failure) File() string { return f.file }

// Line returns the source line of the failed check.
func (f *Failure) Line() int { return f.line }

// Unwrap returns the chained cause, if any.
func (f *Failure) Unwrap() error { return f.cause }

// Options configures a single predicate call.
type Options struct {
	file   string
	line   int
	cause  error
	strict bool
}

// Option is a functional option accepted by every predicate.
type Option func(*Options)

// At overrides the call-site provenance recorded on a failure.
func At(file string, line int) Option {
	return func(o *Options) {
		o.file = file
		o.line = line
	}
}

// Cause chains an underlying error onto the failure.
func Cause(err error) Option {
	return func(o *Options) {
		o.cause = err
	}
}

// Strict forwards strict comparison to the equality engine: scalar
// operands must have identical dynamic types.
func Strict() Option {
	return func(o *Options) {
		o.strict = true
	}
}

func buildOptions(opts []Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *Options) compareOptions() []compare.Option {
	if o.strict {
		return []compare.Option{compare.Strict()}
	}
	return nil
}
