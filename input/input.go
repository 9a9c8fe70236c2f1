package input

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/simonhull/firebird-suite/wren/logger"
)

// DefaultPrompt is shown before the cursor unless Prompt overrides it.
const DefaultPrompt = "> "

// Converter turns an accepted value into a typed result.
// A returned error makes the attempt fail and the user is asked again.
type Converter func(value string) (any, error)

// lineSource is the read side of an Input.
type lineSource interface {
	ReadLine(ctx context.Context) (string, error)
}

// Options configures the streams an Input talks to.
//
// Lines takes precedence over Reader. Prompts that read the same stream one
// after another should share one LineReader, since a LineReader buffers.
type Options struct {
	Reader io.Reader     // Input stream, os.Stdin when nil
	Lines  *LineReader   // Shared line source, overrides Reader
	Writer io.Writer     // Output stream, os.Stdout when nil
	Logger logger.Logger // Attempt tracing, silent when nil
	Plain  bool          // Disable styling markers
}

// Input is a single-use prompt builder.
//
// Create one with New or NewWithOptions; the zero value is not usable.
// Configuration methods return the same Input so calls can be chained:
//
//	name, err := input.New().
//	    Title("What is your name?").
//	    ValidateNamed("notEmpty").
//	    RunString(ctx)
type Input struct {
	reader lineSource
	writer io.Writer
	log    logger.Logger
	styles styles

	title      string
	prompt     string
	validators []Validator
	provider   Provider
	converter  Converter

	err error // first configuration error
}

type styles struct {
	title    lipgloss.Style
	alert    lipgloss.Style
	canceled lipgloss.Style
}

func newStyles(w io.Writer, plain bool) styles {
	r := lipgloss.NewRenderer(w)
	if plain {
		r.SetColorProfile(termenv.Ascii)
	}
	return styles{
		title:    r.NewStyle().Bold(true),
		alert:    r.NewStyle().Foreground(lipgloss.Color("1")),
		canceled: r.NewStyle().Faint(true),
	}
}

// New creates an Input that reads from standard input and writes to
// standard output.
func New() *Input {
	return NewWithOptions(Options{})
}

// NewWithOptions creates an Input bound to the given streams.
func NewWithOptions(opts Options) *Input {
	in := &Input{
		prompt:   DefaultPrompt,
		provider: DefaultValidators(),
		log:      opts.Logger,
	}
	if in.log == nil {
		in.log = logger.NewSilentLogger()
	}

	switch {
	case opts.Lines != nil:
		in.reader = opts.Lines
	case opts.Reader == nil:
		in.reader = Stdin()
	default:
		in.reader = NewLineReader(opts.Reader)
	}

	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}
	in.writer = w
	in.styles = newStyles(w, opts.Plain)
	return in
}

// withContext swaps the streams, for tests inside this package.
func (in *Input) withContext(r lineSource, w io.Writer) *Input {
	in.reader = r
	in.writer = w
	in.styles = newStyles(w, true)
	return in
}

// Title sets a header line shown above the prompt on every attempt.
// An empty title is not shown.
func (in *Input) Title(text string) *Input {
	in.title = text
	return in
}

// Prompt sets the text shown right before the cursor.
func (in *Input) Prompt(text string) *Input {
	in.prompt = text
	return in
}

// WithValidators replaces the provider used by ValidateNamed.
// Validators resolved earlier are not affected.
func (in *Input) WithValidators(p Provider) *Input {
	in.provider = p
	return in
}

// Validate appends a validator. Validators run in the order they were added.
func (in *Input) Validate(v Validator) *Input {
	if v != nil {
		in.validators = append(in.validators, v)
	}
	return in
}

// ValidateNamed resolves name against the current provider and appends the
// result. An unknown name is recorded as an *UnknownValidatorError, reported
// by Err and returned by Run before anything is displayed.
func (in *Input) ValidateNamed(name string) *Input {
	if in.provider == nil {
		in.fail(&UnknownValidatorError{Name: name, Provider: "<nil>"})
		return in
	}
	v, ok := in.provider.Lookup(name)
	if !ok {
		in.fail(&UnknownValidatorError{Name: name, Provider: in.provider.Name()})
		return in
	}
	in.validators = append(in.validators, v)
	return in
}

// MustValidateNamed is like ValidateNamed but panics on an unknown name.
func (in *Input) MustValidateNamed(name string) *Input {
	in.ValidateNamed(name)
	if in.err != nil {
		panic(in.err)
	}
	return in
}

// ConvertFunc sets the converter applied to accepted values.
// Only one converter is active; a later call replaces an earlier one.
func (in *Input) ConvertFunc(c Converter) *Input {
	in.converter = c
	return in
}

// Err returns the first configuration error, if any.
func (in *Input) Err() error {
	return in.err
}

func (in *Input) fail(err error) {
	if in.err == nil {
		in.err = err
	}
}

// Typed adapts a typed conversion function to a Converter.
func Typed[T any](fn func(string) (T, error)) Converter {
	return func(value string) (any, error) {
		return fn(value)
	}
}

// Transform adapts a conversion function that cannot fail.
func Transform[T any](fn func(string) T) Converter {
	return func(value string) (any, error) {
		return fn(value), nil
	}
}
