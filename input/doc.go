// Package input provides a builder for validated, typed line prompts.
//
// # Overview
//
// An Input shows a title and a prompt, reads one line, trims it, runs it
// through validators and an optional converter, and asks again until the
// value is accepted:
//
//	age, err := input.RunAs[int](ctx, input.New().
//	    Title("How old are you?").
//	    Prompt("age> ").
//	    ValidateNamed("notEmpty").
//	    Validate(validate.Integer()).
//	    ConvertFunc(convert.Int))
//
// Validators run in the order they were added and the first rejection is
// shown to the user. A converter error is shown the same way, as
// "Conversion error: ... (please add validation)", so a value that needs to
// parse should be guarded by a validator.
//
// # Named Validators
//
// ValidateNamed looks a rule up in the Input's Provider at the time of the
// call. The default provider knows only "notEmpty"; swap in another with
// WithValidators:
//
//	input.New().
//	    WithValidators(validate.Default()).
//	    ValidateNamed("email")
//
// An unknown name is a configuration error: Err reports it right away and
// Run returns it without prompting.
//
// # End of Input and Cancellation
//
// When the input stream is closed (Ctrl-D) Run returns "" immediately,
// skipping validation and conversion. When the context is canceled (wire
// SIGINT with signal.NotifyContext) Run prints "(canceled)" and returns an
// error wrapping ErrCanceled; deciding what that means for the process is
// left to the caller.
//
// # Styling
//
// The title is bold, rejection messages are red and the cancel notice is
// faint. Styles are rendered with lipgloss for the output stream, so they
// disappear automatically when output is not a terminal. Options.Plain
// turns them off explicitly.
package input
