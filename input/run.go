package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/simonhull/firebird-suite/wren/logger"
)

// ErrCanceled is returned by Run when the context is canceled mid-prompt.
// It is an interruption by the user, not a failure.
var ErrCanceled = errors.New("input canceled")

// Run prompts until a value passes validation and conversion.
//
// It returns the converted value, or the trimmed text when no converter is
// set. When the input stream ends, Run returns "" at once without running
// validators or the converter. When ctx is canceled it writes a short notice
// and returns an error wrapping ErrCanceled.
func (in *Input) Run(ctx context.Context) (any, error) {
	if in.err != nil {
		return nil, in.err
	}

	for attempt := 1; ; attempt++ {
		if ctx.Err() != nil {
			return nil, in.canceled(ctx)
		}

		if in.title != "" {
			fmt.Fprintln(in.writer, in.styles.title.Render(in.title))
		}
		fmt.Fprint(in.writer, in.prompt)

		line, err := in.reader.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				in.log.Debug("input closed", logger.F("attempt", attempt))
				return "", nil
			}
			if ctx.Err() != nil {
				return nil, in.canceled(ctx)
			}
			return nil, fmt.Errorf("read input: %w", err)
		}

		value := strings.TrimSpace(chomp(line))

		msg := in.check(value)
		if msg == "" {
			if in.converter == nil {
				in.log.Debug("input accepted", logger.F("attempt", attempt))
				return value, nil
			}
			result, err := convert(in.converter, value)
			if err == nil {
				in.log.Debug("input converted",
					logger.F("attempt", attempt),
					logger.F("type", fmt.Sprintf("%T", result)),
				)
				return result, nil
			}
			msg = fmt.Sprintf("Conversion error: %s (please add validation)", err)
		}

		in.log.Debug("input rejected", logger.F("attempt", attempt), logger.F("reason", msg))
		fmt.Fprintln(in.writer)
		fmt.Fprintln(in.writer, in.styles.alert.Render("! "+msg))
		fmt.Fprintln(in.writer)
	}
}

// RunString runs the prompt and returns the result as text.
// A converter's result is formatted with fmt.Sprint.
func (in *Input) RunString(ctx context.Context) (string, error) {
	v, err := in.Run(ctx)
	if err != nil {
		return "", err
	}
	if s, ok := v.(string); ok {
		return s, nil
	}
	return fmt.Sprint(v), nil
}

// RunAs runs the prompt and asserts the result to T.
// When the input stream ends RunAs returns the zero value of T.
func RunAs[T any](ctx context.Context, in *Input) (T, error) {
	var zero T
	v, err := in.Run(ctx)
	if err != nil {
		return zero, err
	}
	if t, ok := v.(T); ok {
		return t, nil
	}
	if s, ok := v.(string); ok && s == "" {
		return zero, nil
	}
	return zero, fmt.Errorf("input result is %T, not %T", v, zero)
}

// check runs validators in order and returns the first rejection message.
func (in *Input) check(value string) string {
	for _, v := range in.validators {
		if msg := v(value); msg != "" {
			return msg
		}
	}
	return ""
}

func (in *Input) canceled(ctx context.Context) error {
	fmt.Fprintln(in.writer, "\n"+in.styles.canceled.Render("(canceled)"))
	in.log.Debug("input canceled")
	return fmt.Errorf("%w: %w", ErrCanceled, context.Cause(ctx))
}

// convert calls c, turning a panic into an error.
func convert(c Converter, value string) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return c(value)
}

// chomp removes one trailing line terminator.
func chomp(s string) string {
	switch {
	case strings.HasSuffix(s, "\r\n"):
		return s[:len(s)-2]
	case strings.HasSuffix(s, "\n"), strings.HasSuffix(s, "\r"):
		return s[:len(s)-1]
	}
	return s
}
