package commands

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/wren/convert"
	"github.com/simonhull/firebird-suite/wren/input"
	"github.com/simonhull/firebird-suite/wren/internal/config"
	"github.com/simonhull/firebird-suite/wren/logger"
	"github.com/simonhull/firebird-suite/wren/output"
	"github.com/simonhull/firebird-suite/wren/validate"
)

type askOptions struct {
	preset     string
	title      string
	prompt     string
	validators []string
	minLength  int
	maxLength  int
	choices    []string
	convert    string
	format     string
}

func askCmd(a *app) *cobra.Command {
	opts := &askOptions{}

	cmd := &cobra.Command{
		Use:   "ask",
		Short: "Prompt for one value and print it",
		Long: `Prompt for a single value until it passes every validator, then print it.

Validators run in the order given; the first failure is shown and the user
is asked again. With --convert the accepted text is converted before it is
printed. Flags override the values of a --preset from wren.yml.`,
		Example: `  wren ask --title "What is your name?" --validate notEmpty
  wren ask --prompt "age> " --validate integer --convert int --format json
  wren ask --choices ruby,python,go
  wren ask --preset email`,
		Args: cobra.NoArgs,
		RunE: a.closing(func(cmd *cobra.Command, args []string) error {
			in, err := a.buildAsk(cmd, opts)
			if err != nil {
				return err
			}
			format, err := output.ParseFormat(opts.format)
			if err != nil {
				return err
			}

			value, err := in.Run(cmd.Context())
			if err != nil {
				return err
			}
			if a.verbose {
				a.printer.Success(fmt.Sprintf("accepted %T", value))
			}
			return output.WriteValue(a.out, format, value)
		}),
	}

	f := cmd.Flags()
	f.StringVarP(&opts.preset, "preset", "p", "", "Use a preset from the config file")
	f.StringVarP(&opts.title, "title", "t", "", "Header shown above the prompt")
	f.StringVar(&opts.prompt, "prompt", "", "Text shown before the cursor (default from config)")
	f.StringSliceVar(&opts.validators, "validate", nil, "Named validator to apply, repeatable (see 'wren rules')")
	f.IntVar(&opts.minLength, "min", 0, "Minimum length")
	f.IntVar(&opts.maxLength, "max", 0, "Maximum length")
	f.StringSliceVar(&opts.choices, "choices", nil, "Accept only these values (case-insensitive)")
	f.StringVar(&opts.convert, "convert", "", "Converter: bool, float, int, list, lower, number, upper")
	f.StringVarP(&opts.format, "format", "o", "", "Output format: text, json, yaml (default from config)")

	return cmd
}

// buildAsk merges preset and flags into a configured Input.
func (a *app) buildAsk(cmd *cobra.Command, opts *askOptions) (*input.Input, error) {
	merged := config.Preset{Prompt: a.cfg.Defaults.Prompt}
	if opts.preset != "" {
		p, ok := a.cfg.Preset(opts.preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset %q (available: %v)", opts.preset, a.cfg.PresetNames())
		}
		merged = p
		if merged.Prompt == "" {
			merged.Prompt = a.cfg.Defaults.Prompt
		}
		a.log.Debug("using preset", logger.F("preset", opts.preset))
	}

	flags := cmd.Flags()
	if flags.Changed("title") {
		merged.Title = opts.title
	}
	if flags.Changed("prompt") {
		merged.Prompt = opts.prompt
	}
	merged.Validators = slices.Concat(merged.Validators, opts.validators)
	if flags.Changed("min") {
		merged.MinLength = opts.minLength
	}
	if flags.Changed("max") {
		merged.MaxLength = opts.maxLength
	}
	if flags.Changed("choices") {
		merged.Choices = opts.choices
	}
	if flags.Changed("convert") {
		merged.Convert = opts.convert
	}
	if !flags.Changed("format") {
		opts.format = a.cfg.Defaults.Format
	}

	in := a.newInput("ask").Title(merged.Title).Prompt(merged.Prompt)
	for _, name := range merged.Validators {
		in.ValidateNamed(name)
	}
	if merged.MinLength > 0 {
		in.Validate(validate.MinLength(merged.MinLength))
	}
	if merged.MaxLength > 0 {
		in.Validate(validate.MaxLength(merged.MaxLength))
	}
	if len(merged.Choices) > 0 {
		in.Validate(validate.OneOf(merged.Choices...))
		if merged.Convert == "" {
			in.ConvertFunc(convert.OneOf(merged.Choices...))
		}
	}
	if merged.Convert != "" {
		c, ok := convert.Lookup(merged.Convert)
		if !ok {
			return nil, fmt.Errorf("unknown converter %q (available: %v)", merged.Convert, convert.Names())
		}
		in.ConvertFunc(c)
	}

	if err := in.Err(); err != nil {
		return nil, err
	}
	if a.verbose {
		a.describe(merged)
	}
	return in, nil
}

// describe prints the merged prompt settings.
func (a *app) describe(p config.Preset) {
	a.printer.Info("Asking with:")
	a.printer.Step("prompt: " + strconv.Quote(p.Prompt))
	if p.Title != "" {
		a.printer.Step("title: " + strconv.Quote(p.Title))
	}
	if len(p.Validators) > 0 {
		a.printer.Step("validators: " + strings.Join(p.Validators, ", "))
	}
	if p.MinLength > 0 || p.MaxLength > 0 {
		a.printer.Step(fmt.Sprintf("length: %d..%d", p.MinLength, p.MaxLength))
	}
	if len(p.Choices) > 0 {
		a.printer.Step("choices: " + strings.Join(p.Choices, ", "))
	}
	if p.Convert != "" {
		a.printer.Step("convert: " + p.Convert)
	}
}
