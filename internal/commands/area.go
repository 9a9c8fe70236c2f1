package commands

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/wren/convert"
	"github.com/simonhull/firebird-suite/wren/validate"
)

const squareFeetToMeters = 0.09290304

func areaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "area",
		Short: "Calculate the area of a room",
		Long:  "Ask for the length and width of a room in feet and print its area.",
		Args:  cobra.NoArgs,
		RunE: a.closing(func(cmd *cobra.Command, args []string) error {
			length, err := a.askDimension(cmd, "length")
			if err != nil {
				return err
			}
			width, err := a.askDimension(cmd, "width")
			if err != nil {
				return err
			}

			area := multiply(length, width)
			fmt.Fprintf(a.out, "\nYou entered dimensions of %v feet by %v feet.\n", length, width)
			fmt.Fprintln(a.out, "The area is")
			fmt.Fprintf(a.out, "%v square feet\n", area)
			fmt.Fprintf(a.out, "%s square meters\n", formatMeters(toFloat(area)*squareFeetToMeters))
			return nil
		}),
	}
}

// askDimension prompts for a positive number; the result is an int or a
// float64 depending on what was typed.
func (a *app) askDimension(cmd *cobra.Command, name string) (any, error) {
	in := a.newInput("area").
		Title(fmt.Sprintf("What is the %s of the room in feet?", name)).
		Validate(validate.WithMessage(
			validate.Positive(),
			fmt.Sprintf("%s must be a positive number", capitalize(name)),
		)).
		ConvertFunc(convert.Number)

	v, err := in.Run(cmd.Context())
	if err != nil {
		return nil, err
	}
	if s, ok := v.(string); ok && s == "" {
		return nil, fmt.Errorf("no %s given", name)
	}
	return v, nil
}

// multiply keeps integer results integral.
func multiply(x, y any) any {
	xi, xok := x.(int)
	yi, yok := y.(int)
	if xok && yok {
		return xi * yi
	}
	return toFloat(x) * toFloat(y)
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case float64:
		return n
	}
	return math.NaN()
}

func formatMeters(f float64) string {
	return strconv.FormatFloat(math.Round(f*1000)/1000, 'f', -1, 64)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
