package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"abacus/internal/calc"
	"abacus/internal/calculator"
)

// evalCmd evaluates one expression
var evalCmd = &cobra.Command{
	Use:   "eval [expression...]",
	Short: "Evaluate an expression and print the result",
	Long: `Evaluates the arguments, joined by spaces, as one expression.

The glyphs × ÷ − are accepted, ^ is a power and % divides by 100.
Successful evaluations are added to the history.

Example:
  abacus eval "(1+2)*3^2"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

// pressCmd replays keypad events
var pressCmd = &cobra.Command{
	Use:   "press [event...]",
	Short: "Feed keypad events to a calculator and print the display",
	Long: `Each argument is one event: a literal token (digits, operators,
parentheses) or one of the commands

  clear delete equals sqrt square reciprocal negate
  mem-add mem-sub mem-recall mem-clear

Example:
  abacus press 1 2 + 3 equals sqrt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPress,
}

func runEval(cmd *cobra.Command, args []string) error {
	rt, err := openRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	expr := strings.Join(args, " ")
	c := rt.newCalculator(calc.Buffer(expr))
	c.Evaluate()

	fmt.Println(c.Display())
	if c.Buffer().IsError() {
		logger.Debug("evaluation failed", zap.String("expression", expr))
		return fmt.Errorf("cannot evaluate %q", expr)
	}
	return nil
}

func runPress(cmd *cobra.Command, args []string) error {
	rt, err := openRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	c := rt.newCalculator("")
	for _, event := range args {
		if !calculator.IsCommand(event) && !calc.IsInputToken(event) {
			logger.Warn("ignoring unknown event", zap.String("event", event))
		}
		c.Press(event)
	}

	fmt.Println(c.Display())
	return nil
}
