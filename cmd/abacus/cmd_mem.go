package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"abacus/internal/calc"
)

// memCmd groups the memory register commands
var memCmd = &cobra.Command{
	Use:   "mem",
	Short: "Memory register (M+, M-, MR, MC)",
}

var memAddCmd = &cobra.Command{
	Use:   "add [expression...]",
	Short: "Add the value of an expression to memory",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runMemAdd,
}

var memSubCmd = &cobra.Command{
	Use:   "sub [expression...]",
	Short: "Subtract the value of an expression from memory",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runMemSub,
}

var memRecallCmd = &cobra.Command{
	Use:   "recall",
	Short: "Print the memory register",
	Args:  cobra.NoArgs,
	RunE:  runMemRecall,
}

var memClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Reset the memory register to 0",
	Args:  cobra.NoArgs,
	RunE:  runMemClear,
}

func runMemAdd(cmd *cobra.Command, args []string) error {
	return memUpdate(args, false)
}

func runMemSub(cmd *cobra.Command, args []string) error {
	return memUpdate(args, true)
}

func memUpdate(args []string, subtract bool) error {
	rt, err := openRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	expr := strings.Join(args, " ")
	c := rt.newCalculator(calc.Buffer(expr))
	if subtract {
		c.MemorySub()
	} else {
		c.MemoryAdd()
	}
	if c.Buffer().IsError() {
		return fmt.Errorf("cannot evaluate %q", expr)
	}

	fmt.Println(rt.format(rt.memory.Value()))
	return nil
}

func runMemRecall(cmd *cobra.Command, args []string) error {
	rt, err := openRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	v, ok := rt.memory.Recall()
	if !ok {
		return fmt.Errorf("memory register unavailable")
	}
	fmt.Println(rt.format(v))
	return nil
}

func runMemClear(cmd *cobra.Command, args []string) error {
	rt, err := openRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	rt.memory.Clear()
	fmt.Println("0")
	return nil
}
