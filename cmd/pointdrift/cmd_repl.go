package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"PointDrift/internal/scheduler"
	"PointDrift/internal/session"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive calculator, recomputes on every change",
	Long: `Start an interactive session. Change inputs with "set <field> <value>";
every change recomputes the analysis. Type "help" for all commands.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	console := scheduler.NewConsole(session.New(state.reg), state.rec, state.cfg.Output.Format)
	out := cmd.OutOrStdout()
	interactive := term.IsTerminal(int(os.Stdin.Fd()))

	fmt.Fprint(out, console.HandleCommand("show"))

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		if interactive {
			fmt.Fprint(out, "> ")
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "quit" || line == "exit" {
			return nil
		}
		if reply := console.HandleCommand(line); reply != "" {
			fmt.Fprintln(out, strings.TrimRight(reply, "\n"))
		}
	}
	return scanner.Err()
}
