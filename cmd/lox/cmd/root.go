package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-lox/pkg/lox"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "lox",
	Short: "Lox interpreter",
	Long: `lox is a tree-walking interpreter for the Lox scripting language.

Run it with no arguments for an interactive REPL, or with a single
file argument to run a script.`,
	Version: Version,
	Args:    cobra.ArbitraryArgs,
	RunE:    runRoot,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "accepted but ignored: no command reads this flag")
}

// runRoot implements the three invocation forms directly, rather than
// through further Cobra subcommand dispatch: zero arguments starts the
// REPL, one argument runs that file, and more than one is a usage
// error. Each path exits with its own precise code (0/64/65/70) rather
// than letting Cobra's generic error-to-exit-1 handling obscure the
// distinction.
func runRoot(_ *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		lox.RunPrompt(os.Stdin, os.Stdout, os.Stderr)
		return nil
	case 1:
		os.Exit(lox.RunFile(args[0], os.Stdout, os.Stderr))
		return nil
	default:
		fmt.Fprintln(os.Stderr, "Usage: lox [script]")
		os.Exit(lox.ExitUsage)
		return nil
	}
}
