package main

import (
	"fmt"
	"os"

	"github.com/andy/togglcli/internal/app"
	"github.com/andy/togglcli/internal/cli"
)

// skipAppInit reports whether the invocation needs no initialized app:
// help output and token management only touch the keyring, and initializing
// the app may prompt for a credential. Subcommand names count only in the
// first position; "togglcli start token" is a time entry description.
func skipAppInit(args []string) bool {
	if len(args) == 0 {
		return true
	}
	if args[0] == "help" || args[0] == "token" {
		return true
	}
	for _, a := range args {
		if a == "-h" || a == "--help" {
			return true
		}
	}
	return false
}

func main() {
	if !skipAppInit(os.Args[1:]) {
		a, err := app.New()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cli.SetApp(a)
	}

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
