package main

import (
	"errors"
	"fmt"
	"os"

	"billboard/internal/cli"
)

// main searches the digits of e for the billboard website and the linux.com
// password, printing one line per answer. Search failures are reported on
// stderr by cli.Execute; invocation errors are reported here.
func main() {
	result, err := cli.Run(os.Args[1:], os.Stdout, os.Stderr)
	var invErr *cli.InvocationError
	if errors.As(err, &invErr) {
		fmt.Fprintln(os.Stderr, invErr.Message)
	}
	os.Exit(result.ExitCode)
}
