package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/image-seam-carver/internal/cli"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Diagnostics go to stderr so stdout only carries the -t report
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if os.Getenv(cli.LogLevelEnv) == "debug" {
		log.Printf("seamcarve v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	cmd := cli.NewRootCommand(Version)
	cmd.SilenceErrors = true
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'seamcarve --help' for usage.")
		os.Exit(1)
	}
}
