package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/image-seam-carver/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("seamcarve-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("seamcarve-mcp - MCP server for content-aware image resizing")
			fmt.Println()
			fmt.Println("Usage: seamcarve-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  SEAMCARVE_LOG_LEVEL=debug    Enable debug logging")
			fmt.Println()
			fmt.Println("Tools: image_load, image_dimensions, image_seam_carve, image_energy_map.")
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if os.Getenv("SEAMCARVE_LOG_LEVEL") == "debug" {
		log.Printf("Seam Carver MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv := server.New(Version)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
