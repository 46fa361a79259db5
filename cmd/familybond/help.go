// ABOUTME: Help display for the familybond CLI with commands, environment variables, and examples.
// ABOUTME: Provides printHelp for usage output and envStatus for configuration checks.
package main

import (
	"fmt"
	"io"
	"os"
)

// printHelp writes a formatted help message to w, including commands,
// examples, and environment status.
func printHelp(w io.Writer, ver string) {
	fmt.Fprintf(w, "familybond %s — Family Bond Australia site server\n", ver)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  familybond [serve]             Start the HTTP server (default)")
	fmt.Fprintln(w, "  familybond seed <content.yaml> Back up content and apply a seed file")
	fmt.Fprintln(w, "  familybond legal [outdir]      Write print-ready legal documents as HTML")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -version              Print version and exit")
	fmt.Fprintln(w, "  -help                 Show this help")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  familybond")
	fmt.Fprintln(w, "  familybond seed seed/content.yaml")
	fmt.Fprintln(w, "  familybond legal dist/legal")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment:")
	fmt.Fprintf(w, "  ADMIN_PASSWORD        %s (required)\n", envStatus("ADMIN_PASSWORD"))
	fmt.Fprintf(w, "  SESSION_SECRET        %s\n", envStatus("SESSION_SECRET"))
	fmt.Fprintf(w, "  REDIS_URL             %s\n", envStatus("REDIS_URL"))
	fmt.Fprintf(w, "  S3_BUCKET             %s\n", envStatus("S3_BUCKET"))
	fmt.Fprintf(w, "  FAMILYBOND_ADDR       %s\n", envStatus("FAMILYBOND_ADDR"))
	fmt.Fprintf(w, "  FAMILYBOND_DATA_DIR   %s\n", envStatus("FAMILYBOND_DATA_DIR"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  ADMIN_PASSWORD must be set before the server will start.")
}

// envStatus returns "[set]" if the named environment variable is non-empty,
// or "[not set]" otherwise.
func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "[set]"
	}
	return "[not set]"
}
