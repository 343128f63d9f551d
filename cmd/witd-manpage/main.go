package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/witd/cmd/witd"
	"github.com/arthur-debert/witd/internal/version"
)

func main() {
	rootCmd := witd.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "WITD",
		Section: "1",
		Source:  "witd " + version.Version,
		Manual:  "witd manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
