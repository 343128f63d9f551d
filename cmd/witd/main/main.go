package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/arthur-debert/witd/cmd/witd"
	"github.com/arthur-debert/witd/pkg/output/styles"
)

func main() {
	rootCmd := witd.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, witd.ErrReported) {
			errorStyle := styles.GetStyle("Error")
			fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		}
		os.Exit(1)
	}
}
