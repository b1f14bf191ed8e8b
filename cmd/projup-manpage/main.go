package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/projup/projup/cmd/projup"
	"github.com/projup/projup/internal/version"
)

func main() {
	rootCmd := projup.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "PROJUP",
		Section: "1",
		Source:  "projup " + version.Version,
		Manual:  "projup manual",
	}

	if len(os.Args) > 1 {
		// one page per command into the given directory
		if err := doc.GenManTree(rootCmd, header, os.Args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating man pages: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
