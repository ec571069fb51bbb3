package main

import (
	"os"

	"github.com/pterm/pterm"

	pybootstrap "github.com/Luna-Klatzer/pybootstrap/cmd/pybootstrap"
)

func main() {
	rootCmd := pybootstrap.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
