package main

import (
	"log"

	"github.com/sobadon/radiarc/cmd/radiarc/serve"
	"github.com/sobadon/radiarc/cmd/radiarc/version"
	"github.com/spf13/cobra"
)

func main() {
	execute()
}

func execute() {
	var rootCmd = &cobra.Command{
		Use:   "radiarc",
		Short: "archive radiko timefree programs",
	}

	rootCmd.AddCommand(serve.Command())
	rootCmd.AddCommand(version.Command())

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%+v", err)
	}
}
