package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abirabbas/portfolio-api/internal/cli"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "portfoliod",
		Short: "Portfolio API daemon and CLI",
		Long:  "Portfolio API daemon serving the assistant and portfolio data endpoints",
	}

	rootCmd.AddCommand(cli.ServeCmd())
	rootCmd.AddCommand(cli.AskCmd())

	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
