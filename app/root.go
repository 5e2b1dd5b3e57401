// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "climacurat",
	Short: "ClimaCurat is the website and content backend for an AC cleaning business",
	Long: `ClimaCurat serves the public marketing page of a local air conditioner
cleaning business and a password gated admin dashboard for editing the
services, testimonials, gallery, benefits and settings shown on it.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
