package main

import (
	"os"

	"standup-api-backend/internal/api/routes"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	_ "standup-api-backend/docs" // This is needed for swag
)

//	@title			Standup API
//	@version		1.0
//	@description	Backend API for scheduling team standups and recording the activities discussed in them.

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:4000
//	@BasePath	/

var rootCmd = &cobra.Command{
	Use:          "standup-api",
	Short:        "Standup scheduling API",
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, seedCmd)
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	rootCmd.Version = routes.Version
}

func main() {
	// Bare invocation starts the server
	if len(os.Args) == 1 {
		rootCmd.SetArgs([]string{"serve"})
	}
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("command failed")
		os.Exit(1)
	}
}
