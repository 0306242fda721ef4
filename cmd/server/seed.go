package main

import (
	"fmt"

	"standup-api-backend/internal/database"
	"standup-api-backend/internal/seed"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load teams, users and standups from a YAML file",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		file, err := seed.Load(seedFile)
		if err != nil {
			return err
		}

		_, db, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() {
			if err := database.Close(db); err != nil {
				logrus.WithError(err).Warn("failed to close database")
			}
		}()

		res, err := seed.Apply(c.Context(), db, file)
		if err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
		fmt.Fprintf(c.OutOrStdout(), "teams: %d, users: %d, standups: %d, activities: %d\n",
			res.Teams, res.Users, res.Standups, res.Activities)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "config/seed.example.yaml", "path to the seed file")
}
