package cmd

import (
	"fmt"

	"github.com/acl-api/config"
	"github.com/acl-api/database"
	"github.com/acl-api/database/seeders"
	"github.com/acl-api/services"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Migrate the database and insert the default data",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.Connect(config.Load().Database)
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		defer database.Close(db)

		if err := database.Migrate(db); err != nil {
			return err
		}
		return seeders.NewDatabaseSeeder(db, services.BcryptHasher{}).Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
