package cmd

import (
	"context"
	"errors"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	config "taskpro.com/taskpro/internal/configs"
	"taskpro.com/taskpro/internal/constants"
	"taskpro.com/taskpro/internal/logging"
	repository "taskpro.com/taskpro/internal/repositories"
)

var (
	seedAdminName  string
	seedAdminEmail string
)

var seedAdminCmd = &cobra.Command{
	Use:   "seed-admin",
	Short: "Create the root Admin account if absent",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			logging.Logger.Info(".env file not found, using environment variables")
		}

		cfg := config.Load()
		logging.Init(cfg.LogFile)

		database := config.NewDatabase(cfg.DatabaseDSN)
		users := repository.NewUserRepository(database)

		ctx := context.Background()
		if admin, err := users.FindRootAdmin(ctx); err == nil {
			logging.Logger.Infof("root admin already exists: %s", admin.Email)
			return nil
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		admin, err := users.Create(ctx, seedAdminName, seedAdminEmail, constants.RoleAdmin, nil)
		if err != nil {
			return err
		}

		logging.Logger.Infof("root admin created: %s (%s)", admin.Email, admin.ID)
		return nil
	},
}

func init() {
	seedAdminCmd.Flags().StringVar(&seedAdminName, "name", "Administrator", "full name of the root admin")
	seedAdminCmd.Flags().StringVar(&seedAdminEmail, "email", "admin@taskpro.local", "email of the root admin")
	rootCmd.AddCommand(seedAdminCmd)
}
