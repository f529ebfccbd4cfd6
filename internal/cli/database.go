package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-extras/cobraflags"
	"github.com/rogerio-castellano/inventory-api/internal/auth"
	"github.com/rogerio-castellano/inventory-api/internal/db"
	"github.com/rogerio-castellano/inventory-api/internal/models"
	"github.com/rogerio-castellano/inventory-api/internal/repo"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create missing tables for the configured DB_DRIVER",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, logger, database, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer database.Close()

			if err := db.Migrate(cmd.Context(), database); err != nil {
				return err
			}
			logger.Info("migration complete")
			return nil
		},
	}
}

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert default warehouses, categories and brands into empty tables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, logger, database, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer database.Close()

			inserted, err := repo.SeedMasterData(cmd.Context(), repo.NewSQLMasterDataRepository(database))
			if err != nil {
				return err
			}
			for _, kind := range models.MasterKinds {
				logger.Info("seed", "table", kind.Table, "inserted", inserted[kind.Table])
			}
			return nil
		},
	}
}

const (
	emailFlag    = "email"
	passwordFlag = "password"
	nameFlag     = "name"
)

var adminFlags = map[string]cobraflags.Flag{
	emailFlag: &cobraflags.StringFlag{
		Name:  emailFlag,
		Value: "",
		Usage: "Admin email (required)",
	},
	passwordFlag: &cobraflags.StringFlag{
		Name:  passwordFlag,
		Value: "",
		Usage: "Password, required when the user does not exist yet",
	},
	nameFlag: &cobraflags.StringFlag{
		Name:  nameFlag,
		Value: "Administrator",
		Usage: "Display name for a new user",
	},
}

func newCreateAdminCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin user or promote an existing one",
		RunE: func(cmd *cobra.Command, _ []string) error {
			email := strings.TrimSpace(adminFlags[emailFlag].GetString())
			if email == "" {
				return errors.New("--email is required")
			}

			_, logger, database, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer database.Close()

			users := repo.NewSQLUserRepository(database)
			existing, err := users.GetByEmail(cmd.Context(), email)
			switch {
			case err == nil:
				if err := users.SetRole(cmd.Context(), existing.ID, models.RoleAdmin); err != nil {
					return err
				}
				logger.Info("promoted user to admin", "email", email, "id", existing.ID)
				return nil
			case !errors.Is(err, repo.ErrUserNotFound):
				return err
			}

			password := adminFlags[passwordFlag].GetString()
			if password == "" {
				return fmt.Errorf("--password is required to create %s", email)
			}
			hash, err := auth.HashPassword(password)
			if err != nil {
				return err
			}

			user, err := users.CreateUser(cmd.Context(), models.User{
				Email:        email,
				PasswordHash: &hash,
				Name:         adminFlags[nameFlag].GetString(),
				Role:         models.RoleAdmin,
			})
			if err != nil {
				return err
			}
			logger.Info("created admin", "email", email, "id", user.ID)
			return nil
		},
	}
	cobraflags.RegisterMap(cmd, adminFlags)
	return cmd
}
