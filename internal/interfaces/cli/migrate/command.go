// Package migrate implements the `atrium migrate` command.
package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atriumhq/atrium/internal/application/user"
	userdto "github.com/atriumhq/atrium/internal/application/user/dto"
	"github.com/atriumhq/atrium/internal/domain/rbac"
	"github.com/atriumhq/atrium/internal/infrastructure/auth"
	"github.com/atriumhq/atrium/internal/infrastructure/config"
	"github.com/atriumhq/atrium/internal/infrastructure/database"
	"github.com/atriumhq/atrium/internal/infrastructure/migration"
	"github.com/atriumhq/atrium/internal/infrastructure/repository"
	"github.com/atriumhq/atrium/internal/shared/logger"
)

var (
	env           string
	adminEmail    string
	adminPassword string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Run schema migrations, seed the module catalog, and bootstrap the first platform operator.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newSeedCommand(),
		newCreateAdminCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply the database schema",
		RunE:  runUp,
	}
}

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the module catalog, permissions and built-in roles",
		RunE:  runSeed,
	}
}

func newCreateAdminCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create a platform-scoped super admin user",
		RunE:  runCreateAdmin,
	}

	cmd.Flags().StringVar(&adminEmail, "email", "", "Email address for the super admin (required)")
	cmd.Flags().StringVar(&adminPassword, "password", "", "Password for the super admin (required)")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}

func setup() error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	return nil
}

func runUp(cmd *cobra.Command, args []string) error {
	if err := setup(); err != nil {
		return err
	}
	defer database.Close()

	if err := database.Get().AutoMigrate(migration.AutoMigrateModels()...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("schema migration completed")
	return nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	if err := setup(); err != nil {
		return err
	}
	defer database.Close()

	if err := migration.Seed(database.Get()); err != nil {
		return fmt.Errorf("failed to seed: %w", err)
	}

	return nil
}

func runCreateAdmin(cmd *cobra.Command, args []string) error {
	if err := setup(); err != nil {
		return err
	}
	defer database.Close()

	cfg := config.Get()
	db := database.Get()

	log := logger.NewLogger().Named("migrate")
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	userService := user.NewService(
		repository.NewUserRepository(db),
		repository.NewTenantRepository(db),
		repository.NewRBACRepository(db),
		hasher,
		log,
	)

	ctx := cmd.Context()

	created, err := userService.Register(ctx, userdto.RegisterUserRequest{
		Email:    adminEmail,
		Name:     "Platform Admin",
		Password: adminPassword,
	})
	if err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	if _, err := userService.AssignRole(ctx, created.ID, userdto.AssignRoleRequest{Role: rbac.RoleSuperAdmin}); err != nil {
		return fmt.Errorf("failed to assign super admin role: %w", err)
	}

	logger.Info("super admin created", "email", adminEmail, "user_id", created.ID)
	return nil
}
