// furnictl tareas de operación sobre la base de datos de la tienda.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/furnistore-api/internal/application/auth"
	"github.com/jhoicas/furnistore-api/internal/application/usecase"
	"github.com/jhoicas/furnistore-api/internal/domain/repository"
	"github.com/jhoicas/furnistore-api/internal/infrastructure/mongodb"
	"github.com/jhoicas/furnistore-api/pkg/config"
	"github.com/jhoicas/furnistore-api/pkg/logger"
)

const cmdTimeout = 30 * time.Second

func main() {
	rootCmd := &cobra.Command{
		Use:           "furnictl",
		Short:         "Operaciones de mantenimiento de Furnistore",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(createAdminCmd())
	rootCmd.AddCommand(ensureIndexesCmd())
	rootCmd.AddCommand(seedCategoriesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// session conexión abierta para un comando.
type session struct {
	cfg    *config.Config
	log    *logger.Logger
	client *mongo.Client
	db     *mongo.Database
	repo   repository.Registry
}

func openSession(ctx context.Context) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cfg.DB.Driver != config.DriverMongo {
		return nil, errors.New("furnictl requiere DB_DRIVER=mongo")
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	client, err := mongodb.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	db := client.Database(cfg.DB.Name)
	return &session{cfg: cfg, log: log, client: client, db: db, repo: mongodb.NewRegistry(db)}, nil
}

func (s *session) Close() {
	_ = s.client.Disconnect(context.Background())
}

// withSession ejecuta fn con una conexión y un contexto con timeout.
func withSession(fn func(ctx context.Context, s *session) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), cmdTimeout)
	defer cancel()
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(ctx, s)
}

func createAdminCmd() *cobra.Command {
	var email, password, name string
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Crea un usuario administrador",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(func(ctx context.Context, s *session) error {
				uc := auth.NewAuthUseCase(s.repo.Users, auth.JWTConfig{
					Secret:     s.cfg.JWT.Secret,
					ExpMinutes: s.cfg.JWT.Expiration,
					Issuer:     s.cfg.JWT.Issuer,
				})
				user, err := uc.CreateAdmin(ctx, email, password, name)
				if err != nil {
					return fmt.Errorf("crear admin: %w", err)
				}
				s.log.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("administrador creado")
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "correo del administrador")
	cmd.Flags().StringVar(&password, "password", "", "contraseña (mínimo 8 caracteres)")
	cmd.Flags().StringVar(&name, "name", "Administrador", "nombre visible")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func ensureIndexesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ensure-indexes",
		Short: "Crea los índices de todas las colecciones",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(func(ctx context.Context, s *session) error {
				if err := mongodb.EnsureIndexes(ctx, s.db); err != nil {
					return err
				}
				s.log.Info().Str("db", s.cfg.DB.Name).Msg("índices creados")
				return nil
			})
		},
	}
}

func seedCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed-categories",
		Short: "Inserta las categorías de muebles por defecto que falten",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(func(ctx context.Context, s *session) error {
				uc := usecase.NewCategoryUseCase(s.repo.Categories, s.repo.Products)
				created, err := seedCategories(ctx, uc, defaultCategories)
				if err != nil {
					return err
				}
				s.log.Info().Int("created", created).Int("total", len(defaultCategories)).Msg("categorías sembradas")
				return nil
			})
		},
	}
}
