package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lexnotes/journal/internal/app/user"
	userrepo "github.com/lexnotes/journal/internal/app/user/repo/gorm"
	"github.com/lexnotes/journal/internal/infrastructure/secure"
	"github.com/lexnotes/journal/internal/infrastructure/system"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// seedadmin creates the first admin account. The password comes from the
// SEED_ADMIN_PASSWORD environment variable so it never lands in shell history.
func main() {
	email := flag.String("email", "", "admin email")
	name := flag.String("name", "Administrator", "admin display name")
	flag.Parse()

	if *email == "" {
		log.Fatal().Msg("seedadmin: -email is required")
	}

	if err := godotenv.Overload(".env"); err != nil {
		log.Debug().Err(err).Msg("failed to load .env file, using environment variables")
	}

	password := []byte(os.Getenv("SEED_ADMIN_PASSWORD"))
	if len(password) == 0 {
		log.Fatal().Msg("seedadmin: SEED_ADMIN_PASSWORD is required")
	}
	defer secure.ZeroBytes(password)

	cfg := loadConfig()
	dsn := fmt.Sprintf("%s password=%s", cfg.DatabaseDSN, os.Getenv("DB_PASSWORD"))
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("seedadmin: failed to connect to database")
	}

	validator, err := user.NewValidator(cfg.UserValidation)
	if err != nil {
		log.Fatal().Err(err).Msg("seedadmin: failed to create validator")
	}
	core, err := user.NewCore(userrepo.NewRepository(db), &system.UUIDv7Generator{}, secure.NewPasswordHasher(), validator, cfg.User)
	if err != nil {
		log.Fatal().Err(err).Msg("seedadmin: failed to create user core")
	}

	ctx := context.Background()
	id, err := core.CreateUser(ctx, user.CreateUserReq{Email: *email, Name: *name, Password: password})
	if err != nil {
		log.Fatal().Err(err).Msg("seedadmin: failed to create user")
	}
	if err = core.AddRole(ctx, id, user.RoleAdmin); err != nil {
		log.Fatal().Err(err).Msg("seedadmin: failed to grant admin role")
	}

	log.Info().Str("user_id", id.String()).Str("email", *email).Msg("seedadmin: admin account created")
}

type config struct {
	DatabaseDSN    string                `mapstructure:"database_dsn" json:"database_dsn"`
	User           user.Config           `mapstructure:"user" json:"user"`
	UserValidation user.ValidationConfig `mapstructure:"user_validation" json:"user_validation"`
}

func loadConfig() config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		panic(fmt.Errorf("fatal error config file: %w", err))
	}

	var cfg config
	if err := viper.Unmarshal(&cfg); err != nil {
		panic(fmt.Errorf("fatal error config file: %w", err))
	}

	return cfg
}
