package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/yungbote/legalkaz/backend/internal/logger"
	"github.com/yungbote/legalkaz/backend/internal/types"
	"github.com/yungbote/legalkaz/backend/internal/utils"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	//1) Get and Set Environment Variables
	log.Info("Attempting to load environment variables for Postgres now...")
	postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
	postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
	postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
	postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
	postgresName := utils.GetEnv("POSTGRES_NAME", "chat_app", log)
	log.Debug("Environment variables loaded for Postgres",
		"host", postgresHost,
		"port", postgresPort,
		"user", postgresUser,
		"dbname", postgresName,
	)

	//2) Construct DSN From Environment Variables
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

	//3) Attempt DB Connection
	log.Info("Attempting to connect to Postgres DB now...")
	db, err := gorm.Open(postgres.Open(dsn), Config())
	if err != nil {
		log.Error("Failed to connect to Postgres DB", "error", err)
		return nil, fmt.Errorf("failed to connect to Postgres DB: %w", err)
	}
	log.Info("Successfully Connected to Postgres DB :)")

	return &PostgresService{db: db, log: serviceLog}, nil
}

// Config is the gorm configuration shared by every dialect we open.
// TranslateError turns unique violations into gorm.ErrDuplicatedKey.
func Config() *gorm.Config {
	return &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
		Logger:                                   gormlogger.Default.LogMode(gormlogger.Silent),
	}
}

// Migrate creates or updates the tables for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&types.Account{},
		&types.ChatMessage{},
	)
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Starting AutoMigrateAll for all GORM models now...")
	if err := Migrate(s.db); err != nil {
		s.log.Error("AutoMigrateAll failed for Base Tables :(", "error", err)
		return err
	}
	s.log.Info("AutoMigrateAll completed successfully for Base Tables :)")

	s.log.Info("Configuring Foreign Key Relationships for Base Tables now...")
	if s.db.Migrator().HasConstraint(&types.ChatMessage{}, "fk_chat_message_user_id") {
		s.log.Debug("fk_chat_message_user_id already present")
		return nil
	}
	// -- ChatMessage.user_id => account.id
	if err := s.db.Exec(`
		ALTER TABLE "chat_message"
		ADD CONSTRAINT "fk_chat_message_user_id"
		FOREIGN KEY ("user_id")
		REFERENCES "account" ("id")
		ON DELETE RESTRICT
	`).Error; err != nil {
		return fmt.Errorf("failed to add fk_chat_message_user_id: %w", err)
	}
	s.log.Info("Successfully Added Foreign Key Relationships to Base Tables :)")
	return nil
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}

func (s *PostgresService) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
