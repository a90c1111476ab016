package configsdatabase

import (
	"fmt"
	"os"
	"time"

	"carteirinha.fgv.br/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var db *gorm.DB

// InitDB abre a conexão Postgres usando as variáveis de ambiente DB_*.
// TranslateError é obrigatório: a detecção de código duplicado no
// repositório depende de gorm.ErrDuplicatedKey.
func InitDB() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=America/Sao_Paulo",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_NAME", "carteirinha"),
		getEnv("DB_SSLMODE", "disable"),
	)

	gormLogLevel := gormlogger.Warn
	if os.Getenv("APP_ENV") == "production" {
		gormLogLevel = gormlogger.Error
	}

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormLogLevel),
	})
	if err != nil {
		configslog.Log.Fatal("Não foi possível conectar ao banco de dados", zap.Error(err))
	}

	sqlDB, err := conn.DB()
	if err != nil {
		configslog.Log.Fatal("Não foi possível obter a conexão SQL subjacente", zap.Error(err))
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	db = conn
	configslog.SLog.Info("Conexão com o banco de dados estabelecida")
}

// GetDB retorna a conexão global. InitDB deve ter sido chamado antes.
func GetDB() *gorm.DB {
	if db == nil {
		configslog.Log.Fatal("GetDB chamado antes de InitDB")
	}
	return db
}

// CloseDB encerra a conexão com o banco.
func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("Erro ao obter conexão para encerramento", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("Erro ao encerrar a conexão com o banco", zap.Error(err))
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
