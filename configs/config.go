package configs

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// AppConfig concentra a configuração da aplicação lida do ambiente.
type AppConfig struct {
	Env            string
	Port           string
	UploadsDir     string // diretório local onde as fotos são gravadas
	UploadsBaseURL string // prefixo público das URLs de foto
	CodePolicy     string // "generated" ou "manual" — exatamente um por deployment
	AutoMigrate    bool
	SeedDemo       bool
}

var appConfig *AppConfig

// LoadConfig carrega o .env (se existir) e monta a configuração.
// A ausência do arquivo .env não é erro: em produção as variáveis
// vêm do ambiente do processo.
func LoadConfig() *AppConfig {
	_ = godotenv.Load()

	appConfig = &AppConfig{
		Env:            getEnv("APP_ENV", "development"),
		Port:           getEnv("APP_PORT", "3000"),
		UploadsDir:     getEnv("UPLOADS_DIR", "./uploads/student-photos"),
		UploadsBaseURL: getEnv("UPLOADS_BASE_URL", "/uploads"),
		CodePolicy:     getEnv("CARD_CODE_POLICY", "generated"),
		AutoMigrate:    getEnvBool("AUTO_MIGRATE", true),
		SeedDemo:       getEnvBool("SEED_DEMO_CARDS", false),
	}
	return appConfig
}

// Get retorna a configuração atual, carregando-a na primeira chamada.
func Get() *AppConfig {
	if appConfig == nil {
		return LoadConfig()
	}
	return appConfig
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
