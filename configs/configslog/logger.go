package configslog

import (
	"log"
	"os"

	"go.uber.org/zap"
)

// Log é o logger estruturado global; SLog é a variante sugared para
// mensagens formatadas. Ambos são inicializados por InitLogger.
var (
	Log  *zap.Logger
	SLog *zap.SugaredLogger
)

// InitLogger configura o logger global conforme o ambiente (APP_ENV).
// Em produção usa o encoder JSON; fora dela, o encoder de desenvolvimento.
func InitLogger() {
	var (
		logger *zap.Logger
		err    error
	)
	if os.Getenv("APP_ENV") == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("não foi possível inicializar o logger: %v", err)
	}
	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger descarrega buffers pendentes; deve ser deferido no main.
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
