package main

import (
	"carteirinha.fgv.br/configs"
	"carteirinha.fgv.br/configs/configsdatabase"
	"carteirinha.fgv.br/configs/configslog"
	"carteirinha.fgv.br/database"
	"carteirinha.fgv.br/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

func main() {
	cfg := configs.LoadConfig()
	configslog.InitLogger()
	defer configslog.SyncLogger()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	// Em deployments com pipeline de migração dedicado (database/cmd),
	// desligue com AUTO_MIGRATE=false.
	database.Initialize(configsdatabase.GetDB(), cfg.AutoMigrate, cfg.SeedDemo)

	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		Views:   engine,
		AppName: "Carteirinha Virtual FGV",
	})

	// As fotos gravadas pelo LocalMediaService são servidas daqui.
	app.Static(cfg.UploadsBaseURL, cfg.UploadsDir)

	routes.SetupRoutes(app)

	configslog.SLog.Infof("Servidor iniciado na porta %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		configslog.Log.Fatal("Servidor encerrado com erro", zap.Error(err))
	}
}
