package main

import (
	"flag"

	"carteirinha.fgv.br/configs"
	"carteirinha.fgv.br/configs/configsdatabase"
	"carteirinha.fgv.br/configs/configslog"
	"carteirinha.fgv.br/database"
)

func main() {
	configs.LoadConfig()
	configslog.InitLogger()
	defer configslog.SyncLogger()

	migrateFlag := flag.Bool("migrate", false, "Executa as migrações do banco de dados")
	seedFlag := flag.Bool("seed", false, "Executa os seeders do banco de dados")
	flag.Parse()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	configslog.SLog.Info("Executando inicialização do banco de dados...")
	database.Initialize(configsdatabase.GetDB(), *migrateFlag, *seedFlag)
	configslog.SLog.Info("Inicialização do banco de dados finalizada.")
}
