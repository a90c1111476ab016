package database

import (
	"carteirinha.fgv.br/configs/configslog"
	"carteirinha.fgv.br/database/migrations"
	"carteirinha.fgv.br/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize roda migrações e seeders conforme os flags, dentro de uma
// única transação: ou tudo aplica, ou nada.
func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("Nenhum flag de migrate ou seed informado, nada a fazer.")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("Não foi possível iniciar a transação de inicialização", zap.Error(tx.Error))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("Inicialização do banco falhou (panic)", zap.Any("panic_info", r))
		}
	}()

	configslog.SLog.Info("Inicialização do banco de dados começando...")

	if migrate {
		if err := RunMigrationsInOrder(tx); err != nil {
			tx.Rollback()
			configslog.Log.Fatal("Migração falhou", zap.Error(err))
			return
		}
	}

	if seed {
		if err := CheckAndRunSeeders(tx); err != nil {
			tx.Rollback()
			configslog.Log.Fatal("Seeding falhou", zap.Error(err))
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		configslog.Log.Fatal("Commit da inicialização falhou", zap.Error(err))
		return
	}

	configslog.SLog.Info("Inicialização do banco de dados concluída com sucesso")
}

// RunMigrationsInOrder executa as migrações na ordem de dependência.
// Hoje há uma única entidade; a ordenação fica para quando houver mais.
func RunMigrationsInOrder(db *gorm.DB) error {
	configslog.SLog.Info(" -> Migrando tabela student_cards...")
	if err := migrations.MigrateStudentCardsTable(db); err != nil {
		configslog.Log.Error("Migração da tabela student_cards falhou", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Migração de student_cards concluída.")
	return nil
}

// CheckAndRunSeeders executa os seeders idempotentes.
func CheckAndRunSeeders(db *gorm.DB) error {
	configslog.SLog.Info(" -> Executando seeder de carteirinhas de demonstração...")
	if err := seeders.SeedDemoCards(db); err != nil {
		configslog.Log.Error("Seeder de carteirinhas falhou", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Seeder de carteirinhas concluído.")
	return nil
}
