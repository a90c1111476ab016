package migrations

import (
	"carteirinha.fgv.br/configs/configslog"
	"carteirinha.fgv.br/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateStudentCardsTable cria/atualiza a tabela student_cards,
// incluindo o índice único do código de verificação.
func MigrateStudentCardsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating student_cards table...")
	if err := db.AutoMigrate(&models.StudentCard{}); err != nil {
		configslog.Log.Error("Failed to migrate student_cards table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("student_cards table migrated successfully")
	return nil
}
