package seeders

import (
	"carteirinha.fgv.br/configs/configslog"
	"carteirinha.fgv.br/models"

	"gorm.io/gorm"
)

// SeedDemoCards insere uma carteirinha de demonstração em bases vazias,
// útil para homologação do fluxo de verificação. Idempotente: não faz
// nada se já existir qualquer registro.
func SeedDemoCards(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.StudentCard{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		configslog.SLog.Info("Base já possui carteirinhas, seeder ignorado.")
		return nil
	}

	demo := models.StudentCard{
		VerificationCode: "A1B2C3",
		FullName:         "Maria Silva Santos",
		Age:              22,
		Gender:           models.GenderFeminino,
		City:             "São Paulo - SP",
		CourseStartYear:  2021,
		Course:           "Administração de Empresas",
	}
	if err := db.Create(&demo).Error; err != nil {
		return err
	}
	configslog.SLog.Infof("Carteirinha de demonstração criada com o código %s", demo.VerificationCode)
	return nil
}
