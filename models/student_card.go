package models

// Opções válidas para o campo Sexo. O formulário restringe via select,
// mas o validador reforça a lista caso o contrato seja chamado direto.
const (
	GenderMasculino = "Masculino"
	GenderFeminino  = "Feminino"
	GenderOutro     = "Outro"
)

// Genders lista as opções de sexo na ordem exibida no formulário.
var Genders = []string{GenderMasculino, GenderFeminino, GenderOutro}

// StudentCard é o registro persistido da carteirinha estudantil.
// VerificationCode é a chave pública de consulta: 6 caracteres,
// armazenada sempre em maiúsculas e única em toda a base.
type StudentCard struct {
	BaseModel
	VerificationCode string  `gorm:"type:varchar(6);uniqueIndex;not null"`
	FullName         string  `gorm:"type:varchar(255);not null"`
	Age              int     `gorm:"not null"`
	Gender           string  `gorm:"type:varchar(20);not null"`
	City             string  `gorm:"type:varchar(255);not null"`
	CourseStartYear  int     `gorm:"not null"`
	Course           string  `gorm:"type:varchar(255);not null"`
	PhotoURL         *string `gorm:"type:varchar(512)"` // preenchida apenas se o upload da foto tiver sucesso
}
