package models

import "time"

// BaseModel é o embed comum das entidades persistidas.
// Não há soft delete nem colunas de auditoria: a carteirinha é criada
// uma única vez pelo painel e depois apenas consultada.
type BaseModel struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
