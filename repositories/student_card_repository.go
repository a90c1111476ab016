package repositories

import (
	"context"
	"errors"
	"strings"

	"carteirinha.fgv.br/configs/configsdatabase"
	"carteirinha.fgv.br/configs/configslog"
	"carteirinha.fgv.br/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Erros da camada de persistência. O chamador distingue código duplicado
// (conflito de regra de negócio) de registro inexistente e de falhas
// genéricas do banco.
var (
	ErrCardRecordNotFound = errors.New("registro de carteirinha não encontrado")
	ErrDuplicateCode      = errors.New("código de verificação já cadastrado")
)

// IStudentCardRepository é a fronteira de persistência das carteirinhas.
type IStudentCardRepository interface {
	Create(ctx context.Context, card *models.StudentCard) error
	FindByCode(ctx context.Context, code string) (*models.StudentCard, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	GetCount(ctx context.Context) (int64, error)
}

// StudentCardRepository implementa IStudentCardRepository sobre GORM.
type StudentCardRepository struct {
	db *gorm.DB
}

// NewStudentCardRepository cria o repositório com a conexão global.
func NewStudentCardRepository() IStudentCardRepository {
	return &StudentCardRepository{db: configsdatabase.GetDB()}
}

// NewStudentCardRepositoryWithDB cria o repositório com uma conexão
// específica (transações e testes).
func NewStudentCardRepositoryWithDB(db *gorm.DB) IStudentCardRepository {
	return &StudentCardRepository{db: db}
}

// Create insere a carteirinha. A unicidade do código é garantida pelo
// índice único na própria escrita — não há pré-checagem separada, então
// duas criações concorrentes com o mesmo código nunca passam ambas.
// O código já deve chegar normalizado (maiúsculas) da camada de serviço.
func (r *StudentCardRepository) Create(ctx context.Context, card *models.StudentCard) error {
	if card == nil {
		return errors.New("carteirinha a criar não pode ser nil")
	}
	err := r.db.WithContext(ctx).Create(card).Error
	if err != nil {
		if isDuplicateKeyError(err) {
			return ErrDuplicateCode
		}
		configslog.Log.Error("StudentCardRepository.Create: erro de banco",
			zap.String("verification_code", card.VerificationCode), zap.Error(err))
		return err
	}
	return nil
}

// FindByCode busca a carteirinha pelo código de verificação. Consulta
// pontual no índice único; o código deve chegar normalizado.
func (r *StudentCardRepository) FindByCode(ctx context.Context, code string) (*models.StudentCard, error) {
	if code == "" {
		return nil, errors.New("código de verificação a buscar não pode ser vazio")
	}
	var card models.StudentCard
	err := r.db.WithContext(ctx).Where("verification_code = ?", code).First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardRecordNotFound
		}
		configslog.Log.Error("StudentCardRepository.FindByCode: erro de banco",
			zap.String("verification_code", code), zap.Error(err))
		return nil, err
	}
	return &card, nil
}

// CodeExists verifica se um código já está em uso. Serve apenas para o
// gerador evitar colisões óbvias; a garantia final é do índice único.
func (r *StudentCardRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	if code == "" {
		return false, errors.New("código de verificação a verificar não pode ser vazio")
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&models.StudentCard{}).
		Where("verification_code = ?", code).Count(&count).Error
	if err != nil {
		configslog.Log.Error("StudentCardRepository.CodeExists: erro de banco",
			zap.String("verification_code", code), zap.Error(err))
		return false, err
	}
	return count > 0, nil
}

// GetCount retorna o total de carteirinhas cadastradas.
func (r *StudentCardRepository) GetCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.StudentCard{}).Count(&count).Error
	if err != nil {
		configslog.Log.Error("StudentCardRepository.GetCount: erro de banco", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// isDuplicateKeyError reconhece violação de chave única. TranslateError
// cobre o caso padrão; o fallback textual cobre drivers sem tradução.
func isDuplicateKeyError(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate key value violates unique constraint")
}

// Verificação de conformidade com a interface.
var _ IStudentCardRepository = (*StudentCardRepository)(nil)
