package services

import (
	"context"
	"errors"
	"time"

	"carteirinha.fgv.br/configs"
	"carteirinha.fgv.br/configs/configslog"
	"carteirinha.fgv.br/models"
	"carteirinha.fgv.br/pkg/verificationcode"
	"carteirinha.fgv.br/repositories"

	"go.uber.org/zap"
)

// Erros de negócio do serviço de carteirinhas.
const (
	ErrCodeInUse               CardServiceError = "Este código de verificação já está em uso."
	ErrCardCreationFailed      CardServiceError = "Erro ao cadastrar carteirinha. Verifique os dados."
	ErrCardNotFound            CardServiceError = "Carteirinha não encontrada."
	ErrVerificationUnavailable CardServiceError = "Não foi possível verificar o código no momento. Tente novamente."
)

// storeTimeout limita cada chamada ao banco e ao armazenamento de
// fotos; estouro vira o mesmo erro transitório de indisponibilidade.
const storeTimeout = 5 * time.Second

// IStudentCardService reúne as operações de cadastro e verificação.
type IStudentCardService interface {
	CreateCard(ctx context.Context, form CardForm, photo *PhotoUpload) (*models.StudentCard, error)
	VerifyCode(ctx context.Context, rawCode string) (*models.StudentCard, error)
	GetCardCount(ctx context.Context) (int64, error)
}

// StudentCardService implementa IStudentCardService.
type StudentCardService struct {
	repo   repositories.IStudentCardRepository
	codes  ICodeProvider
	media  IMediaService
	policy CodePolicy
}

// NewStudentCardService monta o serviço a partir da configuração ativa.
func NewStudentCardService() IStudentCardService {
	cfg := configs.Get()
	repo := repositories.NewStudentCardRepository()
	policy := CodePolicy(cfg.CodePolicy)
	return &StudentCardService{
		repo:   repo,
		codes:  NewCodeProvider(policy, repo),
		media:  NewLocalMediaService(cfg.UploadsDir, cfg.UploadsBaseURL),
		policy: policy,
	}
}

// NewStudentCardServiceWith injeta as dependências explicitamente (testes).
func NewStudentCardServiceWith(
	repo repositories.IStudentCardRepository,
	codes ICodeProvider,
	media IMediaService,
	policy CodePolicy,
) IStudentCardService {
	return &StudentCardService{repo: repo, codes: codes, media: media, policy: policy}
}

// CreateCard executa o cadastro em duas etapas explícitas: primeiro o
// armazenamento da foto (melhor esforço, falha não bloqueia), depois a
// inserção do registro. A validação nunca chega ao banco quando falha.
func (s *StudentCardService) CreateCard(ctx context.Context, form CardForm, photo *PhotoUpload) (*models.StudentCard, error) {
	if err := ValidateCardForm(form, s.policy == CodePolicyManual); err != nil {
		return nil, err
	}

	code, err := s.codes.ProvideCode(ctx, form.VerificationCode)
	if err != nil {
		return nil, err
	}

	var photoURL *string
	if photo != nil && len(photo.Content) > 0 {
		mediaCtx, cancel := context.WithTimeout(ctx, storeTimeout)
		url, mediaErr := s.media.Store(mediaCtx, photo.FileName, photo.Content)
		cancel()
		if mediaErr != nil {
			// Foto é opcional: registra a falha e segue sem photo_url.
			configslog.Log.Warn("Falha ao armazenar a foto do aluno, cadastro segue sem foto",
				zap.String("arquivo", photo.FileName), zap.Error(mediaErr))
		} else {
			photoURL = &url
		}
	}

	card := form.toStudentCard(code, photoURL)
	createCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	if err := s.repo.Create(createCtx, card); err != nil {
		if errors.Is(err, repositories.ErrDuplicateCode) {
			configslog.Log.Warn("Código de verificação duplicado na inserção",
				zap.String("verification_code", code))
			return nil, ErrCodeInUse
		}
		configslog.Log.Error("Erro ao cadastrar carteirinha", zap.Error(err))
		return nil, ErrCardCreationFailed
	}

	configslog.SLog.Infof("Carteirinha cadastrada: ID %d, código %s", card.ID, card.VerificationCode)
	return card, nil
}

// VerifyCode é o caminho de leitura: normaliza o código digitado e faz a
// consulta pontual. Código malformado vira "não encontrada" sem tocar o
// banco; indisponibilidade do banco vira um estado transitório distinto.
func (s *StudentCardService) VerifyCode(ctx context.Context, rawCode string) (*models.StudentCard, error) {
	code := verificationcode.Normalize(rawCode)
	if len(code) != verificationcode.Length {
		return nil, ErrCardNotFound
	}

	lookupCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	card, err := s.repo.FindByCode(lookupCtx, code)
	if err != nil {
		if errors.Is(err, repositories.ErrCardRecordNotFound) {
			return nil, ErrCardNotFound
		}
		configslog.Log.Error("Erro ao consultar código de verificação",
			zap.String("verification_code", code), zap.Error(err))
		return nil, ErrVerificationUnavailable
	}
	return card, nil
}

// GetCardCount informa o total de carteirinhas cadastradas.
func (s *StudentCardService) GetCardCount(ctx context.Context) (int64, error) {
	return s.repo.GetCount(ctx)
}

// Verificação de conformidade com a interface.
var _ IStudentCardService = (*StudentCardService)(nil)
