package services

import (
	"context"

	"carteirinha.fgv.br/configs/configslog"
	"carteirinha.fgv.br/pkg/verificationcode"
	"carteirinha.fgv.br/repositories"
)

// CodePolicy define quem fornece o código de verificação de uma
// carteirinha nova. Exatamente uma política fica ativa por deployment.
type CodePolicy string

const (
	CodePolicyGenerated CodePolicy = "generated" // servidor gera no template L#LLL#
	CodePolicyManual    CodePolicy = "manual"    // administrador digita o código
)

// maxCodeAttempts limita as tentativas de gerar um código ainda livre.
const maxCodeAttempts = 5

const (
	ErrCodeLength           CardServiceError = "O código de verificação deve ter 6 caracteres."
	ErrCodeGenerationFailed CardServiceError = "Não foi possível gerar um código de verificação único."
)

// ICodeProvider fornece o código de verificação para um registro novo.
// supplied carrega o valor digitado pelo administrador e é ignorado
// pela política gerada.
type ICodeProvider interface {
	ProvideCode(ctx context.Context, supplied string) (string, error)
}

// NewCodeProvider escolhe o provedor conforme a política configurada.
// Política desconhecida cai na geração no servidor, o comportamento do
// painel original.
func NewCodeProvider(policy CodePolicy, repo repositories.IStudentCardRepository) ICodeProvider {
	if policy == CodePolicyManual {
		return &AdminCodeProvider{}
	}
	return &GeneratedCodeProvider{repo: repo}
}

// GeneratedCodeProvider gera códigos no servidor. O código devolvido está
// livre no momento da geração, mas só o índice único do repositório
// garante unicidade na inserção — gerar e checar não é livre de corrida.
type GeneratedCodeProvider struct {
	repo repositories.IStudentCardRepository
}

// NewGeneratedCodeProvider cria o provedor de códigos gerados.
func NewGeneratedCodeProvider(repo repositories.IStudentCardRepository) *GeneratedCodeProvider {
	return &GeneratedCodeProvider{repo: repo}
}

func (p *GeneratedCodeProvider) ProvideCode(ctx context.Context, _ string) (string, error) {
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code, err := verificationcode.Generate()
		if err != nil {
			return "", err
		}
		exists, err := p.repo.CodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
		configslog.SLog.Warnf("Código gerado já em uso, tentando novamente: %s (tentativa %d/%d)",
			code, attempt, maxCodeAttempts)
	}
	return "", ErrCodeGenerationFailed
}

// AdminCodeProvider valida o código digitado pelo administrador.
// A unicidade fica por conta do índice único na inserção.
type AdminCodeProvider struct{}

func (p *AdminCodeProvider) ProvideCode(_ context.Context, supplied string) (string, error) {
	code := verificationcode.Normalize(supplied)
	if len(code) != verificationcode.Length {
		return "", ErrCodeLength
	}
	return code, nil
}

// Verificação de conformidade com a interface.
var (
	_ ICodeProvider = (*GeneratedCodeProvider)(nil)
	_ ICodeProvider = (*AdminCodeProvider)(nil)
)
