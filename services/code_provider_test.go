package services

import (
	"context"
	"regexp"
	"testing"

	"carteirinha.fgv.br/models"
	"carteirinha.fgv.br/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedExistsRepo devolve respostas pré-definidas para CodeExists,
// na ordem; esgotada a fila, responde false.
type scriptedExistsRepo struct {
	results []bool
	calls   int
}

func (r *scriptedExistsRepo) CodeExists(_ context.Context, _ string) (bool, error) {
	defer func() { r.calls++ }()
	if r.calls < len(r.results) {
		return r.results[r.calls], nil
	}
	return false, nil
}

func (r *scriptedExistsRepo) Create(context.Context, *models.StudentCard) error { return nil }
func (r *scriptedExistsRepo) FindByCode(context.Context, string) (*models.StudentCard, error) {
	return nil, repositories.ErrCardRecordNotFound
}
func (r *scriptedExistsRepo) GetCount(context.Context) (int64, error) { return 0, nil }

func TestGeneratedCodeProviderGeraCodigoLivre(t *testing.T) {
	repo := &scriptedExistsRepo{}
	provider := NewGeneratedCodeProvider(repo)

	code, err := provider.ProvideCode(context.Background(), "ignorado")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[A-Z][0-9][A-Z]{3}[0-9]$`), code)
	assert.Equal(t, 1, repo.calls)
}

func TestGeneratedCodeProviderTentaNovamenteAposColisao(t *testing.T) {
	repo := &scriptedExistsRepo{results: []bool{true, true, false}}
	provider := NewGeneratedCodeProvider(repo)

	code, err := provider.ProvideCode(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, code, 6)
	assert.Equal(t, 3, repo.calls)
}

func TestGeneratedCodeProviderDesisteAposLimite(t *testing.T) {
	repo := &scriptedExistsRepo{results: []bool{true, true, true, true, true}}
	provider := NewGeneratedCodeProvider(repo)

	_, err := provider.ProvideCode(context.Background(), "")
	assert.ErrorIs(t, err, ErrCodeGenerationFailed)
	assert.Equal(t, maxCodeAttempts, repo.calls)
}

func TestAdminCodeProviderNormaliza(t *testing.T) {
	provider := &AdminCodeProvider{}

	code, err := provider.ProvideCode(context.Background(), " a1b2c3 ")
	require.NoError(t, err)
	assert.Equal(t, "A1B2C3", code)
}

func TestAdminCodeProviderRejeitaTamanhoErrado(t *testing.T) {
	provider := &AdminCodeProvider{}
	for _, supplied := range []string{"", "ABC", "A1B2C3D"} {
		_, err := provider.ProvideCode(context.Background(), supplied)
		assert.ErrorIs(t, err, ErrCodeLength, "codigo %q", supplied)
	}
}

func TestNewCodeProviderEscolhePelaPolitica(t *testing.T) {
	repo := &scriptedExistsRepo{}
	assert.IsType(t, &GeneratedCodeProvider{}, NewCodeProvider(CodePolicyGenerated, repo))
	assert.IsType(t, &AdminCodeProvider{}, NewCodeProvider(CodePolicyManual, repo))
	// Política desconhecida cai na geração no servidor.
	assert.IsType(t, &GeneratedCodeProvider{}, NewCodeProvider(CodePolicy("outra"), repo))
}
