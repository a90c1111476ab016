package repositories

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"carteirinha.fgv.br/configs/configslog"
	"carteirinha.fgv.br/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	configslog.InitLogger()
	os.Exit(m.Run())
}

// newTestRepo abre um SQLite em memória com a mesma configuração de
// tradução de erros usada em produção, para que a violação de chave
// única apareça como gorm.ErrDuplicatedKey aqui também.
func newTestRepo(t *testing.T) IStudentCardRepository {
	t.Helper()
	// Arquivo temporário em vez de :memory:: o pool de conexões do GORM
	// abriria um banco em memória novo (e vazio) por conexão.
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "cards.db")), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.StudentCard{}))
	return NewStudentCardRepositoryWithDB(db)
}

func mariaCard() *models.StudentCard {
	return &models.StudentCard{
		VerificationCode: "A1B2C3",
		FullName:         "Maria Silva",
		Age:              22,
		Gender:           models.GenderFeminino,
		City:             "São Paulo - SP",
		CourseStartYear:  2021,
		Course:           "Administração",
	}
}

func TestCreateEFindByCodeRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	card := mariaCard()
	require.NoError(t, repo.Create(ctx, card))
	assert.NotZero(t, card.ID)

	found, err := repo.FindByCode(ctx, "A1B2C3")
	require.NoError(t, err)
	assert.Equal(t, card.FullName, found.FullName)
	assert.Equal(t, card.Age, found.Age)
	assert.Equal(t, card.Gender, found.Gender)
	assert.Equal(t, card.City, found.City)
	assert.Equal(t, card.CourseStartYear, found.CourseStartYear)
	assert.Equal(t, card.Course, found.Course)
	assert.Nil(t, found.PhotoURL)
}

func TestCreateCodigoDuplicado(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, mariaCard()))

	second := mariaCard()
	second.ID = 0
	second.FullName = "João Souza"
	assert.ErrorIs(t, repo.Create(ctx, second), ErrDuplicateCode)

	// O primeiro registro permanece intacto.
	found, err := repo.FindByCode(ctx, "A1B2C3")
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", found.FullName)
}

func TestFindByCodeNaoEncontrado(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.FindByCode(context.Background(), "ZZZZZZ")
	assert.ErrorIs(t, err, ErrCardRecordNotFound)
}

func TestCodeExists(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	exists, err := repo.CodeExists(ctx, "A1B2C3")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Create(ctx, mariaCard()))

	exists, err = repo.CodeExists(ctx, "A1B2C3")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestGetCount(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	count, err := repo.GetCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, repo.Create(ctx, mariaCard()))

	other := mariaCard()
	other.ID = 0
	other.VerificationCode = "L3JVJ2"
	require.NoError(t, repo.Create(ctx, other))

	count, err = repo.GetCount(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestCreatePhotoURLOpcional(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	url := "/uploads/123-abc.jpg"
	card := mariaCard()
	card.PhotoURL = &url
	require.NoError(t, repo.Create(ctx, card))

	found, err := repo.FindByCode(ctx, "A1B2C3")
	require.NoError(t, err)
	require.NotNil(t, found.PhotoURL)
	assert.Equal(t, url, *found.PhotoURL)
}
