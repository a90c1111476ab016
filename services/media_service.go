package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PhotoUpload carrega o conteúdo e o nome original da foto enviada.
type PhotoUpload struct {
	FileName string
	Content  []byte
}

// IMediaService é a fronteira de armazenamento de objetos: grava a foto
// e devolve uma URL pública durável. Falhas aqui nunca abortam o
// cadastro da carteirinha — o registro segue sem foto.
type IMediaService interface {
	Store(ctx context.Context, originalName string, content []byte) (string, error)
}

// LocalMediaService grava as fotos em um diretório publicado pelo
// próprio servidor (ver rota estática em main). A chave de armazenamento
// é independente do código de verificação da carteirinha.
type LocalMediaService struct {
	dir     string
	baseURL string
}

// NewLocalMediaService cria o serviço apontando para o diretório de
// uploads e o prefixo público configurados.
func NewLocalMediaService(dir, baseURL string) *LocalMediaService {
	return &LocalMediaService{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

// Store grava o arquivo sob uma chave resistente a colisão:
// <epoch-ms>-<uuid><extensão original>.
func (s *LocalMediaService) Store(_ context.Context, originalName string, content []byte) (string, error) {
	if len(content) == 0 {
		return "", errors.New("conteúdo da foto vazio")
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	key := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("falha ao preparar diretório de uploads: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, key), content, 0o644); err != nil {
		return "", fmt.Errorf("falha ao gravar foto: %w", err)
	}
	return s.baseURL + "/" + key, nil
}

// Verificação de conformidade com a interface.
var _ IMediaService = (*LocalMediaService)(nil)
