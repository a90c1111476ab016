package handlers

import (
	"fmt"
	"io"

	"carteirinha.fgv.br/configs/configslog"
	"carteirinha.fgv.br/pkg/flashmessages"
	"carteirinha.fgv.br/pkg/renderer"
	"carteirinha.fgv.br/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// maxPhotoSizeBytes limita o tamanho da foto aceita no cadastro.
const maxPhotoSizeBytes = 5 << 20

// AdminCardHandler atende o painel de cadastro de carteirinhas.
type AdminCardHandler struct {
	service services.IStudentCardService
	policy  services.CodePolicy
}

// NewAdminCardHandler cria o handler com o serviço e a política ativos.
func NewAdminCardHandler(service services.IStudentCardService, policy services.CodePolicy) *AdminCardHandler {
	return &AdminCardHandler{service: service, policy: policy}
}

// ShowCreateCard exibe o formulário de cadastro. Dados de uma submissão
// anterior que falhou são repopulados via flash.
func (h *AdminCardHandler) ShowCreateCard(c *fiber.Ctx) error {
	count, err := h.service.GetCardCount(c.UserContext())
	if err != nil {
		configslog.Log.Warn("Admin - não foi possível obter o total de carteirinhas", zap.Error(err))
		count = 0
	}

	return renderer.Render(c, "admin/create", "layouts/main", fiber.Map{
		"Title":      "Cadastro de Carteirinha Estudantil",
		"FormData":   flashmessages.GetFlashFormData(c),
		"CardCount":  count,
		"ManualCode": h.policy == services.CodePolicyManual,
	})
}

// CreateCard processa a submissão do cadastro (multipart, foto opcional).
func (h *AdminCardHandler) CreateCard(c *fiber.Ctx) error {
	var form services.CardForm
	if err := c.BodyParser(&form); err != nil {
		configslog.Log.Warn("Admin - formulário de cadastro inválido", zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Dados do formulário inválidos.")
		return c.Redirect("/admin/carteirinhas/nova", fiber.StatusSeeOther)
	}

	photo := h.readPhoto(c)

	card, err := h.service.CreateCard(c.UserContext(), form, photo)
	if err != nil {
		configslog.Log.Error("Admin - erro ao cadastrar carteirinha", zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		_ = flashmessages.SetFlashFormData(c, form)
		return c.Redirect("/admin/carteirinhas/nova", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey,
		fmt.Sprintf("Carteirinha cadastrada com sucesso! Código: %s", card.VerificationCode))
	return c.Redirect("/admin/carteirinhas/nova", fiber.StatusFound)
}

// readPhoto extrai a foto do multipart. O campo é opcional e qualquer
// problema aqui apenas resulta em cadastro sem foto.
func (h *AdminCardHandler) readPhoto(c *fiber.Ctx) *services.PhotoUpload {
	fileHeader, err := c.FormFile("foto")
	if err != nil || fileHeader == nil || fileHeader.Size == 0 {
		return nil
	}
	if fileHeader.Size > maxPhotoSizeBytes {
		configslog.SLog.Warnf("Foto excede o limite de %d bytes e foi ignorada: %s",
			maxPhotoSizeBytes, fileHeader.Filename)
		return nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		configslog.Log.Warn("Admin - não foi possível abrir a foto enviada", zap.Error(err))
		return nil
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		configslog.Log.Warn("Admin - não foi possível ler a foto enviada", zap.Error(err))
		return nil
	}
	return &services.PhotoUpload{FileName: fileHeader.Filename, Content: content}
}
