package handlers

import (
	"errors"

	"carteirinha.fgv.br/configs/configslog"
	"carteirinha.fgv.br/pkg/renderer"
	"carteirinha.fgv.br/pkg/verificationcode"
	"carteirinha.fgv.br/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// VerificationHandler atende o fluxo público de verificação de códigos.
type VerificationHandler struct {
	service services.IStudentCardService
}

// NewVerificationHandler cria o handler público.
func NewVerificationHandler(service services.IStudentCardService) *VerificationHandler {
	return &VerificationHandler{service: service}
}

// ShowVerifyForm exibe a página inicial com o campo de código.
func (h *VerificationHandler) ShowVerifyForm(c *fiber.Ctx) error {
	return renderer.Render(c, "public/verify", "layouts/main", fiber.Map{
		"Title": "Verificador de autenticidade",
	})
}

// VerifyCode processa a submissão do formulário público.
func (h *VerificationHandler) VerifyCode(c *fiber.Ctx) error {
	return h.renderResult(c, c.FormValue("codigo"))
}

// HandleCodeLink atende o link direto /:codigo, o mesmo código impresso
// no verso da carteirinha usado como URL.
func (h *VerificationHandler) HandleCodeLink(c *fiber.Ctx) error {
	return h.renderResult(c, c.Params("codigo"))
}

// renderResult consulta o código e escolhe a página: válida, inválida ou
// falha transitória com opção de tentar novamente.
func (h *VerificationHandler) renderResult(c *fiber.Ctx, rawCode string) error {
	code := verificationcode.Normalize(rawCode)

	card, err := h.service.VerifyCode(c.UserContext(), code)
	if err != nil {
		if errors.Is(err, services.ErrCardNotFound) {
			return renderer.Render(c, "public/invalid", "layouts/main", fiber.Map{
				"Title": "Carteirinha não encontrada",
				"Code":  code,
			}, fiber.StatusNotFound)
		}
		configslog.Log.Error("Verificação indisponível", zap.String("codigo", code), zap.Error(err))
		return renderer.Render(c, "errors/500", "layouts/main", fiber.Map{
			"Title":   "Serviço indisponível",
			"Message": services.ErrVerificationUnavailable.Error(),
		}, fiber.StatusInternalServerError)
	}

	return renderer.Render(c, "public/result", "layouts/main", fiber.Map{
		"Title": "Carteirinha válida",
		"Card":  card,
	})
}
