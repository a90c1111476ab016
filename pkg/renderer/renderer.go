// Package renderer centraliza a renderização de views com layout e
// injeta as flash messages pendentes nos dados da página.
package renderer

import (
	"carteirinha.fgv.br/pkg/flashmessages"

	"github.com/gofiber/fiber/v2"
)

// Chaves usadas pelos templates para exibir as mensagens.
const (
	FlashSuccessKeyView = "FlashSuccess"
	FlashErrorKeyView   = "FlashError"
)

// Render renderiza a view com o layout informado. As flash messages da
// sessão só são aplicadas quando o handler não definiu as próprias.
func Render(c *fiber.Ctx, view, layout string, data fiber.Map, status ...int) error {
	if data == nil {
		data = fiber.Map{}
	}
	if _, ok := data[FlashSuccessKeyView]; !ok {
		if msg := flashmessages.GetFlashMessage(c, flashmessages.FlashSuccessKey); msg != "" {
			data[FlashSuccessKeyView] = msg
		}
	}
	if _, ok := data[FlashErrorKeyView]; !ok {
		if msg := flashmessages.GetFlashMessage(c, flashmessages.FlashErrorKey); msg != "" {
			data[FlashErrorKeyView] = msg
		}
	}

	code := fiber.StatusOK
	if len(status) > 0 {
		code = status[0]
	}
	return c.Status(code).Render(view, data, layout)
}
