package routes

import (
	publichandlers "carteirinha.fgv.br/handlers/public"
	"carteirinha.fgv.br/services"

	"github.com/gofiber/fiber/v2"
)

// registerPublicRoutes define o fluxo público de verificação.
func registerPublicRoutes(app *fiber.App, cardService services.IStudentCardService) {
	handler := publichandlers.NewVerificationHandler(cardService)

	app.Get("/", handler.ShowVerifyForm)
	app.Post("/verificar", handler.VerifyCode)

	// Link direto com o código impresso no verso da carteirinha.
	app.Get("/:codigo", handler.HandleCodeLink)
}
