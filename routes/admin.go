package routes

import (
	adminhandlers "carteirinha.fgv.br/handlers/admin"
	"carteirinha.fgv.br/services"

	"github.com/gofiber/fiber/v2"
)

// registerAdminRoutes define o painel de cadastro de carteirinhas.
func registerAdminRoutes(app *fiber.App, cardService services.IStudentCardService, policy services.CodePolicy) {
	handler := adminhandlers.NewAdminCardHandler(cardService, policy)

	admin := app.Group("/admin")
	admin.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/admin/carteirinhas/nova", fiber.StatusFound)
	})
	admin.Get("/carteirinhas/nova", handler.ShowCreateCard)
	admin.Post("/carteirinhas", handler.CreateCard)
}
