package routes

import (
	"carteirinha.fgv.br/configs"
	"carteirinha.fgv.br/pkg/flashmessages"
	"carteirinha.fgv.br/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupRoutes registra os middlewares globais e todas as rotas.
func SetupRoutes(app *fiber.App) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())

	flashmessages.SetupStore()

	cardService := services.NewStudentCardService()
	policy := services.CodePolicy(configs.Get().CodePolicy)

	registerAdminRoutes(app, cardService, policy)

	// As rotas públicas ficam por último: GET /:codigo captura qualquer
	// caminho de um segmento que não casou com as rotas anteriores.
	registerPublicRoutes(app, cardService)

	app.Use(notFoundHandler)
}

// notFoundHandler atende rotas não mapeadas.
func notFoundHandler(c *fiber.Ctx) error {
	if c.Accepts("text/html", "application/json") == "application/json" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Recurso não encontrado"})
	}
	return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
		"Title": "Página não encontrada",
	}, "layouts/main")
}
