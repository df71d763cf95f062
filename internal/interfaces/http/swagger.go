package http

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
)

// SwaggerMiddleware restituisce il middleware della Swagger UI se il file
// OpenAPI esiste. Il middleware di contrib va in panic a costruzione se il
// file manca: qui si degrada a (nil, false) e l'API parte comunque.
func SwaggerMiddleware(filePath, title string) (fiber.Handler, bool) {
	if _, err := os.Stat(filePath); err != nil {
		return nil, false
	}
	return swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    title,
	}), true
}
