package routes

import (
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Stored files live under <storageRoot>/<employeeID>/<filename>.

// fileHandler serves an employee's stored document. Traversal sequences are
// rejected before the name ever reaches the filesystem, independent of the
// access decision already made by the middleware.
func fileHandler(storageRoot string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("filename")
		if !safeFilename(name) {
			return fiber.NewError(fiber.StatusBadRequest, "invalid filename")
		}
		return c.SendFile(filepath.Join(storageRoot, c.Params("id"), name))
	}
}

// imageHandler serves the employee's profile image.
func imageHandler(storageRoot string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendFile(filepath.Join(storageRoot, c.Params("id"), "photo.jpg"))
	}
}

func safeFilename(name string) bool {
	if name == "" || name == "." {
		return false
	}
	if strings.Contains(name, "..") {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}
