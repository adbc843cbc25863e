package hraccess

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// AccessMiddleware guards employee-scoped routes. It expects the upstream
// auth middleware to have placed actor identity in Locals and the route to
// carry the target employee in the ":id" param. Deny maps to 403 and
// missing employee to 404 — the two outcomes stay distinguishable for
// internal callers, nothing else about the record is revealed.
func (s *Service) AccessMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		actorID, ok := c.Locals("actor_id").(uint)
		if !ok || actorID == 0 {
			return fiber.NewError(fiber.StatusUnauthorized, "actor identity not found in context")
		}
		roleStr, ok := c.Locals("actor_role").(string)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "actor role not found in context")
		}

		employeeID, err := c.ParamsInt("id")
		if err != nil || employeeID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "invalid employee id")
		}

		err = s.CanAccessEmployee(c.Context(), actorID, Role(roleStr), uint(employeeID))
		switch {
		case err == nil:
			return c.Next()
		case errors.Is(err, ErrEmployeeNotFound):
			return fiber.NewError(fiber.StatusNotFound, "employee not found")
		case errors.Is(err, ErrAccessDenied):
			return fiber.NewError(fiber.StatusForbidden, "access denied")
		case errors.Is(err, ErrUnknownRole), errors.Is(err, ErrInvalidInput):
			return fiber.NewError(fiber.StatusInternalServerError, "access check failed")
		default:
			s.log.Errorw("access check failed", "error", err)
			return fiber.NewError(fiber.StatusInternalServerError, "access check failed")
		}
	}
}
