package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/bohemiyan/hraccess"
)

// historyHandler serves the audit trail of an employee. The access
// middleware has already allowed the actor; this only translates the query
// string into a filter and the store result into JSON.
func historyHandler(svc *hraccess.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		employeeID, err := c.ParamsInt("id")
		if err != nil || employeeID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "invalid employee id")
		}

		filter := hraccess.HistoryFilter{
			Action:          hraccess.HistoryAction(c.Query("action")),
			Limit:           c.QueryInt("limit"),
			Offset:          c.QueryInt("offset"),
			IncludeOrphaned: c.QueryBool("include_orphaned"),
		}

		page, err := svc.QueryEmployeeHistory(c.Context(), uint(employeeID), filter)
		switch {
		case err == nil:
		case errors.Is(err, hraccess.ErrEmployeeNotFound):
			return fiber.NewError(fiber.StatusNotFound, "employee not found")
		case errors.Is(err, hraccess.ErrInvalidInput):
			return fiber.NewError(fiber.StatusBadRequest, "invalid history filter")
		default:
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch history")
		}

		entries := make([]fiber.Map, len(page.Entries))
		for i, e := range page.Entries {
			entries[i] = fiber.Map{
				"id":         e.ID,
				"kind":       e.Kind,
				"record_id":  e.RecordID,
				"action":     e.Action,
				"old_values": e.OldValues,
				"new_values": e.NewValues,
				"actor_id":   e.ActorID,
				"timestamp":  e.CreatedAt,
			}
		}
		return c.JSON(fiber.Map{"total": page.Total, "entries": entries})
	}
}
