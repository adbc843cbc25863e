package hraccess

import (
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newGuardedApp wires a stub auth layer (headers into Locals) in front of
// the access middleware and a trivial protected handler.
func newGuardedApp(svc *Service) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if raw := c.Get("X-Actor-ID"); raw != "" {
			id, _ := strconv.Atoi(raw)
			c.Locals("actor_id", uint(id))
		}
		if role := c.Get("X-Actor-Role"); role != "" {
			c.Locals("actor_role", role)
		}
		return c.Next()
	})
	app.Get("/employees/:id/history", svc.AccessMiddleware(), func(c *fiber.Ctx) error {
		return c.SendString("granted")
	})
	return app
}

func TestAccessMiddleware(t *testing.T) {
	svc := newTestService(t)
	_, deptID, empID := seedOrg(t, svc)
	seedManager(t, svc, 7, deptID)
	app := newGuardedApp(svc)

	target := "/employees/" + strconv.Itoa(int(empID)) + "/history"

	tests := []struct {
		name       string
		path       string
		actorID    string
		role       string
		wantStatus int
	}{
		{"manager allowed", target, "7", "DepartmentManager", fiber.StatusOK},
		{"admin allowed", target, "1", "Admin", fiber.StatusOK},
		{"fire warden denied", target, "7", "FireWarden", fiber.StatusForbidden},
		{"missing employee", "/employees/4242/history", "7", "DepartmentManager", fiber.StatusNotFound},
		{"unauthenticated", target, "", "", fiber.StatusUnauthorized},
		{"missing role", target, "7", "", fiber.StatusUnauthorized},
		{"unknown role", target, "7", "Superuser", fiber.StatusInternalServerError},
		{"bad employee id", "/employees/zero/history", "7", "DepartmentManager", fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.actorID != "" {
				req.Header.Set("X-Actor-ID", tt.actorID)
			}
			if tt.role != "" {
				req.Header.Set("X-Actor-Role", tt.role)
			}

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
