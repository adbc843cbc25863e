package hraccess

import (
	"context"
	"errors"
)

// CanAccessEmployee decides whether an actor may touch an employee's data.
// Returns nil on allow, ErrAccessDenied on deny, ErrEmployeeNotFound if the
// target does not exist (callers map this to a 404 rather than a 403 so the
// two outcomes stay distinguishable), ErrUnknownRole for session data outside
// the role enum. Read-only and idempotent; never mutates state.
//
// Default-deny is the governing invariant: every grant below is explicit and
// any unmatched combination falls through to ErrAccessDenied.
func (s *Service) CanAccessEmployee(ctx context.Context, actorID uint, role Role, employeeID uint) error {
	if actorID == 0 || employeeID == 0 {
		return ErrInvalidInput
	}

	caps, err := CapabilitiesFor(role)
	if err != nil {
		// Never defaulted to a grant: an unrecognized role is a
		// programming-error-class fault upstream validation missed.
		s.log.Errorw("access check with unknown role", "actor_id", actorID, "role", role)
		accessDecisions.WithLabelValues(decisionError).Inc()
		return err
	}

	if caps.Department.ViewAll {
		accessDecisions.WithLabelValues(decisionAllow).Inc()
		return nil
	}

	// Check cache
	if allowed, err := s.checkAccessCache(ctx, actorID, role, employeeID); err == nil && allowed {
		accessDecisions.WithLabelValues(decisionAllow).Inc()
		return nil
	}

	deptID, err := s.org.DepartmentOf(ctx, employeeID)
	if err != nil {
		if errors.Is(err, ErrEmployeeNotFound) {
			accessDecisions.WithLabelValues(decisionNotFound).Inc()
		} else {
			accessDecisions.WithLabelValues(decisionError).Inc()
		}
		return err
	}

	if caps.Department.Manage {
		// An unassigned employee is accessible to no department manager.
		if deptID == nil {
			accessDecisions.WithLabelValues(decisionDeny).Inc()
			return ErrAccessDenied
		}
		managers, err := s.org.ManagersOf(ctx, *deptID)
		if err != nil {
			accessDecisions.WithLabelValues(decisionError).Inc()
			return err
		}
		if _, ok := managers[actorID]; ok {
			s.setAccessCache(ctx, actorID, role, employeeID)
			accessDecisions.WithLabelValues(decisionAllow).Inc()
			return nil
		}
		accessDecisions.WithLabelValues(decisionDeny).Inc()
		return ErrAccessDenied
	}

	// Remaining roles only ever act on their own identity-linked record.
	ownID, ok, err := s.org.EmployeeForUser(ctx, actorID)
	if err != nil {
		accessDecisions.WithLabelValues(decisionError).Inc()
		return err
	}
	if ok && ownID == employeeID {
		s.setAccessCache(ctx, actorID, role, employeeID)
		accessDecisions.WithLabelValues(decisionAllow).Inc()
		return nil
	}

	accessDecisions.WithLabelValues(decisionDeny).Inc()
	return ErrAccessDenied
}
