package hraccess

// Role is the closed set of roles a session can carry. There is no role
// inheritance: every capability a role holds is spelled out below.
type Role string

const (
	RoleAdmin             Role = "Admin"
	RoleDepartmentManager Role = "DepartmentManager"
	RoleFireWarden        Role = "FireWarden"
	RoleEmployeeViewer    Role = "EmployeeViewer"
	RoleUser              Role = "User"
)

// EmployeeCapabilities are the employee-resource permissions of a role.
type EmployeeCapabilities struct {
	View   bool
	Edit   bool
	Delete bool
}

// DepartmentCapabilities are the department-resource permissions of a role.
type DepartmentCapabilities struct {
	View    bool
	Edit    bool
	Manage  bool
	ViewAll bool
}

// CapabilitySet is the full set of permissions granted to a role.
type CapabilitySet struct {
	Employee   EmployeeCapabilities
	Department DepartmentCapabilities
}

// roleCapabilities is static data; never mutated after init.
var roleCapabilities = map[Role]CapabilitySet{
	RoleAdmin: {
		Employee:   EmployeeCapabilities{View: true, Edit: true, Delete: true},
		Department: DepartmentCapabilities{View: true, Edit: true, Manage: true, ViewAll: true},
	},
	RoleDepartmentManager: {
		Employee:   EmployeeCapabilities{View: true, Edit: true},
		Department: DepartmentCapabilities{View: true, Manage: true},
	},
	RoleFireWarden: {
		Employee:   EmployeeCapabilities{View: true},
		Department: DepartmentCapabilities{View: true},
	},
	RoleEmployeeViewer: {
		Employee:   EmployeeCapabilities{View: true},
		Department: DepartmentCapabilities{},
	},
	RoleUser: {
		Employee:   EmployeeCapabilities{},
		Department: DepartmentCapabilities{},
	},
}

// CapabilitiesFor returns the capability set of a role. Pure and total over
// the Role enum; ErrUnknownRole means the caller passed session data that
// upstream validation should have rejected.
func CapabilitiesFor(role Role) (CapabilitySet, error) {
	caps, ok := roleCapabilities[role]
	if !ok {
		return CapabilitySet{}, ErrUnknownRole
	}
	return caps, nil
}
