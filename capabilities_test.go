package hraccess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapabilitiesForKnownRoles(t *testing.T) {
	tests := []struct {
		role        Role
		wantViewAll bool
		wantManage  bool
		wantEmpView bool
	}{
		{RoleAdmin, true, true, true},
		{RoleDepartmentManager, false, true, true},
		{RoleFireWarden, false, false, true},
		{RoleEmployeeViewer, false, false, true},
		{RoleUser, false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			caps, err := CapabilitiesFor(tt.role)
			require.NoError(t, err)
			assert.Equal(t, tt.wantViewAll, caps.Department.ViewAll)
			assert.Equal(t, tt.wantManage, caps.Department.Manage)
			assert.Equal(t, tt.wantEmpView, caps.Employee.View)
		})
	}
}

func TestCapabilitiesForUnknownRole(t *testing.T) {
	_, err := CapabilitiesFor(Role("Superuser"))
	assert.ErrorIs(t, err, ErrUnknownRole)

	_, err = CapabilitiesFor(Role(""))
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestCapabilitySetIsACopy(t *testing.T) {
	caps, err := CapabilitiesFor(RoleUser)
	require.NoError(t, err)

	caps.Department.ViewAll = true

	again, err := CapabilitiesFor(RoleUser)
	require.NoError(t, err)
	assert.False(t, again.Department.ViewAll)
}
