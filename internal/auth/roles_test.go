package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vangoframework/hotelier/internal/auth"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		input   string
		want    auth.Role
		wantErr bool
	}{
		{"guest", auth.RoleGuest, false},
		{"Staff", auth.RoleStaff, false},
		{" admin ", auth.RoleAdmin, false},
		{"SUPERADMIN", auth.RoleSuperAdmin, false},
		{"", "", true},
		{"owner", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := auth.ParseRole(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, auth.ErrUnknownRole)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRole_AtLeast(t *testing.T) {
	assert.True(t, auth.RoleSuperAdmin.AtLeast(auth.RoleAdmin))
	assert.True(t, auth.RoleAdmin.AtLeast(auth.RoleAdmin))
	assert.True(t, auth.RoleStaff.AtLeast(auth.RoleGuest))
	assert.False(t, auth.RoleStaff.AtLeast(auth.RoleAdmin))
	assert.False(t, auth.RoleGuest.AtLeast(auth.RoleStaff))
	assert.False(t, auth.Role("").AtLeast(auth.RoleGuest))
	assert.False(t, auth.Role("bogus").AtLeast(auth.Role("other")))
}

func TestRole_Paths(t *testing.T) {
	assert.Equal(t, "/login", auth.RoleGuest.LoginPath())
	assert.Equal(t, "/stafflogin", auth.RoleStaff.LoginPath())
	assert.Equal(t, "/adminlogin", auth.RoleAdmin.LoginPath())
	assert.Equal(t, "/superadmin", auth.RoleSuperAdmin.LoginPath())

	assert.Equal(t, "/login", auth.RoleGuest.LoginPage())
	assert.Equal(t, "/staff/login", auth.RoleStaff.LoginPage())
	assert.Equal(t, "/admin/login", auth.RoleAdmin.LoginPage())
	assert.Equal(t, "/superadmin/login", auth.RoleSuperAdmin.LoginPage())

	assert.Equal(t, "/dashboard", auth.RoleGuest.HomePath())
	assert.Equal(t, "/admin", auth.RoleStaff.HomePath())
	assert.Equal(t, "/admin", auth.RoleSuperAdmin.HomePath())
}

func TestRole_Label(t *testing.T) {
	assert.Equal(t, "Super Admin", auth.RoleSuperAdmin.Label())
	assert.Equal(t, "Unknown", auth.Role("x").Label())
}
