package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPatch_ApplyTo_KeepsUnsetFields(t *testing.T) {
	phone := "+1 555 0100"
	role := RoleAdmin
	user := &User{
		ID:        "uid-1",
		Email:     "ada@example.com",
		Name:      "Ada",
		Role:      &role,
		Phone:     &phone,
		Addresses: []Address{{Label: "Home", FullAddress: "1 Main St"}},
	}
	name := "X"

	merged := (&UserPatch{Name: &name}).ApplyTo(user)

	require.NotNil(t, merged)
	assert.Equal(t, "X", merged.Name)
	assert.Equal(t, user.ID, merged.ID)
	assert.Equal(t, user.Email, merged.Email)
	assert.Equal(t, user.Role, merged.Role)
	assert.Equal(t, user.Phone, merged.Phone)
	assert.Equal(t, user.Addresses, merged.Addresses)
	assert.Equal(t, "Ada", user.Name, "original must not be modified")
}

func TestUserPatch_IsEmpty(t *testing.T) {
	var nilPatch *UserPatch
	assert.True(t, nilPatch.IsEmpty())
	assert.True(t, (&UserPatch{}).IsEmpty())

	name := "Bo"
	assert.False(t, (&UserPatch{Name: &name}).IsEmpty())
}

func TestNewSynthesizedUser(t *testing.T) {
	user := NewSynthesizedUser("uid-2", "bo@example.com", "")

	assert.Equal(t, "uid-2", user.ID)
	assert.Equal(t, "bo@example.com", user.Email)
	assert.Equal(t, DefaultUserName, user.Name)
	assert.NotNil(t, user.Addresses)
	assert.Empty(t, user.Addresses)
	assert.Nil(t, user.Role)
}

func TestRoleFromString(t *testing.T) {
	require.NotNil(t, RoleFromString("admin"))
	assert.Equal(t, RoleAdmin, *RoleFromString("admin"))
	assert.Nil(t, RoleFromString(""))
	assert.Nil(t, RoleFromString("superuser"))
}
