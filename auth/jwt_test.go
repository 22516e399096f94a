package auth_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subassign/portal/auth"
)

func TestJwtRoundTrip(t *testing.T) {
	key := []byte("test-key")
	id := uuid.New()

	token, err := auth.GenerateJWT("Student User", "student@test.com", id, auth.RoleStudent, key)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := auth.ValidateJWT(token, key)
	require.NoError(t, err)
	assert.Equal(t, "Student User", claims.Name)
	assert.Equal(t, "student@test.com", claims.Email)
	assert.Equal(t, id.String(), claims.UUID)
	assert.Equal(t, auth.RoleStudent, claims.Role)
}

func TestJwtWrongKey(t *testing.T) {
	token, err := auth.GenerateJWT("Student User", "student@test.com", uuid.New(), auth.RoleStudent, []byte("key-a"))
	require.NoError(t, err)

	_, err = auth.ValidateJWT(token, []byte("key-b"))
	assert.Error(t, err)
}

func TestDecodeClaimsUnverified(t *testing.T) {
	token, err := auth.GenerateJWT("Instructor User", "instructor@test.com", uuid.New(), auth.RoleInstructor, []byte("whatever"))
	require.NoError(t, err)

	// decoding does not need the signing key
	claims, err := auth.DecodeClaimsUnverified(token)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleInstructor, claims.Role)

	_, err = auth.DecodeClaimsUnverified("not-a-token")
	assert.Error(t, err)
}

func TestParseRole(t *testing.T) {
	testCases := []struct {
		input   string
		want    auth.Role
		wantErr bool
	}{
		{input: "student", want: auth.RoleStudent},
		{input: "instructor", want: auth.RoleInstructor},
		{input: "admin", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			role, err := auth.ParseRole(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, role)
		})
	}
}
