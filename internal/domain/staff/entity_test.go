//go:build unit

package staff_test

import (
	"testing"

	"hostelops/internal/domain/staff"
	"hostelops/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStaff(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewStaffBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "test@example.com", actual.Email().Value())
		assert.Equal(t, staff.RoleFrontDesk, actual.Role())
		assert.True(t, actual.IsActive())
	})

	t.Run("email validation", func(t *testing.T) {
		cases := []struct {
			name  string
			email string
			errIs error
		}{
			{name: "missing at sign", email: "not-an-email", errIs: staff.ErrInvalidEmail},
			{name: "missing domain", email: "someone@", errIs: staff.ErrInvalidEmail},
			{name: "embedded whitespace", email: "some one@example.com", errIs: staff.ErrInvalidEmail},
			{name: "uppercase is normalized", email: "Desk@Example.COM"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				actual, err := builder.NewStaffBuilder().WithEmail(tc.email).BuildDomain()
				if tc.errIs != nil {
					require.ErrorIs(t, err, tc.errIs)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, "desk@example.com", actual.Email().Value())
			})
		}
	})

	t.Run("role validation", func(t *testing.T) {
		for _, role := range []string{"viewer", "front_desk", "manager"} {
			actual, err := builder.NewStaffBuilder().WithRole(role).BuildDomain()
			require.NoError(t, err)
			assert.Equal(t, role, actual.Role().String())
		}

		_, err := builder.NewStaffBuilder().WithRole("admin").BuildDomain()
		require.ErrorIs(t, err, staff.ErrInvalidRole)
	})
}
