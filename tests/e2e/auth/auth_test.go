//go:build e2e

package auth_test

import (
	"context"
	"net/http"
	"testing"

	"hostelops/internal/domain/staff"
	"hostelops/internal/handler/dto/response"
	"hostelops/tests/common/authtest"
	"hostelops/tests/common/builder"
	"hostelops/tests/common/dbtest"
	"hostelops/tests/common/httptest"
	"hostelops/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/auth/login"
	refreshURL = "/api/auth/refresh"
	logoutURL  = "/api/auth/logout"
	meURL      = "/api/auth/me"
)

type AuthSuite struct {
	e2e.SharedSuite
}

func (s *AuthSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) TestLogin() {
	s.Run("Normal case: login returns token pair and staff profile", func() {
		t := s.T()

		dbtest.CreateTestStaff(t, s.DB, "login@example.com", "front_desk")

		body := builder.NewAuthBuilder().WithEmail("login@example.com").BuildDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, body, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp response.LoginResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &resp))
		require.NotEmpty(t, resp.AccessToken)
		require.NotNil(t, resp.Staff)
		require.Equal(t, "login@example.com", resp.Staff.Email)
		require.Equal(t, "front_desk", resp.Staff.Role)

		require.NotNil(t, httptest.ExtractCookie(w, "access_token"))
		require.NotNil(t, httptest.ExtractCookie(w, "refresh_token"))
	})

	s.Run("Error case: wrong password is rejected", func() {
		t := s.T()

		dbtest.CreateTestStaff(t, s.DB, "login2@example.com", "front_desk")

		body := builder.NewAuthBuilder().WithEmail("login2@example.com").WithPassword("wrong-password").BuildDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, body, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("Error case: unknown email is indistinguishable from wrong password", func() {
		t := s.T()

		body := builder.NewAuthBuilder().WithEmail("nobody@example.com").BuildDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, body, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("Error case: deactivated account cannot log in", func() {
		t := s.T()

		dbtest.CreateTestStaff(t, s.DB, "inactive@example.com", "front_desk")
		_, err := s.DB.Exec(context.Background(),
			"UPDATE staff SET is_active = false WHERE email = 'inactive@example.com'")
		require.NoError(t, err)

		body := builder.NewAuthBuilder().WithEmail("inactive@example.com").BuildDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, body, "")
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Account is inactive")
	})

	s.Run("Error case: malformed body is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			map[string]any{"email": "not-an-email"}, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request")
	})
}

func (s *AuthSuite) TestMe() {
	s.Run("Normal case: me returns the authenticated staff profile", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "me@example.com", "manager")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var profile struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &profile))
		require.Equal(t, "me@example.com", profile.Email)
		require.Equal(t, "manager", profile.Role)
	})

	s.Run("Auth test - Unauthorized with expired token", func() {
		t := s.T()

		staffID := dbtest.CreateTestStaff(t, s.DB, "expired@example.com", "front_desk")
		branchID := dbtest.MainBranchID(t, s.DB)

		helper := authtest.NewJWTHelper(s.Config.JWT)
		expired := helper.CreateExpiredToken(t, staffID, branchID, staff.RoleFrontDesk)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expired)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Auth test - Unauthorized when not logged in", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *AuthSuite) TestRefreshAndLogout() {
	s.Run("Normal case: refresh cookie yields a fresh access token", func() {
		t := s.T()

		dbtest.CreateTestStaff(t, s.DB, "refresh@example.com", "front_desk")

		body := builder.NewAuthBuilder().WithEmail("refresh@example.com").BuildDTO()
		loginW := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, body, "")
		require.Equal(t, http.StatusOK, loginW.Code)

		refreshCookie := httptest.ExtractCookie(loginW, "refresh_token")
		require.NotNil(t, refreshCookie)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL,
			nil, []*http.Cookie{refreshCookie}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp struct {
			AccessToken string `json:"access_token"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &resp))
		require.NotEmpty(t, resp.AccessToken)
	})

	s.Run("Error case: refresh without a token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Refresh token required")
	})

	s.Run("Normal case: logout clears session cookies", func() {
		t := s.T()

		dbtest.CreateTestStaff(t, s.DB, "logout@example.com", "front_desk")

		body := builder.NewAuthBuilder().WithEmail("logout@example.com").BuildDTO()
		loginW := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, body, "")
		require.Equal(t, http.StatusOK, loginW.Code)

		cookies := httptest.ExtractCookies(loginW)
		require.NotEmpty(t, cookies)

		authtest.LogoutStaff(t, s.Router, cookies)
	})
}
