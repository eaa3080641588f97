package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"schoolhub_backend/internal/models"
)

// CreateUser inserts a user directly, hashing the raw password in
// PasswordHash on the way in.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
	require.NoError(t, err, "failed to hash test password")
	user.PasswordHash = string(hashed)

	if user.Status == "" {
		user.Status = models.UserStatusActive
	}
	require.NoError(t, db.Create(user).Error, "failed to create test user %s", user.Email)
}

// CreateAndLoginUser creates a user and logs in through the API, returning
// the access token.
func CreateAndLoginUser(t *testing.T, ts *TestServer, name, email, password string, role models.UserRole) (string, *models.User) {
	t.Helper()

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: password,
		Role:         role,
	}
	CreateUser(t, ts.DB, user)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "login must succeed, got: %s", body)

	var loginResponse struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &loginResponse))
	require.NotEmpty(t, loginResponse.AccessToken)

	return loginResponse.AccessToken, user
}

// CreateSchoolOwnerWithSchool sets up an owner account plus one school.
func CreateSchoolOwnerWithSchool(t *testing.T, ts *TestServer) (string, *models.User, *models.School) {
	t.Helper()

	email := fmt.Sprintf("owner_%d@test.com", time.Now().UnixNano())
	token, owner := CreateAndLoginUser(t, ts, "Test Owner", email, "password123", models.UserRoleSchoolOwner)

	school := &models.School{
		OwnerID: owner.ID,
		Name:    "Test Primary School",
		City:    "Almaty",
		Status:  models.SchoolStatusActive,
	}
	require.NoError(t, ts.DB.Create(school).Error, "failed to create test school")

	return token, owner, school
}

// CreateParent sets up a parent account with a unique email.
func CreateParent(t *testing.T, ts *TestServer) (string, *models.User) {
	t.Helper()
	email := fmt.Sprintf("parent_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, "Test Parent", email, "password123", models.UserRoleParent)
}

// CreateAdmin sets up an admin account. Admins cannot register through the
// API, so the row is inserted directly.
func CreateAdmin(t *testing.T, ts *TestServer) (string, *models.User) {
	t.Helper()
	email := fmt.Sprintf("admin_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, "Test Admin", email, "password123", models.UserRoleAdmin)
}
