package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/divyanshukaintura04-web/food-donation-system/internal/dto"
)

func TestAuthHandler_Signup(t *testing.T) {
	env := setupTestEnv(t)

	w := env.postForm(t, "/signup", url.Values{
		"usertype": {"Individual"},
		"name":     {"New User"},
		"contact":  {"555-0100"},
		"email":    {"new@example.com"},
		"address":  {"42 Side St"},
		"username": {"newuser"},
		"password": {"supersecret"},
	}, nil)

	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "newuser", response.Username)
	require.Equal(t, "New User", response.Name)
}

func TestAuthHandler_Signup_DuplicateUsername(t *testing.T) {
	env := setupTestEnv(t)

	form := url.Values{
		"usertype": {"Individual"},
		"name":     {"New User"},
		"username": {"newuser"},
		"password": {"supersecret"},
	}

	w := env.postForm(t, "/signup", form, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.postForm(t, "/signup", form, nil)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupTestEnv(t)

	cookies := env.loginUser(t, "existing", "supersecret")
	require.NotEmpty(t, cookies)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	env := setupTestEnv(t)

	env.loginUser(t, "existing", "supersecret")

	w := env.postForm(t, "/login", url.Values{
		"username": {"existing"},
		"password": {"wrongpassword"},
	}, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.postForm(t, "/login", url.Values{
		"username": {"ghost"},
		"password": {"supersecret"},
	}, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_AdminLogin(t *testing.T) {
	env := setupTestEnv(t)

	cookies := env.loginAdmin(t)

	w := env.get(t, "/admin/dashboard", cookies)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAuthHandler_Logout(t *testing.T) {
	env := setupTestEnv(t)

	cookies := env.loginUser(t, "existing", "supersecret")

	w := env.get(t, "/logout", cookies)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/", w.Header().Get("Location"))
}
