package users

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"agromart-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupUserApp(t *testing.T) (*fiber.App, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	h := &Handlers{Service: &Service{DB: db}}
	app := fiber.New()
	g := app.Group("/api/v1/users")
	g.Post("/register", h.Register)
	g.Get("/list-users", h.ListUsers)
	g.Get("/view-user/:user_id", h.ViewUser)
	g.Put("/update-user/:user_id", h.UpdateUser)
	g.Delete("/remove-user/:user_id", h.RemoveUser)
	return app, db
}

func registerPayload() map[string]string {
	return map[string]string{
		"full_name":     "Kasun Silva",
		"email":         "Kasun@Example.com",
		"password":      "Str0ng!pass",
		"role":          "farmer",
		"mobile_number": "0771234567",
	}
}

func TestRegister_Created(t *testing.T) {
	app, db := setupUserApp(t)

	body, _ := json.Marshal(registerPayload())
	req := httptest.NewRequest("POST", "/api/v1/users/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var user models.User
	require.NoError(t, db.First(&user).Error)
	assert.Equal(t, "kasun@example.com", user.Email) // normalized
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("Str0ng!pass")))

	// The hash never appears in the response body.
	raw, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), user.Password)
}

func TestRegister_Validation(t *testing.T) {
	app, _ := setupUserApp(t)

	cases := []struct {
		name  string
		patch func(map[string]string)
	}{
		{"bad name", func(p map[string]string) { p["full_name"] = "Kasun123" }},
		{"bad email", func(p map[string]string) { p["email"] = "not-an-email" }},
		{"weak password", func(p map[string]string) { p["password"] = "short" }},
		{"bad role", func(p map[string]string) { p["role"] = "admin" }},
		{"bad mobile", func(p map[string]string) { p["mobile_number"] = "077" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := registerPayload()
			tc.patch(payload)
			body, _ := json.Marshal(payload)
			req := httptest.NewRequest("POST", "/api/v1/users/register", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	app, _ := setupUserApp(t)

	body, _ := json.Marshal(registerPayload())
	req := httptest.NewRequest("POST", "/api/v1/users/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Same address with different casing is still a duplicate.
	payload := registerPayload()
	payload["email"] = "KASUN@example.com"
	body, _ = json.Marshal(payload)
	req = httptest.NewRequest("POST", "/api/v1/users/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestListUsers_RoleFilter(t *testing.T) {
	app, db := setupUserApp(t)
	require.NoError(t, db.Create(&models.User{FullName: "A", Email: "a@x.com", Password: "h", Role: models.RoleFarmer}).Error)
	require.NoError(t, db.Create(&models.User{FullName: "B", Email: "b@x.com", Password: "h", Role: models.RoleBuyer}).Error)

	req := httptest.NewRequest("GET", "/api/v1/users/list-users?role=buyer", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var parsed struct {
		Data []models.User `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	require.Len(t, parsed.Data, 1)
	assert.Equal(t, models.RoleBuyer, parsed.Data[0].Role)

	req = httptest.NewRequest("GET", "/api/v1/users/list-users?role=admin", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestViewUser_NotFound(t *testing.T) {
	app, _ := setupUserApp(t)

	req := httptest.NewRequest("GET", "/api/v1/users/view-user/550e8400-e29b-41d4-a716-446655440000", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	req = httptest.NewRequest("GET", "/api/v1/users/view-user/not-a-uuid", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateUser(t *testing.T) {
	app, db := setupUserApp(t)
	user := &models.User{FullName: "Kasun Silva", Email: "k@x.com", Password: "h", Role: models.RoleFarmer}
	require.NoError(t, db.Create(user).Error)

	body, _ := json.Marshal(map[string]string{"full_name": "Kasun Perera"})
	req := httptest.NewRequest("PUT", "/api/v1/users/update-user/"+user.UserID.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var stored models.User
	require.NoError(t, db.First(&stored, "user_id = ?", user.UserID).Error)
	assert.Equal(t, "Kasun Perera", stored.FullName)

	// Empty change set is rejected.
	body, _ = json.Marshal(map[string]string{})
	req = httptest.NewRequest("PUT", "/api/v1/users/update-user/"+user.UserID.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRemoveUser(t *testing.T) {
	app, db := setupUserApp(t)
	user := &models.User{FullName: "Kasun Silva", Email: "k@x.com", Password: "h", Role: models.RoleFarmer}
	require.NoError(t, db.Create(user).Error)

	req := httptest.NewRequest("DELETE", "/api/v1/users/remove-user/"+user.UserID.String(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/api/v1/users/remove-user/"+user.UserID.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
