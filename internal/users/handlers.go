package users

import (
	"agromart-backend/internal/pkg/apperr"
	"agromart-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *Service
}

// POST /api/v1/users/register
func (h *Handlers) Register(c *fiber.Ctx) error {
	var body struct {
		FullName     string `json:"full_name"`
		Email        string `json:"email"`
		Password     string `json:"password"`
		Role         string `json:"role"`
		MobileNumber string `json:"mobile_number"`
		Address      string `json:"address"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Fail(c, apperr.Validation("Invalid request body"))
	}
	user, err := h.Service.Register(c.Context(), RegisterInput{
		FullName:     body.FullName,
		Email:        body.Email,
		Password:     body.Password,
		Role:         body.Role,
		MobileNumber: body.MobileNumber,
		Address:      body.Address,
	})
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Created(c, "User registered successfully", user, nil)
}

// GET /api/v1/users/view-user/:user_id
func (h *Handlers) ViewUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return response.Fail(c, apperr.Validation("Invalid user_id format"))
	}
	user, err := h.Service.GetUser(c.Context(), userID)
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Success(c, "User fetched successfully", user, nil)
}

// GET /api/v1/users/list-users?role=buyer|farmer
func (h *Handlers) ListUsers(c *fiber.Ctx) error {
	userList, err := h.Service.ListUsers(c.Context(), c.Query("role"))
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Success(c, "Users fetched successfully", userList, nil)
}

// PUT /api/v1/users/update-user/:user_id
func (h *Handlers) UpdateUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return response.Fail(c, apperr.Validation("Invalid user_id format"))
	}
	var body struct {
		FullName     *string `json:"full_name"`
		MobileNumber *string `json:"mobile_number"`
		Address      *string `json:"address"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Fail(c, apperr.Validation("Invalid request body"))
	}
	user, err := h.Service.UpdateUser(c.Context(), UpdateUserInput{
		UserID:       userID,
		FullName:     body.FullName,
		MobileNumber: body.MobileNumber,
		Address:      body.Address,
	})
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Success(c, "User updated successfully", user, nil)
}

// DELETE /api/v1/users/remove-user/:user_id
func (h *Handlers) RemoveUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return response.Fail(c, apperr.Validation("Invalid user_id format"))
	}
	if err := h.Service.RemoveUser(c.Context(), userID); err != nil {
		return response.Fail(c, err)
	}
	return response.Success(c, "User removed successfully", nil, nil)
}
