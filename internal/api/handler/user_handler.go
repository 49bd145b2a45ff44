package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/userhub/users-api/internal/core/domain"
	"github.com/userhub/users-api/internal/core/ports"
)

// UserHandler handles HTTP requests for user CRUD operations.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List returns one page of users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Page size (default 10, max 100)"
// @Success      200    {array}   domain.User
// @Failure      500    {object}  messageResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	users, err := h.service.List(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Get returns a single user by id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  messageResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid user id"})
	}

	user, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "User not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update applies a partial update to a user.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  updateUserResponse
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid user id"})
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	user, err := h.service.Update(c.Request().Context(), id, ports.UpdateUserInput{
		Email:        req.Email,
		Username:     req.Username,
		LastPassword: req.LastPassword,
		NewPassword:  req.NewPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, messageResponse{Message: "User not found"})
		case errors.Is(err, domain.ErrLastPasswordRequired):
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Last password is required"})
		case errors.Is(err, domain.ErrNewPasswordRequired):
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "New password is required"})
		case errors.Is(err, domain.ErrIncorrectPassword):
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Last password is incorrect"})
		case errors.Is(err, domain.ErrEmailTaken):
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Email already in use"})
		}
		return err
	}

	return c.JSON(http.StatusOK, updateUserResponse{Message: "User updated", User: user})
}

// Delete removes a user.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid user id"})
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "User not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "User deleted"})
}

func parseID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
