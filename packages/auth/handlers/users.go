package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"auth/models"
	"auth/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserHandler struct {
	DB *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{DB: db}
}

func toResponse(user models.User) models.UserResponse {
	return models.UserResponse{
		Username: user.Username,
		Name:     user.Name,
		Role:     user.Role,
	}
}

// @Summary List all users
// @Tags users
// @Produce json
// @Success 200 {array} models.UserResponse
// @Router /api/users [get]
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	var users []models.User
	if err := h.DB.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}

	responses := make([]models.UserResponse, len(users))
	for i, u := range users {
		responses[i] = toResponse(u)
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Get a user by username
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} models.UserResponse
// @Failure 404 {object} map[string]string
// @Router /api/users/{username} [get]
func (h *UserHandler) GetUserByUsername(c *gin.Context) {
	username := c.Param("username")

	var user models.User
	if err := h.DB.Where("username = ?", username).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "No user with the " + username + " username exists."})
		return
	}

	c.JSON(http.StatusOK, toResponse(user))
}

// @Summary Get a user by id
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.UserResponse
// @Failure 404 {object} map[string]string
// @Router /api/users/id/{id} [get]
func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var user models.User
	if err := h.DB.First(&user, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found with ID: " + c.Param("id")})
		return
	}

	c.JSON(http.StatusOK, toResponse(user))
}

// @Summary List users by role
// @Tags users
// @Produce json
// @Param role path string true "Role" Enums(TENNIS_PLAYER,REFEREE,ADMIN)
// @Success 200 {array} models.UserResponse
// @Failure 400 {object} map[string]string
// @Router /api/users/role/{role} [get]
func (h *UserHandler) GetUsersByRole(c *gin.Context) {
	role := c.Param("role")
	if !models.IsValidRole(role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role provided"})
		return
	}

	var users []models.User
	if err := h.DB.Where("role = ?", role).Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}

	responses := make([]models.UserResponse, len(users))
	for i, u := range users {
		responses[i] = toResponse(u)
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Search players by name
// @Description Find tennis players whose name contains the given fragment (case-insensitive)
// @Tags users
// @Produce json
// @Param name query string true "Name fragment"
// @Success 200 {array} models.UserResponse
// @Failure 400 {object} map[string]string
// @Router /api/users/players/search [get]
func (h *UserHandler) SearchPlayers(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The name parameter is required"})
		return
	}

	var users []models.User
	if err := h.DB.Where("role = ? AND LOWER(name) LIKE ?", models.RolePlayer, "%"+strings.ToLower(name)+"%").
		Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}

	responses := make([]models.UserResponse, len(users))
	for i, u := range users {
		responses[i] = toResponse(u)
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary List players who signed up during a period
// @Tags users
// @Produce json
// @Param startDate query string true "Period start" Format(date-time) example(2026-01-01T00:00:00)
// @Param endDate query string true "Period end" Format(date-time) example(2026-12-31T23:59:59)
// @Success 200 {array} models.UserResponse
// @Failure 400 {object} map[string]string
// @Router /api/users/players/registered [get]
func (h *UserHandler) GetPlayersByRegistrationPeriod(c *gin.Context) {
	start, err := parsePeriodBound(c.Query("startDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid startDate, expected format 2006-01-02T15:04:05"})
		return
	}
	end, err := parsePeriodBound(c.Query("endDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid endDate, expected format 2006-01-02T15:04:05"})
		return
	}

	var users []models.User
	if err := h.DB.Where("role = ? AND created_at BETWEEN ? AND ?", models.RolePlayer, start, end).
		Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}

	responses := make([]models.UserResponse, len(users))
	for i, u := range users {
		responses[i] = toResponse(u)
	}
	c.JSON(http.StatusOK, responses)
}

// parsePeriodBound accepte un horodatage ISO sans fuseau, avec ou sans
// partie horaire.
func parsePeriodBound(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02T15:04:05", value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// @Summary Create a user with an explicit role
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param user body models.CreateUserRequest true "User data"
// @Success 201 {object} models.UserResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existingUser models.User
	if err := h.DB.Where("username = ?", req.Username).First(&existingUser).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "User with this username already exists"})
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Username:     req.Username,
		PasswordHash: hashedPassword,
		Name:         req.Name,
		Role:         req.Role,
	}

	if err := h.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, toResponse(user))
}

// @Summary Update a user
// @Description Update name, password and/or role of an existing user
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param user body models.UpdateUserRequest true "Fields to update"
// @Success 200 {object} models.UserResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/users/{username} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	username := c.Param("username")

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := h.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found with the username: " + username})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		return
	}

	user.Name = req.Name

	if req.NewPassword != nil && *req.NewPassword != "" {
		if req.OldPassword != nil && *req.OldPassword != "" {
			if !utils.CheckPassword(*req.OldPassword, user.PasswordHash) {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Old password is incorrect"})
				return
			}
		}
		hashedPassword, err := utils.HashPassword(*req.NewPassword)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		user.PasswordHash = hashedPassword
	}

	if req.Role != nil && *req.Role != "" {
		user.Role = *req.Role
	}

	if err := h.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, toResponse(user))
}

// @Summary Delete a user
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/users/{username} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	username := c.Param("username")

	var user models.User
	if err := h.DB.Where("username = ?", username).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
		return
	}

	if err := h.DB.Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
