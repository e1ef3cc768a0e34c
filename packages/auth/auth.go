package auth

import (
	"auth/handlers"
	"auth/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Module struct {
	AuthHandler *handlers.AuthHandler
	UserHandler *handlers.UserHandler
}

func NewModule(db *gorm.DB) *Module {
	return &Module{
		AuthHandler: handlers.NewAuthHandler(db),
		UserHandler: handlers.NewUserHandler(db),
	}
}

func (m *Module) SetupRoutes(r *gin.Engine) {
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", m.AuthHandler.Register)
		authGroup.POST("/login", m.AuthHandler.Login)
	}

	users := r.Group("/api/users")
	{
		users.GET("", m.UserHandler.GetAllUsers)
		users.GET("/:username", m.UserHandler.GetUserByUsername)
		users.GET("/id/:id", m.UserHandler.GetUserByID)
		users.GET("/role/:role", m.UserHandler.GetUsersByRole)
		users.GET("/players/search", m.UserHandler.SearchPlayers)
		users.GET("/players/registered", m.UserHandler.GetPlayersByRegistrationPeriod)
		users.POST("", middleware.Require(middleware.OpUserManage), m.UserHandler.CreateUser)
		users.PUT("/:username", middleware.Require(middleware.OpUserManage), m.UserHandler.UpdateUser)
		users.DELETE("/:username", middleware.Require(middleware.OpUserManage), m.UserHandler.DeleteUser)
	}
}

func Authenticate() gin.HandlerFunc {
	return middleware.Authenticate()
}

func Require(operation string) gin.HandlerFunc {
	return middleware.Require(operation)
}

func GetUsername(c *gin.Context) (string, bool) {
	return middleware.GetUsername(c)
}

func GetRole(c *gin.Context) (string, bool) {
	return middleware.GetRole(c)
}
