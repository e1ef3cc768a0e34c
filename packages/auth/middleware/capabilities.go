package middleware

import (
	"net/http"

	"auth/models"

	"github.com/gin-gonic/gin"
)

// Noms d'opérations protégées. Le "qui peut appeler quoi" est une donnée
// (Capabilities), pas une série de checks dispersés dans les handlers.
const (
	OpRegistrationCreate  = "registration:create"
	OpRegistrationApprove = "registration:approve"
	OpRegistrationDeny    = "registration:deny"
	OpMatchCreate         = "match:create"
	OpMatchUpdateScore    = "match:update-score"
	OpMatchDelete         = "match:delete"
	OpTournamentCreate    = "tournament:create"
	OpTournamentDelete    = "tournament:delete"
	OpUserManage          = "user:manage"
)

// Capabilities associe chaque opération à l'ensemble des rôles autorisés.
// Les lectures ne figurent pas dans la table : elles restent ouvertes.
var Capabilities = map[string][]string{
	OpRegistrationCreate:  {models.RolePlayer, models.RoleAdmin},
	OpRegistrationApprove: {models.RoleAdmin},
	OpRegistrationDeny:    {models.RoleAdmin},
	OpMatchCreate:         {models.RoleAdmin, models.RoleReferee},
	OpMatchUpdateScore:    {models.RoleReferee, models.RoleAdmin},
	OpMatchDelete:         {models.RoleAdmin},
	OpTournamentCreate:    {models.RoleAdmin},
	OpTournamentDelete:    {models.RoleAdmin},
	OpUserManage:          {models.RoleAdmin},
}

// Allowed indique si un rôle peut exécuter une opération. Une opération
// absente de la table est ouverte à tous.
func Allowed(operation, role string) bool {
	roles, protected := Capabilities[operation]
	if !protected {
		return true
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// Require refuse la requête si le principal n'a pas le rôle exigé par
// l'opération : 401 sans principal, 403 avec un rôle insuffisant.
func Require(operation string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, authenticated := GetRole(c)
		if !authenticated {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		if !Allowed(operation, role) {
			c.JSON(http.StatusForbidden, gin.H{
				"error":          "Insufficient permissions",
				"required_roles": Capabilities[operation],
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
