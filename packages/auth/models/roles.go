package models

// Constantes pour les rôles disponibles
const (
	RolePlayer  = "TENNIS_PLAYER"
	RoleReferee = "REFEREE"
	RoleAdmin   = "ADMIN"
)

// GetDefaultRole retourne le rôle attribué à l'inscription
func GetDefaultRole() string {
	return RolePlayer
}

// GetAllRoles retourne tous les rôles disponibles
func GetAllRoles() []string {
	return []string{
		RolePlayer,
		RoleReferee,
		RoleAdmin,
	}
}

// IsValidRole vérifie qu'un rôle fait partie des rôles connus
func IsValidRole(role string) bool {
	for _, r := range GetAllRoles() {
		if r == role {
			return true
		}
	}
	return false
}
