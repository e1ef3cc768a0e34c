package models

// User est une projection en lecture seule de la table users du module
// auth : le core résout les identités mais ne les modifie jamais.
type User struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

func (User) TableName() string {
	return "users"
}
