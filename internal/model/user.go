package model

// Roles the backend recognizes.
const (
	RoleAdmin    = "ADMIN"
	RoleCustomer = "CLIENTE"
)

// User mirrors the backend's usuario document.  Password is only populated
// on the registration payload; the backend never echoes it back.
//
// Fields:
//  ID           – document identifier.
//  Username     – unique login name.
//  Email        – unique email address.
//  Password     – plaintext on registration only, hashed backend-side.
//  Role         – ADMIN or CLIENTE.
//  FirstName    – given name.
//  LastName     – family name.
//  Phone        – ten-digit phone number.
//  Active       – false for disabled accounts.
//  RegisteredAt – account creation timestamp.
type User struct {
	ID           string    `json:"id,omitempty"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Password     string    `json:"password,omitempty"`
	Role         string    `json:"rol"`
	FirstName    string    `json:"nombre"`
	LastName     string    `json:"apellido"`
	Phone        string    `json:"telefono,omitempty"`
	Active       *bool     `json:"activo,omitempty"`
	RegisteredAt LocalTime `json:"fechaRegistro,omitempty"`
}

// AuthResponse is what the backend returns from a successful login.
type AuthResponse struct {
	Token    string `json:"token"`
	Kind     string `json:"tipo"`
	Username string `json:"username"`
	Role     string `json:"rol"`
	Message  string `json:"mensaje,omitempty"`
}
