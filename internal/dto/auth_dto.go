package dto

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Success bool            `json:"success"`
	Token   string          `json:"token"`
	User    UsuarioPublico  `json:"user"`
}

// UsuarioPublico is the user shape returned by login and validate —
// never includes the password hash.
type UsuarioPublico struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Rol    string `json:"rol"`
}
