package dto

type CrearUsuarioRequest struct {
	Nombre   string `json:"nombre" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
	Rol      string `json:"rol" validate:"required,oneof=admin recepcionista bodeguero"`
}

// ActualizarUsuarioRequest carries a partial update; nil / empty fields are
// left untouched, matching the dynamic UPDATE of the original endpoint.
type ActualizarUsuarioRequest struct {
	ID       uint    `json:"id" validate:"required,gt=0"`
	Nombre   string  `json:"nombre"`
	Email    string  `json:"email" validate:"omitempty,email"`
	Password string  `json:"password"`
	Rol      string  `json:"rol" validate:"omitempty,oneof=admin recepcionista bodeguero"`
	Activo   *bool   `json:"activo"`
}

type CrearUsuarioResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      uint   `json:"id"`
}
