package dto

type CrearNotificacionRequest struct {
	Tipo       string  `json:"tipo" validate:"omitempty,oneof=stock reporte general"`
	Mensaje    string  `json:"mensaje" validate:"required"`
	LinkAccion *string `json:"link_accion"`
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
