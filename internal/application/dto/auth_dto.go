package dto

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserInfo identidad autenticada visible para el cliente.
type UserInfo struct {
	Username string `json:"username"`
}

// LoginResponse token emitido y usuario autenticado.
type LoginResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}
