package dto

// RegistroRequest entrada do registro de usuário.
type RegistroRequest struct {
	Nome  string `json:"nome" validate:"required,min=1,max=200"`
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required,min=6"`
}

// LoginRequest entrada do login.
type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

// LoginResponse token emitido mais os dados do usuário autenticado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}
