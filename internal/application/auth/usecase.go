package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login contra el único usuario administrador configurado.
// El password configurado se hashea con bcrypt una sola vez en el arranque;
// las comparaciones posteriores usan siempre el hash.
type AuthUseCase struct {
	username     string
	passwordHash []byte
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth hasheando el password configurado.
func NewAuthUseCase(username, password string, jwtCfg JWTConfig) (*AuthUseCase, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthUseCase{username: username, passwordHash: hash, jwtCfg: jwtCfg}, nil
}

// Login verifica username/password y genera el JWT.
// Devuelve domain.ErrUnauthorized con credenciales inválidas, sin distinguir
// usuario inexistente de password incorrecto.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if subtle.ConstantTimeCompare([]byte(in.Username), []byte(uc.username)) != 1 {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(uc.passwordHash, []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.username, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  dto.UserInfo{Username: uc.username},
	}, nil
}

// ExpMinutes expiración del token en minutos (para la cookie de sesión).
func (uc *AuthUseCase) ExpMinutes() int {
	return uc.jwtCfg.ExpMinutes
}
