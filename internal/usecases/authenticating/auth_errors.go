package authenticating

import (
	"errors"

	"github.com/vfg2006/kpis-manager-api/pkg/apiErrors"
)

// Tipos de erros de autenticação
var (
	ErrInvalidToken = errors.New("token inválido")
	ErrExpiredToken = errors.New("token expirado")
	ErrUserDisabled = errors.New("usuário desativado")
)

// ErrorCode traduz o erro de validação do token para o código da API
func ErrorCode(err error) string {
	if errors.Is(err, ErrExpiredToken) {
		return apiErrors.ErrExpiredToken
	}
	return apiErrors.ErrInvalidToken
}
