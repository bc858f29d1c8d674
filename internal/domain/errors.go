package domain

import (
	"errors"
	"fmt"

	"github.com/vfg2006/kpis-manager-api/pkg/apiErrors"
)

var (
	ErrNotFound     = errors.New("resource not found")
	ErrBusinessRule = errors.New("business rule violation")
	ErrConcurrency  = errors.New("concurrent update")
)

// KPIError é um erro com contexto adicional para a camada HTTP
type KPIError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Mensagem exposta ao cliente
}

func (e *KPIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *KPIError) Unwrap() error {
	return e.Err
}

func NewNotFoundError(details string) *KPIError {
	return &KPIError{
		Err:     ErrNotFound,
		Code:    apiErrors.ErrResourceNotFound,
		Details: details,
	}
}

func NewBusinessError(details string) *KPIError {
	return &KPIError{
		Err:     ErrBusinessRule,
		Code:    apiErrors.ErrBusinessRule,
		Details: details,
	}
}

func NewConcurrencyError(details string) *KPIError {
	return &KPIError{
		Err:     ErrConcurrency,
		Code:    apiErrors.ErrResourceConflict,
		Details: details,
	}
}
