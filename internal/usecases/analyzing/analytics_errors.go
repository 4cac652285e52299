package analyzing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
)

// Erros específicos para a execução das consultas analíticas. Falhas de
// validação de parâmetros usam os erros do pacote domain e são detectadas
// antes de qualquer acesso ao fact store.
var (
	// ErrQueryTimeout indica que a consulta excedeu o orçamento de execução
	ErrQueryTimeout = errors.New("tempo limite da consulta analítica excedido")

	// ErrStoreUnavailable indica falha ao consultar o fact store. Nunca é
	// rebaixado para um resultado vazio: resultado vazio e falha de
	// execução são sempre distinguíveis.
	ErrStoreUnavailable = errors.New("fact store indisponível")
)

// AnalyticsError é um erro com contexto adicional sobre a visão consultada
type AnalyticsError struct {
	Err     error       // Erro base
	View    domain.View // Visão que estava sendo computada
	Details string      // Detalhes adicionais
}

// Error implementa a interface error
func (e *AnalyticsError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s: %s", e.View, e.Err.Error(), e.Details)
	}
	return fmt.Sprintf("%s: %s", e.View, e.Err.Error())
}

// Unwrap retorna o erro subjacente
func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

// NewAnalyticsError cria um novo AnalyticsError
func NewAnalyticsError(err error, view domain.View, details string) *AnalyticsError {
	return &AnalyticsError{
		Err:     err,
		View:    view,
		Details: details,
	}
}
