package appointment

import (
	"strings"

	"github.com/BruksfildServices01/barber-manager/internal/httperr"
)

// ===============================
// Payment Method
// ===============================

// Enumeração fechada de formas de pagamento aceitas na conclusão.
const (
	PaymentCash   = "dinheiro"
	PaymentPix    = "pix"
	PaymentCredit = "cartao_credito"
	PaymentDebit  = "cartao_debito"
)

var paymentMethods = map[string]bool{
	PaymentCash:   true,
	PaymentPix:    true,
	PaymentCredit: true,
	PaymentDebit:  true,
}

// NormalizePaymentMethod valida e normaliza a forma de pagamento.
// Qualquer valor fora da enumeração é rejeitado antes de persistir.
func NormalizePaymentMethod(raw string) (string, error) {
	method := strings.ToLower(strings.TrimSpace(raw))
	if !paymentMethods[method] {
		return "", httperr.ErrBusiness("invalid_payment_method")
	}
	return method, nil
}
