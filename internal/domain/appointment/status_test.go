package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/models"
)

func TestStatusGuards(t *testing.T) {
	tests := []struct {
		name    string
		guard   func(Status) error
		allowed []Status
	}{
		{"start", CanStart, []Status{StatusScheduled}},
		{"complete", CanComplete, []Status{StatusScheduled, StatusInProgress}},
		{"cancel", CanCancel, []Status{StatusScheduled, StatusInProgress}},
		{"no_show", CanMarkNoShow, []Status{StatusScheduled, StatusInProgress}},
		{"reschedule", CanReschedule, []Status{StatusScheduled}},
	}

	all := []Status{
		StatusScheduled, StatusInProgress,
		StatusCompleted, StatusCancelled, StatusNoShow,
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range all {
				err := tt.guard(s)

				permitted := false
				for _, a := range tt.allowed {
					if s == a {
						permitted = true
					}
				}

				if permitted {
					assert.NoError(t, err, "status %s", s)
				} else {
					assert.True(t, httperr.IsBusiness(err, "invalid_state"), "status %s", s)
				}
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(StatusScheduled))
	assert.False(t, IsTerminal(StatusInProgress))
	assert.True(t, IsTerminal(StatusCompleted))
	assert.True(t, IsTerminal(StatusCancelled))
	assert.True(t, IsTerminal(StatusNoShow))
}

func TestCompleteAction(t *testing.T) {
	now := at(15, 0)

	ap := &models.Appointment{Status: string(StatusInProgress), Price: 50}
	require.NoError(t, Complete(ap, "PIX", nil, now))

	assert.Equal(t, string(StatusCompleted), ap.Status)
	assert.Equal(t, "pix", ap.PaymentMethod)
	assert.Equal(t, 50.0, ap.Price)
	require.NotNil(t, ap.CompletedAt)
	assert.Equal(t, now, *ap.CompletedAt)
}

func TestCompleteActionOverridesPrice(t *testing.T) {
	final := 35.0
	ap := &models.Appointment{Status: string(StatusScheduled), Price: 50}

	require.NoError(t, Complete(ap, "dinheiro", &final, at(15, 0)))
	assert.Equal(t, 35.0, ap.Price)
}

func TestCompleteActionRejectsBadPayment(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusScheduled)}

	err := Complete(ap, "cheque", nil, at(15, 0))
	assert.True(t, httperr.IsBusiness(err, "invalid_payment_method"))

	// falha antes de mutar o agendamento
	assert.Equal(t, string(StatusScheduled), ap.Status)
}

func TestCancelAction(t *testing.T) {
	now := at(15, 0)

	ap := &models.Appointment{Status: string(StatusScheduled)}
	require.NoError(t, Cancel(ap, now))

	assert.Equal(t, string(StatusCancelled), ap.Status)
	require.NotNil(t, ap.CancelledAt)

	// cancelar duas vezes é inválido
	err := Cancel(ap, now.Add(time.Minute))
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestNormalizePaymentMethod(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"pix", "pix", true},
		{" PIX ", "pix", true},
		{"Cartao_Credito", "cartao_credito", true},
		{"cartao_debito", "cartao_debito", true},
		{"dinheiro", "dinheiro", true},
		{"bitcoin", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, err := NormalizePaymentMethod(tt.in)
		if tt.ok {
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		} else {
			assert.True(t, httperr.IsBusiness(err, "invalid_payment_method"))
		}
	}
}
