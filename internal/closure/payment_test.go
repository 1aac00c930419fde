package closure

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePaymentNilAndNull(t *testing.T) {
	for _, raw := range []json.RawMessage{nil, json.RawMessage("null"), json.RawMessage(`{`)} {
		p := ParsePayment(raw)
		assert.Equal(t, KindUnknown, p.Kind)
		assert.Equal(t, MethodUnknown, p.Method)
		assert.Nil(t, p.TotalPaid)
		assert.True(t, p.Change.IsZero())
	}
}

func TestParsePaymentCash(t *testing.T) {
	p := ParsePayment(json.RawMessage(`{"method":"efectivo","total_paid":100,"change":12.5}`))
	assert.Equal(t, KindCash, p.Kind)
	require.NotNil(t, p.TotalPaid)
	assert.True(t, p.TotalPaid.Equal(decimal.NewFromInt(100)))
	assert.True(t, p.Change.Equal(decimal.RequireFromString("12.5")))
}

func TestParsePaymentNumericStrings(t *testing.T) {
	p := ParsePayment(json.RawMessage(`{"method":"efectivo","total_paid":"150.00","change":" 2.50 "}`))
	require.NotNil(t, p.TotalPaid)
	assert.True(t, p.TotalPaid.Equal(decimal.NewFromInt(150)))
	assert.True(t, p.Change.Equal(decimal.RequireFromString("2.5")))
}

func TestParsePaymentMalformedAmountsCoerceToZero(t *testing.T) {
	p := ParsePayment(json.RawMessage(`{"method":"efectivo","total_paid":"abc","change":{}}`))
	assert.Equal(t, KindCash, p.Kind)
	assert.Nil(t, p.TotalPaid) // falls back to the sale total downstream
	assert.True(t, p.Change.IsZero())
}

func TestParsePaymentUnknownMethod(t *testing.T) {
	p := ParsePayment(json.RawMessage(`{"method":"cripto","total_paid":99}`))
	assert.Equal(t, KindUnknown, p.Kind)
	assert.Equal(t, "cripto", p.Method)
}

func TestParsePaymentMixedBreakdown(t *testing.T) {
	raw := json.RawMessage(`{
		"method":"mixto",
		"change":"5",
		"breakdown":{"cash":"40","debit":60,"credit":null,"mp":"oops"}
	}`)
	p := ParsePayment(raw)
	assert.Equal(t, KindMixed, p.Kind)
	assert.True(t, p.Breakdown.Cash.Equal(decimal.NewFromInt(40)))
	assert.True(t, p.Breakdown.Debit.Equal(decimal.NewFromInt(60)))
	assert.True(t, p.Breakdown.Credit.IsZero())
	assert.True(t, p.Breakdown.MP.IsZero())
	assert.True(t, p.Breakdown.Account.IsZero())
	assert.True(t, p.Change.Equal(decimal.NewFromInt(5)))
}

func TestParsePaymentBreakdownIgnoredForSimpleMethods(t *testing.T) {
	raw := json.RawMessage(`{"method":"debito","breakdown":{"cash":40}}`)
	p := ParsePayment(raw)
	assert.Equal(t, KindDebit, p.Kind)
	assert.True(t, p.Breakdown.Cash.IsZero())
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Efectivo", Label(MethodCash))
	assert.Equal(t, "Cuenta Corriente", Label(MethodAccount))
	assert.Equal(t, "Desconocido", Label("lo-que-sea"))
}
