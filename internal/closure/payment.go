package closure

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Payment method keys as stored by the checkout flow.
const (
	MethodCash    = "efectivo"
	MethodDebit   = "debito"
	MethodCredit  = "credito"
	MethodMP      = "mp"
	MethodAccount = "cuenta_corriente"
	MethodMixed   = "mixto"
	MethodUnknown = "desconocido"
)

// PaymentKind is the resolved variant of a sale's payment. Resolving the raw
// method string into a kind makes every consumer switch exhaustively instead
// of relying on string fallthrough.
type PaymentKind int

const (
	KindUnknown PaymentKind = iota
	KindCash
	KindDebit
	KindCredit
	KindMP
	KindAccount
	KindMixed
)

// Breakdown carries the per-instrument split of a mixed payment.
// Absent instruments are zero.
type Breakdown struct {
	Cash    decimal.Decimal
	Debit   decimal.Decimal
	Credit  decimal.Decimal
	MP      decimal.Decimal
	Account decimal.Decimal
}

// Payment is the parsed, tagged form of the loosely-typed payment JSON column.
// TotalPaid is nil when the record did not carry total_paid; callers fall back
// to the sale total in that case.
type Payment struct {
	Kind      PaymentKind
	Method    string // raw method string, "desconocido" when absent
	TotalPaid *decimal.Decimal
	Change    decimal.Decimal
	Breakdown Breakdown // populated only for KindMixed
}

// rawPayment mirrors the JSON shape with every amount kept raw so malformed
// values degrade to zero instead of failing the whole closure.
type rawPayment struct {
	Method    string `json:"method"`
	TotalPaid json.RawMessage `json:"total_paid"`
	Change    json.RawMessage `json:"change"`
	Breakdown *struct {
		Cash    json.RawMessage `json:"cash"`
		Debit   json.RawMessage `json:"debit"`
		Credit  json.RawMessage `json:"credit"`
		MP      json.RawMessage `json:"mp"`
		Account json.RawMessage `json:"account"`
	} `json:"breakdown"`
}

// ParsePayment converts the raw payment JSON of a sale into its tagged form.
// A nil/empty/unparseable payload resolves to KindUnknown; individual bad
// amounts coerce to zero. It never returns an error.
func ParsePayment(raw json.RawMessage) Payment {
	p := Payment{Kind: KindUnknown, Method: MethodUnknown}
	if len(raw) == 0 || string(raw) == "null" {
		return p
	}

	var rp rawPayment
	if err := json.Unmarshal(raw, &rp); err != nil {
		return p
	}
	if rp.Method != "" {
		p.Method = rp.Method
	}
	p.Kind = resolveKind(p.Method)
	if d, ok := coerceAmount(rp.TotalPaid); ok {
		p.TotalPaid = &d
	}
	p.Change, _ = coerceAmount(rp.Change)

	if p.Kind == KindMixed && rp.Breakdown != nil {
		p.Breakdown.Cash, _ = coerceAmount(rp.Breakdown.Cash)
		p.Breakdown.Debit, _ = coerceAmount(rp.Breakdown.Debit)
		p.Breakdown.Credit, _ = coerceAmount(rp.Breakdown.Credit)
		p.Breakdown.MP, _ = coerceAmount(rp.Breakdown.MP)
		p.Breakdown.Account, _ = coerceAmount(rp.Breakdown.Account)
	}
	return p
}

func resolveKind(method string) PaymentKind {
	switch method {
	case MethodCash:
		return KindCash
	case MethodDebit:
		return KindDebit
	case MethodCredit:
		return KindCredit
	case MethodMP:
		return KindMP
	case MethodAccount:
		return KindAccount
	case MethodMixed:
		return KindMixed
	default:
		return KindUnknown
	}
}

// Label returns the human label shown on closure reports for a method key.
func Label(method string) string {
	switch method {
	case MethodCash:
		return "Efectivo"
	case MethodDebit:
		return "Débito"
	case MethodCredit:
		return "Crédito"
	case MethodMP:
		return "Mercado Pago"
	case MethodAccount:
		return "Cuenta Corriente"
	case MethodMixed:
		return "Mixto"
	default:
		return "Desconocido"
	}
}

// coerceAmount parses a JSON value that may be a number or a numeric string.
// Returns (0, false) for null, missing, or malformed values.
func coerceAmount(raw json.RawMessage) (decimal.Decimal, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return decimal.Zero, false
	}
	var d decimal.Decimal
	if err := json.Unmarshal(raw, &d); err == nil {
		return d, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if d, err := decimal.NewFromString(strings.TrimSpace(s)); err == nil {
			return d, true
		}
	}
	return decimal.Zero, false
}
