// Package closure computes the daily cash-closure summary for a store: KPIs,
// per-payment-method totals, hourly buckets and a per-ticket breakdown. It is
// a pure single-pass aggregation over already-fetched sale records, with no
// I/O and no state between calls.
package closure

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/juampy12/super-juampy-sub000/internal/storetime"
)

// SaleRecord is one confirmed sale as handed to the aggregator. The caller is
// responsible for restricting records to a single store and to confirmed
// status; the aggregator applies the store-local day filter itself.
type SaleRecord struct {
	ID        string
	CreatedAt time.Time
	Total     decimal.Decimal
	Payment   Payment
}

// KPIs are the headline figures of a closure.
type KPIs struct {
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Tickets     int             `json:"tickets"`
	AvgTicket   decimal.Decimal `json:"avgTicket"`
	CashIn      decimal.Decimal `json:"cashIn"`
	Change      decimal.Decimal `json:"change"`
	NetCash     decimal.Decimal `json:"netCash"`
}

// MethodTotal is one entry of the fixed five-bucket method list.
type MethodTotal struct {
	Key   string          `json:"key"`
	Label string          `json:"label"`
	Total decimal.Decimal `json:"total"`
}

// HourlyBucket groups tickets by store-local hour.
type HourlyBucket struct {
	Hour    string          `json:"hour"`
	Tickets int             `json:"tickets"`
	Total   decimal.Decimal `json:"total"`
}

// TicketRow is the per-sale line of the closure report. Per-method amounts are
// omitted from the JSON when zero.
type TicketRow struct {
	ID      string           `json:"id"`
	Time    string           `json:"time"`
	Total   decimal.Decimal  `json:"total"`
	Method  string           `json:"method"`
	Label   string           `json:"label"`
	Cash    *decimal.Decimal `json:"cash,omitempty"`
	Debit   *decimal.Decimal `json:"debit,omitempty"`
	Credit  *decimal.Decimal `json:"credit,omitempty"`
	MP      *decimal.Decimal `json:"mp,omitempty"`
	Account *decimal.Decimal `json:"account,omitempty"`
	Change  *decimal.Decimal `json:"change,omitempty"`
}

// Meta carries mixed-payment counters for the closure report footer.
type Meta struct {
	MixtoTickets int             `json:"mixtoTickets"`
	MixtoTotal   decimal.Decimal `json:"mixtoTotal"`
}

// Summary is the full cash-closure response. Methods always holds the five
// buckets in fixed order (efectivo, debito, credito, mp, account); an unknown
// payment method contributes to KPIs.TotalAmount and Tickets but to no bucket
// and no cash netting.
type Summary struct {
	KPIs    KPIs           `json:"kpis"`
	Methods []MethodTotal  `json:"methods"`
	Hourly  []HourlyBucket `json:"hourly"`
	Tickets []TicketRow    `json:"tickets"`
	Meta    Meta           `json:"meta"`
}

// bucketAccount is the report key for cuenta_corriente amounts.
const bucketAccount = "account"

// methodBuckets is the fixed bucket order of every closure report.
var methodBuckets = []struct{ key, label string }{
	{MethodCash, "Efectivo"},
	{MethodDebit, "Débito"},
	{MethodCredit, "Crédito"},
	{MethodMP, "Mercado Pago"},
	{bucketAccount, "Cuenta Corriente"},
}

// Aggregate builds the closure summary for targetDate (YYYY-MM-DD, store-local
// day). Sales outside the target day are skipped; ticket rows keep the input
// order. Aggregation is order-independent except for that row ordering, and
// the result is fully deterministic for a given input.
func Aggregate(targetDate string, sales []SaleRecord) *Summary {
	totals := map[string]decimal.Decimal{}
	hours := map[string]*HourlyBucket{}

	s := &Summary{
		Hourly:  []HourlyBucket{},
		Tickets: []TicketRow{},
	}

	for _, sale := range sales {
		if storetime.DayKey(sale.CreatedAt) != targetDate {
			continue
		}

		s.KPIs.TotalAmount = s.KPIs.TotalAmount.Add(sale.Total)
		s.KPIs.Tickets++

		hourKey := storetime.HourKey(sale.CreatedAt)
		hb, ok := hours[hourKey]
		if !ok {
			hb = &HourlyBucket{Hour: hourKey}
			hours[hourKey] = hb
		}
		hb.Tickets++
		hb.Total = hb.Total.Add(sale.Total)

		row := TicketRow{
			ID:     sale.ID,
			Time:   storetime.ClockKey(sale.CreatedAt),
			Total:  sale.Total,
			Method: sale.Payment.Method,
			Label:  Label(sale.Payment.Method),
		}

		paid := sale.Total
		if sale.Payment.TotalPaid != nil {
			paid = *sale.Payment.TotalPaid
		}

		switch sale.Payment.Kind {
		case KindCash:
			totals[MethodCash] = totals[MethodCash].Add(paid)
			s.KPIs.CashIn = s.KPIs.CashIn.Add(paid)
			s.KPIs.Change = s.KPIs.Change.Add(sale.Payment.Change)
			row.Cash = amountPtr(paid)
			row.Change = amountPtr(sale.Payment.Change)
		case KindDebit:
			totals[MethodDebit] = totals[MethodDebit].Add(paid)
			row.Debit = amountPtr(paid)
		case KindCredit:
			totals[MethodCredit] = totals[MethodCredit].Add(paid)
			row.Credit = amountPtr(paid)
		case KindMP:
			totals[MethodMP] = totals[MethodMP].Add(paid)
			row.MP = amountPtr(paid)
		case KindAccount:
			totals[bucketAccount] = totals[bucketAccount].Add(paid)
			row.Account = amountPtr(paid)
		case KindMixed:
			b := sale.Payment.Breakdown
			totals[MethodCash] = totals[MethodCash].Add(b.Cash)
			totals[MethodDebit] = totals[MethodDebit].Add(b.Debit)
			totals[MethodCredit] = totals[MethodCredit].Add(b.Credit)
			totals[MethodMP] = totals[MethodMP].Add(b.MP)
			totals[bucketAccount] = totals[bucketAccount].Add(b.Account)
			s.KPIs.CashIn = s.KPIs.CashIn.Add(b.Cash)
			s.KPIs.Change = s.KPIs.Change.Add(sale.Payment.Change)
			s.Meta.MixtoTickets++
			s.Meta.MixtoTotal = s.Meta.MixtoTotal.Add(sale.Total)
			row.Cash = amountPtr(b.Cash)
			row.Debit = amountPtr(b.Debit)
			row.Credit = amountPtr(b.Credit)
			row.MP = amountPtr(b.MP)
			row.Account = amountPtr(b.Account)
			row.Change = amountPtr(sale.Payment.Change)
		case KindUnknown:
			// Counted in totalAmount and tickets, attributed to no bucket
			// and no cash netting.
		}

		s.Tickets = append(s.Tickets, row)
	}

	if s.KPIs.Tickets > 0 {
		s.KPIs.AvgTicket = s.KPIs.TotalAmount.Div(decimal.NewFromInt(int64(s.KPIs.Tickets)))
	}
	s.KPIs.NetCash = s.KPIs.CashIn.Sub(s.KPIs.Change)

	s.Methods = make([]MethodTotal, 0, len(methodBuckets))
	for _, b := range methodBuckets {
		s.Methods = append(s.Methods, MethodTotal{Key: b.key, Label: b.label, Total: totals[b.key]})
	}

	keys := make([]string, 0, len(hours))
	for k := range hours {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		s.Hourly = append(s.Hourly, *hours[k])
	}

	return s
}

// amountPtr returns nil for zero amounts so they are omitted from ticket rows.
func amountPtr(d decimal.Decimal) *decimal.Decimal {
	if d.IsZero() {
		return nil
	}
	return &d
}
