// Package report renders ledger views as plain text for sharing.
// Amounts are rounded to whole units here and nowhere else.
package report

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mmynk/dongledger/internal/calculator"
	"github.com/mmynk/dongledger/internal/models"
)

// Reporter formats reports for one locale.
type Reporter struct {
	printer *message.Printer
	labels  Labels
}

// New creates a Reporter for the given BCP 47 locale. Unparseable
// locales fall back to Persian.
func New(locale string) *Reporter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Persian
	}
	return &Reporter{
		printer: message.NewPrinter(tag),
		labels:  labelsFor(tag),
	}
}

// Amount rounds v to a whole unit and formats it with the locale's digit
// grouping and the currency label.
func (r *Reporter) Amount(v float64) string {
	return r.printer.Sprintf("%d", int64(math.Round(v))) + " " + r.labels.Currency
}

func (r *Reporter) status(settled bool) string {
	if settled {
		return r.labels.Settled
	}
	return r.labels.Unsettled
}

// Group renders one transaction group: its description, date, per-person
// share and every member with their settlement status.
func (r *Reporter) Group(g calculator.TransactionGroup) string {
	if len(g.Records) == 0 {
		return ""
	}
	head := g.Head()

	var b strings.Builder
	fmt.Fprintf(&b, r.labels.GroupHeader+"\n", head.Description)
	fmt.Fprintf(&b, r.labels.Date+"\n", head.Date)
	fmt.Fprintf(&b, r.labels.Share+"\n\n", r.Amount(head.Amount))
	b.WriteString(r.labels.Members + "\n")
	for _, e := range g.Records {
		fmt.Fprintf(&b, "👤 %s (%s)\n", e.EmployeeName, r.status(e.IsSettled))
	}
	return b.String()
}

// Full renders the balance summary and every transaction group of s,
// restricted by filter.
func (r *Reporter) Full(s models.State, filter calculator.Filter) string {
	var b strings.Builder
	fmt.Fprintf(&b, r.labels.FullTitle+"\n\n", s.AppName)

	if balances := calculator.NetBalances(s.Participants, s.Expenses, filter); len(balances) > 0 {
		b.WriteString(r.labels.Summary + "\n")
		for _, bal := range balances {
			if bal.Total > 0 {
				fmt.Fprintf(&b, r.labels.Owes+"\n", bal.Name, r.Amount(bal.Total))
			} else {
				fmt.Fprintf(&b, r.labels.IsOwed+"\n", bal.Name, r.Amount(math.Abs(bal.Total)))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(r.labels.Details + "\n")
	groups := calculator.GroupByTransaction(s.Expenses, filter)
	if len(groups) == 0 {
		b.WriteString(r.labels.NoTransactions + "\n")
	}
	for _, g := range groups {
		head := g.Head()
		fmt.Fprintf(&b, "\n*%s* (%s)\n", head.Description, head.Date)
		for _, e := range g.Records {
			fmt.Fprintf(&b, " - %s: %s (%s)\n", e.EmployeeName, r.Amount(e.Amount), r.status(e.IsSettled))
		}
	}
	return b.String()
}
