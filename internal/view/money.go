package view

import (
	"renoboard/internal/cli"
	"renoboard/internal/derive"
	"renoboard/internal/project"
)

// PurchaseView is the acquisition cost table. Total is derived from the
// line items only; the scalar purchase fields never feed it.
type PurchaseView struct {
	Rows  [][]string
	Total string
}

// RenderPurchase builds the purchase section.
func RenderPurchase(r *project.Record) PurchaseView {
	rows := make([][]string, len(r.Purchase.LineItems))
	for i, li := range r.Purchase.LineItems {
		rows[i] = []string{li.Label, cli.FormatEuro(li.Amount), li.Notes}
	}
	return PurchaseView{
		Rows:  rows,
		Total: cli.FormatEuro(derive.PurchaseTotal(r.Purchase)),
	}
}

// FinancingView is the funding plan: headline cards plus one card per credit.
type FinancingView struct {
	Cards   []Card
	Credits []CreditView
}

// CreditView is one loan card.
type CreditView struct {
	Title   string
	Summary []Field
	Details []Field
}

// RenderFinancing builds the financing section.
func RenderFinancing(r *project.Record) FinancingView {
	f := r.Financing

	ratio := "—"
	if dr, ok := derive.DebtRatio(f); ok {
		ratio = cli.FormatPercent(dr)
	}

	cards := []Card{
		{Label: "Contribution", Value: cli.FormatEuro(f.Contribution)},
		{Label: "Borrowed", Value: cli.FormatEuro(derive.TotalBorrowed(f.Credits))},
		{Label: "Monthly payments", Value: cli.FormatEuroPerMonth(derive.TotalMonthlyPayment(f.Credits))},
		{Label: "Debt ratio", Value: ratio},
	}

	credits := make([]CreditView, len(f.Credits))
	for i, c := range f.Credits {
		summary := []Field{
			{"Principal", cli.FormatEuro(c.Principal)},
			{"Rate", cli.FormatRate(c.Rate)},
			{"Duration", c.Duration},
			{"Payment", cli.FormatEuroPerMonth(c.MonthlyPayment)},
		}
		details := make([]Field, len(c.Details))
		for j, kv := range c.Details {
			details[j] = Field{kv.Key, kv.Value}
		}
		credits[i] = CreditView{Title: c.Type, Summary: summary, Details: details}
	}

	return FinancingView{Cards: cards, Credits: credits}
}

// SubsidiesView is the grant table with requested/received totals.
type SubsidiesView struct {
	Rows      [][]string
	Requested string
	Received  string
	Pending   string
}

// RenderSubsidies builds the subsidies section.
func RenderSubsidies(r *project.Record) SubsidiesView {
	rows := make([][]string, len(r.Subsidies))
	for i, s := range r.Subsidies {
		rows[i] = []string{
			s.Name,
			s.Issuer,
			cli.FormatEuro(s.AmountRequested),
			cli.FormatEuro(s.AmountReceived),
			SubsidyStatusLabel(s.Status),
		}
	}
	totals := derive.SumSubsidies(r.Subsidies)
	return SubsidiesView{
		Rows:      rows,
		Requested: cli.FormatEuro(totals.Requested),
		Received:  cli.FormatEuro(totals.Received),
		Pending:   cli.FormatEuro(totals.Pending),
	}
}
