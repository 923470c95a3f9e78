package tui

import (
	"fmt"

	"renoboard/internal/edit"
	"renoboard/internal/project"
	"renoboard/internal/tui/theme"
	"renoboard/internal/view"

	"github.com/charmbracelet/huh"
)

// buildForm maps a session's buffer to a huh form. Every input binds
// straight into the buffer's string fields; committing the session is what
// turns them back into record values.
func buildForm(s *edit.Session) *huh.Form {
	var groups []*huh.Group

	switch s.Command().Kind {
	case edit.KindGeneral:
		groups = generalGroups(s.General)
	case edit.KindRating:
		groups = ratingGroups(s.Rating)
	case edit.KindObjective:
		groups = objectiveGroups(s.Objectives)
	case edit.KindPurchase:
		groups = purchaseGroups(s.Purchase)
	case edit.KindFinancing:
		groups = financingGroups(s.Financing)
	case edit.KindSubsidy:
		groups = subsidyGroups(s.Subsidy)
	case edit.KindWork:
		groups = workGroups(s.Work)
	case edit.KindMaterial:
		groups = materialGroups(s.Material)
	case edit.KindJournal:
		groups = journalGroups(s.Journal)
	case edit.KindEnergy:
		groups = energyGroups(s.Energy)
	}

	return huh.NewForm(groups...).WithTheme(formTheme()).WithShowHelp(true)
}

// formTitle names the form for the header line above it.
func formTitle(cmd edit.Command) string {
	names := map[edit.Kind]string{
		edit.KindGeneral:   "Project info",
		edit.KindRating:    "Energy rating",
		edit.KindObjective: "Objectives",
		edit.KindPurchase:  "Purchase costs",
		edit.KindFinancing: "Financing",
		edit.KindSubsidy:   "Subsidy",
		edit.KindWork:      "Work item",
		edit.KindMaterial:  "Material",
		edit.KindJournal:   "Journal entry",
		edit.KindEnergy:    "Energy impact",
	}
	name := names[cmd.Kind]
	if cmd.Op == edit.OpAdd {
		return "Add " + name
	}
	return "Edit " + name
}

// formTheme adapts the active color theme to huh's styling.
func formTheme() *huh.Theme {
	t := theme.Active
	h := huh.ThemeBase()

	h.Focused.Title = h.Focused.Title.Foreground(t.AccentBright).Bold(true)
	h.Focused.TextInput.Prompt = h.Focused.TextInput.Prompt.Foreground(t.Accent)
	h.Focused.TextInput.Cursor = h.Focused.TextInput.Cursor.Foreground(t.AccentBright)
	h.Focused.SelectSelector = h.Focused.SelectSelector.Foreground(t.Accent)
	h.Focused.SelectedOption = h.Focused.SelectedOption.Foreground(t.AccentBright)
	h.Blurred.Title = h.Blurred.Title.Foreground(t.TextMuted)

	return h
}

func generalGroups(f *edit.GeneralForm) []*huh.Group {
	return []*huh.Group{
		huh.NewGroup(
			huh.NewInput().Title("Project name").Value(&f.ProjectName),
			huh.NewInput().Title("Property type").Value(&f.PropertyType),
			huh.NewInput().Title("Construction year").Value(&f.ConstructionYear),
			huh.NewInput().Title("Living area (m²)").Value(&f.LivingArea),
			huh.NewInput().Title("Land area (m²)").Value(&f.LandArea),
			huh.NewInput().Title("Rooms").Value(&f.Rooms),
			huh.NewInput().Title("Location").Value(&f.Location),
			huh.NewInput().Title("Start date").Value(&f.StartDate),
			huh.NewInput().Title("Planned end date").Value(&f.PlannedEndDate),
		),
	}
}

func classSelect(title string, value *string) *huh.Select[string] {
	return huh.NewSelect[string]().
		Title(title).
		Options(huh.NewOptions(project.RatingClasses...)...).
		Value(value)
}

func ratingGroups(f *edit.RatingForm) []*huh.Group {
	return []*huh.Group{
		huh.NewGroup(
			classSelect("Class before", &f.BeforeClass),
			huh.NewInput().Title("Consumption before (kWh/m²/yr)").Value(&f.BeforeConsumption),
			huh.NewInput().Title("Emissions before (kgCO₂/m²/yr)").Value(&f.BeforeEmissions),
		).Title("Before"),
		huh.NewGroup(
			classSelect("Class after", &f.AfterClass),
			huh.NewInput().Title("Consumption after (kWh/m²/yr)").Value(&f.AfterConsumption),
			huh.NewInput().Title("Emissions after (kgCO₂/m²/yr)").Value(&f.AfterEmissions),
		).Title("After"),
	}
}

func objectiveGroups(f *edit.ObjectivesForm) []*huh.Group {
	var groups []*huh.Group

	// Untitled rows are dropped on commit, so the extra row acts as "add"
	// and blanking a title removes its row.
	f.AddRow()
	for i := range f.Rows {
		o := &f.Rows[i]
		groups = append(groups, huh.NewGroup(
			huh.NewInput().Title("Icon").Value(&o.Icon),
			huh.NewInput().Title("Title").Value(&o.Title),
			huh.NewText().Title("Description").Value(&o.Description).Lines(2),
		).Title(fmt.Sprintf("Objective %d", i+1)))
	}
	return groups
}

func purchaseGroups(f *edit.PurchaseForm) []*huh.Group {
	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewInput().Title("Purchase price (€)").Value(&f.Price),
			huh.NewInput().Title("Notary fees (€)").Value(&f.NotaryFees),
			huh.NewInput().Title("Agency fees (€)").Value(&f.AgencyFees),
			huh.NewInput().Title("Bank file fees (€)").Value(&f.BankFileFees),
			huh.NewInput().Title("Guarantee fees (€)").Value(&f.GuaranteeFees),
			huh.NewInput().Title("Broker fees (€)").Value(&f.BrokerFees),
			huh.NewInput().Title("Works envelope (€)").Value(&f.WorksEnvelope),
		).Title("Costs"),
	}

	// A trailing blank row doubles as the add affordance; blank rows are
	// dropped when the session commits.
	f.AddLineItem()
	for i := range f.LineItems {
		li := &f.LineItems[i]
		groups = append(groups, huh.NewGroup(
			huh.NewInput().Title("Label").Value(&li.Label),
			huh.NewInput().Title("Amount (€)").Value(&li.Amount),
			huh.NewInput().Title("Notes").Value(&li.Notes),
		).Title(fmt.Sprintf("Line item %d", i+1)))
	}
	return groups
}

func financingGroups(f *edit.FinancingForm) []*huh.Group {
	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewInput().Title("Personal contribution (€)").Value(&f.Contribution),
			huh.NewInput().Title("Monthly household income (€)").Value(&f.MonthlyIncome),
		).Title("Plan"),
	}

	// Blank credit blocks are dropped on commit.
	f.AddCredit()
	for i := range f.Credits {
		c := &f.Credits[i]
		fields := []huh.Field{
			huh.NewInput().Title("Loan type").Value(&c.Type),
			huh.NewInput().Title("Principal (€)").Value(&c.Principal),
			huh.NewInput().Title("Rate (%)").Value(&c.Rate),
			huh.NewInput().Title("Duration").Value(&c.Duration),
			huh.NewInput().Title("Monthly payment (€)").Value(&c.MonthlyPayment),
		}

		// Free-form key→value notes on the loan, trailing blank row as "add".
		c.AddDetail()
		for j := range c.Details {
			kv := &c.Details[j]
			fields = append(fields,
				huh.NewInput().Title(fmt.Sprintf("Note %d label", j+1)).Value(&kv.Key),
				huh.NewInput().Title(fmt.Sprintf("Note %d value", j+1)).Value(&kv.Value))
		}

		groups = append(groups, huh.NewGroup(fields...).Title(fmt.Sprintf("Credit %d", i+1)))
	}
	return groups
}

func subsidyGroups(f *edit.SubsidyForm) []*huh.Group {
	statusOpts := make([]huh.Option[string], len(project.SubsidyStatuses))
	for i, st := range project.SubsidyStatuses {
		statusOpts[i] = huh.NewOption(view.SubsidyStatusLabel(st), st)
	}

	return []*huh.Group{
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&f.Name),
			huh.NewInput().Title("Issuer").Value(&f.Issuer),
			huh.NewInput().Title("Amount requested (€)").Value(&f.AmountRequested),
			huh.NewInput().Title("Amount received (€)").Value(&f.AmountReceived),
			huh.NewSelect[string]().Title("Status").Options(statusOpts...).Value(&f.Status),
			huh.NewText().Title("Conditions").Value(&f.Conditions).Lines(3),
			huh.NewText().Title("Details").Value(&f.Details).Lines(3),
		),
	}
}

func categorySelect(value *string) *huh.Select[string] {
	opts := make([]huh.Option[string], len(project.Categories))
	for i, c := range project.Categories {
		opts[i] = huh.NewOption(view.CategoryLabel(c), c)
	}
	return huh.NewSelect[string]().Title("Category").Options(opts...).Value(value)
}

func workGroups(f *edit.WorkForm) []*huh.Group {
	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&f.Name),
			categorySelect(&f.Category),
			huh.NewInput().Title("Budget (€)").Value(&f.Budget),
			huh.NewInput().Title("Spent (€)").Value(&f.Spent),
			huh.NewInput().Title("Progress (0-100)").Value(&f.Progress),
			huh.NewInput().Title("Contractor").Value(&f.Contractor),
			huh.NewInput().Title("Start date").Value(&f.StartDate),
			huh.NewInput().Title("End date").Value(&f.EndDate),
		),
	}

	subtaskStatuses := []string{project.SubtaskPending, project.SubtaskInProgress, project.SubtaskDone}
	statusOpts := make([]huh.Option[string], len(subtaskStatuses))
	for i, st := range subtaskStatuses {
		statusOpts[i] = huh.NewOption(st, st)
	}

	// Blank subtask rows are dropped on commit.
	f.AddSubtask()
	for i := range f.Subtasks {
		st := &f.Subtasks[i]
		groups = append(groups, huh.NewGroup(
			huh.NewInput().Title("Subtask").Value(&st.Name),
			huh.NewSelect[string]().Title("Status").Options(statusOpts...).Value(&st.Status),
		).Title(fmt.Sprintf("Checklist %d", i+1)))
	}
	return groups
}

func materialGroups(f *edit.MaterialForm) []*huh.Group {
	statusOpts := make([]huh.Option[string], len(project.MaterialStatuses))
	for i, st := range project.MaterialStatuses {
		statusOpts[i] = huh.NewOption(view.MaterialStatusLabel(st), st)
	}

	return []*huh.Group{
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&f.Name),
			categorySelect(&f.Category),
			huh.NewInput().Title("Supplier").Value(&f.Supplier),
			huh.NewInput().Title("Quantity").Value(&f.Quantity),
			huh.NewInput().Title("Unit price (€)").Value(&f.UnitPrice),
			huh.NewInput().Title("Total price (€)").Value(&f.TotalPrice),
			huh.NewSelect[string]().Title("Status").Options(statusOpts...).Value(&f.Status),
		),
	}
}

func journalGroups(f *edit.JournalForm) []*huh.Group {
	return []*huh.Group{
		huh.NewGroup(
			huh.NewInput().Title("Date").Value(&f.Date),
			huh.NewInput().Title("Title").Value(&f.Title),
			huh.NewInput().Title("Tags (comma separated)").Value(&f.Tags),
			huh.NewText().Title("Entry").Value(&f.Body).Lines(5),
		),
		huh.NewGroup(
			huh.NewText().Title("Problems (one per line)").Value(&f.Problems).Lines(3),
			huh.NewText().Title("Solutions (one per line)").Value(&f.Solutions).Lines(3),
			huh.NewText().Title("Lessons (one per line)").Value(&f.Lessons).Lines(3),
		),
	}
}

func energyGroups(f *edit.EnergyForm) []*huh.Group {
	var groups []*huh.Group

	// Blank rows are dropped on commit, so the extra row acts as "add".
	f.AddSaving()
	for i := range f.Savings {
		kv := &f.Savings[i]
		groups = append(groups, huh.NewGroup(
			huh.NewInput().Title("Label").Value(&kv.Key),
			huh.NewInput().Title("Figure").Value(&kv.Value),
		).Title(fmt.Sprintf("Savings %d", i+1)))
	}

	f.AddValue()
	for i := range f.Value {
		kv := &f.Value[i]
		groups = append(groups, huh.NewGroup(
			huh.NewInput().Title("Label").Value(&kv.Key),
			huh.NewInput().Title("Figure").Value(&kv.Value),
		).Title(fmt.Sprintf("Property value %d", i+1)))
	}
	return groups
}
