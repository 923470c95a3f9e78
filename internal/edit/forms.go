package edit

import (
	"strconv"
	"strings"

	"renoboard/internal/project"
)

// Form buffers hold every field as a string, the way it sits in an input
// widget. Loading copies record values in; applying coerces them back out.
// Numeric coercion is lenient: junk becomes 0, never an error.

func parseInt(s string) int {
	return int(project.ParseAmount(s))
}

func splitList(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func splitTags(s string) []string {
	var out []string
	for _, tag := range strings.Split(s, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// KVForm is one editable key→value row.
type KVForm struct {
	Key   string
	Value string
}

func kvFormsFrom(l project.KVList) []KVForm {
	out := make([]KVForm, len(l))
	for i, kv := range l {
		out[i] = KVForm{Key: kv.Key, Value: kv.Value}
	}
	return out
}

func applyKVForms(forms []KVForm) project.KVList {
	var out project.KVList
	for _, f := range forms {
		if key := strings.TrimSpace(f.Key); key != "" {
			out = out.Set(key, f.Value)
		}
	}
	return out
}

// GeneralForm edits the property facts.
type GeneralForm struct {
	ProjectName      string
	PropertyType     string
	ConstructionYear string
	LivingArea       string
	LandArea         string
	Rooms            string
	Location         string
	StartDate        string
	PlannedEndDate   string
}

func generalFormFrom(g project.GeneralInfo) GeneralForm {
	return GeneralForm{
		ProjectName:      g.ProjectName,
		PropertyType:     g.PropertyType,
		ConstructionYear: strconv.Itoa(g.ConstructionYear),
		LivingArea:       strconv.FormatFloat(g.LivingArea, 'f', -1, 64),
		LandArea:         strconv.FormatFloat(g.LandArea, 'f', -1, 64),
		Rooms:            strconv.Itoa(g.Rooms),
		Location:         g.Location,
		StartDate:        g.StartDate,
		PlannedEndDate:   g.PlannedEndDate,
	}
}

func (f GeneralForm) apply() project.GeneralInfo {
	return project.GeneralInfo{
		ProjectName:      f.ProjectName,
		PropertyType:     f.PropertyType,
		ConstructionYear: parseInt(f.ConstructionYear),
		LivingArea:       project.ParseAmount(f.LivingArea),
		LandArea:         project.ParseAmount(f.LandArea),
		Rooms:            parseInt(f.Rooms),
		Location:         f.Location,
		StartDate:        f.StartDate,
		PlannedEndDate:   f.PlannedEndDate,
	}
}

// RatingForm edits the before/after energy classification.
type RatingForm struct {
	BeforeClass       string
	BeforeConsumption string
	BeforeEmissions   string
	AfterClass        string
	AfterConsumption  string
	AfterEmissions    string
}

func ratingFormFrom(r project.EnergyRating) RatingForm {
	return RatingForm{
		BeforeClass:       r.Before.Class,
		BeforeConsumption: strconv.FormatFloat(r.Before.Consumption, 'f', -1, 64),
		BeforeEmissions:   strconv.FormatFloat(r.Before.Emissions, 'f', -1, 64),
		AfterClass:        r.After.Class,
		AfterConsumption:  strconv.FormatFloat(r.After.Consumption, 'f', -1, 64),
		AfterEmissions:    strconv.FormatFloat(r.After.Emissions, 'f', -1, 64),
	}
}

func (f RatingForm) apply() project.EnergyRating {
	return project.EnergyRating{
		Before: project.RatingPoint{
			Class:       normalizeClass(f.BeforeClass),
			Consumption: project.ParseAmount(f.BeforeConsumption),
			Emissions:   project.ParseAmount(f.BeforeEmissions),
		},
		After: project.RatingPoint{
			Class:       normalizeClass(f.AfterClass),
			Consumption: project.ParseAmount(f.AfterConsumption),
			Emissions:   project.ParseAmount(f.AfterEmissions),
		},
	}
}

func normalizeClass(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, c := range project.RatingClasses {
		if s == c {
			return s
		}
	}
	return "G"
}

// ObjectiveRow is one goal row.
type ObjectiveRow struct {
	Icon        string
	Title       string
	Description string
}

// ObjectivesForm edits the whole goal list at once; rows without a title
// are dropped on apply.
type ObjectivesForm struct {
	Rows []ObjectiveRow
}

func objectivesFormFrom(objectives []project.Objective) ObjectivesForm {
	f := ObjectivesForm{}
	for _, o := range objectives {
		f.Rows = append(f.Rows, ObjectiveRow{
			Icon:        o.Icon,
			Title:       o.Title,
			Description: o.Description,
		})
	}
	return f
}

// AddRow appends an empty objective row.
func (f *ObjectivesForm) AddRow() {
	f.Rows = append(f.Rows, ObjectiveRow{})
}

// RemoveRow drops row i; out-of-range indexes are ignored.
func (f *ObjectivesForm) RemoveRow(i int) {
	if i < 0 || i >= len(f.Rows) {
		return
	}
	f.Rows = append(f.Rows[:i], f.Rows[i+1:]...)
}

func (f ObjectivesForm) apply() []project.Objective {
	for i := len(f.Rows) - 1; i >= 0; i-- {
		if strings.TrimSpace(f.Rows[i].Title) == "" {
			f.RemoveRow(i)
		}
	}
	var out []project.Objective
	for _, r := range f.Rows {
		out = append(out, project.Objective{
			Icon:        r.Icon,
			Title:       r.Title,
			Description: r.Description,
		})
	}
	return out
}

// LineItemForm is one purchase table row.
type LineItemForm struct {
	Label  string
	Amount string
	Notes  string
}

// PurchaseForm edits the acquisition scalars and the line-item table
// together; they stay unreconciled on apply.
type PurchaseForm struct {
	Price         string
	NotaryFees    string
	AgencyFees    string
	BankFileFees  string
	GuaranteeFees string
	BrokerFees    string
	WorksEnvelope string
	LineItems     []LineItemForm
}

func purchaseFormFrom(p project.PurchaseCosts) PurchaseForm {
	f := PurchaseForm{
		Price:         strconv.FormatFloat(p.Price, 'f', -1, 64),
		NotaryFees:    strconv.FormatFloat(p.NotaryFees, 'f', -1, 64),
		AgencyFees:    strconv.FormatFloat(p.AgencyFees, 'f', -1, 64),
		BankFileFees:  strconv.FormatFloat(p.BankFileFees, 'f', -1, 64),
		GuaranteeFees: strconv.FormatFloat(p.GuaranteeFees, 'f', -1, 64),
		BrokerFees:    strconv.FormatFloat(p.BrokerFees, 'f', -1, 64),
		WorksEnvelope: strconv.FormatFloat(p.WorksEnvelope, 'f', -1, 64),
	}
	for _, li := range p.LineItems {
		f.LineItems = append(f.LineItems, LineItemForm{
			Label:  li.Label,
			Amount: strconv.FormatFloat(li.Amount, 'f', -1, 64),
			Notes:  li.Notes,
		})
	}
	return f
}

// AddLineItem appends an empty row.
func (f *PurchaseForm) AddLineItem() {
	f.LineItems = append(f.LineItems, LineItemForm{})
}

// RemoveLineItem drops row i; out-of-range indexes are ignored.
func (f *PurchaseForm) RemoveLineItem(i int) {
	if i < 0 || i >= len(f.LineItems) {
		return
	}
	f.LineItems = append(f.LineItems[:i], f.LineItems[i+1:]...)
}

func (f PurchaseForm) apply() project.PurchaseCosts {
	// Blanked rows are removals; prune them first so indexes stay dense.
	for i := len(f.LineItems) - 1; i >= 0; i-- {
		li := f.LineItems[i]
		if strings.TrimSpace(li.Label) == "" && strings.TrimSpace(li.Amount) == "" {
			f.RemoveLineItem(i)
		}
	}

	p := project.PurchaseCosts{
		Price:         project.ParseAmount(f.Price),
		NotaryFees:    project.ParseAmount(f.NotaryFees),
		AgencyFees:    project.ParseAmount(f.AgencyFees),
		BankFileFees:  project.ParseAmount(f.BankFileFees),
		GuaranteeFees: project.ParseAmount(f.GuaranteeFees),
		BrokerFees:    project.ParseAmount(f.BrokerFees),
		WorksEnvelope: project.ParseAmount(f.WorksEnvelope),
	}
	for _, li := range f.LineItems {
		p.LineItems = append(p.LineItems, project.PurchaseLineItem{
			Label:  li.Label,
			Amount: project.ParseAmount(li.Amount),
			Notes:  li.Notes,
		})
	}
	return p
}

// CreditForm is one loan block.
type CreditForm struct {
	Type           string
	Principal      string
	Rate           string
	Duration       string
	MonthlyPayment string
	Details        []KVForm
}

// AddDetail appends an empty detail row.
func (f *CreditForm) AddDetail() {
	f.Details = append(f.Details, KVForm{})
}

// FinancingForm edits the funding plan with its credit blocks.
type FinancingForm struct {
	Contribution  string
	MonthlyIncome string
	Credits       []CreditForm
}

func financingFormFrom(fin project.Financing) FinancingForm {
	f := FinancingForm{
		Contribution:  strconv.FormatFloat(fin.Contribution, 'f', -1, 64),
		MonthlyIncome: strconv.FormatFloat(fin.MonthlyIncome, 'f', -1, 64),
	}
	for _, c := range fin.Credits {
		f.Credits = append(f.Credits, CreditForm{
			Type:           c.Type,
			Principal:      strconv.FormatFloat(c.Principal, 'f', -1, 64),
			Rate:           strconv.FormatFloat(c.Rate, 'f', -1, 64),
			Duration:       c.Duration,
			MonthlyPayment: strconv.FormatFloat(c.MonthlyPayment, 'f', -1, 64),
			Details:        kvFormsFrom(c.Details),
		})
	}
	return f
}

// AddCredit appends an empty credit block.
func (f *FinancingForm) AddCredit() {
	f.Credits = append(f.Credits, CreditForm{})
}

// RemoveCredit drops credit block i; out-of-range indexes are ignored.
func (f *FinancingForm) RemoveCredit(i int) {
	if i < 0 || i >= len(f.Credits) {
		return
	}
	f.Credits = append(f.Credits[:i], f.Credits[i+1:]...)
}

func (f FinancingForm) apply() project.Financing {
	for i := len(f.Credits) - 1; i >= 0; i-- {
		if strings.TrimSpace(f.Credits[i].Type) == "" {
			f.RemoveCredit(i)
		}
	}

	fin := project.Financing{
		Contribution:  project.ParseAmount(f.Contribution),
		MonthlyIncome: project.ParseAmount(f.MonthlyIncome),
	}
	for _, c := range f.Credits {
		fin.Credits = append(fin.Credits, project.Credit{
			Type:           c.Type,
			Principal:      project.ParseAmount(c.Principal),
			Rate:           project.ParseAmount(c.Rate),
			Duration:       c.Duration,
			MonthlyPayment: project.ParseAmount(c.MonthlyPayment),
			Details:        applyKVForms(c.Details),
		})
	}
	return fin
}

// SubsidyForm edits one grant application.
type SubsidyForm struct {
	Name            string
	Issuer          string
	AmountRequested string
	AmountReceived  string
	Status          string
	Conditions      string
	Details         string
}

func subsidyFormFrom(s project.Subsidy) SubsidyForm {
	return SubsidyForm{
		Name:            s.Name,
		Issuer:          s.Issuer,
		AmountRequested: strconv.FormatFloat(s.AmountRequested, 'f', -1, 64),
		AmountReceived:  strconv.FormatFloat(s.AmountReceived, 'f', -1, 64),
		Status:          s.Status,
		Conditions:      s.Conditions,
		Details:         s.Details,
	}
}

func (f SubsidyForm) apply() project.Subsidy {
	return project.Subsidy{
		Name:            f.Name,
		Issuer:          f.Issuer,
		AmountRequested: project.ParseAmount(f.AmountRequested),
		AmountReceived:  project.ParseAmount(f.AmountReceived),
		Status:          normalizeStatus(f.Status, project.SubsidyStatuses, project.SubsidyRequested),
		Conditions:      f.Conditions,
		Details:         f.Details,
	}
}

func normalizeStatus(s string, valid []string, fallback string) string {
	s = strings.TrimSpace(s)
	for _, v := range valid {
		if s == v {
			return s
		}
	}
	return fallback
}

// SubtaskForm is one checklist row.
type SubtaskForm struct {
	Name   string
	Status string
}

// WorkForm edits one work package with its checklist.
type WorkForm struct {
	Category   string
	Name       string
	Icon       string
	Color      string
	Budget     string
	Spent      string
	Progress   string
	Contractor string
	StartDate  string
	EndDate    string
	Subtasks   []SubtaskForm
}

func workFormFrom(w project.WorkItem) WorkForm {
	f := WorkForm{
		Category:   w.Category,
		Name:       w.Name,
		Icon:       w.Icon,
		Color:      w.Color,
		Budget:     strconv.FormatFloat(w.Budget, 'f', -1, 64),
		Spent:      strconv.FormatFloat(w.Spent, 'f', -1, 64),
		Progress:   strconv.FormatFloat(w.Progress, 'f', -1, 64),
		Contractor: w.Contractor,
		StartDate:  w.StartDate,
		EndDate:    w.EndDate,
	}
	for _, st := range w.Subtasks {
		f.Subtasks = append(f.Subtasks, SubtaskForm{Name: st.Name, Status: st.Status})
	}
	return f
}

// AddSubtask appends an empty checklist row.
func (f *WorkForm) AddSubtask() {
	f.Subtasks = append(f.Subtasks, SubtaskForm{Status: project.SubtaskPending})
}

// RemoveSubtask drops checklist row i; out-of-range indexes are ignored.
func (f *WorkForm) RemoveSubtask(i int) {
	if i < 0 || i >= len(f.Subtasks) {
		return
	}
	f.Subtasks = append(f.Subtasks[:i], f.Subtasks[i+1:]...)
}

func (f WorkForm) apply() project.WorkItem {
	w := project.WorkItem{
		Category:   normalizeStatus(f.Category, project.Categories, project.Categories[0]),
		Name:       f.Name,
		Icon:       f.Icon,
		Color:      f.Color,
		Budget:     project.ParseAmount(f.Budget),
		Spent:      project.ParseAmount(f.Spent),
		Progress:   project.ClampProgress(project.ParseAmount(f.Progress)),
		Contractor: f.Contractor,
		StartDate:  f.StartDate,
		EndDate:    f.EndDate,
	}
	for i := len(f.Subtasks) - 1; i >= 0; i-- {
		if strings.TrimSpace(f.Subtasks[i].Name) == "" {
			f.RemoveSubtask(i)
		}
	}
	for _, st := range f.Subtasks {
		status := normalizeStatus(st.Status,
			[]string{project.SubtaskPending, project.SubtaskInProgress, project.SubtaskDone},
			project.SubtaskPending)
		w.Subtasks = append(w.Subtasks, project.Subtask{Name: st.Name, Status: status})
	}
	return w
}

// MaterialForm edits one supply line.
type MaterialForm struct {
	Name       string
	Category   string
	Supplier   string
	Quantity   string
	UnitPrice  string
	TotalPrice string
	Status     string
}

func materialFormFrom(m project.Material) MaterialForm {
	return MaterialForm{
		Name:       m.Name,
		Category:   m.Category,
		Supplier:   m.Supplier,
		Quantity:   m.Quantity,
		UnitPrice:  strconv.FormatFloat(m.UnitPrice, 'f', -1, 64),
		TotalPrice: strconv.FormatFloat(m.TotalPrice, 'f', -1, 64),
		Status:     m.Status,
	}
}

func (f MaterialForm) apply() project.Material {
	return project.Material{
		Name:       f.Name,
		Category:   normalizeStatus(f.Category, project.Categories, project.Categories[0]),
		Supplier:   f.Supplier,
		Quantity:   f.Quantity,
		UnitPrice:  project.ParseAmount(f.UnitPrice),
		TotalPrice: project.ParseAmount(f.TotalPrice),
		Status:     normalizeStatus(f.Status, project.MaterialStatuses, project.MaterialQuoted),
	}
}

// JournalForm edits one diary entry. Tags are comma-separated; the three
// list fields take one item per line.
type JournalForm struct {
	Date      string
	Title     string
	Tags      string
	Body      string
	Problems  string
	Solutions string
	Lessons   string
}

func journalFormFrom(j project.JournalEntry) JournalForm {
	return JournalForm{
		Date:      j.Date,
		Title:     j.Title,
		Tags:      strings.Join(j.Tags, ", "),
		Body:      j.Body,
		Problems:  strings.Join(j.Problems, "\n"),
		Solutions: strings.Join(j.Solutions, "\n"),
		Lessons:   strings.Join(j.Lessons, "\n"),
	}
}

func (f JournalForm) apply() project.JournalEntry {
	return project.JournalEntry{
		Date:      f.Date,
		Title:     f.Title,
		Tags:      splitTags(f.Tags),
		Body:      f.Body,
		Problems:  splitList(f.Problems),
		Solutions: splitList(f.Solutions),
		Lessons:   splitList(f.Lessons),
	}
}

// EnergyForm edits the two free-form figure blocks.
type EnergyForm struct {
	Savings []KVForm
	Value   []KVForm
}

func energyFormFrom(e project.EnergyImpact) EnergyForm {
	return EnergyForm{
		Savings: kvFormsFrom(e.Savings),
		Value:   kvFormsFrom(e.PropertyValue),
	}
}

// AddSaving appends an empty row to the savings block.
func (f *EnergyForm) AddSaving() {
	f.Savings = append(f.Savings, KVForm{})
}

// AddValue appends an empty row to the property-value block.
func (f *EnergyForm) AddValue() {
	f.Value = append(f.Value, KVForm{})
}

func (f EnergyForm) apply() project.EnergyImpact {
	return project.EnergyImpact{
		Savings:       applyKVForms(f.Savings),
		PropertyValue: applyKVForms(f.Value),
	}
}
