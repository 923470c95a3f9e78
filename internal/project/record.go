// Package project defines the renovation project record: the single document
// holding all tracked data, plus the structural operations that edit it.
package project

// Record is the whole project document. It is loaded once at startup, mutated
// in place by committed edits, and serialized as one JSON object. The JSON
// keys match the original dashboard exports so old backup files import
// cleanly.
type Record struct {
	General      GeneralInfo    `json:"general"`
	Rating       EnergyRating   `json:"dpe"`
	Objectives   []Objective    `json:"objectifs"`
	Timeline     []TimelineEvent `json:"timeline"`
	Purchase     PurchaseCosts  `json:"achat"`
	Financing    Financing      `json:"financement"`
	Subsidies    []Subsidy      `json:"aides"`
	WorkItems    []WorkItem     `json:"travaux"`
	Materials    []Material     `json:"materiaux"`
	Comparisons  []Comparison   `json:"comparatifs"`
	Energy       EnergyImpact   `json:"energie"`
	Journal      []JournalEntry `json:"journal"`
	MonthlySpend []MonthlySpend `json:"depensesMensuelles"`
}

// GeneralInfo holds the property facts shown on the project page.
type GeneralInfo struct {
	ProjectName      string  `json:"nomProjet"`
	PropertyType     string  `json:"type"`
	ConstructionYear int     `json:"anneeConstruction"`
	LivingArea       float64 `json:"surfaceHabitable"` // m²
	LandArea         float64 `json:"surfaceTerrain"`   // m²
	Rooms            int     `json:"nombrePieces"`
	Location         string  `json:"localisation"`
	StartDate        string  `json:"dateDebut"`
	PlannedEndDate   string  `json:"dateFinPrevue"`
}

// RatingClasses are the seven energy performance letter grades.
var RatingClasses = []string{"A", "B", "C", "D", "E", "F", "G"}

// EnergyRating is the before/after DPE-style classification.
type EnergyRating struct {
	Before RatingPoint `json:"avant"`
	After  RatingPoint `json:"apres"`
}

// RatingPoint is one side of the energy rating.
type RatingPoint struct {
	Class       string  `json:"classe"`       // A–G
	Consumption float64 `json:"consommation"` // kWh/m²/yr
	Emissions   float64 `json:"ges"`          // kgCO2/m²/yr
}

// Objective is one renovation goal; slice order is display order.
type Objective struct {
	Icon        string `json:"icon"`
	Title       string `json:"titre"`
	Description string `json:"description"`
}

// Timeline event statuses.
const (
	TimelineCompleted = "completed"
	TimelineActive    = "active"
	TimelinePending   = "pending"
)

// TimelineEvent is one milestone on the project timeline.
type TimelineEvent struct {
	Date        string `json:"date"` // free-text label ("March 2025")
	Title       string `json:"titre"`
	Description string `json:"desc"`
	Status      string `json:"status"`
}

// PurchaseCosts holds the acquisition figures. The scalar fields and the
// line-item list are edited together but are not reconciled: the displayed
// total always comes from the line items alone.
type PurchaseCosts struct {
	Price         float64            `json:"prixAchat"`
	NotaryFees    float64            `json:"fraisNotaire"`
	AgencyFees    float64            `json:"fraisAgence"`
	BankFileFees  float64            `json:"fraisDossierBanque"`
	GuaranteeFees float64            `json:"fraisGarantie"`
	BrokerFees    float64            `json:"fraisCourtier"`
	WorksEnvelope float64            `json:"travaux"`
	LineItems     []PurchaseLineItem `json:"details"`
}

// PurchaseLineItem is one row of the acquisition cost table.
type PurchaseLineItem struct {
	Label  string  `json:"poste"`
	Amount float64 `json:"montant"`
	Notes  string  `json:"notes"`
}

// Financing holds the funding plan.
type Financing struct {
	Contribution  float64  `json:"apportPersonnel"`
	MonthlyIncome float64  `json:"revenusMensuels"`
	Credits       []Credit `json:"credits"`
}

// Credit is one loan. Duration is a free-text label ("25 yrs, deferred 15")
// and is never parsed. Details is an ordered key→value block rendered as-is.
type Credit struct {
	Type           string  `json:"type"`
	Principal      float64 `json:"montant"`
	Rate           float64 `json:"taux"` // annual %
	Duration       string  `json:"duree"`
	MonthlyPayment float64 `json:"mensualite"`
	Details        KVList  `json:"details"`
}

// Subsidy statuses (wire values kept from the original exports).
const (
	SubsidyRequested = "demande"
	SubsidyPending   = "en_attente"
	SubsidyReceived  = "recu"
	SubsidyRefused   = "refuse"
)

// SubsidyStatuses lists the valid subsidy statuses in form order.
var SubsidyStatuses = []string{SubsidyRequested, SubsidyPending, SubsidyReceived, SubsidyRefused}

// Subsidy is one grant or aid application. Identified by list position.
type Subsidy struct {
	Name            string  `json:"nom"`
	Issuer          string  `json:"organisme"`
	AmountRequested float64 `json:"montantDemande"`
	AmountReceived  float64 `json:"montantRecu"`
	Status          string  `json:"statut"`
	Conditions      string  `json:"conditions"`
	Details         string  `json:"details"`
}

// Categories lists the fixed work/material categories (wire values).
var Categories = []string{
	"isolation", "chauffage", "electricite", "plomberie",
	"menuiseries", "toiture", "finitions",
}

// Subtask statuses.
const (
	SubtaskPending    = "pending"
	SubtaskInProgress = "progress"
	SubtaskDone       = "done"
)

// WorkItem is one renovation work package. Progress is user-entered, not
// derived from subtasks.
type WorkItem struct {
	Category   string    `json:"categorie"`
	Name       string    `json:"nom"`
	Icon       string    `json:"icon"`
	Color      string    `json:"couleur"`
	Budget     float64   `json:"budget"`
	Spent      float64   `json:"depense"`
	Progress   float64   `json:"avancement"` // 0–100
	Contractor string    `json:"executant"`
	StartDate  string    `json:"dateDebut"`
	EndDate    string    `json:"dateFin"`
	Subtasks   []Subtask `json:"soustaches"`
}

// Subtask is one checklist step of a work item.
type Subtask struct {
	Name   string `json:"nom"`
	Status string `json:"statut"`
}

// Material statuses (wire values).
const (
	MaterialQuoted    = "devis"
	MaterialOrdered   = "commande"
	MaterialDelivered = "livre"
	MaterialInStock   = "stock"
)

// MaterialStatuses lists the valid material statuses in form order.
var MaterialStatuses = []string{MaterialQuoted, MaterialOrdered, MaterialDelivered, MaterialInStock}

// Material is one supply line. TotalPrice is edited independently and is not
// required to equal Quantity × UnitPrice (Quantity is free text, "120 m²").
type Material struct {
	Name       string  `json:"nom"`
	Category   string  `json:"categorie"`
	Supplier   string  `json:"fournisseur"`
	Quantity   string  `json:"quantite"`
	UnitPrice  float64 `json:"prixUnitaire"`
	TotalPrice float64 `json:"prixTotal"`
	Status     string  `json:"statut"`
}

// Comparison is a read-only side-by-side option study.
type Comparison struct {
	Title   string           `json:"titre"`
	OptionA ComparisonOption `json:"optionA"`
	OptionB ComparisonOption `json:"optionB"`
}

// ComparisonOption is one side of a comparison.
type ComparisonOption struct {
	Name     string            `json:"nom"`
	Selected bool              `json:"selected"`
	Points   []ComparisonPoint `json:"points"`
}

// ComparisonPoint is one bullet of a comparison option.
type ComparisonPoint struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}

// EnergyImpact holds the two free-form figure blocks on the energy page.
type EnergyImpact struct {
	Savings       KVList `json:"economies"`
	PropertyValue KVList `json:"valeur"`
}

// JournalEntry is one site-diary entry. New entries are inserted at the
// front of the journal.
type JournalEntry struct {
	Date      string   `json:"date"` // YYYY-MM-DD
	Title     string   `json:"titre"`
	Tags      []string `json:"tags"`
	Body      string   `json:"contenu"`
	Problems  []string `json:"problemes"`
	Solutions []string `json:"solutions"`
	Lessons   []string `json:"lecons"`
}

// MonthlySpend is one point of the read-only spend series feeding charts.
type MonthlySpend struct {
	Month      string  `json:"mois"`
	Amount     float64 `json:"montant"`
	Cumulative float64 `json:"cumul"`
}
