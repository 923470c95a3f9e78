package project

// DefaultRecord returns the built-in sample project. It is used on first run
// and whenever the stored record is missing or unreadable.
func DefaultRecord() *Record {
	return &Record{
		General: GeneralInfo{
			ProjectName:      "Family House Renovation",
			PropertyType:     "Detached house",
			ConstructionYear: 1975,
			LivingArea:       120,
			LandArea:         450,
			Rooms:            6,
			Location:         "Île-de-France",
			StartDate:        "2025-03-01",
			PlannedEndDate:   "2026-06-30",
		},
		Rating: EnergyRating{
			Before: RatingPoint{Class: "F", Consumption: 330, Emissions: 65},
			After:  RatingPoint{Class: "B", Consumption: 85, Emissions: 12},
		},
		Objectives: []Objective{
			{Icon: "leaf", Title: "Energy performance", Description: "Go from class F to class B, cut consumption by 75%"},
			{Icon: "couch", Title: "Living comfort", Description: "Modernize the rooms, improve sound and thermal insulation"},
			{Icon: "chart", Title: "Property value", Description: "Raise the property value by 40 to 60% after renovation"},
			{Icon: "home", Title: "Primary residence", Description: "Make it our main home for at least the next 10 years"},
			{Icon: "euro", Title: "Financial optimization", Description: "Maximize grants and subsidies to reduce out-of-pocket cost"},
		},
		Timeline: []TimelineEvent{
			{Date: "January 2025", Title: "House hunting", Description: "Visits, market study, comparisons", Status: TimelineCompleted},
			{Date: "March 2025", Title: "Purchase", Description: "Signing at the notary", Status: TimelineCompleted},
			{Date: "April 2025", Title: "Surveys and diagnostics", Description: "Energy audit, asbestos, termites, plans", Status: TimelineCompleted},
			{Date: "May 2025", Title: "Grant applications", Description: "Renovation grants, energy certificates, zero-rate loans", Status: TimelineCompleted},
			{Date: "June 2025", Title: "Structural work begins", Description: "Roof, exterior insulation", Status: TimelineActive},
			{Date: "September 2025", Title: "Second fix", Description: "Electrical, plumbing, heating", Status: TimelinePending},
			{Date: "December 2025", Title: "Finishing", Description: "Paint, floors, kitchen, bathrooms", Status: TimelinePending},
			{Date: "March 2026", Title: "Moving in", Description: "Settling in, final adjustments", Status: TimelinePending},
		},
		Purchase: PurchaseCosts{
			Price:         185000,
			NotaryFees:    15540,
			AgencyFees:    9250,
			BankFileFees:  500,
			GuaranteeFees: 2800,
			BrokerFees:    1500,
			WorksEnvelope: 95000,
			LineItems: []PurchaseLineItem{
				{Label: "Net purchase price", Amount: 185000, Notes: "After negotiation (-10,000)"},
				{Label: "Notary fees (8.4%)", Amount: 15540, Notes: "Existing property, full rate"},
				{Label: "Agency fees (5%)", Amount: 9250, Notes: "Paid by buyer"},
				{Label: "Bank file fees", Amount: 500, Notes: "Main mortgage"},
				{Label: "Guarantee fees", Amount: 2800, Notes: "Mutual guarantee"},
				{Label: "Broker fees", Amount: 1500, Notes: "1% of borrowed amount"},
				{Label: "Estimated works envelope", Amount: 95000, Notes: "Projected renovation budget"},
			},
		},
		Financing: Financing{
			Contribution:  35000,
			MonthlyIncome: 4200,
			Credits: []Credit{
				{
					Type: "Main mortgage", Principal: 210000, Rate: 3.45,
					Duration: "25 yrs", MonthlyPayment: 1048,
					Details: KVList{
						{"Amount borrowed", "210,000"},
						{"Nominal rate", "3.45%"},
						{"Insurance rate", "0.34%"},
						{"Term", "25 yrs (300 months)"},
						{"Payment excl. insurance", "1,048"},
						{"Payment incl. insurance", "1,108"},
						{"Total cost of credit", "122,400"},
						{"APR", "3.92%"},
					},
				},
				{
					Type: "Zero-rate loan", Principal: 40000, Rate: 0,
					Duration: "25 yrs (deferred 15)", MonthlyPayment: 0,
					Details: KVList{
						{"Amount", "40,000"},
						{"Rate", "0%"},
						{"Total term", "25 yrs"},
						{"Repayment deferral", "15 yrs"},
						{"Payment during deferral", "0"},
						{"Payment after deferral", "333"},
						{"Condition", "First-time buyer"},
					},
				},
				{
					Type: "Eco zero-rate loan", Principal: 30000, Rate: 0,
					Duration: "15 yrs", MonthlyPayment: 167,
					Details: KVList{
						{"Amount", "30,000"},
						{"Rate", "0%"},
						{"Term", "15 yrs (180 months)"},
						{"Payment", "167"},
						{"Eligible works", "Bundle of 3 upgrades"},
						{"Condition", "Dwelling over 2 yrs old"},
					},
				},
				{
					Type: "Employer housing loan", Principal: 10000, Rate: 1.0,
					Duration: "20 yrs", MonthlyPayment: 46,
					Details: KVList{
						{"Amount", "10,000"},
						{"Rate", "1.00%"},
						{"Term", "20 yrs"},
						{"Payment", "46"},
						{"Condition", "Private-sector employee"},
					},
				},
			},
		},
		Subsidies: []Subsidy{
			{Name: "Whole-home renovation grant", Issuer: "National housing agency", AmountRequested: 15000, AmountReceived: 15000, Status: SubsidyReceived,
				Conditions: "Middle income band, gain of 2+ rating classes",
				Details:    "Grant for a performant whole-home renovation; requires an energy audit and a minimum two-class rating gain."},
			{Name: "Heat pump grant", Issuer: "National housing agency", AmountRequested: 4000, AmountReceived: 4000, Status: SubsidyReceived,
				Conditions: "Replacing an oil/gas boiler",
				Details:    "Premium for installing an air-to-water heat pump in place of an inefficient boiler."},
			{Name: "Energy certificate — attic insulation", Issuer: "Total Énergies", AmountRequested: 2200, AmountReceived: 2200, Status: SubsidyReceived,
				Conditions: "R ≥ 7 m².K/W",
				Details:    "Energy-saving certificate for insulating the unused attic."},
			{Name: "Energy certificate — wall insulation", Issuer: "Total Énergies", AmountRequested: 3500, AmountReceived: 0, Status: SubsidyPending,
				Conditions: "R ≥ 3.7 m².K/W, exterior insulation",
				Details:    "Energy-saving certificate for exterior wall insulation."},
			{Name: "Energy certificate — heat pump", Issuer: "EDF", AmountRequested: 2500, AmountReceived: 0, Status: SubsidyPending,
				Conditions: "COP ≥ 3.4",
				Details:    "Certificate premium for a high-performance heat pump."},
			{Name: "Local council aid", Issuer: "County council", AmountRequested: 2000, AmountReceived: 0, Status: SubsidyRequested,
				Conditions: "Primary residence, insulation works",
				Details:    "Complementary county aid for energy renovation works."},
			{Name: "Reduced VAT 5.5%", Issuer: "State", AmountRequested: 5700, AmountReceived: 5700, Status: SubsidyReceived,
				Conditions: "Energy renovation works, dwelling over 2 yrs old",
				Details:    "Saving from the reduced 5.5% VAT rate instead of 20% on energy improvement works."},
		},
		WorkItems: []WorkItem{
			{
				Category: "isolation", Name: "Attic insulation", Icon: "layers", Color: "#3b82f6",
				Budget: 8500, Spent: 7800, Progress: 100,
				Contractor: "IsolPlus", StartDate: "2025-06-01", EndDate: "2025-06-15",
				Subtasks: []Subtask{
					{Name: "Remove old insulation", Status: SubtaskDone},
					{Name: "Treat roof frame", Status: SubtaskDone},
					{Name: "Lay 300mm rock wool", Status: SubtaskDone},
					{Name: "Vapor barrier", Status: SubtaskDone},
				},
			},
			{
				Category: "isolation", Name: "Exterior wall insulation", Icon: "grid", Color: "#3b82f6",
				Budget: 22000, Spent: 12000, Progress: 55,
				Contractor: "Façades Pro", StartDate: "2025-06-15", EndDate: "2025-08-30",
				Subtasks: []Subtask{
					{Name: "Scaffolding and prep", Status: SubtaskDone},
					{Name: "Fix 160mm EPS boards", Status: SubtaskInProgress},
					{Name: "Base coat and mesh", Status: SubtaskPending},
					{Name: "Finish render", Status: SubtaskPending},
				},
			},
			{
				Category: "toiture", Name: "Roof overhaul", Icon: "home", Color: "#ef4444",
				Budget: 12000, Spent: 11500, Progress: 100,
				Contractor: "Toiture Martin", StartDate: "2025-06-01", EndDate: "2025-06-20",
				Subtasks: []Subtask{
					{Name: "Remove damaged tiles", Status: SubtaskDone},
					{Name: "Replace battens", Status: SubtaskDone},
					{Name: "Lay new tiles", Status: SubtaskDone},
					{Name: "Flashing and gutters", Status: SubtaskDone},
				},
			},
			{
				Category: "chauffage", Name: "Air-to-water heat pump", Icon: "thermometer", Color: "#f59e0b",
				Budget: 14000, Spent: 5000, Progress: 30,
				Contractor: "ClimaConfort", StartDate: "2025-09-01", EndDate: "2025-10-15",
				Subtasks: []Subtask{
					{Name: "Remove oil boiler and tank", Status: SubtaskDone},
					{Name: "Install outdoor unit", Status: SubtaskInProgress},
					{Name: "Connect heating circuit", Status: SubtaskPending},
					{Name: "Commissioning", Status: SubtaskPending},
				},
			},
			{
				Category: "chauffage", Name: "Ground floor underfloor heating", Icon: "grid", Color: "#f59e0b",
				Budget: 6500, Spent: 0, Progress: 0,
				Contractor: "ClimaConfort", StartDate: "2025-09-15", EndDate: "2025-10-30",
				Subtasks: []Subtask{
					{Name: "Level and prep floor", Status: SubtaskPending},
					{Name: "Lay insulation and PEX loops", Status: SubtaskPending},
					{Name: "Liquid screed", Status: SubtaskPending},
					{Name: "Connect manifold", Status: SubtaskPending},
				},
			},
			{
				Category: "electricite", Name: "Electrical rewiring to code", Icon: "bolt", Color: "#8b5cf6",
				Budget: 8000, Spent: 2500, Progress: 20,
				Contractor: "Elec Solutions", StartDate: "2025-09-01", EndDate: "2025-11-15",
				Subtasks: []Subtask{
					{Name: "New consumer unit", Status: SubtaskDone},
					{Name: "Pull cables", Status: SubtaskInProgress},
					{Name: "Fit sockets and switches", Status: SubtaskPending},
					{Name: "Heat-recovery ventilation", Status: SubtaskPending},
					{Name: "Compliance inspection", Status: SubtaskPending},
				},
			},
			{
				Category: "plomberie", Name: "Full plumbing renovation", Icon: "faucet", Color: "#06b6d4",
				Budget: 7000, Spent: 1200, Progress: 15,
				Contractor: "Plomb Express", StartDate: "2025-09-15", EndDate: "2025-11-30",
				Subtasks: []Subtask{
					{Name: "Remove old pipework", Status: SubtaskDone},
					{Name: "New PEX supply lines", Status: SubtaskPending},
					{Name: "PVC drainage", Status: SubtaskPending},
					{Name: "Fit sanitaryware", Status: SubtaskPending},
				},
			},
			{
				Category: "menuiseries", Name: "Replace exterior joinery", Icon: "door", Color: "#10b981",
				Budget: 9000, Spent: 0, Progress: 0,
				Contractor: "Menuiserie Bertrand", StartDate: "2025-10-01", EndDate: "2025-10-30",
				Subtasks: []Subtask{
					{Name: "Remove old windows", Status: SubtaskPending},
					{Name: "Fit double-glazed aluminum windows", Status: SubtaskPending},
					{Name: "Secure front door", Status: SubtaskPending},
					{Name: "Living room sliding bay", Status: SubtaskPending},
					{Name: "Roller shutters", Status: SubtaskPending},
				},
			},
			{
				Category: "finitions", Name: "Paint and floor coverings", Icon: "roller", Color: "#ec4899",
				Budget: 4500, Spent: 0, Progress: 0,
				Contractor: "Self-renovation", StartDate: "2025-12-01", EndDate: "2026-02-28",
				Subtasks: []Subtask{
					{Name: "Skim and smooth walls", Status: SubtaskPending},
					{Name: "Paint main rooms", Status: SubtaskPending},
					{Name: "Tile the bathroom", Status: SubtaskPending},
					{Name: "Lay laminate flooring", Status: SubtaskPending},
				},
			},
			{
				Category: "finitions", Name: "Fitted kitchen", Icon: "utensils", Color: "#ec4899",
				Budget: 6500, Spent: 0, Progress: 0,
				Contractor: "IKEA + self-install", StartDate: "2026-01-15", EndDate: "2026-02-28",
				Subtasks: []Subtask{
					{Name: "Order and deliver units", Status: SubtaskPending},
					{Name: "Assemble carcasses", Status: SubtaskPending},
					{Name: "Worktop and splashback", Status: SubtaskPending},
					{Name: "Connect appliances", Status: SubtaskPending},
				},
			},
		},
		Materials: []Material{
			{Name: "Rock wool 300mm", Category: "isolation", Supplier: "Point P", Quantity: "120 m²", UnitPrice: 25, TotalPrice: 3000, Status: MaterialDelivered},
			{Name: "Graphite EPS 160mm", Category: "isolation", Supplier: "BigMat", Quantity: "180 m²", UnitPrice: 42, TotalPrice: 7560, Status: MaterialDelivered},
			{Name: "Exterior finish render", Category: "isolation", Supplier: "BigMat", Quantity: "200 m²", UnitPrice: 18, TotalPrice: 3600, Status: MaterialOrdered},
			{Name: "Daikin Altherma 3 heat pump", Category: "chauffage", Supplier: "ClimaConfort", Quantity: "1", UnitPrice: 8500, TotalPrice: 8500, Status: MaterialDelivered},
			{Name: "PEX 16mm underfloor tubing", Category: "chauffage", Supplier: "Cedeo", Quantity: "350 m", UnitPrice: 2.5, TotalPrice: 875, Status: MaterialInStock},
			{Name: "Underfloor heating manifold", Category: "chauffage", Supplier: "Cedeo", Quantity: "2", UnitPrice: 280, TotalPrice: 560, Status: MaterialInStock},
			{Name: "Legrand consumer unit", Category: "electricite", Supplier: "Rexel", Quantity: "1", UnitPrice: 650, TotalPrice: 650, Status: MaterialDelivered},
			{Name: "2.5mm² cable", Category: "electricite", Supplier: "Rexel", Quantity: "200 m", UnitPrice: 1.8, TotalPrice: 360, Status: MaterialDelivered},
			{Name: "Aldes heat-recovery unit", Category: "electricite", Supplier: "Cedeo", Quantity: "1", UnitPrice: 2800, TotalPrice: 2800, Status: MaterialOrdered},
			{Name: "Aluminum double-glazed windows", Category: "menuiseries", Supplier: "Tryba", Quantity: "8", UnitPrice: 650, TotalPrice: 5200, Status: MaterialOrdered},
			{Name: "Sliding bay 2.4m", Category: "menuiseries", Supplier: "Tryba", Quantity: "1", UnitPrice: 1800, TotalPrice: 1800, Status: MaterialOrdered},
			{Name: "Reinforced front door", Category: "menuiseries", Supplier: "Lapeyre", Quantity: "1", UnitPrice: 1500, TotalPrice: 1500, Status: MaterialOrdered},
			{Name: "Concrete roof tiles", Category: "toiture", Supplier: "Point P", Quantity: "45 m²", UnitPrice: 35, TotalPrice: 1575, Status: MaterialDelivered},
			{Name: "Zinc gutters", Category: "toiture", Supplier: "Point P", Quantity: "24 m", UnitPrice: 45, TotalPrice: 1080, Status: MaterialDelivered},
			{Name: "PVC drain pipes", Category: "plomberie", Supplier: "Cedeo", Quantity: "30 m", UnitPrice: 12, TotalPrice: 360, Status: MaterialInStock},
			{Name: "Grohe taps", Category: "plomberie", Supplier: "Cedeo", Quantity: "4", UnitPrice: 180, TotalPrice: 720, Status: MaterialOrdered},
			{Name: "Oak laminate flooring", Category: "finitions", Supplier: "Leroy Merlin", Quantity: "75 m²", UnitPrice: 22, TotalPrice: 1650, Status: MaterialInStock},
			{Name: "Porcelain bathroom tiles", Category: "finitions", Supplier: "Leroy Merlin", Quantity: "25 m²", UnitPrice: 35, TotalPrice: 875, Status: MaterialInStock},
			{Name: "Matte white paint", Category: "finitions", Supplier: "Castorama", Quantity: "50 L", UnitPrice: 12, TotalPrice: 600, Status: MaterialInStock},
			{Name: "IKEA METOD kitchen", Category: "finitions", Supplier: "IKEA", Quantity: "1 set", UnitPrice: 4500, TotalPrice: 4500, Status: MaterialQuoted},
		},
		Comparisons: []Comparison{
			{
				Title: "Heating: heat pump vs condensing gas boiler",
				OptionA: ComparisonOption{
					Name: "Air-to-water heat pump", Selected: true,
					Points: []ComparisonPoint{
						{Icon: "check", Text: "COP 4.5: 1 kWh consumed = 4.5 kWh produced"},
						{Icon: "check", Text: "Eligible for renovation grant + certificates"},
						{Icon: "check", Text: "Can also provide cooling"},
						{Icon: "minus", Text: "Investment: 14,000 before grants"},
						{Icon: "minus", Text: "Outdoor unit noise"},
					},
				},
				OptionB: ComparisonOption{
					Name: "Condensing gas boiler", Selected: false,
					Points: []ComparisonPoint{
						{Icon: "check", Text: "Investment: 6,000"},
						{Icon: "check", Text: "Proven technology"},
						{Icon: "times", Text: "Fossil energy, volatile prices"},
						{Icon: "times", Text: "Banned in new builds since 2022"},
						{Icon: "times", Text: "Fewer grants available"},
					},
				},
			},
			{
				Title: "Attic insulation: rock wool vs cellulose",
				OptionA: ComparisonOption{
					Name: "Rock wool", Selected: true,
					Points: []ComparisonPoint{
						{Icon: "check", Text: "Excellent value for money"},
						{Icon: "check", Text: "Non-combustible (A1)"},
						{Icon: "check", Text: "Moisture resistant"},
						{Icon: "minus", Text: "Lambda: 0.035 W/m.K"},
					},
				},
				OptionB: ComparisonOption{
					Name: "Cellulose fiber", Selected: false,
					Points: []ComparisonPoint{
						{Icon: "check", Text: "Recycled material"},
						{Icon: "check", Text: "Good thermal lag (summer comfort)"},
						{Icon: "minus", Text: "Moisture sensitive"},
						{Icon: "minus", Text: "Lambda: 0.039 W/m.K"},
						{Icon: "minus", Text: "Slightly higher price"},
					},
				},
			},
		},
		Energy: EnergyImpact{
			Savings: KVList{
				{"Consumption before", "330 kWh/m²/yr → 39,600 kWh/yr"},
				{"Consumption after", "85 kWh/m²/yr → 10,200 kWh/yr"},
				{"Annual energy saving", "29,400 kWh/yr (-74%)"},
				{"Bill before (est.)", "3,200/yr"},
				{"Bill after (est.)", "850/yr"},
				{"Annual saving", "2,350/yr"},
				{"Payback period", "≈ 12 yrs (before grants)"},
			},
			PropertyValue: KVList{
				{"Estimated value before works", "185,000"},
				{"Estimated value after works", "280,000 to 310,000"},
				{"Potential gain", "95,000 to 125,000"},
				{"Total renovation cost", "≈ 95,000"},
				{"Estimated net gain", "0 to 30,000"},
				{"Rating class effect", "+15% to +25% value"},
			},
		},
		Journal: []JournalEntry{
			{
				Date: "2025-07-12", Title: "South facade insulation done",
				Tags: []string{"isolation", "structural"},
				Body: "EPS boards on the south facade are fixed. The reinforcing mesh is in place; the base coat goes on next week.",
				Problems: []string{
					"Structural cracks found on the east gable, needing treatment before boarding",
					"Starter profiles delivered a week late",
				},
				Solutions: []string{
					"Cracks treated with epoxy resin and stitching, extra cost 800",
					"Replanned to start on the south facade while waiting for profiles",
				},
				Lessons: []string{
					"Always get a full structural survey before exterior insulation",
					"Order profiles at least 3 weeks ahead",
				},
			},
			{
				Date: "2025-06-28", Title: "Roof finished and signed off",
				Tags: []string{"toiture"},
				Body: "The roof overhaul is complete and accepted. Broken tiles replaced, worn battens changed, all flashing redone, plus an unplanned breathable underlay.",
				Problems: []string{
					"Battens worse than expected: 60% to replace instead of 30%",
				},
				Solutions: []string{
					"Full batten replacement on north and west slopes; the 500 overrun absorbed by the contractor",
				},
				Lessons: []string{
					"Negotiating a worst-case flat rate for roofing avoids nasty surprises",
				},
			},
			{
				Date: "2025-06-15", Title: "Attic insulation complete",
				Tags: []string{"isolation"},
				Body: "120 m² of 300mm rock wool (R=7.5) laid in two crossed layers with a vapor barrier. The degraded old glass wool was removed and disposed of.",
				Problems:  []string{},
				Solutions: []string{},
				Lessons: []string{
					"Two crossed layers are essential to kill thermal bridges at the joints",
					"Check the state of the existing vapor barrier before laying a new one",
				},
			},
			{
				Date: "2025-06-01", Title: "Site officially opened",
				Tags: []string{"general"},
				Body: "Work starts! Scaffolding is up on all four facades, the site is secured, skips are in place. Roofing and attic insulation run in parallel.",
				Problems: []string{
					"Difficult crane access on the north side (narrow passage)",
				},
				Solutions: []string{
					"Used a compact material hoist, tiles delivered in small batches",
				},
				Lessons: []string{
					"Always verify site access before quoting",
				},
			},
			{
				Date: "2025-05-15", Title: "Grant applications filed",
				Tags: []string{"paperwork", "subsidies"},
				Body: "All grant files submitted: whole-home renovation grant, heat pump premium, energy certificates, county aid. The energy audit confirms the move from F to B.",
				Problems: []string{
					"The wall insulation certificate file needs specific before/after photos",
				},
				Solutions: []string{
					"Photo protocol set up: timestamped shots at each step with a ruler visible",
				},
				Lessons: []string{
					"Build the grant files BEFORE works start, or risk refusal",
				},
			},
		},
		MonthlySpend: []MonthlySpend{
			{Month: "May 2025", Amount: 0, Cumulative: 0},
			{Month: "Jun 2025", Amount: 22300, Cumulative: 22300},
			{Month: "Jul 2025", Amount: 12000, Cumulative: 34300},
			{Month: "Aug 2025", Amount: 5700, Cumulative: 40000},
			{Month: "Sep 2025", Amount: 8000, Cumulative: 48000},
			{Month: "Oct 2025", Amount: 12000, Cumulative: 60000},
			{Month: "Nov 2025", Amount: 10000, Cumulative: 70000},
			{Month: "Dec 2025", Amount: 8000, Cumulative: 78000},
			{Month: "Jan 2026", Amount: 10000, Cumulative: 88000},
			{Month: "Feb 2026", Amount: 7000, Cumulative: 95000},
		},
	}
}
