package service

// picklistTemplate describes one system picklist shipped with the portal
type picklistTemplate struct {
	Name        string
	Description string
	Values      []picklistValueTemplate
}

type picklistValueTemplate struct {
	Value string
	Label string
}

// defaultPicklists returns the system picklists every deployment starts with.
// Value keys are stable; labels are what users see.
func defaultPicklists() []picklistTemplate {
	return []picklistTemplate{
		{
			Name:        "AcquisitionType",
			Description: "How an opportunity is being competed",
			Values: []picklistValueTemplate{
				{Value: "full_and_open", Label: "Full and Open"},
				{Value: "small_business_set_aside", Label: "Small Business Set-Aside"},
				{Value: "sole_source", Label: "Sole Source"},
				{Value: "eight_a", Label: "8(a)"},
				{Value: "hubzone", Label: "HUBZone"},
				{Value: "sdvosb", Label: "SDVOSB"},
				{Value: "wosb", Label: "WOSB"},
			},
		},
		{
			Name:        "ContractType",
			Description: "Pricing structure of the contract",
			Values: []picklistValueTemplate{
				{Value: "ffp", Label: "Firm Fixed Price"},
				{Value: "tm", Label: "Time & Materials"},
				{Value: "cpff", Label: "Cost Plus Fixed Fee"},
				{Value: "cpaf", Label: "Cost Plus Award Fee"},
				{Value: "cpif", Label: "Cost Plus Incentive Fee"},
				{Value: "idiq", Label: "IDIQ"},
				{Value: "bpa", Label: "BPA"},
			},
		},
		{
			Name:        "OpportunityStatus",
			Description: "Pipeline stage of an opportunity",
			Values: []picklistValueTemplate{
				{Value: "prospecting", Label: "Prospecting"},
				{Value: "qualifying", Label: "Qualifying"},
				{Value: "capture", Label: "Capture"},
				{Value: "proposal", Label: "Proposal"},
				{Value: "submitted", Label: "Submitted"},
				{Value: "awarded", Label: "Awarded"},
				{Value: "lost", Label: "Lost"},
				{Value: "no_bid", Label: "No Bid"},
			},
		},
		{
			Name:        "Portfolio",
			Description: "Business portfolio an account or opportunity belongs to",
			Values: []picklistValueTemplate{
				{Value: "defense", Label: "Defense"},
				{Value: "civilian", Label: "Civilian"},
				{Value: "health", Label: "Health"},
				{Value: "intelligence", Label: "Intelligence"},
				{Value: "state_local", Label: "State & Local"},
			},
		},
	}
}
