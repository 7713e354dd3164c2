package types

// Static option lists served by /api/placer/options to populate client-side
// selection inputs.

var IncomeBrackets = []string{
	"< $25k", "$25k - $50k", "$50k - $100k", "$100k - $200k", ">$200k",
}

var EducationLevels = []string{
	"High School", "Some College", "Associate", "Bachelor's", "Master's", "PhD",
}

var EthnicityOptions = []string{
	"Asian", "Black", "Hispanic/Latino", "Middle Eastern", "Native American", "White", "Mixed", "Other",
}
