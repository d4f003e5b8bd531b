// Package coop is the built-in housing affordability model: a whole-house
// monthly cost function and the household / co-op / land-trust scenarios.
package coop

// Rates holds the assumptions behind the cost function. Annual rates are
// fractions of the relevant value; monthly amounts are in dollars.
type Rates struct {
	PropertyTax         float64 // annual, of sale price
	Insurance           float64 // annual, of building value
	Maintenance         float64 // annual, of building value
	UtilitiesBase       float64 // monthly
	UtilitiesPerBedroom float64 // monthly
	ClosingCosts        float64 // of sale price, paid upfront
	LoanYears           int

	HouseholdAdults   float64
	HouseholdChildren float64
	MembersPerBedroom float64

	CoopFeePerMember float64 // monthly
	CoopLegalSetup   float64 // upfront
	GroundLease      float64 // annual, of land value
	LandTrustFee     float64 // upfront
}

// DefaultRates are the assumptions used when the config sets nothing.
var DefaultRates = Rates{
	PropertyTax:         0.012,
	Insurance:           0.004,
	Maintenance:         0.01,
	UtilitiesBase:       150,
	UtilitiesPerBedroom: 90,
	ClosingCosts:        0.03,
	LoanYears:           30,

	HouseholdAdults:   2,
	HouseholdChildren: 2,
	MembersPerBedroom: 1,

	CoopFeePerMember: 25,
	CoopLegalSetup:   8_000,
	GroundLease:      0.02,
	LandTrustFee:     2_500,
}

// RateOverrides holds optional replacements for DefaultRates, as read from
// the [rates] config section. Nil fields keep the default.
type RateOverrides struct {
	PropertyTax         *float64 `toml:"property_tax,omitempty"`
	Insurance           *float64 `toml:"insurance,omitempty"`
	Maintenance         *float64 `toml:"maintenance,omitempty"`
	UtilitiesBase       *float64 `toml:"utilities_base,omitempty"`
	UtilitiesPerBedroom *float64 `toml:"utilities_per_bedroom,omitempty"`
	ClosingCosts        *float64 `toml:"closing_costs,omitempty"`
	LoanYears           *int     `toml:"loan_years,omitempty"`
	HouseholdAdults     *float64 `toml:"household_adults,omitempty"`
	HouseholdChildren   *float64 `toml:"household_children,omitempty"`
	MembersPerBedroom   *float64 `toml:"members_per_bedroom,omitempty"`
	CoopFeePerMember    *float64 `toml:"coop_fee_per_member,omitempty"`
	CoopLegalSetup      *float64 `toml:"coop_legal_setup,omitempty"`
	GroundLease         *float64 `toml:"ground_lease,omitempty"`
	LandTrustFee        *float64 `toml:"land_trust_fee,omitempty"`
}

// Apply returns base with every set override replaced.
func (o RateOverrides) Apply(base Rates) Rates {
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&base.PropertyTax, o.PropertyTax)
	set(&base.Insurance, o.Insurance)
	set(&base.Maintenance, o.Maintenance)
	set(&base.UtilitiesBase, o.UtilitiesBase)
	set(&base.UtilitiesPerBedroom, o.UtilitiesPerBedroom)
	set(&base.ClosingCosts, o.ClosingCosts)
	set(&base.HouseholdAdults, o.HouseholdAdults)
	set(&base.HouseholdChildren, o.HouseholdChildren)
	set(&base.MembersPerBedroom, o.MembersPerBedroom)
	set(&base.CoopFeePerMember, o.CoopFeePerMember)
	set(&base.CoopLegalSetup, o.CoopLegalSetup)
	set(&base.GroundLease, o.GroundLease)
	set(&base.LandTrustFee, o.LandTrustFee)
	if o.LoanYears != nil {
		base.LoanYears = *o.LoanYears
	}
	return base
}
