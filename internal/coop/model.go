package coop

import (
	"fmt"
	"math"

	"github.com/theirongolddev/coopcost/internal/model"
)

// Variable names.
const (
	SalePrice    = "sale_price"
	LandShare    = "land_share"
	Bedrooms     = "bedrooms"
	InterestRate = "interest_rate"
	DownPayment  = "down_payment"
)

// Scenario names.
const (
	ScenarioHousehold = "Household"
	ScenarioCoop      = "Co-op"
	ScenarioLandTrust = "Co-op + Land Trust"
)

// Variables returns the model's inputs in display order.
func Variables() model.VariableSet {
	return model.VariableSet{
		{
			Name: SalePrice, Title: "Sale price", Label: "($)",
			Domain:  model.Range{Start: 100_000, Stop: 2_000_000, Step: 25_000},
			Default: model.Num(750_000), Format: model.FormatCurrency,
		},
		{
			Name: LandShare, Title: "Land value", Label: "(% of price)",
			Domain:  model.Range{Start: 0, Stop: 0.8, Step: 0.05},
			Default: model.Num(0.3), Format: model.FormatPercent,
		},
		{
			Name: Bedrooms, Title: "Bedrooms", Label: "(#)",
			Domain:  model.Range{Start: 1, Stop: 12, Step: 1},
			Default: model.Num(6), Format: model.FormatCount,
		},
		{
			Name: InterestRate, Title: "Interest rate", Label: "(APR)",
			Domain:  model.Range{Start: 0, Stop: 0.1, Step: 0.0025},
			Default: model.Num(0.065), Format: model.FormatPercent,
		},
		{
			Name: DownPayment, Title: "Down payment", Label: "(% of financed)",
			Domain: model.Choices{
				{Value: model.Num(0.1), Label: "10%"},
				{Value: model.Num(0.2), Label: "20%"},
				{Value: model.Num(0.35), Label: "35%"},
			},
			Default: model.Num(0.2), Format: model.FormatPercent,
		},
	}
}

// Model is the affordability cost function bound to a set of rates.
type Model struct {
	Rates Rates
}

// New returns a Model using DefaultRates with o applied.
func New(o RateOverrides) *Model {
	return &Model{Rates: o.Apply(DefaultRates)}
}

// Variables returns the model's inputs.
func (m *Model) Variables() model.VariableSet { return Variables() }

// Payment is the monthly payment amortizing principal over years at the
// annual rate. A zero rate spreads the principal evenly.
func Payment(principal, annualRate float64, years int) float64 {
	n := float64(years * 12)
	if principal <= 0 || n <= 0 {
		return 0
	}
	r := annualRate / 12
	if r == 0 {
		return principal / n
	}
	return principal * r / (1 - math.Pow(1+r, -n))
}

type inputs struct {
	price, land, building float64
	bedrooms, rate, down  float64
}

func (m *Model) read(v model.Values) (inputs, error) {
	in := inputs{
		price:    v.Float(SalePrice),
		land:     v.Float(SalePrice) * v.Float(LandShare),
		bedrooms: v.Float(Bedrooms),
		rate:     v.Float(InterestRate),
		down:     v.Float(DownPayment),
	}
	in.building = in.price - in.land
	if in.price <= 0 {
		return in, fmt.Errorf("sale price must be positive, got %g", in.price)
	}
	if m.Rates.LoanYears <= 0 {
		return in, fmt.Errorf("loan term must be positive, got %d years", m.Rates.LoanYears)
	}
	return in, nil
}

// common holds the running costs every scenario shares. financed is the
// purchase amount the mortgage covers before the down payment.
func (m *Model) common(in inputs, financed float64) model.Amounts {
	r := m.Rates
	return model.Amounts{
		{Category: "mortgage", Value: Payment(financed*(1-in.down), in.rate, r.LoanYears)},
		{Category: "property taxes", Value: in.price * r.PropertyTax / 12},
		{Category: "insurance", Value: in.building * r.Insurance / 12},
		{Category: "utilities", Value: r.UtilitiesBase + r.UtilitiesPerBedroom*in.bedrooms},
		{Category: "maintenance", Value: in.building * r.Maintenance / 12},
	}
}

// Monthly is the whole-house monthly cost by category.
func (m *Model) Monthly(v model.Values) (model.Amounts, error) {
	in, err := m.read(v)
	if err != nil {
		return nil, err
	}
	return m.common(in, in.price), nil
}

// Scenarios compares buying as one household, as a co-op, and as a co-op
// on land held by a community land trust.
func (m *Model) Scenarios(v model.Values) ([]model.Scenario, error) {
	in, err := m.read(v)
	if err != nil {
		return nil, err
	}
	r := m.Rates
	members := in.bedrooms * r.MembersPerBedroom

	household := model.Scenario{
		Name:        ScenarioHousehold,
		MonthlyCost: m.common(in, in.price),
		UpfrontCost: model.Amounts{
			{Category: "down payment", Value: in.price * in.down},
			{Category: "closing costs", Value: in.price * r.ClosingCosts},
		},
		NumberPeople: model.Amounts{
			{Category: "adults", Value: r.HouseholdAdults},
			{Category: "children", Value: r.HouseholdChildren},
		},
	}

	coop := model.Scenario{
		Name:        ScenarioCoop,
		MonthlyCost: m.common(in, in.price),
		UpfrontCost: model.Amounts{
			{Category: "down payment", Value: in.price * in.down},
			{Category: "closing costs", Value: in.price * r.ClosingCosts},
			{Category: "legal setup", Value: r.CoopLegalSetup},
		},
		NumberPeople: model.Amounts{{Category: "members", Value: members}},
	}
	coop.MonthlyCost.Set("co-op fees", r.CoopFeePerMember*members)

	trust := model.Scenario{
		Name:        ScenarioLandTrust,
		MonthlyCost: m.common(in, in.building),
		UpfrontCost: model.Amounts{
			{Category: "down payment", Value: in.building * in.down},
			{Category: "closing costs", Value: in.building * r.ClosingCosts},
			{Category: "legal setup", Value: r.CoopLegalSetup},
			{Category: "land trust fee", Value: r.LandTrustFee},
		},
		NumberPeople: model.Amounts{{Category: "members", Value: members}},
	}
	trust.MonthlyCost.Set("co-op fees", r.CoopFeePerMember*members)
	trust.MonthlyCost.Set("ground lease", in.land*r.GroundLease/12)

	return []model.Scenario{household, coop, trust}, nil
}
