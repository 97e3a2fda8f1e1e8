package models

// AgentStrengthOutput is the structure each advisor stage is instructed to
// return. The completion request asks for strict JSON of this shape, but the
// model does not always comply; see internal/extract.
type AgentStrengthOutput struct {
	AgentName string   `json:"agent_name"`
	Strengths []string `json:"strengths"`
}

type ProductTechnology struct {
	ProductType     string   `json:"product_type" validate:"required,oneof=Web Mobile SaaS Hardware AI"`
	CurrentFeatures []string `json:"current_features"`
	TechStack       []string `json:"tech_stack"`
	DataStrategy    string   `json:"data_strategy" validate:"required,oneof=None 'User Data' 'External APIs' Proprietary"`
	AIUsage         string   `json:"ai_usage" validate:"required,oneof=None Planned 'In Production'"`
	TechChallenges  string   `json:"tech_challenges"`
}

type MarketingGrowth struct {
	CurrentMarketingChannels []string `json:"current_marketing_channels"`
	MonthlyUsers             int      `json:"monthly_users" validate:"gte=0"`
	CustomerAcquisitionCost  string   `json:"customer_acquisition_cost"`
	RetentionStrategy        string   `json:"retention_strategy"`
	GrowthProblems           string   `json:"growth_problems"`
}

type TeamOrganization struct {
	TeamSize              int      `json:"team_size" validate:"gte=0"`
	FounderRoles          []string `json:"founder_roles"`
	HiringPlanNext3Months string   `json:"hiring_plan_next_3_months"`
	OrgChallenges         string   `json:"org_challenges"`
}

type CompetitionMarket struct {
	KnownCompetitors []string `json:"known_competitors"`
	UniqueAdvantage  string   `json:"unique_advantage"`
	PricingModel     string   `json:"pricing_model"`
	MarketRisks      string   `json:"market_risks"`
}

type FinanceRunway struct {
	MonthlyBurn       string `json:"monthly_burn"`
	CurrentRevenue    string `json:"current_revenue"`
	FundingStatus     string `json:"funding_status" validate:"required,oneof=Bootstrapped Angel Seed 'Series A'"`
	RunwayMonths      string `json:"runway_months"`
	FinancialConcerns string `json:"financial_concerns"`
}

// StartupInput is the business-input document submitted for analysis.
type StartupInput struct {
	ProductTechnology ProductTechnology `json:"product_technology"`
	MarketingGrowth   MarketingGrowth   `json:"marketing_growth"`
	TeamOrganization  TeamOrganization  `json:"team_organization"`
	CompetitionMarket CompetitionMarket `json:"competition_market"`
	FinanceRunway     FinanceRunway     `json:"finance_runway"`
}

// AnalysisResult holds the five named strength lists, one per advisor stage,
// in stage order.
type AnalysisResult struct {
	MarketingStrengths   []string `json:"marketing_strengths"`
	TechStrengths        []string `json:"tech_strengths"`
	OrgHRStrengths       []string `json:"org_hr_strengths"`
	CompetitiveStrengths []string `json:"competitive_strengths"`
	FinanceStrengths     []string `json:"finance_strengths"`
}
