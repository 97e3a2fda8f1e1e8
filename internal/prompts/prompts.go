// Package prompts turns a submitted startup document into the five
// stage-specific completion prompts, one per advisor persona.
package prompts

import (
	"fmt"
	"strings"

	"boardpanel/internal/models"
)

// StagePrompt is the context for one advisor stage's completion call.
type StagePrompt struct {
	Stage  string
	System string
	User   string
}

// StageNames lists the advisor stages in pipeline order.
var StageNames = [5]string{"Marketing", "Tech", "Org", "Competitive", "Finance"}

const outputInstruction = `Respond with a single JSON object and nothing else:
{"agent_name": "%s", "strengths": ["...", "...", "..."]}
The "strengths" array must contain 3 to 5 specific strengths, each written as one complete sentence grounded in the data above.`

// ForInput builds the five stage prompts from the startup document, in
// pipeline order.
func ForInput(in models.StartupInput) [5]StagePrompt {
	return [5]StagePrompt{
		{
			Stage: StageNames[0],
			System: "You are a seasoned marketing advisor on a startup advisory board. " +
				"You evaluate acquisition channels, unit economics, and retention, and you only comment on what the data supports.",
			User: marketingPrompt(in.MarketingGrowth),
		},
		{
			Stage: StageNames[1],
			System: "You are a pragmatic tech lead on a startup advisory board. " +
				"You evaluate product capability, stack choices, and data strategy, and you only comment on what the data supports.",
			User: techPrompt(in.ProductTechnology),
		},
		{
			Stage: StageNames[2],
			System: "You are an organization and HR strategist on a startup advisory board. " +
				"You evaluate team composition, founder coverage, and hiring plans, and you only comment on what the data supports.",
			User: orgPrompt(in.TeamOrganization),
		},
		{
			Stage: StageNames[3],
			System: "You are a competitive analyst on a startup advisory board. " +
				"You evaluate positioning, differentiation, and pricing, and you only comment on what the data supports.",
			User: competitivePrompt(in.CompetitionMarket),
		},
		{
			Stage: StageNames[4],
			System: "You are a finance advisor on a startup advisory board. " +
				"You evaluate burn, revenue traction, and runway, and you only comment on what the data supports.",
			User: financePrompt(in.FinanceRunway),
		},
	}
}

func marketingPrompt(m models.MarketingGrowth) string {
	var b strings.Builder
	b.WriteString("Identify the marketing and growth strengths of this startup.\n\n")
	fmt.Fprintf(&b, "Marketing channels: %s\n", joinOrNone(m.CurrentMarketingChannels))
	fmt.Fprintf(&b, "Monthly users: %d\n", m.MonthlyUsers)
	fmt.Fprintf(&b, "Customer acquisition cost: %s\n", orUnknown(m.CustomerAcquisitionCost))
	fmt.Fprintf(&b, "Retention strategy: %s\n", orUnknown(m.RetentionStrategy))
	fmt.Fprintf(&b, "Known growth problems: %s\n\n", orUnknown(m.GrowthProblems))
	fmt.Fprintf(&b, outputInstruction, "Marketing")
	return b.String()
}

func techPrompt(t models.ProductTechnology) string {
	var b strings.Builder
	b.WriteString("Identify the product and technology strengths of this startup.\n\n")
	fmt.Fprintf(&b, "Product type: %s\n", t.ProductType)
	fmt.Fprintf(&b, "Current features: %s\n", joinOrNone(t.CurrentFeatures))
	fmt.Fprintf(&b, "Tech stack: %s\n", joinOrNone(t.TechStack))
	fmt.Fprintf(&b, "Data strategy: %s\n", t.DataStrategy)
	fmt.Fprintf(&b, "AI usage: %s\n", t.AIUsage)
	fmt.Fprintf(&b, "Known tech challenges: %s\n\n", orUnknown(t.TechChallenges))
	fmt.Fprintf(&b, outputInstruction, "Tech")
	return b.String()
}

func orgPrompt(o models.TeamOrganization) string {
	var b strings.Builder
	b.WriteString("Identify the team and organizational strengths of this startup.\n\n")
	fmt.Fprintf(&b, "Team size: %d\n", o.TeamSize)
	fmt.Fprintf(&b, "Founder roles: %s\n", joinOrNone(o.FounderRoles))
	fmt.Fprintf(&b, "Hiring plan (next 3 months): %s\n", orUnknown(o.HiringPlanNext3Months))
	fmt.Fprintf(&b, "Known org challenges: %s\n\n", orUnknown(o.OrgChallenges))
	fmt.Fprintf(&b, outputInstruction, "Org")
	return b.String()
}

func competitivePrompt(c models.CompetitionMarket) string {
	var b strings.Builder
	b.WriteString("Identify the competitive positioning strengths of this startup.\n\n")
	fmt.Fprintf(&b, "Known competitors: %s\n", joinOrNone(c.KnownCompetitors))
	fmt.Fprintf(&b, "Unique advantage: %s\n", orUnknown(c.UniqueAdvantage))
	fmt.Fprintf(&b, "Pricing model: %s\n", orUnknown(c.PricingModel))
	fmt.Fprintf(&b, "Known market risks: %s\n\n", orUnknown(c.MarketRisks))
	fmt.Fprintf(&b, outputInstruction, "Competitive")
	return b.String()
}

func financePrompt(f models.FinanceRunway) string {
	var b strings.Builder
	b.WriteString("Identify the financial strengths of this startup.\n\n")
	fmt.Fprintf(&b, "Monthly burn: %s\n", orUnknown(f.MonthlyBurn))
	fmt.Fprintf(&b, "Current revenue: %s\n", orUnknown(f.CurrentRevenue))
	fmt.Fprintf(&b, "Funding status: %s\n", f.FundingStatus)
	fmt.Fprintf(&b, "Runway (months): %s\n", orUnknown(f.RunwayMonths))
	fmt.Fprintf(&b, "Known financial concerns: %s\n\n", orUnknown(f.FinancialConcerns))
	fmt.Fprintf(&b, outputInstruction, "Finance")
	return b.String()
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none listed"
	}
	return strings.Join(items, ", ")
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "not provided"
	}
	return s
}
