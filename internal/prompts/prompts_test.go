package prompts

import (
	"strings"
	"testing"

	"boardpanel/internal/models"
)

func TestForInput_FiveStagesInOrder(t *testing.T) {
	in := models.StartupInput{
		ProductTechnology: models.ProductTechnology{
			ProductType:  "SaaS",
			TechStack:    []string{"Go", "Postgres"},
			DataStrategy: "User Data",
			AIUsage:      "Planned",
		},
		MarketingGrowth: models.MarketingGrowth{
			CurrentMarketingChannels: []string{"SEO"},
			MonthlyUsers:             1500,
		},
		FinanceRunway: models.FinanceRunway{FundingStatus: "Seed"},
	}

	stagePrompts := ForInput(in)

	for i, sp := range stagePrompts {
		if sp.Stage != StageNames[i] {
			t.Fatalf("stage %d: expected %s, got %s", i, StageNames[i], sp.Stage)
		}
		if sp.System == "" {
			t.Fatalf("stage %s: empty system prompt", sp.Stage)
		}
		if !strings.Contains(sp.User, `"strengths"`) {
			t.Fatalf("stage %s: user prompt missing output instruction", sp.Stage)
		}
		if !strings.Contains(sp.User, sp.Stage) {
			t.Fatalf("stage %s: user prompt missing agent name", sp.Stage)
		}
	}

	if !strings.Contains(stagePrompts[0].User, "SEO") {
		t.Fatalf("marketing prompt missing channel data")
	}
	if !strings.Contains(stagePrompts[1].User, "Go, Postgres") {
		t.Fatalf("tech prompt missing stack data")
	}
	if !strings.Contains(stagePrompts[4].User, "Seed") {
		t.Fatalf("finance prompt missing funding status")
	}
}

func TestForInput_EmptyFieldsRendered(t *testing.T) {
	stagePrompts := ForInput(models.StartupInput{})
	if !strings.Contains(stagePrompts[0].User, "none listed") {
		t.Fatalf("expected placeholder for missing channels")
	}
	if !strings.Contains(stagePrompts[2].User, "not provided") {
		t.Fatalf("expected placeholder for missing hiring plan")
	}
}
