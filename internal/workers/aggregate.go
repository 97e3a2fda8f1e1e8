package workers

import "boardpanel/internal/models"

// assemble maps per-stage strength lists onto the five named result fields
// in stage order. Missing stages stay empty lists; anything past the fifth
// stage is ignored.
func assemble(stages [][]string) models.AnalysisResult {
	fields := [5][]string{}
	for i := range fields {
		fields[i] = []string{}
	}
	for i, items := range stages {
		if i >= len(fields) {
			break
		}
		if items != nil {
			fields[i] = items
		}
	}
	return models.AnalysisResult{
		MarketingStrengths:   fields[0],
		TechStrengths:        fields[1],
		OrgHRStrengths:       fields[2],
		CompetitiveStrengths: fields[3],
		FinanceStrengths:     fields[4],
	}
}
