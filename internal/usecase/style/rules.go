package style

import "regexp"

// Rule tables for the communication style checker, extracted from the
// executive's communication style guide.

// BLUF (Bottom Line Up Front) detection.
var (
	blufIndicators = []string{
		"status:", "decision:", "ask:", "summary:", "tldr:", "tl;dr:",
		"recommendation:", "request:", "update:", "issue:", "action:",
	}
	contextStarters = []string{
		"as you know", "i wanted to", "i'm writing to", "following up",
		"per our", "regarding", "in reference", "as discussed",
	}
)

// Passive voice. More than two matches of either pattern is flagged.
var passivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(was|were|been|being|is|are|am)\s+\w+ed\b`),
	regexp.MustCompile(`\b(has|have|had)\s+been\s+\w+ed\b`),
}

// Vague phrasing that should be replaced with numbers.
var vagueTerms = []string{
	"significant", "substantial", "considerable", "notable",
	"good progress", "great progress", "some progress",
	"many", "several", "various", "a lot", "lots of",
	"soon", "shortly", "eventually", "later",
}

// Positive signals that a message carries action items. The extended set
// also accepts @mentions and weekday deadlines.
var (
	actionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(next steps?|action items?|todo|to-do)\b`),
		regexp.MustCompile(`\b(will|shall)\s+\w+\b`),
	}
	extendedActionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\[@\w+\]`),
		regexp.MustCompile(`\b(by|deadline|due)\s+\w+day\b`),
	}
)

// Quantified-metric signals, only consulted in extended mode for
// status-like messages.
var (
	metricPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\d+%`),
		regexp.MustCompile(`\d+\s*(hours?|days?|weeks?|months?)`),
		regexp.MustCompile(`\$\d+`),
		regexp.MustCompile(`\d+\s*(users?|customers?|requests?|errors?)`),
	}
	statusIndicators = []string{"update", "progress", "status", "report", "weekly"}
)

// Phrases the executive has explicitly banned.
var petPeeves = []string{
	"sorry to bother",
	"quick sync",
	"just checking in",
	"touching base",
	"circle back",
	"ping you",
	"loop you in",
}

// Over-apologizing. First matching pattern wins.
var apologyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bsorry\b.*\bsorry\b`),
	regexp.MustCompile(`\bapologize\b.*\bapologize\b`),
	regexp.MustCompile(`^sorry\b`),
}
