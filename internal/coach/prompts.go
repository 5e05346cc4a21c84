package coach

import (
	"fmt"
	"strings"

	"github.com/brain-time/coach/pkg/types"
)

// Plan request templates per language code. Arguments in order: available
// hours, date, focus areas, time block size, extra context line.
var planPromptTemplates = map[string]string{
	"en": `I have %.1f hours available today (%s).

My focus areas: %s
Preferred time blocks: %d minutes
%s
Please create a realistic, time-blocked schedule for today.`,
	"de": `Ich habe heute %.1f Stunden verfügbar (%s).

Meine Schwerpunkte: %s
Bevorzugte Zeitblöcke: %d Minuten
%s
Bitte erstelle einen realistischen Tagesplan mit Zeitblöcken.`,
	"ar": `لدي %.1f ساعات متاحة اليوم (%s).

مجالات التركيز: %s
كتل الوقت المفضلة: %d دقيقة
%s
يرجى إنشاء جدول زمني واقعي لليوم.`,
	"fr": `J'ai %.1f heures disponibles aujourd'hui (%s).

Mes domaines prioritaires: %s
Blocs de temps préférés: %d minutes
%s
Veuillez créer un emploi du temps réaliste par blocs pour aujourd'hui.`,
}

var contextPrefixes = map[string]string{
	"en": "Additional context: ",
	"de": "Zusätzlicher Kontext: ",
	"ar": "سياق إضافي: ",
	"fr": "Contexte supplémentaire: ",
}

// planPrompt renders the daily plan request in the profile's language.
func planPrompt(profile *types.UserProfile, date string, availableHours float64, extraContext string) string {
	lang := profile.LanguageCode
	template, ok := planPromptTemplates[lang]
	if !ok {
		lang = "en"
		template = planPromptTemplates["en"]
	}

	contextLine := ""
	if extraContext != "" {
		contextLine = "\n" + contextPrefixes[lang] + extraContext + "\n"
	}

	return fmt.Sprintf(template,
		availableHours,
		date,
		strings.Join(profile.KeyFocusAreas, ", "),
		profile.TimeBlockSize,
		contextLine,
	)
}

// reviewPrompt summarizes recent plans and the user's reflections into the
// weekly review request. Plan content is excerpted so a week of verbose
// plans stays within the feature's token budget.
func reviewPrompt(plans []*types.DailyPlan, reflections string) string {
	summaries := make([]string, 0, len(plans))
	for _, p := range plans {
		summaries = append(summaries, fmt.Sprintf("**%s**: %s", p.Date, excerpt(p.Content, planExcerptLen)))
	}

	var b strings.Builder
	b.WriteString("Here are my daily plans from this week:\n\n")
	b.WriteString(strings.Join(summaries, "\n\n"))
	b.WriteString("\n\n")
	if reflections != "" {
		b.WriteString("My reflections: " + reflections + "\n\n")
	}
	b.WriteString(`Please provide:
1. Celebration of wins (even small ones)
2. Patterns you notice
3. 2-3 specific suggestions for next week
4. Encouragement and motivation`)

	return b.String()
}

// excerpt truncates s to at most n characters, rune-safe so multibyte
// content (Arabic plans) is never cut mid-character.
func excerpt(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
