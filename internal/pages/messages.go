package pages

import (
	"math"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"golang.org/x/text/number"
)

// printer is built once the catalog below is registered.
var printer *message.Printer

func init() {
	lang := language.English

	mustSet(lang, "users.count", plural.Selectf(1, "%d",
		"=1", "%[1]d Registered User",
		"other", "%[1]d Registered Users"))
	mustSet(lang, "teams.count", plural.Selectf(1, "%d",
		"=1", "%[1]d Team Available",
		"other", "%[1]d Teams Available"))
	mustSet(lang, "workouts.count", plural.Selectf(1, "%d",
		"=1", "%[1]d Workout Available",
		"other", "%[1]d Workouts Available"))

	message.SetString(lang, "activities.count", "Activity Log (%d activities)")
	message.SetString(lang, "leaderboard.count", "Top Performers (%d participants)")
	message.SetString(lang, "team.members", "Team Members (%d)")
	message.SetString(lang, "user.workouts", "Completed Workouts (%d)")

	printer = message.NewPrinter(lang)
}

func mustSet(lang language.Tag, key string, msg catalog.Message) {
	if err := message.Set(lang, key, msg); err != nil {
		panic(err)
	}
}

// translate looks up a catalog message and formats it with English number
// grouping.
func translate(key string, args ...any) string {
	return printer.Sprintf(key, args...)
}

// points renders a score with grouping, e.g. "1,250". Fractional scores keep
// up to two decimals. Whole scores outside the int64 range go through the
// decimal formatter.
func points(score float64) string {
	if score == math.Trunc(score) && math.Abs(score) < 1<<63 {
		return printer.Sprintf("%d", int64(score))
	}
	return printer.Sprint(number.Decimal(score, number.MaxFractionDigits(2)))
}
