package studytracker

import "math/rand/v2"

// Quotes shown in the header, one picked at startup
var Quotes = []string{
	"Small steps every day lead to big results",
	"The expert in anything was once a beginner",
	"Success is the sum of small efforts repeated day in and day out",
	"Don't watch the clock; do what it does. Keep going",
	"The only way to do great work is to love what you do",
	"Your limitation—it's only your imagination",
	"Education is the most powerful weapon you can use to change the world",
}

// RandomQuote picks a quote uniformly. A nil r uses the global source.
func RandomQuote(r *rand.Rand) string {
	if r == nil {
		return Quotes[rand.IntN(len(Quotes))]
	}
	return Quotes[r.IntN(len(Quotes))]
}
