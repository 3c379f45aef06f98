// Package assistant is the rule-based chat helper. It matches keywords
// against a static response table; there is no stateful conversation.
package assistant

import "strings"

type rule struct {
	keyword  string
	response string
}

// rules are checked in order; the first keyword contained in the
// utterance wins.
var rules = []rule{
	{"train schedule", "Train schedules can be viewed on our website or mobile app. You can also call our customer service at 1-800-RAIL-INFO for the latest schedule information."},
	{"ticket", "You can purchase tickets online, through our mobile app, at station counters, or from ticket vending machines at all major stations."},
	{"delay", "We apologize for any delays. Real-time train status updates are available on our mobile app and digital displays at stations."},
	{"platform", "Platform information is displayed on the digital boards at the station and announced 20 minutes before arrival. You can also check our mobile app for real-time platform updates."},
	{"wifi", "We provide complimentary WiFi on all our premium trains and at major stations. Connect to 'RailAssist-Free' network and follow the instructions."},
	{"electrical", "For electrical issues like charging ports not working or lights malfunctioning, please alert the train conductor or submit a complaint through our app."},
	{"food", "Food and beverage services are available in the dining car on long-distance trains. Major stations also have food courts and vendors on platforms."},
	{"clean", "If you notice cleanliness issues, please report them to the onboard staff or use the 'Report Cleanliness' feature in our mobile app."},
	{"luggage", "Each passenger is allowed two pieces of luggage (up to 50 pounds each) without additional charges. Extra or overweight luggage will incur fees."},
	{"help", "For immediate assistance, please press the help button located above your seat or contact the train attendant. For emergencies, call our 24/7 helpline at 1-800-RAIL-HELP."},
}

var questionWords = []string{"how", "what", "when", "where", "why"}

const (
	questionFallback = "I can help you with information about train schedules, tickets, platforms, WiFi, food services, and reporting issues. Could you please specify what you need assistance with?"
	defaultFallback  = "I'm here to help with your train journey. You can ask me about schedules, tickets, station facilities, onboard services, or reporting issues."
)

// Respond returns the reply for an utterance. It always returns a
// non-empty answer.
func Respond(utterance string) string {
	lower := strings.ToLower(utterance)

	for _, r := range rules {
		if strings.Contains(lower, r.keyword) {
			return r.response
		}
	}

	for _, w := range questionWords {
		if strings.Contains(lower, w) {
			return questionFallback
		}
	}

	return defaultFallback
}
