package config

import "railassist/backend/internal/models"

// SeedEmergencyContacts is the static emergency directory loaded into the
// database on first start (or via the admin CLI).
var SeedEmergencyContacts = []models.EmergencyContact{
	{
		Name:        "Railway Helpline",
		Role:        "24/7 passenger assistance",
		PhoneNumber: "1-800-RAIL-HELP",
		Department:  DeptGeneralServices,
	},
	{
		Name:        "Security Control Room",
		Role:        "On-board security response",
		PhoneNumber: "1-800-RAIL-SAFE",
		Email:       "security@railassist.example",
		Department:  DeptSafetySecurity,
	},
	{
		Name:        "Medical Emergency Desk",
		Role:        "First aid coordination",
		PhoneNumber: "1-800-RAIL-CARE",
		Department:  DeptSafetySecurity,
	},
	{
		Name:        "Station Master Office",
		Role:        "Station facilities",
		PhoneNumber: "1-800-RAIL-INFO",
		Email:       "stations@railassist.example",
		Department:  DeptGeneralServices,
	},
}

// SeedFAQs is the static FAQ list. Categories deliberately repeat so that
// help pages can group entries.
var SeedFAQs = []models.FAQ{
	{
		Question: "How do I submit a complaint?",
		Answer:   "Log in, open the dashboard and use the New Complaint form. Pick the issue type, describe the problem and tell us where it happened.",
		Category: "Complaints",
	},
	{
		Question: "How long until my complaint is answered?",
		Answer:   "Each department has an expected response window, shown on your complaint thread after submission. Safety issues are picked up within the hour.",
		Category: "Complaints",
	},
	{
		Question: "Can I attach photos to a complaint?",
		Answer:   "Yes. Images, videos and documents can be attached to a complaint after it has been submitted.",
		Category: "Complaints",
	},
	{
		Question: "The on-board WiFi is not working. What should I do?",
		Answer:   "Connect to the 'RailAssist-Free' network and follow the sign-in instructions. If it still fails, submit a WiFi complaint with your coach number.",
		Category: "Connectivity",
	},
	{
		Question: "Who do I call in an emergency?",
		Answer:   "Use the emergency contacts tab, or press the help button above your seat. The 24/7 helpline is 1-800-RAIL-HELP.",
		Category: "Safety",
	},
	{
		Question: "How do I report a safety hazard?",
		Answer:   "Submit a safety complaint or call the Security Control Room directly. Safety reports are routed to Safety & Security immediately.",
		Category: "Safety",
	},
}
