package generator

// Fixed vocabularies for synthetic call records.

var CallTypes = []string{"Inbound", "Outbound", "Follow-up", "Escalation", "Callback", "Voicemail"}

var CallOutcomes = []string{"Resolved", "Escalated", "Dropped", "Transferred"}

var Emotions = []string{
	"Neutral", "Confused", "Frustrated", "Angry",
	"Anxious", "Distressed", "Relieved", "Grateful",
}

var CallReasons = []string{
	"Eligibility or Coverage Inquiry",
	"Benefits Access or Card Issues",
	"Claims or Payments",
	"Prior Authorization or Referrals",
	"Provider Enrollment or Credentialing",
	"Member Information Update",
	"Program Education or Guidance",
	"Technical Support or Portal Issues",
	"Complaint or Grievance",
	"General Inquiry or Other",
	"Pharmacy or Prescription Issue",
	"Service Authorization Status",
	"Appeal or Denial Follow-up",
	"Appointment Scheduling or Transportation",
	"Document Submission or Verification",
}

// wordPool feeds short realistic phrases and quotes.
var wordPool = []string{
	"benefits", "card", "stopped", "not", "working", "provider", "enrollment", "update",
	"email", "address", "portal", "issue", "claim", "payment", "denial", "appeal",
	"authorization", "referral", "coverage", "eligibility", "revalidation", "status",
	"Medicaid", "contact", "transportation", "appointment", "document", "submission",
}

var firstNames = []string{
	"Maria", "James", "Keisha", "Daniel", "Sofia", "Marcus",
	"Priya", "Elena", "Victor", "Hannah", "Omar", "Grace",
}

var lastNames = []string{
	"Alvarez", "Brooks", "Chen", "Diaz", "Ellis", "Foster",
	"Garcia", "Hughes", "Iverson", "Jackson", "Kim", "Lopez",
}
