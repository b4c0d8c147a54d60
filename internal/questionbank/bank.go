package questionbank

// #region question

// Question is one entry of the static interview catalog.
type Question struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Help    string   `json:"help,omitempty"`
	Options []string `json:"options,omitempty"`
}

// #endregion

// #region bank

// Bank is the ordered, read-only question catalog. Injected at construction
// so tests can substitute a smaller one.
type Bank struct {
	questions []Question
	byID      map[string]Question
}

// New builds a Bank from an ordered question list.
func New(questions []Question) *Bank {
	byID := make(map[string]Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	return &Bank{questions: questions, byID: byID}
}

// Default returns the built-in interview catalog.
func Default() *Bank {
	return New(defaultQuestions)
}

// Get looks up a question by id.
func (b *Bank) Get(id string) (Question, bool) {
	q, ok := b.byID[id]
	return q, ok
}

// All returns the catalog in declaration order.
func (b *Bank) All() []Question {
	return b.questions
}

// #endregion

// #region catalog

// Well-known question ids. The selector's decision tree and the anti-repeat
// guard reference these directly.
const (
	QServices         = "services"
	QSpecialty        = "specialty"
	QTopJobs          = "top_jobs"
	QJobType          = "job_type"
	QMaterials        = "materials"
	QMaterialsObjects = "materials_objects"
	QWhoFor           = "who_for"
	QLocation         = "location"
	QDescribeBusiness = "describe_business"
)

var defaultQuestions = []Question{
	{
		ID:     QServices,
		Prompt: "What does your business primarily do?",
		Help:   "A sentence or two is plenty. Mention the services customers pay you for.",
		Options: []string{
			"Detailing, ceramic coating, or paint protection",
			"Mechanical repair or maintenance",
			"Home services (HVAC, plumbing, electrical, roofing)",
			"Cleaning",
			"Something else",
		},
	},
	{
		ID:     QSpecialty,
		Prompt: "Do you specialize in anything in particular?",
		Help:   "For example: ceramic coating, European cars, fleet work, restorations.",
	},
	{
		ID:     QTopJobs,
		Prompt: "What are the top three jobs customers hire you for?",
	},
	{
		ID:     QJobType,
		Prompt: "Are your jobs mostly repairs, installations, or recurring maintenance?",
		Options: []string{
			"Repairs",
			"Installations",
			"Recurring maintenance",
			"A mix",
		},
	},
	{
		ID:     QMaterials,
		Prompt: "What materials or equipment do your jobs usually involve?",
		Help:   "For example: ductwork, copper pipe, shingles, breaker panels.",
	},
	{
		ID:     QMaterialsObjects,
		Prompt: "What do you usually work on — vehicles, buildings, or something else?",
		Options: []string{
			"Vehicles",
			"Homes or buildings",
			"Outdoor spaces",
			"Something else",
		},
	},
	{
		ID:     QWhoFor,
		Prompt: "Who are your typical customers?",
		Options: []string{
			"Homeowners",
			"Businesses",
			"Both",
		},
	},
	{
		ID:     QLocation,
		Prompt: "Do you work at your own shop, or at the customer's location?",
		Options: []string{
			"My shop",
			"Customer's location",
			"Both",
		},
	},
	{
		ID:     QDescribeBusiness,
		Prompt: "In one sentence, how would you describe your business to a new customer?",
	},
}

// #endregion

// #region freeform

// Freeform prompts rotate when the decision tree and clarifier are exhausted,
// so the user is never shown the identical fallback twice in a row.
var freeformQuestions = []Question{
	{
		ID:     "freeform_day_to_day",
		Prompt: "Walk me through a typical day on the job. What are you usually doing?",
	},
	{
		ID:     "freeform_recent_job",
		Prompt: "Tell me about the last job you completed. What did it involve?",
	},
	{
		ID:     "freeform_ideal_customer",
		Prompt: "Describe your ideal customer and what they would hire you for.",
	},
}

// Freeform returns the rotation prompt following lastAskedID. If lastAskedID
// is not a freeform id, the first rotation slot is returned.
func Freeform(lastAskedID string) Question {
	for i, q := range freeformQuestions {
		if q.ID == lastAskedID {
			return freeformQuestions[(i+1)%len(freeformQuestions)]
		}
	}
	return freeformQuestions[0]
}

// FreeformIDs returns the rotation ids in order.
func FreeformIDs() []string {
	ids := make([]string, len(freeformQuestions))
	for i, q := range freeformQuestions {
		ids[i] = q.ID
	}
	return ids
}

// #endregion
