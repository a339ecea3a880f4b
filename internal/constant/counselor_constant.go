package constant

const (
	// DefaultChatSessionName is assigned to every newly opened session.
	DefaultChatSessionName = "Career Counseling Session"

	// FixedUnavailableMessage is returned when no LLM provider could be
	// constructed at startup. It is served with a 200 so the chat UI shows
	// it inline instead of an error banner.
	FixedUnavailableMessage = "AI service is not available. Please check your API keys and dependencies."

	// FixedApologyMessage is returned when the provider is configured but a
	// generation attempt fails.
	FixedApologyMessage = "I apologize, but I'm having trouble processing your question. Please try again."
)

// SuggestedQuestions are the canned prompts the chat page offers before the
// user types anything.
var SuggestedQuestions = []string{
	"What are the career options after FSC Pre-Medical?",
	"Which fields have the highest growth potential in healthcare?",
	"How can I transition from medical to business fields?",
	"What are the scope and salary of data science in healthcare?",
}
