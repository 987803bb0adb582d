package assistant

// Canned replies shown at the chat boundary.
const (
	ReadyMessage        = `System ready! Try saying "hello" or type your shopping list.`
	UnrecognizedMessage = "I couldn't identify any specific products in your message. Could you try listing items like 'apples, milk, bread'?\n\nOr try saying 'hello' to start!"
	ApologyMessage      = "Sorry, I encountered an error. Please try again."
	ClearedMessage      = "Results cleared. What else can I help you find?"
	SavedMessage        = "Transaction saved successfully!"
	ChatClearedMessage  = "Chat cleared! Ready for a fresh start!"
	GoodbyeMessage      = "Thank you for using the supermarket assistant! Happy shopping!"

	NothingToSaveMessage  = "No shopping list to save. Please search for items first."
	NothingToPrintMessage = "No shopping list to print."
	NothingToShareMessage = "No shopping list to share."
	CopiedMessage         = "Shopping list copied to clipboard!"
)
