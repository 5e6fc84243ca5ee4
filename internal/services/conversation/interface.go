package conversation

import "context"

// Service defines the interface for the conversation engine
type Service interface {
	// HandleIntent interprets an inbound intent against the chat's
	// session and returns the prompt to send back. Domain failures never
	// surface as errors; they come back as re-prompts with an
	// explanation.
	HandleIntent(ctx context.Context, input *HandleIntentInput) (*HandleIntentOutput, error)
}
