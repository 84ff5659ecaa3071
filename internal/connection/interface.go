package connection

import "context"

// UseCase defines the business logic interface for the connection domain.
type UseCase interface {
	// Search fetches the connections matching a parsed query and shapes them for display.
	Search(ctx context.Context, input SearchInput) (SearchOutput, error)
}
