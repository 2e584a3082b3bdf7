// Package ports defines the contracts between the trading core's domain layer
// and infrastructure adapters. These interfaces establish the dependency
// inversion boundary: the domain depends on the contract, adapters supply the
// implementation.
package ports

import (
	"context"

	"tradingcore/internal/core/domain/model/identifiers"
	"tradingcore/internal/core/domain/model/kernel"
	"tradingcore/internal/core/domain/model/messages"
)

// DataCache defines the caching contract for data requests and responses.
// Implementations index messages by their GUID identity and by the client
// identifier, and bound their retention by capacity, evicting the oldest
// entries first.
type DataCache interface {
	// AddRequest stores a data request.
	// The request must be valid and not already cached.
	AddRequest(ctx context.Context, request messages.DataRequest) error

	// AddResponse stores a data response and indexes it by its correlation GUID.
	// The response must be valid and not already cached.
	AddResponse(ctx context.Context, response messages.DataResponse) error

	// Request retrieves a cached request by its request GUID.
	// Returns ObjectNotFoundError if the request is not cached.
	Request(ctx context.Context, requestID kernel.GUID) (messages.DataRequest, error)

	// Response retrieves a cached response by its response GUID.
	// Returns ObjectNotFoundError if the response is not cached.
	Response(ctx context.Context, responseID kernel.GUID) (messages.DataResponse, error)

	// CorrelatedResponse retrieves the response answering the given request,
	// i.e. the cached response whose correlation GUID equals requestID.
	// Returns ObjectNotFoundError if no such response is cached.
	CorrelatedResponse(ctx context.Context, requestID kernel.GUID) (messages.DataResponse, error)

	// RequestsForClient retrieves all cached requests addressed to the given
	// client, oldest first.
	RequestsForClient(ctx context.Context, clientID identifiers.ClientID) ([]messages.DataRequest, error)

	// RequestCount returns the number of cached requests.
	RequestCount(ctx context.Context) (int, error)

	// ResponseCount returns the number of cached responses.
	ResponseCount(ctx context.Context) (int, error)

	// Reset removes every cached request and response and clears all indexes.
	Reset(ctx context.Context) error
}
