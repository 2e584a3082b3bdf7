// Package datacache provides the in-memory implementation of the
// ports.DataCache contract. Requests and responses are indexed by their GUID
// identity, by client, and by correlation GUID; retention is bounded by the
// configured capacities, evicting the oldest entries first.
package datacache

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"tradingcore/internal/core/domain/model/identifiers"
	"tradingcore/internal/core/domain/model/kernel"
	"tradingcore/internal/core/domain/model/messages"
	"tradingcore/internal/core/ports"
	"tradingcore/internal/pkg/errs"
)

var _ ports.DataCache = (*Repository)(nil)

// Repository is a bounded, concurrency-safe in-memory data cache.
// All exported methods are safe for concurrent use; the cached message values
// are immutable, so lookups hand out copies without defensive cloning.
type Repository struct {
	config Config
	logger *slog.Logger

	mu sync.RWMutex

	requests     map[kernel.GUID]messages.DataRequest
	requestOrder []kernel.GUID

	responses     map[kernel.GUID]messages.DataResponse
	responseOrder []kernel.GUID

	// clientRequests indexes request GUIDs by the client they address.
	clientRequests map[identifiers.ClientID]map[kernel.GUID]struct{}

	// responseForCorrelation maps a correlation GUID to the GUID of the
	// response carrying it. The latest response for a correlation wins.
	responseForCorrelation map[kernel.GUID]kernel.GUID
}

// NewRepository creates an in-memory data cache with the given configuration.
// Returns an error if the configuration is not constructed or the logger is nil.
func NewRepository(config Config, logger *slog.Logger) (*Repository, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	repository := &Repository{
		config: config,
		logger: logger.With("component", "datacache", "trader_id", config.TraderID().String()),
	}
	repository.resetLocked()

	repository.logger.Debug("cache initialized",
		"request_capacity", config.RequestCapacity(),
		"response_capacity", config.ResponseCapacity())

	return repository, nil
}

// AddRequest stores a data request, evicting the oldest cached request when
// the configured capacity is reached. Rejects invalid and duplicate requests.
func (r *Repository) AddRequest(_ context.Context, request messages.DataRequest) error {
	if err := request.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	requestID := request.RequestID()
	if _, exists := r.requests[requestID]; exists {
		return errs.NewValueIsInvalidError(
			fmt.Sprintf("request %s is already cached", requestID))
	}

	if len(r.requestOrder) >= r.config.RequestCapacity() {
		r.evictOldestRequestLocked()
	}

	r.requests[requestID] = request
	r.requestOrder = append(r.requestOrder, requestID)

	clientID := request.ClientID()
	if _, ok := r.clientRequests[clientID]; !ok {
		r.clientRequests[clientID] = make(map[kernel.GUID]struct{})
	}
	r.clientRequests[clientID][requestID] = struct{}{}

	r.logger.Debug("added request",
		"request_id", requestID.String(),
		"client_id", clientID.String())

	return nil
}

// AddResponse stores a data response, evicting the oldest cached response
// when the configured capacity is reached. Rejects invalid and duplicate
// responses. The response is additionally indexed by its correlation GUID;
// when several responses carry the same correlation GUID, the latest wins.
func (r *Repository) AddResponse(_ context.Context, response messages.DataResponse) error {
	if err := response.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	responseID := response.ResponseID()
	if _, exists := r.responses[responseID]; exists {
		return errs.NewValueIsInvalidError(
			fmt.Sprintf("response %s is already cached", responseID))
	}

	if len(r.responseOrder) >= r.config.ResponseCapacity() {
		r.evictOldestResponseLocked()
	}

	r.responses[responseID] = response
	r.responseOrder = append(r.responseOrder, responseID)
	r.responseForCorrelation[response.CorrelationID()] = responseID

	r.logger.Debug("added response",
		"response_id", responseID.String(),
		"correlation_id", response.CorrelationID().String(),
		"client_id", response.ClientID().String())

	return nil
}

// Request retrieves a cached request by its request GUID.
func (r *Repository) Request(_ context.Context, requestID kernel.GUID) (messages.DataRequest, error) {
	if err := requestID.Validate(); err != nil {
		return messages.DataRequest{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	request, ok := r.requests[requestID]
	if !ok {
		return messages.DataRequest{}, errs.NewObjectNotFoundError("requestId", requestID.String())
	}

	return request, nil
}

// Response retrieves a cached response by its response GUID.
func (r *Repository) Response(_ context.Context, responseID kernel.GUID) (messages.DataResponse, error) {
	if err := responseID.Validate(); err != nil {
		return messages.DataResponse{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	response, ok := r.responses[responseID]
	if !ok {
		return messages.DataResponse{}, errs.NewObjectNotFoundError("responseId", responseID.String())
	}

	return response, nil
}

// CorrelatedResponse retrieves the cached response whose correlation GUID
// equals the given request GUID.
func (r *Repository) CorrelatedResponse(_ context.Context, requestID kernel.GUID) (messages.DataResponse, error) {
	if err := requestID.Validate(); err != nil {
		return messages.DataResponse{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	responseID, ok := r.responseForCorrelation[requestID]
	if !ok {
		return messages.DataResponse{}, errs.NewObjectNotFoundError("correlationId", requestID.String())
	}

	return r.responses[responseID], nil
}

// RequestsForClient retrieves all cached requests addressed to the given
// client, oldest first.
func (r *Repository) RequestsForClient(
	_ context.Context, clientID identifiers.ClientID,
) ([]messages.DataRequest, error) {
	if err := clientID.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	ids, ok := r.clientRequests[clientID]
	if !ok {
		return nil, nil
	}

	requests := make([]messages.DataRequest, 0, len(ids))
	for _, requestID := range r.requestOrder {
		if _, addressed := ids[requestID]; addressed {
			requests = append(requests, r.requests[requestID])
		}
	}

	return requests, nil
}

// RequestCount returns the number of cached requests.
func (r *Repository) RequestCount(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.requests), nil
}

// ResponseCount returns the number of cached responses.
func (r *Repository) ResponseCount(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.responses), nil
}

// Reset removes every cached request and response and clears all indexes.
func (r *Repository) Reset(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.resetLocked()
	r.logger.Info("cache reset")

	return nil
}

func (r *Repository) resetLocked() {
	r.requests = make(map[kernel.GUID]messages.DataRequest)
	r.requestOrder = nil
	r.responses = make(map[kernel.GUID]messages.DataResponse)
	r.responseOrder = nil
	r.clientRequests = make(map[identifiers.ClientID]map[kernel.GUID]struct{})
	r.responseForCorrelation = make(map[kernel.GUID]kernel.GUID)
}

func (r *Repository) evictOldestRequestLocked() {
	requestID := r.requestOrder[0]
	r.requestOrder = r.requestOrder[1:]

	request := r.requests[requestID]
	delete(r.requests, requestID)

	clientID := request.ClientID()
	if ids, ok := r.clientRequests[clientID]; ok {
		delete(ids, requestID)
		if len(ids) == 0 {
			delete(r.clientRequests, clientID)
		}
	}

	r.logger.Debug("evicted request", "request_id", requestID.String())
}

func (r *Repository) evictOldestResponseLocked() {
	responseID := r.responseOrder[0]
	r.responseOrder = r.responseOrder[1:]

	response := r.responses[responseID]
	delete(r.responses, responseID)

	// Drop the correlation entry only if it still points at the evicted
	// response; a later response may have taken over the correlation.
	if current, ok := r.responseForCorrelation[response.CorrelationID()]; ok && current == responseID {
		delete(r.responseForCorrelation, response.CorrelationID())
	}

	r.logger.Debug("evicted response", "response_id", responseID.String())
}
