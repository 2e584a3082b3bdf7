package messages

import (
	"errors"

	"tradingcore/internal/core/domain/model/identifiers"
	"tradingcore/internal/core/domain/model/kernel"
	"tradingcore/internal/pkg/guard"
)

// ErrDataRequestIsNotConstructed is returned when validating a zero-value DataRequest.
var ErrDataRequestIsNotConstructed = errors.New(
	"DataRequest must be created via NewDataRequest constructor",
)

// DataRequest represents a request for data addressed to a data client.
// It is identified by its own request GUID and carries a correlation GUID
// linking it to the issuing workflow.
//
// Example:
//
//	requestID := kernel.NewGUID()
//	correlationID := kernel.NewGUID()
//	clientID, _ := identifiers.NewClientID("BINANCE")
//
//	request, err := messages.NewDataRequest(requestID, correlationID, clientID)
//	if err != nil {
//	    return fmt.Errorf("invalid data request: %w", err)
//	}
type DataRequest struct { //nolint:recvcheck //using for validation
	requestID     kernel.GUID
	correlationID kernel.GUID
	clientID      identifiers.ClientID

	guard guard.ConstructorGuard
}

// NewDataRequest creates a data request addressed to the given client.
// Validates that both GUIDs and the client identifier are properly
// constructed. Returns an error if any validation fails.
func NewDataRequest(
	requestID kernel.GUID,
	correlationID kernel.GUID,
	clientID identifiers.ClientID,
) (DataRequest, error) {
	request := DataRequest{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		request.setRequestID(requestID),
		request.setCorrelationID(correlationID),
		request.setClientID(clientID),
	); err != nil {
		return DataRequest{}, err
	}

	return request, nil
}

// Validate ensures the request was created through the constructor.
// Returns ErrDataRequestIsNotConstructed if validation fails.
func (r DataRequest) Validate() error {
	return r.guard.Validate(ErrDataRequestIsNotConstructed)
}

// RequestID returns the unique identifier of this request.
func (r DataRequest) RequestID() kernel.GUID {
	return r.requestID
}

// CorrelationID returns the identifier of the workflow that issued the request.
func (r DataRequest) CorrelationID() kernel.GUID {
	return r.correlationID
}

// ClientID returns the data client the request is addressed to.
func (r DataRequest) ClientID() identifiers.ClientID {
	return r.clientID
}

func (r *DataRequest) setRequestID(requestID kernel.GUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	r.requestID = requestID
	return nil
}

func (r *DataRequest) setCorrelationID(correlationID kernel.GUID) error {
	if err := correlationID.Validate(); err != nil {
		return err
	}

	r.correlationID = correlationID
	return nil
}

func (r *DataRequest) setClientID(clientID identifiers.ClientID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	r.clientID = clientID
	return nil
}
