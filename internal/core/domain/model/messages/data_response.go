package messages

import (
	"errors"

	"tradingcore/internal/core/domain/model/identifiers"
	"tradingcore/internal/core/domain/model/kernel"
	"tradingcore/internal/pkg/errs"
	"tradingcore/internal/pkg/guard"
)

// ErrDataResponseIsNotConstructed is returned when validating a zero-value DataResponse.
var ErrDataResponseIsNotConstructed = errors.New(
	"DataResponse must be created via NewDataResponse constructor",
)

// DataResponse represents a data client's answer to a DataRequest.
// Its correlation GUID equals the GUID of the request it answers, and it
// carries an opaque payload whose concrete type is agreed between the client
// and the consumer.
type DataResponse struct { //nolint:recvcheck //using for validation
	responseID    kernel.GUID
	correlationID kernel.GUID
	clientID      identifiers.ClientID
	data          any

	guard guard.ConstructorGuard
}

// NewDataResponse creates a response carrying the given payload.
// Validates that both GUIDs and the client identifier are properly
// constructed and that the payload is non-nil. Returns an error if any
// validation fails.
func NewDataResponse(
	responseID kernel.GUID,
	correlationID kernel.GUID,
	clientID identifiers.ClientID,
	data any,
) (DataResponse, error) {
	response := DataResponse{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		response.setResponseID(responseID),
		response.setCorrelationID(correlationID),
		response.setClientID(clientID),
		response.setData(data),
	); err != nil {
		return DataResponse{}, err
	}

	return response, nil
}

// Validate ensures the response was created through the constructor.
// Returns ErrDataResponseIsNotConstructed if validation fails.
func (r DataResponse) Validate() error {
	return r.guard.Validate(ErrDataResponseIsNotConstructed)
}

// ResponseID returns the unique identifier of this response.
func (r DataResponse) ResponseID() kernel.GUID {
	return r.responseID
}

// CorrelationID returns the GUID of the request this response answers.
func (r DataResponse) CorrelationID() kernel.GUID {
	return r.correlationID
}

// ClientID returns the data client that produced the response.
func (r DataResponse) ClientID() identifiers.ClientID {
	return r.clientID
}

// Data returns the opaque payload.
func (r DataResponse) Data() any {
	return r.data
}

func (r *DataResponse) setResponseID(responseID kernel.GUID) error {
	if err := responseID.Validate(); err != nil {
		return err
	}

	r.responseID = responseID
	return nil
}

func (r *DataResponse) setCorrelationID(correlationID kernel.GUID) error {
	if err := correlationID.Validate(); err != nil {
		return err
	}

	r.correlationID = correlationID
	return nil
}

func (r *DataResponse) setClientID(clientID identifiers.ClientID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	r.clientID = clientID
	return nil
}

func (r *DataResponse) setData(data any) error {
	if data == nil {
		return errs.NewValueIsRequiredError("data")
	}

	r.data = data
	return nil
}
