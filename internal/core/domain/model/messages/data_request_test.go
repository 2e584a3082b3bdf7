package messages_test

import (
	"testing"

	"tradingcore/internal/core/domain/model/identifiers"
	"tradingcore/internal/core/domain/model/kernel"
	"tradingcore/internal/core/domain/model/messages"
	"tradingcore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustClientID(t *testing.T, value string) identifiers.ClientID {
	t.Helper()
	clientID, err := identifiers.NewClientID(value)
	require.NoError(t, err)
	return clientID
}

func TestNewDataRequest(t *testing.T) {
	t.Run("should create request with valid fields", func(t *testing.T) {
		requestID := kernel.NewGUID()
		correlationID := kernel.NewGUID()
		clientID := mustClientID(t, "BINANCE")

		request, err := messages.NewDataRequest(requestID, correlationID, clientID)

		require.NoError(t, err)
		assert.NoError(t, request.Validate())
		assert.True(t, requestID.IsEqual(request.RequestID()))
		assert.True(t, correlationID.IsEqual(request.CorrelationID()))
		assert.True(t, clientID.IsEqual(request.ClientID()))
	})

	t.Run("should reject unconstructed request ID", func(t *testing.T) {
		var requestID kernel.GUID

		_, err := messages.NewDataRequest(requestID, kernel.NewGUID(), mustClientID(t, "BINANCE"))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject unconstructed correlation ID", func(t *testing.T) {
		var correlationID kernel.GUID

		_, err := messages.NewDataRequest(kernel.NewGUID(), correlationID, mustClientID(t, "BINANCE"))

		require.Error(t, err)
	})

	t.Run("should reject unconstructed client ID", func(t *testing.T) {
		var clientID identifiers.ClientID

		_, err := messages.NewDataRequest(kernel.NewGUID(), kernel.NewGUID(), clientID)

		require.Error(t, err)
	})

	t.Run("should collect all validation failures", func(t *testing.T) {
		var requestID kernel.GUID
		var clientID identifiers.ClientID

		_, err := messages.NewDataRequest(requestID, kernel.NewGUID(), clientID)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var request messages.DataRequest

		err := request.Validate()

		require.Error(t, err)
		assert.Equal(t, messages.ErrDataRequestIsNotConstructed, err)
	})
}

func TestNewDataResponse(t *testing.T) {
	t.Run("should create response with valid fields", func(t *testing.T) {
		responseID := kernel.NewGUID()
		correlationID := kernel.NewGUID()
		clientID := mustClientID(t, "BINANCE")
		payload := []string{"tick1", "tick2"}

		response, err := messages.NewDataResponse(responseID, correlationID, clientID, payload)

		require.NoError(t, err)
		assert.NoError(t, response.Validate())
		assert.True(t, responseID.IsEqual(response.ResponseID()))
		assert.True(t, correlationID.IsEqual(response.CorrelationID()))
		assert.True(t, clientID.IsEqual(response.ClientID()))
		assert.Equal(t, payload, response.Data())
	})

	t.Run("should reject nil payload", func(t *testing.T) {
		_, err := messages.NewDataResponse(
			kernel.NewGUID(), kernel.NewGUID(), mustClientID(t, "BINANCE"), nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject unconstructed response ID", func(t *testing.T) {
		var responseID kernel.GUID

		_, err := messages.NewDataResponse(
			responseID, kernel.NewGUID(), mustClientID(t, "BINANCE"), "payload")

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var response messages.DataResponse

		err := response.Validate()

		require.Error(t, err)
		assert.Equal(t, messages.ErrDataResponseIsNotConstructed, err)
	})
}

func TestRequestResponseCorrelation(t *testing.T) {
	t.Run("response correlates to request via request GUID", func(t *testing.T) {
		clientID := mustClientID(t, "BINANCE")
		request, err := messages.NewDataRequest(kernel.NewGUID(), kernel.NewGUID(), clientID)
		require.NoError(t, err)

		response, err := messages.NewDataResponse(
			kernel.NewGUID(), request.RequestID(), clientID, "bars")
		require.NoError(t, err)

		assert.True(t, response.CorrelationID().IsEqual(request.RequestID()))
	})
}
