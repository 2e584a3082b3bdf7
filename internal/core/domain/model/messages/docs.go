// Package messages defines the immutable data-message value objects exchanged
// between data clients and the trading core.
//
// A DataRequest carries its own request GUID plus a correlation GUID linking
// it to the workflow that issued it. A DataResponse answers a request: its
// correlation GUID equals the request's GUID, and it carries an opaque
// payload. Both types are constructed through validating constructors and are
// immutable afterwards.
package messages
