package datacache

import (
	"errors"

	"tradingcore/internal/core/domain/model/identifiers"
	"tradingcore/internal/pkg/errs"
	"tradingcore/internal/pkg/guard"
)

const (
	// DefaultRequestCapacity is the default maximum number of cached requests.
	DefaultRequestCapacity = 10_000
	// DefaultResponseCapacity is the default maximum number of cached responses.
	DefaultResponseCapacity = 10_000

	// maxCapacity bounds the memory a single cache may retain.
	maxCapacity = 1_000_000
)

// ErrConfigIsNotConstructed is returned when validating a zero-value Config.
var ErrConfigIsNotConstructed = errors.New(
	"Config must be created via NewConfig or DefaultConfig constructors",
)

// Config holds the settings of an in-memory data cache: the owning trader
// (used as the cache's log prefix) and the retention capacities for requests
// and responses.
type Config struct { //nolint:recvcheck //using for validation
	traderID         identifiers.TraderID
	requestCapacity  int
	responseCapacity int

	guard guard.ConstructorGuard
}

// NewConfig creates a cache configuration.
// Both capacities must be in [1, maxCapacity]. Returns an error if the trader
// identifier is not constructed or a capacity is out of range.
func NewConfig(traderID identifiers.TraderID, requestCapacity int, responseCapacity int) (Config, error) {
	config := Config{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		config.setTraderID(traderID),
		config.setRequestCapacity(requestCapacity),
		config.setResponseCapacity(responseCapacity),
	); err != nil {
		return Config{}, err
	}

	return config, nil
}

// DefaultConfig creates a configuration with the default capacities.
func DefaultConfig(traderID identifiers.TraderID) (Config, error) {
	return NewConfig(traderID, DefaultRequestCapacity, DefaultResponseCapacity)
}

// Validate ensures the configuration was created through a constructor.
func (c Config) Validate() error {
	return c.guard.Validate(ErrConfigIsNotConstructed)
}

// TraderID returns the owning trader identifier.
func (c Config) TraderID() identifiers.TraderID {
	return c.traderID
}

// RequestCapacity returns the maximum number of cached requests.
func (c Config) RequestCapacity() int {
	return c.requestCapacity
}

// ResponseCapacity returns the maximum number of cached responses.
func (c Config) ResponseCapacity() int {
	return c.responseCapacity
}

func (c *Config) setTraderID(traderID identifiers.TraderID) error {
	if err := traderID.Validate(); err != nil {
		return err
	}

	c.traderID = traderID
	return nil
}

func (c *Config) setRequestCapacity(requestCapacity int) error {
	if requestCapacity < 1 || requestCapacity > maxCapacity {
		return errs.NewValueIsOutOfRangeError("requestCapacity", requestCapacity, 1, maxCapacity)
	}

	c.requestCapacity = requestCapacity
	return nil
}

func (c *Config) setResponseCapacity(responseCapacity int) error {
	if responseCapacity < 1 || responseCapacity > maxCapacity {
		return errs.NewValueIsOutOfRangeError("responseCapacity", responseCapacity, 1, maxCapacity)
	}

	c.responseCapacity = responseCapacity
	return nil
}
