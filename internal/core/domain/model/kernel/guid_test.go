package kernel_test

import (
	"testing"

	"tradingcore/internal/core/domain/model/kernel"
	"tradingcore/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGUID(t *testing.T) {
	t.Run("should wrap a freshly generated value", func(t *testing.T) {
		id := kernel.NewGUID()

		assert.NotEmpty(t, id.String())
		assert.NoError(t, id.Validate())
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", id.String())
	})

	t.Run("independently generated values are not equal", func(t *testing.T) {
		guid1 := kernel.NewGUID()
		guid2 := kernel.NewGUID()

		assert.False(t, guid1.IsEqual(guid2))
		assert.NotEqual(t, guid1.String(), guid2.String())
	})
}

func TestGUIDFrom(t *testing.T) {
	t.Run("wraps an already-generated value", func(t *testing.T) {
		value := uuid.New()

		guid1 := kernel.GUIDFrom(value)
		guid2 := kernel.GUIDFrom(value)

		assert.True(t, guid1.IsEqual(guid2))
		assert.Equal(t, value, guid1.UUID())
		assert.NoError(t, guid1.Validate())
	})

	t.Run("nil value fails validation", func(t *testing.T) {
		guid := kernel.GUIDFrom(uuid.Nil)

		err := guid.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrGUIDIsNotConstructed, err)
	})
}

func TestGUIDFromString(t *testing.T) {
	validGUID := "550e8400-e29b-41d4-a716-446655440000"

	t.Run("should create GUID from canonical dashed form", func(t *testing.T) {
		id, err := kernel.GUIDFromString(validGUID)

		require.NoError(t, err)
		assert.Equal(t, validGUID, id.String())
		assert.NoError(t, id.Validate())
	})

	t.Run("should accept 32 hex digits without dashes", func(t *testing.T) {
		id, err := kernel.GUIDFromString("550e8400e29b41d4a716446655440000")

		require.NoError(t, err)
		assert.Equal(t, validGUID, id.String())
	})

	t.Run("should return error for malformed input", func(t *testing.T) {
		tests := []string{
			"",
			"not-a-guid",
			"550e8400-e29b-41d4-a716",
			"550e8400-e29b-41d4-a716-446655440000-extra",
			"zzze8400-e29b-41d4-a716-446655440000",
			"550e8400-e29b-41d4-a716-44665544000g",
		}

		for _, input := range tests {
			_, err := kernel.GUIDFromString(input)

			require.Error(t, err, "expected error for input: %s", input)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should reject the nil GUID text", func(t *testing.T) {
		_, err := kernel.GUIDFromString("00000000-0000-0000-0000-000000000000")

		require.Error(t, err)
		assert.Equal(t, kernel.ErrGUIDIsNotConstructed, err)
	})
}

func TestGUIDFromBytes(t *testing.T) {
	validBytes := []byte{
		0x55, 0x0e, 0x84, 0x00, 0xe2, 0x9b, 0x41, 0xd4,
		0xa7, 0x16, 0x44, 0x66, 0x55, 0x44, 0x00, 0x00,
	}

	t.Run("should create GUID from 16 bytes", func(t *testing.T) {
		id, err := kernel.GUIDFromBytes(validBytes)

		require.NoError(t, err)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
		assert.NoError(t, id.Validate())
	})

	t.Run("should reject wrong lengths", func(t *testing.T) {
		for _, b := range [][]byte{nil, {}, validBytes[:15], append(validBytes, 0x01)} {
			_, err := kernel.GUIDFromBytes(b)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should reject all-zero bytes", func(t *testing.T) {
		_, err := kernel.GUIDFromBytes(make([]byte, 16))

		require.Error(t, err)
		assert.Equal(t, kernel.ErrGUIDIsNotConstructed, err)
	})
}

func TestGUID_IsEqual(t *testing.T) {
	t.Run("same underlying value is equal", func(t *testing.T) {
		value := uuid.New()

		guid1 := kernel.GUIDFrom(value)
		guid2 := kernel.GUIDFrom(value)

		assert.True(t, guid1.IsEqual(guid2))
		assert.True(t, guid2.IsEqual(guid1))
	})

	t.Run("different underlying values are not equal", func(t *testing.T) {
		guid1 := kernel.GUIDFrom(uuid.New())
		guid2 := kernel.GUIDFrom(uuid.New())

		assert.False(t, guid1.IsEqual(guid2))
	})

	t.Run("usable as a map key", func(t *testing.T) {
		value := uuid.New()
		key1 := kernel.GUIDFrom(value)
		key2 := kernel.GUIDFrom(value)

		index := map[kernel.GUID]string{key1: "hit"}

		assert.Equal(t, "hit", index[key2])
	})
}

func TestGUID_Hash(t *testing.T) {
	t.Run("equal GUIDs hash identically", func(t *testing.T) {
		value := uuid.New()

		guid1 := kernel.GUIDFrom(value)
		guid2 := kernel.GUIDFrom(value)

		assert.Equal(t, guid1.Hash(), guid2.Hash())
	})

	t.Run("distinct GUIDs hash differently", func(t *testing.T) {
		guid1 := kernel.NewGUID()
		guid2 := kernel.NewGUID()

		assert.NotEqual(t, guid1.Hash(), guid2.Hash())
	})

	t.Run("is deterministic", func(t *testing.T) {
		guid := kernel.NewGUID()

		assert.Equal(t, guid.Hash(), guid.Hash())
	})
}

func TestGUID_RoundTrip(t *testing.T) {
	t.Run("canonical rendering round-trips through GUIDFromString", func(t *testing.T) {
		original := kernel.NewGUID()

		rebuilt, err := kernel.GUIDFromString(original.String())

		require.NoError(t, err)
		assert.True(t, original.IsEqual(rebuilt))
		assert.Equal(t, original.String(), rebuilt.String())
	})
}

func TestGUID_Debug(t *testing.T) {
	t.Run("renders a type-tagged string", func(t *testing.T) {
		id, err := kernel.GUIDFromString("550e8400-e29b-41d4-a716-446655440000")
		require.NoError(t, err)

		assert.Equal(t, "GUID(550e8400-e29b-41d4-a716-446655440000)", id.Debug())
	})
}
