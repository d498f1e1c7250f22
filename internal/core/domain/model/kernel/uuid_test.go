package kernel_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleUUID = "a1b2c3d4-e5f6-4a70-9b8c-d0e1f2a3b4c5"

func TestNewUUID(t *testing.T) {
	t.Run("creates a valid UUID", func(t *testing.T) {
		id := kernel.NewUUID()

		assert.NotEmpty(t, id.String())
		assert.NoError(t, id.Validate())
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", id.String())
	})

	t.Run("creates unique UUIDs", func(t *testing.T) {
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		assert.NotEqual(t, first.String(), second.String())
		assert.False(t, first.IsEqual(second))
	})
}

func TestUUIDFromString(t *testing.T) {
	t.Run("parses the canonical form", func(t *testing.T) {
		id, err := kernel.UUIDFromString(sampleUUID)

		require.NoError(t, err)
		assert.Equal(t, sampleUUID, id.String())
		assert.NoError(t, id.Validate())
	})

	t.Run("parses the braced form", func(t *testing.T) {
		id, err := kernel.UUIDFromString("{" + sampleUUID + "}")

		require.NoError(t, err)
		assert.Equal(t, sampleUUID, id.String())
	})

	t.Run("parses the urn form", func(t *testing.T) {
		id, err := kernel.UUIDFromString("urn:uuid:" + sampleUUID)

		require.NoError(t, err)
		assert.Equal(t, sampleUUID, id.String())
	})

	t.Run("parses the hyphenless form", func(t *testing.T) {
		id, err := kernel.UUIDFromString("a1b2c3d4e5f64a709b8cd0e1f2a3b4c5")

		require.NoError(t, err)
		assert.Equal(t, sampleUUID, id.String())
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		inputs := []string{
			"",
			"not-a-uuid",
			"a1b2c3d4-e5f6-4a70-9b8c",
			sampleUUID + "-extra",
			"zzzzc3d4-e5f6-4a70-9b8c-d0e1f2a3b4c5",
			"a1b2c3d4-e5f6-4a70-9b8c-d0e1f2a3b4cg",
		}

		for _, input := range inputs {
			_, err := kernel.UUIDFromString(input)
			assert.Error(t, err, "expected error for input: %s", input)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})
}

func TestUUIDFromBytes(t *testing.T) {
	validBytes := []byte{
		0xa1, 0xb2, 0xc3, 0xd4, 0xe5, 0xf6, 0x4a, 0x70,
		0x9b, 0x8c, 0xd0, 0xe1, 0xf2, 0xa3, 0xb4, 0xc5,
	}

	t.Run("round-trips through bytes", func(t *testing.T) {
		id, err := kernel.UUIDFromBytes(validBytes)

		require.NoError(t, err)
		assert.Equal(t, sampleUUID, id.String())
		assert.NoError(t, id.Validate())
	})

	t.Run("rejects a truncated slice", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0xa1, 0xb2, 0xc3})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})

	t.Run("rejects the all-zero UUID", func(t *testing.T) {
		zeroBytes := make([]byte, 16)
		_, err := kernel.UUIDFromBytes(zeroBytes)

		assert.Error(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestUUID_String(t *testing.T) {
	t.Run("renders the canonical form", func(t *testing.T) {
		str := kernel.NewUUID().String()

		assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, str)
	})

	t.Run("is stable across calls", func(t *testing.T) {
		id, _ := kernel.UUIDFromString(sampleUUID)

		assert.Equal(t, sampleUUID, id.String())
		assert.Equal(t, id.String(), id.String())
	})
}

func TestUUID_Bytes(t *testing.T) {
	t.Run("exposes the underlying uuid.UUID", func(t *testing.T) {
		id := kernel.NewUUID()
		bytes := id.Bytes()

		assert.IsType(t, uuid.UUID{}, bytes)
		assert.Equal(t, id.String(), bytes.String())
	})
}

func TestUUID_IsEqual(t *testing.T) {
	t.Run("equal for the same value", func(t *testing.T) {
		first, _ := kernel.UUIDFromString(sampleUUID)
		second, _ := kernel.UUIDFromString(sampleUUID)

		assert.True(t, first.IsEqual(second))
		assert.True(t, second.IsEqual(first))
	})

	t.Run("unequal for different values", func(t *testing.T) {
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		assert.False(t, first.IsEqual(second))
		assert.False(t, second.IsEqual(first))
	})

	t.Run("zero values compare equal to each other only", func(t *testing.T) {
		var first kernel.UUID
		var second kernel.UUID
		third := kernel.NewUUID()

		assert.True(t, first.IsEqual(second))
		assert.False(t, first.IsEqual(third))
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("accepts a constructed UUID", func(t *testing.T) {
		assert.NoError(t, kernel.NewUUID().Validate())
	})

	t.Run("rejects the zero value", func(t *testing.T) {
		var id kernel.UUID

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	})

	t.Run("rejects the parsed all-zero UUID", func(t *testing.T) {
		id, _ := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	})
}

func TestUUID_UsageInStruct(t *testing.T) {
	type PayoutRequest struct {
		ID kernel.UUID
	}

	t.Run("works as a struct field", func(t *testing.T) {
		request := PayoutRequest{ID: kernel.NewUUID()}

		assert.NoError(t, request.ID.Validate())
		assert.NotEmpty(t, request.ID.String())
	})

	t.Run("uninitialized field fails validation", func(t *testing.T) {
		var request PayoutRequest
		assert.Error(t, request.ID.Validate())
	})
}

func TestUUID_Immutability(t *testing.T) {
	t.Run("mutating the Bytes copy leaves the value intact", func(t *testing.T) {
		original := kernel.NewUUID()
		originalString := original.String()

		bytes := original.Bytes()
		for i := range bytes {
			bytes[i] = 0xFF
		}

		assert.Equal(t, originalString, original.String())
		assert.NoError(t, original.Validate())
		assert.NotEqual(t, original.String(), uuid.UUID(bytes).String())
	})
}
