package kernel_test

import (
	"encoding/json"
	"testing"

	"mealbox/internal/core/domain/model/kernel"
	"mealbox/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleUUID = "550e8400-e29b-41d4-a716-446655440000"

func TestNewUUID(t *testing.T) {
	t.Run("should create a valid random UUID", func(t *testing.T) {
		id := kernel.NewUUID()

		require.NoError(t, id.Validate())
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", id.String())
	})

	t.Run("should create unique UUIDs", func(t *testing.T) {
		assert.False(t, kernel.NewUUID().IsEqual(kernel.NewUUID()))
	})
}

func TestUUIDFromString(t *testing.T) {
	t.Run("should accept the textual forms of uuid.Parse", func(t *testing.T) {
		for _, input := range []string{
			sampleUUID,
			"{550e8400-e29b-41d4-a716-446655440000}",
			"urn:uuid:550e8400-e29b-41d4-a716-446655440000",
			"550e8400e29b41d4a716446655440000",
		} {
			id, err := kernel.UUIDFromString(input)
			require.NoError(t, err, input)
			assert.Equal(t, sampleUUID, id.String())
		}
	})

	t.Run("should reject malformed input as invalid value", func(t *testing.T) {
		for _, input := range []string{"", "not-a-uuid", "550e8400-e29b-41d4-a716", "zzze8400-e29b-41d4-a716-446655440000"} {
			_, err := kernel.UUIDFromString(input)
			require.Error(t, err, input)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})

	t.Run("should reject the nil UUID", func(t *testing.T) {
		_, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("should round trip through Bytes", func(t *testing.T) {
		id := kernel.MustUUIDFromString(sampleUUID)
		raw := id.Bytes()

		restored, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, id.IsEqual(restored))
	})

	t.Run("should reject short input", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x55, 0x0e, 0x84})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject nil bytes", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestUUID_Validate(t *testing.T) {
	var zero kernel.UUID
	assert.Equal(t, kernel.ErrUUIDIsNotConstructed, zero.Validate())
}

func TestMustUUIDFromString_PanicsOnInvalidInput(t *testing.T) {
	assert.Panics(t, func() { kernel.MustUUIDFromString("nope") })
}

func TestUUID_JSON(t *testing.T) {
	type payload struct {
		ID kernel.UUID `json:"id"`
	}

	data, err := json.Marshal(payload{ID: kernel.MustUUIDFromString(sampleUUID)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"550e8400-e29b-41d4-a716-446655440000"}`, string(data))

	var decoded payload
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, sampleUUID, decoded.ID.String())

	require.Error(t, json.Unmarshal([]byte(`{"id":"bad"}`), &decoded))
}
