package petstoretests

import (
	"github.com/stretchr/testify/require"
)

func DoCreationTests(t *T) {
	t.Run("valid payload", func(t *T) {
		resp, err := t.petstore.CreatePet(fixturePet)
		require.NoError(t, err)
		t.RequireStatus(resp, 200)
		t.RequireFields(resp, "id", "name")
		t.RequireIntegerField(resp, "id")
	})

	// The service under test rejects malformed creation payloads with 404
	// rather than a validation error. That is the contract as it stands, so
	// it is what we assert.
	t.Run("missing required name", func(t *T) {
		resp, err := t.petstore.CreatePet(petWithoutName)
		require.NoError(t, err)
		t.RequireStatus(resp, 404)
	})

	t.Run("empty payload", func(t *T) {
		resp, err := t.petstore.CreatePetRaw([]byte(`{}`))
		require.NoError(t, err)
		t.RequireStatus(resp, 404)
	})
}
