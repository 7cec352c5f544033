package petstoretests

import (
	"strconv"

	"github.com/stretchr/testify/require"
)

func DoRetrievalTests(t *T) {
	t.Run("by valid id", func(t *T) {
		petID := t.RequirePet()
		resp, err := t.petstore.GetPet(strconv.FormatInt(petID, 10))
		require.NoError(t, err)
		t.RequireStatus(resp, 200)
		t.RequireFields(resp, "id", "name")
	})

	t.Run("by non-numeric id", func(t *T) {
		resp, err := t.petstore.GetPet("abc")
		require.NoError(t, err)
		t.RequireStatus(resp, 404)
	})

	// A simplified service may not distinguish "not found" from "found
	// empty", so either status is acceptable here.
	t.Run("by nonexistent id", func(t *T) {
		resp, err := t.petstore.GetPet(nonexistentPetID)
		require.NoError(t, err)
		t.RequireStatus(resp, 404, 200)
	})
}
