package petstoretests

import (
	"strconv"

	"github.com/stretchr/testify/require"
)

func DoDeletionTests(t *T) {
	t.Run("by valid id", func(t *T) {
		petID := t.RequirePet()
		resp, err := t.petstore.DeletePet(strconv.FormatInt(petID, 10))
		require.NoError(t, err)
		t.RequireStatus(resp, 204, 200)
	})

	t.Run("by non-numeric id", func(t *T) {
		resp, err := t.petstore.DeletePet("invalid")
		require.NoError(t, err)
		t.RequireStatus(resp, 404)
	})

	t.Run("by nonexistent id", func(t *T) {
		resp, err := t.petstore.DeletePet(nonexistentPetID)
		require.NoError(t, err)
		t.RequireStatus(resp, 404, 204, 200)
	})
}
