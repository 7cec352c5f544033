package petstoretests

import (
	"strconv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func DoEndToEndTests(t *T) {
	t.Run("create, get, delete", func(t *T) {
		created, err := t.petstore.CreatePet(fixturePet)
		require.NoError(t, err)
		t.RequireStatus(created, 200)
		t.RequireFields(created, "id", "name")

		id := strconv.FormatInt(created.Field("id").Int(), 10)

		fetched, err := t.petstore.GetPet(id)
		require.NoError(t, err)
		t.RequireStatus(fetched, 200)
		t.RequireFields(fetched, "id", "name")
		assert.Equal(t, created.Field("id").Int(), fetched.Field("id").Int(),
			"get returned a different pet than was created")

		deleted, err := t.petstore.DeletePet(id)
		require.NoError(t, err)
		t.RequireStatus(deleted, 204, 200)
	})
}
