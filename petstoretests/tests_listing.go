package petstoretests

import (
	"github.com/petstore-contrib/petstore-contract-tests/servicedef"

	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func DoListingTests(t *T) {
	t.Run("all pets", func(t *T) {
		resp, err := t.petstore.ListPets(servicedef.ListPetsParams{})
		require.NoError(t, err)
		t.RequireStatus(resp, 200)
		t.RequireJSONArray(resp)
	})

	t.Run("with tag and limit filters", func(t *T) {
		params := servicedef.ListPetsParams{
			Tags:  []string{"dog"},
			Limit: ldvalue.NewOptionalInt(5),
		}
		resp, err := t.petstore.ListPets(params)
		require.NoError(t, err)
		t.RequireStatus(resp, 200)
		t.RequireJSONArray(resp)
	})
}
