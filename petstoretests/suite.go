package petstoretests

import (
	"github.com/petstore-contrib/petstore-contract-tests/client"
	"github.com/petstore-contrib/petstore-contract-tests/framework"
)

func RunTestSuite(
	petstore *client.PetstoreClient,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := newTestScope(c, petstore)

		t.Run("listing", DoListingTests)
		t.Run("creation", DoCreationTests)
		t.Run("retrieval", DoRetrievalTests)
		t.Run("deletion", DoDeletionTests)
		t.Run("end to end", DoEndToEndTests)
	})
}
