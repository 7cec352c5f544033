package petstoretests

import (
	"github.com/petstore-contrib/petstore-contract-tests/client"
	"github.com/petstore-contrib/petstore-contract-tests/framework"
	"github.com/petstore-contrib/petstore-contract-tests/servicedef"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

// fixturePet is the payload used whenever a test needs a pet to exist.
var fixturePet = servicedef.NewPetParams{Name: "Fluffy", Tag: "dog"}

// petWithoutName deliberately omits the required name field.
var petWithoutName = servicedef.NewPetParams{Tag: "dog"}

// defaultFixturePetID is used when a create response carries no id field,
// which can happen with simplified stub services.
const defaultFixturePetID = 1

// nonexistentPetID is well-formed but assumed not to identify any pet.
const nonexistentPetID = "999999"

// T represents a test or subtest in the pet store contract suite.
//
// It implements the same basic functionality as Go's testing.T, but in an
// environment that is outside of the Go test runner, with extra features such
// as per-test debug logging provided by the lower-level framework package.
//
// To make test assertions, you can use the assert and require packages,
// passing the *T as if it were a *testing.T. There are also domain assertions
// built in (RequireStatus, RequireJSONArray, and so on) to keep boilerplate
// out of the tests themselves.
type T struct {
	context  *framework.Context
	petstore *client.PetstoreClient
}

func newTestScope(context *framework.Context, petstore *client.PetstoreClient) *T {
	return &T{
		context:  context,
		petstore: petstore.WithLogger(context.DebugLogger()),
	}
}

// Errorf is called by assertions to log a test failure. It does not cause an
// immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately
// exit. The methods in the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a subtest. This is equivalent to the Run method of testing.T.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(newTestScope(c, t.petstore))
	})
}

// Debug logs some debug output for the test. The output will be passed to the
// test logger at the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// RequirePet creates a fresh pet server-side and returns its id, failing the
// test immediately if the creation call does not succeed. Every call creates
// a new pet, so tests never share a server-side resource.
//
// If the create response has no id field the default id is returned instead;
// a simplified service may not echo the record back.
func (t *T) RequirePet() int64 {
	resp, err := t.petstore.CreatePet(fixturePet)
	require.NoError(t, err)
	t.RequireSuccess(resp)

	id := resp.Field("id")
	if !id.Exists() {
		t.Debug("create response had no id field, falling back to id %d", defaultFixturePetID)
		return defaultFixturePetID
	}
	t.RequireIntegerField(resp, "id")
	return id.Int()
}

// RequireStatus fails the test immediately unless the response status is one
// of the acceptable codes.
func (t *T) RequireStatus(resp *client.Response, acceptable ...int) {
	for _, code := range acceptable {
		if resp.Status == code {
			return
		}
	}
	require.Fail(t, "unexpected response status",
		"expected status in %v but got %d (body: %s)", acceptable, resp.Status, string(resp.Body))
}

// RequireSuccess fails the test immediately unless the response status is in
// the 2xx range.
func (t *T) RequireSuccess(resp *client.Response) {
	if resp.Status < 200 || resp.Status >= 300 {
		require.Fail(t, "request did not succeed",
			"expected a 2xx status but got %d (body: %s)", resp.Status, string(resp.Body))
	}
}

// RequireJSONArray fails the test immediately unless the response body is a
// JSON array. An empty array is acceptable.
func (t *T) RequireJSONArray(resp *client.Response) {
	if !resp.IsArray() {
		require.Fail(t, "response body is not a JSON array",
			"body was: %s", string(resp.Body))
	}
}

// RequireFields fails the test immediately unless the response body is a JSON
// object containing every named key. Extra keys are ignored.
func (t *T) RequireFields(resp *client.Response, names ...string) {
	for _, name := range names {
		if !resp.Field(name).Exists() {
			require.Fail(t, "response body is missing a required field",
				"expected key %q in: %s", name, string(resp.Body))
		}
	}
}

// RequireIntegerField fails the test immediately unless the named key holds
// an integer-shaped JSON number.
func (t *T) RequireIntegerField(resp *client.Response, name string) {
	field := resp.Field(name)
	if field.Type != gjson.Number || field.Num != float64(field.Int()) {
		require.Fail(t, "field is not an integer",
			"expected key %q to be an integer but got: %s", name, field.Raw)
	}
}
