// Package servicedef contains the wire types of the pet store API that the
// test suite exercises. These are request/response shapes only; the service
// under test owns the entities themselves.
package servicedef

import (
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Pet is the canonical pet record as returned by the service. The id is
// assigned server-side on creation.
type Pet struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Tag  string `json:"tag,omitempty"`
}

// NewPetParams is the creation payload for POST /pets. The service contract
// requires name; tag is an optional classifier.
type NewPetParams struct {
	Name string `json:"name,omitempty"`
	Tag  string `json:"tag,omitempty"`
}

// ListPetsParams are the optional query parameters for GET /pets.
type ListPetsParams struct {
	Tags  []string
	Limit ldvalue.OptionalInt
}
