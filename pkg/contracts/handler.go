package contracts

import "github.com/julienschmidt/httprouter"

type Handler interface {
	RegisterRoutes(*httprouter.Router)
}

// BodyNegotiator is implemented by handlers that accept any Content-Type on
// the listed paths and decide for themselves how to read the body.
type BodyNegotiator interface {
	NegotiatedPaths() []string
}
