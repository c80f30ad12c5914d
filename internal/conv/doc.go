// Package conv holds small reflection helpers shared across the gateway for
// coercing values between maps, structs and primitives.  Convert falls back to
// a JSON marshal/unmarshal round-trip, which covers the shapes that travel
// through tool arguments and results.
package conv
