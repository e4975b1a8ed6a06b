// Package tagid provides ID, a value tagged at compile time with the entity
// type it identifies.
//
// Two identifiers backed by the same primitive cannot be mixed up:
//
//	type User struct{ ID tagid.ID[User, int64] }
//	type Order struct{ ID tagid.ID[Order, int64] }
//
//	func LoadOrder(id tagid.ID[Order, int64]) {}
//
//	LoadOrder(user.ID) // does not compile
//
// The tag is a zero-size marker. An ID has the size and alignment of its
// representation, and every bridge (JSON, text, YAML, database/sql) reads and
// writes exactly what the bare representation would.
//
// # Representations
//
// The supported representations form a closed set, see Repr. Go has no
// native 128-bit integers, so Int128 and Uint128 fill that slot.
//
// # Bridges
//
//   - encoding/json: bare numbers and strings, never an object.
//   - encoding.TextMarshaler: base-10 integers, shortest floats, raw strings.
//     Used for JSON map key encoding, environment variables and CLI
//     arguments. Maps keyed by a numeric ID encode but do not decode.
//   - gopkg.in/yaml.v3: native scalars.
//   - database/sql: driver.Valuer and sql.Scanner. Wrap in sql.Null for
//     nullable columns.
//   - github.com/brianvoe/gofakeit/v7: Fake and FakeSlice draw non-zero
//     fixtures, and Faker.Struct fills ID fields.
//
// CUE encoding lives in package cueid and per-backend column descriptors in
// package dialect.
//
// Construction is unchecked. The package never validates or normalizes
// identifiers.
package tagid
