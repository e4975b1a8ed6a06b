// Package dialect describes how each tagid representation maps onto the
// column types of the SQL backends the module is exercised against.
//
// A Dialect answers two questions for a representation Kind:
//
//   - ColumnType: which column type to declare when creating a table that
//     stores the representation.
//   - Compatible: whether a column whose driver-reported type name is t can
//     be decoded into the representation.
//
// The values are plain descriptors. Binding and decoding themselves go
// through database/sql (see tagid.ID's Value and Scan methods); a Dialect
// never touches a connection.
package dialect
