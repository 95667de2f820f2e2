// Package validation checks request payloads against the constraints declared
// on their struct tags and reports every failing field at once.
//
// A Violation names where the bad value came from (path, query, header,
// cookie, body or form), the field path inside that source, the rule that
// failed and the value that was received. Secret values are masked before
// they are placed in a Violation.
package validation
