// Package kernel provides the value objects shared by the order model: identifiers,
// fixed-point money, e-mail addresses, contact snapshots, stored timestamps and clocks.
//
// Every value object is immutable. Constructors validate their input and report
// errs.ValueIsRequiredError / errs.ValueIsInvalidError; Restore* functions rebuild
// values read back from storage without re-validating them.
package kernel
