// Package tokens renders native API constants for diagnostics.
//
// Constants are declared statically as Tables of (name, value) pairs.
// Collect merges tables into a value-to-name map. When two different names
// share a value the entry is replaced by the value's hexadecimal form, so an
// ambiguous code is shown as "0x1" rather than silently as one of its names:
//
//	names := tokens.Collect(tokens.CL10, tokens.Prefix("CL_INVALID_"))
//	fmt.Println(tokens.Name(names, -38)) // CL_INVALID_MEM_OBJECT
//
// ParseExtensions splits a whitespace-separated extension string, as
// returned by platform and device info queries, into a Set.
package tokens
