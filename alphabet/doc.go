// Package alphabet defines the ordered symbol set ("namespace") the Hill
// cipher operates over, mapping symbols to indices 0..N-1 and back.
//
// An Alphabet is immutable once resolved. The default alphabet is the 26
// uppercase Latin letters; a custom alphabet may be supplied as long as it
// is duplicate-free and square in length. Lookups are case-insensitive;
// the table itself is case-normalized to uppercase.
package alphabet
