// Package ttable implements the truth-table cache: an append-only
// interning table that cut enumeration fills with every cut's truth
// table. rewrite.Run and klut.Run each create their own Table for their
// enumeration; the refactorer uses only NumWords.
//
// What:
//
//   - Table: a growable store of normal-form truth tables (bit 0 of the
//     all-zero-input row is always 0). Insert returns a 32-bit literal
//     (2*index + wasComplemented); Get reconstructs the original table.
//   - MinBase drops unused support variables and reports, as a bit mask,
//     which of the original variables survived.
//
// Why a cache: the same small (≤8 variable) cut function recurs
// constantly across a design; interning stores each normal table once,
// so cuts with equal functions share one literal.
//
// Guarantees: inserting the table Get returns for Insert(t) yields
// Insert(t) again; the backing
// vector is append-only, so literals returned by Insert are stable for the
// life of the Table.
package ttable
