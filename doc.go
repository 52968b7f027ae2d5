// Package expenses provides the types and functions for managing a personal
// expense ledger. It is designed to be local-first: the whole ledger lives in
// a single store file that is read and rewritten wholesale, so there is never
// a torn record.
//
// The core functionalities include:
//   - Record Management: validated expense records (date, amount, description)
//     with stable, reusable integer identifiers.
//   - Data Persistence: encoding and decoding the full ledger to and from a
//     single self-describing store file.
//   - Reporting: stable sorting by id, date or amount, and exact totals
//     computed with decimal arithmetic.
//   - Tabular Interchange: CSV import and export, with collision-free naming
//     of export files.
//
// This package serves as the foundational logic for the `xp` command-line
// tool. It never prints or exits: every failure is returned as a typed error
// that the CLI turns into a message and an exit status.
package expenses
