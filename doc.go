// Package tontine provides the functions and types for managing rotating
// savings groups (tontines). It is designed to be local-first, auditable,
// and single-writer, keeping the treasurer in full control of the group's
// financial records.
//
// The core functionalities include:
//   - Member Registry: Recording group members with a unique national
//     identity number per member.
//   - Tontine Management: Creating groups with a fixed contribution amount,
//     a weekly, monthly or quarterly schedule, and a bijective assignment of
//     members to payout positions.
//   - Payment Engine: Recording contributions with automatic late-penalty
//     assessment, strict round sequencing, and payout processing that
//     advances the rotation.
//   - Reporting: Stateless computations producing dashboard summaries,
//     monthly reports, and per-round analyses from the ledger alone.
//   - Data Persistence: A collection-oriented store gateway with a local
//     directory backend and a cloud document-store backend, plus spreadsheet
//     export and full-database import.
//
// All state mutations go through the Ledger, which validates before it
// mutates and emits domain events once the mutation is applied. This package
// serves as the foundational logic for the `tnt` command-line tool.
package tontine
