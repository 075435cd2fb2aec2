// Package secretsanta draws Secret Santa lists: one gift-giving loop through a
// whole family, where everybody gives once and receives once, and the draw
// respects partners, recent years and a few social patterns.
//
// 🎄 How a draw works
//
//	Constraint matrix: giver × receiver weights, 0 on the diagonal, partners
//	                   excluded, last years decayed, rigged givers forced.
//	Cycle walk:        start somewhere, sample each next receiver by weight,
//	                   sweep out whoever has been chosen, close the loop last.
//	Retry driver:      a walk can paint itself into a corner; throw it away
//	                   and start over, up to an attempt budget.
//
// Everything is organized in small packages:
//
//	matrix/           — row-major float64 table with row/column sweeps
//	registry/         — participants, partners and history, name ↔ index
//	santa/            — rules, rigging, matrix builder, cycle walk, Generate, Check
//	config/           — YAML configuration (Rules, Output, Names, Rigging)
//	output/           — GivingOrder / FamilyOrder / AlphabeticalOrder printing
//	internal/logging/ — slog setup for the command line tool
//	cmd/secretsanta/  — the command line tool
//
// Quick ASCII example (two couples, partners may not give to each other):
//
//	Alice ──▶ Carol
//	  ▲         │
//	  │         ▼
//	Dave  ◀── Bob
//
//	go install github.com/katalvlaran/secretsanta/cmd/secretsanta@latest
package secretsanta
