// Package eggdrop computes the minimal worst-case number of drops needed to
// find the critical floor of a building with a given number of eggs.
//
// The critical floor F lies in [0, floors]: an egg dropped from F or below
// survives, an egg dropped above F breaks. A surviving egg can be reused,
// a broken one is lost.
//
// Solver fills a dense (floors × eggs) table by the recurrence
//
//	drops(f, e) = 1 + min over d in [1, f] of max(drops(d-1, e-1), drops(f-d, e))
//
// where d is the floor of the first drop. ClosedForm answers the same question
// without a table by counting the floors that d drops can cover.
//
// Example:
//
//	s := eggdrop.NewSolver(eggdrop.DefaultLimits, eggdrop.StrategyScan)
//	drops, err := s.MinDrops(100, 2) // 14, nil
package eggdrop
