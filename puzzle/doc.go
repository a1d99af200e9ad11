// Package puzzle reads batches of egg-drop test cases and answers them.
//
// Input is a line holding the case count T (1 <= T <= 10000) followed by T
// lines of "N K": floors, then eggs. Every case produces exactly one output
// line, in input order: the drop count, "Impossible", "Out of Range" or
// "Invalid Input".
package puzzle
