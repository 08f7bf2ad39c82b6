// Package pipeloop measures closed pipe loops drawn on character grids and
// counts the ground they enclose.
//
// A field is a rectangle of ground '.', straight pipes '-' '|', bends
// 'L' 'J' '7' 'F' and one start marker 'S' sitting on a single loop:
//
//	.....
//	.S-7.
//	.|.|.
//	.L-J.
//	.....
//
// Two questions are answered:
//
//   - How far along the loop is the cell farthest from the start (the
//     anti-point)? Always half the loop length.
//   - Which cells off the loop are enclosed by it? Pipes are thin, so ground
//     squeezed between two parallel pipes can still reach the edge.
//
// Subpackages:
//
//	pipegrid/     Grid, Position, Direction and the pipe alphabet
//	circuit/      tracing the loop through the start; anti-point
//	containment/  quadrant-aware escape walks classifying every other cell
//	loader/       reading fields from text, skipping non-field lines
//	config/       YAML settings with environment overrides
//	cmd/pipeloop  the command-line tool
//
//	go install github.com/katalvlaran/pipeloop/cmd/pipeloop@latest
package pipeloop
