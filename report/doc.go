// SPDX-License-Identifier: MIT

// Package report renders MST results for people and for machines.
//
// The text layout is the one operators already know:
//
//	 MST Edges Kruskal's:
//	B -- C (2 km)
//	A -- B (4 km)
//	Total Cost: 6 km
//	Execution Time: 0.0000 seconds
//
// Headings are styled with lipgloss; on a writer that is not a terminal the
// styling degrades to plain text. Costs carry thousands separators.
//
// The json format encodes the same data, with the elapsed time in seconds
// and the disconnected warning spelled out.
package report
