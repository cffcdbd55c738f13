// Package results collects per-run benchmark records into one tab-separated
// report.
//
// Layout on disk:
//
//	<ResultsRoot>/<algorithm>/<graph file>   one Result Record per run
//	<InputsRoot>/<graph file>                the Graph Description that was solved
//
// A Result Record is
//
//	line 0      start timestamp, d/m/Y H:M:S.mmm
//	line 1      "maxClique best" or a line containing "error" or "bad"
//	...         progress output
//	last line   end timestamp (last non-empty line)
//
// Aggregate produces one Row per graph file and one Cell per algorithm. A
// missing record gives the NA cell, a failed or unreadable run gives the ERR
// cell; neither stops the report. Graph statistics (n, m, max.deg) come from
// the input file itself.
package results
