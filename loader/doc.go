// Package loader reads hypergraph edge sets from common text formats.
//
// Two formats are supported:
//
//   - Edge list: one edge per line, whitespace-separated integer node
//     IDs. Blank lines and lines starting with '#' are skipped.
//   - Simplex streams: the paired nverts/simplices format used by many
//     published hypergraph datasets, where one file lists the size of
//     each edge and a second file lists all node IDs back to back.
//
// Loaders return plain [][]int64 edge sets ready for hypergraph.Build.
package loader
