// Package hypergraph provides the mutable in-memory hypergraph structure
// used by the samplers and the statistics layer.
//
// A hypergraph is a fixed set of nodes plus an append-only sequence of
// edges. Each edge is a tuple of node IDs whose length (its dimension)
// never changes after construction; the node occupying a given slot of a
// given edge can be replaced in place. A reverse node→incidence index is
// maintained alongside the edge slots so that degrees are O(1) queries
// and uniform stub sampling is O(1).
//
// # Incidences
//
// An Incidence is an (edge, position) pair - one occurrence of a node
// inside an edge, also called a stub. The set of incidences is fixed at
// construction; only the node held by each incidence changes. A node's
// degree is the number of incidences currently holding it.
//
// # Mutation contract
//
// ReplaceIncidence updates the edge slot and the reverse index as one
// unit. The structure is not safe for concurrent mutation; samplers own
// it exclusively while running (see the sampler package).
package hypergraph
