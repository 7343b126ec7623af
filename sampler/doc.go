// Package sampler implements the Markov-chain randomization engine:
// Metropolis–Hastings double-stub swap samplers over a hypergraph,
// preserving the degree sequence and the edge-dimension sequence while
// otherwise randomizing structure.
//
// # Labeling modes
//
// Two null distributions are supported, selected by Labeling:
//
//   - LabelingStub: uniform over stub-matchings. Every non-degenerate
//     swap is accepted; repeated nodes within an edge and duplicate
//     edges are legal outcomes.
//   - LabelingVertex: uniform over multisets of distinct vertex-subsets.
//     Edges act as node sets: swaps that would repeat a node inside an
//     edge are rejected outright, and swaps that change edge-content
//     multiplicities are accepted with the configuration-model ratio
//     ∏ m_after! / ∏ m_before! over the touched contents.
//
// Detailed mode additionally restricts proposals to equal-dimension edge
// pairs, preserving the per-node, per-dimension incidence matrix. It
// combines with either labeling.
//
// # Epochs and clashes
//
// The vertex-labeled sampler keeps an edge-multiplicity table. Proposals
// whose contents are all unique have acceptance ratio exactly 1 and
// commit immediately. Proposals that touch duplicated or recently
// touched content (clashes) are applied speculatively and recorded in a
// ledger; once ClashBatch distinct clashes accumulate, the epoch closes:
// the ledger is replayed against the exact pre-epoch table, every clash
// is decided exactly, rejected swaps are rolled back, and the table is
// recounted from the edges and checked against the replay. ClashBatch=1
// reconciles after every clash; larger values trade provisional
// rollbacks for fewer full recounts. For a fixed seed the final state is
// identical across all ClashBatch values.
//
// # Determinism
//
// Pass a seeded *rand.Rand via Options.Rand for reproducible runs. One
// acceptance draw is consumed per applied proposal regardless of clash
// classification, so the random stream does not depend on ClashBatch.
package sampler
