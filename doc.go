// Package avgcost implements a personal stock cost-basis tracker.
//
// The package records buy and sell transactions per ticker symbol in a
// Store, and derives everything else from that ordered history with pure
// functions:
//
//   - Aggregate replays the active history into a weighted-average Position.
//   - Annotate attaches realized profit/loss figures to each sale.
//   - PreviewTransaction shows how a not-yet-committed trade would move the
//     average cost.
//   - Simulate values a position against a manually entered market price.
//   - SolveAverageDown computes the additional purchase required to pull a
//     losing position's average cost down to a target.
//
// All derivations are deterministic functions of their inputs: they read no
// ambient state and are cheap enough to re-run from scratch after every
// mutation. Persistence is a small JSONL codec (see DecodeStore and
// EncodeStore); presentation lives in the renderer and cmd packages.
package avgcost
