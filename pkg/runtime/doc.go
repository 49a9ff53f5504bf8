// Package runtime executes workflows: directed acyclic graphs of
// idempotent, reversible actions.
//
// A workflow is assembled with a Builder, which collects action nodes,
// their dependency edges and any shared state, then frozen into a Runtime.
// Perform runs every node at most once, executing independent nodes
// concurrently while honoring dependency edges; each action first answers a
// Probe so work whose post-condition already holds is skipped. Outputs
// published by finished actions are visible to their dependents, and an
// opt-in Rollback walks the graph in reverse dependency order.
package runtime
