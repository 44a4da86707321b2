// Package manifest loads and validates the YAML file describing a batch of
// optic derivations: which package to inspect, which types, which kind of
// accessor, and under which naming policy.
package manifest
