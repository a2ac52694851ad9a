// Package dag holds the dependency graph between noise modules. Nodes are
// module IDs; an edge from A to B means B reads A's output, so A has to be
// built first.
package dag
