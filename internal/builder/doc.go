/*
Package builder turns the static configuration model into a graph of live
noise modules.

The construction is a multi-phase process:

 1. Node Creation: every module block becomes a node in a dag.Graph, keyed
    by its address (module.<type>.<name>). Unknown module types are
    rejected here, before any expression is evaluated.

 2. Dependency Linking: module references inside each block's arguments
    become edges. References to undeclared modules and self references are
    errors; the DAG's cycle detection rejects longer loops.

 3. Instantiation: modules are decoded and constructed in topological
    order, so every source a module names already exists when it is built.

Modules that neither another module nor a render block reference are
reported as warnings; they are built but never sampled.
*/
package builder
