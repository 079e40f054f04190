// Package engine orchestrates a scoring run: it fans the topic scorers
// out over a findings snapshot, applies compliance capping through the
// violation registry, and rolls the topic scores up into category and
// overall scores. The engine is stateless between runs; recomputation
// after an override change is a fresh run over the same snapshot.
package engine
