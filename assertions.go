package hashset

// Compile-time checks that every variant satisfies the shared Set
// contract (spec.md §4.1).
var (
	_ Set[int] = (*SequentialSet[int])(nil)
	_ Set[int] = (*CoarseGrainedSet[int])(nil)
	_ Set[int] = (*StripedSet[int])(nil)
	_ Set[int] = (*RefinableSet[int])(nil)
)
