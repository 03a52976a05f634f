package conformity

// Test bridge exposing unexported kernels to the external test package
// for white-box property checks, without widening the production API.
var (
	// ExportedNormDivisor exposes normDivisor.
	ExportedNormDivisor = normDivisor

	// ExportedBuildShells exposes buildShells.
	ExportedBuildShells = buildShells

	// ExportedProfileSimilarity exposes profileSimilarity.
	ExportedProfileSimilarity = profileSimilarity

	// ExportedProfileSet exposes profileSet.
	ExportedProfileSet = profileSet
)
