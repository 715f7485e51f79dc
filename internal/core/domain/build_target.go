package domain

// BuildTarget selects what a build pass builds.
// It is a closed set: WholeForest or ProductSubset.
type BuildTarget interface {
	isBuildTarget()
}

// WholeForest builds every product of the given projects.
type WholeForest struct {
	Projects Forest
}

// ProductSubset builds an explicit list of products.
type ProductSubset struct {
	Products []*ResolvedProduct
}

func (WholeForest) isBuildTarget()   {}
func (ProductSubset) isBuildTarget() {}
