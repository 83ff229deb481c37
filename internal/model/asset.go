package model

// ImageAsset describes a validated source image for one processing run.
// It is ephemeral: superseded by a ProcessedArtifact and never persisted.
type ImageAsset struct {
	Path   string
	Bytes  int64
	Width  int
	Height int
	Format string
}

// ProcessedArtifact is the output of normalization. The caller owns the
// artifact file and is responsible for deleting it once consumed.
type ProcessedArtifact struct {
	Path   string
	Bytes  int64
	Width  int
	Height int
	Format string
	// ReductionPercent is (original - processed) / original * 100. A negative
	// value means re-encoding grew the file; callers must treat it as valid.
	ReductionPercent float64
}
