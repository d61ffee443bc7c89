package schema

// Group name prefixes. Child groups are always named "<Prefix><n>" with n
// starting at 1 (spec invariant: dense 1..count numbering).
const (
	GroupWhat    = "what"
	GroupWhere   = "where"
	GroupHow     = "how"
	GroupDataset = "dataset"
	GroupData    = "data"
	GroupQuality = "quality"
)

// DatasetName is the single matrix dataset name owned by a Data or Quality
// node.
const DatasetName = "data"

// AttributeConventions is the single root-level attribute name.
const AttributeConventions = "Conventions"

// Image-convention attributes stamped on every 8-bit-unsigned matrix.
const (
	AttributeClass        = "CLASS"
	ClassImage             = "IMAGE"
	AttributeImageVersion = "IMAGE_VERSION"
	ImageVersion1_2        = "1.2"
	AttributePalVersion   = "PAL_VERSION"
)

const (
	TrueString  = "True"
	FalseString = "False"
)
