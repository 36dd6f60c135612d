package csg

// TransformKind selects the operation applied by a transform node.
type TransformKind int

const (
	TransformTranslate TransformKind = iota
	TransformScale
	TransformRotate
	TransformMirror
	TransformOffset // 2D only
)

func (k TransformKind) String() string {
	switch k {
	case TransformTranslate:
		return "translate"
	case TransformScale:
		return "scale"
	case TransformRotate:
		return "rotate"
	case TransformMirror:
		return "mirror"
	case TransformOffset:
		return "offset"
	default:
		return "unknown"
	}
}

// BoolOp selects how a boolean node combines its children.
type BoolOp int

const (
	OpUnion BoolOp = iota
	OpDifference
	OpIntersection
	OpHull
)

func (op BoolOp) String() string {
	switch op {
	case OpUnion:
		return "union"
	case OpDifference:
		return "difference"
	case OpIntersection:
		return "intersection"
	case OpHull:
		return "hull"
	default:
		return "unknown"
	}
}
