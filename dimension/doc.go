// Package dimension implements the intra-dimensional graph: named axes of
// content variation, each owning a forest of values linked by
// generalization (parent) and specialization (child) relationships.
//
// What:
//
//   - Registry: owns Dimensions, enforces unique names and remembers creation
//     order. That order is the global fallback priority used when weight
//     vectors are normalized (see package variation).
//   - Dimension: an arena of Values plus a children index; values are created
//     only through Dimension.CreateValue.
//   - Value: immutable node with identifier, depth and parent position.
//
// Example tree for a "language" dimension:
//
//	mul (0)
//	├── en (1)
//	│   └── en_US (2)
//	└── de (1)
//
// Errors:
//
//   - ErrEmptyDimensionName, ErrDuplicateDimensionName, ErrUnknownDimension
//   - ErrEmptyValueIdentifier, ErrDuplicateValueIdentifier, ErrUnknownValue
//   - ErrForeignParent
//
// Concurrency: build once, then read from any goroutine. Mutation is not
// synchronized.
package dimension
