// Package testpattern generates deterministic reference images for tests.
//
// # Overview
//
// A test pattern is an image split into four quadrants, each filled by its
// own algorithm so that a wide range of pixel values, strides and alpha
// levels appear in a single fixture:
//
//	+----------------+----------------+
//	| checkerboard   | vertical bars  |
//	| black / white  | hotpink / blue |
//	+----------------+----------------+
//	| gradient bands | rainbow sweep  |
//	| red/green/blue | packed RGBA32  |
//	| alpha 0 → 1    | accumulator    |
//	+----------------+----------------+
//
// # Quick Start
//
//	import "github.com/gogpu/testpattern"
//
//	patterns := testpattern.NewCache()
//
//	img, err := patterns.GetOrCreate(120, 60)
//	if err != nil {
//	    return err
//	}
//	// img is a private copy; mutate it freely.
//
// # Caching
//
// A Cache builds each (width, height, format) combination at most once and
// hands every caller an independent copy. By default construction is
// single-flight per key, so unrelated sizes are generated concurrently.
// WithSerializedBuilds restores one lock around all construction.
//
// # Pixel Formats
//
// Images can be produced in RGBA8 (default), BGRA8, RGB8, RGB565, RGBA64,
// Gray8 and Gray16. Colors are specified as normalized Vector4 values and
// packed into the target format with PackFromVector4.
package testpattern

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
