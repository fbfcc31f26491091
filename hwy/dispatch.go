package hwy

import (
	"unsafe"

	"github.com/xyproto/env/v2"
)

// defaultTarget is the target this binary was built for, possibly replaced
// by HWY_TARGET or HWY_NO_SIMD. Set once by init() and never changed.
var defaultTarget Target

// targetOverrideErr records an HWY_TARGET value that failed to parse.
var targetOverrideErr error

func init() {
	defaultTarget = NewTarget(buildABI, buildCaps)

	if s := env.Str("HWY_TARGET"); s != "" {
		if t, err := ParseTarget(s); err == nil {
			defaultTarget = t
		} else {
			targetOverrideErr = err
		}
	}

	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		defaultTarget = Target{ABI: ABIScalar}
	}
}

// DefaultTarget returns the target selected for this binary.
//
// The ABI comes from build constraints (GOARCH and the GOAMD64 level), not
// from probing the CPU. HWY_TARGET replaces it and HWY_NO_SIMD forces the
// scalar target; both are read once at startup.
func DefaultTarget() Target {
	return defaultTarget
}

// BuildTarget returns the target implied by build constraints alone.
func BuildTarget() Target {
	return NewTarget(buildABI, buildCaps)
}

// TargetOverrideError returns the parse error of an invalid HWY_TARGET
// value, or nil.
func TargetOverrideError() error {
	return targetOverrideErr
}

// CurrentWidth returns the widest register width of the default target in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return defaultTarget.Width()
}

// CurrentName returns a human-readable name for the default target ABI.
// For example: "avx2", "neon128", "scalar".
func CurrentName() string {
	return defaultTarget.Name()
}

// NoSimdEnv reports whether HWY_NO_SIMD holds a true value ("1", "true",
// "yes", ...). When it does, the scalar target is used regardless of build
// constraints.
func NoSimdEnv() bool {
	return env.Bool("HWY_NO_SIMD")
}

// MaxLanes returns the maximum number of lanes for type T with the default target width.
//
// For example, with AVX2 (256 bits / 32 bytes):
//   - float32: 32/4 = 8 lanes
//   - float64: 32/8 = 4 lanes
//   - int32: 32/4 = 8 lanes
func MaxLanes[T Lanes]() int {
	var dummy T
	elementSize := int(unsafe.Sizeof(dummy))
	if elementSize == 0 {
		return 0
	}
	return CurrentWidth() / elementSize
}

// HostSupports reports whether the running CPU can execute code built for t.
//
// It is a diagnostic: DefaultTarget never changes based on the answer.
func HostSupports(t Target) bool {
	return hostSupports(t)
}
