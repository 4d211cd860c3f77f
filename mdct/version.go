package mdct

import "fmt"

const (
	versionMajor = 1
	versionMinor = 0
	versionPatch = 0
)

// Version returns the codec library version string.
func Version() string {
	return fmt.Sprintf("%d.%d.%d", versionMajor, versionMinor, versionPatch)
}
