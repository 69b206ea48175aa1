package csi

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexiusacademia/csiapi/internal/apierr"
)

// Version is a host object-model release, identified by its major version.
type Version int

// Known object-model releases. Versions between two known releases use the
// older release's tables.
const (
	V17    Version = 17
	V19    Version = 19
	V20    Version = 20
	V21    Version = 21
	V22    Version = 22
	Latest Version = 23
)

var knownVersions = []Version{V17, V19, V20, V21, V22, Latest}

// ParseVersion reads a host version string such as "21.0.1" or "v22".
// Majors above Latest map to Latest; majors below V17 are unsupported.
func ParseVersion(s string) (Version, error) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "v")
	major, _, _ := strings.Cut(s, ".")
	n, err := strconv.Atoi(major)
	if err != nil {
		return 0, apierr.Invalid("ParseVersion", "bad version %q", s)
	}
	if n < int(V17) {
		return 0, apierr.Unsupportedf("ParseVersion", "host version %d is older than %d", n, V17)
	}
	v := V17
	for _, known := range knownVersions {
		if int(known) <= n {
			v = known
		}
	}
	return v, nil
}

func (v Version) String() string {
	if v == Latest {
		return fmt.Sprintf("v%d+", int(v))
	}
	return fmt.Sprintf("v%d", int(v))
}
