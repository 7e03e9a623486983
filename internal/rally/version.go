package rally

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is the harness's four-part version tuple.
type Version struct {
	Major  int
	Minor  int
	Patch  int
	Suffix string
}

// ParseVersion parses "1.2.3", "1.2.3.dev0" or "1.2.3-dev0".
func ParseVersion(s string) (Version, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Version{}, fmt.Errorf("empty version")
	}

	var suffix string
	if i := strings.IndexByte(s, '-'); i >= 0 {
		s, suffix = s[:i], s[i+1:]
	}
	parts := strings.SplitN(s, ".", 4)
	if len(parts) < 3 {
		return Version{}, fmt.Errorf("version %q: want major.minor.patch", s)
	}
	if len(parts) == 4 {
		if suffix != "" {
			return Version{}, fmt.Errorf("version %q: two suffixes", s)
		}
		suffix = parts[3]
	}

	nums := make([]int, 3)
	for i := range nums {
		n, err := strconv.Atoi(parts[i])
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("version %q: invalid component %q", s, parts[i])
		}
		nums[i] = n
	}
	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2], Suffix: suffix}, nil
}

func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Suffix != "" {
		s += "." + v.Suffix
	}
	return s
}
