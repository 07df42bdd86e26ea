package naming

import (
	"errors"
	"fmt"
	"strings"
)

// TagToken is the index of the underscore-delimited token replaced by the tag.
const TagToken = 1

// ErrNameShape is returned for names with too few underscore-delimited tokens.
var ErrNameShape = errors.New("file name has no token to tag")

// Role says which read of a pair a file holds.
type Role int

const (
	RoleNone Role = iota
	RolePrimary
	RoleSecondary
)

func (r Role) String() string {
	switch r {
	case RolePrimary:
		return "primary"
	case RoleSecondary:
		return "secondary"
	default:
		return "none"
	}
}

// Markers are the substrings that tell the two reads of a pair apart,
// e.g. "_R1_" and "_R2_".
type Markers struct {
	Primary   string
	Secondary string
}

// Classify returns the role encoded in name. The secondary marker wins when
// both are present, matching how discovery filters primaries.
func (m Markers) Classify(name string) Role {
	switch {
	case strings.Contains(name, m.Secondary):
		return RoleSecondary
	case strings.Contains(name, m.Primary):
		return RolePrimary
	default:
		return RoleNone
	}
}

// Counterpart returns the mate of a primary file by replacing every
// occurrence of the primary marker with the secondary marker.
func (m Markers) Counterpart(primary string) string {
	return strings.ReplaceAll(primary, m.Primary, m.Secondary)
}

// PrimaryOf returns the primary name a secondary file pairs with.
func (m Markers) PrimaryOf(secondary string) string {
	return strings.ReplaceAll(secondary, m.Secondary, m.Primary)
}

// TagName replaces token 1 of an underscore-delimited name with tag:
// "sample_X_R1_001.fastq" becomes "sample_<tag>_R1_001.fastq".
func TagName(name, tag string) (string, error) {
	tokens := strings.Split(name, "_")
	if len(tokens) <= TagToken {
		return "", fmt.Errorf("%w: %q", ErrNameShape, name)
	}
	tokens[TagToken] = tag
	return strings.Join(tokens, "_"), nil
}
