package tags

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeName_CommaSeparated_SplitsIntoParts(t *testing.T) {
	require.Equal(t, []string{"golang", "testing"}, NormalizeName("golang, testing"))
}

func TestNormalizeName_Hashtag_StripsHash(t *testing.T) {
	require.Equal(t, []string{"python"}, NormalizeName("#python"))
}

func TestNormalizeName_CommaAndHash_BothApplied(t *testing.T) {
	require.Equal(t, []string{"a", "b"}, NormalizeName("#a, #b"))
}

func TestNormalizeName_BlankParts_Dropped(t *testing.T) {
	require.Empty(t, NormalizeName(" , #, "))
}

func TestNormalize_TagObjects_FlattenedPerName(t *testing.T) {
	in := []Tag{{Name: "one,two"}, {Name: "#three"}}
	require.Equal(t, []Tag{{Name: "one"}, {Name: "two"}, {Name: "three"}}, Normalize(in))
}

func TestNormalizeNames_MultipleRawNames_Flattened(t *testing.T) {
	require.Equal(t, []string{"x", "y", "z"}, NormalizeNames([]string{"x, y", "#z"}))
}
