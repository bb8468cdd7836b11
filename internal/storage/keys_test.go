package storage

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allPrefixes() [][]byte {
	var out [][]byte
	for _, k := range Kinds {
		out = append(out, k.Prefix())
	}
	for _, i := range Indexes {
		out = append(out, i.Prefix())
	}
	return out
}

func TestPrefixesAreMutuallyNonPrefixing(t *testing.T) {
	prefixes := allPrefixes()
	for i, a := range prefixes {
		for j, b := range prefixes {
			if i == j {
				continue
			}
			assert.Falsef(t, bytes.HasPrefix(b, a), "%q is a prefix of %q", a, b)
		}
	}
}

func TestKindNames(t *testing.T) {
	name := regexp.MustCompile(`^[a-z_]+$`)
	seen := map[string]bool{}
	for _, k := range Kinds {
		require.Regexp(t, name, k.String())
		require.False(t, seen[k.String()], "duplicate kind %s", k)
		seen[k.String()] = true
	}
	assert.Len(t, seen, len(kindNames))
	assert.Equal(t, "unknown", Kind(0).String())
}

func TestKeys(t *testing.T) {
	id := uuid.MustParse("0b8a7f0e-3c4d-4e5f-8a9b-0c1d2e3f4a5b")

	assert.Equal(t, "event:0b8a7f0e-3c4d-4e5f-8a9b-0c1d2e3f4a5b", string(KindEvent.Key(id)))
	assert.Equal(t, "user:0b8a7f0e-3c4d-4e5f-8a9b-0c1d2e3f4a5b", string(KindUser.Key(id)))
	assert.Equal(t, "registration:", string(KindRegistration.Prefix()))
	assert.Equal(t, "user_email:dancer@example.com", string(UserEmailIndex.Key("dancer@example.com")))
	assert.True(t, bytes.HasPrefix(KindVenue.Key(id), KindVenue.Prefix()))
	assert.False(t, bytes.HasPrefix(UserEmailIndex.Key("a@b.c"), KindUser.Prefix()))
}

func TestIndexValue(t *testing.T) {
	id := uuid.New()
	got, err := ParseIndexValue(KindUser, IndexValue(id))
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = ParseIndexValue(KindUser, []byte("not-a-uuid"))
	require.ErrorIs(t, err, ErrDecode)
}
