package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testParams = Params{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("correct horse", testParams)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=1024,t=1,p=1$"))

	ok, err := Verify("correct horse", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Verify("battery staple", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHash_UniqueSalt(t *testing.T) {
	first, err := Hash("same", testParams)
	require.NoError(t, err)
	second, err := Hash("same", testParams)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerify_MalformedHash(t *testing.T) {
	for _, encoded := range []string{
		"",
		"plain-text",
		"$argon2i$v=19$m=1024,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=18$m=1024,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$m=x,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$m=1024,t=1,p=1$!!$a2V5",
		"$argon2id$v=19$m=1024,t=1,p=1$c2FsdA$",
	} {
		_, err := Verify("secret", encoded)
		assert.ErrorIs(t, err, ErrMalformedHash, encoded)
	}
}
