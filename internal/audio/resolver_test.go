package audio

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func TestFSResolver_FirstLayerWins(t *testing.T) {
	user := fstest.MapFS{"A.wav": {Data: []byte("user")}}
	embedded := fstest.MapFS{
		"A.wav": {Data: []byte("embedded")},
		"B.wav": {Data: []byte("embedded-b")},
	}
	resolver := NewFSResolver(nil, user, embedded)

	data, err := resolver.Resolve("A", "wav")
	require.NoError(t, err)
	require.Equal(t, "user", string(data))

	data, err = resolver.Resolve("B", "wav")
	require.NoError(t, err)
	require.Equal(t, "embedded-b", string(data))
}

func TestFSResolver_NotFound(t *testing.T) {
	resolver := NewFSResolver(fstest.MapFS{"A.wav": {Data: []byte("a")}})

	_, err := resolver.Resolve("A", "mp3")
	require.ErrorIs(t, err, ErrResourceNotFound)

	_, err = resolver.Resolve("", "wav")
	require.ErrorIs(t, err, ErrResourceNotFound)
}

func TestFSResolver_RejectsPaths(t *testing.T) {
	resolver := NewFSResolver(fstest.MapFS{"sub/A.wav": {Data: []byte("a")}})

	for _, name := range []string{"sub/A", "../A", "./A"} {
		_, err := resolver.Resolve(name, "wav")
		require.ErrorIs(t, err, ErrResourceNotFound, name)
	}
}

func TestFSResolver_CachesBytes(t *testing.T) {
	files := fstest.MapFS{"A.wav": {Data: []byte("first")}}
	resolver := NewFSResolver(files)

	_, err := resolver.Resolve("A", "wav")
	require.NoError(t, err)
	files["A.wav"] = &fstest.MapFile{Data: []byte("second")}

	data, err := resolver.Resolve("A", "wav")
	require.NoError(t, err)
	require.Equal(t, "first", string(data))
}
