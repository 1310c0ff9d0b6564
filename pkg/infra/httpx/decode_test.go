package httpx

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func brotliBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := brotli.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func zstdBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func zlibBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func rawDeflateBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.DefaultCompression)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestDecodeBody(t *testing.T) {
	plain := []byte(`{"censored_content":"****"}`)

	tests := []struct {
		name     string
		encoding string
		body     []byte
		changed  bool
	}{
		{name: "no encoding", encoding: "", body: plain, changed: false},
		{name: "identity", encoding: "identity", body: plain, changed: false},
		{name: "gzip", encoding: "gzip", body: gzipBytes(t, plain), changed: true},
		{name: "brotli", encoding: "br", body: brotliBytes(t, plain), changed: true},
		{name: "zstd", encoding: "zstd", body: zstdBytes(t, plain), changed: true},
		{name: "deflate zlib", encoding: "deflate", body: zlibBytes(t, plain), changed: true},
		{name: "deflate raw", encoding: "deflate", body: rawDeflateBytes(t, plain), changed: true},
		{name: "chained", encoding: "gzip, br", body: brotliBytes(t, gzipBytes(t, plain)), changed: true},
		{name: "case and spaces", encoding: "  GZip ", body: gzipBytes(t, plain), changed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, changed, err := DecodeBody(tt.encoding, tt.body)
			require.NoError(t, err)
			assert.Equal(t, tt.changed, changed)
			assert.Equal(t, plain, decoded)
		})
	}
}

func TestDecodeBody_UnknownEncoding(t *testing.T) {
	_, _, err := DecodeBody("foo", []byte("abc"))
	assert.ErrorContains(t, err, "unsupported content-encoding")
}

func TestDecodeBody_CorruptGzip(t *testing.T) {
	_, _, err := DecodeBody("gzip", []byte("not gzip"))
	assert.Error(t, err)
}
