package compress

// ZstdCompressor provides Zstandard compression for packed text buffers.
//
// Zstd gives the best compression ratio of the supported algorithms and is
// the recommended choice for archival or network transfer of large packed
// buffers. Text payloads typically compress 3-5x.
//
// Two implementations are selected at build time: a cgo binding
// (valyala/gozstd) when cgo is available, and a pure-Go implementation
// (klauspost/compress/zstd) otherwise. Both produce interchangeable frames.
type ZstdCompressor struct{}

var _ Codec = ZstdCompressor{}

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
