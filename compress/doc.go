// Package compress provides compression and decompression codecs for packed
// text buffers.
//
// Compression is applied at the payload level when a textbuf.Buffer is packed
// into its self-describing container form. Text payloads compress well with
// general-purpose algorithms, so packing large transcoded outputs can save
// substantial space at rest or on the wire.
//
// # Supported Algorithms
//
//   - None: no compression (fastest, largest)
//   - Zstd: best compression ratio, moderate speed
//   - S2: balanced compression and speed
//   - LZ4: fastest decompression, moderate compression
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Codecs are selected by format.CompressionType through GetCodec; the
// supported set is fixed and unknown types are rejected.
//
// # Thread Safety
//
// All codec implementations are safe for concurrent use.
package compress
