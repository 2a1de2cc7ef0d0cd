package record

import (
	"sync"

	"github.com/klauspost/compress/zstd"
)

// decoderPool and encoderPool reuse Zstd codecs the way mebo's
// compress.ZstdCompressor does (compress/zstd_pure.go): the library is
// built for warm reuse, so a pool avoids re-paying encoder/decoder setup
// on every compressed payload.
var decoderPool = sync.Pool{
	New: func() any {
		d, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
		if err != nil {
			panic(err)
		}

		return d
	},
}

var encoderPool = sync.Pool{
	New: func() any {
		e, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			panic(err)
		}

		return e
	},
}

func compressZstd(data []byte) []byte {
	e := encoderPool.Get().(*zstd.Encoder)
	defer encoderPool.Put(e)

	return e.EncodeAll(data, nil)
}

func decompressZstd(data []byte) ([]byte, error) {
	d := decoderPool.Get().(*zstd.Decoder)
	defer decoderPool.Put(d)

	return d.DecodeAll(data, nil)
}
