package handler

import (
	"bytes"
	"sync"
)

// bufferPool recycles JSON encoding buffers. Export responses carry whole
// base64 documents, so oversized buffers are not returned to the pool.
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

const maxPooledBufferSize = 64 << 10

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
