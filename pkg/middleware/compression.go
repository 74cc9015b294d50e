package middleware

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

// Tamanho mínimo da resposta para compressão
const compressionMinSize = 1024

// Compression comprime as respostas com gzip quando o cliente aceita
func Compression() func(http.Handler) http.Handler {
	wrapper, err := gzhttp.NewWrapper(
		gzhttp.MinSize(compressionMinSize),
		gzhttp.CompressionLevel(6),
	)

	return func(next http.Handler) http.Handler {
		if err != nil {
			return gzhttp.GzipHandler(next)
		}
		return wrapper(next)
	}
}
