// SPDX-License-Identifier: Apache-2.0

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(io.Discard)
	},
}

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGZip transparently inflates gzip-compressed request bodies and
// compresses response bodies for clients that advertise gzip support in
// Accept-Encoding. Writers and readers are pooled to avoid per-request
// allocation of the compression state.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			zr := gzipReaderPool.Get().(*gzip.Reader)
			if err := zr.Reset(r.Body); err != nil {
				gzipReaderPool.Put(zr)
				http.Error(w, "invalid gzip request body", http.StatusBadRequest)
				return
			}

			body := r.Body
			r.Body = &pooledGzipReader{zr: zr, original: body}
			r.Header.Del("Content-Encoding")
			r.ContentLength = -1
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		zw := gzipWriterPool.Get().(*gzip.Writer)
		zw.Reset(w)
		defer func() {
			zw.Close()
			gzipWriterPool.Put(zw)
		}()

		gw := &gzipResponseWriter{ResponseWriter: w, zw: zw}
		next.ServeHTTP(gw, r)
	})
}

// gzipResponseWriter routes body writes through a gzip writer while leaving
// header manipulation on the original [http.ResponseWriter]. The
// Content-Encoding header is set on the first WriteHeader call, and
// Content-Length is dropped because the compressed size is unknown.
type gzipResponseWriter struct {
	http.ResponseWriter

	zw          *gzip.Writer
	wroteHeader bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	w.Header().Set("Content-Encoding", "gzip")
	w.Header().Del("Content-Length")
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}

	return w.zw.Write(b)
}

// pooledGzipReader closes both the gzip stream and the original request body
// and returns the reader to the pool afterwards.
type pooledGzipReader struct {
	zr       *gzip.Reader
	original io.ReadCloser
}

func (r *pooledGzipReader) Read(p []byte) (int, error) {
	return r.zr.Read(p)
}

func (r *pooledGzipReader) Close() error {
	err := r.zr.Close()
	if cerr := r.original.Close(); err == nil {
		err = cerr
	}
	gzipReaderPool.Put(r.zr)
	return err
}
