// Copyright 2026 The reauth Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"errors"
	"io"
	urlpkg "net/url"
)

const badBlobTypeMsg = "reauth/request: invalid type (for blob use nil, " +
	"string, []byte, io.Reader or io.ReadCloser)"

// A Body is the payload of a Request. It is a closed variant type:
// the only implementations are Form (key/value pairs) and Blob (raw
// bytes). A request carries at most one payload because it carries at
// most one Body value, so the invalid form-plus-blob combination is
// not representable.
type Body interface {
	isBody()
}

// Form is a key/value payload. On a GET request it is encoded into the
// URL query string; on any other method it is sent URL-encoded as the
// request body.
type Form urlpkg.Values

func (Form) isBody() {}

// Blob is a raw byte payload, sent as the request body. Use BlobOf to
// build a Blob from a string, reader, or file.
type Blob []byte

func (Blob) isBody() {}

// BlobOf converts a generic value to a Blob payload.
//
// The value may be nil, or it may be a string, []byte, io.Reader, or
// io.ReadCloser. The conversion logic is:
//
// • If v is nil, a nil Blob and no error is returned.
//
// • If v is a []byte, a Blob of v itself and no error is returned.
//
// • If v is a string, the built-in conversion to a byte slice, and no
// error, is returned.
//
// • If v is an io.Reader or io.ReadCloser, the result of reading the
// whole contents of the reader (and closing it if it implements
// Closer) is returned. If reading or closing causes an error, the
// return value is a nil Blob and the error.
//
// • If v is any other type, a nil Blob and an error is returned.
func BlobOf(v interface{}) (Blob, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case string:
		return Blob(x), nil
	case []byte:
		return Blob(x), nil
	case io.ReadCloser:
		b, err := io.ReadAll(x)
		if err != nil {
			return nil, err
		}
		err = x.Close()
		if err != nil {
			return nil, err
		}
		return Blob(b), nil
	case io.Reader:
		return BlobOf(io.NopCloser(x))
	default:
		return nil, errors.New(badBlobTypeMsg)
	}
}
