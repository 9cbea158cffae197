// Copyright (c) 2022 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"io"
)

// Encodable is implemented by every value with a canonical binary encoding.
// Serialize must be deterministic and SerializeSize must report exactly the
// number of bytes Serialize writes.
type Encodable interface {
	Serialize(w io.Writer) error
	SerializeSize() int
}

// Decodable is implemented by every value that can be read back from its
// canonical binary encoding.  Deserialize consumes exactly the bytes of one
// encoded value and leaves the rest of r untouched.
type Decodable interface {
	Deserialize(r io.Reader) error
}

// Codec is the capability shared by BlockHeader, MsgTx and MsgBlock.
type Codec interface {
	Encodable
	Decodable
}

// EncodeToBytes returns the canonical encoding of v.  Values Serialize
// rejects are cut short at the point of the error, callers that build values
// by hand should call Serialize and check its error instead.
func EncodeToBytes(v Encodable) []byte {
	buf := bytes.NewBuffer(make([]byte, 0, v.SerializeSize()))
	_ = v.Serialize(buf)
	return buf.Bytes()
}

// DecodeFromBytes decodes one value from the front of b into v and reports
// how many bytes it consumed.
func DecodeFromBytes(v Decodable, b []byte) (int, error) {
	r := bytes.NewReader(b)
	if err := v.Deserialize(r); err != nil {
		return len(b) - r.Len(), err
	}
	return len(b) - r.Len(), nil
}
