package world

import (
	"encoding/binary"
	"io"

	"github.com/klauspost/compress/zstd"
)

// Serialize writes data as little-endian bytes. data must have a fixed size
// (see encoding/binary).
func Serialize(w io.Writer, data any) {
	Check(binary.Write(w, binary.LittleEndian, data))
}

func Deserialize(r io.Reader, data any) {
	Check(binary.Read(r, binary.LittleEndian, data))
}

// SerializeSlice writes the length of the slice followed by its elements.
func SerializeSlice[T any](w io.Writer, s []T) {
	Serialize(w, int64(len(s)))
	Serialize(w, s)
}

func DeserializeSlice[T any](r io.Reader, s *[]T) {
	var n int64
	Deserialize(r, &n)
	*s = make([]T, n)
	Deserialize(r, *s)
}

func Zip(data []byte) []byte {
	enc, err := zstd.NewWriter(nil)
	Check(err)
	defer func() { Check(enc.Close()) }()
	return enc.EncodeAll(data, nil)
}

func Unzip(data []byte) []byte {
	dec, err := zstd.NewReader(nil)
	Check(err)
	defer dec.Close()
	out, err := dec.DecodeAll(data, nil)
	Check(err)
	return out
}
