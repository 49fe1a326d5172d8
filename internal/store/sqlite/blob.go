package sqlite

import (
	"bytes"
	"encoding/gob"

	"github.com/Tesfamichael12/compiler-design-clr-parsing/internal/lrparse"
)

// runBlob is the persisted shape of a RunRecord's parse outcome. It
// implements encoding.BinaryMarshaler/Unmarshaler so it can be handed to
// rezi.EncBinary/DecBinary, mirroring the teacher's pattern of wrapping a
// domain type for storage rather than storing its fields individually.
type runBlob struct {
	Tokens    []string
	Accepted  bool
	ErrString string
	Steps     []string
	Tree      string
}

func newRunBlob(tokens []string, result lrparse.Result) runBlob {
	b := runBlob{
		Tokens:   tokens,
		Accepted: result.Accepted,
	}
	if result.Err != nil {
		b.ErrString = result.Err.Error()
	}
	for _, s := range result.Steps {
		b.Steps = append(b.Steps, s.String())
	}
	if result.Tree != nil {
		b.Tree = result.Tree.String()
	}
	return b
}

func (b runBlob) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(b); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (b *runBlob) UnmarshalBinary(data []byte) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(b)
}
