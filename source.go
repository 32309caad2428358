package luckytemplate

import "io"

// Source produces the content of a [File]. The write engine opens the target
// file and calls WriteContent exactly once with it as the sink; whatever the
// source writes becomes the file's content, byte for byte.
type Source interface {
	WriteContent(w io.Writer) error
}

// SourceFunc adapts a plain function to a [Source].
type SourceFunc func(w io.Writer) error

func (fn SourceFunc) WriteContent(w io.Writer) error {
	return fn(w)
}

// literalSource is the fixed-payload convenience case. It is the only source
// shape whose bytes the snapshot engine records for comparison.
type literalSource string

func (s literalSource) WriteContent(w io.Writer) error {
	_, err := io.WriteString(w, string(s))
	return err
}

// String returns a [Source] that writes s verbatim.
func String(s string) Source {
	return literalSource(s)
}

// Bytes returns a [Source] that writes b verbatim.
func Bytes(b []byte) Source {
	return literalSource(b)
}
