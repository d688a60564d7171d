package attr

import (
	"github.com/aidee-health/embodycodec/cursor"
	"github.com/aidee-health/embodycodec/errs"
)

// Decode looks up id's descriptor, decodes exactly its declared width
// from the front of data, and reports how many bytes were consumed.
func Decode(id uint8, data []byte) (Value, int, error) {
	d, ok := Lookup(id)
	if !ok {
		return nil, 0, errs.UnknownAttribute(id)
	}

	if len(data) < d.Width {
		return nil, 0, errs.Truncated(d.Name, d.Width, len(data))
	}

	r := cursor.NewReader(data[:d.Width])

	v, err := d.decode(r)
	if err != nil {
		return nil, 0, err
	}

	return v, d.Width, nil
}

// Encode looks up id's descriptor and encodes value into exactly its
// declared width.
func Encode(id uint8, v Value) ([]byte, error) {
	d, ok := Lookup(id)
	if !ok {
		return nil, errs.UnknownAttribute(id)
	}

	w := cursor.NewWriter(d.Width)
	if err := d.encode(w, v); err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// DecodeFromReader decodes attribute id from r, consuming exactly the
// descriptor's declared width and advancing r past it. This is the entry
// point message body codecs use for attribute-bearing messages: the id
// has already been read from the shared body reader, and there may be
// trailing fixed fields after the value in the same body.
func DecodeFromReader(id uint8, r *cursor.Reader) (Value, error) {
	d, ok := Lookup(id)
	if !ok {
		return nil, errs.UnknownAttribute(id)
	}

	sub, err := r.ReadBytes(d.Width, d.Name)
	if err != nil {
		return nil, err
	}

	return d.decode(cursor.NewReader(sub))
}

// EncodeToWriter encodes value for attribute id directly into w, writing
// exactly the descriptor's declared width.
func EncodeToWriter(id uint8, v Value, w *cursor.Writer) error {
	d, ok := Lookup(id)
	if !ok {
		return errs.UnknownAttribute(id)
	}

	return d.encode(w, v)
}

// Width returns the declared wire width for attribute id, or an error if
// id is unknown. Message encoders use this to size their output buffer
// before writing a single byte.
func Width(id uint8) (int, error) {
	d, ok := Lookup(id)
	if !ok {
		return 0, errs.UnknownAttribute(id)
	}

	return d.Width, nil
}
