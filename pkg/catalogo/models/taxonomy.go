package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Taxonomy is the three-level ULIMA classification: Categoria -> Linea -> Sublineas.
// It encodes as a JSON object whose keys keep the slice order.
type Taxonomy []Categoria

// Categoria is the top level of the taxonomy.
type Categoria struct {
	Name   string
	Lineas []Linea
}

// Linea is a research line with its ordered sub-lines.
type Linea struct {
	Name      string
	Sublineas []string
}

// Clone returns a deep copy of t.
func (t Taxonomy) Clone() Taxonomy {
	out := make(Taxonomy, len(t))
	for i, c := range t {
		lineas := make([]Linea, len(c.Lineas))
		for j, l := range c.Lineas {
			lineas[j] = Linea{Name: l.Name, Sublineas: append([]string(nil), l.Sublineas...)}
		}
		out[i] = Categoria{Name: c.Name, Lineas: lineas}
	}
	return out
}

// MarshalJSON implements json.Marshaler.
func (t Taxonomy) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range t {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeKey(&buf, c.Name); err != nil {
			return nil, err
		}
		buf.WriteByte('{')
		for j, l := range c.Lineas {
			if j > 0 {
				buf.WriteByte(',')
			}
			if err := writeKey(&buf, l.Name); err != nil {
				return nil, err
			}
			subs := l.Sublineas
			if subs == nil {
				subs = []string{}
			}
			b, err := json.Marshal(subs)
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeKey(buf *bytes.Buffer, key string) error {
	b, err := json.Marshal(key)
	if err != nil {
		return err
	}
	buf.Write(b)
	buf.WriteByte(':')
	return nil
}

// UnmarshalJSON implements json.Unmarshaler, keeping key order.
func (t *Taxonomy) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	out := Taxonomy{}
	err := decodeObject(dec, func(categoria string) error {
		c := Categoria{Name: categoria}
		err := decodeObject(dec, func(linea string) error {
			var subs []string
			if err := dec.Decode(&subs); err != nil {
				return fmt.Errorf("linea %q: %w", linea, err)
			}
			c.Lineas = append(c.Lineas, Linea{Name: linea, Sublineas: subs})
			return nil
		})
		if err != nil {
			return fmt.Errorf("categoria %q: %w", categoria, err)
		}
		out = append(out, c)
		return nil
	})
	if err != nil {
		return err
	}
	*t = out
	return nil
}

// decodeObject walks one JSON object, calling field for each key.
// field must consume the value.
func decodeObject(dec *json.Decoder, field func(key string) error) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}
		if err := field(key); err != nil {
			return err
		}
	}
	_, err = dec.Token()
	return err
}
