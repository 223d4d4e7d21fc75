package fireflies

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gonum.org/v1/gonum/spatial/r3"
)

// DocumentType tags the particle system the engine should build
const DocumentType = "fireflies"

// DefaultSpeed is the speed written by the generator
const DefaultSpeed = 0.5

// Document is the JSON file the engine loads a fireflies swarm from
type Document struct {
	Type   string       `json:"type"`
	Speed  float64      `json:"speed"`
	Points [][3]float64 `json:"points"`
}

// NewDocument wraps a path for serialization
func NewDocument(path Path, speed float64) *Document {
	points := make([][3]float64, len(path))
	for i, v := range path {
		points[i] = [3]float64{v.X, v.Y, v.Z}
	}
	return &Document{
		Type:   DocumentType,
		Speed:  speed,
		Points: points,
	}
}

// Path converts the stored points back into a Path
func (d *Document) Path() Path {
	path := make(Path, len(d.Points))
	for i, p := range d.Points {
		path[i] = r3.Vec{X: p[0], Y: p[1], Z: p[2]}
	}
	return path
}

// Marshal renders the document pretty-printed with 4-space indentation
func (d *Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "    ")
	if err := enc.Encode(d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteDocument writes the document to w in a single write
func WriteDocument(w io.Writer, d *Document) error {
	data, err := d.Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode fireflies document: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// ReadDocument parses a fireflies document. A missing speed defaults to 1.
func ReadDocument(r io.Reader) (*Document, error) {
	var raw struct {
		Type   string       `json:"type"`
		Speed  *float64     `json:"speed"`
		Points [][3]float64 `json:"points"`
	}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode fireflies document: %w", err)
	}

	d := &Document{Type: raw.Type, Speed: 1, Points: raw.Points}
	if raw.Speed != nil {
		d.Speed = *raw.Speed
	}
	return d, nil
}
