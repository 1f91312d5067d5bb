package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits decoded payloads.
const MaxInputSize = 4 << 20

var (
	ErrEmptyInput    = errors.New("empty resume input")
	ErrInputTooLarge = errors.New("resume input too large")
)

// Format is the serialization of a resume file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath guesses the format from a file extension; anything that is
// not .yaml/.yml is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// envelope detects whether the input wraps the data in {data, settings}.
type envelope struct {
	Data     *ResumeData    `json:"data" yaml:"data"`
	Settings ResumeSettings `json:"settings" yaml:"settings"`
}

// Decode reads either a Document envelope or bare ResumeData.
func Decode(b []byte, f Format) (*Document, error) {
	if len(bytes.TrimSpace(b)) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) > MaxInputSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(b), MaxInputSize)
	}

	unmarshal := json.Unmarshal
	if f == FormatYAML {
		unmarshal = func(data []byte, v any) error { return yaml.Unmarshal(data, v) }
	}

	var env envelope
	if err := unmarshal(b, &env); err != nil {
		return nil, fmt.Errorf("decode %s resume: %w", f, err)
	}
	if env.Data != nil {
		normalizeLevels(env.Data)
		return &Document{Data: *env.Data, Settings: env.Settings}, nil
	}

	var data ResumeData
	if err := unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("decode %s resume: %w", f, err)
	}
	normalizeLevels(&data)
	return &Document{Data: data}, nil
}

// normalizeLevels lowercases skill levels so "Expert" and "expert" are the
// same level for the schema and the formatters.
func normalizeLevels(d *ResumeData) {
	for i := range d.Skills {
		d.Skills[i].Level = SkillLevel(strings.ToLower(strings.TrimSpace(string(d.Skills[i].Level))))
	}
}
