package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/umputun/chatpick/pkg/domain"
)

//go:generate go run ../../cmd/schema/main.go ../../settings.schema.json

// Record is the persisted form of domain.Settings
type Record struct {
	ChatName *string  `json:"chat_name" yaml:"chat_name" jsonschema:"description=Chat name to export from"`
	Prefix   *string  `json:"prefix" yaml:"prefix" jsonschema:"description=Text prefix of exported messages"`
	Keywords []string `json:"keywords" yaml:"keywords" jsonschema:"description=Lower-cased keywords"`
	DateFrom *string  `json:"date_from" yaml:"date_from" jsonschema:"pattern=^[0-9]+[.][0-9]+[.][0-9]{4}$,description=First day of the range (dd.mm.yyyy)"`
	DateTo   *string  `json:"date_to" yaml:"date_to" jsonschema:"pattern=^[0-9]+[.][0-9]+[.][0-9]{4}$,description=Last day of the range (dd.mm.yyyy)"`
}

// FileRepository keeps settings in a single JSON or YAML file.
// Files with .yml or .yaml extension are YAML, everything else is JSON.
type FileRepository struct {
	path string
}

// NewFileRepository makes a repository for the given path and ensures its directory exists
func NewFileRepository(path string) (*FileRepository, error) {
	if path == "" {
		return nil, errors.New("empty settings path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("ensure dir: %w", err)
	}
	return &FileRepository{path: path}, nil
}

// Path returns location of the backing file
func (r *FileRepository) Path() string {
	return r.path
}

// Exists reports whether the backing file is present
func (r *FileRepository) Exists() (bool, error) {
	_, err := os.Stat(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", r.path, err)
	}
	return true, nil
}

// Load reads and decodes the backing file. Date text not matching dd.mm.yyyy
// fails with domain.ErrMalformedDate.
func (r *FileRepository) Load() (domain.Settings, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("read settings: %w", err)
	}

	var rec Record
	if r.isYAML() {
		err = yaml.Unmarshal(data, &rec)
	} else {
		err = json.Unmarshal(data, &rec)
	}
	if err != nil {
		return domain.Settings{}, fmt.Errorf("parse settings %s: %w", r.path, err)
	}

	res, err := rec.toDomain()
	if err != nil {
		return domain.Settings{}, fmt.Errorf("parse settings %s: %w", r.path, err)
	}
	return res, nil
}

// Save encodes all fields and overwrites the backing file with a single write
func (r *FileRepository) Save(s domain.Settings) error {
	rec := NewRecord(s)

	var data []byte
	var err error
	if r.isYAML() {
		data, err = yaml.Marshal(rec)
	} else {
		data, err = json.MarshalIndent(rec, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(r.path, data, 0o600); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

func (r *FileRepository) isYAML() bool {
	ext := strings.ToLower(filepath.Ext(r.path))
	return ext == ".yml" || ext == ".yaml"
}

// Schema returns JSON schema of the persisted record
func Schema() *jsonschema.Schema {
	return jsonschema.Reflect(&Record{})
}

// NewRecord converts settings to the persisted record. Empty strings become
// nulls and keywords are always an array.
func NewRecord(s domain.Settings) Record {
	rec := Record{
		ChatName: strPtr(s.ChatName),
		Prefix:   strPtr(s.Prefix),
		Keywords: []string{},
		DateFrom: strPtr(domain.FormatDate(s.DateFrom)),
		DateTo:   strPtr(domain.FormatDate(s.DateTo)),
	}
	if len(s.Keywords) > 0 {
		rec.Keywords = append(rec.Keywords, s.Keywords...)
	}
	return rec
}

// toDomain converts a record to settings, keywords are copied as-is
func (rec Record) toDomain() (domain.Settings, error) {
	res := domain.Settings{}
	if rec.ChatName != nil {
		res.ChatName = *rec.ChatName
	}
	if rec.Prefix != nil {
		res.Prefix = *rec.Prefix
	}
	if len(rec.Keywords) > 0 {
		res.Keywords = rec.Keywords
	}

	var err error
	if res.DateFrom, err = parseDatePtr(rec.DateFrom); err != nil {
		return domain.Settings{}, fmt.Errorf("date_from: %w", err)
	}
	if res.DateTo, err = parseDatePtr(rec.DateTo); err != nil {
		return domain.Settings{}, fmt.Errorf("date_to: %w", err)
	}
	return res, nil
}

func parseDatePtr(text *string) (*time.Time, error) {
	if text == nil || *text == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(*text)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
