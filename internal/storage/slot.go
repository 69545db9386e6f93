package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"todomvc/internal/todo"
)

const entriesSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "array",
	"items": {
		"type": "object",
		"required": ["description", "completed", "editing"],
		"properties": {
			"description": {"type": "string"},
			"completed": {"type": "boolean"},
			"editing": {"type": "boolean"}
		}
	}
}`

var entriesValidator = jsonschema.MustCompileString("entries.schema.json", entriesSchema)

// Slot persists the entry list under a single key.
type Slot struct {
	kv     KV
	key    string
	logger *log.Logger
}

func NewSlot(kv KV, key string, logger *log.Logger) *Slot {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Slot{kv: kv, key: key, logger: logger}
}

func (s *Slot) Key() string { return s.key }

// Load returns the stored entries. A missing or unreadable slot yields an
// empty list; only a failing store is reported.
func (s *Slot) Load(ctx context.Context) ([]todo.Entry, error) {
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.Debug("slot empty", "key", s.key)
			return []todo.Entry{}, nil
		}
		return nil, fmt.Errorf("%w: get %q: %v", ErrUnavailable, s.key, err)
	}
	entries, err := decodeEntries(raw)
	if err != nil {
		s.logger.Warn("discarding unreadable slot", "key", s.key, "err", err)
		return []todo.Entry{}, nil
	}
	s.logger.Debug("slot loaded", "key", s.key, "entries", len(entries))
	return entries, nil
}

func (s *Slot) Save(ctx context.Context, entries []todo.Entry) error {
	raw, err := encodeEntries(entries)
	if err != nil {
		return err
	}
	if err := s.kv.Put(ctx, s.key, raw); err != nil {
		return err
	}
	s.logger.Debug("slot saved", "key", s.key, "entries", len(entries))
	return nil
}

func encodeEntries(entries []todo.Entry) ([]byte, error) {
	if entries == nil {
		entries = []todo.Entry{}
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return raw, nil
}

func decodeEntries(raw []byte) ([]todo.Entry, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if err := entriesValidator.Validate(doc); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	entries := []todo.Entry{}
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return entries, nil
}
