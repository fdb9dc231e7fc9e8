package domain

import (
	"encoding/json"
	"log/slog"
)

// Redacted replaces the secret value anywhere it would be rendered.
const Redacted = "[REDACTED]"

// Secret wraps a credential so it cannot leak through logging or
// serialization. Every rendering path (fmt, json, yaml, slog) produces
// a redaction marker; only Expose returns the raw value.
type Secret struct {
	value string
}

// NewSecret wraps a raw credential value.
func NewSecret(value string) Secret {
	return Secret{value: value}
}

// Expose returns the raw credential. Call sites should be limited to the
// point where the value leaves the process (the auth cookie header).
func (s Secret) Expose() string {
	return s.value
}

// IsZero reports whether no credential was provided.
func (s Secret) IsZero() bool {
	return s.value == ""
}

func (s Secret) String() string {
	return Redacted
}

func (s Secret) GoString() string {
	return "domain.Secret{" + Redacted + "}"
}

// LogValue redacts the secret when it is passed to slog.
func (s Secret) LogValue() slog.Value {
	return slog.StringValue(Redacted)
}

// MarshalJSON never emits the raw value.
func (s Secret) MarshalJSON() ([]byte, error) {
	return []byte(`"` + Redacted + `"`), nil
}

func (s *Secret) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.value = raw
	return nil
}

// MarshalYAML never emits the raw value.
func (s Secret) MarshalYAML() (interface{}, error) {
	return Redacted, nil
}

func (s *Secret) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	s.value = raw
	return nil
}
