package project

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Manifest is the parsed form of a package.json. The root manifest
// contributes the workspace glob list; workspace manifests contribute the
// package name and its scripts.
type Manifest struct {
	Name       string     `json:"name"`
	Version    string     `json:"version,omitempty"`
	Private    bool       `json:"private,omitempty"`
	Workspaces []string   `json:"workspaces,omitempty"`
	Scripts    ScriptList `json:"scripts,omitempty"`
}

// ScriptEntry is one declared script: a name and the shell command it runs.
type ScriptEntry struct {
	Name    string `json:"name"`
	Command string `json:"command"`
}

// ScriptList holds a manifest's scripts in declaration order. encoding/json
// decodes objects into maps with no stable order, so ScriptList decodes the
// object itself to keep the order the author wrote.
type ScriptList []ScriptEntry

// Get returns the command declared for name.
func (s ScriptList) Get(name string) (string, bool) {
	for _, e := range s {
		if e.Name == name {
			return e.Command, true
		}
	}
	return "", false
}

// UnmarshalJSON decodes a JSON object one key at a time, preserving
// declaration order. A repeated key keeps its first position and takes the
// last value, matching how JSON objects collapse duplicates.
func (s *ScriptList) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("scripts must be an object")
	}

	var entries ScriptList
	index := make(map[string]int)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name := keyTok.(string)

		var command string
		if err := dec.Decode(&command); err != nil {
			return fmt.Errorf("script %q: command must be a string", name)
		}

		if i, seen := index[name]; seen {
			entries[i].Command = command
			continue
		}
		index[name] = len(entries)
		entries = append(entries, ScriptEntry{Name: name, Command: command})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*s = entries
	return nil
}

// MarshalJSON renders the scripts back as an object in declaration order.
func (s ScriptList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(e.Name)
		if err != nil {
			return nil, err
		}
		command, err := json.Marshal(e.Command)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(command)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ParseManifest parses package.json bytes. It rejects documents that are
// not JSON objects, since a manifest that parses to an array, string, or
// null cannot describe a package.
func ParseManifest(data []byte) (*Manifest, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("manifest is not a JSON object")
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
