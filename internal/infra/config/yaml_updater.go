package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"reactor.de/timehandler/internal/domain"
)

// SettableKeys lists the dotted keys accepted by YAMLConfigUpdater.Set.
var SettableKeys = []string{
	"timezone",
	"formats.date",
	"formats.time",
	"formats.timestamp",
	"log_file",
	"ntp_server",
}

// YAMLConfigUpdater implements the domain.ConfigWriter interface for YAML files.
type YAMLConfigUpdater struct {
	path   string
	loader domain.ConfigLoader
}

// NewYAMLConfigUpdater creates a new config updater.
func NewYAMLConfigUpdater(path string, loader domain.ConfigLoader) *YAMLConfigUpdater {
	return &YAMLConfigUpdater{
		path:   path,
		loader: loader,
	}
}

// Set writes value under a dotted key, creating the file and any missing
// parent mappings. The YAML node tree is edited in place so comments and key
// order survive. The result is validated before it replaces the file.
func (u *YAMLConfigUpdater) Set(key, value string) error {
	if !isSettable(key) {
		return fmt.Errorf("%w: %q (valid keys: %s)", domain.ErrUnknownKey, key, strings.Join(SettableKeys, ", "))
	}

	data, err := os.ReadFile(u.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read %s: %w", filepath.Base(u.path), err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("could not parse %s: %w", filepath.Base(u.path), err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		doc = yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}}}
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: top level of %s must be a mapping", domain.ErrValidation, filepath.Base(u.path))
	}

	if err := setPath(root, strings.Split(key, "."), value); err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(u.path), err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(u.path), err)
	}
	newContent := buf.Bytes()

	// Validate the updated configuration
	if err := u.loader.Validate(newContent); err != nil {
		return fmt.Errorf("refusing to set %s: %w", key, err)
	}

	if err := os.MkdirAll(filepath.Dir(u.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Write the updated content atomically
	tempPath := u.path + ".tmp"
	if err := os.WriteFile(tempPath, newContent, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := os.Rename(tempPath, u.path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to update %s: %w", filepath.Base(u.path), err)
	}

	return nil
}

func isSettable(key string) bool {
	for _, k := range SettableKeys {
		if k == key {
			return true
		}
	}
	return false
}

func setPath(mapping *yaml.Node, path []string, value string) error {
	// Mapping content alternates key, value.
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value != path[0] {
			continue
		}
		node := mapping.Content[i+1]
		if len(path) == 1 {
			setScalar(node, value)
			return nil
		}
		if node.Kind != yaml.MappingNode {
			if node.Tag != "!!null" {
				return fmt.Errorf("%w: %s must be a mapping", domain.ErrValidation, path[0])
			}
			*node = yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		}
		return setPath(node, path[1:], value)
	}

	keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: path[0]}
	if len(path) == 1 {
		valueNode := &yaml.Node{}
		setScalar(valueNode, value)
		mapping.Content = append(mapping.Content, keyNode, valueNode)
		return nil
	}
	child := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	mapping.Content = append(mapping.Content, keyNode, child)
	return setPath(child, path[1:], value)
}

// setScalar stores value as a quoted string, keeping single quotes when the
// old value used them. Patterns start with '%', which YAML reserves.
func setScalar(node *yaml.Node, value string) {
	style := yaml.DoubleQuotedStyle
	if node.Style == yaml.SingleQuotedStyle {
		style = yaml.SingleQuotedStyle
	}
	*node = yaml.Node{
		Kind:        yaml.ScalarNode,
		Tag:         "!!str",
		Value:       value,
		Style:       style,
		LineComment: node.LineComment,
		HeadComment: node.HeadComment,
		FootComment: node.FootComment,
	}
}
