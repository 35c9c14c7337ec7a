// SPDX-License-Identifier: MPL-2.0

package selectorfile

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
	})
	return v
}

// Parse decodes the contents of a configuration file. path is used for error
// messages and recorded on the returned File.
//
// An empty document (no content, only comments, or null) yields a File with
// no `selectors` key. Invalid YAML yields a *ParseError and no File.
func Parse(path string, data []byte) (*File, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	file := &File{path: path, raw: data, defs: make(map[string]Definition)}

	root := documentRoot(&doc)
	if root == nil || isNull(root) {
		return file, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, &ParseError{
			Path: path,
			Err:  fmt.Errorf("line %d: configuration root must be a mapping, got %s", root.Line, describeKind(root)),
		}
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if key.Value != selectorsKey {
			continue
		}
		if file.hasSelectors {
			return nil, &ParseError{Path: path, Err: fmt.Errorf("line %d: duplicate %q key", key.Line, selectorsKey)}
		}
		file.hasSelectors = true
		if err := file.addSelectors(resolveAlias(value)); err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
	}

	return file, nil
}

// ParseDefinition decodes a single selector definition from YAML, the way
// Parse decodes each entry of the `selectors` mapping.
func ParseDefinition(name string, data []byte) (Definition, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Definition{}, &ParseError{Err: err}
	}
	node := documentRoot(&doc)
	if node == nil {
		node = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null"}
	}
	return decodeDefinition(name, node), nil
}

func (f *File) addSelectors(node *yaml.Node) error {
	if isNull(node) {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: %q must be a mapping of selector names, got %s", node.Line, selectorsKey, describeKind(node))
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: selector names must be strings, got %s", key.Line, describeKind(key))
		}
		name := key.Value
		if _, exists := f.defs[name]; exists {
			return fmt.Errorf("line %d: selector %q is defined more than once", key.Line, name)
		}
		f.order = append(f.order, name)
		f.defs[name] = decodeDefinition(name, value)
	}
	return nil
}

func decodeDefinition(name string, node *yaml.Node) Definition {
	def := Definition{name: name}

	node = resolveAlias(node)
	if node.Kind != yaml.MappingNode {
		def.err = &InvalidSelectorError{Name: name, Reason: ReasonNotMapping}
		return def
	}

	// yaml.v3 keeps decoding the remaining fields after a type error, so the
	// description is still available to listings.
	decodeErr := node.Decode(&def.selector)
	if decodeErr != nil {
		def.err = &InvalidSelectorError{Name: name, Reason: decodeReason(decodeErr)}
		return def
	}

	if err := validate.Struct(def.selector); err != nil {
		def.err = &InvalidSelectorError{Name: name, Reason: validationReason(err)}
	}
	return def
}

func decodeReason(err error) string {
	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) {
		return strings.Join(typeErr.Errors, "; ")
	}
	return err.Error()
}

func validationReason(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err.Error()
	}
	fe := fieldErrs[0]
	if fe.Field() == "command" && fe.Tag() == "required" {
		return ReasonMissingCommand
	}
	return fmt.Sprintf("field '%s' failed '%s' validation", fe.Field(), fe.Tag())
}

func documentRoot(doc *yaml.Node) *yaml.Node {
	switch doc.Kind {
	case 0:
		return nil
	case yaml.DocumentNode:
		if len(doc.Content) == 0 {
			return nil
		}
		return resolveAlias(doc.Content[0])
	default:
		return resolveAlias(doc)
	}
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}

func describeKind(node *yaml.Node) string {
	switch node.Kind {
	case yaml.SequenceNode:
		return "a list"
	case yaml.MappingNode:
		return "a mapping"
	case yaml.ScalarNode:
		if isNull(node) {
			return "null"
		}
		return fmt.Sprintf("scalar %q", node.Value)
	default:
		return "an unsupported node"
	}
}
