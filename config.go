package datavalidation

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// RuleFile is a rule map loaded from a YAML or JSON document:
//
//	rules:
//	  name: required|string|max:100
//	  age:
//	    - integer
//	    - between:18,65
//	  email:
//	    - name: required
//	    - name: email
//	messages:
//	  age.between: ":field must be between :min and :max"
type RuleFile struct {
	Rules    Rules
	Messages Messages
	// Order lists the fields in document order.
	Order []string
}

// LoadRulesFile is like LoadRules but reads the named file.
func LoadRulesFile(name string) (*RuleFile, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadRules(f)
}

// LoadRules parses a rule document. Every field's rule specification is
// parsed, so malformed tokens are reported here as a [ConfigError]. Rule
// names are resolved later, against the registry of the validator using them.
func LoadRules(r io.Reader) (*RuleFile, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &RuleFile{Rules: Rules{}, Messages: Messages{}}, nil
		}
		return nil, fmt.Errorf("decode rule document: %w", err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("rule document line %d: want a mapping", root.Line)
	}

	rf := &RuleFile{Rules: Rules{}, Messages: Messages{}}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		switch key.Value {
		case "rules":
			if err := rf.decodeRules(val); err != nil {
				return nil, err
			}
		case "messages":
			if err := val.Decode(&rf.Messages); err != nil {
				return nil, fmt.Errorf("rule document line %d: messages: %w", val.Line, err)
			}
		default:
			return nil, fmt.Errorf("rule document line %d: unknown key %q", key.Line, key.Value)
		}
	}
	return rf, nil
}

func (rf *RuleFile) decodeRules(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("rule document line %d: rules: want a mapping", n.Line)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		field, val := n.Content[i].Value, n.Content[i+1]
		var spec any
		switch {
		case val.Kind == yaml.ScalarNode && val.ShortTag() == "!!null":
			// "field:" or "field: ~" declares the field without rules.
		case val.Kind == yaml.ScalarNode:
			spec = val.Value
		default:
			if err := val.Decode(&spec); err != nil {
				return fmt.Errorf("rule document line %d: %s: %w", val.Line, field, err)
			}
		}
		if _, err := ParseRules(spec); err != nil {
			return &ConfigError{Field: field, Err: err}
		}
		if _, dup := rf.Rules[field]; !dup {
			rf.Order = append(rf.Order, field)
		}
		rf.Rules[field] = spec
	}
	return nil
}

// Validator returns a validator for record using the file's rules, messages
// and field order. opts are applied after them.
func (rf *RuleFile) Validator(record any, opts ...Option) *Validator {
	base := []Option{WithMessages(rf.Messages), WithOrder(rf.Order...)}
	return New(record, rf.Rules, append(base, opts...)...)
}
