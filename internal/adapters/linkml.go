package adapters

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"github.com/biolink/biolink-model-toolkit/internal/types"
)

// schemaHeader covers the top-level scalar fields of a LinkML schema
// document. Element maps are decoded separately via node walking so that
// document order survives; Go map decoding would randomize it and the
// index builder needs a stable enumeration order.
type schemaHeader struct {
	ID            string            `yaml:"id"`
	Name          string            `yaml:"name"`
	Version       string            `yaml:"version"`
	License       string            `yaml:"license"`
	DefaultPrefix string            `yaml:"default_prefix"`
	Prefixes      map[string]string `yaml:"prefixes"`
}

// elementDef is the shared shape of LinkML class and slot definitions,
// restricted to the fields this toolkit consumes.
type elementDef struct {
	Description     string            `yaml:"description"`
	IsA             string            `yaml:"is_a"`
	Mixins          []string          `yaml:"mixins"`
	Abstract        bool              `yaml:"abstract"`
	Mixin           bool              `yaml:"mixin"`
	Deprecated      string            `yaml:"deprecated"`
	Aliases         []string          `yaml:"aliases"`
	ExactMappings   []string          `yaml:"exact_mappings"`
	CloseMappings   []string          `yaml:"close_mappings"`
	NarrowMappings  []string          `yaml:"narrow_mappings"`
	BroadMappings   []string          `yaml:"broad_mappings"`
	RelatedMappings []string          `yaml:"related_mappings"`
	Mappings        []string          `yaml:"mappings"`
	IDPrefixes      []string          `yaml:"id_prefixes"`
	InSubset        []string          `yaml:"in_subset"`
	Domain          string            `yaml:"domain"`
	Range           string            `yaml:"range"`
	Symmetric       bool              `yaml:"symmetric"`
	Inverse         string            `yaml:"inverse"`
	Multivalued     bool                       `yaml:"multivalued"`
	Annotations     map[string]annotationValue `yaml:"annotations"`
}

// annotationValue tolerates the annotation shapes LinkML emits: a bare
// scalar ("canonical_predicate: true") or a tag/value mapping.
type annotationValue string

func (a *annotationValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*a = annotationValue(node.Value)
	case yaml.MappingNode:
		if value := mappingValue(node, "value"); value != nil {
			*a = annotationValue(value.Value)
		}
	}
	return nil
}

// enumDef is a LinkML enumeration; its permissible values are decoded by
// node walking for the same ordering reason as classes and slots.
type permissibleValueDef struct {
	Description   string   `yaml:"description"`
	IsA           string   `yaml:"is_a"`
	Meaning       string   `yaml:"meaning"`
	Aliases       []string `yaml:"aliases"`
	ExactMappings []string `yaml:"exact_mappings"`
	CloseMappings []string `yaml:"close_mappings"`
	InSubset      []string `yaml:"in_subset"`
}

// DecodeSchema parses a LinkML-shaped YAML document into the structured
// schema graph the core consumes. Classes come first, then slots, then
// enum permissible values, each in document order.
func DecodeSchema(data []byte) (types.SchemaDefinition, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return types.SchemaDefinition{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse schema document").
			WithCause(err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return types.SchemaDefinition{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("schema document is not a mapping")
	}
	root := doc.Content[0]

	var header schemaHeader
	if err := root.Decode(&header); err != nil {
		return types.SchemaDefinition{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to decode schema header").
			WithCause(err)
	}
	if strings.TrimSpace(header.Name) == "" {
		return types.SchemaDefinition{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("schema document missing name")
	}

	schema := types.SchemaDefinition{
		ID:            header.ID,
		Name:          header.Name,
		Version:       header.Version,
		License:       header.License,
		DefaultPrefix: header.DefaultPrefix,
		Prefixes:      header.Prefixes,
	}

	classes, err := decodeDefinitions(mappingValue(root, "classes"), types.ElementKindClass)
	if err != nil {
		return types.SchemaDefinition{}, err
	}
	slots, err := decodeDefinitions(mappingValue(root, "slots"), types.ElementKindSlot)
	if err != nil {
		return types.SchemaDefinition{}, err
	}
	enumValues, err := decodeEnums(mappingValue(root, "enums"))
	if err != nil {
		return types.SchemaDefinition{}, err
	}

	schema.Elements = append(schema.Elements, classes...)
	schema.Elements = append(schema.Elements, slots...)
	schema.Elements = append(schema.Elements, enumValues...)
	return schema, nil
}

// mappingValue returns the value node for key within a mapping node, or
// nil when absent.
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

func decodeDefinitions(node *yaml.Node, kind types.ElementKind) ([]types.Element, error) {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil, nil
	}
	var out []types.Element
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		value := node.Content[i+1]
		var def elementDef
		if value.Kind == yaml.MappingNode {
			if err := value.Decode(&def); err != nil {
				return nil, errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg("failed to decode " + string(kind) + " definition '" + name + "'").
					WithCause(err)
			}
		}
		out = append(out, elementFromDef(name, kind, def))
	}
	return out, nil
}

func elementFromDef(name string, kind types.ElementKind, def elementDef) types.Element {
	related := append([]string{}, def.RelatedMappings...)
	related = append(related, def.Mappings...)
	var annotations map[string]string
	if len(def.Annotations) > 0 {
		annotations = make(map[string]string, len(def.Annotations))
		for tag, value := range def.Annotations {
			annotations[tag] = string(value)
		}
	}
	return types.Element{
		Name:        name,
		Kind:        kind,
		Description: def.Description,
		Aliases:     def.Aliases,
		IsA:         def.IsA,
		Mixins:      def.Mixins,
		Abstract:    def.Abstract,
		Mixin:       def.Mixin,
		Deprecated:  def.Deprecated,
		Symmetric:   def.Symmetric,
		Inverse:     def.Inverse,
		Domain:      def.Domain,
		Range:       def.Range,
		Multivalued: def.Multivalued,
		IDPrefixes:  def.IDPrefixes,
		InSubset:    def.InSubset,
		Annotations: annotations,
		Mappings: types.MappingSet{
			Exact:   def.ExactMappings,
			Close:   def.CloseMappings,
			Narrow:  def.NarrowMappings,
			Broad:   def.BroadMappings,
			Related: related,
		},
	}
}

func decodeEnums(node *yaml.Node) ([]types.Element, error) {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil, nil
	}
	var out []types.Element
	for i := 0; i+1 < len(node.Content); i += 2 {
		enumName := node.Content[i].Value
		enumNode := node.Content[i+1]
		values := mappingValue(enumNode, "permissible_values")
		if values == nil || values.Kind != yaml.MappingNode {
			continue
		}
		for j := 0; j+1 < len(values.Content); j += 2 {
			valueName := values.Content[j].Value
			valueNode := values.Content[j+1]
			var def permissibleValueDef
			if valueNode.Kind == yaml.MappingNode {
				if err := valueNode.Decode(&def); err != nil {
					return nil, errbuilder.New().
						WithCode(errbuilder.CodeInvalidArgument).
						WithMsg("failed to decode permissible value '" + valueName + "' of enum '" + enumName + "'").
						WithCause(err)
				}
			}
			exact := append([]string{}, def.ExactMappings...)
			if def.Meaning != "" {
				exact = append(exact, def.Meaning)
			}
			out = append(out, types.Element{
				Name:        valueName,
				Kind:        types.ElementKindEnumValue,
				Description: def.Description,
				Aliases:     def.Aliases,
				IsA:         def.IsA,
				EnumName:    enumName,
				ValueParent: def.IsA,
				InSubset:    def.InSubset,
				Mappings: types.MappingSet{
					Exact: exact,
					Close: def.CloseMappings,
				},
			})
		}
	}
	return out, nil
}
