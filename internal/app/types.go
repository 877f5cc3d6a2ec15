package app

import "github.com/biolink/biolink-model-toolkit/internal/types"

// LoadRequest selects the schema source and session options for one
// toolkit instance. Path wins over URL; with neither set the published
// latest release is fetched.
type LoadRequest struct {
	Path             string
	URL              string
	PredicateMapPath string
	PredicateMapURL  string
	SkipPredicateMap bool
	Roots            types.RootNames
	HTTPTimeoutSec   int
	HTTPRetries      int
	HTTPRetryDelayMs int
}

// ElementView is the caller-facing element record returned by GetElement.
type ElementView struct {
	Name        string
	CURIE       string
	Kind        types.ElementKind
	Description string
	Aliases     []string
	IsA         string
	Mixins      []string
	Abstract    bool
	Mixin       bool
	Deprecated  string
	Symmetric   bool
	Inverse     string
	Domain      string
	Range       string
	Multivalued bool
	EnumName    string
	IDPrefixes  []string
	InSubset    []string
	Mappings    types.MappingSet
	Annotations map[string]string
}

// Classification bundles every root-classification verdict for one name,
// as printed by the classify command.
type Classification struct {
	Name              string
	Known             bool
	IsCategory        bool
	IsPredicate       bool
	IsNodeProperty    bool
	IsAssociationSlot bool
	IsAssociation     bool
	IsMixin           bool
	IsEnumValue       bool
}
