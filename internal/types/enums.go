package types

type ElementKind string

const (
	ElementKindClass     ElementKind = "class"
	ElementKindSlot      ElementKind = "slot"
	ElementKindEnumValue ElementKind = "enum-value"
)

type MappingSpecificity string

const (
	SpecificityAny     MappingSpecificity = "any"
	SpecificityExact   MappingSpecificity = "exact"
	SpecificityClose   MappingSpecificity = "close"
	SpecificityNarrow  MappingSpecificity = "narrow"
	SpecificityBroad   MappingSpecificity = "broad"
	SpecificityRelated MappingSpecificity = "related"
)

// SpecificityOrder is the most-specific-wins search order applied when a
// lookup requests SpecificityAny. The related bucket is intentionally
// excluded; it is only consulted when requested explicitly.
var SpecificityOrder = []MappingSpecificity{
	SpecificityExact,
	SpecificityClose,
	SpecificityNarrow,
	SpecificityBroad,
}

type WarningCategory string

const (
	WarningAmbiguousMapping WarningCategory = "ambiguous-mapping"
	WarningMissingMapping   WarningCategory = "missing-mapping"
	WarningMissingPrefix    WarningCategory = "missing-prefix"
	WarningMissingRoot      WarningCategory = "missing-root"
	WarningUnknownElement   WarningCategory = "unknown-element"
)
