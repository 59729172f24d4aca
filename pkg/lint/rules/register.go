package rules

import "github.com/yaklabco/gosemlint/pkg/lint"

// RegisterAll registers all built-in rules with the given registry.
func RegisterAll(registry *lint.Registry) {
	// Landmark rules
	registry.Register(NewSingleMainRule())       // SEM001
	registry.Register(NewLandmarkPresenceRule()) // SEM002

	// Heading rules
	registry.Register(NewHeadingIncrementRule()) // SEM003
	registry.Register(NewSectionHeadingRule())   // SEM004
	registry.Register(NewSingleH1Rule())         // SEM011

	// Interactive element rules
	registry.Register(NewInteractiveDivRule()) // SEM005
	registry.Register(NewAnchorHrefRule())     // SEM008

	// Nesting rules
	registry.Register(NewArticleInParagraphRule()) // SEM006

	// Media rules
	registry.Register(NewImgAltRule()) // SEM007

	// Structure rules
	registry.Register(NewDuplicateIDRule())   // SEM009
	registry.Register(NewListStructureRule()) // SEM010
}

// init registers all built-in rules with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic rule registration
func init() {
	RegisterAll(lint.DefaultRegistry)
}
