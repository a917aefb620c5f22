package models

import (
	"fmt"

	"github.com/cascadews/cascade.go/pkg/constants"
)

type typeEntry struct {
	typ          Type
	property     string
	shape        Shape
	category     Category
	discoverable bool
}

// typeTable is in the declaration order type discovery relies on.
var typeTable = [...]typeEntry{
	{TypeAssetFactory, "assetFactory", ShapeAsset, CategoryAdmin, true},
	{TypeAssetFactoryContainer, "assetFactoryContainer", ShapeContainer, CategoryContainer, true},
	{TypeConnectorContainer, "connectorContainer", ShapeContainer, CategoryContainer, true},
	{TypeContentType, "contentType", ShapeAsset, CategoryAdmin, true},
	{TypeContentTypeContainer, "contentTypeContainer", ShapeContainer, CategoryContainer, true},
	{TypeDataDefinition, "dataDefinition", ShapeAsset, CategoryAdmin, true},
	{TypeDataDefinitionContainer, "dataDefinitionContainer", ShapeContainer, CategoryContainer, true},
	{TypeDestination, "destination", ShapeAsset, CategoryAdmin, true},
	{TypeFacebookConnector, "facebookConnector", ShapeAsset, CategoryConnector, true},
	{TypeFeedBlock, "feedBlock", ShapeBlock, CategoryBlock, true},
	{TypeFile, "file", ShapeAsset, CategoryLinkable, true},
	{TypeFolder, "folder", ShapeContainer, CategoryContainer, true},
	{TypeGoogleAnalyticsConnector, "googleAnalyticsConnector", ShapeAsset, CategoryConnector, true},
	{TypeGroup, "group", ShapeAsset, CategoryPrincipal, true},
	{TypeIndexBlock, "indexBlock", ShapeBlock, CategoryBlock, true},
	{TypeMessage, "", ShapeNone, CategoryMessage, true},
	{TypeMetadataSet, "metadataSet", ShapeAsset, CategoryAdmin, true},
	{TypeMetadataSetContainer, "metadataSetContainer", ShapeContainer, CategoryContainer, true},
	{TypePage, "page", ShapeAsset, CategoryPage, true},
	{TypePageConfiguration, "", ShapeNone, CategoryAdmin, true},
	{TypePageConfigurationSet, "pageConfigurationSet", ShapePageConfigurationSet, CategoryAdmin, true},
	{TypePageConfigurationSetContainer, "pageConfigurationSetContainer", ShapeContainer, CategoryContainer, true},
	{TypePageRegion, "", ShapeNone, CategoryAdmin, true},
	{TypePublishSet, "publishSet", ShapeAsset, CategoryAdmin, true},
	{TypePublishSetContainer, "publishSetContainer", ShapeContainer, CategoryContainer, true},
	{TypeReference, "reference", ShapeAsset, CategoryLinkable, true},
	{TypeRole, "role", ShapeAsset, CategoryPrincipal, true},
	{TypeScriptFormat, "scriptFormat", ShapeFormat, CategoryFormat, true},
	{TypeSite, "site", ShapeAsset, CategorySite, true},
	{TypeSiteDestinationContainer, "siteDestinationContainer", ShapeContainer, CategoryContainer, true},
	{TypeSymlink, "symlink", ShapeAsset, CategoryLinkable, true},
	{TypeTarget, "target", ShapeAsset, CategoryAdmin, true},
	{TypeTemplate, "template", ShapeTemplate, CategoryTemplate, true},
	{TypeTextBlock, "textBlock", ShapeBlock, CategoryBlock, true},
	{TypeTransportDB, "databaseTransport", ShapeAsset, CategoryTransport, true},
	{TypeTransportFS, "fileSystemTransport", ShapeAsset, CategoryTransport, true},
	{TypeTransportFTP, "ftpTransport", ShapeAsset, CategoryTransport, true},
	{TypeTransportContainer, "transportContainer", ShapeContainer, CategoryContainer, true},
	{TypeUser, "user", ShapeAsset, CategoryPrincipal, true},
	{TypeWordPressConnector, "wordPressConnector", ShapeAsset, CategoryConnector, true},
	{TypeWorkflow, "", ShapeNone, CategoryWorkflow, true},
	{TypeWorkflowDefinition, "workflowDefinition", ShapeAsset, CategoryAdmin, true},
	{TypeWorkflowDefinitionContainer, "workflowDefinitionContainer", ShapeContainer, CategoryContainer, true},
	{TypeXHTMLDataDefinitionBlock, "xhtmlDataDefinitionBlock", ShapeBlock, CategoryBlock, true},
	{TypeXMLBlock, "xmlBlock", ShapeBlock, CategoryBlock, true},
	{TypeXSLTFormat, "xsltFormat", ShapeFormat, CategoryFormat, true},

	{TypeBlock, "", ShapeNone, CategoryBlock, false},
	{TypeFormat, "", ShapeNone, CategoryFormat, false},
}

// propertyOrder is the order of the envelope fields as the service declares them.
var propertyOrder = [...]string{
	"assetFactory",
	"assetFactoryContainer",
	"connectorContainer",
	"contentType",
	"contentTypeContainer",
	"dataDefinition",
	"dataDefinitionContainer",
	"databaseTransport",
	"destination",
	"facebookConnector",
	"feedBlock",
	"file",
	"fileSystemTransport",
	"folder",
	"ftpTransport",
	"googleAnalyticsConnector",
	"group",
	"indexBlock",
	"metadataSet",
	"metadataSetContainer",
	"page",
	"pageConfigurationSet",
	"pageConfigurationSetContainer",
	"publishSet",
	"publishSetContainer",
	"reference",
	"role",
	"scriptFormat",
	"site",
	"siteDestinationContainer",
	"symlink",
	"target",
	"template",
	"textBlock",
	"transportContainer",
	"user",
	"wordPressConnector",
	"workflowDefinition",
	"workflowDefinitionContainer",
	"xhtmlDataDefinitionBlock",
	"xmlBlock",
	"xsltFormat",
}

// nonPathAddressable types are keyed by name or id, never by site path.
var nonPathAddressable = map[Type]struct{}{
	TypeGroup: {},
	TypeRole:  {},
	TypeSite:  {},
	TypeUser:  {},
}

var (
	byType       map[Type]typeEntry
	byProperty   map[string]Type
	discoverable []Type
)

func init() {
	byType = make(map[Type]typeEntry, len(typeTable))
	byProperty = make(map[string]Type, len(propertyOrder))

	for _, e := range typeTable {
		byType[e.typ] = e
		if e.property != "" {
			byProperty[e.property] = e.typ
		}
		if e.discoverable {
			discoverable = append(discoverable, e.typ)
		}
	}

	if len(byProperty) != len(propertyOrder) {
		panic("models: type table and property order disagree")
	}
	for _, p := range propertyOrder {
		if _, ok := byProperty[p]; !ok {
			panic("models: property " + p + " has no type")
		}
	}
}

// ParseType checks s against the registered tags.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if !IsKnownType(t) {
		return TypeUnknown, fmt.Errorf("%w: %q", constants.ErrNoSuchType, s)
	}
	return t, nil
}

func IsKnownType(t Type) bool {
	_, ok := byType[t]
	return ok
}

// PropertyFieldFor returns the envelope field that carries assets of type t.
func PropertyFieldFor(t Type) (string, error) {
	e, ok := byType[t]
	if !ok {
		return "", fmt.Errorf("%w: %q", constants.ErrNoSuchType, t)
	}
	if e.property == "" {
		return "", fmt.Errorf("%w: %q has no envelope field", constants.ErrNoSuchType, t)
	}
	return e.property, nil
}

// ShapeFor returns the concrete shape of type t. Types that never appear in
// an envelope have no shape.
func ShapeFor(t Type) (ShapeDescriptor, error) {
	e, ok := byType[t]
	if !ok {
		return ShapeDescriptor{}, fmt.Errorf("%w: %q", constants.ErrNoSuchType, t)
	}
	if e.shape == ShapeNone {
		return ShapeDescriptor{}, fmt.Errorf("%w: %q has no asset shape", constants.ErrNoSuchType, t)
	}
	return ShapeDescriptor{Type: e.typ, Property: e.property, Shape: e.shape, Category: e.category}, nil
}

// CategoryOf returns CategoryUnknown for unregistered types.
func CategoryOf(t Type) Category {
	return byType[t].category
}

func IsNonPathAddressable(t Type) bool {
	_, ok := nonPathAddressable[t]
	return ok
}

// TypeForProperty is the reverse of PropertyFieldFor.
func TypeForProperty(property string) (Type, bool) {
	t, ok := byProperty[property]
	return t, ok
}

// DiscoverableTypes returns every type read probes may try, in declaration order.
func DiscoverableTypes() []Type {
	out := make([]Type, len(discoverable))
	copy(out, discoverable)
	return out
}

// Properties returns the envelope field names in declaration order.
func Properties() []string {
	out := make([]string, len(propertyOrder))
	copy(out, propertyOrder[:])
	return out
}

func IsProperty(property string) bool {
	_, ok := byProperty[property]
	return ok
}

// PopulatedType scans the registered types in declaration order and returns
// the first one whose field is set in envelope.
func PopulatedType(envelope map[string]any) (Type, bool) {
	if envelope == nil {
		return TypeUnknown, false
	}
	for _, t := range discoverable {
		e := byType[t]
		if e.property == "" {
			continue
		}
		if v, ok := envelope[e.property]; ok && v != nil {
			return t, true
		}
	}
	return TypeUnknown, false
}
