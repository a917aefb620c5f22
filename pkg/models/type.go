package models

// Type is an asset type tag as the service spells it on the wire.
type Type string

const (
	TypeAssetFactory                  Type = "assetfactory"
	TypeAssetFactoryContainer         Type = "assetfactorycontainer"
	TypeConnectorContainer            Type = "connectorcontainer"
	TypeContentType                   Type = "contenttype"
	TypeContentTypeContainer          Type = "contenttypecontainer"
	TypeDataDefinition                Type = "datadefinition"
	TypeDataDefinitionContainer       Type = "datadefinitioncontainer"
	TypeDestination                   Type = "destination"
	TypeFacebookConnector             Type = "facebookconnector"
	TypeFeedBlock                     Type = "block_FEED"
	TypeFile                          Type = "file"
	TypeFolder                        Type = "folder"
	TypeGoogleAnalyticsConnector      Type = "googleanalyticsconnector"
	TypeGroup                         Type = "group"
	TypeIndexBlock                    Type = "block_INDEX"
	TypeMessage                       Type = "message"
	TypeMetadataSet                   Type = "metadataset"
	TypeMetadataSetContainer          Type = "metadatasetcontainer"
	TypePage                          Type = "page"
	TypePageConfiguration             Type = "pageconfiguration"
	TypePageConfigurationSet          Type = "pageconfigurationset"
	TypePageConfigurationSetContainer Type = "pageconfigurationsetcontainer"
	TypePageRegion                    Type = "pageregion"
	TypePublishSet                    Type = "publishset"
	TypePublishSetContainer           Type = "publishsetcontainer"
	TypeReference                     Type = "reference"
	TypeRole                          Type = "role"
	TypeScriptFormat                  Type = "format_SCRIPT"
	TypeSite                          Type = "site"
	TypeSiteDestinationContainer      Type = "sitedestinationcontainer"
	TypeSymlink                       Type = "symlink"
	TypeTarget                        Type = "target"
	TypeTemplate                      Type = "template"
	TypeTextBlock                     Type = "block_TEXT"
	TypeTransportDB                   Type = "transport_db"
	TypeTransportFS                   Type = "transport_fs"
	TypeTransportFTP                  Type = "transport_ftp"
	TypeTransportContainer            Type = "transportcontainer"
	TypeUser                          Type = "user"
	TypeWordPressConnector            Type = "wordpressconnector"
	TypeWorkflow                      Type = "workflow"
	TypeWorkflowDefinition            Type = "workflowdefinition"
	TypeWorkflowDefinitionContainer   Type = "workflowdefinitioncontainer"
	TypeXHTMLDataDefinitionBlock      Type = "block_XHTML_DATADEFINITION"
	TypeXMLBlock                      Type = "block_XML"
	TypeXSLTFormat                    Type = "format_XSLT"

	// TypeBlock and TypeFormat address any block or any format. They are
	// accepted by read, which makes them useful as probes, but no envelope
	// field carries them.
	TypeBlock  Type = "block"
	TypeFormat Type = "format"

	// TypeUnknown is what type discovery reports when nothing matched.
	TypeUnknown Type = "unknown"
)

func (t Type) String() string {
	return string(t)
}

// Category groups types by capability. Every concrete asset carries one, so
// "is this a block" is a value comparison.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryBlock
	CategoryFormat
	CategoryContainer
	CategoryLinkable
	CategoryPage
	CategoryTemplate
	CategoryAdmin
	CategoryConnector
	CategoryTransport
	CategoryPrincipal
	CategorySite
	CategoryMessage
	CategoryWorkflow
)

var categoryNames = map[Category]string{
	CategoryUnknown:   "unknown",
	CategoryBlock:     "block",
	CategoryFormat:    "format",
	CategoryContainer: "container",
	CategoryLinkable:  "linkable",
	CategoryPage:      "page",
	CategoryTemplate:  "template",
	CategoryAdmin:     "admin",
	CategoryConnector: "connector",
	CategoryTransport: "transport",
	CategoryPrincipal: "principal",
	CategorySite:      "site",
	CategoryMessage:   "message",
	CategoryWorkflow:  "workflow",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// Shape names the concrete asset implementation a type materializes into.
type Shape string

const (
	ShapeNone                 Shape = ""
	ShapeAsset                Shape = "Asset"
	ShapeBlock                Shape = "Block"
	ShapeFormat               Shape = "Format"
	ShapeContainer            Shape = "Container"
	ShapeTemplate             Shape = "Template"
	ShapePageConfigurationSet Shape = "PageConfigurationSet"
)

// ShapeDescriptor is what the registry knows about the concrete form of a type.
type ShapeDescriptor struct {
	Type     Type
	Property string
	Shape    Shape
	Category Category
}
