package models

import (
	"github.com/cascadews/cascade.go/pkg/wire"
)

// Path is the path form of an identifier. An empty SiteName and SiteID mean
// the Global area.
type Path struct {
	Path     string
	SiteID   string
	SiteName string
}

func PathFromWire(obj wire.Object) Path {
	return Path{
		Path:     wire.StringAt(obj, "path"),
		SiteID:   wire.StringAt(obj, "siteId"),
		SiteName: wire.StringAt(obj, "siteName"),
	}
}

func (p Path) IsGlobal() bool {
	return p.SiteName == "" && p.SiteID == ""
}

func (p Path) ToWire() wire.Object {
	obj := wire.Object{
		"path":     p.Path,
		"siteName": wire.Nullable(p.SiteName),
	}
	if p.SiteID != "" {
		obj["siteId"] = p.SiteID
	}
	return obj
}

func (p Path) String() string {
	if p.SiteName == "" {
		return p.Path
	}
	return p.SiteName + ":" + p.Path
}
