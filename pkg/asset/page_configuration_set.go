package asset

import (
	"fmt"

	"github.com/cascadews/cascade.go/pkg/models"
	"github.com/cascadews/cascade.go/pkg/wire"
)

// PageConfigurationSet owns page configurations, each with its own page
// regions.
type PageConfigurationSet struct {
	*base
	configurations []*models.PageConfiguration
}

func newPageConfigurationSet(b *base) (*PageConfigurationSet, error) {
	s := &PageConfigurationSet{base: b}
	b.rebuild = s.readConfigurations
	b.flatten = s.writeConfigurations
	if err := s.readConfigurations(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PageConfigurationSet) readConfigurations() error {
	m, err := wire.FromWire(wire.Get(s.bag, "pageConfigurations", "pageConfiguration"), models.PageConfigurationFromWire)
	if err != nil {
		return fmt.Errorf("page configurations: %w", err)
	}
	s.configurations = m.Items()
	return nil
}

func (s *PageConfigurationSet) writeConfigurations(bag wire.Object) {
	bag["pageConfigurations"] = wire.Object{
		"pageConfiguration": wire.ToWire(s.configurations, (*models.PageConfiguration).ToWire, wire.ArityList),
	}
}

func (s *PageConfigurationSet) PageConfigurations() []*models.PageConfiguration {
	out := make([]*models.PageConfiguration, len(s.configurations))
	copy(out, s.configurations)
	return out
}

func (s *PageConfigurationSet) PageConfigurationNames() []string {
	names := make([]string, len(s.configurations))
	for i, c := range s.configurations {
		names[i] = c.Name
	}
	return names
}

func (s *PageConfigurationSet) PageConfiguration(name string) (*models.PageConfiguration, bool) {
	for _, c := range s.configurations {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// DefaultConfiguration returns the configuration flagged as default.
func (s *PageConfigurationSet) DefaultConfiguration() (*models.PageConfiguration, bool) {
	for _, c := range s.configurations {
		if c.DefaultConfiguration {
			return c, true
		}
	}
	return nil, false
}
