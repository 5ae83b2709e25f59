package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"gopkg.in/ini.v1"
)

// Registry reads snapshot source profiles from an ini file such as ~/.atlascfg:
//
//	[default]
//	type = file
//	path = ./export.json
//
//	[prod]
//	type = firebase
//	database_url = https://example.firebaseio.com
//	credentials = /etc/atlas/service-account.json
type Registry interface {
	GetProfiles(ctx context.Context) ([]domain.SourceProfile, error)
	GetProfile(ctx context.Context, name string) (domain.SourceProfile, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

// GetProfiles lists every non-empty section in file order.
func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]domain.SourceProfile, error) {
	var profiles []domain.SourceProfile
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}
		profile, err := toProfile(section)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetProfile(_ context.Context, name string) (domain.SourceProfile, error) {
	section, err := cr.cfg.GetSection(name)
	if err != nil || len(section.Keys()) == 0 {
		return domain.SourceProfile{}, fmt.Errorf("profile %s not found", name)
	}
	return toProfile(section)
}

func toProfile(section *ini.Section) (domain.SourceProfile, error) {
	profile := domain.SourceProfile{
		Name:        section.Name(),
		Type:        domain.SourceType(strings.ToLower(section.Key("type").MustString(string(domain.SourceTypeFile)))),
		Path:        section.Key("path").String(),
		DatabaseURL: section.Key("database_url").String(),
		Credentials: section.Key("credentials").String(),
		Root:        section.Key("root").String(),
	}

	switch profile.Type {
	case domain.SourceTypeFile, domain.SourceTypeDuckDB:
		if profile.Path == "" {
			return profile, fmt.Errorf("profile %s: path is required for %s sources", profile.Name, profile.Type)
		}
	case domain.SourceTypeFirebase:
		if profile.DatabaseURL == "" {
			return profile, fmt.Errorf("profile %s: database_url is required for firebase sources", profile.Name)
		}
	default:
		return profile, fmt.Errorf("profile %s: unsupported source type %q", profile.Name, profile.Type)
	}
	return profile, nil
}
