// Package assets resolves asset ids from the funnel definition into
// sendable artifacts: media paths for audio/image assets, rendered text
// for template assets.
package assets

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leadflowhq/leadflow/pkg/config"
)

var (
	// ErrNotFound is returned when an asset id has no definition
	ErrNotFound = errors.New("asset not found")
)

// Kind classifies a resolved asset
type Kind string

const (
	KindAudio Kind = "audio"
	KindImage Kind = "image"
	KindText  Kind = "text"
)

// Resolved is a ready-to-send asset: media assets carry Path (relative to
// the public media root), text assets carry the rendered Text.
type Resolved struct {
	ID   string
	Kind Kind
	Path string
	Text string
}

// Vars carries per-thread values bound into text templates.
type Vars struct {
	// Name is the contact's first name; empty renders "{name}" away along
	// with the surrounding comma-space if present.
	Name string
}

// Library resolves asset ids against the merged funnel definition.
// Immutable after construction.
type Library struct {
	assets  map[string]*config.AssetConfig
	aliases map[string]string
	links   map[string]string
}

// NewLibrary builds a library from the validated funnel definition.
func NewLibrary(fc *config.FunnelsConfig) *Library {
	return &Library{
		assets:  fc.Assets,
		aliases: fc.Aliases,
		links:   fc.Links,
	}
}

// Resolve resolves an asset id (or alias) into a sendable artifact.
// Text templates are rendered with vars; media assets return their path.
func (l *Library) Resolve(id string, vars Vars) (*Resolved, error) {
	canonical := id
	asset, ok := l.assets[canonical]
	if !ok {
		if target, aliased := l.aliases[canonical]; aliased {
			canonical = target
			asset, ok = l.assets[canonical]
		}
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	switch asset.Kind {
	case "audio":
		return &Resolved{ID: canonical, Kind: KindAudio, Path: asset.Path}, nil
	case "image":
		return &Resolved{ID: canonical, Kind: KindImage, Path: asset.Path}, nil
	case "text":
		return &Resolved{ID: canonical, Kind: KindText, Text: l.render(asset, vars)}, nil
	default:
		return nil, fmt.Errorf("%w: %s has invalid kind %q", ErrNotFound, id, asset.Kind)
	}
}

// render binds {name} and {link} placeholders into a text template.
func (l *Library) render(asset *config.AssetConfig, vars Vars) string {
	text := asset.Template

	if vars.Name != "" {
		text = strings.ReplaceAll(text, "{name}", vars.Name)
	} else {
		// Drop the placeholder and the comma-space address form around it
		// so "Here you go, {name}: link" degrades to "Here you go: link".
		text = strings.ReplaceAll(text, ", {name}", "")
		text = strings.ReplaceAll(text, "{name}", "")
	}

	if asset.Link != "" {
		if url, ok := l.links[asset.Link]; ok {
			text = strings.ReplaceAll(text, "{link}", url)
		}
	}

	return text
}
