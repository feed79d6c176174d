// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input of bridge deck data from JSON or YAML files
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/cpmech/gogrillage/dist"
	"github.com/cpmech/gogrillage/geo"
	"github.com/cpmech/gogrillage/grid"
	"github.com/cpmech/gogrillage/mesh"
)

// validate is shared by all decks
var validate = validator.New()

// MeshData holds the geometry and meshing parameters
type MeshData struct {
	Type         string         `json:"type"         yaml:"type"         validate:"oneof=ortho oblique"`
	LongDim      float64        `json:"longdim"      yaml:"longdim"      validate:"gt=0"`
	Width        float64        `json:"width"        yaml:"width"        validate:"gt=0"`
	SkewA        float64        `json:"skewa"        yaml:"skewa"        validate:"gt=-90,lt=90"`
	SkewB        float64        `json:"skewb"        yaml:"skewb"        validate:"gt=-90,lt=90"`
	NumLongGrid  int            `json:"nlong"        yaml:"nlong"        validate:"gte=2"`
	NumTransGrid int            `json:"ntrans"       yaml:"ntrans"       validate:"gte=2"`
	EdgeDistA    float64        `json:"edgedista"    yaml:"edgedista"    validate:"gte=0"`
	EdgeDistB    float64        `json:"edgedistb"    yaml:"edgedistb"    validate:"gte=0"`
	Spacing      []float64      `json:"spacing"      yaml:"spacing"      validate:"omitempty,dive,gt=0"`
	Spans        []float64      `json:"spans"        yaml:"spans"        validate:"omitempty,dive,gt=0"`
	Decimals     int            `json:"decimals"     yaml:"decimals"     validate:"gte=1,lte=12"`
	Sweep        [][2]float64   `json:"sweep"        yaml:"sweep"        validate:"omitempty,min=2,max=3"`
	Fix          map[int][6]int `json:"fix"          yaml:"fix"`
}

// MaterialData holds material data
type MaterialData struct {
	Name string  `json:"name" yaml:"name" validate:"required"`
	Kind string  `json:"kind" yaml:"kind" validate:"oneof=concrete steel custom"`
	Code string  `json:"code" yaml:"code"`
	E    float64 `json:"E"    yaml:"E"    validate:"gt=0"`
	Nu   float64 `json:"nu"   yaml:"nu"   validate:"gte=0,lt=0.5"`
	Rho  float64 `json:"rho"  yaml:"rho"  validate:"gte=0"`
}

// SectionData holds section data given either by shape and dimensions or by properties
type SectionData struct {
	Name      string  `json:"name"      yaml:"name"      validate:"required"`
	Shape     string  `json:"shape"     yaml:"shape"     validate:"omitempty,oneof=rectangle I-beam circle"`
	Wid       float64 `json:"wid"       yaml:"wid"       validate:"gte=0"`
	Hei       float64 `json:"hei"       yaml:"hei"       validate:"gte=0"`
	Tf        float64 `json:"tf"        yaml:"tf"        validate:"gte=0"`
	Tw        float64 `json:"tw"        yaml:"tw"        validate:"gte=0"`
	Rad       float64 `json:"rad"       yaml:"rad"       validate:"gte=0"`
	A         float64 `json:"A"         yaml:"A"         validate:"gte=0"`
	J         float64 `json:"J"         yaml:"J"         validate:"gte=0"`
	Iy        float64 `json:"Iy"        yaml:"Iy"        validate:"gte=0"`
	Iz        float64 `json:"Iz"        yaml:"Iz"        validate:"gte=0"`
	UnitWidth bool    `json:"unitwidth" yaml:"unitwidth"`
}

// MemberData assigns a material and a section to a category of elements
type MemberData struct {
	Name     string  `json:"name"     yaml:"name"     validate:"required"`
	Category string  `json:"category" yaml:"category" validate:"required"`
	Material string  `json:"material" yaml:"material" validate:"required"`
	Section  string  `json:"section"  yaml:"section"  validate:"required"`
	Offset   float64 `json:"offset"   yaml:"offset"`
}

// LoadData holds the data of one load. Vertices are (x, z, p) triplets.
type LoadData struct {
	Name  string       `json:"name"  yaml:"name"  validate:"required"`
	Kind  string       `json:"kind"  yaml:"kind"  validate:"oneof=point line patch nodal compound"`
	Verts [][3]float64 `json:"verts" yaml:"verts"`
	Node  int          `json:"node"  yaml:"node"  validate:"gte=0"`
	F     [6]float64   `json:"f"     yaml:"f"`
	Loads []*LoadData  `json:"loads" yaml:"loads" validate:"omitempty,dive"`
	Shift [2]float64   `json:"shift" yaml:"shift"`
}

// CaseData holds a load case
type CaseData struct {
	Name   string      `json:"name"   yaml:"name"   validate:"required"`
	Factor float64     `json:"factor" yaml:"factor"`
	Loads  []*LoadData `json:"loads"  yaml:"loads"  validate:"required,min=1,dive"`
}

// MovingData holds a load moving along a straight polyline or an arc through three points
type MovingData struct {
	Name string       `json:"name" yaml:"name" validate:"required"`
	Load *LoadData    `json:"load" yaml:"load" validate:"required"`
	Path [][2]float64 `json:"path" yaml:"path" validate:"min=2"`
	Arc  bool         `json:"arc"  yaml:"arc"`
	N    int          `json:"n"    yaml:"n"    validate:"gte=1"`
}

// CombData holds a combination of load cases
type CombData struct {
	Name    string             `json:"name"    yaml:"name"    validate:"required"`
	Factors map[string]float64 `json:"factors" yaml:"factors" validate:"required,min=1"`
}

// Deck holds all input data of a bridge deck
type Deck struct {
	Desc      string          `json:"desc"      yaml:"desc"`
	Backend   string          `json:"backend"   yaml:"backend"   validate:"required"`
	Dist      string          `json:"dist"      yaml:"dist"      validate:"oneof=linear hermite"`
	Mesh      MeshData        `json:"mesh"      yaml:"mesh"`
	Materials []*MaterialData `json:"materials" yaml:"materials" validate:"required,min=1,dive"`
	Sections  []*SectionData  `json:"sections"  yaml:"sections"  validate:"required,min=1,dive"`
	Members   []*MemberData   `json:"members"   yaml:"members"   validate:"required,min=1,dive"`
	Cases     []*CaseData     `json:"cases"     yaml:"cases"     validate:"omitempty,dive"`
	Moving    []*MovingData   `json:"moving"    yaml:"moving"    validate:"omitempty,dive"`
	Combs     []*CombData     `json:"combs"     yaml:"combs"     validate:"omitempty,dive"`

	// derived
	Key string `json:"-" yaml:"-"` // file name key; e.g. "deck01" for "deck01.json"
}

// SetDefault sets default values
func (o *Deck) SetDefault() {
	o.Backend = "frame"
	o.Dist = "linear"
	o.Mesh.Type = string(grid.Ortho)
	o.Mesh.Decimals = 3
}

// PostProcess fixes data after decoding
func (o *Deck) PostProcess() {
	o.Backend = strings.ToLower(o.Backend)
	o.Dist = strings.ToLower(o.Dist)
	for _, c := range o.Cases {
		if c.Factor == 0 {
			c.Factor = 1
		}
	}
}

// Validate checks the deck data
func (o *Deck) Validate() (err error) {
	if err = validate.Struct(o); err != nil {
		return formatError(err)
	}
	names := make(map[string]bool)
	for _, c := range o.Cases {
		if names[c.Name] {
			return chk.Err("load case %q is repeated", c.Name)
		}
		names[c.Name] = true
	}
	for _, m := range o.Moving {
		if names[m.Name] {
			return chk.Err("moving load %q has the same name as a load case", m.Name)
		}
		names[m.Name] = true
	}
	return
}

// ReadDeck reads a deck from a .json, .yaml or .yml file
func ReadDeck(path string) (o *Deck, err error) {

	// read file
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot read deck file %q:\n%v", path, err)
	}

	// decode
	o = new(Deck)
	o.SetDefault()
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		err = json.Unmarshal(b, o)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, o)
	default:
		return nil, chk.Err("deck file extension %q is invalid; use .json, .yaml or .yml", ext)
	}
	if err != nil {
		return nil, chk.Err("cannot decode deck file %q:\n%v", path, err)
	}
	o.PostProcess()
	o.Key = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	// check
	if err = o.Validate(); err != nil {
		return nil, chk.Err("deck file %q is invalid:\n%v", path, err)
	}
	return
}

// MeshOptions returns the options for the mesh generator
func (o *Deck) MeshOptions() (opts mesh.Options, err error) {
	d := o.Mesh
	opts.Options = grid.Options{
		LongDim:      d.LongDim,
		Width:        d.Width,
		SkewA:        d.SkewA,
		SkewB:        d.SkewB,
		NumLongGrid:  d.NumLongGrid,
		NumTransGrid: d.NumTransGrid,
		EdgeDistA:    d.EdgeDistA,
		EdgeDistB:    d.EdgeDistB,
		Spacing:      d.Spacing,
		Spans:        d.Spans,
		Type:         grid.MeshType(d.Type),
		Decimals:     d.Decimals,
	}
	opts.Fix = d.Fix
	if len(d.Sweep) > 0 {
		opts.Sweep, err = mesh.NewSweepPath(points(d.Sweep)...)
		if err != nil {
			return opts, chk.Err("cannot set sweep path:\n%v", err)
		}
	}
	return
}

// Mode returns the load distribution mode
func (o *Deck) Mode() dist.Mode {
	if o.Dist == "hermite" {
		return dist.Hermite
	}
	return dist.Linear
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// points converts (x, z) pairs into points
func points(xz [][2]float64) (pts []geo.Point) {
	pts = make([]geo.Point, len(xz))
	for k, p := range xz {
		pts[k] = geo.Point{X: p[0], Z: p[1]}
	}
	return
}

// formatError converts validation errors into a readable message
func formatError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, len(verrs))
	for k, e := range verrs {
		msgs[k] = io.Sf("%s: failed on %q (value = %v)", e.Namespace(), e.Tag(), e.Value())
	}
	return chk.Err("%s", strings.Join(msgs, "\n"))
}
