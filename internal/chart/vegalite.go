// Package chart builds Vega-Lite documents from aggregated records.
//
// The documents carry data plus display configuration (axis titles, number
// formats, sort order, slider bindings); rendering is left to any Vega-Lite
// runtime.
package chart

import "github.com/theirongolddev/coopcost/internal/model"

// SchemaURL is the Vega-Lite schema every document declares.
const SchemaURL = "https://vega.github.io/schema/vega-lite/v5.json"

// Spec is a top-level Vega-Lite document.
type Spec struct {
	Schema  string  `json:"$schema"`
	Title   *Title  `json:"title,omitempty"`
	Params  []Param `json:"params,omitempty"`
	HConcat []View  `json:"hconcat,omitempty"`
	VConcat []View  `json:"vconcat,omitempty"`
	Config  *Config `json:"config,omitempty"`
}

// Title is the document headline block.
type Title struct {
	Text     string   `json:"text"`
	Anchor   string   `json:"anchor,omitempty"`
	FontSize int      `json:"fontSize,omitempty"`
	Subtitle []string `json:"subtitle,omitempty"`
	Align    string   `json:"align,omitempty"`
}

// Param is a variable parameter (Value + Bind) or a selection (Select).
type Param struct {
	Name   string  `json:"name"`
	Value  any     `json:"value,omitempty"`
	Select *Select `json:"select,omitempty"`
	Bind   *Bind   `json:"bind,omitempty"`
}

// Select configures a selection parameter.
type Select struct {
	Type    string   `json:"type"`
	Fields  []string `json:"fields,omitempty"`
	Nearest bool     `json:"nearest,omitempty"`
	On      string   `json:"on,omitempty"`
	Clear   string   `json:"clear,omitempty"`
}

// Bind attaches an input widget to a parameter.
type Bind struct {
	Input   string        `json:"input"`
	Min     *float64      `json:"min,omitempty"`
	Max     *float64      `json:"max,omitempty"`
	Step    *float64      `json:"step,omitempty"`
	Options []model.Value `json:"options,omitempty"`
	Labels  []string      `json:"labels,omitempty"`
	Name    string        `json:"name,omitempty"`
}

// View is a unit or layered chart.
type View struct {
	Title     string      `json:"title,omitempty"`
	Width     int         `json:"width,omitempty"`
	Height    int         `json:"height,omitempty"`
	Data      *Data       `json:"data,omitempty"`
	Mark      *Mark       `json:"mark,omitempty"`
	Encoding  *Encoding   `json:"encoding,omitempty"`
	Params    []Param     `json:"params,omitempty"`
	Transform []Transform `json:"transform,omitempty"`
	Layer     []View      `json:"layer,omitempty"`
}

// Data holds inline records.
type Data struct {
	Values any `json:"values"`
}

// Mark is the graphical mark of a view.
type Mark struct {
	Type        string `json:"type"`
	Tooltip     bool   `json:"tooltip,omitempty"`
	Point       bool   `json:"point,omitempty"`
	InnerRadius int    `json:"innerRadius,omitempty"`
	StrokeDash  []int  `json:"strokeDash,omitempty"`
	Color       string `json:"color,omitempty"`
	Align       string `json:"align,omitempty"`
	Dx          int    `json:"dx,omitempty"`
	Dy          int    `json:"dy,omitempty"`
}

// Encoding maps fields to visual channels.
type Encoding struct {
	X       *Channel  `json:"x,omitempty"`
	Y       *Channel  `json:"y,omitempty"`
	Color   *Channel  `json:"color,omitempty"`
	Theta   *Channel  `json:"theta,omitempty"`
	Text    *Channel  `json:"text,omitempty"`
	Opacity *Channel  `json:"opacity,omitempty"`
	Tooltip []Channel `json:"tooltip,omitempty"`
}

// Channel is one encoding channel definition.
type Channel struct {
	Field     string     `json:"field,omitempty"`
	Type      string     `json:"type,omitempty"`
	Aggregate string     `json:"aggregate,omitempty"`
	Title     string     `json:"title,omitempty"`
	Sort      []string   `json:"sort,omitempty"`
	Axis      *Axis      `json:"axis,omitempty"`
	Format    string     `json:"format,omitempty"`
	Value     any        `json:"value,omitempty"`
	Condition *Condition `json:"condition,omitempty"`
}

// Condition switches a channel on a selection.
type Condition struct {
	Param string `json:"param"`
	Value any    `json:"value"`
	Empty *bool  `json:"empty,omitempty"`
}

// Axis configures one axis.
type Axis struct {
	Format      string  `json:"format,omitempty"`
	Title       string  `json:"title,omitempty"`
	TickMinStep float64 `json:"tickMinStep,omitempty"`
}

// Transform is a view transform. Only selection filters are used.
type Transform struct {
	Filter *Filter `json:"filter,omitempty"`
}

// Filter keeps rows selected by a parameter.
type Filter struct {
	Param string `json:"param"`
	Empty *bool  `json:"empty,omitempty"`
}

// Config holds document-wide styling.
type Config struct {
	Axis   *AxisConfig   `json:"axis,omitempty"`
	Legend *LegendConfig `json:"legend,omitempty"`
	View   *ViewConfig   `json:"view,omitempty"`
}

// AxisConfig styles every axis.
type AxisConfig struct {
	Grid          bool `json:"grid"`
	TitleFontSize int  `json:"titleFontSize,omitempty"`
	LabelFontSize int  `json:"labelFontSize,omitempty"`
}

// LegendConfig styles every legend.
type LegendConfig struct {
	TitleFontSize int `json:"titleFontSize,omitempty"`
	LabelFontSize int `json:"labelFontSize,omitempty"`
	TitleLimit    int `json:"titleLimit,omitempty"`
}

// ViewConfig styles the view frame.
type ViewConfig struct {
	Stroke string `json:"stroke"`
}
