package fluentkit

import "github.com/fluentkit/fluentkit/observe"

// Sentinel values for the sizing properties. A size left at UseComputedSize
// defers to the widget's content measurement; UsePrefSize on a min or max
// bound pins it to the preferred size.
const (
	UseComputedSize float64 = -1
	UsePrefSize     float64 = -2
)

// Region is the base for widgets that occupy layout space. It adds the
// sizing and background properties and the stylesheet list.
type Region struct {
	Widget

	prefWidth  *observe.Property[float64]
	prefHeight *observe.Property[float64]
	minWidth   *observe.Property[float64]
	minHeight  *observe.Property[float64]
	maxWidth   *observe.Property[float64]
	maxHeight  *observe.Property[float64]

	backgroundColor *observe.Property[uint32]

	stylesheets *observe.List[string]
}

// NewRegion creates a standalone region.
func NewRegion() *Region {
	r := &Region{}
	r.initRegion(r)
	return r
}

func (r *Region) initRegion(self Node) {
	r.initWidget(self)
	r.prefWidth = observe.NewFloat64Property(self, "prefWidth", UseComputedSize)
	r.prefHeight = observe.NewFloat64Property(self, "prefHeight", UseComputedSize)
	r.minWidth = observe.NewFloat64Property(self, "minWidth", UseComputedSize)
	r.minHeight = observe.NewFloat64Property(self, "minHeight", UseComputedSize)
	r.maxWidth = observe.NewFloat64Property(self, "maxWidth", UseComputedSize)
	r.maxHeight = observe.NewFloat64Property(self, "maxHeight", UseComputedSize)
	r.backgroundColor = observe.NewProperty[uint32](self, "backgroundColor", activeTheme.BackgroundColor)
	r.stylesheets = observe.NewList[string](self, "stylesheets")
}

// RegionBase returns the embedded region.
func (r *Region) RegionBase() *Region {
	return r
}

// PrefWidthProperty returns the preferred-width property.
func (r *Region) PrefWidthProperty() *observe.Property[float64] { return r.prefWidth }

// PrefWidth returns the preferred width.
func (r *Region) PrefWidth() float64 { return r.prefWidth.Get() }

// SetPrefWidth sets the preferred width.
func (r *Region) SetPrefWidth(v float64) { r.prefWidth.Set(v) }

// PrefHeightProperty returns the preferred-height property.
func (r *Region) PrefHeightProperty() *observe.Property[float64] { return r.prefHeight }

// PrefHeight returns the preferred height.
func (r *Region) PrefHeight() float64 { return r.prefHeight.Get() }

// SetPrefHeight sets the preferred height.
func (r *Region) SetPrefHeight(v float64) { r.prefHeight.Set(v) }

// MinWidthProperty returns the minimum-width property.
func (r *Region) MinWidthProperty() *observe.Property[float64] { return r.minWidth }

// MinWidth returns the minimum width.
func (r *Region) MinWidth() float64 { return r.minWidth.Get() }

// SetMinWidth sets the minimum width.
func (r *Region) SetMinWidth(v float64) { r.minWidth.Set(v) }

// MinHeightProperty returns the minimum-height property.
func (r *Region) MinHeightProperty() *observe.Property[float64] { return r.minHeight }

// MinHeight returns the minimum height.
func (r *Region) MinHeight() float64 { return r.minHeight.Get() }

// SetMinHeight sets the minimum height.
func (r *Region) SetMinHeight(v float64) { r.minHeight.Set(v) }

// MaxWidthProperty returns the maximum-width property.
func (r *Region) MaxWidthProperty() *observe.Property[float64] { return r.maxWidth }

// MaxWidth returns the maximum width.
func (r *Region) MaxWidth() float64 { return r.maxWidth.Get() }

// SetMaxWidth sets the maximum width.
func (r *Region) SetMaxWidth(v float64) { r.maxWidth.Set(v) }

// MaxHeightProperty returns the maximum-height property.
func (r *Region) MaxHeightProperty() *observe.Property[float64] { return r.maxHeight }

// MaxHeight returns the maximum height.
func (r *Region) MaxHeight() float64 { return r.maxHeight.Get() }

// SetMaxHeight sets the maximum height.
func (r *Region) SetMaxHeight(v float64) { r.maxHeight.Set(v) }

// SetPrefSize sets both preferred dimensions.
func (r *Region) SetPrefSize(width, height float64) {
	r.prefWidth.Set(width)
	r.prefHeight.Set(height)
}

// SetMinSize sets both minimum dimensions.
func (r *Region) SetMinSize(width, height float64) {
	r.minWidth.Set(width)
	r.minHeight.Set(height)
}

// SetMaxSize sets both maximum dimensions.
func (r *Region) SetMaxSize(width, height float64) {
	r.maxWidth.Set(width)
	r.maxHeight.Set(height)
}

// BackgroundColorProperty returns the background color property (RGBA,
// 0xRRGGBBAA).
func (r *Region) BackgroundColorProperty() *observe.Property[uint32] { return r.backgroundColor }

// BackgroundColor returns the background color.
func (r *Region) BackgroundColor() uint32 { return r.backgroundColor.Get() }

// SetBackgroundColor sets the background color.
func (r *Region) SetBackgroundColor(c uint32) { r.backgroundColor.Set(c) }

// Stylesheets returns the observable stylesheet list.
func (r *Region) Stylesheets() *observe.List[string] { return r.stylesheets }
