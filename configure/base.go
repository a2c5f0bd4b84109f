package configure

import (
	errors "github.com/agilira/go-errors"

	"github.com/fluentkit/fluentkit"
	"github.com/fluentkit/fluentkit/observe"
)

// nodeConfigurator is the bottom layer of every concrete configurator. It
// carries the fluent self reference: self is the outermost configurator,
// so inherited methods return the concrete type and chains keep access to
// subtype-only methods.
type nodeConfigurator[T any] struct {
	self   T
	node   fluentkit.Node
	widget *fluentkit.Widget
}

func (c *nodeConfigurator[T]) initNode(self T, n fluentkit.Node) {
	c.self = self
	c.node = n
	c.widget = n.WidgetBase()
}

// Node returns the wrapped widget.
func (c *nodeConfigurator[T]) Node() fluentkit.Node {
	return c.node
}

func (c *nodeConfigurator[T]) AddIDChangeListener(l *observe.ChangeListener[string]) T {
	c.widget.IDProperty().AddListener(l)
	return c.self
}

func (c *nodeConfigurator[T]) RemoveIDChangeListener(l *observe.ChangeListener[string]) T {
	c.widget.IDProperty().RemoveListener(l)
	return c.self
}

func (c *nodeConfigurator[T]) AddIDInvalidationListener(l *observe.InvalidationListener) T {
	c.widget.IDProperty().AddInvalidationListener(l)
	return c.self
}

func (c *nodeConfigurator[T]) RemoveIDInvalidationListener(l *observe.InvalidationListener) T {
	c.widget.IDProperty().RemoveInvalidationListener(l)
	return c.self
}

func (c *nodeConfigurator[T]) BindIDProperty(source observe.ObservableValue[string]) T {
	c.widget.IDProperty().Bind(source)
	return c.self
}

func (c *nodeConfigurator[T]) UnbindIDProperty() T {
	c.widget.IDProperty().Unbind()
	return c.self
}

func (c *nodeConfigurator[T]) BindBidirectionalIDProperty(other *observe.Property[string]) T {
	c.widget.IDProperty().BindBidirectional(other)
	return c.self
}

func (c *nodeConfigurator[T]) UnbindBidirectionalIDProperty(other *observe.Property[string]) T {
	c.widget.IDProperty().UnbindBidirectional(other)
	return c.self
}

func (c *nodeConfigurator[T]) SetID(id string) T {
	c.widget.SetID(id)
	return c.self
}

func (c *nodeConfigurator[T]) AddVisibleChangeListener(l *observe.ChangeListener[bool]) T {
	c.widget.VisibleProperty().AddListener(l)
	return c.self
}

func (c *nodeConfigurator[T]) RemoveVisibleChangeListener(l *observe.ChangeListener[bool]) T {
	c.widget.VisibleProperty().RemoveListener(l)
	return c.self
}

func (c *nodeConfigurator[T]) AddVisibleInvalidationListener(l *observe.InvalidationListener) T {
	c.widget.VisibleProperty().AddInvalidationListener(l)
	return c.self
}

func (c *nodeConfigurator[T]) RemoveVisibleInvalidationListener(l *observe.InvalidationListener) T {
	c.widget.VisibleProperty().RemoveInvalidationListener(l)
	return c.self
}

func (c *nodeConfigurator[T]) BindVisibleProperty(source observe.ObservableValue[bool]) T {
	c.widget.VisibleProperty().Bind(source)
	return c.self
}

func (c *nodeConfigurator[T]) UnbindVisibleProperty() T {
	c.widget.VisibleProperty().Unbind()
	return c.self
}

func (c *nodeConfigurator[T]) BindBidirectionalVisibleProperty(other *observe.Property[bool]) T {
	c.widget.VisibleProperty().BindBidirectional(other)
	return c.self
}

func (c *nodeConfigurator[T]) UnbindBidirectionalVisibleProperty(other *observe.Property[bool]) T {
	c.widget.VisibleProperty().UnbindBidirectional(other)
	return c.self
}

func (c *nodeConfigurator[T]) SetVisible(visible bool) T {
	c.widget.SetVisible(visible)
	return c.self
}

func (c *nodeConfigurator[T]) AddOpacityChangeListener(l *observe.ChangeListener[float64]) T {
	c.widget.OpacityProperty().AddListener(l)
	return c.self
}

func (c *nodeConfigurator[T]) RemoveOpacityChangeListener(l *observe.ChangeListener[float64]) T {
	c.widget.OpacityProperty().RemoveListener(l)
	return c.self
}

func (c *nodeConfigurator[T]) AddOpacityInvalidationListener(l *observe.InvalidationListener) T {
	c.widget.OpacityProperty().AddInvalidationListener(l)
	return c.self
}

func (c *nodeConfigurator[T]) RemoveOpacityInvalidationListener(l *observe.InvalidationListener) T {
	c.widget.OpacityProperty().RemoveInvalidationListener(l)
	return c.self
}

func (c *nodeConfigurator[T]) BindOpacityProperty(source observe.ObservableValue[float64]) T {
	c.widget.OpacityProperty().Bind(source)
	return c.self
}

func (c *nodeConfigurator[T]) UnbindOpacityProperty() T {
	c.widget.OpacityProperty().Unbind()
	return c.self
}

func (c *nodeConfigurator[T]) BindBidirectionalOpacityProperty(other *observe.Property[float64]) T {
	c.widget.OpacityProperty().BindBidirectional(other)
	return c.self
}

func (c *nodeConfigurator[T]) UnbindBidirectionalOpacityProperty(other *observe.Property[float64]) T {
	c.widget.OpacityProperty().UnbindBidirectional(other)
	return c.self
}

func (c *nodeConfigurator[T]) SetOpacity(opacity float64) T {
	c.widget.SetOpacity(opacity)
	return c.self
}

func (c *nodeConfigurator[T]) AddStyleClass(class string) T {
	c.widget.StyleClasses().Add(class)
	return c.self
}

func (c *nodeConfigurator[T]) RemoveStyleClass(class string) T {
	c.widget.StyleClasses().Remove(class)
	return c.self
}

func (c *nodeConfigurator[T]) SetStyleClasses(classes ...string) T {
	c.widget.StyleClasses().SetAll(classes...)
	return c.self
}

func (c *nodeConfigurator[T]) AddStyleClassInvalidationListener(l *observe.InvalidationListener) T {
	c.widget.StyleClasses().AddInvalidationListener(l)
	return c.self
}

func (c *nodeConfigurator[T]) RemoveStyleClassInvalidationListener(l *observe.InvalidationListener) T {
	c.widget.StyleClasses().RemoveInvalidationListener(l)
	return c.self
}

func (c *nodeConfigurator[T]) AddEventHandler(eventType fluentkit.EventType, h *fluentkit.EventHandler) T {
	c.widget.AddEventHandler(eventType, h)
	return c.self
}

func (c *nodeConfigurator[T]) RemoveEventHandler(eventType fluentkit.EventType, h *fluentkit.EventHandler) T {
	c.widget.RemoveEventHandler(eventType, h)
	return c.self
}

func (c *nodeConfigurator[T]) AddEventFilter(eventType fluentkit.EventType, h *fluentkit.EventHandler) T {
	c.widget.AddEventFilter(eventType, h)
	return c.self
}

func (c *nodeConfigurator[T]) RemoveEventFilter(eventType fluentkit.EventType, h *fluentkit.EventHandler) T {
	c.widget.RemoveEventFilter(eventType, h)
	return c.self
}

func (c *nodeConfigurator[T]) FireEvent(e fluentkit.Event) T {
	fluentkit.FireEvent(c.node, e)
	return c.self
}

// requireWidget panics when a factory receives a nil widget.
func requireWidget(factory string, present bool) {
	if !present {
		panic(errors.New(fluentkit.ErrCodeNilArgument, factory+": widget must not be nil"))
	}
}

// wrongNodeType panics when SetNode receives a widget of the wrong
// concrete type. The held widget is left untouched.
func wrongNodeType(method, want string) {
	panic(errors.New(fluentkit.ErrCodeWrongNodeType, method+": node is not a "+want))
}

// regionConfigurator layers the sizing, background and stylesheet surface.
type regionConfigurator[T any] struct {
	nodeConfigurator[T]
	region *fluentkit.Region
}

func (c *regionConfigurator[T]) initRegion(self T, n fluentkit.Node, r *fluentkit.Region) {
	c.initNode(self, n)
	c.region = r
}

func (c *regionConfigurator[T]) AddPrefWidthChangeListener(l *observe.ChangeListener[float64]) T {
	c.region.PrefWidthProperty().AddListener(l)
	return c.self
}

func (c *regionConfigurator[T]) RemovePrefWidthChangeListener(l *observe.ChangeListener[float64]) T {
	c.region.PrefWidthProperty().RemoveListener(l)
	return c.self
}

func (c *regionConfigurator[T]) AddPrefWidthInvalidationListener(l *observe.InvalidationListener) T {
	c.region.PrefWidthProperty().AddInvalidationListener(l)
	return c.self
}

func (c *regionConfigurator[T]) RemovePrefWidthInvalidationListener(l *observe.InvalidationListener) T {
	c.region.PrefWidthProperty().RemoveInvalidationListener(l)
	return c.self
}

func (c *regionConfigurator[T]) BindPrefWidthProperty(source observe.ObservableValue[float64]) T {
	c.region.PrefWidthProperty().Bind(source)
	return c.self
}

func (c *regionConfigurator[T]) UnbindPrefWidthProperty() T {
	c.region.PrefWidthProperty().Unbind()
	return c.self
}

func (c *regionConfigurator[T]) BindBidirectionalPrefWidthProperty(other *observe.Property[float64]) T {
	c.region.PrefWidthProperty().BindBidirectional(other)
	return c.self
}

func (c *regionConfigurator[T]) UnbindBidirectionalPrefWidthProperty(other *observe.Property[float64]) T {
	c.region.PrefWidthProperty().UnbindBidirectional(other)
	return c.self
}

func (c *regionConfigurator[T]) SetPrefWidth(v float64) T {
	c.region.SetPrefWidth(v)
	return c.self
}

func (c *regionConfigurator[T]) AddPrefHeightChangeListener(l *observe.ChangeListener[float64]) T {
	c.region.PrefHeightProperty().AddListener(l)
	return c.self
}

func (c *regionConfigurator[T]) RemovePrefHeightChangeListener(l *observe.ChangeListener[float64]) T {
	c.region.PrefHeightProperty().RemoveListener(l)
	return c.self
}

func (c *regionConfigurator[T]) AddPrefHeightInvalidationListener(l *observe.InvalidationListener) T {
	c.region.PrefHeightProperty().AddInvalidationListener(l)
	return c.self
}

func (c *regionConfigurator[T]) RemovePrefHeightInvalidationListener(l *observe.InvalidationListener) T {
	c.region.PrefHeightProperty().RemoveInvalidationListener(l)
	return c.self
}

func (c *regionConfigurator[T]) BindPrefHeightProperty(source observe.ObservableValue[float64]) T {
	c.region.PrefHeightProperty().Bind(source)
	return c.self
}

func (c *regionConfigurator[T]) UnbindPrefHeightProperty() T {
	c.region.PrefHeightProperty().Unbind()
	return c.self
}

func (c *regionConfigurator[T]) BindBidirectionalPrefHeightProperty(other *observe.Property[float64]) T {
	c.region.PrefHeightProperty().BindBidirectional(other)
	return c.self
}

func (c *regionConfigurator[T]) UnbindBidirectionalPrefHeightProperty(other *observe.Property[float64]) T {
	c.region.PrefHeightProperty().UnbindBidirectional(other)
	return c.self
}

func (c *regionConfigurator[T]) SetPrefHeight(v float64) T {
	c.region.SetPrefHeight(v)
	return c.self
}

func (c *regionConfigurator[T]) AddMinWidthChangeListener(l *observe.ChangeListener[float64]) T {
	c.region.MinWidthProperty().AddListener(l)
	return c.self
}

func (c *regionConfigurator[T]) RemoveMinWidthChangeListener(l *observe.ChangeListener[float64]) T {
	c.region.MinWidthProperty().RemoveListener(l)
	return c.self
}

func (c *regionConfigurator[T]) AddMinWidthInvalidationListener(l *observe.InvalidationListener) T {
	c.region.MinWidthProperty().AddInvalidationListener(l)
	return c.self
}

func (c *regionConfigurator[T]) RemoveMinWidthInvalidationListener(l *observe.InvalidationListener) T {
	c.region.MinWidthProperty().RemoveInvalidationListener(l)
	return c.self
}

func (c *regionConfigurator[T]) BindMinWidthProperty(source observe.ObservableValue[float64]) T {
	c.region.MinWidthProperty().Bind(source)
	return c.self
}

func (c *regionConfigurator[T]) UnbindMinWidthProperty() T {
	c.region.MinWidthProperty().Unbind()
	return c.self
}

func (c *regionConfigurator[T]) BindBidirectionalMinWidthProperty(other *observe.Property[float64]) T {
	c.region.MinWidthProperty().BindBidirectional(other)
	return c.self
}

func (c *regionConfigurator[T]) UnbindBidirectionalMinWidthProperty(other *observe.Property[float64]) T {
	c.region.MinWidthProperty().UnbindBidirectional(other)
	return c.self
}

func (c *regionConfigurator[T]) SetMinWidth(v float64) T {
	c.region.SetMinWidth(v)
	return c.self
}

func (c *regionConfigurator[T]) AddMinHeightChangeListener(l *observe.ChangeListener[float64]) T {
	c.region.MinHeightProperty().AddListener(l)
	return c.self
}

func (c *regionConfigurator[T]) RemoveMinHeightChangeListener(l *observe.ChangeListener[float64]) T {
	c.region.MinHeightProperty().RemoveListener(l)
	return c.self
}

func (c *regionConfigurator[T]) AddMinHeightInvalidationListener(l *observe.InvalidationListener) T {
	c.region.MinHeightProperty().AddInvalidationListener(l)
	return c.self
}

func (c *regionConfigurator[T]) RemoveMinHeightInvalidationListener(l *observe.InvalidationListener) T {
	c.region.MinHeightProperty().RemoveInvalidationListener(l)
	return c.self
}

func (c *regionConfigurator[T]) BindMinHeightProperty(source observe.ObservableValue[float64]) T {
	c.region.MinHeightProperty().Bind(source)
	return c.self
}

func (c *regionConfigurator[T]) UnbindMinHeightProperty() T {
	c.region.MinHeightProperty().Unbind()
	return c.self
}

func (c *regionConfigurator[T]) BindBidirectionalMinHeightProperty(other *observe.Property[float64]) T {
	c.region.MinHeightProperty().BindBidirectional(other)
	return c.self
}

func (c *regionConfigurator[T]) UnbindBidirectionalMinHeightProperty(other *observe.Property[float64]) T {
	c.region.MinHeightProperty().UnbindBidirectional(other)
	return c.self
}

func (c *regionConfigurator[T]) SetMinHeight(v float64) T {
	c.region.SetMinHeight(v)
	return c.self
}

func (c *regionConfigurator[T]) AddMaxWidthChangeListener(l *observe.ChangeListener[float64]) T {
	c.region.MaxWidthProperty().AddListener(l)
	return c.self
}

func (c *regionConfigurator[T]) RemoveMaxWidthChangeListener(l *observe.ChangeListener[float64]) T {
	c.region.MaxWidthProperty().RemoveListener(l)
	return c.self
}

func (c *regionConfigurator[T]) AddMaxWidthInvalidationListener(l *observe.InvalidationListener) T {
	c.region.MaxWidthProperty().AddInvalidationListener(l)
	return c.self
}

func (c *regionConfigurator[T]) RemoveMaxWidthInvalidationListener(l *observe.InvalidationListener) T {
	c.region.MaxWidthProperty().RemoveInvalidationListener(l)
	return c.self
}

func (c *regionConfigurator[T]) BindMaxWidthProperty(source observe.ObservableValue[float64]) T {
	c.region.MaxWidthProperty().Bind(source)
	return c.self
}

func (c *regionConfigurator[T]) UnbindMaxWidthProperty() T {
	c.region.MaxWidthProperty().Unbind()
	return c.self
}

func (c *regionConfigurator[T]) BindBidirectionalMaxWidthProperty(other *observe.Property[float64]) T {
	c.region.MaxWidthProperty().BindBidirectional(other)
	return c.self
}

func (c *regionConfigurator[T]) UnbindBidirectionalMaxWidthProperty(other *observe.Property[float64]) T {
	c.region.MaxWidthProperty().UnbindBidirectional(other)
	return c.self
}

func (c *regionConfigurator[T]) SetMaxWidth(v float64) T {
	c.region.SetMaxWidth(v)
	return c.self
}

func (c *regionConfigurator[T]) AddMaxHeightChangeListener(l *observe.ChangeListener[float64]) T {
	c.region.MaxHeightProperty().AddListener(l)
	return c.self
}

func (c *regionConfigurator[T]) RemoveMaxHeightChangeListener(l *observe.ChangeListener[float64]) T {
	c.region.MaxHeightProperty().RemoveListener(l)
	return c.self
}

func (c *regionConfigurator[T]) AddMaxHeightInvalidationListener(l *observe.InvalidationListener) T {
	c.region.MaxHeightProperty().AddInvalidationListener(l)
	return c.self
}

func (c *regionConfigurator[T]) RemoveMaxHeightInvalidationListener(l *observe.InvalidationListener) T {
	c.region.MaxHeightProperty().RemoveInvalidationListener(l)
	return c.self
}

func (c *regionConfigurator[T]) BindMaxHeightProperty(source observe.ObservableValue[float64]) T {
	c.region.MaxHeightProperty().Bind(source)
	return c.self
}

func (c *regionConfigurator[T]) UnbindMaxHeightProperty() T {
	c.region.MaxHeightProperty().Unbind()
	return c.self
}

func (c *regionConfigurator[T]) BindBidirectionalMaxHeightProperty(other *observe.Property[float64]) T {
	c.region.MaxHeightProperty().BindBidirectional(other)
	return c.self
}

func (c *regionConfigurator[T]) UnbindBidirectionalMaxHeightProperty(other *observe.Property[float64]) T {
	c.region.MaxHeightProperty().UnbindBidirectional(other)
	return c.self
}

func (c *regionConfigurator[T]) SetMaxHeight(v float64) T {
	c.region.SetMaxHeight(v)
	return c.self
}

func (c *regionConfigurator[T]) SetPrefSize(width, height float64) T {
	c.region.SetPrefSize(width, height)
	return c.self
}

func (c *regionConfigurator[T]) SetMinSize(width, height float64) T {
	c.region.SetMinSize(width, height)
	return c.self
}

func (c *regionConfigurator[T]) SetMaxSize(width, height float64) T {
	c.region.SetMaxSize(width, height)
	return c.self
}

func (c *regionConfigurator[T]) AddBackgroundColorChangeListener(l *observe.ChangeListener[uint32]) T {
	c.region.BackgroundColorProperty().AddListener(l)
	return c.self
}

func (c *regionConfigurator[T]) RemoveBackgroundColorChangeListener(l *observe.ChangeListener[uint32]) T {
	c.region.BackgroundColorProperty().RemoveListener(l)
	return c.self
}

func (c *regionConfigurator[T]) AddBackgroundColorInvalidationListener(l *observe.InvalidationListener) T {
	c.region.BackgroundColorProperty().AddInvalidationListener(l)
	return c.self
}

func (c *regionConfigurator[T]) RemoveBackgroundColorInvalidationListener(l *observe.InvalidationListener) T {
	c.region.BackgroundColorProperty().RemoveInvalidationListener(l)
	return c.self
}

func (c *regionConfigurator[T]) BindBackgroundColorProperty(source observe.ObservableValue[uint32]) T {
	c.region.BackgroundColorProperty().Bind(source)
	return c.self
}

func (c *regionConfigurator[T]) UnbindBackgroundColorProperty() T {
	c.region.BackgroundColorProperty().Unbind()
	return c.self
}

func (c *regionConfigurator[T]) BindBidirectionalBackgroundColorProperty(other *observe.Property[uint32]) T {
	c.region.BackgroundColorProperty().BindBidirectional(other)
	return c.self
}

func (c *regionConfigurator[T]) UnbindBidirectionalBackgroundColorProperty(other *observe.Property[uint32]) T {
	c.region.BackgroundColorProperty().UnbindBidirectional(other)
	return c.self
}

func (c *regionConfigurator[T]) SetBackgroundColor(col uint32) T {
	c.region.SetBackgroundColor(col)
	return c.self
}

func (c *regionConfigurator[T]) AddStylesheet(sheet string) T {
	c.region.Stylesheets().Add(sheet)
	return c.self
}

func (c *regionConfigurator[T]) RemoveStylesheet(sheet string) T {
	c.region.Stylesheets().Remove(sheet)
	return c.self
}

func (c *regionConfigurator[T]) SetStylesheets(sheets ...string) T {
	c.region.Stylesheets().SetAll(sheets...)
	return c.self
}

func (c *regionConfigurator[T]) AddStylesheetInvalidationListener(l *observe.InvalidationListener) T {
	c.region.Stylesheets().AddInvalidationListener(l)
	return c.self
}

func (c *regionConfigurator[T]) RemoveStylesheetInvalidationListener(l *observe.InvalidationListener) T {
	c.region.Stylesheets().RemoveInvalidationListener(l)
	return c.self
}

// controlConfigurator layers tooltip, disable and focus.
type controlConfigurator[T any] struct {
	regionConfigurator[T]
	control *fluentkit.Control
}

func (c *controlConfigurator[T]) initControl(self T, n fluentkit.Node, ctl *fluentkit.Control) {
	c.initRegion(self, n, ctl.RegionBase())
	c.control = ctl
}

func (c *controlConfigurator[T]) AddTooltipChangeListener(l *observe.ChangeListener[string]) T {
	c.control.TooltipProperty().AddListener(l)
	return c.self
}

func (c *controlConfigurator[T]) RemoveTooltipChangeListener(l *observe.ChangeListener[string]) T {
	c.control.TooltipProperty().RemoveListener(l)
	return c.self
}

func (c *controlConfigurator[T]) AddTooltipInvalidationListener(l *observe.InvalidationListener) T {
	c.control.TooltipProperty().AddInvalidationListener(l)
	return c.self
}

func (c *controlConfigurator[T]) RemoveTooltipInvalidationListener(l *observe.InvalidationListener) T {
	c.control.TooltipProperty().RemoveInvalidationListener(l)
	return c.self
}

func (c *controlConfigurator[T]) BindTooltipProperty(source observe.ObservableValue[string]) T {
	c.control.TooltipProperty().Bind(source)
	return c.self
}

func (c *controlConfigurator[T]) UnbindTooltipProperty() T {
	c.control.TooltipProperty().Unbind()
	return c.self
}

func (c *controlConfigurator[T]) BindBidirectionalTooltipProperty(other *observe.Property[string]) T {
	c.control.TooltipProperty().BindBidirectional(other)
	return c.self
}

func (c *controlConfigurator[T]) UnbindBidirectionalTooltipProperty(other *observe.Property[string]) T {
	c.control.TooltipProperty().UnbindBidirectional(other)
	return c.self
}

func (c *controlConfigurator[T]) SetTooltip(text string) T {
	c.control.SetTooltip(text)
	return c.self
}

func (c *controlConfigurator[T]) AddDisableChangeListener(l *observe.ChangeListener[bool]) T {
	c.control.DisableProperty().AddListener(l)
	return c.self
}

func (c *controlConfigurator[T]) RemoveDisableChangeListener(l *observe.ChangeListener[bool]) T {
	c.control.DisableProperty().RemoveListener(l)
	return c.self
}

func (c *controlConfigurator[T]) AddDisableInvalidationListener(l *observe.InvalidationListener) T {
	c.control.DisableProperty().AddInvalidationListener(l)
	return c.self
}

func (c *controlConfigurator[T]) RemoveDisableInvalidationListener(l *observe.InvalidationListener) T {
	c.control.DisableProperty().RemoveInvalidationListener(l)
	return c.self
}

func (c *controlConfigurator[T]) BindDisableProperty(source observe.ObservableValue[bool]) T {
	c.control.DisableProperty().Bind(source)
	return c.self
}

func (c *controlConfigurator[T]) UnbindDisableProperty() T {
	c.control.DisableProperty().Unbind()
	return c.self
}

func (c *controlConfigurator[T]) BindBidirectionalDisableProperty(other *observe.Property[bool]) T {
	c.control.DisableProperty().BindBidirectional(other)
	return c.self
}

func (c *controlConfigurator[T]) UnbindBidirectionalDisableProperty(other *observe.Property[bool]) T {
	c.control.DisableProperty().UnbindBidirectional(other)
	return c.self
}

func (c *controlConfigurator[T]) SetDisable(disabled bool) T {
	c.control.SetDisable(disabled)
	return c.self
}

func (c *controlConfigurator[T]) AddFocusedChangeListener(l *observe.ChangeListener[bool]) T {
	c.control.FocusedProperty().AddListener(l)
	return c.self
}

func (c *controlConfigurator[T]) RemoveFocusedChangeListener(l *observe.ChangeListener[bool]) T {
	c.control.FocusedProperty().RemoveListener(l)
	return c.self
}

func (c *controlConfigurator[T]) AddFocusedInvalidationListener(l *observe.InvalidationListener) T {
	c.control.FocusedProperty().AddInvalidationListener(l)
	return c.self
}

func (c *controlConfigurator[T]) RemoveFocusedInvalidationListener(l *observe.InvalidationListener) T {
	c.control.FocusedProperty().RemoveInvalidationListener(l)
	return c.self
}

func (c *controlConfigurator[T]) RequestFocus() T {
	c.control.RequestFocus()
	return c.self
}

// labeledConfigurator layers the text-display surface.
type labeledConfigurator[T any] struct {
	controlConfigurator[T]
	labeled *fluentkit.Labeled
}

func (c *labeledConfigurator[T]) initLabeled(self T, n fluentkit.Node, lb *fluentkit.Labeled) {
	c.initControl(self, n, lb.ControlBase())
	c.labeled = lb
}

func (c *labeledConfigurator[T]) AddTextChangeListener(l *observe.ChangeListener[string]) T {
	c.labeled.TextProperty().AddListener(l)
	return c.self
}

func (c *labeledConfigurator[T]) RemoveTextChangeListener(l *observe.ChangeListener[string]) T {
	c.labeled.TextProperty().RemoveListener(l)
	return c.self
}

func (c *labeledConfigurator[T]) AddTextInvalidationListener(l *observe.InvalidationListener) T {
	c.labeled.TextProperty().AddInvalidationListener(l)
	return c.self
}

func (c *labeledConfigurator[T]) RemoveTextInvalidationListener(l *observe.InvalidationListener) T {
	c.labeled.TextProperty().RemoveInvalidationListener(l)
	return c.self
}

func (c *labeledConfigurator[T]) BindTextProperty(source observe.ObservableValue[string]) T {
	c.labeled.TextProperty().Bind(source)
	return c.self
}

func (c *labeledConfigurator[T]) UnbindTextProperty() T {
	c.labeled.TextProperty().Unbind()
	return c.self
}

func (c *labeledConfigurator[T]) BindBidirectionalTextProperty(other *observe.Property[string]) T {
	c.labeled.TextProperty().BindBidirectional(other)
	return c.self
}

func (c *labeledConfigurator[T]) UnbindBidirectionalTextProperty(other *observe.Property[string]) T {
	c.labeled.TextProperty().UnbindBidirectional(other)
	return c.self
}

func (c *labeledConfigurator[T]) SetText(text string) T {
	c.labeled.SetText(text)
	return c.self
}

func (c *labeledConfigurator[T]) AddFontSizeChangeListener(l *observe.ChangeListener[float64]) T {
	c.labeled.FontSizeProperty().AddListener(l)
	return c.self
}

func (c *labeledConfigurator[T]) RemoveFontSizeChangeListener(l *observe.ChangeListener[float64]) T {
	c.labeled.FontSizeProperty().RemoveListener(l)
	return c.self
}

func (c *labeledConfigurator[T]) AddFontSizeInvalidationListener(l *observe.InvalidationListener) T {
	c.labeled.FontSizeProperty().AddInvalidationListener(l)
	return c.self
}

func (c *labeledConfigurator[T]) RemoveFontSizeInvalidationListener(l *observe.InvalidationListener) T {
	c.labeled.FontSizeProperty().RemoveInvalidationListener(l)
	return c.self
}

func (c *labeledConfigurator[T]) BindFontSizeProperty(source observe.ObservableValue[float64]) T {
	c.labeled.FontSizeProperty().Bind(source)
	return c.self
}

func (c *labeledConfigurator[T]) UnbindFontSizeProperty() T {
	c.labeled.FontSizeProperty().Unbind()
	return c.self
}

func (c *labeledConfigurator[T]) BindBidirectionalFontSizeProperty(other *observe.Property[float64]) T {
	c.labeled.FontSizeProperty().BindBidirectional(other)
	return c.self
}

func (c *labeledConfigurator[T]) UnbindBidirectionalFontSizeProperty(other *observe.Property[float64]) T {
	c.labeled.FontSizeProperty().UnbindBidirectional(other)
	return c.self
}

func (c *labeledConfigurator[T]) SetFontSize(size float64) T {
	c.labeled.SetFontSize(size)
	return c.self
}

func (c *labeledConfigurator[T]) AddTextColorChangeListener(l *observe.ChangeListener[uint32]) T {
	c.labeled.TextColorProperty().AddListener(l)
	return c.self
}

func (c *labeledConfigurator[T]) RemoveTextColorChangeListener(l *observe.ChangeListener[uint32]) T {
	c.labeled.TextColorProperty().RemoveListener(l)
	return c.self
}

func (c *labeledConfigurator[T]) AddTextColorInvalidationListener(l *observe.InvalidationListener) T {
	c.labeled.TextColorProperty().AddInvalidationListener(l)
	return c.self
}

func (c *labeledConfigurator[T]) RemoveTextColorInvalidationListener(l *observe.InvalidationListener) T {
	c.labeled.TextColorProperty().RemoveInvalidationListener(l)
	return c.self
}

func (c *labeledConfigurator[T]) BindTextColorProperty(source observe.ObservableValue[uint32]) T {
	c.labeled.TextColorProperty().Bind(source)
	return c.self
}

func (c *labeledConfigurator[T]) UnbindTextColorProperty() T {
	c.labeled.TextColorProperty().Unbind()
	return c.self
}

func (c *labeledConfigurator[T]) BindBidirectionalTextColorProperty(other *observe.Property[uint32]) T {
	c.labeled.TextColorProperty().BindBidirectional(other)
	return c.self
}

func (c *labeledConfigurator[T]) UnbindBidirectionalTextColorProperty(other *observe.Property[uint32]) T {
	c.labeled.TextColorProperty().UnbindBidirectional(other)
	return c.self
}

func (c *labeledConfigurator[T]) SetTextColor(col uint32) T {
	c.labeled.SetTextColor(col)
	return c.self
}

func (c *labeledConfigurator[T]) AddWrapTextChangeListener(l *observe.ChangeListener[bool]) T {
	c.labeled.WrapTextProperty().AddListener(l)
	return c.self
}

func (c *labeledConfigurator[T]) RemoveWrapTextChangeListener(l *observe.ChangeListener[bool]) T {
	c.labeled.WrapTextProperty().RemoveListener(l)
	return c.self
}

func (c *labeledConfigurator[T]) AddWrapTextInvalidationListener(l *observe.InvalidationListener) T {
	c.labeled.WrapTextProperty().AddInvalidationListener(l)
	return c.self
}

func (c *labeledConfigurator[T]) RemoveWrapTextInvalidationListener(l *observe.InvalidationListener) T {
	c.labeled.WrapTextProperty().RemoveInvalidationListener(l)
	return c.self
}

func (c *labeledConfigurator[T]) BindWrapTextProperty(source observe.ObservableValue[bool]) T {
	c.labeled.WrapTextProperty().Bind(source)
	return c.self
}

func (c *labeledConfigurator[T]) UnbindWrapTextProperty() T {
	c.labeled.WrapTextProperty().Unbind()
	return c.self
}

func (c *labeledConfigurator[T]) BindBidirectionalWrapTextProperty(other *observe.Property[bool]) T {
	c.labeled.WrapTextProperty().BindBidirectional(other)
	return c.self
}

func (c *labeledConfigurator[T]) UnbindBidirectionalWrapTextProperty(other *observe.Property[bool]) T {
	c.labeled.WrapTextProperty().UnbindBidirectional(other)
	return c.self
}

func (c *labeledConfigurator[T]) SetWrapText(wrap bool) T {
	c.labeled.SetWrapText(wrap)
	return c.self
}

// buttonBaseConfigurator layers the action surface.
type buttonBaseConfigurator[T any] struct {
	labeledConfigurator[T]
	buttonBase *fluentkit.ButtonBase
}

func (c *buttonBaseConfigurator[T]) initButtonBase(self T, n fluentkit.Node, bb *fluentkit.ButtonBase) {
	c.initLabeled(self, n, bb.LabeledBase())
	c.buttonBase = bb
}

func (c *buttonBaseConfigurator[T]) SetOnAction(h *fluentkit.EventHandler) T {
	c.buttonBase.SetOnAction(h)
	return c.self
}

func (c *buttonBaseConfigurator[T]) Fire() T {
	c.buttonBase.Fire()
	return c.self
}
