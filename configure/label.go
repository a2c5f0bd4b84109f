package configure

import (
	"github.com/fluentkit/fluentkit"
	"github.com/fluentkit/fluentkit/observe"
)

// LabelConfigurator is the fluent configurator for a label.
type LabelConfigurator struct {
	labeledConfigurator[*LabelConfigurator]
	label *fluentkit.Label
}

var _ LabelConfig[*LabelConfigurator] = (*LabelConfigurator)(nil)

// NewLabelConfigurator wraps a label. Panics if l is nil.
func NewLabelConfigurator(l *fluentkit.Label) *LabelConfigurator {
	requireWidget("NewLabelConfigurator", l != nil)
	c := &LabelConfigurator{}
	c.attach(l)
	return c
}

func (c *LabelConfigurator) attach(l *fluentkit.Label) {
	c.label = l
	c.initLabeled(c, l, &l.Labeled)
}

// Label returns the wrapped label.
func (c *LabelConfigurator) Label() *fluentkit.Label {
	return c.label
}

// SetNode reassigns the configurator to another label. Panics if n is nil
// or not a *fluentkit.Label; the held widget is unchanged on failure.
func (c *LabelConfigurator) SetNode(n fluentkit.Node) *LabelConfigurator {
	l, ok := n.(*fluentkit.Label)
	if !ok || l == nil {
		wrongNodeType("LabelConfigurator.SetNode", "*fluentkit.Label")
	}
	c.attach(l)
	return c
}

// SetLabelFor associates the label with a control so label interactions
// forward focus to it.
func (c *LabelConfigurator) SetLabelFor(n fluentkit.Node) *LabelConfigurator {
	c.label.SetLabelFor(n)
	return c
}

func (c *LabelConfigurator) AddLabelForChangeListener(l *observe.ChangeListener[any]) *LabelConfigurator {
	c.label.LabelForProperty().AddListener(l)
	return c
}

func (c *LabelConfigurator) RemoveLabelForChangeListener(l *observe.ChangeListener[any]) *LabelConfigurator {
	c.label.LabelForProperty().RemoveListener(l)
	return c
}

func (c *LabelConfigurator) AddLabelForInvalidationListener(l *observe.InvalidationListener) *LabelConfigurator {
	c.label.LabelForProperty().AddInvalidationListener(l)
	return c
}

func (c *LabelConfigurator) RemoveLabelForInvalidationListener(l *observe.InvalidationListener) *LabelConfigurator {
	c.label.LabelForProperty().RemoveInvalidationListener(l)
	return c
}

// Equal reports whether both configurators wrap the same label.
func (c *LabelConfigurator) Equal(other *LabelConfigurator) bool {
	return other != nil && c.label == other.label
}
