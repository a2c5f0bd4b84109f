package fluentkit

import (
	"fmt"
	"regexp"
	"sync"
	"unicode/utf8"

	errors "github.com/agilira/go-errors"

	"github.com/fluentkit/fluentkit/observe"
)

// ============================================================================
// FormControl - field adapter interface
// ============================================================================

// FormControl is implemented by adapters that expose a widget property to a
// form. Use Field to adapt any observable property; the built-in widget
// types all work through it.
type FormControl interface {
	// FormNode returns the widget the field lives on, used for focus
	// traversal. May be nil for detached model fields.
	FormNode() Node
	// FormValue returns the current field value.
	FormValue() any
	// SetFormValue assigns the field value programmatically.
	SetFormValue(value any)
	// OnFormChange registers a callback invoked on every value change.
	OnFormChange(fn func(value any))
	// ResetFormValue restores the value the field had at registration.
	ResetFormValue()
}

type propertyField[T any] struct {
	node    Node
	prop    *observe.Property[T]
	initial T
}

// Field adapts a widget property into a FormControl. The property's value
// at adaptation time becomes the reset default. Panics if prop is nil.
func Field[T any](node Node, prop *observe.Property[T]) FormControl {
	if prop == nil {
		panic(errors.New(ErrCodeNilArgument, "Field: property must not be nil"))
	}
	return &propertyField[T]{node: node, prop: prop, initial: prop.Get()}
}

func (f *propertyField[T]) FormNode() Node  { return f.node }
func (f *propertyField[T]) FormValue() any  { return f.prop.Get() }
func (f *propertyField[T]) ResetFormValue() { f.prop.Set(f.initial) }

func (f *propertyField[T]) SetFormValue(value any) {
	v, ok := value.(T)
	if !ok {
		panic(errors.New(ErrCodeNilArgument,
			fmt.Sprintf("Field.SetFormValue: %s cannot hold %T", f.prop.Name(), value)))
	}
	f.prop.Set(v)
}

func (f *propertyField[T]) OnFormChange(fn func(value any)) {
	f.prop.AddListener(observe.OnChange(func(_ observe.ObservableValue[T], _, newValue T) {
		fn(newValue)
	}))
}

// ============================================================================
// Form - field registry, validation and focus traversal
// ============================================================================

// Form manages a named collection of fields, their values, and validation
// state. Fields register in order; that order drives focus traversal.
type Form struct {
	name string

	mu          sync.RWMutex
	fields      map[string]*formField
	fieldOrder  []string
	fieldErrors map[string]error
	onSubmit    func(values map[string]any, valid bool)
}

type formField struct {
	control    FormControl
	validators []Validator
	value      any
}

// NewForm creates an empty form with the given name.
func NewForm(name string) *Form {
	return &Form{
		name:        name,
		fields:      make(map[string]*formField),
		fieldErrors: make(map[string]error),
	}
}

// Name returns the form's name.
func (f *Form) Name() string {
	return f.name
}

// RegisterField adds a field under the given name. Re-registering a name
// replaces the control and validators but keeps the traversal position.
// Panics if control is nil.
func (f *Form) RegisterField(name string, control FormControl, validators ...Validator) {
	if control == nil {
		panic(errors.New(ErrCodeNilArgument, "Form.RegisterField: control must not be nil"))
	}

	f.mu.Lock()
	if existing, ok := f.fields[name]; ok {
		existing.control = control
		existing.validators = validators
		existing.value = control.FormValue()
	} else {
		f.fields[name] = &formField{
			control:    control,
			validators: validators,
			value:      control.FormValue(),
		}
		f.fieldOrder = append(f.fieldOrder, name)
	}
	f.mu.Unlock()

	// Track edits; a change clears the field's stale error until the next
	// validation pass.
	control.OnFormChange(func(newValue any) {
		f.mu.Lock()
		if field, ok := f.fields[name]; ok {
			field.value = newValue
		}
		delete(f.fieldErrors, name)
		f.mu.Unlock()
	})
}

// Value returns the current value for a field, or nil if unregistered.
func (f *Form) Value(name string) any {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if field, ok := f.fields[name]; ok {
		return field.value
	}
	return nil
}

// Values returns a snapshot of all field values.
func (f *Form) Values() map[string]any {
	f.mu.RLock()
	defer f.mu.RUnlock()

	values := make(map[string]any, len(f.fields))
	for name, field := range f.fields {
		values[name] = field.value
	}
	return values
}

// SetValue programmatically assigns a field's value through its control.
// No-op for unregistered names.
func (f *Form) SetValue(name string, value any) {
	f.mu.RLock()
	field, ok := f.fields[name]
	f.mu.RUnlock()
	if !ok {
		return
	}

	field.control.SetFormValue(value)

	f.mu.Lock()
	field.value = value
	delete(f.fieldErrors, name)
	f.mu.Unlock()
}

// ============================================================================
// Validation
// ============================================================================

// Validator checks a field value. A nil return means valid.
type Validator func(value any) error

// FieldError returns the validation error recorded for a field, or nil.
func (f *Form) FieldError(name string) error {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.fieldErrors[name]
}

// Errors returns a snapshot of all recorded validation errors.
func (f *Form) Errors() map[string]error {
	f.mu.RLock()
	defer f.mu.RUnlock()

	errs := make(map[string]error, len(f.fieldErrors))
	for name, err := range f.fieldErrors {
		errs[name] = err
	}
	return errs
}

// Validate runs every field's validators, recording the first failure per
// field. Reports whether the whole form is valid.
func (f *Form) Validate() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.fieldErrors = make(map[string]error)

	valid := true
	for name, field := range f.fields {
		for _, validator := range field.validators {
			if err := validator(field.value); err != nil {
				f.fieldErrors[name] = err
				valid = false
				break
			}
		}
	}
	return valid
}

// ValidateField runs a single field's validators. Unregistered names are
// valid.
func (f *Form) ValidateField(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	field, ok := f.fields[name]
	if !ok {
		return true
	}

	delete(f.fieldErrors, name)
	for _, validator := range field.validators {
		if err := validator(field.value); err != nil {
			f.fieldErrors[name] = err
			return false
		}
	}
	return true
}

// OnSubmit sets the callback Submit invokes with the value snapshot and
// the validation outcome.
func (f *Form) OnSubmit(callback func(values map[string]any, valid bool)) *Form {
	f.mu.Lock()
	f.onSubmit = callback
	f.mu.Unlock()
	return f
}

// Submit validates the form and invokes the OnSubmit callback.
func (f *Form) Submit() {
	valid := f.Validate()

	f.mu.RLock()
	callback := f.onSubmit
	f.mu.RUnlock()

	if callback != nil {
		callback(f.Values(), valid)
	}
}

// Reset restores every field to its registration-time value and clears
// all validation errors.
func (f *Form) Reset() {
	f.mu.Lock()
	names := make([]string, len(f.fieldOrder))
	copy(names, f.fieldOrder)
	f.fieldErrors = make(map[string]error)
	f.mu.Unlock()

	for _, name := range names {
		f.mu.RLock()
		field, ok := f.fields[name]
		f.mu.RUnlock()
		if !ok {
			continue
		}

		field.control.ResetFormValue()

		f.mu.Lock()
		field.value = field.control.FormValue()
		f.mu.Unlock()
	}
}

// ============================================================================
// Focus traversal
// ============================================================================

// Fields returns field names in registration order.
func (f *Form) Fields() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	result := make([]string, len(f.fieldOrder))
	copy(result, f.fieldOrder)
	return result
}

// FieldNode returns the widget for a field name, or nil.
func (f *Form) FieldNode(name string) Node {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if field, ok := f.fields[name]; ok {
		return field.control.FormNode()
	}
	return nil
}

// NextField returns the field name after current, wrapping around. An
// unknown current name resolves to the first field.
func (f *Form) NextField(current string) string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for i, name := range f.fieldOrder {
		if name == current {
			return f.fieldOrder[(i+1)%len(f.fieldOrder)]
		}
	}
	if len(f.fieldOrder) > 0 {
		return f.fieldOrder[0]
	}
	return ""
}

// PrevField returns the field name before current, wrapping around. An
// unknown current name resolves to the last field.
func (f *Form) PrevField(current string) string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for i, name := range f.fieldOrder {
		if name == current {
			return f.fieldOrder[(i-1+len(f.fieldOrder))%len(f.fieldOrder)]
		}
	}
	if len(f.fieldOrder) > 0 {
		return f.fieldOrder[len(f.fieldOrder)-1]
	}
	return ""
}

// ContainsNode reports whether the widget backs any registered field.
func (f *Form) ContainsNode(n Node) bool {
	return f.fieldNameForNode(n) != ""
}

func (f *Form) fieldNameForNode(n Node) string {
	if n == nil {
		return ""
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	for name, field := range f.fields {
		if field.control.FormNode() == n {
			return name
		}
	}
	return ""
}

// TabNext resolves the widget that should receive focus after a Tab press
// on the currently focused widget. Backward traversal is Shift+Tab. A nil
// current starts at the edge of the form; a widget outside the form
// returns nil.
func (f *Form) TabNext(current Node, backward bool) Node {
	if current == nil {
		names := f.Fields()
		if len(names) == 0 {
			return nil
		}
		if backward {
			return f.FieldNode(names[len(names)-1])
		}
		return f.FieldNode(names[0])
	}

	name := f.fieldNameForNode(current)
	if name == "" {
		return nil
	}
	if backward {
		return f.FieldNode(f.PrevField(name))
	}
	return f.FieldNode(f.NextField(name))
}

// FocusNext moves focus to the field TabNext resolves, when that widget
// can take focus. Returns the newly focused widget or nil.
func (f *Form) FocusNext(current Node, backward bool) Node {
	next := f.TabNext(current, backward)
	if next == nil {
		return nil
	}
	if focusable, ok := next.(interface{ RequestFocus() }); ok {
		focusable.RequestFocus()
	}
	return next
}

// ============================================================================
// Validators
// ============================================================================

func validationError(msg string) error {
	return errors.New(ErrCodeInvalidField, msg)
}

// Required rejects nil and empty-string values. Booleans and numbers are
// always considered present.
func Required(message ...string) Validator {
	msg := "this field is required"
	if len(message) > 0 {
		msg = message[0]
	}

	return func(value any) error {
		if value == nil {
			return validationError(msg)
		}
		if s, ok := value.(string); ok && s == "" {
			return validationError(msg)
		}
		return nil
	}
}

// MinLength rejects strings shorter than min runes.
func MinLength(min int, message ...string) Validator {
	msg := fmt.Sprintf("must be at least %d characters", min)
	if len(message) > 0 {
		msg = message[0]
	}

	return func(value any) error {
		if s, ok := value.(string); ok && utf8.RuneCountInString(s) < min {
			return validationError(msg)
		}
		return nil
	}
}

// MaxLength rejects strings longer than max runes.
func MaxLength(max int, message ...string) Validator {
	msg := fmt.Sprintf("must be at most %d characters", max)
	if len(message) > 0 {
		msg = message[0]
	}

	return func(value any) error {
		if s, ok := value.(string); ok && utf8.RuneCountInString(s) > max {
			return validationError(msg)
		}
		return nil
	}
}

// emailPattern is a pragmatic address shape check, not RFC 5322.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email rejects non-empty strings that do not look like an email address.
func Email(message ...string) Validator {
	msg := "invalid email address"
	if len(message) > 0 {
		msg = message[0]
	}

	return func(value any) error {
		if s, ok := value.(string); ok && s != "" && !emailPattern.MatchString(s) {
			return validationError(msg)
		}
		return nil
	}
}

// Pattern rejects non-empty strings that do not match the regex.
func Pattern(pattern string, message ...string) Validator {
	msg := "invalid format"
	if len(message) > 0 {
		msg = message[0]
	}

	re := regexp.MustCompile(pattern)
	return func(value any) error {
		if s, ok := value.(string); ok && s != "" && !re.MatchString(s) {
			return validationError(msg)
		}
		return nil
	}
}

// Min rejects numeric values below min. Non-numeric values pass.
func Min(min float64, message ...string) Validator {
	msg := fmt.Sprintf("must be at least %v", min)
	if len(message) > 0 {
		msg = message[0]
	}

	return func(value any) error {
		if v, ok := asFloat(value); ok && v < min {
			return validationError(msg)
		}
		return nil
	}
}

// Max rejects numeric values above max. Non-numeric values pass.
func Max(max float64, message ...string) Validator {
	msg := fmt.Sprintf("must be at most %v", max)
	if len(message) > 0 {
		msg = message[0]
	}

	return func(value any) error {
		if v, ok := asFloat(value); ok && v > max {
			return validationError(msg)
		}
		return nil
	}
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}
