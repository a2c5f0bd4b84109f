package fluentkit

import (
	"testing"
)

func buildRegistrationForm() (*Form, *TextField, *TextField, *CheckBox) {
	form := NewForm("registration")
	username := NewTextField("")
	email := NewTextField("")
	terms := NewCheckBox("accept terms")

	form.RegisterField("username", Field(username, username.TextProperty()),
		Required(), MinLength(3))
	form.RegisterField("email", Field(email, email.TextProperty()),
		Required(), Email())
	form.RegisterField("terms", Field[bool](terms, terms.SelectedProperty()))

	return form, username, email, terms
}

func TestFormTracksFieldEdits(t *testing.T) {
	form, username, _, terms := buildRegistrationForm()

	username.SetText("ada")
	terms.SetSelected(true)

	if form.Value("username") != "ada" {
		t.Errorf("username value = %v, want %q", form.Value("username"), "ada")
	}
	if form.Value("terms") != true {
		t.Errorf("terms value = %v, want true", form.Value("terms"))
	}
}

func TestFormSetValueDrivesWidget(t *testing.T) {
	form, username, _, _ := buildRegistrationForm()

	form.SetValue("username", "grace")

	if username.Text() != "grace" {
		t.Errorf("widget text = %q, want %q", username.Text(), "grace")
	}
	if form.Value("username") != "grace" {
		t.Errorf("form value = %v, want %q", form.Value("username"), "grace")
	}
}

func TestFormValidation(t *testing.T) {
	form, username, email, _ := buildRegistrationForm()

	if form.Validate() {
		t.Fatal("empty required fields should fail validation")
	}
	if form.FieldError("username") == nil {
		t.Error("username should have an error")
	}
	if form.FieldError("email") == nil {
		t.Error("email should have an error")
	}
	if form.FieldError("terms") != nil {
		t.Error("terms has no validators and should have no error")
	}

	username.SetText("ada")
	email.SetText("not-an-address")
	if form.Validate() {
		t.Fatal("malformed email should fail validation")
	}
	if len(form.Errors()) != 1 {
		t.Errorf("errors = %d, want 1", len(form.Errors()))
	}

	email.SetText("ada@example.com")
	if !form.Validate() {
		t.Fatalf("form should be valid, errors: %v", form.Errors())
	}
}

func TestFormEditClearsStaleError(t *testing.T) {
	form, username, _, _ := buildRegistrationForm()

	form.Validate()
	if form.FieldError("username") == nil {
		t.Fatal("expected an error before the edit")
	}

	username.SetText("a")
	if form.FieldError("username") != nil {
		t.Error("editing a field should clear its recorded error")
	}
}

func TestFormSubmit(t *testing.T) {
	form, username, email, terms := buildRegistrationForm()

	var gotValues map[string]any
	var gotValid bool
	form.OnSubmit(func(values map[string]any, valid bool) {
		gotValues = values
		gotValid = valid
	})

	form.Submit()
	if gotValid {
		t.Error("submitting an empty form should report invalid")
	}

	username.SetText("ada")
	email.SetText("ada@example.com")
	terms.SetSelected(true)
	form.Submit()

	if !gotValid {
		t.Fatalf("submit should be valid, errors: %v", form.Errors())
	}
	if gotValues["username"] != "ada" || gotValues["terms"] != true {
		t.Errorf("submitted values = %v", gotValues)
	}
}

func TestFormReset(t *testing.T) {
	form, username, _, terms := buildRegistrationForm()

	username.SetText("ada")
	terms.SetSelected(true)
	form.Validate()

	form.Reset()

	if username.Text() != "" {
		t.Errorf("username after reset = %q, want empty", username.Text())
	}
	if terms.Selected() {
		t.Error("terms should be deselected after reset")
	}
	if len(form.Errors()) != 0 {
		t.Errorf("errors after reset = %v, want none", form.Errors())
	}
}

func TestFormFocusTraversal(t *testing.T) {
	form, username, email, terms := buildRegistrationForm()

	if form.TabNext(nil, false) != Node(username) {
		t.Error("tab from nowhere should land on the first field")
	}
	if form.TabNext(nil, true) != Node(terms) {
		t.Error("shift+tab from nowhere should land on the last field")
	}
	if form.TabNext(username, false) != Node(email) {
		t.Error("tab from username should land on email")
	}
	if form.TabNext(terms, false) != Node(username) {
		t.Error("tab from the last field should wrap to the first")
	}
	if form.TabNext(username, true) != Node(terms) {
		t.Error("shift+tab from the first field should wrap to the last")
	}

	outsider := NewTextField("")
	if form.TabNext(outsider, false) != nil {
		t.Error("a widget outside the form should not be handled")
	}

	focused := form.FocusNext(username, false)
	if focused != Node(email) {
		t.Fatal("FocusNext should resolve to the email field")
	}
	if !email.Focused() {
		t.Error("email field should hold focus after FocusNext")
	}
}

func TestFormReregisterKeepsOrder(t *testing.T) {
	form, _, _, _ := buildRegistrationForm()

	replacement := NewTextField("prefilled")
	form.RegisterField("username", Field(replacement, replacement.TextProperty()))

	fields := form.Fields()
	if len(fields) != 3 || fields[0] != "username" {
		t.Errorf("fields = %v, username should keep its position", fields)
	}
	if form.Value("username") != "prefilled" {
		t.Errorf("value = %v, want %q", form.Value("username"), "prefilled")
	}
}

func TestFormNilArguments(t *testing.T) {
	form := NewForm("f")

	expectPanicCode(t, ErrCodeNilArgument, func() {
		form.RegisterField("x", nil)
	})
	expectPanicCode(t, ErrCodeNilArgument, func() {
		Field[string](nil, nil)
	})
}

func TestValidators(t *testing.T) {
	cases := []struct {
		name      string
		validator Validator
		value     any
		wantErr   bool
	}{
		{"required empty string", Required(), "", true},
		{"required nil", Required(), nil, true},
		{"required present", Required(), "x", false},
		{"required bool false", Required(), false, false},
		{"min length short", MinLength(3), "ab", true},
		{"min length runes", MinLength(3), "héé", false},
		{"max length long", MaxLength(2), "abc", true},
		{"email bad", Email(), "nope", true},
		{"email good", Email(), "a@b.co", false},
		{"email empty passes", Email(), "", false},
		{"pattern bad", Pattern(`^\d+$`), "12a", true},
		{"pattern good", Pattern(`^\d+$`), "123", false},
		{"min numeric", Min(10), 5, true},
		{"max numeric", Max(10), 11.5, true},
		{"min non-numeric passes", Min(10), "text", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.validator(tc.value)
			if (err != nil) != tc.wantErr {
				t.Errorf("validator(%v) error = %v, wantErr %v", tc.value, err, tc.wantErr)
			}
		})
	}
}

func TestValidatorCustomMessage(t *testing.T) {
	v := Required("username is mandatory")
	err := v("")
	if err == nil || err.Error() == "" {
		t.Fatal("expected an error with the custom message")
	}
}
