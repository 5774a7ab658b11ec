package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidUsername(t *testing.T) {
	valid := []string{"abc", "john.doe", "staff_01", "a-b-c"}
	invalid := []string{"ab", "john doe", "", "user@name"}
	for _, s := range valid {
		if !IsValidUsername(s) {
			t.Errorf("IsValidUsername(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidUsername(s) {
			t.Errorf("IsValidUsername(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestParseDateOrDateTime(t *testing.T) {
	if _, ok := ParseDateOrDateTime("2024-05-01"); !ok {
		t.Errorf("ParseDateOrDateTime(date) = false, want true")
	}
	if _, ok := ParseDateOrDateTime("2024-05-01T10:30:00+07:00"); !ok {
		t.Errorf("ParseDateOrDateTime(datetime) = false, want true")
	}
	if _, ok := ParseDateOrDateTime("yesterday"); ok {
		t.Errorf("ParseDateOrDateTime(yesterday) = true, want false")
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"a", "b", "c"}
	if !IsInSlice("a", slice) {
		t.Errorf("IsInSlice('a') = false, want true")
	}
	if IsInSlice("d", slice) {
		t.Errorf("IsInSlice('d') = true, want false")
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid"},
		{Field: "title", Message: "required"},
	}
	got := errs.Error()
	want := "email: invalid; title: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid"},
		{Field: "title", Message: "required"},
	}
	got := errs.ToMap()
	want := map[string]string{"email": "invalid", "title": "required"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}

type sampleRequest struct {
	Title    string `json:"title" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=1"`
	Kind     string `json:"kind" validate:"oneof=checkin checkout"`
}

func TestStruct(t *testing.T) {
	if errs := Struct(sampleRequest{Title: "x", Quantity: 1, Kind: "checkin"}); errs != nil {
		t.Fatalf("Struct(valid) = %v, want nil", errs)
	}

	errs := Struct(sampleRequest{Kind: "lunch"})
	got := errs.ToMap()
	if got["title"] != "title is required" {
		t.Errorf("title message = %q", got["title"])
	}
	if got["quantity"] != "quantity must be greater than or equal to 1" {
		t.Errorf("quantity message = %q", got["quantity"])
	}
	if got["kind"] != "kind must be one of: checkin, checkout" {
		t.Errorf("kind message = %q", got["kind"])
	}
}
