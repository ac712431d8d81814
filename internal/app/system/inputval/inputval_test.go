package inputval

import "testing"

func TestValidate(t *testing.T) {
	type TestInput struct {
		Title string `validate:"required,max=10" label:"Judul"`
		URL   string `validate:"required,httpurl" label:"Tautan"`
	}

	tests := []struct {
		name       string
		input      TestInput
		wantErrors bool
		wantFirst  string
	}{
		{
			name:       "valid input",
			input:      TestInput{Title: "Berita", URL: "https://example.com"},
			wantErrors: false,
		},
		{
			name:       "missing title",
			input:      TestInput{Title: "", URL: "https://example.com"},
			wantErrors: true,
			wantFirst:  "Judul wajib diisi.",
		},
		{
			name:       "title too long",
			input:      TestInput{Title: "Judul yang sangat panjang sekali", URL: "https://example.com"},
			wantErrors: true,
			wantFirst:  "Judul maksimal 10 karakter.",
		},
		{
			name:       "bad url",
			input:      TestInput{Title: "Berita", URL: "not-a-url"},
			wantErrors: true,
			wantFirst:  "Tautan harus berupa URL http atau https.",
		},
		{
			name:       "missing both reports title first",
			input:      TestInput{Title: "", URL: ""},
			wantErrors: true,
			wantFirst:  "Judul wajib diisi.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(tt.input)

			if result.HasErrors() != tt.wantErrors {
				t.Errorf("Validate() HasErrors = %v, want %v", result.HasErrors(), tt.wantErrors)
			}
			if tt.wantErrors && result.First() != tt.wantFirst {
				t.Errorf("Validate() First() = %q, want %q", result.First(), tt.wantFirst)
			}
		})
	}
}

func TestResult_All(t *testing.T) {
	t.Run("no errors", func(t *testing.T) {
		r := &Result{}
		if r.All() != "" {
			t.Errorf("All() = %q, want empty", r.All())
		}
	})

	t.Run("multiple errors", func(t *testing.T) {
		r := &Result{
			Errors: []FieldError{
				{Message: "Error 1"},
				{Message: "Error 2"},
			},
		}
		want := "Error 1; Error 2"
		if r.All() != want {
			t.Errorf("All() = %q, want %q", r.All(), want)
		}
	})
}

func TestResult_First(t *testing.T) {
	t.Run("no errors", func(t *testing.T) {
		r := &Result{}
		if r.First() != "" {
			t.Errorf("First() = %q, want empty", r.First())
		}
	})

	t.Run("with errors", func(t *testing.T) {
		r := &Result{
			Errors: []FieldError{
				{Message: "First error"},
				{Message: "Second error"},
			},
		}
		if r.First() != "First error" {
			t.Errorf("First() = %q, want %q", r.First(), "First error")
		}
	})
}

func TestValidate_CustomRules(t *testing.T) {
	type StatusInput struct {
		Status string `validate:"required,programstatus" label:"Status"`
	}

	type IDInput struct {
		ID string `validate:"required,objectid" label:"ID Divisi"`
	}

	type DateInput struct {
		Date string `validate:"required,isodate" label:"Tanggal"`
	}

	t.Run("valid status", func(t *testing.T) {
		if result := Validate(StatusInput{Status: "ongoing"}); result.HasErrors() {
			t.Errorf("Validate(valid status) has errors: %v", result.Errors)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		if result := Validate(StatusInput{Status: "paused"}); !result.HasErrors() {
			t.Error("Validate(invalid status) should have errors")
		}
	})

	t.Run("valid ObjectID", func(t *testing.T) {
		if result := Validate(IDInput{ID: "507f1f77bcf86cd799439011"}); result.HasErrors() {
			t.Errorf("Validate(valid ID) has errors: %v", result.Errors)
		}
	})

	t.Run("invalid ObjectID", func(t *testing.T) {
		if result := Validate(IDInput{ID: "invalid-id"}); !result.HasErrors() {
			t.Error("Validate(invalid ID) should have errors")
		}
	})

	t.Run("valid date", func(t *testing.T) {
		if result := Validate(DateInput{Date: "2026-10-01"}); result.HasErrors() {
			t.Errorf("Validate(valid date) has errors: %v", result.Errors)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		if result := Validate(DateInput{Date: "01/10/2026"}); !result.HasErrors() {
			t.Error("Validate(invalid date) should have errors")
		}
	})
}
