package env

import (
	"testing"
	"time"

	"github.com/kbukum/envkit/errors"
)

func TestRequired_MissingVsBlank(t *testing.T) {
	// Absent is a missing-variable failure.
	_, err := testEnv(nil).Required("X").Finalize()
	if !errors.IsMissing(err) {
		t.Errorf("unset variable: expected missing, got %v", err)
	}

	// Present but blank is a validation failure, never missing.
	for _, blank := range []string{"", "   ", "\t\n"} {
		_, err := testEnv(map[string]string{"X": blank}).Required("X").Finalize()
		if !errors.IsAssertion(err) {
			t.Errorf("blank %q: expected assertion failure, got %v", blank, err)
		}
		if errors.IsMissing(err) {
			t.Errorf("blank %q: must not report missing", blank)
		}
	}
}

func TestRequired_TrimsValue(t *testing.T) {
	got, err := testEnv(map[string]string{"HOST": "  db.local  "}).Required("HOST").Finalize()
	if err != nil {
		t.Fatal(err)
	}
	if got != "db.local" {
		t.Errorf("got %q, want db.local", got)
	}
}

func TestOptional_DefaultBypassOnlyOnAbsence(t *testing.T) {
	// Unset uses the default.
	got, err := testEnv(nil).Optional("X", "def").Finalize()
	if err != nil || got != "def" {
		t.Errorf("unset: got %q, %v; want def", got, err)
	}

	// An explicitly set empty value also falls back to the default, unlike
	// Required's blank-must-fail policy.
	got, err = testEnv(map[string]string{"X": ""}).Optional("X", "def").Finalize()
	if err != nil || got != "def" {
		t.Errorf("empty: got %q, %v; want def", got, err)
	}

	// A set value wins over the default.
	got, err = testEnv(map[string]string{"X": "custom"}).Optional("X", "def").Finalize()
	if err != nil || got != "custom" {
		t.Errorf("set: got %q, %v; want custom", got, err)
	}
}

func TestOptional_EmptyDefaultFailsValidation(t *testing.T) {
	_, err := testEnv(nil).Optional("X", "").Finalize()
	if !errors.IsAssertion(err) {
		t.Errorf("expected assertion failure, got %v", err)
	}
}

func TestNumber_StateMachine(t *testing.T) {
	// Missing with default: defaulted, no conversion, no validation.
	got, err := testEnv(nil).Number("N", 42).Finalize()
	if err != nil || got != 42 {
		t.Errorf("defaulted: got %v, %v", got, err)
	}

	// Missing without default: fatal.
	_, err = testEnv(nil).Number("N").Finalize()
	if !errors.IsMissing(err) {
		t.Errorf("expected missing, got %v", err)
	}

	// Present: converter decides; the default never rescues invalid input.
	_, err = testEnv(map[string]string{"N": "abc"}).Number("N", 42).Finalize()
	if !errors.IsConversion(err) {
		t.Errorf("expected conversion failure despite default, got %v", err)
	}

	got, err = testEnv(map[string]string{"N": "7.5"}).Number("N").Finalize()
	if err != nil || got != 7.5 {
		t.Errorf("present: got %v, %v", got, err)
	}
}

func TestBool_StateMachine(t *testing.T) {
	got, err := testEnv(nil).Bool("FLAG", true).Finalize()
	if err != nil || !got {
		t.Errorf("defaulted: got %v, %v", got, err)
	}

	_, err = testEnv(nil).Bool("FLAG").Finalize()
	if !errors.IsMissing(err) {
		t.Errorf("expected missing, got %v", err)
	}

	got, err = testEnv(map[string]string{"FLAG": " ON "}).Bool("FLAG").Finalize()
	if err != nil || !got {
		t.Errorf("present: got %v, %v", got, err)
	}

	_, err = testEnv(map[string]string{"FLAG": "maybe"}).Bool("FLAG", false).Finalize()
	if !errors.IsConversion(err) {
		t.Errorf("expected conversion failure despite default, got %v", err)
	}
}

func TestArray_StateMachine(t *testing.T) {
	got, err := testEnv(map[string]string{"HOSTS": "a, b ,c"}).Array("HOSTS").Finalize()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("got %v", got)
	}

	def := []string{"localhost"}
	got, err = testEnv(nil).Array("HOSTS", def).Finalize()
	if err != nil || len(got) != 1 || got[0] != "localhost" {
		t.Errorf("defaulted: got %v, %v", got, err)
	}

	_, err = testEnv(nil).Array("HOSTS").Finalize()
	if !errors.IsMissing(err) {
		t.Errorf("expected missing, got %v", err)
	}
}

func TestArray_CustomSeparator(t *testing.T) {
	e := New(
		WithSource(Map(map[string]string{"HOSTS": "a;b;c"})),
		WithArraySeparator(";"),
	)
	got, err := e.Array("HOSTS").Finalize()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[2] != "c" {
		t.Errorf("got %v", got)
	}
}

func TestInt_StateMachine(t *testing.T) {
	got, err := testEnv(map[string]string{"WORKERS": "8"}).Int("WORKERS").Finalize()
	if err != nil || got != 8 {
		t.Errorf("present: got %v, %v", got, err)
	}

	got, err = testEnv(nil).Int("WORKERS", 4).Finalize()
	if err != nil || got != 4 {
		t.Errorf("defaulted: got %v, %v", got, err)
	}

	_, err = testEnv(map[string]string{"WORKERS": "8.5"}).Int("WORKERS").Finalize()
	if !errors.IsConversion(err) {
		t.Errorf("expected conversion failure, got %v", err)
	}
}

func TestDuration_StateMachine(t *testing.T) {
	got, err := testEnv(map[string]string{"TIMEOUT": "45s"}).Duration("TIMEOUT").Finalize()
	if err != nil || got != 45*time.Second {
		t.Errorf("present: got %v, %v", got, err)
	}

	got, err = testEnv(nil).Duration("TIMEOUT", time.Minute).Finalize()
	if err != nil || got != time.Minute {
		t.Errorf("defaulted: got %v, %v", got, err)
	}

	_, err = testEnv(nil).Duration("TIMEOUT").Finalize()
	if !errors.IsMissing(err) {
		t.Errorf("expected missing, got %v", err)
	}
}

func TestPackageLevelConstructors_ReadProcessEnv(t *testing.T) {
	t.Setenv("ENVKIT_TEST_PORT", "3000")
	got, err := Number("ENVKIT_TEST_PORT").Finalize()
	if err != nil || got != 3000 {
		t.Errorf("got %v, %v", got, err)
	}

	t.Setenv("ENVKIT_TEST_NAME", " svc ")
	name, err := Required("ENVKIT_TEST_NAME").Finalize()
	if err != nil || name != "svc" {
		t.Errorf("got %q, %v", name, err)
	}
}

func TestEntry_SnapshotRead(t *testing.T) {
	values := map[string]string{"KEY": "before"}
	e := testEnv(values)
	v := e.Required("KEY")
	values["KEY"] = "after"
	got, err := v.Finalize()
	if err != nil {
		t.Fatal(err)
	}
	if got != "before" {
		t.Errorf("constructed chains must not observe later mutation, got %q", got)
	}
}
